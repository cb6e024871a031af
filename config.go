// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// configs stores the tunable parameters of a Manager, set through functional
// Options passed to New. None of these change the semantics of the engine;
// they only affect the initial sizing of the node and cache tables and,
// optionally, a hard ceiling on memory use.
type configs struct {
	nodesize    int // initial capacity hint for the node store
	cachesize   int // initial size of each operation cache
	maxnodesize int // hard ceiling on the number of live decision nodes (0: unlimited)
}

// Option configures a Manager created with New.
type Option func(*configs)

func defaultConfigs() *configs {
	return &configs{
		nodesize:  _DEFAULTNODESIZE,
		cachesize: _DEFAULTCACHESIZE,
	}
}

// NodeTableSize sets a preferred initial capacity for the node store. The
// store grows on demand; this is only a sizing hint used to pre-size the
// backing map and so avoid early rehashing.
func NodeTableSize(size int) Option {
	return func(c *configs) {
		if size > 0 {
			c.nodesize = size
		}
	}
}

// CacheSize sets the initial capacity hint of each operation cache
// (cofactor, ite, and, or, extra, exist, pre_image, replace), rounded up to
// a prime (see primes.go); the caches start empty and grow on demand. The
// default is 1009.
func CacheSize(size int) Option {
	return func(c *configs) {
		if size > 0 {
			c.cachesize = size
		}
	}
}

// MaxNodeTableSize sets a ceiling on the number of live decision nodes a
// Manager will hold at once. Exceeding it causes the operation in progress to
// fail with ErrOutOfMemory (recorded on Err()) instead of growing without
// bound. The default, zero, means no limit.
func MaxNodeTableSize(size int) Option {
	return func(c *configs) {
		c.maxnodesize = size
	}
}
