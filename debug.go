// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build debug

package robdd

import "log"

// debugEnabled gates the tracing call in gc.go's Clear. Building with -tags debug turns them on; an ordinary build
// compiles debugLogf's call sites down to nothing, per the teacher's
// debug.go/_DEBUG split.
const debugEnabled = true

func init() {
	log.SetPrefix("robdd: ")
}

func debugLogf(format string, args ...interface{}) {
	log.Printf(format, args...)
}

type debugStats struct {
	clears int
}
