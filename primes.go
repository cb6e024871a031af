// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "math/big"

// functions for prime number calculations, used to size the operation caches
// (cache.go): a prime capacity hint keeps Go's built-in map hashing from
// degenerating on inputs with regular structure, the same reason the teacher
// sizes its open-addressed tables this way.

func hasFactor(src, n int) bool {
	return (src != n) && (src%n == 0)
}

func hasEasyFactors(src int) bool {
	return hasFactor(src, 3) || hasFactor(src, 5) || hasFactor(src, 7) || hasFactor(src, 11) || hasFactor(src, 13)
}

// primeGte returns the smallest prime greater than or equal to src.
func primeGte(src int) int {
	if src < 2 {
		return 2
	}
	if src%2 == 0 {
		src++
	}
	for {
		if hasEasyFactors(src) {
			src += 2
			continue
		}
		// ProbablyPrime is 100% accurate for inputs less than 2^64.
		if big.NewInt(int64(src)).ProbablyPrime(0) {
			return src
		}
		src += 2
	}
}
