// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build !debug

package robdd

// debugEnabled is false in ordinary builds; debugLogf's call sites become
// dead code the compiler removes, so release builds pay nothing for the
// tracing available under -tags debug (see debug.go).
const debugEnabled = false

func debugLogf(format string, args ...interface{}) {}

type debugStats struct{}
