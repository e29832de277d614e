// Copyright (c) The webperms Authors
// SPDX-License-Identifier: MPL-2.0

// Package method holds the process-wide registry of HTTP methods the
// permission engine's canonical form is defined over.  The registry is a
// read-only constant table; tokens outside it are carried through
// canonicalization untouched rather than rejected.
package method

// All is the closed set of recognized HTTP methods in ascending lexical
// order.  An include set equal to All canonicalizes to the "all methods"
// sentinel.  Callers must not mutate it.
var All = []string{
	"DELETE",
	"GET",
	"HEAD",
	"OPTIONS",
	"POST",
	"PUT",
	"TRACE",
}

var recognized = map[string]bool{
	"DELETE":  true,
	"GET":     true,
	"HEAD":    true,
	"OPTIONS": true,
	"POST":    true,
	"PUT":     true,
	"TRACE":   true,
}

// IsRecognized reports whether m is one of the recognized HTTP methods.
// Comparison is case sensitive; "get" is not a recognized method.
func IsRecognized(m string) bool {
	return recognized[m]
}
