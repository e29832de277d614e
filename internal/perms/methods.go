// Copyright (c) The webperms Authors
// SPDX-License-Identifier: MPL-2.0

package perms

import (
	"strings"

	"github.com/hashicorp/go-secure-stdlib/strutil"
	"github.com/webperms/webperms/internal/types/method"
)

// methodKind tags which variant of the canonical method form a permission
// carries.  The "!" prefix is a parse-time fork: a permission holds either
// a covered set or an exception list, never both.
type methodKind int

const (
	// methodsAll is the sentinel covering every HTTP method.  It is the
	// canonical form of an empty method spec and of an include set naming
	// all recognized methods.
	methodsAll methodKind = iota

	// methodsInclude names exactly the covered methods.
	methodsInclude

	// methodsExclude names the methods not covered (the exception list).
	methodsExclude
)

// methodSet is the canonical form of an HTTP method spec: a sorted,
// deduplicated method list tagged as covered set or exception list, or the
// all-methods sentinel (with a nil list).
type methodSet struct {
	kind    methodKind
	methods []string
}

// parseMethodSpec parses a comma separated HTTP method spec.  A leading "!"
// selects the exception list variant and is stripped before tokenizing.
// An empty spec means all methods.
func parseMethodSpec(actions string) methodSet {
	kind := methodsInclude
	if strings.HasPrefix(actions, "!") {
		kind = methodsExclude
		actions = actions[1:]
	}
	return newMethodSet(kind, strutil.ParseStringSlice(actions, ","))
}

// newMethodSet canonicalizes the tokens: duplicates and empty tokens
// collapse, the rest sort ascending.  Tokens outside the recognized method
// table are preserved verbatim.  An empty token list, and an include set
// equal to the full recognized set, canonicalize to the all-methods
// sentinel.
func newMethodSet(kind methodKind, tokens []string) methodSet {
	canonical := strutil.RemoveDuplicates(tokens, false)
	switch {
	case len(canonical) == 0:
		return methodSet{kind: methodsAll}
	case kind == methodsInclude && strutil.EquivalentSlices(canonical, method.All):
		return methodSet{kind: methodsAll}
	}
	return methodSet{kind: kind, methods: canonical}
}

// actions returns the canonical rendering: the sorted, comma joined covered
// set, or the empty string for the all-methods sentinel.  An exception list
// has no rendering of its own; it only participates in implication.
func (m methodSet) actions() string {
	if m.kind != methodsInclude {
		return ""
	}
	return strings.Join(m.methods, ",")
}

// covers reports whether every method in other's covered set is in m's.
// Only meaningful when both sides are enumerated covered sets; the
// all-methods sentinel is handled by the caller.
func (m methodSet) covers(other methodSet) bool {
	return strutil.StrListSubset(m.methods, other.methods)
}

// compatibleExceptions applies the directional exception list rule: the
// argument must itself carry an exception list, and that list must not name
// any method m's list also names.  Called only when m is an exception list.
func (m methodSet) compatibleExceptions(other methodSet) bool {
	if other.kind != methodsExclude {
		return false
	}
	for _, httpMethod := range other.methods {
		if strutil.StrListContains(m.methods, httpMethod) {
			return false
		}
	}
	return true
}

// hash is stable within a process.  Only an enumerated covered set
// contributes; the sentinel and exception lists hash to zero, mirroring
// the canonical actions rendering.
func (m methodSet) hash() uint32 {
	if m.kind != methodsInclude {
		return 0
	}
	var h uint32
	for _, s := range m.methods {
		h += hashString(s)
	}
	return h
}
