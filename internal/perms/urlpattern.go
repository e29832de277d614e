// Copyright (c) The webperms Authors
// SPDX-License-Identifier: MPL-2.0

package perms

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/webperms/webperms/internal/errors"
)

// DefaultPattern is the URL pattern matching every resource.  A nil or
// empty pattern spec normalizes to it.
const DefaultPattern = "/"

type patternType int

const (
	patternTypeExact patternType = iota
	patternTypePathPrefix
	patternTypeExtension
	patternTypeDefault
)

func (t patternType) String() string {
	return [...]string{
		"exact",
		"path-prefix",
		"extension",
		"default",
	}[t]
}

// patternTypeOf classifies a URL pattern.  The empty string is an exact
// pattern and "/*" is a path-prefix pattern, not the default pattern.
func patternTypeOf(pattern string) patternType {
	switch {
	case pattern == DefaultPattern:
		return patternTypeDefault
	case strings.HasPrefix(pattern, "/") && strings.HasSuffix(pattern, "/*"):
		return patternTypePathPrefix
	case strings.HasPrefix(pattern, "*."):
		return patternTypeExtension
	default:
		return patternTypeExact
	}
}

// patternMatches reports whether the reference pattern covers the candidate
// pattern under the servlet matching rules:
//
//   - the patterns are string equivalent, or
//   - the reference is "/*", which matches every candidate, or
//   - the reference is a path-prefix pattern and the candidate starts with
//     the reference minus its trailing "/*", with the next candidate
//     character, if any, being "/", or
//   - the reference is an extension pattern "*.ext" and the candidate ends
//     with ".ext", or
//   - the reference is the default pattern "/".
//
// All comparisons are case sensitive.
func patternMatches(reference, candidate string) bool {
	if reference == candidate {
		return true
	}
	if reference == "/*" {
		return true
	}
	if patternTypeOf(reference) == patternTypePathPrefix {
		prefix := strings.TrimSuffix(reference, "/*")
		if !strings.HasPrefix(candidate, prefix) {
			return false
		}
		return len(candidate) == len(prefix) || candidate[len(prefix)] == '/'
	}
	if strings.HasPrefix(reference, "*.") {
		return strings.HasSuffix(candidate, reference[1:])
	}
	return reference == DefaultPattern
}

// URLPatternSpec is the parsed, validated form of a colon separated URL
// pattern list.  The first pattern defines the spec's coverage and the
// remaining patterns name resources the spec does not cover.
type URLPatternSpec struct {
	first    string
	excluded []string
}

// NewURLPatternSpec parses a pattern spec of the grammar
//
//	spec ::= pattern | pattern ":" spec
//
// An empty spec normalizes to the default pattern "/".  The pattern list
// after the first pattern must satisfy the constraints the first pattern's
// type places on it:
//
//   - an exact first pattern admits no pattern list at all
//   - a path-prefix first pattern admits exact patterns it matches and
//     path-prefix patterns it matches other than itself
//   - an extension first pattern admits exact patterns it matches and any
//     path-prefix pattern
//   - the default pattern admits anything except the default pattern
//
// The same pattern must not occur twice.  Every violating pattern in the
// list is reported, collected into one MalformedSpec coded error, and no
// spec value is returned.
func NewURLPatternSpec(spec string) (*URLPatternSpec, error) {
	const op = "perms.NewURLPatternSpec"
	if spec == "" {
		spec = DefaultPattern
	}
	patterns := strings.Split(spec, ":")
	u := &URLPatternSpec{first: patterns[0]}

	firstType := patternTypeOf(u.first)
	if firstType == patternTypeExact && len(patterns) > 1 {
		return nil, errors.New(errors.MalformedSpec, op,
			fmt.Sprintf("exact pattern %q admits no pattern list", u.first))
	}

	var violations *multierror.Error
	seen := map[string]bool{u.first: true}
	for _, p := range patterns[1:] {
		if seen[p] {
			violations = multierror.Append(violations, errors.New(errors.MalformedSpec, op,
				fmt.Sprintf("duplicate pattern %q in pattern list", p)))
			continue
		}
		seen[p] = true
		if err := validateExcluded(op, firstType, u.first, p); err != nil {
			violations = multierror.Append(violations, err)
			continue
		}
		u.excluded = append(u.excluded, p)
	}
	if violations != nil {
		// a single violation reports as itself, not as a list of one
		if len(violations.Errors) == 1 {
			return nil, violations.Errors[0]
		}
		return nil, violations.ErrorOrNil()
	}
	return u, nil
}

// validateExcluded checks one pattern-list member against the constraints
// set by the first pattern's type.
func validateExcluded(op errors.Op, firstType patternType, first, p string) error {
	switch firstType {
	case patternTypePathPrefix:
		switch patternTypeOf(p) {
		case patternTypeExact:
			if !patternMatches(first, p) {
				return errors.New(errors.MalformedSpec, op,
					fmt.Sprintf("exact pattern %q is not matched by %q", p, first))
			}
		case patternTypePathPrefix:
			// p != first is already guaranteed by the duplicate check
			if !patternMatches(first, p) {
				return errors.New(errors.MalformedSpec, op,
					fmt.Sprintf("path-prefix pattern %q is not matched by %q", p, first))
			}
		default:
			return errors.New(errors.MalformedSpec, op,
				fmt.Sprintf("%s pattern %q not allowed in a path-prefix pattern list", patternTypeOf(p), p))
		}
	case patternTypeExtension:
		switch patternTypeOf(p) {
		case patternTypeExact:
			if !patternMatches(first, p) {
				return errors.New(errors.MalformedSpec, op,
					fmt.Sprintf("exact pattern %q is not matched by %q", p, first))
			}
		case patternTypePathPrefix:
			// any path-prefix pattern may carve out of an extension pattern
		default:
			return errors.New(errors.MalformedSpec, op,
				fmt.Sprintf("%s pattern %q not allowed in an extension pattern list", patternTypeOf(p), p))
		}
	case patternTypeDefault:
		// the duplicate check already rejects "/" itself; any other pattern
		// may carve out of the default pattern
	}
	return nil
}

// Implies reports whether every resource covered by other is also covered
// by u:
//
//  1. u's first pattern must match other's first pattern
//  2. no pattern in u's pattern list may match other's first pattern
//  3. when the two first patterns are equal, every pattern in u's pattern
//     list must be matched by a pattern in other's pattern list, so that
//     other honors at least the carve-outs u declares
func (u *URLPatternSpec) Implies(other *URLPatternSpec) bool {
	if other == nil {
		return false
	}
	if !patternMatches(u.first, other.first) {
		return false
	}
	for _, p := range u.excluded {
		if patternMatches(p, other.first) {
			return false
		}
	}
	if u.first == other.first {
		for _, p := range u.excluded {
			matched := false
			for _, o := range other.excluded {
				if patternMatches(o, p) {
					matched = true
					break
				}
			}
			if !matched {
				return false
			}
		}
	}
	return true
}

// String returns the spec in its pattern list form.
func (u *URLPatternSpec) String() string {
	if len(u.excluded) == 0 {
		return u.first
	}
	return u.first + ":" + strings.Join(u.excluded, ":")
}

// hash is stable within a process and order independent across the pattern
// list, so specs that differ only in list order hash the same.
func (u *URLPatternSpec) hash() uint32 {
	h := hashString(u.first)
	for _, p := range u.excluded {
		h += hashString(p)
	}
	return h
}

func hashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}
