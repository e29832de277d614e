// Copyright (c) The webperms Authors
// SPDX-License-Identifier: MPL-2.0

package perms

import (
	"net/http"
	"strings"

	"github.com/webperms/webperms/internal/errors"
)

// ResourcePermission ties a URL pattern spec to the HTTP methods a
// principal may use against the resources the spec covers.  It is an
// immutable value: construction parses and canonicalizes, and every
// operation after that is a pure read.
type ResourcePermission struct {
	name    string
	pattern *URLPatternSpec
	methods methodSet
}

// New creates a ResourcePermission from a URL pattern spec and a comma
// separated HTTP method spec.  An empty name normalizes to the default
// pattern "/".  An empty actions string grants all methods; a leading "!"
// makes the remainder an exception list.  The only possible failure is a
// malformed pattern spec.
func New(name, actions string) (*ResourcePermission, error) {
	const op = "perms.New"
	if name == "" {
		name = DefaultPattern
	}
	pattern, err := NewURLPatternSpec(name)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	return &ResourcePermission{
		name:    name,
		pattern: pattern,
		methods: parseMethodSpec(actions),
	}, nil
}

// NewWithMethods creates a ResourcePermission from a URL pattern spec and
// an HTTP method slice.  A nil or empty slice grants all methods.  The
// slice form has no exception list; that fork exists only in the string
// grammar.
func NewWithMethods(name string, methods []string) (*ResourcePermission, error) {
	const op = "perms.NewWithMethods"
	if name == "" {
		name = DefaultPattern
	}
	pattern, err := NewURLPatternSpec(name)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	return &ResourcePermission{
		name:    name,
		pattern: pattern,
		methods: newMethodSet(methodsInclude, methods),
	}, nil
}

// FromRequest builds the permission an incoming request asks for.  The name
// is the request path with the contextPath prefix removed, the sole path
// "/" reducing to the empty name; the method spec is the request's method.
func FromRequest(r *http.Request, contextPath string) (*ResourcePermission, error) {
	const op = "perms.FromRequest"
	uri := r.URL.Path
	if contextPath != "" {
		uri = strings.TrimPrefix(uri, contextPath)
	}
	if uri == "/" {
		uri = ""
	}
	p, err := New(uri, r.Method)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	return p, nil
}

// Name returns the pattern spec string the permission was constructed with.
func (p *ResourcePermission) Name() string {
	return p.name
}

// Actions returns the canonical actions string: the covered methods sorted
// ascending and comma joined, or the empty string when the permission
// covers all methods.  An exception list permission also renders empty;
// the list is internal to the implication check.
func (p *ResourcePermission) Actions() string {
	return p.methods.actions()
}

// Implies reports whether every access permitted by other is also
// permitted by p:
//
//   - p's pattern spec must imply other's pattern spec
//   - when p carries an exception list, other must carry one too, naming
//     no method p's list names
//   - when both sides carry enumerated covered sets, other's must be a
//     subset of p's; the all-methods sentinel on either side leaves the
//     method check trivially satisfied
//
// A nil argument is never implied; it is not an error.
func (p *ResourcePermission) Implies(other *ResourcePermission) bool {
	if p == nil || other == nil {
		return false
	}
	if !p.pattern.Implies(other.pattern) {
		return false
	}
	if p.methods.kind == methodsExclude && !p.methods.compatibleExceptions(other.methods) {
		return false
	}
	if p.methods.kind == methodsInclude && other.methods.kind == methodsInclude {
		return p.methods.covers(other.methods)
	}
	return true
}

// Equals reports semantic equivalence: mutual implication, not structural
// field comparison.  Permissions built from differently phrased but
// equivalent specs compare equal.
func (p *ResourcePermission) Equals(other *ResourcePermission) bool {
	return p.Implies(other) && other.Implies(p)
}

// Hash is stable for the lifetime of the process and agrees across
// permissions whose specs canonicalize identically.
func (p *ResourcePermission) Hash() uint32 {
	if p == nil {
		return 0
	}
	return p.pattern.hash() + p.methods.hash()
}
