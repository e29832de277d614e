// Copyright (c) The webperms Authors
// SPDX-License-Identifier: MPL-2.0

package perms

// Collection is an append-only group of permissions evaluated together, as
// a policy store holds the grants of one principal.  It implies a
// permission when any member does.
//
// A Collection is not safe for concurrent mutation; share it only after
// the last Add.
type Collection struct {
	perms []*ResourcePermission
}

// NewCollection creates a Collection from the given permissions.  Nil
// members are dropped.
func NewCollection(perms ...*ResourcePermission) *Collection {
	c := &Collection{}
	for _, p := range perms {
		c.Add(p)
	}
	return c
}

// Add appends a permission.  Adding nil is a no-op.
func (c *Collection) Add(p *ResourcePermission) {
	if p == nil {
		return
	}
	c.perms = append(c.perms, p)
}

// Implies reports whether any member permission implies p.  An empty
// collection implies nothing.
func (c *Collection) Implies(p *ResourcePermission) bool {
	if c == nil {
		return false
	}
	for _, member := range c.perms {
		if member.Implies(p) {
			return true
		}
	}
	return false
}

// Len returns the number of member permissions.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.perms)
}
