// Copyright (c) The webperms Authors
// SPDX-License-Identifier: MPL-2.0

/*
Package perms provides the permission comparison primitive for web
resources: a value type that pairs a URL pattern spec with a canonical set
of HTTP methods, and answers whether one permission covers another.

A URL pattern spec is a colon separated pattern list.  The first pattern
defines the coverage (exact, path-prefix, extension, or the default
pattern "/") and the remaining patterns carve resources out of it.  The
HTTP method spec is a comma separated method list, optionally prefixed
with "!" to express the methods a permission does not cover.

All types in this package are immutable once constructed and safe for
concurrent readers.  Implication, equality and hashing are pure in-memory
computations; construction is the only operation that can fail.
*/
package perms
