// Copyright (c) The webperms Authors
// SPDX-License-Identifier: MPL-2.0

package errors

// Kind specifies the kind of error (unknown, parameter, integrity, etc).
type Kind uint32

const (
	Other Kind = iota // Other is the zero value and matches any Kind in a Template
	Parameter
	Integrity
)

// String will return the Kind's string representation.
func (k Kind) String() string {
	return [...]string{
		"unknown",
		"parameter violation",
		"integrity violation",
	}[k]
}
