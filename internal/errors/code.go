// Copyright (c) The webperms Authors
// SPDX-License-Identifier: MPL-2.0

package errors

// Code specifies a code for the error.
type Code uint32

// String will return the Code's Info.Message
func (c Code) String() string {
	return c.Info().Message
}

// Info will look up the Code's Info.  If the Info is not found, it will
// return Info for an Unknown Code.
func (c Code) Info() Info {
	if info, ok := errorCodeInfo[c]; ok {
		return info
	}
	return errorCodeInfo[Unknown]
}

const (
	Unknown Code = 0 // Unknown will be equal to a zero value for Codes

	// InvalidParameter represents an invalid parameter for an operation.
	InvalidParameter Code = 100

	// MalformedSpec represents a URL pattern spec that violates the pattern
	// list grammar or the constraints its first pattern places on the list.
	MalformedSpec Code = 101
)
