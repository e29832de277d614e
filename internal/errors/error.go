// Copyright (c) The webperms Authors
// SPDX-License-Identifier: MPL-2.0

package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Op represents an operation (package.function).
// For example iam.CreateRole
type Op string

// Err provides the ability to specify a Msg, Op, Code and Wrapped error.
// Errs must be created via one of the factories: New or Wrap.
type Err struct {
	// Code is the error's code, which can be used to get the error's
	// errorCodeInfo, which contains the error's Kind and Message
	Code Code

	// Msg for the error
	Msg string

	// Op represents the operation raising/propagating an error and is optional
	Op Op

	// Wrapped is the error which this Err wraps and will be nil if there's no
	// error to wrap.
	Wrapped error
}

// New creates a new Err with the provided code, op and msg.  It supports the
// option of WithWrap for an error to wrap.
func New(c Code, op Op, msg string, opt ...Option) error {
	opts := GetOpts(opt...)
	return &Err{
		Code:    c,
		Op:      op,
		Msg:     msg,
		Wrapped: opts.withErrWrapped,
	}
}

// Wrap creates a new Err from the provided err and op, preserving the code
// of a wrapped Err if there is one.  It supports the option of WithMsg for
// an error message.
func Wrap(e error, op Op, opt ...Option) error {
	opts := GetOpts(opt...)
	err := &Err{
		Op:      op,
		Msg:     opts.withErrMsg,
		Wrapped: e,
	}
	var wrapped *Err
	if errors.As(e, &wrapped) {
		err.Code = wrapped.Code
	}
	return err
}

// Info about the Err
func (e *Err) Info() Info {
	if e == nil {
		return errorCodeInfo[Unknown]
	}
	return e.Code.Info()
}

// Error satisfies the error interface and returns a string representation of
// the Err
func (e *Err) Error() string {
	var msgs []string
	if e.Op != "" {
		msgs = append(msgs, string(e.Op))
	}
	if e.Msg != "" {
		msgs = append(msgs, e.Msg)
	}

	if info, ok := errorCodeInfo[e.Code]; ok {
		if e.Msg == "" {
			msgs = append(msgs, info.Message, info.Kind.String())
		} else {
			msgs = append(msgs, info.Kind.String())
		}
	}
	if e.Code != Unknown {
		msgs = append(msgs, fmt.Sprintf("error #%d", e.Code))
	}

	if e.Wrapped != nil {
		msgs = append(msgs, e.Wrapped.Error())
	}

	if len(msgs) == 0 {
		msgs = append(msgs, "unknown")
	}
	return strings.Join(msgs, ": ")
}

// Unwrap implements the errors.Unwrap interface and allows callers to use
// the errors.Is() and errors.As() functions effectively for any wrapped
// errors.
func (e *Err) Unwrap() error {
	return e.Wrapped
}
