// Copyright (c) The webperms Authors
// SPDX-License-Identifier: MPL-2.0

package errors

import "errors"

// As is the equivalent of the std errors.As, and allows devs to only import
// this pkg for the capability.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is the equivalent of the std errors.Is, and allows devs to only import
// this pkg for the capability.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
