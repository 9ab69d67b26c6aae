// SPDX-License-Identifier: MIT

package validate

import "errors"

var (
	// ErrNilRegistry is returned by Run for a nil registry.
	ErrNilRegistry = errors.New("validate: nil registry")

	// ErrUnstablePattern reports a problem whose JacobianPattern differs
	// between two calls.
	ErrUnstablePattern = errors.New("validate: pattern differs between calls")
)
