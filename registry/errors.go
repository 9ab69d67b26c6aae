// SPDX-License-Identifier: MIT
// Package registry: sentinel error set.

package registry

import "errors"

var (
	// ErrDuplicateName is returned by Register when the name is already taken.
	ErrDuplicateName = errors.New("registry: duplicate problem name")

	// ErrEmptyName is returned by Register for an empty name.
	ErrEmptyName = errors.New("registry: empty problem name")

	// ErrNilFactory is returned by Register for a nil Factory.
	ErrNilFactory = errors.New("registry: nil factory")

	// ErrNotFound is returned by Lookup on a miss.
	ErrNotFound = errors.New("registry: problem not found")

	// ErrBuilt is returned when a Builder is used after Build.
	ErrBuilt = errors.New("registry: builder already built")
)
