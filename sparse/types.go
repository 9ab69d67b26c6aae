// SPDX-License-Identifier: MIT

package sparse

import "fmt"

// Coord is one declared Jacobian entry: the derivative of equation Row with
// respect to unknown Col. Indices are 0-based.
type Coord struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Pattern is an ordered list of coordinates. A coordinate may repeat; every
// repeat is an additive contribution to the same cell, and the value vector
// produced alongside the pattern carries one contribution per position.
type Pattern []Coord

// Validate checks that every coordinate lies in [0, n)×[0, n).
// The first offending position is reported in the wrapped error.
//
// Errors: ErrBadDimension, ErrIndexOutOfRange.
// Complexity: O(len(p)).
func (p Pattern) Validate(n int) error {
	if n <= 0 {
		return fmt.Errorf("Pattern.Validate(n=%d): %w", n, ErrBadDimension)
	}
	for k, c := range p {
		if c.Row < 0 || c.Row >= n || c.Col < 0 || c.Col >= n {
			return fmt.Errorf("Pattern.Validate: entry %d %v with n=%d: %w", k, c, n, ErrIndexOutOfRange)
		}
	}

	return nil
}

// Cells returns the number of distinct (row,col) cells named by p.
func (p Pattern) Cells() int {
	seen := make(map[Coord]struct{}, len(p))
	for _, c := range p {
		seen[c] = struct{}{}
	}

	return len(seen)
}
