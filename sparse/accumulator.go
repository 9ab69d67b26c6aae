// SPDX-License-Identifier: MIT

// Package sparse - Triplet Accumulator.
//
// Purpose:
//   - Collect additive (row, col, delta) contributions for systems whose
//     Jacobian is naturally expressed as a sum of per-term pieces.
//   - Collapse repeated keys into one slot while keeping first-insertion order,
//     so that a pattern declared once and values produced later line up
//     position by position.
//
// Contract:
//   - Open(n) resets the accumulator for an n×n system.
//   - Add(row, col, delta) accumulates; the first Add of a key fixes its slot.
//   - Pattern() and Flatten() enumerate slots in the same order.
//   - An out-of-range Add does not panic: the first such error is kept and
//     reported by Err(), Flatten() and FlattenInto().
//
// Complexity:
//   - Add: amortized O(1) (hash index + append); Flatten: O(slots).

package sparse

import "fmt"

// Accumulator is a keyed, insertion-ordered triplet store.
// The zero value is not ready; use NewAccumulator.
// An Accumulator is not safe for concurrent use; build one per evaluation.
type Accumulator struct {
	n      int
	index  map[Coord]int // key → slot
	coords []Coord       // slot → key, insertion order
	values []float64     // slot → accumulated value
	err    error         // first recorded failure
}

// NewAccumulator returns an empty accumulator for an n×n system.
// A non-positive n is recorded as ErrBadDimension and surfaces on Err().
func NewAccumulator(n int) *Accumulator {
	a := &Accumulator{}
	a.Open(n)

	return a
}

// Open resets the accumulator to the empty state for an n×n system.
// Backing storage is reused.
func (a *Accumulator) Open(n int) {
	a.n = n
	if a.index == nil {
		a.index = make(map[Coord]int)
	} else {
		clear(a.index)
	}
	a.coords = a.coords[:0]
	a.values = a.values[:0]
	a.err = nil
	if n <= 0 {
		a.err = fmt.Errorf("Accumulator.Open(n=%d): %w", n, ErrBadDimension)
	}
}

// Add accumulates delta into cell (row, col).
// The first Add of a key appends a slot; later ones sum into it.
func (a *Accumulator) Add(row, col int, delta float64) {
	if row < 0 || row >= a.n || col < 0 || col >= a.n {
		if a.err == nil {
			a.err = fmt.Errorf("Accumulator.Add(%d,%d) with n=%d: %w", row, col, a.n, ErrIndexOutOfRange)
		}
		return
	}
	key := Coord{Row: row, Col: col}
	if slot, ok := a.index[key]; ok {
		a.values[slot] += delta
		return
	}
	a.index[key] = len(a.coords)
	a.coords = append(a.coords, key)
	a.values = append(a.values, delta)
}

// Len returns the number of distinct cells collected so far.
func (a *Accumulator) Len() int { return len(a.coords) }

// Err returns the first failure recorded since the last Open, or nil.
func (a *Accumulator) Err() error { return a.err }

// Pattern returns a copy of the slot coordinates in first-insertion order.
func (a *Accumulator) Pattern() Pattern {
	out := make(Pattern, len(a.coords))
	copy(out, a.coords)

	return out
}

// Flatten returns a copy of the accumulated values in Pattern() order.
//
// Errors: the first failure recorded by Open/Add.
func (a *Accumulator) Flatten() ([]float64, error) {
	if a.err != nil {
		return nil, a.err
	}
	out := make([]float64, len(a.values))
	copy(out, a.values)

	return out, nil
}

// FlattenInto writes the accumulated values into dst, which must have
// exactly Len() elements.
//
// Errors: the first recorded failure, or ErrPatternMismatch on a length
// disagreement.
func (a *Accumulator) FlattenInto(dst []float64) error {
	if a.err != nil {
		return a.err
	}
	if len(dst) != len(a.values) {
		return fmt.Errorf("Accumulator.FlattenInto: len(dst)=%d, slots=%d: %w", len(dst), len(a.values), ErrPatternMismatch)
	}
	copy(dst, a.values)

	return nil
}

// PatternInto writes the slot coordinates into dst, which must have exactly
// Len() elements.
func (a *Accumulator) PatternInto(dst []Coord) error {
	if a.err != nil {
		return a.err
	}
	if len(dst) != len(a.coords) {
		return fmt.Errorf("Accumulator.PatternInto: len(dst)=%d, slots=%d: %w", len(dst), len(a.coords), ErrPatternMismatch)
	}
	copy(dst, a.coords)

	return nil
}
