// SPDX-License-Identifier: MIT

// Package sparse holds the Jacobian coordinate contract shared by every
// catalog problem, together with the two tools that consume it.
//
// Coordinate form:
//
//	pattern: []Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, ...}
//	values:  []float64{ ... }   // values[k] belongs to pattern[k]
//
// Indices are 0-based. A coordinate may appear more than once; each
// appearance is an additive contribution to that cell.
//
// Tools:
//
//   - Accumulator collects (row, col, delta) contributions, collapses repeats
//     into one slot and enumerates slots in first-insertion order. Problems
//     whose Jacobian is a sum of per-term pieces declare their pattern and
//     produce their values through it.
//   - Assemble converts (pattern, values) into CSR: row-major, strictly
//     increasing columns per row, duplicates summed. This is the layout
//     handed to downstream linear solvers.
//
// All failures are reported with the sentinels in errors.go.
package sparse
