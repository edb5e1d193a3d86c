// SPDX-License-Identifier: MIT
// Package: geomark/svg
//
// format.go — deterministic numeric formatting for markup attributes.
//
// Contract (strict):
//   - One rule for every number in generated output: round half-away-from-zero
//     to 2 decimal places, then render the shortest round-trip decimal form.
//   - Identical float inputs produce identical strings on every platform
//     (IEEE-754 doubles + Go's shortest-representation formatter).
//   - Integral values render without a fractional part ("256", not "256.00").

package svg

import (
	"math"
	"strconv"
)

// formatPrecision is the attribute rounding scale (2 decimal places).
const formatPrecision = 100.0

// Num renders v for use in a markup attribute under the engine-wide rule.
// Complexity: O(1).
func Num(v float64) string {
	// Round to 2 decimals first; the shortest round-trip form of the rounded
	// double then carries at most 2 fractional digits.
	r := math.Round(v*formatPrecision) / formatPrecision
	// Normalize negative zero so "-0" never leaks into output.
	if r == 0 {
		r = 0
	}

	return strconv.FormatFloat(r, 'f', -1, 64)
}
