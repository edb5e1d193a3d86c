// SPDX-License-Identifier: MIT
// Package: geomark/prng
//
// helpers.go — range and selection helpers layered on the raw stream.
//
// Contract (strict):
//   - Every helper consumes exactly one Next() draw, so consumers can reason
//     about stream alignment (stable draw order ⇒ stable output).
//   - Float(min,max) is uniform in [min,max); IntBetween(min,max) is uniform
//     over the inclusive integer range.
//   - Pick on an empty slice panics: programmer error, not a runtime
//     condition (candidate tables in this module are never empty).

package prng

import "github.com/katalvlaran/geomark/svg"

// Float returns a uniform draw in [min, max). A degenerate range (max ≤ min)
// returns min, keeping derived geometry finite rather than failing.
func (s *Stream) Float(min, max float64) float64 {
	if max <= min {
		return min
	}

	return min + s.Next()*(max-min)
}

// IntBetween returns a uniform integer in the inclusive range [min, max].
// A degenerate range returns min.
func (s *Stream) IntBetween(min, max int) int {
	if max <= min {
		return min
	}

	return min + int(s.Next()*float64(max-min+1))
}

// Chance reports true with probability p (one draw).
func (s *Stream) Chance(p float64) bool {
	return s.Next() < p
}

// Pick returns a uniformly selected element of items.
// Panics on an empty slice (programmer error).
func Pick[T any](s *Stream, items []T) T {
	if len(items) == 0 {
		panic("prng: Pick on empty candidate set")
	}

	return items[int(s.Next()*float64(len(items)))]
}

// PickStroke returns a uniform choice from the closed stroke palette.
func PickStroke(s *Stream) float64 {
	return Pick(s, svg.StrokeWidths)
}
