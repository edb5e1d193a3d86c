// SPDX-License-Identifier: MIT
// Package: geomark/aesthetic
//
// resolve.go — the fixed switch from style to configuration.
//
// Contract (strict):
//   - Resolve consumes a fixed number of draws per style (stable stream
//     alignment; see prng helpers contract).
//   - Scalar fields are constants or one-shot draws from small candidate
//     sets; the candidate sets themselves are part of the style identity.
//   - Call at most once per construction-method invocation.

package aesthetic

import "github.com/katalvlaran/geomark/prng"

// Per-style stroke candidate subsets of the closed palette.
var (
	thinStrokes   = []float64{2, 4}
	mediumStrokes = []float64{4, 6}
	heavyStrokes  = []float64{6, 8}
)

// Element budgets per style (pattern methods multiply by a small factor).
const (
	minimalistBudget = 3
	techBudget       = 6
	natureBudget     = 5
	boldBudget       = 4
)

// Resolve derives the configuration for style a using stream s for the
// one-shot randomized fields. Unknown values (impossible through Parse)
// resolve as Minimalist to stay total.
// Complexity: O(1); at most 3 draws.
func Resolve(a Aesthetic, s *prng.Stream) Config {
	switch a {
	case Tech:
		return Config{
			StrokeWidth:  prng.Pick(s, mediumStrokes),
			CornerRadius: prng.Pick(s, []float64{0, 0.25}),
			MaxElements:  techBudget,
			PreferFill:   s.Chance(0.35),
			AngleSnap:    45,
			Organic:      0,
			Whitespace:   0.4,
		}
	case Nature:
		return Config{
			StrokeWidth:  prng.Pick(s, thinStrokes),
			CornerRadius: 1,
			MaxElements:  natureBudget,
			PreferFill:   s.Chance(0.5),
			AngleSnap:    0,
			Organic:      s.Float(0.6, 0.95),
			Whitespace:   0.5,
		}
	case Bold:
		return Config{
			StrokeWidth:  prng.Pick(s, heavyStrokes),
			CornerRadius: prng.Pick(s, []float64{0, 0.5}),
			MaxElements:  boldBudget,
			PreferFill:   s.Chance(0.75),
			AngleSnap:    90,
			Organic:      0.1,
			Whitespace:   0.3,
		}
	default: // Minimalist
		return Config{
			StrokeWidth:  prng.Pick(s, thinStrokes),
			CornerRadius: s.Float(0.3, 0.6),
			MaxElements:  minimalistBudget,
			PreferFill:   false,
			AngleSnap:    0,
			Organic:      0.2,
			Whitespace:   0.7,
		}
	}
}
