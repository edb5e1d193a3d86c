// SPDX-License-Identifier: MIT
// Package: geomark/aesthetic
//
// types.go — the closed style set and the resolved configuration object.

package aesthetic

import (
	"errors"
	"fmt"
)

// Aesthetic is one of the four coarse visual styles. The set is closed;
// iota order is the canonical enumeration order used everywhere.
type Aesthetic uint8

const (
	// Minimalist favors few thin elements and generous whitespace.
	Minimalist Aesthetic = iota

	// Tech favors angular, grid-snapped geometry at medium weight.
	Tech

	// Nature favors organic curves and rounded joins.
	Nature

	// Bold favors heavy strokes and filled silhouettes.
	Bold
)

// All lists the aesthetics in canonical order. Treat as read-only.
var All = []Aesthetic{Minimalist, Tech, Nature, Bold}

// names holds the canonical lowercase labels, indexed by enum value.
var names = [...]string{"minimalist", "tech", "nature", "bold"}

// String returns the canonical lowercase label.
func (a Aesthetic) String() string {
	if int(a) < len(names) {
		return names[a]
	}

	return fmt.Sprintf("aesthetic(%d)", uint8(a))
}

// ErrUnknownAesthetic reports a label outside the closed four-value set.
// Callers branch with errors.Is; the orchestrator treats it as "pick one
// at random" rather than failing.
var ErrUnknownAesthetic = errors.New("aesthetic: unknown style label")

// Parse resolves a canonical label to its Aesthetic.
// Complexity: O(1) over a four-entry scan.
func Parse(label string) (Aesthetic, error) {
	for i, n := range names {
		if label == n {
			return Aesthetic(i), nil
		}
	}

	return Minimalist, fmt.Errorf("%q: %w", label, ErrUnknownAesthetic)
}

// Config is the resolved per-mark tuning. It is created once per
// construction-method invocation and never mutated afterwards.
type Config struct {
	// StrokeWidth is one value from the closed palette {2,4,6,8}.
	StrokeWidth float64

	// CornerRadius is the corner-rounding factor in [0,1]
	// (0 = square, 1 = fully round).
	CornerRadius float64

	// MaxElements caps element density for pattern-style methods.
	MaxElements int

	// PreferFill selects filled silhouettes over stroked outlines.
	PreferFill bool

	// AngleSnap quantizes free angles to this increment in degrees;
	// 0 disables snapping. Values: 0, 45, or 90.
	AngleSnap float64

	// Organic is the curve-organicness factor in [0,1]; higher values bend
	// straight candidates into curves.
	Organic float64

	// Whitespace is the breathing-room factor in [0,1]; higher values pull
	// geometry toward the center and shrink outer radii.
	Whitespace float64
}
