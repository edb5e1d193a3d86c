// SPDX-License-Identifier: MIT
// Package: geomark/svg
//
// constants.go — the shared mathematical constants of the engine.
//
// These are the only global values in the whole engine; everything else is
// created fresh per invocation.

package svg

// Canvas geometry. Every construction method operates strictly inside a
// CanvasSize×CanvasSize logical viewport centered at (Center, Center).
const (
	// CanvasSize is the side of the square logical canvas in user units.
	CanvasSize = 512.0

	// Center is the canvas midpoint on both axes.
	Center = 256.0

	// Phi is the golden ratio, used for pleasing radius/size subdivisions.
	Phi = 1.618033988749895

	// CurrentColor is the single symbolic color token emitted by all
	// construction methods; consumers recolor via color inheritance.
	CurrentColor = "currentColor"
)

// StrokeWidths is the closed stroke palette. Every stroke-width attribute in
// generated output is drawn from this set (the letterform method may scale
// one palette value by 1.5 for emphasis).
var StrokeWidths = []float64{2, 4, 6, 8}
