// SPDX-License-Identifier: MIT
// Package: geomark/construct
//
// geom.go — shared polar/angle math for the construction methods.
//
// All angles are degrees, measured clockwise from the positive x-axis in
// SVG screen coordinates (y grows downward). upAngle points at 12 o'clock.

package construct

import "math"

// upAngle is the screen-space direction of 12 o'clock.
const upAngle = -90.0

// fullTurn is one revolution in degrees.
const fullTurn = 360.0

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// polarX returns the x coordinate at (r, angleDeg) around cx.
func polarX(cx, r, angleDeg float64) float64 {
	return cx + r*math.Cos(degToRad(angleDeg))
}

// polarY returns the y coordinate at (r, angleDeg) around cy.
func polarY(cy, r, angleDeg float64) float64 {
	return cy + r*math.Sin(degToRad(angleDeg))
}

// snapAngle quantizes deg to the nearest multiple of inc; inc ≤ 0 leaves the
// angle unconstrained.
func snapAngle(deg, inc float64) float64 {
	if inc <= 0 {
		return deg
	}

	return math.Round(deg/inc) * inc
}

// clamp bounds v into [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
