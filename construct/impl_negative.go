// SPDX-License-Identifier: MIT
// Package: geomark/construct
//
// impl_negative.go — negative-space: a solid container with an industry
// cutout carved out through a luminance mask.
//
// Masking is the wire contract for boolean subtraction (downstream
// consumers expect standard SVG <mask>, not pre-clipped polygons): the mask
// canvas is a white-filled rect, the cutout draws in black inside it, and
// the filled container composites through the mask. The cutout fragment is
// wrapped in <g color="black"> so its symbolic current-color references
// resolve to black inside the mask.
//
// Mask ids are derived from the stream so multiple marks rendered into one
// host document never collide.
//
// Determinism (draw order): config → container → half-size → mask id →
// cutout shape.

package construct

import (
	"fmt"

	"github.com/katalvlaran/geomark/aesthetic"
	"github.com/katalvlaran/geomark/industry"
	"github.com/katalvlaran/geomark/prng"
	"github.com/katalvlaran/geomark/svg"
)

// containerKind enumerates the solid silhouettes.
type containerKind uint8

const (
	containerCircle containerKind = iota
	containerSquare
	containerRounded
	containerHexagon
)

// containerKinds is the fixed selection order.
var containerKinds = []containerKind{
	containerCircle, containerSquare, containerRounded, containerHexagon,
}

// Container sizing: ~40% of the canvas, jittered.
const (
	containerFracLo = 0.36
	containerFracHi = 0.44

	// cutoutScale sizes the carved shape relative to the container.
	cutoutScale = 0.5

	// maskIDSpan is the id entropy range (24 bits rendered as hex).
	maskIDSpan = 1 << 24
)

func negativeSpace(p Params) string {
	s := p.Stream
	cfg := aesthetic.Resolve(p.Aesthetic, s)

	kind := prng.Pick(s, containerKinds)
	half := s.Float(containerFracLo, containerFracHi) * svg.CanvasSize / 2

	// Seed-derived mask id; unique per call within one host document.
	maskID := fmt.Sprintf("cut-%06x", int(s.Next()*maskIDSpan))

	// Cutout: one industry primitive at half the container size, drawn in
	// black inside the white mask canvas (black = removed).
	shape := prng.Pick(s, industry.Shapes(p.Industry))
	cutout := svg.Group(shape(svg.Center, svg.Center, half*cutoutScale, cfg.StrokeWidth)).
		Attr("color", "black").
		Attr("fill", "black").
		String()

	mask := svg.El("mask").Attr("id", maskID).
		Child(svg.Rect(0, 0, svg.CanvasSize, svg.CanvasSize).Attr("fill", "white").String()).
		Child(cutout).
		String()
	defs := svg.El("defs").Child(mask).String()

	container := renderContainer(kind, half, cfg).
		Filled().
		Attr("mask", "url(#"+maskID+")").
		String()

	return defs + container
}

// renderContainer builds the unfinished container silhouette (no paint
// attributes; the caller applies fill and mask).
func renderContainer(kind containerKind, half float64, cfg aesthetic.Config) *svg.Element {
	c := svg.Center
	switch kind {
	case containerSquare:
		return svg.Rect(c-half, c-half, 2*half, 2*half)
	case containerRounded:
		rx := clamp(half*0.25*(1+cfg.CornerRadius), half*0.15, half*0.5)

		return svg.Rect(c-half, c-half, 2*half, 2*half).Num("rx", rx)
	case containerHexagon:
		h := half * 0.866

		return svg.Polygon(
			c-half*0.5, c-h, c+half*0.5, c-h, c+half, c,
			c+half*0.5, c+h, c-half*0.5, c+h, c-half, c)
	default: // containerCircle
		return svg.Circle(c, c, half)
	}
}
