// SPDX-License-Identifier: MIT
// Package: geomark/industry
//
// shapes.go — canonical per-category primitive library (data-only).
//
// Purpose:
//   - Single source of truth for the abstract primitives each category can
//     contribute to a mark. Construction methods pick from these lists; the
//     lists are immutable and their order is part of the public behavior
//     (selection indexes into them through the seeded stream).
//
// Contract (for consumers):
//   - Every Shape is pure: (cx, cy, r, strokeWidth) → markup fragment.
//   - r is the half-extent of the shape's bounding region; shapes never
//     draw outside the circle of radius r around (cx, cy).
//   - All color references use the symbolic current-color token so masks
//     and consumers can recolor by inheritance.
//   - Shapes stay abstract: suggestive geometry, never literal icons.

package industry

import "github.com/katalvlaran/geomark/svg"

// Shape renders one abstract primitive centered at (cx, cy) within radius r
// at the given stroke width.
type Shape func(cx, cy, r, strokeWidth float64) string

// shapeLib maps each category to its ordered primitive list.
// Append-only; never reorder (seeded selection depends on positions).
var shapeLib = map[Industry][]Shape{
	Technology: {nodeShape, chevronStack, hexFrame},
	Finance:    {shieldShape, risingBars, upTrapezoid},
	Health:     {softCross, pulseLine, haloRings},
	Food:       {bowlArc, steamCurves, wedgeSlice},
	Education:  {stepAscent, pennant, arcOverDot},
	Creative:   {triadOverlap, spiralStroke, skewQuad},
	Nature:     {leafShape, branchShape, waveBand},
	Retail:     {tagDiamond, stackedTiles, awningArcs},
	General:    {plainCircle, tiltedSquare, plainTriangle},
}

// Shapes returns the primitive list for category i (General when the
// category carries no list, which cannot happen for canonical values).
// The returned slice is shared; callers must not mutate it.
func Shapes(i Industry) []Shape {
	if lib, ok := shapeLib[i]; ok {
		return lib
	}

	return shapeLib[General]
}

// -----------------------------------------------------------------------------
// Technology — connective, angular.
// -----------------------------------------------------------------------------

// nodeShape: a core circle with four radiating stubs (abstract junction).
func nodeShape(cx, cy, r, sw float64) string {
	core := r * 0.45
	return svg.Group(
		svg.Circle(cx, cy, core).Stroked(sw).String(),
		svg.Line(cx, cy-core, cx, cy-r).Stroked(sw).String(),
		svg.Line(cx+core, cy, cx+r, cy).Stroked(sw).String(),
		svg.Line(cx, cy+core, cx, cy+r).Stroked(sw).String(),
		svg.Line(cx-core, cy, cx-r, cy).Stroked(sw).String(),
	).String()
}

// chevronStack: two nested upward chevrons.
func chevronStack(cx, cy, r, sw float64) string {
	d1 := svg.NewPath().
		MoveTo(cx-r, cy+r*0.35).LineTo(cx, cy-r*0.55).LineTo(cx+r, cy+r*0.35)
	d2 := svg.NewPath().
		MoveTo(cx-r*0.6, cy+r*0.9).LineTo(cx, cy+r*0.35).LineTo(cx+r*0.6, cy+r*0.9)

	return svg.Group(
		svg.Path(d1.String()).Stroked(sw).String(),
		svg.Path(d2.String()).Stroked(sw).String(),
	).String()
}

// hexFrame: a flat-top hexagon outline.
func hexFrame(cx, cy, r, sw float64) string {
	h := r * 0.866 // cos(30°)
	return svg.Polygon(
		cx-r*0.5, cy-h, cx+r*0.5, cy-h, cx+r, cy,
		cx+r*0.5, cy+h, cx-r*0.5, cy+h, cx-r, cy,
	).Stroked(sw).String()
}

// -----------------------------------------------------------------------------
// Finance — stable, ascending.
// -----------------------------------------------------------------------------

// shieldShape: a pointed shield outline (trust silhouette, not heraldry).
func shieldShape(cx, cy, r, sw float64) string {
	d := svg.NewPath().
		MoveTo(cx, cy-r).
		LineTo(cx+r*0.8, cy-r*0.55).
		LineTo(cx+r*0.8, cy+r*0.2).
		QuadTo(cx+r*0.8, cy+r*0.75, cx, cy+r).
		QuadTo(cx-r*0.8, cy+r*0.75, cx-r*0.8, cy+r*0.2).
		LineTo(cx-r*0.8, cy-r*0.55).
		Close()

	return svg.Path(d.String()).Stroked(sw).String()
}

// risingBars: three ascending bars (abstract growth, no axis).
func risingBars(cx, cy, r, sw float64) string {
	w := r * 0.42
	gap := r * 0.24
	left := cx - w*1.5 - gap

	return svg.Group(
		svg.Rect(left, cy+r*0.1, w, r*0.9).Filled().String(),
		svg.Rect(left+w+gap, cy-r*0.35, w, r*1.35).Filled().String(),
		svg.Rect(left+2*(w+gap), cy-r*0.8, w, r*1.8).Filled().String(),
	).String()
}

// upTrapezoid: an upward-widening trapezoid outline.
func upTrapezoid(cx, cy, r, sw float64) string {
	return svg.Polygon(
		cx-r*0.45, cy+r*0.7, cx+r*0.45, cy+r*0.7,
		cx+r*0.9, cy-r*0.7, cx-r*0.9, cy-r*0.7,
	).Stroked(sw).String()
}

// -----------------------------------------------------------------------------
// Health — soft, concentric.
// -----------------------------------------------------------------------------

// softCross: a plus form from two rounded bars.
func softCross(cx, cy, r, sw float64) string {
	arm := r * 0.38
	rx := arm * 0.5

	return svg.Group(
		svg.Rect(cx-arm*0.5, cy-r, arm, 2*r).Num("rx", rx).Filled().String(),
		svg.Rect(cx-r, cy-arm*0.5, 2*r, arm).Num("rx", rx).Filled().String(),
	).String()
}

// pulseLine: a single abstract beat across the width.
func pulseLine(cx, cy, r, sw float64) string {
	d := svg.NewPath().
		MoveTo(cx-r, cy).
		LineTo(cx-r*0.35, cy).
		LineTo(cx-r*0.12, cy-r*0.75).
		LineTo(cx+r*0.12, cy+r*0.55).
		LineTo(cx+r*0.35, cy).
		LineTo(cx+r, cy)

	return svg.Path(d.String()).Stroked(sw).
		Attr("stroke-linejoin", "round").String()
}

// haloRings: two concentric circles.
func haloRings(cx, cy, r, sw float64) string {
	return svg.Group(
		svg.Circle(cx, cy, r).Stroked(sw).String(),
		svg.Circle(cx, cy, r*0.55).Stroked(sw).String(),
	).String()
}

// -----------------------------------------------------------------------------
// Food — warm, contained.
// -----------------------------------------------------------------------------

// bowlArc: a lower half-disc outline (vessel silhouette).
func bowlArc(cx, cy, r, sw float64) string {
	d := svg.NewPath().
		MoveTo(cx-r, cy).
		ArcTo(r, r, 0, false, false, cx+r, cy).
		Close()

	return svg.Path(d.String()).Stroked(sw).String()
}

// steamCurves: three rising S-curves.
func steamCurves(cx, cy, r, sw float64) string {
	curve := func(x float64) string {
		d := svg.NewPath().
			MoveTo(x, cy+r).
			CubicTo(x-r*0.35, cy+r*0.3, x+r*0.35, cy-r*0.3, x, cy-r)

		return svg.Path(d.String()).Stroked(sw).String()
	}

	return svg.Group(curve(cx-r*0.55), curve(cx), curve(cx+r*0.55)).String()
}

// wedgeSlice: a circle sector pointing at the center.
func wedgeSlice(cx, cy, r, sw float64) string {
	d := svg.NewPath().
		MoveTo(cx, cy+r*0.9).
		LineTo(cx-r*0.8, cy-r*0.5).
		ArcTo(r, r, 0, false, true, cx+r*0.8, cy-r*0.5).
		Close()

	return svg.Path(d.String()).Stroked(sw).String()
}

// -----------------------------------------------------------------------------
// Education — ascending, structured.
// -----------------------------------------------------------------------------

// stepAscent: three rising steps as one polyline.
func stepAscent(cx, cy, r, sw float64) string {
	d := svg.NewPath().
		MoveTo(cx-r, cy+r*0.8).
		LineTo(cx-r, cy+r*0.2).LineTo(cx-r*0.33, cy+r*0.2).
		LineTo(cx-r*0.33, cy-r*0.3).LineTo(cx+r*0.33, cy-r*0.3).
		LineTo(cx+r*0.33, cy-r*0.8).LineTo(cx+r, cy-r*0.8)

	return svg.Path(d.String()).Stroked(sw).String()
}

// pennant: a slim triangular flag on a vertical stem.
func pennant(cx, cy, r, sw float64) string {
	return svg.Group(
		svg.Line(cx-r*0.5, cy-r, cx-r*0.5, cy+r).Stroked(sw).String(),
		svg.Polygon(cx-r*0.5, cy-r, cx+r*0.9, cy-r*0.55, cx-r*0.5, cy-r*0.1).
			Filled().String(),
	).String()
}

// arcOverDot: an open arc sheltering a single dot.
func arcOverDot(cx, cy, r, sw float64) string {
	d := svg.NewPath().
		MoveTo(cx-r, cy+r*0.35).
		ArcTo(r, r, 0, false, true, cx+r, cy+r*0.35)

	return svg.Group(
		svg.Path(d.String()).Stroked(sw).String(),
		svg.Circle(cx, cy+r*0.45, r*0.18).Filled().String(),
	).String()
}

// -----------------------------------------------------------------------------
// Creative — overlapping, irregular.
// -----------------------------------------------------------------------------

// triadOverlap: a triangle outline crossing a circle outline.
func triadOverlap(cx, cy, r, sw float64) string {
	return svg.Group(
		svg.Circle(cx-r*0.25, cy+r*0.15, r*0.6).Stroked(sw).String(),
		svg.Polygon(cx+r*0.15, cy-r*0.85, cx+r*0.85, cy+r*0.55, cx-r*0.45, cy+r*0.55).
			Stroked(sw).String(),
	).String()
}

// spiralStroke: a two-turn unwinding arc pair.
func spiralStroke(cx, cy, r, sw float64) string {
	d := svg.NewPath().
		MoveTo(cx, cy).
		ArcTo(r*0.3, r*0.3, 0, false, true, cx, cy-r*0.6).
		ArcTo(r*0.65, r*0.65, 0, false, false, cx, cy+r*0.7).
		ArcTo(r, r, 0, false, true, cx, cy-r)

	return svg.Path(d.String()).Stroked(sw).String()
}

// skewQuad: an off-balance quadrilateral.
func skewQuad(cx, cy, r, sw float64) string {
	return svg.Polygon(
		cx-r*0.9, cy-r*0.4, cx+r*0.5, cy-r*0.9,
		cx+r*0.9, cy+r*0.5, cx-r*0.3, cy+r*0.9,
	).Stroked(sw).String()
}

// -----------------------------------------------------------------------------
// Nature — curved, branching.
// -----------------------------------------------------------------------------

// leafShape: a closed two-curve leaf with a midrib.
func leafShape(cx, cy, r, sw float64) string {
	d := svg.NewPath().
		MoveTo(cx, cy+r).
		QuadTo(cx-r*0.95, cy+r*0.25, cx, cy-r).
		QuadTo(cx+r*0.95, cy+r*0.25, cx, cy+r).
		Close()

	return svg.Group(
		svg.Path(d.String()).Stroked(sw).String(),
		svg.Line(cx, cy+r*0.8, cx, cy-r*0.6).Stroked(sw).String(),
	).String()
}

// branchShape: a rising stem with two offshoots.
func branchShape(cx, cy, r, sw float64) string {
	d := svg.NewPath().
		MoveTo(cx, cy+r).
		QuadTo(cx+r*0.15, cy, cx, cy-r)
	off1 := svg.NewPath().
		MoveTo(cx+r*0.04, cy+r*0.25).
		QuadTo(cx+r*0.5, cy+r*0.1, cx+r*0.75, cy-r*0.25)
	off2 := svg.NewPath().
		MoveTo(cx+r*0.02, cy-r*0.25).
		QuadTo(cx-r*0.45, cy-r*0.4, cx-r*0.7, cy-r*0.75)

	return svg.Group(
		svg.Path(d.String()).Stroked(sw).String(),
		svg.Path(off1.String()).Stroked(sw).String(),
		svg.Path(off2.String()).Stroked(sw).String(),
	).String()
}

// waveBand: two stacked sine-like strokes.
func waveBand(cx, cy, r, sw float64) string {
	wave := func(y float64) string {
		d := svg.NewPath().
			MoveTo(cx-r, y).
			QuadTo(cx-r*0.5, y-r*0.45, cx, y).
			QuadTo(cx+r*0.5, y+r*0.45, cx+r, y)

		return svg.Path(d.String()).Stroked(sw).String()
	}

	return svg.Group(wave(cy-r*0.3), wave(cy+r*0.3)).String()
}

// -----------------------------------------------------------------------------
// Retail — packaged, repeated.
// -----------------------------------------------------------------------------

// tagDiamond: a rotated-square tag with a pierced eyelet.
func tagDiamond(cx, cy, r, sw float64) string {
	return svg.Group(
		svg.Polygon(cx, cy-r, cx+r, cy, cx, cy+r, cx-r, cy).Stroked(sw).String(),
		svg.Circle(cx, cy-r*0.45, r*0.16).Stroked(sw).String(),
	).String()
}

// stackedTiles: three offset square outlines.
func stackedTiles(cx, cy, r, sw float64) string {
	s := r * 0.9
	return svg.Group(
		svg.Rect(cx-r, cy-r*0.1, s, s).Stroked(sw).String(),
		svg.Rect(cx-r*0.45, cy-r*0.55, s, s).Stroked(sw).String(),
		svg.Rect(cx+r*0.1, cy-r, s, s).Stroked(sw).String(),
	).String()
}

// awningArcs: three scallops along a bar.
func awningArcs(cx, cy, r, sw float64) string {
	w := r * 2 / 3
	d := svg.NewPath().MoveTo(cx-r, cy-r*0.3)
	d.LineTo(cx+r, cy-r*0.3)
	scallops := svg.NewPath().MoveTo(cx-r, cy-r*0.3)
	for k := 0; k < 3; k++ {
		x := cx - r + float64(k)*w
		scallops.ArcTo(w*0.5, w*0.5, 0, false, false, x+w, cy-r*0.3)
	}

	return svg.Group(
		svg.Path(d.String()).Stroked(sw).String(),
		svg.Path(scallops.String()).Stroked(sw).String(),
	).String()
}

// -----------------------------------------------------------------------------
// General — neutral fallbacks.
// -----------------------------------------------------------------------------

// plainCircle: a circle outline.
func plainCircle(cx, cy, r, sw float64) string {
	return svg.Circle(cx, cy, r).Stroked(sw).String()
}

// tiltedSquare: a 45°-rotated square outline.
func tiltedSquare(cx, cy, r, sw float64) string {
	return svg.Polygon(cx, cy-r, cx+r, cy, cx, cy+r, cx-r, cy).Stroked(sw).String()
}

// plainTriangle: an equilateral triangle outline.
func plainTriangle(cx, cy, r, sw float64) string {
	return svg.Polygon(cx, cy-r, cx+r*0.866, cy+r*0.5, cx-r*0.866, cy+r*0.5).
		Stroked(sw).String()
}
