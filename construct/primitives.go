// SPDX-License-Identifier: MIT
// Package: geomark/construct
//
// primitives.go — the base-unit primitives replicated by radial-construct.
//
// Every unit renders once, pointing at 12 o'clock, spanning radii
// [inner, outer] around the canvas center; the radial method then rotates
// verbatim copies to the fold positions. Finishes follow the resolved
// config (PreferFill / StrokeWidth); all color is the symbolic token.

package construct

import (
	"github.com/katalvlaran/geomark/aesthetic"
	"github.com/katalvlaran/geomark/svg"
)

// radialPrimitive enumerates the base-unit shapes.
type radialPrimitive uint8

const (
	primWedge radialPrimitive = iota
	primArcSegment
	primTeardrop
	primDiamond
	primPetal
	primLeaf
	primBar
	primBracket
)

// Per-aesthetic candidate sets. The partial overlaps across styles are
// deliberate tuning; do not normalize them.
var radialCandidates = map[aesthetic.Aesthetic][]radialPrimitive{
	aesthetic.Minimalist: {primBar, primDiamond, primArcSegment},
	aesthetic.Tech:       {primWedge, primBracket, primDiamond, primBar},
	aesthetic.Nature:     {primPetal, primLeaf, primTeardrop, primArcSegment},
	aesthetic.Bold:       {primWedge, primDiamond, primPetal, primBar},
}

// renderUnit draws one primitive of the given kind. halfSpread is the unit's
// angular half-width in degrees, pre-derived from the fold count so adjacent
// copies never collide.
func renderUnit(kind radialPrimitive, inner, outer, halfSpread float64, cfg aesthetic.Config) string {
	c := svg.Center
	switch kind {
	case primArcSegment:
		// Open arc at the outer radius spanning the unit's angular window.
		d := svg.NewPath().
			MoveTo(polarX(c, outer, upAngle-halfSpread), polarY(c, outer, upAngle-halfSpread)).
			ArcTo(outer, outer, 0, false, true,
				polarX(c, outer, upAngle+halfSpread), polarY(c, outer, upAngle+halfSpread))

		return svg.Path(d.String()).Stroked(cfg.StrokeWidth).String()

	case primTeardrop:
		// Drop: pointed at the inner radius, round at the outer.
		bulge := (outer - inner) * 0.45
		d := svg.NewPath().
			MoveTo(c, c-inner).
			QuadTo(c-bulge, c-(inner+outer)/2, c, c-outer).
			QuadTo(c+bulge, c-(inner+outer)/2, c, c-inner).
			Close()

		return finish(svg.Path(d.String()), cfg)

	case primDiamond:
		mid := (inner + outer) / 2
		half := (outer - inner) * 0.3

		return finish(svg.Polygon(
			c, c-inner, c+half, c-mid, c, c-outer, c-half, c-mid), cfg)

	case primPetal:
		// Two mirrored quadratics meeting at both radii.
		wide := (outer - inner) * 0.6
		d := svg.NewPath().
			MoveTo(c, c-inner).
			QuadTo(c-wide, c-(inner+outer)/2, c, c-outer).
			QuadTo(c+wide, c-(inner+outer)/2, c, c-inner).
			Close()

		return finish(svg.Path(d.String()), cfg)

	case primLeaf:
		// A petal with a midrib stroke.
		wide := (outer - inner) * 0.55
		d := svg.NewPath().
			MoveTo(c, c-inner).
			QuadTo(c-wide, c-(inner+outer)/2, c, c-outer).
			QuadTo(c+wide, c-(inner+outer)/2, c, c-inner).
			Close()
		rib := svg.Line(c, c-inner-(outer-inner)*0.15, c, c-outer+(outer-inner)*0.2)

		return svg.Group(
			finish(svg.Path(d.String()), cfg),
			rib.Stroked(cfg.StrokeWidth).String(),
		).String()

	case primBar:
		// Thin radial bar; corner rounding follows the config.
		w := clamp((outer-inner)*0.18, cfg.StrokeWidth, 24)
		bar := svg.Rect(c-w/2, c-outer, w, outer-inner)
		if cfg.CornerRadius > 0 {
			bar.Num("rx", w/2*cfg.CornerRadius)
		}

		return finish(bar, cfg)

	case primBracket:
		// Angular open bracket: two legs meeting at the outer radius.
		span := clamp(halfSpread*0.8, 12, 40)
		d := svg.NewPath().
			MoveTo(polarX(c, inner, upAngle-span), polarY(c, inner, upAngle-span)).
			LineTo(c, c-outer).
			LineTo(polarX(c, inner, upAngle+span), polarY(c, inner, upAngle+span))

		return svg.Path(d.String()).Stroked(cfg.StrokeWidth).String()

	default: // primWedge
		return finish(svg.Polygon(
			c, c-inner,
			polarX(c, outer, upAngle-halfSpread*0.7), polarY(c, outer, upAngle-halfSpread*0.7),
			polarX(c, outer, upAngle+halfSpread*0.7), polarY(c, outer, upAngle+halfSpread*0.7)), cfg)
	}
}

// finish applies the config's fill-vs-stroke preference to a closed shape.
func finish(e *svg.Element, cfg aesthetic.Config) string {
	if cfg.PreferFill {
		return e.Filled().String()
	}

	return e.Stroked(cfg.StrokeWidth).String()
}
