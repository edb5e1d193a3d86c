// SPDX-License-Identifier: MIT
// Package: geomark/construct
//
// impl_letterform.go — constructed-letterform: the brand initial abstracted
// through one of five treatments.
//
// The initial is the first alphabetic rune of the brand name, uppercased;
// a name with no letters falls back to 'A'. The letter contributes its
// anatomical features (letter_anatomy.go) and a base angle derived from its
// alphabetic position. Output is letter-inspired, never a readable glyph.
//
// Treatments:
//   - geometric-deconstruct — one primitive per present feature (arc for
//     curve, stem for vertical, angled stroke for diagonal); abstract cross
//     when no feature matches.
//   - negative-cut — feature-shaped holes carved from a solid silhouette
//     (same luminance-mask contract as the negative-space method).
//   - arc-reduction — 2–4 arc segments at varying radii, optional crossbar.
//   - fragmented — 3–5 small independent pieces scattered around the
//     letter's implied position.
//   - rotated-partial — a minimal scaffold of the dominant feature rotated
//     by a snapped angle, plus one contrasting unrotated accent dot.
//
// Stroke emphasis: a treatment may scale the resolved palette stroke by 1.5
// for its dominant element (the only sanctioned departure from the raw
// palette values).
//
// Determinism (draw order): config → treatment → per-treatment draws in
// documented order.

package construct

import (
	"fmt"
	"unicode"

	"github.com/katalvlaran/geomark/aesthetic"
	"github.com/katalvlaran/geomark/prng"
	"github.com/katalvlaran/geomark/svg"
)

// letterTreatment enumerates the abstraction treatments.
type letterTreatment uint8

const (
	treatDeconstruct letterTreatment = iota
	treatNegativeCut
	treatArcReduction
	treatFragmented
	treatRotatedPartial
)

// letterTreatments is the fixed selection order.
var letterTreatments = []letterTreatment{
	treatDeconstruct, treatNegativeCut, treatArcReduction,
	treatFragmented, treatRotatedPartial,
}

// emphasisFactor scales the palette stroke for a treatment's dominant
// element.
const emphasisFactor = 1.5

// fallbackInitial anchors nameless input to a deterministic letterform.
const fallbackInitial = 'A'

func letterform(p Params) string {
	s := p.Stream
	cfg := aesthetic.Resolve(p.Aesthetic, s)

	initial := brandInitial(p.Brand)
	base := letterBaseAngle(initial)
	treatment := prng.Pick(s, letterTreatments)

	switch treatment {
	case treatNegativeCut:
		return letterNegativeCut(s, initial, base, cfg)
	case treatArcReduction:
		return letterArcReduction(s, initial, base, cfg)
	case treatFragmented:
		return letterFragmented(s, initial, base, cfg)
	case treatRotatedPartial:
		return letterRotatedPartial(s, initial, base, cfg)
	default:
		return letterDeconstruct(s, initial, base, cfg)
	}
}

// brandInitial extracts the case-normalized first letter of name.
func brandInitial(name string) rune {
	for _, r := range name {
		if unicode.IsLetter(r) {
			return unicode.ToUpper(r)
		}
	}

	return fallbackInitial
}

// letterDeconstruct renders one primitive per present anatomical feature.
func letterDeconstruct(s *prng.Stream, initial rune, base float64, cfg aesthetic.Config) string {
	c := svg.Center
	reach := s.Float(110, 150) * (1 - cfg.Whitespace*0.2)
	emphasis := cfg.StrokeWidth * emphasisFactor

	var parts []string
	if hasCurve(initial) {
		// Open arc, bowl side facing the letter's base angle.
		start := snapAngle(base-40, cfg.AngleSnap)
		d := svg.NewPath().
			MoveTo(polarX(c, reach, start), polarY(c, reach, start)).
			ArcTo(reach, reach, 0, false, true,
				polarX(c, reach, start+170), polarY(c, reach, start+170))
		parts = append(parts, svg.Path(d.String()).Stroked(emphasis).String())
	}
	if hasVertical(initial) {
		x := c - reach*0.35
		parts = append(parts,
			svg.Line(x, c-reach, x, c+reach).Stroked(cfg.StrokeWidth).String())
	}
	if hasDiagonal(initial) {
		angle := snapAngle(base+45, cfg.AngleSnap)
		parts = append(parts, svg.Line(
			polarX(c, reach*0.9, angle), polarY(c, reach*0.9, angle),
			polarX(c, reach*0.9, angle+180), polarY(c, reach*0.9, angle+180)).
			Stroked(cfg.StrokeWidth).String())
	}
	if len(parts) == 0 {
		// No anatomy matched (symbols, rare letters): abstract cross.
		angle := snapAngle(base, cfg.AngleSnap)
		cross := svg.Group(
			svg.Line(c-reach*0.7, c, c+reach*0.7, c).Stroked(emphasis).String(),
			svg.Line(c, c-reach*0.7, c, c+reach*0.7).Stroked(cfg.StrokeWidth).String(),
		)
		if angle != 0 {
			cross.Attr("transform", svg.Rotate(angle, c, c))
		}
		parts = append(parts, cross.String())
	}

	// Symmetric letters earn a balancing baseline dot.
	if isSymmetric(initial) {
		parts = append(parts,
			svg.Circle(c, c+reach*1.15, s.Float(6, 10)).Filled().String())
	}

	return svg.Group(parts...).String()
}

// letterNegativeCut carves feature-shaped holes from a solid silhouette.
func letterNegativeCut(s *prng.Stream, initial rune, base float64, cfg aesthetic.Config) string {
	c := svg.Center
	half := s.Float(95, 125)
	maskID := fmt.Sprintf("glyph-%06x", int(s.Next()*maskIDSpan))

	// Feature holes drawn in black inside the white mask canvas.
	hole := svg.El("g").Attr("color", "black").Attr("fill", "black")
	barW := clamp(half*0.22, 12, 34)
	if hasVertical(initial) {
		hole.Child(svg.Rect(c-barW/2, c-half*1.1, barW, half*2.2).Attr("fill", "black").String())
	}
	if hasDiagonal(initial) {
		angle := snapAngle(base+45, cfg.AngleSnap)
		bar := svg.Rect(c-barW/2, c-half*1.1, barW, half*2.2).
			Attr("fill", "black").
			Attr("transform", svg.Rotate(angle+45, c, c))
		hole.Child(bar.String())
	}
	if hasCurve(initial) {
		// Bowl hole as a filled annular band (keeps stroke widths out of
		// the mask entirely).
		y := c + half*0.4
		ro := half*0.55 + barW/2
		ri := half*0.55 - barW/2
		d := svg.NewPath().
			MoveTo(c-ro, y).
			ArcTo(ro, ro, 0, false, true, c+ro, y).
			LineTo(c+ri, y).
			ArcTo(ri, ri, 0, false, false, c-ri, y).
			Close()
		hole.Child(svg.Path(d.String()).Attr("fill", "black").String())
	}
	if !hasVertical(initial) && !hasDiagonal(initial) && !hasCurve(initial) {
		hole.Child(svg.Circle(c, c, half*0.4).Attr("fill", "black").String())
	}

	mask := svg.El("mask").Attr("id", maskID).
		Child(svg.Rect(0, 0, svg.CanvasSize, svg.CanvasSize).Attr("fill", "white").String()).
		Child(hole.String()).
		String()
	defs := svg.El("defs").Child(mask).String()

	// Silhouette: circle for curve-anatomy letters, rounded rect otherwise.
	var solid *svg.Element
	if hasCurve(initial) {
		solid = svg.Circle(c, c, half)
	} else {
		rx := clamp(half*0.2*(1+cfg.CornerRadius), half*0.08, half*0.45)
		solid = svg.Rect(c-half, c-half, 2*half, 2*half).Num("rx", rx)
	}

	return defs + solid.Filled().Attr("mask", "url(#"+maskID+")").String()
}

// letterArcReduction reduces the letter to 2–4 arc segments plus an
// optional crossbar.
func letterArcReduction(s *prng.Stream, initial rune, base float64, cfg aesthetic.Config) string {
	count := s.IntBetween(2, 4)
	emphasis := cfg.StrokeWidth * emphasisFactor
	c := svg.Center

	var parts []string
	for i := 0; i < count; i++ {
		radius := s.Float(55, 165)
		start := snapAngle(base+float64(i)*s.Float(50, 110), cfg.AngleSnap)
		sweep := s.Float(90, 180)
		width := cfg.StrokeWidth
		if i == 0 {
			width = emphasis
		}
		d := svg.NewPath().
			MoveTo(polarX(c, radius, start), polarY(c, radius, start)).
			ArcTo(radius, radius, 0, sweep > 180, true,
				polarX(c, radius, start+sweep), polarY(c, radius, start+sweep))
		parts = append(parts, svg.Path(d.String()).Stroked(width).
			Attr("stroke-linecap", "round").String())
	}

	// Crossbar echoes letters whose anatomy carries a straight stroke.
	if (hasVertical(initial) || hasDiagonal(initial)) && s.Chance(0.6) {
		angle := snapAngle(base, cfg.AngleSnap)
		half := s.Float(70, 120)
		parts = append(parts, svg.Line(
			polarX(c, half, angle), polarY(c, half, angle),
			polarX(c, half, angle+180), polarY(c, half, angle+180)).
			Stroked(cfg.StrokeWidth).String())
	}

	return svg.Group(parts...).String()
}

// letterFragmented scatters 3–5 small independent pieces around the
// letter's implied position.
func letterFragmented(s *prng.Stream, initial rune, base float64, cfg aesthetic.Config) string {
	count := s.IntBetween(3, 5)
	c := svg.Center
	scatter := s.Float(90, 140)

	var parts []string
	for i := 0; i < count; i++ {
		// Fragments orbit the implied letter position, biased by the base
		// angle so the same initial always scatters the same way.
		angle := base + float64(i)*(fullTurn/float64(count)) + s.Float(-20, 20)
		radius := scatter * s.Float(0.35, 1)
		x := polarX(c, radius, angle)
		y := polarY(c, radius, angle)
		size := s.Float(14, 34)

		// Piece selection follows anatomy: curves yield arcs, straight
		// anatomy yields strokes, everything may yield dots.
		switch {
		case hasCurve(initial) && i%2 == 0:
			d := svg.NewPath().
				MoveTo(x-size/2, y).
				ArcTo(size/2, size/2, 0, false, true, x+size/2, y)
			parts = append(parts, svg.Path(d.String()).Stroked(cfg.StrokeWidth).
				Attr("transform", svg.Rotate(snapAngle(angle, cfg.AngleSnap), x, y)).String())
		case (hasVertical(initial) || hasDiagonal(initial)) && i%3 != 2:
			tilt := snapAngle(angle+base, cfg.AngleSnap)
			line := svg.Line(x, y-size/2, x, y+size/2).Stroked(cfg.StrokeWidth)
			if tilt != 0 {
				line.Attr("transform", svg.Rotate(tilt, x, y))
			}
			parts = append(parts, line.String())
		default:
			parts = append(parts, svg.Circle(x, y, size*0.25).Filled().String())
		}
	}

	return svg.Group(parts...).String()
}

// letterRotatedPartial rotates a minimal scaffold of the dominant feature
// and adds one contrasting unrotated accent dot.
func letterRotatedPartial(s *prng.Stream, initial rune, base float64, cfg aesthetic.Config) string {
	c := svg.Center
	reach := s.Float(100, 145)
	emphasis := cfg.StrokeWidth * emphasisFactor

	// Dominant feature priority: curve > vertical > diagonal > cross.
	var scaffold *svg.Element
	switch {
	case hasCurve(initial):
		d := svg.NewPath().
			MoveTo(c, c-reach).
			ArcTo(reach, reach, 0, false, true, c, c+reach)
		scaffold = svg.Path(d.String()).Stroked(emphasis)
	case hasVertical(initial):
		scaffold = svg.Group(
			svg.Line(c, c-reach, c, c+reach).Stroked(emphasis).String(),
			svg.Line(c, c-reach*0.1, c+reach*0.6, c-reach*0.1).Stroked(cfg.StrokeWidth).String(),
		)
	case hasDiagonal(initial):
		scaffold = svg.Group(
			svg.Line(c-reach*0.7, c+reach, c, c-reach).Stroked(emphasis).String(),
			svg.Line(c, c-reach, c+reach*0.7, c+reach).Stroked(cfg.StrokeWidth).String(),
		)
	default:
		scaffold = svg.Group(
			svg.Line(c-reach*0.7, c, c+reach*0.7, c).Stroked(emphasis).String(),
			svg.Line(c, c-reach*0.7, c, c+reach*0.7).Stroked(cfg.StrokeWidth).String(),
		)
	}

	// Whole-scaffold rotation, snapped; 45° fallback keeps the "rotated"
	// promise when the snapped draw lands on 0.
	rot := snapAngle(base+s.Float(15, 75), cfg.AngleSnap)
	if rot == 0 {
		rot = 45
	}
	scaffold.Attr("transform", svg.Rotate(rot, c, c))

	// Contrasting accent: deliberately outside the rotation group.
	accentAngle := base + 180
	accent := svg.Circle(
		polarX(c, reach*0.85, accentAngle),
		polarY(c, reach*0.85, accentAngle),
		s.Float(7, 12)).Filled()

	return svg.Group(scaffold.String(), accent.String()).String()
}
