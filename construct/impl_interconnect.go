// SPDX-License-Identifier: MIT
// Package: geomark/construct
//
// impl_interconnect.go — interconnected-geometry: 2–3 primitives that
// overlap, interlock, or flow into one another. The only method whose
// design goal is visual tension between instances rather than repetition
// of one instance.
//
// Overlap is expressed three ways depending on style: partial transparency
// on filled overlaps (fill-opacity on each instance), touching/crossing
// stroked paths, or shared anchor points (petals fanning from one base).
//
// Determinism (draw order): config → style → per-style draws in documented
// order.

package construct

import (
	"github.com/katalvlaran/geomark/aesthetic"
	"github.com/katalvlaran/geomark/prng"
	"github.com/katalvlaran/geomark/svg"
)

// linkStyle enumerates the interconnection styles.
type linkStyle uint8

const (
	styleCircles linkStyle = iota
	styleSquares
	styleSCurves
	styleBrackets
	styleChain
	styleRings
	stylePetals
)

// Per-style candidates (deliberate partial overlaps across aesthetics).
var linkCandidates = map[aesthetic.Aesthetic][]linkStyle{
	aesthetic.Minimalist: {styleCircles, styleRings, styleSCurves},
	aesthetic.Tech:       {styleSquares, styleBrackets, styleChain},
	aesthetic.Nature:     {styleSCurves, stylePetals, styleCircles},
	aesthetic.Bold:       {styleCircles, styleSquares, styleChain, styleRings},
}

// overlapOpacity is the fill transparency used where instances overlap.
const overlapOpacity = "0.5"

func interconnected(p Params) string {
	s := p.Stream
	cfg := aesthetic.Resolve(p.Aesthetic, s)
	style := prng.Pick(s, linkCandidates[p.Aesthetic])

	switch style {
	case styleSquares:
		return linkSquares(s, cfg)
	case styleSCurves:
		return linkSCurves(s, cfg)
	case styleBrackets:
		return linkBrackets(s, cfg)
	case styleChain:
		return linkChain(s, cfg)
	case styleRings:
		return linkRings(s, cfg)
	case stylePetals:
		return linkPetals(s, cfg)
	default:
		return linkCircles(s, cfg)
	}
}

// linkCircles: 2–3 overlapping discs along a snapped axis.
func linkCircles(s *prng.Stream, cfg aesthetic.Config) string {
	n := s.IntBetween(2, 3)
	r := s.Float(85, 120) * (1 - cfg.Whitespace*0.2)
	axis := snapAngle(s.Float(0, fullTurn), cfg.AngleSnap)

	// Centers offset so adjacent discs overlap by ~40% of the radius.
	spread := r * 0.8
	start := -spread * float64(n-1) / 2

	var parts []string
	for i := 0; i < n; i++ {
		offset := start + float64(i)*spread
		cx := polarX(svg.Center, offset, axis)
		cy := polarY(svg.Center, offset, axis)
		c := svg.Circle(cx, cy, r)
		if cfg.PreferFill {
			parts = append(parts, c.Filled().Attr("fill-opacity", overlapOpacity).String())
		} else {
			parts = append(parts, c.Stroked(cfg.StrokeWidth).String())
		}
	}

	return svg.Group(parts...).String()
}

// linkSquares: 2–3 overlapping squares, each individually rotated.
func linkSquares(s *prng.Stream, cfg aesthetic.Config) string {
	n := s.IntBetween(2, 3)
	side := s.Float(130, 180)
	axis := snapAngle(s.Float(0, fullTurn), cfg.AngleSnap)
	spread := side * 0.45
	start := -spread * float64(n-1) / 2

	var parts []string
	for i := 0; i < n; i++ {
		offset := start + float64(i)*spread
		cx := polarX(svg.Center, offset, axis)
		cy := polarY(svg.Center, offset, axis)
		rot := snapAngle(s.Float(0, 90), cfg.AngleSnap)
		sq := svg.Rect(cx-side/2, cy-side/2, side, side)
		if cfg.CornerRadius > 0 {
			sq.Num("rx", side*0.12*cfg.CornerRadius)
		}
		if cfg.PreferFill {
			sq.Filled().Attr("fill-opacity", overlapOpacity)
		} else {
			sq.Stroked(cfg.StrokeWidth)
		}
		if rot != 0 {
			sq.Attr("transform", svg.Rotate(rot, cx, cy))
		}
		parts = append(parts, sq.String())
	}

	return svg.Group(parts...).String()
}

// linkSCurves: 2–3 parallel flowing S-strokes crossing the canvas.
func linkSCurves(s *prng.Stream, cfg aesthetic.Config) string {
	n := s.IntBetween(2, 3)
	reach := s.Float(140, 190)
	bend := s.Float(60, 110) * (0.6 + cfg.Organic*0.8)
	gap := s.Float(28, 44)
	start := -gap * float64(n-1) / 2

	var parts []string
	for i := 0; i < n; i++ {
		y := svg.Center + start + float64(i)*gap
		d := svg.NewPath().
			MoveTo(svg.Center-reach, y).
			CubicTo(svg.Center-reach*0.3, y-bend,
				svg.Center+reach*0.3, y+bend,
				svg.Center+reach, y)
		parts = append(parts,
			svg.Path(d.String()).Stroked(cfg.StrokeWidth).
				Attr("stroke-linecap", "round").String())
	}

	return svg.Group(parts...).String()
}

// linkBrackets: a mirrored pair of angular brackets facing each other.
func linkBrackets(s *prng.Stream, cfg aesthetic.Config) string {
	reach := s.Float(110, 160)
	depth := s.Float(50, 90)
	rot := snapAngle(s.Float(0, fullTurn), cfg.AngleSnap)
	c := svg.Center

	left := svg.NewPath().
		MoveTo(c-reach+depth, c-reach).
		LineTo(c-reach, c-reach).
		LineTo(c-reach, c+reach).
		LineTo(c-reach+depth, c+reach)
	right := svg.NewPath().
		MoveTo(c+reach-depth, c-reach).
		LineTo(c+reach, c-reach).
		LineTo(c+reach, c+reach).
		LineTo(c+reach-depth, c+reach)

	g := svg.Group(
		svg.Path(left.String()).Stroked(cfg.StrokeWidth).String(),
		svg.Path(right.String()).Stroked(cfg.StrokeWidth).String(),
	)
	if rot != 0 {
		g.Attr("transform", svg.Rotate(rot, c, c))
	}

	return g.String()
}

// linkChain: 2–3 rounded rectangles in alternating orientation, each
// overlapping the next like chain links.
func linkChain(s *prng.Stream, cfg aesthetic.Config) string {
	n := s.IntBetween(2, 3)
	long := s.Float(110, 150)
	short := long * s.Float(0.45, 0.6)
	step := long * 0.62
	start := -step * float64(n-1) / 2
	c := svg.Center

	var parts []string
	for i := 0; i < n; i++ {
		cx := c + start + float64(i)*step
		w, h := long, short
		if i%2 == 1 {
			w, h = short, long
		}
		link := svg.Rect(cx-w/2, c-h/2, w, h).
			Num("rx", short/2).
			Stroked(cfg.StrokeWidth)
		parts = append(parts, link.String())
	}

	return svg.Group(parts...).String()
}

// linkRings: an interlocking stroked ring pair.
func linkRings(s *prng.Stream, cfg aesthetic.Config) string {
	r := s.Float(80, 115)
	overlap := r * s.Float(0.55, 0.8)
	axis := snapAngle(s.Float(0, fullTurn), cfg.AngleSnap)

	ax := polarX(svg.Center, -overlap/2, axis)
	ay := polarY(svg.Center, -overlap/2, axis)
	bx := polarX(svg.Center, overlap/2, axis)
	by := polarY(svg.Center, overlap/2, axis)

	return svg.Group(
		svg.Circle(ax, ay, r).Stroked(cfg.StrokeWidth).String(),
		svg.Circle(bx, by, r).Stroked(cfg.StrokeWidth).String(),
	).String()
}

// linkPetals: 2–3 petals fanning out of one shared base anchor.
func linkPetals(s *prng.Stream, cfg aesthetic.Config) string {
	n := s.IntBetween(2, 3)
	length := s.Float(150, 200)
	fan := s.Float(28, 46)
	heading := upAngle + s.Float(-20, 20)
	c := svg.Center

	// Shared anchor sits below center so petals reach upward.
	ax := c
	ay := c + length*0.45

	var parts []string
	for i := 0; i < n; i++ {
		angle := heading + (float64(i)-float64(n-1)/2)*fan
		tipX := polarX(ax, length, angle)
		tipY := polarY(ay, length, angle)
		wide := length * 0.3 * (0.7 + cfg.Organic*0.6)
		// Perpendicular bulge control points.
		px := polarX(0, wide, angle+90)
		py := polarY(0, wide, angle+90)
		midX := (ax + tipX) / 2
		midY := (ay + tipY) / 2

		d := svg.NewPath().
			MoveTo(ax, ay).
			QuadTo(midX+px, midY+py, tipX, tipY).
			QuadTo(midX-px, midY-py, ax, ay).
			Close()
		petal := svg.Path(d.String())
		if cfg.PreferFill {
			parts = append(parts, petal.Filled().Attr("fill-opacity", overlapOpacity).String())
		} else {
			parts = append(parts, petal.Stroked(cfg.StrokeWidth).String())
		}
	}

	return svg.Group(parts...).String()
}
