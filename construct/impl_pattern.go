// SPDX-License-Identifier: MIT
// Package: geomark/construct
//
// impl_pattern.go — dynamic-pattern: one micro-element repeated under a
// layout strategy at controlled density.
//
// Layouts:
//   - spiral  — Archimedean growth from a small inner radius to ~38% of the
//     canvas over 1.5–3 turns; element size scales with progress.
//   - wave    — horizontal band modulated by a sine with 1–2.5 periods and
//     40–80px amplitude.
//   - grid    — 4–6 × 4–6 lattice with ~30% random omission (center element
//     restored if omission empties the lattice).
//   - cluster — disc scatter with square-root radial distribution (uniform
//     areal density) and randomized rotation.
//   - orbit   — 2–3 faint concentric rings carrying evenly spaced elements,
//     plus one larger center dot.
//
// The per-style layout and element candidate sets overlap partially by
// design (style tuning); do not normalize them.
//
// Determinism (draw order): config → layout → element → count → per-layout
// draws in loop order.

package construct

import (
	"math"

	"github.com/katalvlaran/geomark/aesthetic"
	"github.com/katalvlaran/geomark/prng"
	"github.com/katalvlaran/geomark/svg"
)

// patternLayout enumerates the layout strategies.
type patternLayout uint8

const (
	layoutSpiral patternLayout = iota
	layoutWave
	layoutGrid
	layoutCluster
	layoutOrbit
)

// microElement enumerates the repeatable motifs.
type microElement uint8

const (
	microDot microElement = iota
	microDash
	microSquare
	microLeaf
	microArc
	microDiamond
)

// Per-style candidate sets (deliberate partial overlaps).
var (
	layoutCandidates = map[aesthetic.Aesthetic][]patternLayout{
		aesthetic.Minimalist: {layoutGrid, layoutOrbit, layoutWave},
		aesthetic.Tech:       {layoutGrid, layoutOrbit, layoutSpiral},
		aesthetic.Nature:     {layoutSpiral, layoutWave, layoutCluster},
		aesthetic.Bold:       {layoutCluster, layoutGrid, layoutSpiral},
	}

	microCandidates = map[aesthetic.Aesthetic][]microElement{
		aesthetic.Minimalist: {microDot, microDash, microSquare},
		aesthetic.Tech:       {microSquare, microDash, microDiamond, microDot},
		aesthetic.Nature:     {microLeaf, microDot, microArc},
		aesthetic.Bold:       {microDot, microSquare, microDiamond},
	}
)

// Density and layout bounds.
const (
	patternCountMin = 8
	patternCountMax = 24
	budgetFactor    = 4

	spiralReach   = 0.38 // of canvas size
	spiralTurnsLo = 1.5
	spiralTurnsHi = 3.0

	waveAmpLo     = 40.0
	waveAmpHi     = 80.0
	wavePeriodsLo = 1.0
	wavePeriodsHi = 2.5

	gridSideMin  = 4
	gridSideMax  = 6
	gridOmission = 0.3

	orbitRingCount = 2 // plus IntBetween adds up to one more
)

func dynamicPattern(p Params) string {
	s := p.Stream
	cfg := aesthetic.Resolve(p.Aesthetic, s)

	layout := prng.Pick(s, layoutCandidates[p.Aesthetic])
	micro := prng.Pick(s, microCandidates[p.Aesthetic])

	capCount := cfg.MaxElements * budgetFactor
	if capCount > patternCountMax {
		capCount = patternCountMax
	}
	count := s.IntBetween(patternCountMin, capCount)

	switch layout {
	case layoutWave:
		return patternWave(s, micro, count, cfg)
	case layoutGrid:
		return patternGrid(s, micro, cfg)
	case layoutCluster:
		return patternCluster(s, micro, count, cfg)
	case layoutOrbit:
		return patternOrbit(s, micro, cfg)
	default:
		return patternSpiral(s, micro, count, cfg)
	}
}

// patternSpiral lays count elements along an Archimedean spiral.
func patternSpiral(s *prng.Stream, micro microElement, count int, cfg aesthetic.Config) string {
	r0 := s.Float(10, 24)
	rMax := svg.CanvasSize * spiralReach
	turns := s.Float(spiralTurnsLo, spiralTurnsHi)
	phase := s.Float(0, fullTurn)
	base := s.Float(8, 14)

	var parts []string
	for i := 0; i < count; i++ {
		t := float64(i) / float64(count-1)
		angle := phase + t*turns*fullTurn
		radius := r0 + (rMax-r0)*t
		size := base * (0.4 + 0.6*t)
		x := polarX(svg.Center, radius, angle)
		y := polarY(svg.Center, radius, angle)
		parts = append(parts, renderMicro(micro, x, y, size, angle, cfg))
	}

	return svg.Group(parts...).String()
}

// patternWave lays count elements along a sine-modulated band.
func patternWave(s *prng.Stream, micro microElement, count int, cfg aesthetic.Config) string {
	periods := s.Float(wavePeriodsLo, wavePeriodsHi)
	amp := s.Float(waveAmpLo, waveAmpHi)
	phase := s.Float(0, fullTurn)
	size := s.Float(8, 14)

	// Band margins keep every element inside the canvas at max amplitude.
	const margin = 80.0
	span := svg.CanvasSize - 2*margin

	var parts []string
	for i := 0; i < count; i++ {
		t := float64(i) / float64(count-1)
		x := margin + t*span
		y := svg.Center + amp*math.Sin(degToRad(phase)+t*periods*2*math.Pi)
		parts = append(parts, renderMicro(micro, x, y, size, 0, cfg))
	}

	return svg.Group(parts...).String()
}

// patternGrid lays elements on an n×n lattice with random omission.
func patternGrid(s *prng.Stream, micro microElement, cfg aesthetic.Config) string {
	n := s.IntBetween(gridSideMin, gridSideMax)
	size := s.Float(8, 14)

	// Lattice footprint ~55% of the canvas, centered.
	extent := svg.CanvasSize * 0.55
	cell := extent / float64(n-1)
	origin := svg.Center - extent/2

	var parts []string
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if s.Chance(gridOmission) {
				continue
			}
			x := origin + float64(col)*cell
			y := origin + float64(row)*cell
			parts = append(parts, renderMicro(micro, x, y, size, 0, cfg))
		}
	}

	// Omission can (rarely) empty the lattice; restore the center element so
	// output is never blank.
	if len(parts) == 0 {
		parts = append(parts, renderMicro(micro, svg.Center, svg.Center, size, 0, cfg))
	}

	return svg.Group(parts...).String()
}

// patternCluster scatters count elements in a disc with uniform areal
// density (square-root radial distribution).
func patternCluster(s *prng.Stream, micro microElement, count int, cfg aesthetic.Config) string {
	reach := s.Float(120, 170)
	size := s.Float(8, 14)

	var parts []string
	for i := 0; i < count; i++ {
		radius := reach * math.Sqrt(s.Next())
		angle := s.Float(0, fullTurn)
		rot := snapAngle(s.Float(0, fullTurn), cfg.AngleSnap)
		x := polarX(svg.Center, radius, angle)
		y := polarY(svg.Center, radius, angle)
		parts = append(parts, renderMicro(micro, x, y, size, rot, cfg))
	}

	return svg.Group(parts...).String()
}

// patternOrbit draws 2–3 faint rings carrying evenly spaced elements plus a
// center dot.
func patternOrbit(s *prng.Stream, micro microElement, cfg aesthetic.Config) string {
	rings := orbitRingCount + s.IntBetween(0, 1)
	size := s.Float(8, 13)

	inner := s.Float(60, 90)
	gap := s.Float(45, 65)

	var parts []string
	for ring := 0; ring < rings; ring++ {
		radius := inner + float64(ring)*gap
		// Ring guide drawn faintly at the thinnest palette stroke.
		parts = append(parts,
			svg.Circle(svg.Center, svg.Center, radius).
				Stroked(2).Attr("stroke-opacity", "0.3").String())

		per := s.IntBetween(4, 8)
		phase := s.Float(0, fullTurn)
		for k := 0; k < per; k++ {
			angle := phase + float64(k)*fullTurn/float64(per)
			x := polarX(svg.Center, radius, angle)
			y := polarY(svg.Center, radius, angle)
			parts = append(parts, renderMicro(micro, x, y, size, angle, cfg))
		}
	}

	// Larger anchor dot at the center.
	parts = append(parts, svg.Circle(svg.Center, svg.Center, s.Float(9, 15)).Filled().String())

	return svg.Group(parts...).String()
}

// renderMicro draws one motif instance centered at (x, y). rot applies only
// to orientation-bearing motifs (dash, square, leaf, arc, diamond).
func renderMicro(kind microElement, x, y, size, rot float64, cfg aesthetic.Config) string {
	half := size / 2
	var e *svg.Element

	switch kind {
	case microDash:
		e = svg.Line(x-half, y, x+half, y).Stroked(cfg.StrokeWidth)
	case microSquare:
		sq := svg.Rect(x-half, y-half, size, size)
		if cfg.CornerRadius > 0 {
			sq.Num("rx", half*0.4*cfg.CornerRadius)
		}
		if cfg.PreferFill {
			e = sq.Filled()
		} else {
			e = sq.Stroked(cfg.StrokeWidth)
		}
	case microLeaf:
		d := svg.NewPath().
			MoveTo(x, y+half).
			QuadTo(x-size*0.7, y, x, y-half).
			QuadTo(x+size*0.7, y, x, y+half).
			Close()
		e = svg.Path(d.String()).Filled()
	case microArc:
		d := svg.NewPath().
			MoveTo(x-half, y).
			ArcTo(half, half, 0, false, true, x+half, y)
		e = svg.Path(d.String()).Stroked(cfg.StrokeWidth)
	case microDiamond:
		poly := svg.Polygon(x, y-half, x+half, y, x, y+half, x-half, y)
		if cfg.PreferFill {
			e = poly.Filled()
		} else {
			e = poly.Stroked(cfg.StrokeWidth)
		}
	default: // microDot
		e = svg.Circle(x, y, half).Filled()
	}

	if rot != 0 && kind != microDot {
		e.Attr("transform", svg.Rotate(rot, x, y))
	}

	return e.String()
}
