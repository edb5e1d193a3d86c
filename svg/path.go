// SPDX-License-Identifier: MIT
// Package: geomark/svg
//
// path.go — path-data builder for the "d" attribute.
//
// Commands are emitted in call order with single-space separation, absolute
// coordinates only. The builder never validates continuity: construction
// methods guarantee non-degenerate geometry by range-clamped parameter draws.

package svg

import "strings"

// PathData accumulates a path "d" string command by command.
type PathData struct {
	b strings.Builder
}

// NewPath returns an empty path-data builder.
func NewPath() *PathData {
	return &PathData{}
}

// sep writes the inter-command separator (no leading space on first command).
func (p *PathData) sep() {
	if p.b.Len() > 0 {
		p.b.WriteByte(' ')
	}
}

// MoveTo emits "M x y".
func (p *PathData) MoveTo(x, y float64) *PathData {
	p.sep()
	p.b.WriteString("M " + Num(x) + " " + Num(y))

	return p
}

// LineTo emits "L x y".
func (p *PathData) LineTo(x, y float64) *PathData {
	p.sep()
	p.b.WriteString("L " + Num(x) + " " + Num(y))

	return p
}

// QuadTo emits "Q cx cy x y" (quadratic Bézier through one control point).
func (p *PathData) QuadTo(cx, cy, x, y float64) *PathData {
	p.sep()
	p.b.WriteString("Q " + Num(cx) + " " + Num(cy) + " " + Num(x) + " " + Num(y))

	return p
}

// CubicTo emits "C c1x c1y c2x c2y x y".
func (p *PathData) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *PathData {
	p.sep()
	p.b.WriteString("C " + Num(c1x) + " " + Num(c1y) + " " + Num(c2x) + " " + Num(c2y) + " " + Num(x) + " " + Num(y))

	return p
}

// ArcTo emits "A rx ry rot largeArc sweep x y".
func (p *PathData) ArcTo(rx, ry, rot float64, largeArc, sweep bool, x, y float64) *PathData {
	p.sep()
	p.b.WriteString("A " + Num(rx) + " " + Num(ry) + " " + Num(rot) + " " +
		flag(largeArc) + " " + flag(sweep) + " " + Num(x) + " " + Num(y))

	return p
}

// Close emits "Z".
func (p *PathData) Close() *PathData {
	p.sep()
	p.b.WriteString("Z")

	return p
}

// String returns the accumulated path data.
func (p *PathData) String() string {
	return p.b.String()
}

// flag renders an SVG arc flag as "0"/"1".
func flag(v bool) string {
	if v {
		return "1"
	}

	return "0"
}
