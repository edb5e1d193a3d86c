// SPDX-License-Identifier: MIT
// Package: geomark/svg
//
// element.go — insertion-ordered markup element builder.
//
// Contract (strict):
//   - Attributes serialize in the exact order they were added (slice-backed,
//     never map-backed) so identical build sequences are byte-identical.
//   - Elements with no children self-close ("<circle .../>"); elements with
//     children emit an explicit closing tag.
//   - No escaping is performed: attribute values are engine-generated numbers
//     and fixed tokens, never user text (trusted-input policy).

package svg

import "strings"

// attr is one serialized key/value pair.
type attr struct {
	key string
	val string
}

// Element accumulates a single markup node. The zero value is not usable;
// construct via El or one of the shape helpers below.
type Element struct {
	name     string
	attrs    []attr
	children []string
}

// El starts a new element with the given tag name.
func El(name string) *Element {
	return &Element{name: name}
}

// Attr appends a string attribute; returns the element for chaining.
func (e *Element) Attr(key, val string) *Element {
	e.attrs = append(e.attrs, attr{key: key, val: val})

	return e
}

// Num appends a numeric attribute formatted under the engine-wide rule.
func (e *Element) Num(key string, v float64) *Element {
	return e.Attr(key, Num(v))
}

// Child appends an already-serialized child fragment.
func (e *Element) Child(markup string) *Element {
	e.children = append(e.children, markup)

	return e
}

// String serializes the element. Self-closes when childless.
// Complexity: O(total output length).
func (e *Element) String() string {
	var b strings.Builder

	b.WriteByte('<')
	b.WriteString(e.name)
	for _, a := range e.attrs {
		b.WriteByte(' ')
		b.WriteString(a.key)
		b.WriteString(`="`)
		b.WriteString(a.val)
		b.WriteByte('"')
	}
	if len(e.children) == 0 {
		b.WriteString("/>")

		return b.String()
	}
	b.WriteByte('>')
	for _, c := range e.children {
		b.WriteString(c)
	}
	b.WriteString("</")
	b.WriteString(e.name)
	b.WriteByte('>')

	return b.String()
}

// -----------------------------------------------------------------------------
// Shape helpers — thin constructors for the handful of tags the engine emits.
// -----------------------------------------------------------------------------

// Circle returns a <circle> element positioned at (cx, cy) with radius r.
func Circle(cx, cy, r float64) *Element {
	return El("circle").Num("cx", cx).Num("cy", cy).Num("r", r)
}

// Rect returns a <rect> element with top-left corner (x, y).
func Rect(x, y, w, h float64) *Element {
	return El("rect").Num("x", x).Num("y", y).Num("width", w).Num("height", h)
}

// Line returns a <line> element between (x1, y1) and (x2, y2).
func Line(x1, y1, x2, y2 float64) *Element {
	return El("line").Num("x1", x1).Num("y1", y1).Num("x2", x2).Num("y2", y2)
}

// Path returns a <path> element with the given path data.
func Path(d string) *Element {
	return El("path").Attr("d", d)
}

// Polygon returns a <polygon> element over the flat (x, y, x, y, ...) list.
// Odd-length input is a programmer error and drops the trailing value.
func Polygon(points ...float64) *Element {
	var b strings.Builder

	for i := 0; i+1 < len(points); i += 2 {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(Num(points[i]))
		b.WriteByte(',')
		b.WriteString(Num(points[i+1]))
	}

	return El("polygon").Attr("points", b.String())
}

// Group returns a <g> element wrapping the given children.
func Group(children ...string) *Element {
	g := El("g")
	for _, c := range children {
		g.Child(c)
	}

	return g
}

// Rotate returns the transform value rotating by deg around (cx, cy).
func Rotate(deg, cx, cy float64) string {
	return "rotate(" + Num(deg) + " " + Num(cx) + " " + Num(cy) + ")"
}

// Stroked applies the standard stroked finish: symbolic color, no fill.
func (e *Element) Stroked(width float64) *Element {
	return e.Attr("fill", "none").Attr("stroke", CurrentColor).Num("stroke-width", width)
}

// Filled applies the standard filled finish with the symbolic color.
func (e *Element) Filled() *Element {
	return e.Attr("fill", CurrentColor)
}
