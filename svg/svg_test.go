// Package svg_test verifies the deterministic serialization contracts:
// numeric formatting, attribute ordering, path-data emission, and the
// canonical document shell.
package svg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/geomark/svg"
)

// TestNum_Formatting exercises the single engine-wide number rule.
func TestNum_Formatting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"integral", 256, "256"},
		{"one_decimal", 12.5, "12.5"},
		{"two_decimals", 3.14159, "3.14"},
		{"rounds_up", 0.999, "1"},
		{"float_noise", 0.1 + 0.2, "0.3"},
		{"negative", -17.25, "-17.25"},
		{"negative_zero", -0.001, "0"},
		{"zero", 0, "0"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, svg.Num(tc.in))
		})
	}
}

// TestElement_AttributeOrder verifies insertion-order serialization and
// self-closing for childless elements.
func TestElement_AttributeOrder(t *testing.T) {
	t.Parallel()

	got := svg.El("circle").Num("cx", 256).Num("cy", 256).Num("r", 100).String()
	assert.Equal(t, `<circle cx="256" cy="256" r="100"/>`, got)

	// Reversed insertion order must serialize reversed.
	rev := svg.El("circle").Num("r", 100).Num("cx", 256).Num("cy", 256).String()
	assert.Equal(t, `<circle r="100" cx="256" cy="256"/>`, rev)
}

// TestElement_Children verifies explicit closing tags around children.
func TestElement_Children(t *testing.T) {
	t.Parallel()

	got := svg.Group(svg.Circle(1, 2, 3).String()).String()
	assert.Equal(t, `<g><circle cx="1" cy="2" r="3"/></g>`, got)
}

// TestElement_Finishes verifies the stroked and filled attribute bundles
// use only the symbolic color token.
func TestElement_Finishes(t *testing.T) {
	t.Parallel()

	stroked := svg.Circle(0, 0, 5).Stroked(4).String()
	assert.Equal(t, `<circle cx="0" cy="0" r="5" fill="none" stroke="currentColor" stroke-width="4"/>`, stroked)

	filled := svg.Rect(0, 0, 4, 4).Filled().String()
	assert.Equal(t, `<rect x="0" y="0" width="4" height="4" fill="currentColor"/>`, filled)
}

// TestPolygon_Points verifies the x,y pair encoding.
func TestPolygon_Points(t *testing.T) {
	t.Parallel()

	got := svg.Polygon(0, 0, 10, 0, 5, 8.66).String()
	assert.Equal(t, `<polygon points="0,0 10,0 5,8.66"/>`, got)
}

// TestPathData_Commands verifies command emission and separators.
func TestPathData_Commands(t *testing.T) {
	t.Parallel()

	d := svg.NewPath().
		MoveTo(10, 20).
		LineTo(30, 40).
		QuadTo(35, 45, 50, 60).
		ArcTo(25, 25, 0, false, true, 70, 80).
		Close().
		String()

	assert.Equal(t, "M 10 20 L 30 40 Q 35 45 50 60 A 25 25 0 0 1 70 80 Z", d)
}

// TestDocument_Shell verifies the canonical wrapper (viewBox is a wire
// contract checked byte-exactly).
func TestDocument_Shell(t *testing.T) {
	t.Parallel()

	got := svg.Document("<g/>")
	assert.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 512 512"><g/></svg>`, got)
}

// TestConstants pins the engine-wide geometry constants.
func TestConstants(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 512.0, svg.CanvasSize)
	assert.Equal(t, 256.0, svg.Center)
	assert.Equal(t, []float64{2, 4, 6, 8}, svg.StrokeWidths)
	assert.InDelta(t, 1.618, svg.Phi, 0.001)
}
