// Package industry_test verifies the total keyword resolver and the purity
// of the shape library.
package industry_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geomark/industry"
)

// TestResolve_Table drives the keyword table through representative inputs,
// including the documented edge cases ("", "xyzzy", "FinTech", "legal").
func TestResolve_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want industry.Industry
	}{
		{"", industry.General},
		{"xyzzy", industry.General},
		{"FinTech", industry.Finance},
		{"legal", industry.Finance},
		{"law firm", industry.Finance},
		{"crypto exchange", industry.Finance},
		{"software", industry.Technology},
		{"SaaS startup", industry.Technology},
		{"Dental Clinic", industry.Health},
		{"wellness", industry.Health},
		{"Coffee Roasters", industry.Food},
		{"bakery", industry.Food},
		{"online school", industry.Education},
		{"design studio", industry.Creative},
		{"photography", industry.Creative},
		{"organic farm", industry.Nature},
		{"garden center", industry.Nature},
		{"fashion boutique", industry.Retail},
		{"  TECH  ", industry.Technology},
		{"plumbing services", industry.General},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, industry.Resolve(tc.in), "input %q", tc.in)
		})
	}
}

// allCategories enumerates the closed set for exhaustive checks.
var allCategories = []industry.Industry{
	industry.General, industry.Technology, industry.Finance, industry.Health,
	industry.Food, industry.Education, industry.Creative, industry.Nature,
	industry.Retail,
}

// TestShapes_EveryCategoryPopulated verifies each category carries a
// non-empty primitive list and every primitive emits monochrome markup.
func TestShapes_EveryCategoryPopulated(t *testing.T) {
	t.Parallel()

	for _, cat := range allCategories {
		shapes := industry.Shapes(cat)
		require.NotEmpty(t, shapes, "category %s", cat)

		for i, shape := range shapes {
			out := shape(256, 256, 100, 4)
			assert.NotEmpty(t, out, "%s shape %d", cat, i)
			assert.Contains(t, out, "currentColor", "%s shape %d must use the symbolic token", cat, i)
			assert.NotContains(t, out, "NaN", "%s shape %d", cat, i)
		}
	}
}

// TestShapes_Pure verifies shape rendering is a pure function of its
// arguments (identical calls, identical markup).
func TestShapes_Pure(t *testing.T) {
	t.Parallel()

	for _, cat := range allCategories {
		for i, shape := range industry.Shapes(cat) {
			a := shape(256, 256, 80, 2)
			b := shape(256, 256, 80, 2)
			assert.Equal(t, a, b, "%s shape %d", cat, i)
		}
	}
}

// TestString_Canonical verifies labels are stable lowercase identifiers.
func TestString_Canonical(t *testing.T) {
	t.Parallel()

	for _, cat := range allCategories {
		label := cat.String()
		assert.Equal(t, strings.ToLower(label), label)
		assert.NotContains(t, label, " ")
	}
}
