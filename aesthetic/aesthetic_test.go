// Package aesthetic_test verifies label parsing and the resolved
// configuration invariants for each style.
package aesthetic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geomark/aesthetic"
	"github.com/katalvlaran/geomark/prng"
)

// TestParse_Roundtrip verifies each canonical label parses back to its
// value and anything else reports ErrUnknownAesthetic.
func TestParse_Roundtrip(t *testing.T) {
	t.Parallel()

	for _, a := range aesthetic.All {
		got, err := aesthetic.Parse(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	for _, bad := range []string{"", "Minimalist", "brutalist", "TECH"} {
		_, err := aesthetic.Parse(bad)
		assert.ErrorIs(t, err, aesthetic.ErrUnknownAesthetic, "label %q", bad)
	}
}

// TestResolve_Invariants verifies field ranges per style across many seeds:
// stroke from the style's palette subset, snap from {0,45,90}, factors in
// [0,1], positive element budgets.
func TestResolve_Invariants(t *testing.T) {
	t.Parallel()

	strokeSets := map[aesthetic.Aesthetic][]float64{
		aesthetic.Minimalist: {2, 4},
		aesthetic.Tech:       {4, 6},
		aesthetic.Nature:     {2, 4},
		aesthetic.Bold:       {6, 8},
	}
	snapSets := map[aesthetic.Aesthetic]float64{
		aesthetic.Minimalist: 0,
		aesthetic.Tech:       45,
		aesthetic.Nature:     0,
		aesthetic.Bold:       90,
	}

	for _, a := range aesthetic.All {
		a := a
		t.Run(a.String(), func(t *testing.T) {
			t.Parallel()

			for i := 0; i < 50; i++ {
				cfg := aesthetic.Resolve(a, prng.New(a.String()+"-"+string(rune('a'+i))))

				assert.Contains(t, strokeSets[a], cfg.StrokeWidth)
				assert.Equal(t, snapSets[a], cfg.AngleSnap)
				assert.GreaterOrEqual(t, cfg.CornerRadius, 0.0)
				assert.LessOrEqual(t, cfg.CornerRadius, 1.0)
				assert.GreaterOrEqual(t, cfg.Organic, 0.0)
				assert.LessOrEqual(t, cfg.Organic, 1.0)
				assert.GreaterOrEqual(t, cfg.Whitespace, 0.0)
				assert.LessOrEqual(t, cfg.Whitespace, 1.0)
				assert.Positive(t, cfg.MaxElements)
			}
		})
	}
}

// TestResolve_Deterministic verifies one seed yields one config.
func TestResolve_Deterministic(t *testing.T) {
	t.Parallel()

	for _, a := range aesthetic.All {
		x := aesthetic.Resolve(a, prng.New("fixed"))
		y := aesthetic.Resolve(a, prng.New("fixed"))
		assert.Equal(t, x, y, "style %s", a)
	}
}

// TestResolve_MinimalistNeverFills pins the minimalist stroke-only rule.
func TestResolve_MinimalistNeverFills(t *testing.T) {
	t.Parallel()

	for i := 0; i < 50; i++ {
		cfg := aesthetic.Resolve(aesthetic.Minimalist, prng.New(string(rune('a'+i))))
		assert.False(t, cfg.PreferFill)
	}
}
