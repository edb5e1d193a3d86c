// Package logo_test verifies the orchestration contract: the five-variant
// shape, seed-derived determinism, regeneration, and the single-variant
// path's equivalence with the full run.
package logo_test

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geomark/aesthetic"
	"github.com/katalvlaran/geomark/construct"
	"github.com/katalvlaran/geomark/logo"
)

// strokeWidthRe extracts every emitted stroke-width value.
var strokeWidthRe = regexp.MustCompile(`stroke-width="([0-9.]+)"`)

// TestGenerate_Cardinality verifies five results in canonical method order,
// each carrying a complete document and its derived seed.
func TestGenerate_Cardinality(t *testing.T) {
	t.Parallel()

	results := logo.Generate("Acme", logo.Options{})
	require.Len(t, results, logo.VariantCount)

	for i, r := range results {
		assert.Equal(t, construct.Methods[i], r.Method, "variant %d", i)
		assert.Equal(t, construct.Methods[i].String(), r.MethodName, "variant %d", i)
		assert.True(t, strings.HasPrefix(r.SVG, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 512 512">`), "variant %d", i)
		assert.True(t, strings.HasSuffix(r.SVG, "</svg>"), "variant %d", i)
		assert.Contains(t, r.Seed, "-"+strconv.Itoa(i)+"-"+r.MethodName+"-", "variant %d seed embeds index and method", i)
		assert.Equal(t, r.Aesthetic.String(), r.AestheticName, "variant %d", i)
	}
}

// TestGenerate_Deterministic verifies identical (brand, opts) yield
// byte-identical result sets.
func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	opts := logo.Options{Industry: "fintech", Aesthetic: "tech", Seed: "acme-1"}
	a := logo.Generate("Acme", opts)
	b := logo.Generate("Acme", opts)
	assert.Equal(t, a, b)
}

// TestGenerate_SeedRegenerates verifies a fresh seed yields a different
// result set for the same brand.
func TestGenerate_SeedRegenerates(t *testing.T) {
	t.Parallel()

	a := logo.Generate("Acme", logo.Options{Seed: "acme-1"})
	b := logo.Generate("Acme", logo.Options{Seed: "acme-2"})

	differ := false
	for i := range a {
		if a[i].SVG != b[i].SVG {
			differ = true

			break
		}
	}
	assert.True(t, differ, "distinct seeds should change at least one mark")
}

// TestGenerate_BrandIsDefaultSeed verifies an empty seed falls back to the
// brand name, so renaming the brand changes the set.
func TestGenerate_BrandIsDefaultSeed(t *testing.T) {
	t.Parallel()

	a := logo.Generate("Acme", logo.Options{Aesthetic: "bold"})
	b := logo.Generate("Acme", logo.Options{Aesthetic: "bold"})
	c := logo.Generate("Borealis", logo.Options{Aesthetic: "bold"})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a[0].SVG, c[0].SVG)
}

// TestGenerate_AestheticSplit verifies the first three variants share the
// primary aesthetic and the last two re-roll away from it.
func TestGenerate_AestheticSplit(t *testing.T) {
	t.Parallel()

	for _, primary := range aesthetic.All {
		results := logo.Generate("Acme", logo.Options{Aesthetic: primary.String()})

		for i := 0; i < 3; i++ {
			assert.Equal(t, primary, results[i].Aesthetic, "variant %d keeps primary %s", i, primary)
		}
		for i := 3; i < logo.VariantCount; i++ {
			assert.NotEqual(t, primary, results[i].Aesthetic, "variant %d re-rolls away from %s", i, primary)
		}
	}
}

// TestGenerate_UnknownAestheticFallsBack verifies an unrecognized label
// still yields a canonical aesthetic, deterministically.
func TestGenerate_UnknownAestheticFallsBack(t *testing.T) {
	t.Parallel()

	a := logo.Generate("Acme", logo.Options{Aesthetic: "brutalist"})
	b := logo.Generate("Acme", logo.Options{Aesthetic: "brutalist"})

	assert.Equal(t, a, b)
	assert.Contains(t, aesthetic.All, a[0].Aesthetic)
}

// TestGenerate_IndustrySynonyms verifies inputs resolving to the same
// category produce identical sets (the freeform text never leaks into
// seeds or geometry).
func TestGenerate_IndustrySynonyms(t *testing.T) {
	t.Parallel()

	legal := logo.Generate("Acme", logo.Options{Industry: "legal", Aesthetic: "minimalist"})
	finance := logo.Generate("Acme", logo.Options{Industry: "finance", Aesthetic: "minimalist"})
	assert.Equal(t, legal, finance)
}

// TestGenerate_MonochromePalette sweeps brands and checks every document
// stays on the symbolic color and the closed stroke palette (2,4,6,8 plus
// the letterform ×1.5 emphasis values).
func TestGenerate_MonochromePalette(t *testing.T) {
	t.Parallel()

	allowed := map[float64]bool{2: true, 3: true, 4: true, 6: true, 8: true, 9: true, 12: true}

	for _, brand := range []string{"Acme", "Nimbus Labs", "Ω", ""} {
		for _, r := range logo.Generate(brand, logo.Options{}) {
			assert.NotContains(t, r.SVG, `fill="#`, "no literal fill colors in %q/%s", brand, r.MethodName)
			assert.NotContains(t, r.SVG, `stroke="#`, "no literal stroke colors in %q/%s", brand, r.MethodName)
			assert.NotContains(t, r.SVG, "NaN", "%q/%s", brand, r.MethodName)

			for _, match := range strokeWidthRe.FindAllStringSubmatch(r.SVG, -1) {
				w, err := strconv.ParseFloat(match[1], 64)
				require.NoError(t, err)
				assert.True(t, allowed[w], "%q/%s: stroke-width %v", brand, r.MethodName, w)
			}
		}
	}
}

// TestGenerateOne_MatchesFullRun verifies the single-variant path reproduces
// the full run's mark at the same canonical index for the primary variants
// (indices below the re-roll point) under an explicit aesthetic.
func TestGenerateOne_MatchesFullRun(t *testing.T) {
	t.Parallel()

	opts := logo.Options{Industry: "health", Aesthetic: "nature", Seed: "clinic-7"}
	full := logo.Generate("VitaCare", opts)

	for i := 0; i < 3; i++ {
		one, err := logo.GenerateOne("VitaCare", construct.Methods[i], opts)
		require.NoError(t, err)
		assert.Equal(t, full[i], one, "variant %d", i)
	}
}

// TestGenerateOne_UnknownMethod verifies the out-of-range sentinel.
func TestGenerateOne_UnknownMethod(t *testing.T) {
	t.Parallel()

	_, err := logo.GenerateOne("Acme", construct.Method(99), logo.Options{})
	assert.ErrorIs(t, err, construct.ErrUnknownMethod)
}
