// SPDX-License-Identifier: MIT
// Package: geomark/logo
//
// generate.go — the orchestration flow.
//
// Design contract (strict):
//   - One master stream per call, seeded by the base seed; it resolves the
//     primary aesthetic (when unspecified) and the variant re-rolls, in
//     that fixed order.
//   - Variant seeds: "<base>-<index>-<method>-<aesthetic>"; the aesthetic
//     participates so re-rolled variants draw from fully distinct streams.
//   - Methods run in canonical order; the result slice index i always
//     matches construct.Methods[i].
//   - Generate is total over valid-shaped input; only GenerateOne can fail,
//     and only on an out-of-range method.

package logo

import (
	"fmt"

	"github.com/katalvlaran/geomark/aesthetic"
	"github.com/katalvlaran/geomark/construct"
	"github.com/katalvlaran/geomark/industry"
	"github.com/katalvlaran/geomark/prng"
	"github.com/katalvlaran/geomark/svg"
)

// VariantCount is the fixed size of a generated result set.
const VariantCount = 5

// rerollFrom is the first variant index whose aesthetic re-rolls away from
// the primary (the last two of the five).
const rerollFrom = 3

// Generate produces the full five-variant result set for brand.
// Pure: identical (brand, opts) always yield byte-identical results.
// Complexity: O(1) — five bounded construction runs.
func Generate(brand string, opts Options) []Result {
	base := baseSeed(brand, opts)
	master := prng.New(base)
	primary := resolveAesthetic(opts.Aesthetic, master)
	ind := industry.Resolve(opts.Industry)

	results := make([]Result, 0, VariantCount)
	for i, m := range construct.Methods {
		aes := primary
		if i >= rerollFrom {
			aes = rerollAesthetic(primary, master)
		}
		results = append(results, renderVariant(brand, base, i, m, aes, ind))
	}

	return results
}

// GenerateOne regenerates a single variant for the given method, following
// the same seed-derivation flow as Generate at that method's canonical
// index. Returns construct.ErrUnknownMethod for out-of-range methods.
func GenerateOne(brand string, m construct.Method, opts Options) (Result, error) {
	if int(m) >= len(construct.Methods) {
		return Result{}, fmt.Errorf("GenerateOne: %d: %w", uint8(m), construct.ErrUnknownMethod)
	}

	base := baseSeed(brand, opts)
	master := prng.New(base)
	aes := resolveAesthetic(opts.Aesthetic, master)
	ind := industry.Resolve(opts.Industry)

	return renderVariant(brand, base, int(m), m, aes, ind), nil
}

// renderVariant derives the variant seed, runs the method on a fresh
// stream, and assembles the result.
func renderVariant(brand, base string, index int, m construct.Method, aes aesthetic.Aesthetic, ind industry.Industry) Result {
	seed := fmt.Sprintf("%s-%d-%s-%s", base, index, m, aes)
	body, err := construct.Render(m, construct.Params{
		Brand:     brand,
		Industry:  ind,
		Aesthetic: aes,
		Stream:    prng.New(seed),
	})
	if err != nil {
		// Unreachable for canonical methods; keep the variant well-formed
		// rather than propagating an impossible error.
		body = ""
	}

	return Result{
		SVG:           svg.Document(body),
		Method:        m,
		MethodName:    m.String(),
		Aesthetic:     aes,
		AestheticName: aes.String(),
		Seed:          seed,
	}
}

// baseSeed resolves the explicit seed or falls back to the brand name.
func baseSeed(brand string, opts Options) string {
	if opts.Seed != "" {
		return opts.Seed
	}

	return brand
}

// resolveAesthetic parses the label or draws a primary aesthetic from the
// master stream (one draw on the fallback path only).
func resolveAesthetic(label string, master *prng.Stream) aesthetic.Aesthetic {
	if label != "" {
		if a, err := aesthetic.Parse(label); err == nil {
			return a
		}
	}

	return prng.Pick(master, aesthetic.All)
}

// rerollAesthetic draws one aesthetic different from primary (one draw).
func rerollAesthetic(primary aesthetic.Aesthetic, master *prng.Stream) aesthetic.Aesthetic {
	others := make([]aesthetic.Aesthetic, 0, len(aesthetic.All)-1)
	for _, a := range aesthetic.All {
		if a != primary {
			others = append(others, a)
		}
	}

	return prng.Pick(master, others)
}
