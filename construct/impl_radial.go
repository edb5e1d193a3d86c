// SPDX-License-Identifier: MIT
// Package: geomark/construct
//
// impl_radial.go — radial-construct: one primitive under perfect
// rotational symmetry.
//
// Contract:
//   - Fold count ∈ {3,4,5,6,8}; minimalist biases toward 3–4.
//   - Angular step = 360/folds; the base unit renders once and rotated
//     copies are emitted per fold (identical markup inside each <g>).
//   - Outer radius stays inside the canvas after whitespace shrink; inner
//     radius is a bounded fraction of outer, so units never degenerate.
//   - Concentric center accent with 55% probability.
//
// Determinism (draw order): config(≤3) → folds → outer → inner → rotation →
// primitive → accent gate → accent radius.

package construct

import (
	"github.com/katalvlaran/geomark/aesthetic"
	"github.com/katalvlaran/geomark/prng"
	"github.com/katalvlaran/geomark/svg"
)

// Fold candidate sets. The duplicated 3s and 4s in the minimalist list are
// the bias, not a typo.
var (
	minimalistFolds = []int{3, 4, 3, 4, 6}
	standardFolds   = []int{3, 4, 5, 6, 8}
)

// Radial radius bounds (canvas units).
const (
	radialOuterMin = 130.0
	radialOuterMax = 190.0
	radialInnerLo  = 0.25
	radialInnerHi  = 0.55

	// centerAccentChance gates the optional concentric accent.
	centerAccentChance = 0.55
)

func radialConstruct(p Params) string {
	s := p.Stream
	cfg := aesthetic.Resolve(p.Aesthetic, s)

	// Fold count; the step divides the turn exactly for every candidate.
	foldSet := standardFolds
	if p.Aesthetic == aesthetic.Minimalist {
		foldSet = minimalistFolds
	}
	folds := prng.Pick(s, foldSet)
	step := fullTurn / float64(folds)

	// Radii: whitespace pulls the outer ring toward the center.
	outer := s.Float(radialOuterMin, radialOuterMax) * (1 - cfg.Whitespace*0.25)
	inner := outer * s.Float(radialInnerLo, radialInnerHi)

	// Whole-mark rotation offset, quantized per the style.
	rotation := snapAngle(s.Float(0, fullTurn), cfg.AngleSnap)

	// One base unit, replicated verbatim at each fold.
	kind := prng.Pick(s, radialCandidates[p.Aesthetic])
	unit := renderUnit(kind, inner, outer, step/2, cfg)

	var parts []string
	for i := 0; i < folds; i++ {
		angle := rotation + float64(i)*step
		parts = append(parts,
			svg.Group(unit).
				Attr("transform", svg.Rotate(angle, svg.Center, svg.Center)).
				String())
	}

	// Optional concentric accent, clamped clear of the unit ring.
	if s.Chance(centerAccentChance) {
		r := clamp(s.Float(10, inner*0.5), 6, inner*0.6)
		accent := svg.Circle(svg.Center, svg.Center, r)
		parts = append(parts, finish(accent, cfg))
	}

	return svg.Group(parts...).String()
}
