// SPDX-License-Identifier: MIT
// Package: geomark/logo
//
// types.go — the orchestrator's option and result objects.

package logo

import (
	"github.com/katalvlaran/geomark/aesthetic"
	"github.com/katalvlaran/geomark/construct"
)

// Options carries the optional generation inputs. All fields are freeform
// strings at this boundary: unknown aesthetics fall back to a seeded random
// choice, industry text resolves through the keyword table (never rejected),
// and an empty seed defaults to the brand name.
type Options struct {
	// Aesthetic is one of "minimalist", "tech", "nature", "bold"; anything
	// else (including empty) selects a random primary aesthetic.
	Aesthetic string

	// Industry is freeform business text, e.g. "fintech startup".
	Industry string

	// Seed overrides the brand-derived base seed; use a fresh value to get
	// a different result set for the same brand ("regenerate").
	Seed string
}

// Result is one generated mark. Immutable; the caller owns it entirely.
type Result struct {
	// SVG is the complete self-contained document string
	// (viewBox "0 0 512 512", symbolic current-color only).
	SVG string `json:"svg"`

	// Method identifies the construction algorithm that produced the mark.
	Method construct.Method `json:"-"`

	// MethodName is the canonical kebab-case method identifier.
	MethodName string `json:"method"`

	// Aesthetic is the style the mark was generated under.
	Aesthetic aesthetic.Aesthetic `json:"-"`

	// AestheticName is the canonical lowercase style label.
	AestheticName string `json:"aesthetic"`

	// Seed is the fully derived per-variant seed that initialized this
	// mark's stream.
	Seed string `json:"seed"`
}
