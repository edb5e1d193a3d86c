// SPDX-License-Identifier: MIT
// Package: geomark/construct
//
// types.go — the method enum, render parameters, and sentinel errors.
//
// Error policy: only package-level sentinels, branched with
// errors.Is; render implementations never fail on valid-shaped input, so the
// single sentinel guards the parse boundary.

package construct

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/geomark/aesthetic"
	"github.com/katalvlaran/geomark/industry"
	"github.com/katalvlaran/geomark/prng"
)

// Method identifies one of the five construction algorithms. The iota order
// is the canonical result order returned by the orchestrator.
type Method uint8

const (
	// RadialConstruct replicates one primitive with rotational symmetry.
	RadialConstruct Method = iota

	// NegativeSpace carves an industry cutout from a solid container.
	NegativeSpace

	// DynamicPattern repeats a micro-element along a layout strategy.
	DynamicPattern

	// InterconnectedGeometry overlaps 2–3 primitives into one composition.
	InterconnectedGeometry

	// ConstructedLetterform abstracts the brand initial.
	ConstructedLetterform
)

// Methods lists all five methods in canonical order. Treat as read-only.
var Methods = []Method{
	RadialConstruct, NegativeSpace, DynamicPattern,
	InterconnectedGeometry, ConstructedLetterform,
}

// methodNames holds the canonical kebab-case identifiers, indexed by value.
var methodNames = [...]string{
	"radial-construct", "negative-space", "dynamic-pattern",
	"interconnected-geometry", "constructed-letterform",
}

// String returns the canonical kebab-case identifier.
func (m Method) String() string {
	if int(m) < len(methodNames) {
		return methodNames[m]
	}

	return fmt.Sprintf("method(%d)", uint8(m))
}

// ErrUnknownMethod reports an identifier outside the closed five-value set.
var ErrUnknownMethod = errors.New("construct: unknown method")

// ParseMethod resolves a canonical identifier to its Method.
func ParseMethod(name string) (Method, error) {
	for i, n := range methodNames {
		if name == n {
			return Method(i), nil
		}
	}

	return RadialConstruct, fmt.Errorf("%q: %w", name, ErrUnknownMethod)
}

// Params carries everything a construction method consumes. The stream is
// owned by the caller and must be fresh per invocation (the orchestrator
// derives one per variant seed).
type Params struct {
	Brand     string
	Industry  industry.Industry
	Aesthetic aesthetic.Aesthetic
	Stream    *prng.Stream
}
