// SPDX-License-Identifier: MIT
// Package: geomark/construct
//
// api.go — the single public render entry-point.
//
// Design contract (strict):
//   - One dispatcher: Render(m, p). Implementations live in impl_*.go
//     (one file per method).
//   - Each implementation resolves its aesthetic.Config exactly once and
//     consumes stream draws in a stable documented order.
//   - Implementations never fail and never panic on valid-shaped input;
//     the dispatcher rejects only out-of-range method values.

package construct

import "fmt"

// Render produces the raw SVG body markup for method m.
// Returns ErrUnknownMethod for a value outside the closed set; every
// canonical method succeeds unconditionally.
// Complexity: bounded by the element budget of the chosen method, O(1)
// in practice (≤ a few dozen emitted elements).
func Render(m Method, p Params) (string, error) {
	switch m {
	case RadialConstruct:
		return radialConstruct(p), nil
	case NegativeSpace:
		return negativeSpace(p), nil
	case DynamicPattern:
		return dynamicPattern(p), nil
	case InterconnectedGeometry:
		return interconnected(p), nil
	case ConstructedLetterform:
		return letterform(p), nil
	default:
		return "", fmt.Errorf("Render: %d: %w", uint8(m), ErrUnknownMethod)
	}
}
