// Package svg provides the low-level markup primitives shared by every
// construction method: the logical canvas constants, a deterministic float
// formatter, an attribute-ordered element builder, a path-data builder, and
// the document wrapper that produces the final self-contained SVG string.
//
// Determinism contract:
//
//   - Attributes serialize in insertion order; two identical build sequences
//     yield byte-identical markup.
//   - Numbers format through one rule (round to 2 decimals, shortest
//     round-trip); no locale, no scientific notation for canvas-scale values.
//   - No validation is performed: construction methods are responsible for
//     emitting well-formed fragments (trusted-input policy).
//
// All color references use the single symbolic token "currentColor" so the
// consuming context recolors output via standard SVG/CSS inheritance.
package svg
