// Package construct implements the five independent construction methods
// that turn (brand, industry, aesthetic, seeded stream) into raw SVG body
// markup, not yet wrapped in a document root.
//
// The methods, in their fixed canonical order:
//
//   - radial-construct        — one primitive replicated with perfect
//     rotational symmetry around the center.
//   - negative-space          — a solid container with an industry-evocative
//     cutout carved out via luminance masking.
//   - dynamic-pattern         — one micro-element repeated along a spiral,
//     wave, grid, cluster, or orbit layout.
//   - interconnected-geometry — 2–3 primitives that overlap, interlock, or
//     flow into each other (the only method built on visual tension).
//   - constructed-letterform  — the brand initial abstracted through one of
//     five treatments; letter-inspired, never a readable glyph.
//
// Shared obligations: all geometry stays inside the 512×512 canvas centered
// at (256,256); stroke widths come from the closed palette {2,4,6,8} (the
// letterform emphasis variant scales one palette value by 1.5); output is
// monochrome through the symbolic current-color token; parameters are
// range-clamped at draw time so no path ever degenerates (zero radii,
// coincident arc endpoints, empty output).
//
// Determinism: for a fixed input tuple every method consumes stream draws in
// one stable order, so identical seeds reproduce byte-identical markup.
package construct
