// Package geomark is a deterministic, seed-driven engine for procedural
// geometric logo marks — pure construction, no templates, no rasterization.
//
// 🚀 What is geomark?
//
//	A library that turns a brand name into five distinct monochrome SVG
//	marks, each built by a different construction method:
//		• Radial construction: units replicated around a center by rotation
//		• Negative space: industry silhouettes cut out of solid containers
//		• Dynamic patterns: micro-elements laid out on spirals, waves & grids
//		• Interconnected geometry: linked, overlapping primitive families
//		• Constructed letterforms: abstracted brand initials from anatomy
//
// ✨ Why choose geomark?
//
//   - Deterministic – one (brand, options) tuple, one byte-identical output
//   - Self-contained – every mark is a complete 512×512 SVG document
//   - Recolorable – strictly currentColor, no literal fills or strokes
//   - Steerable – aesthetic styles, industry keywords and explicit seeds
//
// Under the hood, everything is organized under focused subpackages:
//
//	svg/       — deterministic element, path-data & document serialization
//	prng/      — seeded stream with range and selection helpers
//	aesthetic/ — style labels resolved into concrete design parameters
//	industry/  — keyword resolver & per-category silhouette library
//	construct/ — the five construction methods
//	logo/      — orchestration: seeds, variants, the five-mark result set
//	cmd/       — the geomark CLI (generate to files, serve over HTTP)
//
// Quick start:
//
//	results := logo.Generate("Acme", logo.Options{Industry: "fintech"})
//	for _, r := range results {
//		os.WriteFile(r.MethodName+".svg", []byte(r.SVG), 0o644)
//	}
//
//	go get github.com/katalvlaran/geomark
package geomark
