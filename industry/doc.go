// Package industry resolves freeform business descriptions to a closed set
// of canonical categories and backs each category with a small library of
// abstract geometric primitives.
//
// Resolution is a total function: case-insensitive keyword matching against
// a fixed synonym table, falling back to General for anything unrecognized
// (including the empty string). It never fails.
//
// The shape library is data-only in spirit: every Shape is a pure function
// of (center, radius, stroke width) returning a markup fragment. Shapes are
// deliberately abstract — a pointed shield, ascending bars, a leaf silhouette
// — never literal clip-art icons, so generated marks read as designed rather
// than stock.
package industry
