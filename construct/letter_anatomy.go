// SPDX-License-Identifier: MIT
// Package: geomark/construct
//
// letter_anatomy.go — canonical anatomical feature sets for A–Z (data-only).
//
// Purpose:
//   - Single source of truth for letter anatomy used by the constructed
//     letterform method. Membership is fixed: changing a set changes the
//     generated treatment for every brand starting with that letter.
//   - The classification is deliberately coarse (stroke anatomy, not glyph
//     geometry): a letter "has a vertical" if its canonical skeleton
//     contains a dominant vertical stem, and so on.
//
// Contract (for consumers):
//   - All queries operate on uppercase A–Z; the caller normalizes case.
//   - Non-alphabetic runes are outside these sets (every query is false),
//     which routes them to the abstract-cross fallback.
//   - letterIndex is total: A→0 … Z→25, any other rune hashes into the same
//     range so symbol-only brand names still derive a stable base angle.

package construct

import "strings"

// Feature membership sets (uppercase, fixed, append-only).
const (
	verticalLetters  = "BDEFHIJKLMNPRTU"
	diagonalLetters  = "AKMNRVWXYZ"
	curveLetters     = "BCDGJOPQRSU"
	symmetricLetters = "AHIMOTUVWXY"
)

// hasVertical reports whether r's skeleton carries a vertical stem.
func hasVertical(r rune) bool {
	return strings.ContainsRune(verticalLetters, r)
}

// hasDiagonal reports whether r's skeleton carries a diagonal stroke.
func hasDiagonal(r rune) bool {
	return strings.ContainsRune(diagonalLetters, r)
}

// hasCurve reports whether r's skeleton carries a curved stroke.
func hasCurve(r rune) bool {
	return strings.ContainsRune(curveLetters, r)
}

// isSymmetric reports bilateral symmetry of r's canonical form.
func isSymmetric(r rune) bool {
	return strings.ContainsRune(symmetricLetters, r)
}

// letterIndex maps a rune to its alphabetic position; non-letters hash into
// the same 0–25 range so the derived base angle is always defined.
func letterIndex(r rune) int {
	if r >= 'A' && r <= 'Z' {
		return int(r - 'A')
	}

	return int(uint32(r) % 26)
}

// letterBaseAngle derives the letter's signature angle from its alphabetic
// position (A=0°, steps of 360/26).
func letterBaseAngle(r rune) float64 {
	return float64(letterIndex(r)) * (fullTurn / 26)
}
