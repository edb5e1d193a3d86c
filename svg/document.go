// SPDX-License-Identifier: MIT
// Package: geomark/svg
//
// document.go — the final assembly step: wrap generated markup in the
// canonical square viewport. Pure concatenation; the wrapper trusts its
// input to be a well-formed fragment (construction methods own that).

package svg

// docPrefix and docSuffix form the canonical document shell. The viewBox is
// a wire contract: downstream consumers key on "0 0 512 512" exactly.
const (
	docPrefix = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 512 512">`
	docSuffix = `</svg>`
)

// Document wraps body markup into a complete, self-contained SVG document.
// Complexity: O(len(body)).
func Document(body string) string {
	return docPrefix + body + docSuffix
}
