// SPDX-License-Identifier: MIT
// Package: geomark/prng
//
// prng.go — seed hashing and the LCG stream.
//
// Contract (strict):
//   - New(seed) is a pure function of the seed string.
//   - Next() returns a float64 in [0,1) and advances the state exactly once.
//   - The hash (h = h*31 + rune) and the LCG constants (1664525, 1013904223,
//     modulus 2^32) are frozen; changing either breaks every golden output.
//
// Determinism:
//   - uint32 arithmetic wraps identically on all platforms.
//   - float64(state) / 2^32 is exact for every 32-bit state.

package prng

// LCG parameters (Numerical Recipes constants; modulus is the natural
// uint32 wraparound).
const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223

	// hashMultiplier folds seed runes with the classic 31-multiplier scheme.
	hashMultiplier = 31

	// stateSpan is 2^32 as a float64 divisor for normalizing draws.
	stateSpan = 1 << 32
)

// Stream is a deterministic pseudo-random sequence derived from a string
// seed. It is cheap to create, not safe for concurrent use, and intended to
// live for exactly one construction-method invocation.
type Stream struct {
	state uint32
}

// New derives a Stream from seed. The empty seed is valid and yields the
// all-zero initial state (the additive LCG constant escapes it immediately).
// Complexity: O(len(seed)).
func New(seed string) *Stream {
	var h uint32
	for _, r := range seed {
		// Multiply-accumulate with natural 32-bit wraparound.
		h = h*hashMultiplier + uint32(r)
	}

	return &Stream{state: h}
}

// Next advances the generator and returns a uniform draw in [0,1).
func (s *Stream) Next() float64 {
	s.state = s.state*lcgMultiplier + lcgIncrement

	return float64(s.state) / stateSpan
}
