// SPDX-License-Identifier: MIT
// Package: pentasign/glyph
//
// stream.go — the seeded pseudo-random stream used by edge synthesis.
//
// The generator is wyrand (64-bit state, additive constant, 128-bit
// multiply-fold). Bounded draws reduce the low 32 bits of each output with
// Lemire's multiply-shift method and reject only the biased low band, so the
// draw sequence for a given state is fixed and golden glyphs stay stable.
//
// Concurrency: a stream is NOT goroutine-safe. Each synthesis owns one.

package glyph

import "math/bits"

const (
	wyConst0 uint64 = 0x2d358dccaa6c78a5
	wyConst1 uint64 = 0x8bb84b93962eacc9
)

// stream is a wyrand generator.
type stream struct {
	state uint64
}

// newStream seeds a stream with seed in the high and nonce in the low 32
// bits, so changing either input changes every subsequent draw.
func newStream(seed, nonce uint32) *stream {
	return &stream{state: uint64(seed)<<32 | uint64(nonce)}
}

// Uint64 advances the state and returns the next 64-bit output.
func (s *stream) Uint64() uint64 {
	s.state += wyConst0
	hi, lo := bits.Mul64(s.state, s.state^wyConst1)
	return hi ^ lo
}

// Intn returns a uniform value in [0,n).
// Callers guarantee 1 <= n < 2^32: the phases pass NodeCount or WalkColors
// and return early on an empty layout. The zero result outside that domain
// is a guard that leaves the stream untouched, not a supported draw.
// Complexity: O(1) expected.
func (s *stream) Intn(n int) int {
	if n <= 0 || uint64(n) > maxBound {
		return 0
	}
	bound := uint32(n)

	m := uint64(uint32(s.Uint64())) * uint64(bound)
	if uint32(m) < bound {
		// threshold = 2^32 mod bound; redraw while inside the biased band.
		threshold := -bound % bound
		for uint32(m) < threshold {
			m = uint64(uint32(s.Uint64())) * uint64(bound)
		}
	}
	return int(m >> 32)
}

// maxBound is the largest bound Intn accepts.
const maxBound = 1<<32 - 1
