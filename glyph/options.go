// SPDX-License-Identifier: MIT
// Package: pentasign/glyph
//
// options.go — functional options for Synthesize/Generate.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//     Synthesis itself never panics.
//   • Changing the walk or mask base changes the output; the defaults are
//     the canonical glyph and must be used for interoperable fingerprints.

package glyph

import "go.uber.org/zap"

// Option customizes a synthesis run.
type Option func(*synthConfig)

// WithWalkBase sets the minimum number of walk attempts (default 15).
// Panics if n < 0.
func WithWalkBase(n int) Option {
	if n < 0 {
		panic("glyph: WithWalkBase(n<0)")
	}
	return func(c *synthConfig) {
		c.walkBase = n
	}
}

// WithMaskBase sets the minimum number of mask attempts (default 3).
// Panics if n < 0.
func WithMaskBase(n int) Option {
	if n < 0 {
		panic("glyph: WithMaskBase(n<0)")
	}
	return func(c *synthConfig) {
		c.maskBase = n
	}
}

// WithLogger attaches a logger that receives debug records for every
// rejected candidate edge. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("glyph: WithLogger(nil)")
	}
	return func(c *synthConfig) {
		c.logger = l
	}
}
