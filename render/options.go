// SPDX-License-Identifier: MIT
// Package: pentasign/render
//
// options.go — functional options for SVG output.
//
// Contract:
//   - Option constructors panic on invalid values; rendering never panics on them.
//   - ValidSize is the single size predicate; callers check it before WithSize.

package render

import "math"

// Option customizes SVG output.
type Option func(*config)

type config struct {
	size   float64
	indent int
}

func newConfig(opts ...Option) config {
	cfg := config{size: DefaultSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// ValidSize reports whether px is accepted by WithSize: finite and > 0.
func ValidSize(px float64) bool {
	return px > 0 && !math.IsInf(px, 0)
}

// WithSize sets the output width and height. The viewBox is unaffected.
// Panics unless ValidSize(px).
func WithSize(px float64) Option {
	if !ValidSize(px) {
		panic("render: WithSize(px not finite and > 0)")
	}
	return func(c *config) {
		c.size = px
	}
}

// WithIndent pretty-prints the document with the given number of spaces per
// level; 0 (the default) emits compact markup. Panics if spaces < 0.
func WithIndent(spaces int) Option {
	if spaces < 0 {
		panic("render: WithIndent(spaces<0)")
	}
	return func(c *config) {
		c.indent = spaces
	}
}
