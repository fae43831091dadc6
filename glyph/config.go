// SPDX-License-Identifier: MIT
// Package: pentasign/glyph
//
// config.go — resolved synthesis configuration.
//
// Defaults reproduce the canonical synthesis exactly:
//   • walkBase = DefaultWalkBase (15)
//   • maskBase = DefaultMaskBase (3)
//   • logger   = zap.NewNop()

package glyph

import "go.uber.org/zap"

// synthConfig aggregates the knobs read by the synthesis phases.
// It is passed by value; phases never mutate it.
type synthConfig struct {
	walkBase int
	maskBase int
	logger   *zap.Logger
}

// newSynthConfig applies opts in order over the defaults (last wins).
// Complexity: O(len(opts)).
func newSynthConfig(opts ...Option) synthConfig {
	cfg := synthConfig{
		walkBase: DefaultWalkBase,
		maskBase: DefaultMaskBase,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
