// Package glyph contains unit tests for option resolution.
package glyph

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestSynthConfig_Defaults verifies the canonical defaults.
func TestSynthConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newSynthConfig()
	require.Equal(t, DefaultWalkBase, cfg.walkBase)
	require.Equal(t, DefaultMaskBase, cfg.maskBase)
	require.NotNil(t, cfg.logger)
}

// TestSynthConfig_LastWins verifies options apply in order.
func TestSynthConfig_LastWins(t *testing.T) {
	t.Parallel()

	l := zap.NewExample()
	cfg := newSynthConfig(WithWalkBase(4), WithMaskBase(9), WithWalkBase(6), WithLogger(l))
	require.Equal(t, 6, cfg.walkBase)
	require.Equal(t, 9, cfg.maskBase)
	require.Same(t, l, cfg.logger)
}

// TestOptions_Panics verifies option constructors fail fast.
func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { WithWalkBase(-1) })
	require.Panics(t, func() { WithMaskBase(-1) })
	require.Panics(t, func() { WithLogger(nil) })
	require.NotPanics(t, func() { WithWalkBase(0) })
}
