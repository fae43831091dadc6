// SPDX-License-Identifier: MIT
// Package: pentasign
//
// pentasign.go — the pattern boundary.
//
// Contract:
//   - BuildPattern(seed, free, nonce) ⇒ {pattern, image}; no error path.
//   - BuildPatternWith forwards glyph options; the defaults give the same result.
//   - Image is rendered at DefaultImageSize unless a render option overrides it;
//     the viewBox is always "-110 -110 220 220".
//   - Equal inputs ⇒ byte-identical encodings.

package pentasign

import (
	"github.com/katalvlaran/pentasign/glyph"
	"github.com/katalvlaran/pentasign/render"
)

// DefaultImageSize is the pixel size of Result.Image.
const DefaultImageSize = render.DefaultSize

// Result is the transport unit: the pattern plus its rendered image.
type Result struct {
	Pattern glyph.Pattern `json:"pattern" yaml:"pattern"`
	Image   string        `json:"image" yaml:"image"`
}

// BuildPattern generates the glyph for (seed, free, nonce) and renders it.
// Invalid free-edge requests are dropped silently.
// Complexity: O(NodeCount + |edges|).
func BuildPattern(seed uint32, free []glyph.EdgeRequest, nonce uint32, opts ...render.Option) Result {
	return BuildPatternWith(seed, free, nonce, nil, opts...)
}

// BuildPatternWith is BuildPattern with synthesis options, e.g. glyph.WithLogger.
func BuildPatternWith(seed uint32, free []glyph.EdgeRequest, nonce uint32, synth []glyph.Option, opts ...render.Option) Result {
	p := glyph.Generate(seed, free, nonce, synth...)
	return Result{
		Pattern: p,
		Image:   render.SVG(p, opts...),
	}
}
