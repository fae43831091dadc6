// SPDX-License-Identifier: MIT
// Package: pentasign/glyph
//
// errors.go — sentinel errors for pattern validation.
//
// Synthesis itself has no error path: invalid free-edge requests are dropped.
// These sentinels are returned only by Pattern.Validate, which guards patterns
// that arrive from outside the engine (decoded transports, hand-edited files).
// Callers branch with errors.Is; messages carry the offending edge via %w wraps.

package glyph

import "errors"

// ErrNodeCount indicates a pattern whose node list is not NodeCount long.
var ErrNodeCount = errors.New("glyph: wrong node count")

// ErrEdgeOutOfRange indicates an edge endpoint outside [0, len(nodes)).
var ErrEdgeOutOfRange = errors.New("glyph: edge endpoint out of range")

// ErrSelfLoop indicates an edge whose endpoints coincide.
var ErrSelfLoop = errors.New("glyph: self-loop edge")

// ErrDuplicateEdge indicates an undirected pair present more than once.
var ErrDuplicateEdge = errors.New("glyph: duplicate edge")

// ErrColorRange indicates a color index outside [0, ColorMask].
var ErrColorRange = errors.New("glyph: color index out of range")
