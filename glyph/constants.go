// SPDX-License-Identifier: MIT
// Package: pentasign/glyph
//
// constants.go — geometric and synthesis constants shared by the layout
// generator, the edge synthesizer and validators.

package glyph

//-----------------------------------------------------------------------------
// Layout geometry
//-----------------------------------------------------------------------------

const (
	// PentagonSides is the number of sides of the outer polygon.
	PentagonSides = 5

	// OuterRadius is the circumradius of the outer pentagon.
	OuterRadius = 100.0

	// StartAngle is the angle (degrees) of the first pentagon vertex; -90 points up
	// in a y-down coordinate frame.
	StartAngle = -90.0

	// SideAngle is the angular step (degrees) between consecutive pentagon vertices.
	SideAngle = 360.0 / PentagonSides

	// NodesPerSide is how many nodes are interpolated along each pentagon side,
	// at t = 1/5 .. 4/5 (the vertices themselves are not nodes).
	NodesPerSide = 4

	// OuterNodes is the size of the pentagonal ring.
	OuterNodes = PentagonSides * NodesPerSide

	// NodesPerRing is the size of each inner ring (90° spacing).
	NodesPerRing = 4

	// RingStagger is the extra rotation (degrees) applied per inner ring index.
	RingStagger = 22.5

	// NodeCount is the total number of nodes in every pattern.
	NodeCount = OuterNodes + NodesPerRing*3
)

// innerRadii lists the inner ring radii, outermost first. Ring i (1-based)
// is rotated by i*RingStagger.
var innerRadii = [...]float64{75, 50, 25}

//-----------------------------------------------------------------------------
// Synthesis
//-----------------------------------------------------------------------------

const (
	// DefaultWalkBase is the minimum number of walk attempts; the walk makes
	// DefaultWalkBase + seed%walkSpread attempts.
	DefaultWalkBase = 15

	// DefaultMaskBase is the minimum number of mask attempts; the mask makes
	// DefaultMaskBase + nonce%maskSpread attempts.
	DefaultMaskBase = 3

	walkSpread = 5
	maskSpread = 3
)

//-----------------------------------------------------------------------------
// Color indices
//-----------------------------------------------------------------------------

const (
	// WalkColors is the number of colors drawn for walk edges (indices 0..2).
	WalkColors = 3

	// ColorFree marks accepted caller-requested edges.
	ColorFree = 3

	// ColorMask marks mask noise edges.
	ColorMask = 4

	// PaletteSize is the number of palette entries; renderers index by color%PaletteSize.
	PaletteSize = 5
)

// Method names used to prefix wrapped errors.
const (
	methodValidate = "Validate"
)
