// SPDX-License-Identifier: MIT
// Package: pentasign/glyph
//
// layout.go — the fixed 32-node skeleton.
//
// Emission order (stable, part of the contract):
//   - 20 outer nodes, side by side starting at the top vertex, 4 per side
//     at t = 1/5, 2/5, 3/5, 4/5 between the side's endpoints.
//   - Inner rings at radii 75, 50, 25; ring i (1-based) places 4 nodes at
//     j*90° + i*22.5°.

package glyph

import "math"

// Nodes returns the fixed node layout. The result is freshly allocated on
// every call and never depends on seed, nonce or free edges.
// Complexity: O(NodeCount) time and space.
func Nodes() []Node {
	nodes := make([]Node, 0, NodeCount)

	// Outer pentagon: interpolate along each side (vertex i → vertex i+1).
	var (
		i, j           int
		x1, y1, x2, y2 float64
		t              float64
	)
	for i = 0; i < PentagonSides; i++ {
		x1, y1 = polar(OuterRadius, VertexAngle(i))
		x2, y2 = polar(OuterRadius, VertexAngle(i+1))
		for j = 1; j <= NodesPerSide; j++ {
			t = float64(j) / float64(NodesPerSide+1)
			nodes = append(nodes, Node{
				X: x1 + t*(x2-x1),
				Y: y1 + t*(y2-y1),
			})
		}
	}

	// Inner rings, each staggered against the previous one.
	for i = range innerRadii {
		offset := float64(i+1) * RingStagger
		for j = 0; j < NodesPerRing; j++ {
			x, y := polar(innerRadii[i], float64(j)*90+offset)
			nodes = append(nodes, Node{X: x, Y: y})
		}
	}

	return nodes
}

// VertexAngle returns the angle in degrees of pentagon vertex i
// (i*72 - 90). Indices wrap naturally: VertexAngle(5) == VertexAngle(0)+360.
func VertexAngle(i int) float64 {
	return float64(i)*SideAngle + StartAngle
}

// polar converts (radius, degrees) to Cartesian coordinates.
func polar(r, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return r * math.Cos(rad), r * math.Sin(rad)
}
