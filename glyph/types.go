// SPDX-License-Identifier: MIT
// Package: pentasign/glyph
//
// types.go — the pattern data model.
//
// Contract:
//   - Node order is fixed by Nodes(); an edge refers to nodes by index.
//   - Edge order is the synthesis order and is part of the determinism contract.
//   - (Start,End) and (End,Start) denote the same undirected connection.

package glyph

// Node is a point of the fixed skeleton, in the renderer's logical frame.
type Node struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Edge is an undirected connection between two node indices.
// Color is a palette index: 0..2 walk, ColorFree, ColorMask.
type Edge struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
	Color int `json:"color" yaml:"color"`
}

// EdgeRequest is a raw, unvalidated caller request to connect two nodes.
type EdgeRequest struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Pair is the canonical (min,max) form of an undirected node pair.
type Pair struct {
	A, B int
}

// PairOf canonicalizes (u,v) so that PairOf(u,v) == PairOf(v,u).
func PairOf(u, v int) Pair {
	if u > v {
		u, v = v, u
	}
	return Pair{A: u, B: v}
}

// Key returns the canonical undirected pair of e.
func (e Edge) Key() Pair {
	return PairOf(e.Start, e.End)
}

// Pattern is the node/edge pair handed to renderers and transports.
type Pattern struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Edges []Edge `json:"edges" yaml:"edges"`
}

// PhaseCounts reports how many edges each synthesis phase contributed,
// as classified by color index.
type PhaseCounts struct {
	Walk int
	Free int
	Mask int
}

// PhaseCounts classifies p.Edges by color. Colors outside [0,ColorMask] are
// not counted; Validate reports them.
// Complexity: O(|edges|).
func (p Pattern) PhaseCounts() PhaseCounts {
	var pc PhaseCounts
	for _, e := range p.Edges {
		switch {
		case e.Color >= 0 && e.Color < WalkColors:
			pc.Walk++
		case e.Color == ColorFree:
			pc.Free++
		case e.Color == ColorMask:
			pc.Mask++
		}
	}
	return pc
}

// Clone returns a deep copy of p. Slices of the copy never alias p.
func (p Pattern) Clone() Pattern {
	out := Pattern{
		Nodes: make([]Node, len(p.Nodes)),
		Edges: make([]Edge, len(p.Edges)),
	}
	copy(out.Nodes, p.Nodes)
	copy(out.Edges, p.Edges)
	return out
}
