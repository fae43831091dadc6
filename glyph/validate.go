// SPDX-License-Identifier: MIT
// Package: pentasign/glyph
//
// validate.go — structural checks for patterns received from outside.
//
// Check order per edge: range, self-loop, color, duplicate. The first
// violation is returned wrapped with the edge index.

package glyph

import "fmt"

// Validate reports the first violated pattern invariant, or nil.
// Patterns produced by Generate always validate.
// Complexity: O(|nodes| + |edges|).
func (p Pattern) Validate() error {
	n := len(p.Nodes)
	if n != NodeCount {
		return fmt.Errorf("%s: got %d nodes, want %d: %w", methodValidate, n, NodeCount, ErrNodeCount)
	}

	seen := make(map[Pair]int, len(p.Edges))
	for i, e := range p.Edges {
		if e.Start < 0 || e.Start >= n || e.End < 0 || e.End >= n {
			return fmt.Errorf("%s: edge %d (%d→%d): %w", methodValidate, i, e.Start, e.End, ErrEdgeOutOfRange)
		}
		if e.Start == e.End {
			return fmt.Errorf("%s: edge %d (%d→%d): %w", methodValidate, i, e.Start, e.End, ErrSelfLoop)
		}
		if e.Color < 0 || e.Color > ColorMask {
			return fmt.Errorf("%s: edge %d color=%d: %w", methodValidate, i, e.Color, ErrColorRange)
		}
		if first, dup := seen[e.Key()]; dup {
			return fmt.Errorf("%s: edge %d repeats edge %d (%d—%d): %w",
				methodValidate, i, first, e.Start, e.End, ErrDuplicateEdge)
		}
		seen[e.Key()] = i
	}
	return nil
}
