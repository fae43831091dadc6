// SPDX-License-Identifier: MIT
// Package: pentasign/glyph
//
// phases.go — the three synthesis phases.
//
// Walk and Mask consume the shared stream; FreeEdges does not. None of them
// retries a rejected candidate: a rejection simply costs that attempt.

package glyph

import "go.uber.org/zap"

// walkPhase performs walkBase + seed%5 attempts starting at seed%nodes.
// Each attempt draws next; an edge current→next (color drawn from 0..2) is
// added when next differs from current and the pair is new. current moves to
// next whether or not an edge was added.
func walkPhase(seed uint32) phase {
	return func(s *synthesis) {
		if s.nodes <= 0 {
			return
		}
		current := int(seed % uint32(s.nodes))
		attempts := s.cfg.walkBase + int(seed%walkSpread)

		var next int
		for i := 0; i < attempts; i++ {
			next = s.rng.Intn(s.nodes)
			if next != current && !s.edges.has(current, next) {
				s.edges.add(Edge{
					Start: current,
					End:   next,
					Color: s.rng.Intn(WalkColors),
				})
			} else {
				s.cfg.logger.Debug("walk step rejected",
					zap.Int("attempt", i), zap.Int("from", current), zap.Int("to", next))
			}
			current = next
		}
	}
}

// freeEdgePhase accepts each request in order when both ends are in range,
// distinct, and not yet connected. Accepted edges keep the requested
// orientation and get ColorFree.
func freeEdgePhase(free []EdgeRequest) phase {
	return func(s *synthesis) {
		for i, req := range free {
			if req.Start < 0 || req.Start >= s.nodes ||
				req.End < 0 || req.End >= s.nodes ||
				req.Start == req.End ||
				s.edges.has(req.Start, req.End) {
				s.cfg.logger.Debug("free edge dropped",
					zap.Int("index", i), zap.Int("start", req.Start), zap.Int("end", req.End))
				continue
			}
			s.edges.add(Edge{Start: req.Start, End: req.End, Color: ColorFree})
		}
	}
}

// maskPhase performs maskBase + nonce%3 attempts, each drawing two
// independent node indices from the continuing stream.
func maskPhase(nonce uint32) phase {
	return func(s *synthesis) {
		if s.nodes <= 0 {
			return
		}
		attempts := s.cfg.maskBase + int(nonce%maskSpread)

		var u, v int
		for i := 0; i < attempts; i++ {
			u = s.rng.Intn(s.nodes)
			v = s.rng.Intn(s.nodes)
			if u == v || s.edges.has(u, v) {
				s.cfg.logger.Debug("mask edge rejected",
					zap.Int("attempt", i), zap.Int("start", u), zap.Int("end", v))
				continue
			}
			s.edges.add(Edge{Start: u, End: v, Color: ColorMask})
		}
	}
}
