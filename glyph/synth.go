// SPDX-License-Identifier: MIT
// Package: pentasign/glyph
//
// synth.go — the edge synthesizer orchestrator.
//
// Design contract:
//   - One orchestrator (synthesize) creates the stream and the edge set, then
//     applies the phases in order: walk, free edges, mask.
//   - Every phase checks candidates against the full accumulated set, so no
//     undirected pair can appear twice regardless of which phase proposed it.
//   - The stream is threaded through all phases without re-seeding.

package glyph

import "go.uber.org/zap"

// phase is one ordered step of edge synthesis.
type phase func(s *synthesis)

// synthesis is the per-call state shared by the phases.
type synthesis struct {
	cfg   synthConfig
	rng   *stream
	nodes int
	edges *edgeSet
}

// edgeSet keeps edges in insertion order and indexes them by canonical pair.
type edgeSet struct {
	order []Edge
	seen  map[Pair]struct{}
}

func newEdgeSet(capacity int) *edgeSet {
	return &edgeSet{
		order: make([]Edge, 0, capacity),
		seen:  make(map[Pair]struct{}, capacity),
	}
}

// has reports whether the undirected pair {u,v} is already present.
func (es *edgeSet) has(u, v int) bool {
	_, ok := es.seen[PairOf(u, v)]
	return ok
}

// add appends e; callers check has first.
func (es *edgeSet) add(e Edge) {
	es.seen[e.Key()] = struct{}{}
	es.order = append(es.order, e)
}

// Synthesize builds the deterministic edge list over the fixed layout for
// (seed, free, nonce). Invalid free-edge requests are dropped silently.
//
// Determinism: equal inputs and options ⇒ identical edges in identical order,
// across calls and processes.
//
// Complexity: O(attempts + len(free)) expected time, O(|edges|) space.
func Synthesize(seed uint32, free []EdgeRequest, nonce uint32, opts ...Option) []Edge {
	return synthesize(NodeCount, seed, free, nonce, newSynthConfig(opts...))
}

// Generate returns the full pattern: Nodes() plus Synthesize(...).
func Generate(seed uint32, free []EdgeRequest, nonce uint32, opts ...Option) Pattern {
	nodes := Nodes()
	return Pattern{
		Nodes: nodes,
		Edges: synthesize(len(nodes), seed, free, nonce, newSynthConfig(opts...)),
	}
}

func synthesize(nodes int, seed uint32, free []EdgeRequest, nonce uint32, cfg synthConfig) []Edge {
	s := &synthesis{
		cfg:   cfg,
		rng:   newStream(seed, nonce),
		nodes: nodes,
		edges: newEdgeSet(cfg.walkBase + walkSpread + len(free) + cfg.maskBase + maskSpread),
	}

	for _, step := range []phase{
		walkPhase(seed),
		freeEdgePhase(free),
		maskPhase(nonce),
	} {
		step(s)
	}

	s.cfg.logger.Debug("pattern synthesized",
		zap.Uint32("seed", seed),
		zap.Uint32("nonce", nonce),
		zap.Int("edges", len(s.edges.order)),
	)
	return s.edges.order
}
