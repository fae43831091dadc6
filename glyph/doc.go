// Package glyph synthesizes the deterministic pentagonal pattern that backs a
// signing identity's visual fingerprint.
//
// A pattern is a fixed skeleton of 32 nodes plus a seeded edge list:
//
//   - Layout: 20 nodes spread along the sides of a regular pentagon
//     (circumradius 100, first vertex pointing up) and three staggered inner
//     rings of 4 nodes each at radii 75, 50 and 25. The layout never depends
//     on the inputs, so two glyphs differ only in their wiring.
//   - Synthesis: three ordered phases fill the edge list from a single
//     seeded stream derived from (seed<<32 | nonce):
//     – Walk:      a random walk of 15+(seed mod 5) steps, colors 0..2.
//     – FreeEdges: caller-requested connections, color 3, invalid ones dropped.
//     – Mask:      3+(nonce mod 3) random node pairs, color 4.
//
// Guarantees:
//
//   - Determinism: equal (seed, free edges, nonce) ⇒ identical edge list and order.
//   - Simple graph: no self-loops and no undirected pair appears twice.
//   - Best effort: malformed free-edge requests are dropped silently, never reported.
//   - No shared state: each call owns its stream; concurrent calls need no locking.
//
// Example:
//
//	p := glyph.Generate(7, []glyph.EdgeRequest{{Start: 0, End: 5}}, 2)
//	fmt.Println(len(p.Nodes), len(p.Edges))
//
// Complexity: every operation is O(NodeCount + |edges|) with |edges| ≤ ~30.
package glyph
