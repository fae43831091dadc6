package glyph_test

import (
	"fmt"

	"github.com/katalvlaran/pentasign/glyph"
)

// ExampleGenerate builds the canonical glyph for seed 0 / nonce 0.
func ExampleGenerate() {
	p := glyph.Generate(0, nil, 0)
	pc := p.PhaseCounts()

	fmt.Println("nodes:", len(p.Nodes))
	fmt.Println("first edge:", p.Edges[0].Start, "→", p.Edges[0].End)
	fmt.Println("walk/free/mask:", pc.Walk, pc.Free, pc.Mask)
	fmt.Println("valid:", p.Validate() == nil)

	// Output:
	// nodes: 32
	// first edge: 0 → 17
	// walk/free/mask: 15 0 3
	// valid: true
}

// ExampleSynthesize shows that invalid requests are dropped silently.
func ExampleSynthesize() {
	free := []glyph.EdgeRequest{{Start: 1, End: 1}, {Start: 0, End: 99}, {Start: 0, End: 5}}
	var accepted []glyph.Edge
	for _, e := range glyph.Synthesize(7, free, 2) {
		if e.Color == glyph.ColorFree {
			accepted = append(accepted, e)
		}
	}
	fmt.Println(accepted)

	// Output:
	// [{0 5 3}]
}
