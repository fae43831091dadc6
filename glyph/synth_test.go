// Package glyph_test exercises the edge synthesizer end to end: golden
// outputs, structural invariants over many inputs, and free-edge policy.
package glyph_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/pentasign/glyph"
)

// SynthSuite groups synthesizer scenarios.
type SynthSuite struct {
	suite.Suite
}

func TestSynthSuite(t *testing.T) {
	suite.Run(t, new(SynthSuite))
}

// edges is shorthand for golden tables: {start, end, color}.
func edges(triples ...[3]int) []glyph.Edge {
	out := make([]glyph.Edge, len(triples))
	for i, tr := range triples {
		out[i] = glyph.Edge{Start: tr[0], End: tr[1], Color: tr[2]}
	}
	return out
}

// TestGolden_SeedZero pins seed=0, nonce=0, no free edges: the walk starts at
// node 0 and makes 15 attempts.
func (s *SynthSuite) TestGolden_SeedZero() {
	want := edges(
		[3]int{0, 17, 0}, [3]int{17, 18, 0}, [3]int{18, 12, 2}, [3]int{12, 4, 1},
		[3]int{4, 14, 0}, [3]int{14, 23, 0}, [3]int{23, 19, 0}, [3]int{19, 13, 2},
		[3]int{13, 4, 0}, [3]int{4, 27, 0}, [3]int{27, 2, 0}, [3]int{2, 0, 0},
		[3]int{0, 30, 2}, [3]int{30, 7, 0}, [3]int{7, 14, 2},
		[3]int{19, 8, 4}, [3]int{3, 10, 4}, [3]int{6, 13, 4},
	)
	got := glyph.Synthesize(0, nil, 0)
	if diff := cmp.Diff(want, got); diff != "" {
		s.T().Fatalf("seed=0 nonce=0 mismatch (-want +got):\n%s", diff)
	}
	s.Require().Equal(0, got[0].Start)
}

// TestGolden_SelfLoopRequest pins seed=7, nonce=2 with a self-loop request:
// the request is absent and the output equals the run without it.
func (s *SynthSuite) TestGolden_SelfLoopRequest() {
	want := edges(
		[3]int{7, 13, 0}, [3]int{13, 8, 0}, [3]int{8, 16, 2}, [3]int{16, 22, 2},
		[3]int{22, 0, 1}, [3]int{0, 1, 2}, [3]int{1, 12, 2}, [3]int{1, 16, 1},
		[3]int{1, 28, 2}, [3]int{28, 17, 0}, [3]int{17, 31, 0}, [3]int{31, 8, 2},
		[3]int{8, 2, 2}, [3]int{2, 30, 0}, [3]int{30, 12, 1},
		[3]int{29, 22, 4}, [3]int{30, 1, 4}, [3]int{5, 24, 4}, [3]int{18, 2, 4}, [3]int{31, 21, 4},
	)
	got := glyph.Synthesize(7, []glyph.EdgeRequest{{Start: 1, End: 1}}, 2)
	if diff := cmp.Diff(want, got); diff != "" {
		s.T().Fatalf("seed=7 nonce=2 mismatch (-want +got):\n%s", diff)
	}
	s.Require().Equal(got, glyph.Synthesize(7, nil, 2))
	for _, e := range got {
		s.Require().NotEqual(e.Start, e.End)
	}
}

// TestGolden_MixedRequests checks acceptance in input order: a valid request
// is inserted between walk and mask edges, out-of-range and reversed
// duplicates are dropped.
func (s *SynthSuite) TestGolden_MixedRequests() {
	free := []glyph.EdgeRequest{
		{Start: 1, End: 1},  // self-loop
		{Start: 0, End: 5},  // accepted
		{Start: 40, End: 2}, // out of range
		{Start: 5, End: 0},  // reversed duplicate
		{Start: -1, End: 3}, // negative
		{Start: 13, End: 7}, // duplicates walk edge 7→13
	}
	got := glyph.Synthesize(7, free, 2)
	s.Require().Len(got, 21)
	s.Require().Equal(glyph.Edge{Start: 0, End: 5, Color: glyph.ColorFree}, got[15])
	s.Require().Equal(glyph.Edge{Start: 29, End: 22, Color: glyph.ColorMask}, got[16])
	s.Require().Equal(1, glyph.Pattern{Edges: got}.PhaseCounts().Free)
}

// TestDeterminism verifies repeated calls agree exactly.
func (s *SynthSuite) TestDeterminism() {
	free := []glyph.EdgeRequest{{Start: 3, End: 9}, {Start: 20, End: 31}}
	base := glyph.Generate(123456789, free, 987654321)
	for i := 0; i < 5; i++ {
		s.Require().Equal(base, glyph.Generate(123456789, free, 987654321))
	}
}

// TestNonceChangesStream verifies the nonce reshapes the walk as well as the mask.
func (s *SynthSuite) TestNonceChangesStream() {
	a := glyph.Synthesize(99, nil, 0)
	b := glyph.Synthesize(99, nil, 1)
	s.Require().NotEqual(a, b)
	s.Require().Equal(a[0].Start, b[0].Start, "walk start depends on seed only")
}

// TestInvariants_Sweep checks every structural invariant across many inputs.
func (s *SynthSuite) TestInvariants_Sweep() {
	free := []glyph.EdgeRequest{
		{Start: 0, End: 31}, {Start: 31, End: 0}, {Start: 4, End: 4},
		{Start: 32, End: 1}, {Start: 10, End: 11},
	}
	for seed := uint32(0); seed < 200; seed += 7 {
		for nonce := uint32(0); nonce < 12; nonce++ {
			p := glyph.Generate(seed, free, nonce)
			s.Require().NoError(p.Validate(), "seed=%d nonce=%d", seed, nonce)
			s.Require().Len(p.Nodes, glyph.NodeCount)

			pc := p.PhaseCounts()
			s.Require().LessOrEqual(pc.Walk, 15+int(seed%5))
			s.Require().LessOrEqual(pc.Mask, 3+int(nonce%3))
			s.Require().LessOrEqual(pc.Free, 2, "only two distinct valid requests")
			s.Require().Equal(len(p.Edges), pc.Walk+pc.Free+pc.Mask)

			// Phase order: colors never decrease across phase boundaries.
			phaseOf := func(c int) int {
				switch c {
				case glyph.ColorFree:
					return 1
				case glyph.ColorMask:
					return 2
				}
				return 0
			}
			for i := 1; i < len(p.Edges); i++ {
				s.Require().LessOrEqual(phaseOf(p.Edges[i-1].Color), phaseOf(p.Edges[i].Color))
			}
			for _, e := range p.Edges {
				s.Require().False(e.Start == 4 && e.End == 4)
				s.Require().NotEqual(32, e.Start)
			}
		}
	}
}

// TestLayoutIndependence verifies nodes never depend on inputs.
func (s *SynthSuite) TestLayoutIndependence() {
	want := glyph.Nodes()
	s.Require().Equal(want, glyph.Generate(1, nil, 1).Nodes)
	s.Require().Equal(want, glyph.Generate(4294967295, []glyph.EdgeRequest{{Start: 1, End: 2}}, 4294967295).Nodes)
}

// TestEmptyOutputIsNonNil verifies a degenerate configuration still yields
// an empty, non-nil edge list (encodes as [] rather than null).
func (s *SynthSuite) TestEmptyOutputIsNonNil() {
	got := glyph.Synthesize(0, nil, 0, glyph.WithWalkBase(0), glyph.WithMaskBase(0))
	s.Require().NotNil(got)
	s.Require().Empty(got)
}

// TestWithLogger_RecordsRejections verifies rejected candidates are traced.
func (s *SynthSuite) TestWithLogger_RecordsRejections() {
	core, logs := observer.New(zap.DebugLevel)
	glyph.Synthesize(7, []glyph.EdgeRequest{{Start: 1, End: 1}}, 2, glyph.WithLogger(zap.New(core)))

	s.Require().Equal(1, logs.FilterMessage("free edge dropped").Len())
	s.Require().Equal(1, logs.FilterMessage("pattern synthesized").Len())
}

// TestWalkAttemptsBound verifies the walk attempt count scales with the base.
func TestWalkAttemptsBound(t *testing.T) {
	t.Parallel()

	for _, base := range []int{0, 1, 5, 40} {
		got := glyph.Pattern{Edges: glyph.Synthesize(11, nil, 0, glyph.WithWalkBase(base), glyph.WithMaskBase(0))}
		require.LessOrEqual(t, got.PhaseCounts().Walk, base+11%5)
		require.NoError(t, glyph.Pattern{Nodes: glyph.Nodes(), Edges: got.Edges}.Validate())
	}
}
