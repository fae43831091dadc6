// Package pentasign produces deterministic pentagonal glyphs that visually
// fingerprint a signing identity, and exposes them at a transport-friendly
// boundary.
//
// Under the hood the work is split across flat subpackages:
//
//	glyph/    — fixed 32-node layout, seeded three-phase edge synthesis, validation
//	render/   — SVG rendering of a pattern (beevik/etree)
//	identity/ — Ed25519 keys, payload signing/verification, document hashing
//
// BuildPattern is the single entry point most callers need:
//
//	res := pentasign.BuildPattern(seed, []glyph.EdgeRequest{{Start: 0, End: 5}}, nonce)
//	_ = pentasign.Encode(os.Stdout, res, pentasign.FormatJSON)
//
// Every operation is synchronous and allocation-local; concurrent calls with
// independent inputs are safe without locking.
package pentasign
