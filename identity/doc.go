// Package identity provides the signing primitives that pair with a glyph:
// Ed25519 key generation, public-key derivation and signing over a 32-byte
// payload hash, plus verification and document hashing helpers.
//
// All fixed-length inputs are validated strictly. A length mismatch returns
// an error wrapping ErrInvalidSize; inputs are never truncated or padded and
// no function panics on caller data.
package identity
