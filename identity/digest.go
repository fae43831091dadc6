// SPDX-License-Identifier: MIT
// Package: pentasign/identity
//
// digest.go — document hashing and key text encodings.

package identity

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// HashDocument returns the SHA-256 digest of everything read from r, the
// payload hash a document is signed over.
func HashDocument(r io.Reader) ([]byte, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return nil, fmt.Errorf("%s: %w", methodHashReader, err)
	}
	return h.Sum(nil), nil
}

// EncodeKey renders key material as standard base64.
func EncodeKey(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeKey parses key material written as standard base64 or hex.
// Surrounding whitespace is ignored. Hex is tried first when the text is an
// even-length run of hex digits, since such text is rarely intended as base64.
func DecodeKey(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%s: empty input: %w", methodDecodeKey, ErrEncoding)
	}
	if isHex(s) {
		if b, err := hex.DecodeString(s); err == nil {
			return b, nil
		}
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", methodDecodeKey, err, ErrEncoding)
	}
	return b, nil
}

func isHex(s string) bool {
	if len(s)%2 != 0 {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
