// SPDX-License-Identifier: MIT
// Package: pentasign/identity
//
// errors.go — sentinel errors and size checks.

package identity

import (
	"errors"
	"fmt"
)

// ErrInvalidSize indicates a key, hash or signature of the wrong length.
var ErrInvalidSize = errors.New("identity: invalid input size")

// ErrEncoding indicates text that is not valid key/signature encoding.
var ErrEncoding = errors.New("identity: invalid encoding")

func checkSize(method, field string, b []byte, want int) error {
	if len(b) != want {
		return fmt.Errorf("%s: %s is %d bytes, want %d: %w", method, field, len(b), want, ErrInvalidSize)
	}
	return nil
}
