// SPDX-License-Identifier: MIT
// Package: pentasign/identity
//
// keys.go — Ed25519 key generation, derivation, signing and verification.
//
// Contract:
//   - Private keys are 32-byte seeds; payload hashes are 32 bytes.
//   - Wrong-size inputs return ErrInvalidSize, never a panic.

package identity

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"
)

const (
	// PrivateKeySize is the length of a private key (the Ed25519 seed).
	PrivateKeySize = ed25519.SeedSize
	// PublicKeySize is the length of a public key.
	PublicKeySize = ed25519.PublicKeySize
	// HashSize is the required length of a payload hash.
	HashSize = 32
	// SignatureSize is the length of a signature.
	SignatureSize = ed25519.SignatureSize
)

const (
	methodGenerate   = "GenerateKeyPair"
	methodPublic     = "PublicFromPrivate"
	methodSign       = "SignPayload"
	methodVerify     = "Verify"
	methodDecodeKey  = "DecodeKey"
	methodHashReader = "HashDocument"
)

// KeyPair is a freshly generated identity.
type KeyPair struct {
	PublicKey  []byte `json:"publicKey" yaml:"publicKey"`
	PrivateKey []byte `json:"privateKey" yaml:"privateKey"`
}

// GenerateKeyPair returns a new key pair drawn from crypto/rand.
// crypto/rand is safe for concurrent use; concurrent calls get independent keys.
func GenerateKeyPair() (KeyPair, error) {
	return generateFrom(rand.Reader)
}

func generateFrom(entropy io.Reader) (KeyPair, error) {
	seed := make([]byte, PrivateKeySize)
	if _, err := io.ReadFull(entropy, seed); err != nil {
		return KeyPair{}, fmt.Errorf("%s: read entropy: %w", methodGenerate, err)
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return KeyPair{
		PublicKey:  []byte(priv.Public().(ed25519.PublicKey)),
		PrivateKey: seed,
	}, nil
}

// PublicFromPrivate derives the public key for a 32-byte private key.
func PublicFromPrivate(privateKey []byte) ([]byte, error) {
	if err := checkSize(methodPublic, "private key", privateKey, PrivateKeySize); err != nil {
		return nil, err
	}
	pub := ed25519.NewKeyFromSeed(privateKey).Public().(ed25519.PublicKey)
	return []byte(pub), nil
}

// SignPayload signs a 32-byte payload hash and returns a 64-byte signature.
// The hash is signed as-is (pure Ed25519 over the 32 bytes).
func SignPayload(payloadHash, privateKey []byte) ([]byte, error) {
	if err := checkSize(methodSign, "payload hash", payloadHash, HashSize); err != nil {
		return nil, err
	}
	if err := checkSize(methodSign, "private key", privateKey, PrivateKeySize); err != nil {
		return nil, err
	}
	return ed25519.Sign(ed25519.NewKeyFromSeed(privateKey), payloadHash), nil
}

// Verify reports whether signature is a valid signature of payloadHash by
// publicKey. Size errors are returned; a well-formed but wrong signature
// yields (false, nil).
func Verify(payloadHash, signature, publicKey []byte) (bool, error) {
	if err := checkSize(methodVerify, "payload hash", payloadHash, HashSize); err != nil {
		return false, err
	}
	if err := checkSize(methodVerify, "signature", signature, SignatureSize); err != nil {
		return false, err
	}
	if err := checkSize(methodVerify, "public key", publicKey, PublicKeySize); err != nil {
		return false, err
	}
	return ed25519.Verify(ed25519.PublicKey(publicKey), payloadHash, signature), nil
}
