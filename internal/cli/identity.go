// SPDX-License-Identifier: MIT
// Package: pentasign/internal/cli
//
// identity.go — keygen, pubkey, sign and verify commands.

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pentasign/identity"
)

// ErrSignatureMismatch is returned by verify for a well-formed signature
// that does not match.
var ErrSignatureMismatch = errors.New("cli: signature does not verify")

// ErrHashSource indicates neither or both of --hash and --file were given.
var ErrHashSource = errors.New("cli: exactly one of --hash or --file is required")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newKeygenCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate an Ed25519 key pair (base64 JSON)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := identity.GenerateKeyPair()
			if err != nil {
				return err
			}
			a.logger.Debug("key pair generated")
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(kp)
		},
	}
}

func newPubkeyCommand(a *app) *cobra.Command {
	var private string

	cmd := &cobra.Command{
		Use:   "pubkey",
		Short: "Derive the public key of a private key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, err := identity.DecodeKey(private)
			if err != nil {
				return err
			}
			pub, err := identity.PublicFromPrivate(priv)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), identity.EncodeKey(pub))
			return err
		},
	}
	cmd.Flags().StringVar(&private, "private", "", "private key (base64 or hex)")
	_ = cmd.MarkFlagRequired("private")
	return cmd
}

func newSignCommand(a *app) *cobra.Command {
	var private, hash, file string

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a 32-byte payload hash or the SHA-256 of a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			digest, err := payloadHash(cmd.InOrStdin(), hash, file)
			if err != nil {
				return err
			}
			priv, err := identity.DecodeKey(private)
			if err != nil {
				return err
			}
			sig, err := identity.SignPayload(digest, priv)
			if err != nil {
				return err
			}
			a.logger.Debug("payload signed", zap.String("hash", identity.EncodeKey(digest)))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), identity.EncodeKey(sig))
			return err
		},
	}
	cmd.Flags().StringVar(&private, "private", "", "private key (base64 or hex)")
	cmd.Flags().StringVar(&hash, "hash", "", "payload hash (base64 or hex, 32 bytes)")
	cmd.Flags().StringVar(&file, "file", "", "document to hash with SHA-256 (\"-\" for stdin)")
	_ = cmd.MarkFlagRequired("private")
	return cmd
}

func newVerifyCommand(a *app) *cobra.Command {
	var public, signature, hash, file string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature over a payload hash or a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			digest, err := payloadHash(cmd.InOrStdin(), hash, file)
			if err != nil {
				return err
			}
			pub, err := identity.DecodeKey(public)
			if err != nil {
				return err
			}
			sig, err := identity.DecodeKey(signature)
			if err != nil {
				return err
			}
			ok, err := identity.Verify(digest, sig, pub)
			if err != nil {
				return err
			}
			a.logger.Debug("signature checked", zap.Bool("valid", ok))
			if !ok {
				return ErrSignatureMismatch
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return err
		},
	}
	cmd.Flags().StringVar(&public, "public", "", "public key (base64 or hex)")
	cmd.Flags().StringVar(&signature, "signature", "", "signature (base64 or hex)")
	cmd.Flags().StringVar(&hash, "hash", "", "payload hash (base64 or hex, 32 bytes)")
	cmd.Flags().StringVar(&file, "file", "", "document to hash with SHA-256 (\"-\" for stdin)")
	_ = cmd.MarkFlagRequired("public")
	_ = cmd.MarkFlagRequired("signature")
	return cmd
}

// payloadHash resolves the 32-byte payload from exactly one of hash or file.
// Hash length is checked by the identity package.
func payloadHash(stdin io.Reader, hash, file string) ([]byte, error) {
	switch {
	case (hash == "") == (file == ""):
		return nil, ErrHashSource
	case hash != "":
		return identity.DecodeKey(hash)
	case file == "-":
		return identity.HashDocument(stdin)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return identity.HashDocument(bytes.NewReader(data))
}
