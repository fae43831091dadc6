// SPDX-License-Identifier: MIT
// Package: pentasign
//
// encode.go — wire encodings of Result.
//
// JSON goes through json-iterator in standard-library-compatible mode so the
// field names and number formatting match encoding/json; YAML uses yaml.v3
// with the same field names.

package pentasign

import (
	"errors"
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pentasign/glyph"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Format selects an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	// FormatSVG writes Result.Image only.
	FormatSVG Format = "svg"
)

// ErrUnknownFormat indicates an unsupported Format value.
var ErrUnknownFormat = errors.New("pentasign: unknown format")

// ErrDecode indicates malformed transported data.
var ErrDecode = errors.New("pentasign: decode failed")

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML, FormatSVG:
		return f, nil
	}
	return "", fmt.Errorf("ParseFormat: %q: %w", s, ErrUnknownFormat)
}

// Encode writes r to w in format f.
func Encode(w io.Writer, r Result, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("Encode(json): %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("Encode(yaml): %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("Encode(yaml): %w", err)
		}
	case FormatSVG:
		if _, err := io.WriteString(w, r.Image+"\n"); err != nil {
			return fmt.Errorf("Encode(svg): %w", err)
		}
	default:
		return fmt.Errorf("Encode: %q: %w", f, ErrUnknownFormat)
	}
	return nil
}

// MarshalJSON returns the compact JSON encoding of r.
func MarshalJSON(r Result) ([]byte, error) {
	return json.Marshal(r)
}

// DecodeResult parses a JSON or YAML encoded Result. The pattern is not
// validated here; call Pattern.Validate before rendering untrusted input.
func DecodeResult(data []byte) (Result, error) {
	var r Result
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") {
		if err := json.Unmarshal(data, &r); err != nil {
			return Result{}, fmt.Errorf("DecodeResult(json): %v: %w", err, ErrDecode)
		}
		return r, nil
	}
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Result{}, fmt.Errorf("DecodeResult(yaml): %v: %w", err, ErrDecode)
	}
	return r, nil
}

// DecodePattern accepts either a full Result or a bare Pattern document.
func DecodePattern(data []byte) (glyph.Pattern, error) {
	r, err := DecodeResult(data)
	if err != nil {
		return glyph.Pattern{}, err
	}
	if len(r.Pattern.Nodes) > 0 || len(r.Pattern.Edges) > 0 {
		return r.Pattern, nil
	}

	var p glyph.Pattern
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") {
		err = json.Unmarshal(data, &p)
	} else {
		err = yaml.Unmarshal(data, &p)
	}
	if err != nil {
		return glyph.Pattern{}, fmt.Errorf("DecodePattern: %v: %w", err, ErrDecode)
	}
	return p, nil
}
