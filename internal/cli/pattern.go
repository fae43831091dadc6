// SPDX-License-Identifier: MIT
// Package: pentasign/internal/cli
//
// pattern.go — the pattern and render commands.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pentasign"
	"github.com/katalvlaran/pentasign/glyph"
	"github.com/katalvlaran/pentasign/render"
)

var (
	// ErrEdgeSyntax indicates an --edge value that is not "start,end".
	ErrEdgeSyntax = errors.New("cli: edge must be start,end")
	// ErrSize indicates a --size that is not finite and > 0.
	ErrSize = errors.New("cli: size must be finite and > 0")
)

func newPatternCommand(a *app) *cobra.Command {
	var (
		seed, nonce uint32
		edgeArgs    []string
		format      string
		size        float64
	)

	cmd := &cobra.Command{
		Use:   "pattern",
		Short: "Build the glyph for a seed and nonce",
		Long: `Builds the deterministic glyph for --seed and --nonce, optionally with
user-requested connections (--edge start,end, repeatable). Invalid connections
are dropped silently. Output is JSON, YAML or bare SVG.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			free, err := parseEdges(edgeArgs)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Output.Format
			}
			f, err := pentasign.ParseFormat(format)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("size") {
				size = a.cfg.Render.Size
			}
			if !render.ValidSize(size) {
				return fmt.Errorf("--size %v: %w", size, ErrSize)
			}

			res := pentasign.BuildPatternWith(seed, free, nonce,
				[]glyph.Option{glyph.WithLogger(a.logger)}, a.renderOptions(size)...)
			a.logger.Debug("pattern built",
				zap.Uint32("seed", seed),
				zap.Uint32("nonce", nonce),
				zap.Int("requested", len(free)),
				zap.Int("edges", len(res.Pattern.Edges)),
			)
			return pentasign.Encode(cmd.OutOrStdout(), res, f)
		},
	}

	cmd.Flags().Uint32Var(&seed, "seed", 0, "identity seed")
	cmd.Flags().Uint32Var(&nonce, "nonce", 0, "mask nonce")
	cmd.Flags().StringArrayVarP(&edgeArgs, "edge", "e", nil, "free edge as start,end (repeatable)")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json, yaml or svg")
	cmd.Flags().Float64Var(&size, "size", render.DefaultSize, "image width/height in pixels")
	return cmd
}

func newRenderCommand(a *app) *cobra.Command {
	var size float64

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a transported pattern (JSON or YAML) to SVG",
		Long: `Reads a pattern, or a full pattern result, from file or stdin ("-"),
validates its structure and writes the SVG to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			p, err := pentasign.DecodePattern(data)
			if err != nil {
				return err
			}
			if err := p.Validate(); err != nil {
				return err
			}
			if !cmd.Flags().Changed("size") {
				size = a.cfg.Render.Size
			}
			if !render.ValidSize(size) {
				return fmt.Errorf("--size %v: %w", size, ErrSize)
			}
			a.logger.Debug("rendering pattern", zap.Int("edges", len(p.Edges)))
			if err := render.WriteSVG(cmd.OutOrStdout(), p, a.renderOptions(size)...); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().Float64Var(&size, "size", render.DefaultSize, "image width/height in pixels")
	return cmd
}

func (a *app) renderOptions(size float64) []render.Option {
	opts := []render.Option{render.WithSize(size)}
	if a.cfg.Render.Indent > 0 {
		opts = append(opts, render.WithIndent(a.cfg.Render.Indent))
	}
	return opts
}

// parseEdges parses "start,end" pairs. Values are only checked for syntax;
// range and duplicate policy belong to the synthesizer.
func parseEdges(raw []string) ([]glyph.EdgeRequest, error) {
	out := make([]glyph.EdgeRequest, 0, len(raw))
	for _, s := range raw {
		parts := strings.Split(s, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("%q: %w", s, ErrEdgeSyntax)
		}
		start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, ErrEdgeSyntax)
		}
		end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, ErrEdgeSyntax)
		}
		out = append(out, glyph.EdgeRequest{Start: start, End: end})
	}
	return out, nil
}

func readInput(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(args[0])
}
