// SPDX-License-Identifier: MIT
// Package: pentasign/internal/cli
//
// root.go — root command, config loading and logger installation.

// Package cli wires the pentasign command tree.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/pentasign/internal/config"
	"github.com/katalvlaran/pentasign/internal/observability"
)

// Version is overridden at build time via -ldflags.
var Version = "dev"

// app carries state resolved in PersistentPreRunE to the subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
	// tee, when set, receives every record alongside the configured sinks.
	tee zapcore.Core
}

// NewRootCommand builds a fresh command tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{v: config.New(), logger: zap.NewNop()})
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "pentasign",
		Short:         "Deterministic pentagonal glyphs and Ed25519 signing.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.v, a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = observability.InitializeLogger(cfg.Logger, nil)
			if a.tee != nil {
				a.logger = a.logger.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
					return zapcore.NewTee(c, a.tee)
				}))
			}
			a.logger.Debug("configuration loaded", zap.String("command", cmd.Name()))
			return nil
		},
	}
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./pentasign.yaml)")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	_ = a.v.BindPFlag("logger.level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(
		newPatternCommand(a),
		newRenderCommand(a),
		newKeygenCommand(a),
		newPubkeyCommand(a),
		newSignCommand(a),
		newVerifyCommand(a),
		newVersionCommand(),
	)
	return root
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	root := NewRootCommand()
	err := root.Execute()
	observability.Sync()
	if err != nil {
		if errors.Is(err, ErrSignatureMismatch) {
			fmt.Fprintln(os.Stderr, "invalid signature")
			os.Exit(2)
		}
		observability.GetLogger().Error("command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), Version)
			return err
		},
	}
}
