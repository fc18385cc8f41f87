// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/typograph/cmd/typograph/commands"
	"github.com/walteh/typograph/cmd/typograph/opts"
	"github.com/walteh/typograph/pkg/config"
	"github.com/walteh/typograph/pkg/log"
	"github.com/walteh/typograph/pkg/typograph"
)

// rootFlags holds the persistent flags shared by every command
type rootFlags struct {
	configFile string
	debug      bool
	mode       string
	lang       string
}

// newRootCmd builds the command tree
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	rootOpts := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "typograph",
		Short: "Typographic punctuation and spacing for English and Russian text",
		Long: `typograph replaces straight quotes, double hyphens and ordinary spaces with
their typographic forms. Each line is handled as Russian when it contains a
Cyrillic letter and as English otherwise.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context(), flags.debug)

			loaded, err := newRootOpts(ctx, cmd, flags)
			if err != nil {
				return err
			}
			*rootOpts = *loaded

			level := zerolog.InfoLevel
			if flags.debug {
				level = zerolog.DebugLevel
			}
			cmd.SetContext(log.NewContext(ctx, log.New(cmd.OutOrStdout(), level)))
			return nil
		},
	}

	addRootFlags(cmd, flags)

	cmd.AddCommand(
		commands.NewApplyCmd(rootOpts),
		commands.NewFormatCmd(rootOpts),
		commands.NewDetectCmd(rootOpts),
		commands.NewVersionCmd(FormatVersion, func() any { return GetVersionInfo() }),
	)

	return cmd
}

// newRootOpts creates a new rootOpts with initialized dependencies
func newRootOpts(ctx context.Context, cmd *cobra.Command, flags *rootFlags) (*opts.RootOpts, error) {
	var (
		cfg *config.Config
		err error
	)
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(ctx, flags.configFile)
	} else {
		cfg, err = config.LoadOrDefault(ctx, flags.configFile)
	}
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	if flags.mode != "" {
		cfg.CountMode = flags.mode
	}
	if flags.lang != "" {
		cfg.Language = flags.lang
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating flags: %w", err)
	}

	procOpts, err := cfg.ProcessorOptions()
	if err != nil {
		return nil, errors.Errorf("building processor: %w", err)
	}

	root, err := os.Getwd()
	if err != nil {
		return nil, errors.Errorf("getting working directory: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("config", cfg.String()).Msg("configuration ready")

	return &opts.RootOpts{
		Config:    cfg,
		Processor: typograph.New(procOpts...),
		Root:      root,
	}, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", config.DefaultPath, "config file path (.yaml, .yml, .json or .hcl)")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.mode, "mode", "", "change counting: faithful or corrected (default from config)")
	cmd.PersistentFlags().StringVar(&flags.lang, "lang", "", "pipeline to use: auto, en or ru (default from config)")
}

// setupLogging configures zerolog based on flags and attaches the logger to ctx
func setupLogging(ctx context.Context, debug bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	return logger.WithContext(ctx)
}
