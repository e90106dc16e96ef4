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
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/restyle/cmd/restyle/commands"
	"github.com/walteh/restyle/cmd/restyle/opts"
	"github.com/walteh/restyle/pkg/config"
	"github.com/walteh/restyle/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// newRootCmd builds the command tree
func newRootCmd() *cobra.Command {
	o := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "restyle",
		Short: "Restyle button classes in JSX components",
		Long: `restyle rewrites the className attributes of a fixed list of component
files: padded buttons get a 44px touch target, shadows and hover effects,
rounded-lg becomes rounded-xl and transition-colors becomes transition-all.

Files are only written when their content changes.`,
		SilenceUsage: true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context(), cmd.ErrOrStderr(), o)

			logger := log.New(cmd.OutOrStdout(), *zerolog.Ctx(ctx))
			ctx = log.NewContext(ctx, logger)
			cmd.SetContext(ctx)

			if cmd.Annotations[commands.AnnotationSkipConfig] == "true" {
				return nil
			}
			return loadRootOpts(ctx, o)
		},
	}

	addRootFlags(cmd, o)

	cmd.AddCommand(
		commands.NewApplyCmd(o),
		commands.NewCheckCmd(o),
		commands.NewRulesCmd(o),
		commands.NewVersionCmd(),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", "", "config file path (default: .restyle.{hcl,yaml,yml,toml,json} if present)")
	cmd.PersistentFlags().StringVarP(&o.Directory, "dir", "C", "", "override the configured directory")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", "disabled", "structured log level written to stderr")
}

// setupLogging puts a zerolog logger into the context
func setupLogging(ctx context.Context, w io.Writer, o *opts.RootOpts) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	level, err := zerolog.ParseLevel(o.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	if o.Debug {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
	if err != nil {
		logger.Warn().Str("level", o.LogLevel).Msg("unknown log level, using warn")
	}
	return logger.WithContext(ctx)
}

// loadRootOpts resolves the config file, falling back to the built-in defaults
func loadRootOpts(ctx context.Context, o *opts.RootOpts) error {
	logger := log.FromContext(ctx)

	path := o.ConfigFile
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return errors.Errorf("getting working directory: %w", err)
		}
		found, err := config.Find(wd)
		if err != nil {
			return errors.Errorf("looking for config file: %w", err)
		}
		path = found
	}

	var cfg *config.Config
	if path == "" {
		logger.Info("no config file found, using built-in defaults")
		cfg = config.Default()
		if err := cfg.Validate(); err != nil {
			return errors.Errorf("validating default config: %w", err)
		}
	} else {
		loaded, err := config.Load(ctx, path)
		if err != nil {
			return errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	if o.Directory != "" {
		logger.Infof("directory overridden to %s", o.Directory)
		cfg.Directory = o.Directory
	}

	o.Config = cfg
	return nil
}
