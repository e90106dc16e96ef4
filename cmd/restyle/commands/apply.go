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

package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/restyle/cmd/restyle/opts"
	"gitlab.com/tozd/go/errors"
)

// NewApplyCmd creates a new apply command
func NewApplyCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply [files...]",
		Short: "Restyle the configured files in place",
		Long: `Apply runs the style rules over every configured file.
It will:
1. Skip and report files that do not exist
2. Leave files alone when the rules change nothing
3. Rewrite changed files in place
4. Print how many files were updated

A failing file is reported and the run continues. Arguments replace the
configured file list.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "apply").Logger().WithContext(ctx)

			if _, err := run(ctx, o, runOptions{files: args}); err != nil {
				return errors.Errorf("applying styles: %w", err)
			}

			return nil
		},
	}

	return cmd
}
