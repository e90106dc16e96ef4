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

// NewCheckCmd creates a new check command
func NewCheckCmd(o *opts.RootOpts) *cobra.Command {
	var diff bool

	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Show which files would be restyled without writing them",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "check").Logger().WithContext(ctx)

			if _, err := run(ctx, o, runOptions{files: args, dryRun: true, diff: diff}); err != nil {
				return errors.Errorf("checking styles: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&diff, "diff", false, "print the changed lines of every file")

	return cmd
}
