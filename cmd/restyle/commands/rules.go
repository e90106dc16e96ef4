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
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/walteh/restyle/cmd/restyle/opts"
	"github.com/walteh/restyle/pkg/style"
)

// NewRulesCmd creates a command listing the rules in the order they run
func NewRulesCmd(o *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the style rules in the order they run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := style.New(style.WithAttributes(o.Config.Attributes...))
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "attributes: %s\n", strings.Join(engine.Attributes(), ", "))
			for i, rule := range engine.Rules() {
				fmt.Fprintf(out, "%d. %-18s %s\n", i+1, rule.Name, rule.Description)
			}
			return nil
		},
	}
}
