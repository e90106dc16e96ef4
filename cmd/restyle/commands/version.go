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
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// buildVersion returns the module version and vcs revision stamped into the binary
func buildVersion() (version, revision string) {
	version = "dev"
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version, ""
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		version = v
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			revision = s.Value
		}
	}
	return version, revision
}

func printVersion(w io.Writer) {
	version, revision := buildVersion()
	fmt.Fprintf(w, "🚀 restyle version info:\n")
	fmt.Fprintf(w, "Version:   %s\n", version)
	if revision != "" {
		fmt.Fprintf(w, "Revision:  %s\n", revision)
	}
	fmt.Fprintf(w, "Go:        %s (%s/%s)\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// NewVersionCmd creates a new version command. It never reads the config.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{AnnotationSkipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			printVersion(cmd.OutOrStdout())
			return nil
		},
	}
}
