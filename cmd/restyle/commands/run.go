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
	"context"
	"fmt"

	"github.com/walteh/restyle/cmd/restyle/opts"
	"github.com/walteh/restyle/pkg/log"
	"github.com/walteh/restyle/pkg/operation"
	"github.com/walteh/restyle/pkg/status"
	"github.com/walteh/restyle/pkg/style"
	"gitlab.com/tozd/go/errors"
)

// AnnotationSkipConfig marks commands that run without loading a config
const AnnotationSkipConfig = "restyle/skip-config"

// runOptions are the per-command knobs on top of the root config
type runOptions struct {
	files  []string
	dryRun bool
	diff   bool
}

// run restyles the configured files and prints the summary
func run(ctx context.Context, o *opts.RootOpts, ro runOptions) (*status.Summary, error) {
	logger := log.FromContext(ctx)

	files := o.Config.Files
	if len(ro.files) > 0 {
		files = ro.files
	}

	engine := style.New(style.WithAttributes(o.Config.Attributes...))

	runner, err := operation.NewRunner(operation.Options{
		Engine:    engine,
		Directory: o.Config.Directory,
		Files:     files,
		DryRun:    ro.dryRun,
		Diff:      ro.diff,
		Reporter:  logger,
	})
	if err != nil {
		return nil, errors.Errorf("creating runner: %w", err)
	}

	verb := "restyling"
	if ro.dryRun {
		verb = "checking"
	}
	target := *o.Config
	target.Files = files
	logger.Header(fmt.Sprintf("%s %s", verb, target.String()))

	summary := runner.Run(ctx)
	logger.Summary(ctx, summary)

	return summary, nil
}
