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

package operation

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/restyle/pkg/status"
	"github.com/walteh/restyle/pkg/style"
	"gitlab.com/tozd/go/errors"
)

// 📢 Reporter receives every file result as soon as it is known
type Reporter interface {
	Report(ctx context.Context, r status.Result)
}

// 🔧 Options contains configuration for the runner
type Options struct {
	// Engine rewrites file contents
	Engine *style.Engine
	// Directory the entries are resolved against
	Directory string
	// Files are names or doublestar patterns, processed in order
	Files []string
	// DryRun reports what would change without writing
	DryRun bool
	// Diff attaches a line diff to every changed result
	Diff bool
	// Reporter is told about each result
	Reporter Reporter
	// FileManager overrides the default status.Manager rooted at Directory
	FileManager status.FileManager
}

// 🏃 Runner processes files one after another
type Runner struct {
	opts  Options
	files status.FileManager
}

// 🏗️ NewRunner creates a new runner
func NewRunner(opts Options) (*Runner, error) {
	if opts.Engine == nil {
		return nil, errors.Errorf("engine is required")
	}
	if opts.Reporter == nil {
		return nil, errors.Errorf("reporter is required")
	}
	if opts.Directory == "" && opts.FileManager == nil {
		return nil, errors.Errorf("directory is required")
	}

	files := opts.FileManager
	if files == nil {
		files = status.NewManager(opts.Directory)
	}

	return &Runner{
		opts:  opts,
		files: files,
	}, nil
}

// 🏃 Run processes every configured entry in order. Per-file failures end up
// in the summary, they never stop the run.
func (r *Runner) Run(ctx context.Context) *status.Summary {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Int("entries", len(r.opts.Files)).Bool("dry_run", r.opts.DryRun).Msg("starting run")

	summary := &status.Summary{DryRun: r.opts.DryRun}
	seen := make(map[string]bool)

	for _, entry := range r.opts.Files {
		for _, res := range r.processEntry(ctx, entry, seen) {
			summary.Add(res)
			r.opts.Reporter.Report(ctx, res)
		}
	}

	logger.Debug().Int("updated", summary.Updated).Int("total", summary.Total()).Msg("run finished")
	return summary
}

// processEntry expands a glob entry or handles a plain file name. A file that
// exists under the literal name wins over glob expansion, so [id].tsx is a file.
func (r *Runner) processEntry(ctx context.Context, entry string, seen map[string]bool) []status.Result {
	if !isPattern(entry) || r.literalExists(ctx, entry) {
		name := filepath.ToSlash(filepath.Clean(entry))
		if seen[name] {
			zerolog.Ctx(ctx).Debug().Str("file", entry).Msg("skipping duplicate entry")
			return nil
		}
		seen[name] = true
		return []status.Result{r.processFile(ctx, entry)}
	}

	matches, err := r.files.Glob(ctx, filepath.ToSlash(entry))
	if err != nil {
		return []status.Result{{Name: entry, Status: status.StatusError, DryRun: r.opts.DryRun, Err: err}}
	}
	if len(matches) == 0 {
		return []status.Result{{Name: entry, Path: r.files.AbsPath(entry), Status: status.StatusNotFound, DryRun: r.opts.DryRun}}
	}

	results := make([]status.Result, 0, len(matches))
	for _, match := range matches {
		if seen[match] {
			continue
		}
		seen[match] = true
		results = append(results, r.processFile(ctx, match))
	}
	return results
}

func (r *Runner) literalExists(ctx context.Context, entry string) bool {
	exists, err := r.files.FileExists(ctx, entry)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("file", entry).Msg("checking literal entry")
		return false
	}
	return exists
}

func isPattern(entry string) bool {
	return strings.ContainsAny(entry, "*?[{")
}
