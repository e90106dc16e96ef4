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
	"unicode/utf8"

	"github.com/walteh/restyle/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// processFile reads one file, rewrites it and writes it back when it changed
func (r *Runner) processFile(ctx context.Context, name string) status.Result {
	res := status.Result{
		Name:   name,
		Path:   r.files.AbsPath(name),
		DryRun: r.opts.DryRun,
	}

	fail := func(err error) status.Result {
		res.Status = status.StatusError
		res.Err = err
		return res
	}

	exists, err := r.files.FileExists(ctx, name)
	if err != nil {
		return fail(err)
	}
	if !exists {
		res.Status = status.StatusNotFound
		return res
	}

	content, err := r.files.ReadFile(ctx, name)
	if err != nil {
		return fail(err)
	}
	if !utf8.Valid(content) {
		return fail(errors.Errorf("decoding %s: content is not valid UTF-8", name))
	}

	result := r.opts.Engine.Rewrite(string(content))
	if !result.WasModified {
		res.Status = status.StatusUnchanged
		return res
	}

	res.Changes = result.Changes
	if r.opts.Diff {
		res.Diff = lineDiff(result.Original, result.Modified)
	}

	if !r.opts.DryRun {
		if err := r.files.WriteFileAtomic(ctx, name, []byte(result.Modified)); err != nil {
			return fail(errors.Errorf("writing %s: %w", name, err))
		}
	}

	res.Status = status.StatusUpdated
	return res
}
