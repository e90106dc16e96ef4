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

package status

import (
	"github.com/rs/zerolog"
	"github.com/walteh/restyle/pkg/style"
)

// 📊 FileStatus represents the outcome of processing one file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusUpdated              // Content changed and was written (or would be, in a dry run)
	StatusUnchanged            // Rules produced identical content
	StatusNotFound             // Configured file does not exist
	StatusError                // Reading, decoding or writing failed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusUpdated:
		return "updated"
	case StatusUnchanged:
		return "unchanged"
	case StatusNotFound:
		return "not found"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// 📄 Result describes what happened to a single configured file
type Result struct {
	Name    string         // Entry as configured, or the glob match relative to the directory
	Path    string         // Path on disk
	Status  FileStatus     // Outcome
	Changes []style.Change // Per-rule counts when the content changed
	DryRun  bool           // Nothing was written
	Diff    string         // Textual diff, only filled when requested
	Err     error          // Failure for StatusError
}

// Label is the human status, "would update" for a dry run
func (r Result) Label() string {
	if r.DryRun && r.Status == StatusUpdated {
		return "would update"
	}
	return r.Status.String()
}

// Replacements sums the per-rule counts
func (r Result) Replacements() int {
	total := 0
	for _, c := range r.Changes {
		total += c.Count
	}
	return total
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler
func (r Result) MarshalZerologObject(e *zerolog.Event) {
	e.Str("file", r.Name).
		Str("path", r.Path).
		Str("status", r.Status.String()).
		Bool("dry_run", r.DryRun).
		Int("replacements", r.Replacements())

	if len(r.Changes) > 0 {
		rules := zerolog.Dict()
		for _, c := range r.Changes {
			rules.Int(c.Rule, c.Count)
		}
		e.Dict("rules", rules)
	}
	if r.Err != nil {
		e.AnErr("error", r.Err)
	}
}

// 📈 Summary accumulates results over a run, in processing order
type Summary struct {
	Results   []Result
	Updated   int
	Unchanged int
	NotFound  int
	Failed    int
	DryRun    bool
}

// Add records a result and bumps the matching counter
func (s *Summary) Add(r Result) {
	s.Results = append(s.Results, r)
	switch r.Status {
	case StatusUpdated:
		s.Updated++
	case StatusUnchanged:
		s.Unchanged++
	case StatusNotFound:
		s.NotFound++
	case StatusError:
		s.Failed++
	}
}

// Total returns the number of recorded results
func (s *Summary) Total() int {
	return len(s.Results)
}
