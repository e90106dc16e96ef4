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
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // Base width for filename
	statusWidth = 14 // Width for status text
)

// 🖌️ FileFormatter turns results into console text
type FileFormatter interface {
	// FormatResult formats the line for one file
	FormatResult(r Result) string

	// FormatSummary formats the closing line of a run
	FormatSummary(s *Summary) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

var _ FileFormatter = (*DefaultFileFormatter)(nil)

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// 🎯 FormatResult formats a file result as an aligned, colored line
func (f *DefaultFileFormatter) FormatResult(r Result) string {
	var prefix string
	switch r.Status {
	case StatusUpdated:
		prefix = color.GreenString("✓")
	case StatusUnchanged:
		prefix = color.HiBlackString("-")
	case StatusNotFound:
		prefix = color.YellowString("?")
	case StatusError:
		prefix = color.RedString("✗")
	default:
		prefix = color.HiBlackString("•")
	}

	namePart := fmt.Sprintf("%-*s", nameWidth, r.Name)
	statusPart := fmt.Sprintf("%-*s", statusWidth, r.Label())

	line := fmt.Sprintf("%s%s %s %s",
		strings.Repeat(" ", fileIndent),
		prefix,
		namePart,
		statusPart,
	)

	switch {
	case r.Status == StatusError && r.Err != nil:
		line += " " + color.RedString(r.Err.Error())
	case len(r.Changes) > 0:
		line += " " + color.HiBlackString(formatChanges(r))
	}

	return strings.TrimRight(line, " ")
}

func formatChanges(r Result) string {
	parts := make([]string, 0, len(r.Changes))
	for _, c := range r.Changes {
		parts = append(parts, fmt.Sprintf("%s×%d", c.Rule, c.Count))
	}
	return strings.Join(parts, " ")
}

// FormatSummary formats the updated-file count
func (f *DefaultFileFormatter) FormatSummary(s *Summary) string {
	verb := "updated"
	if s.DryRun {
		verb = "would be updated"
	}

	noun := "files"
	if s.Updated == 1 {
		noun = "file"
	}

	msg := fmt.Sprintf("%d %s %s", s.Updated, noun, verb)

	var extra []string
	if s.Unchanged > 0 {
		extra = append(extra, fmt.Sprintf("%d unchanged", s.Unchanged))
	}
	if s.NotFound > 0 {
		extra = append(extra, fmt.Sprintf("%d not found", s.NotFound))
	}
	if s.Failed > 0 {
		extra = append(extra, fmt.Sprintf("%d failed", s.Failed))
	}
	if len(extra) > 0 {
		msg += " (" + strings.Join(extra, ", ") + ")"
	}

	return msg
}

// FormatError formats an error message with emoji
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}
