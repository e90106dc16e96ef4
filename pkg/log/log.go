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

package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/restyle/pkg/status"
)

const diffIndent = 8

// 🎯 Logger prints per-file results for humans and mirrors them to zerolog
type Logger struct {
	zlog      zerolog.Logger
	console   io.Writer
	formatter status.FileFormatter
	mu        sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:      zlog,
		console:   console,
		formatter: status.NewDefaultFileFormatter(),
		mu:        sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 Report prints one file result and logs it
func (l *Logger) Report(ctx context.Context, r status.Result) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatter.FormatResult(r))
	if r.Diff != "" {
		l.printDiff(r.Diff)
	}

	var event *zerolog.Event
	switch r.Status {
	case status.StatusError:
		event = l.zlog.Error()
	case status.StatusNotFound:
		event = l.zlog.Warn()
	default:
		event = l.zlog.Debug()
	}
	event.EmbedObject(r).Msg("file processed")
}

// printDiff colors +/- lines
func (l *Logger) printDiff(diff string) {
	indent := strings.Repeat(" ", diffIndent)
	for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+"):
			line = color.GreenString(line)
		case strings.HasPrefix(line, "-"):
			line = color.RedString(line)
		default:
			line = color.HiBlackString(line)
		}
		fmt.Fprintln(l.console, indent+line)
	}
}

// 📊 Summary prints the closing line of a run
func (l *Logger) Summary(ctx context.Context, s *status.Summary) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := l.formatter.FormatSummary(s)

	printer := pterm.Success
	if s.Failed > 0 || s.NotFound > 0 {
		printer = pterm.Warning
	}
	fmt.Fprintln(l.console)
	printer.WithWriter(l.console).Println(msg)

	l.zlog.Info().
		Int("updated", s.Updated).
		Int("unchanged", s.Unchanged).
		Int("not_found", s.NotFound).
		Int("failed", s.Failed).
		Bool("dry_run", s.DryRun).
		Msg("run complete")
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("restyle")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}
