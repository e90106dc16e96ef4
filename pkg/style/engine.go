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

package style

import (
	"regexp"
	"strings"
)

// DefaultAttribute is the JSX styling attribute
const DefaultAttribute = "className"

// 📊 Change counts the attribute values a rule altered
type Change struct {
	Rule  string
	Count int
}

// 📄 Result contains the outcome of rewriting one document
type Result struct {
	// Original is the document before any rule ran
	Original string

	// Modified is the document after the last rule ran
	Modified string

	// WasModified indicates Modified differs from Original
	WasModified bool

	// Changes lists the rules that altered at least one value, in rule order
	Changes []Change
}

// Count returns the total number of altered values across all rules
func (r *Result) Count() int {
	total := 0
	for _, c := range r.Changes {
		total += c.Count
	}
	return total
}

// 🎨 Engine applies an ordered rule list to the styling attributes of a document
type Engine struct {
	attributes []string
	attr       *regexp.Regexp
	rules      []Rule
}

// Option configures an Engine
type Option func(*Engine)

// WithAttributes sets the attribute names whose values are rewritten
func WithAttributes(names ...string) Option {
	return func(e *Engine) {
		if len(names) > 0 {
			e.attributes = append([]string(nil), names...)
		}
	}
}

// WithRules replaces the default rule list
func WithRules(rules ...Rule) Option {
	return func(e *Engine) {
		e.rules = append([]Rule(nil), rules...)
	}
}

// 🏭 New creates an engine, by default the className attribute with DefaultRules
func New(opts ...Option) *Engine {
	e := &Engine{
		attributes: []string{DefaultAttribute},
		rules:      DefaultRules(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.attr = attributePattern(e.attributes)
	return e
}

func attributePattern(names []string) *regexp.Regexp {
	quoted := make([]string, 0, len(names))
	for _, name := range names {
		quoted = append(quoted, regexp.QuoteMeta(name))
	}
	return regexp.MustCompile(`\b(` + strings.Join(quoted, "|") + `)="([^"]*)"`)
}

// Rules returns a copy of the ordered rule list
func (e *Engine) Rules() []Rule {
	return append([]Rule(nil), e.rules...)
}

// Attributes returns the attribute names the engine rewrites
func (e *Engine) Attributes() []string {
	return append([]string(nil), e.attributes...)
}

// ✨ Apply returns text with every rule applied. It never fails; values no
// rule matches are left as they were.
func (e *Engine) Apply(text string) string {
	return e.Rewrite(text).Modified
}

// 🔄 Rewrite applies every rule in order and records how many values each one touched
func (e *Engine) Rewrite(text string) *Result {
	result := &Result{Original: text}

	current := text
	for _, rule := range e.rules {
		next, count := e.rewriteValues(current, rule.apply)
		if count > 0 {
			result.Changes = append(result.Changes, Change{Rule: rule.Name, Count: count})
		}
		current = next
	}

	result.Modified = current
	result.WasModified = current != text
	return result
}

// rewriteValues hands each quoted attribute value to fn and splices the result back
func (e *Engine) rewriteValues(text string, fn func(string) string) (string, int) {
	matches := e.attr.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text, 0
	}

	var b strings.Builder
	b.Grow(len(text))

	last, changed := 0, 0
	for _, m := range matches {
		start, end := m[4], m[5]
		value := text[start:end]
		rewritten := fn(value)
		if rewritten != value {
			changed++
		}
		b.WriteString(text[last:start])
		b.WriteString(rewritten)
		last = end
	}
	b.WriteString(text[last:])

	return b.String(), changed
}
