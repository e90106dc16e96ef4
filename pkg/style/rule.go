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

// 🧩 Rule rewrites the parts of an attribute value matched by Pattern.
//
// When Func is set it computes the replacement for each match, otherwise
// Template is expanded the way regexp.Regexp.ReplaceAllString does.
type Rule struct {
	// Name identifies the rule in reports
	Name string

	// Description is a one-line human summary
	Description string

	// Pattern is matched against a single attribute value, never the whole document
	Pattern *regexp.Regexp

	// Template is the static replacement ($1 etc. are expanded)
	Template string

	// Func is the computed replacement, it wins over Template
	Func func(match string) string
}

// apply runs the rule over one attribute value
func (r Rule) apply(value string) string {
	if r.Pattern == nil {
		return value
	}
	if r.Func != nil {
		return r.Pattern.ReplaceAllStringFunc(value, r.Func)
	}
	return r.Pattern.ReplaceAllString(value, r.Template)
}

// 🔄 Substitute builds a rule that replaces every literal occurrence of from with to.
func Substitute(name, description, from, to string) Rule {
	return Rule{
		Name:        name,
		Description: description,
		Pattern:     regexp.MustCompile(regexp.QuoteMeta(from)),
		Template:    escapeTemplate(to),
	}
}

// escapeTemplate keeps a literal replacement from being read as $-expansion
func escapeTemplate(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}

const (
	RuleMobileAffordance = "mobile-affordance"
	RuleCornerRadius     = "corner-radius"
	RuleTransitionScope  = "transition-scope"
)

// both padding axes, in either order
var paddedValue = regexp.MustCompile(`(?s)^(?:.*\bpx-\d+.*\bpy-\d+.*|.*\bpy-\d+.*\bpx-\d+.*)$`)

// 📦 DefaultRules returns the button restyling rules in the order they must run.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:        RuleMobileAffordance,
			Description: "give padded buttons a 44px touch target, shadow, hover effects and centered flex content",
			Pattern:     paddedValue,
			Func:        augmentMobile,
		},
		Substitute(RuleCornerRadius, "rounded-lg becomes rounded-xl", "rounded-lg", "rounded-xl"),
		Substitute(RuleTransitionScope, "transition-colors becomes transition-all", "transition-colors", "transition-all"),
	}
}
