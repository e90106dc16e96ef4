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
	"unicode"
	"unicode/utf8"
)

// 📱 Tokens added by the mobile-affordance rule
const (
	MinHeightToken   = "min-h-[44px]"
	ShadowToken      = "shadow-md"
	HoverShadowToken = "hover:shadow-lg"
	HoverScaleToken  = "hover:scale-105"
	TouchToken       = "touch-manipulation"
	FlexToken        = "flex"
)

// any of these anywhere in the value means the element already has a shadow
// level, variant prefixed ones such as hover:shadow-lg included
var shadowLevels = []string{"shadow-sm", "shadow-md", "shadow-lg", "shadow-xl", "shadow-2xl"}

// bare shadow only counts as a whole token, it is a prefix of every level
const bareShadow = "shadow"

var centering = []string{"items-center", "justify-center"}

// first bare flex token, not inline-flex or flex-col
var flexToken = regexp.MustCompile(`(?:^|\s)(flex)(?:\s|$)`)

// augmentMobile appends the missing touch affordance tokens to a padded value.
// A value that already has the min-height marker anywhere, md:min-h-[44px]
// included, comes back untouched.
func augmentMobile(value string) string {
	if strings.Contains(value, MinHeightToken) {
		return value
	}
	tokens := newTokenSet(value)

	var added []string
	add := func(tok string) {
		if !tokens.has(tok) {
			added = append(added, tok)
			tokens.add(tok)
		}
	}

	add(MinHeightToken)
	if !hasShadowLevel(value, tokens) {
		add(ShadowToken)
	}
	add(HoverShadowToken)
	add(HoverScaleToken)
	add(TouchToken)

	out := appendTokens(value, added)

	if tokens.has(FlexToken) && !containsPhrase(strings.Fields(out), append([]string{FlexToken}, centering...)) {
		out = expandFlex(out, tokens)
	}

	return out
}

// hasShadowLevel reports whether the value already carries a shadow
func hasShadowLevel(value string, tokens tokenSet) bool {
	if tokens.has(bareShadow) {
		return true
	}
	for _, level := range shadowLevels {
		if strings.Contains(value, level) {
			return true
		}
	}
	return false
}

// expandFlex inserts the missing centering tokens right after the first flex token
func expandFlex(value string, tokens tokenSet) string {
	loc := flexToken.FindStringSubmatchIndex(value)
	if loc == nil {
		return value
	}

	var missing []string
	for _, tok := range centering {
		if !tokens.has(tok) {
			missing = append(missing, tok)
		}
	}
	if len(missing) == 0 {
		return value
	}

	end := loc[3]
	return value[:end] + " " + strings.Join(missing, " ") + value[end:]
}

// appendTokens adds tokens after the existing text without disturbing it
func appendTokens(value string, tokens []string) string {
	if len(tokens) == 0 {
		return value
	}
	joined := strings.Join(tokens, " ")
	if value == "" {
		return joined
	}
	if last, _ := utf8.DecodeLastRuneInString(value); unicode.IsSpace(last) {
		return value + joined
	}
	return value + " " + joined
}

// containsPhrase reports whether phrase appears as consecutive tokens
func containsPhrase(fields, phrase []string) bool {
	if len(phrase) == 0 {
		return true
	}
	for i := 0; i+len(phrase) <= len(fields); i++ {
		match := true
		for j, tok := range phrase {
			if fields[i+j] != tok {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// 🔤 tokenSet holds the whitespace-separated tokens of a value
type tokenSet map[string]struct{}

func newTokenSet(value string) tokenSet {
	fields := strings.Fields(value)
	set := make(tokenSet, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

func (s tokenSet) has(tok string) bool {
	_, ok := s[tok]
	return ok
}

func (s tokenSet) add(tok string) {
	s[tok] = struct{}{}
}
