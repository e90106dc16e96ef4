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

/*
Package style rewrites the utility classes inside markup styling attributes.

	+-------------+      +-------------+      +-------------+
	|  attribute  | ---> |   Rule 1    | ---> |   Rule N    |
	|   values    |      | (augment)   |      | (substitute)|
	+-------------+      +-------------+      +-------------+

🎯 Purpose:
- Find every `className="..."` value in a document
- Run an ordered list of rules over each value
- Leave everything outside the quotes untouched

🔄 Flow:
Each rule is one pass over the whole document, so a rule always sees the
output of the rules before it. Only the quoted value is handed to a rule.

📝 Rules:
A rule pairs a pattern with either a static template or a callback. The
default set is:

 1. mobile-affordance: buttons with both px-N and py-N get a 44px touch
    target, shadow, hover effects and touch-manipulation
 2. corner-radius: rounded-lg becomes rounded-xl
 3. transition-scope: transition-colors becomes transition-all

"Add unless present" checks are membership tests on the value's tokens,
never regexp lookaheads.

🔍 Example:

	engine := style.New()
	out := engine.Apply(`<button className="px-4 py-2 rounded-lg">`)
*/
package style
