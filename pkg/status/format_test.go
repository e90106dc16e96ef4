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
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/walteh/restyle/pkg/style"
)

// 🧪 TestDefaultFileFormatter_FormatResult tests the per-file line
func TestDefaultFileFormatter_FormatResult(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name   string
		result Result
		want   string
	}{
		{
			name: "updated",
			result: Result{
				Name:    "UsersTab.tsx",
				Status:  StatusUpdated,
				Changes: []style.Change{{Rule: "corner-radius", Count: 3}},
			},
			want: "    ✓ UsersTab.tsx                        updated        corner-radius×3",
		},
		{
			name:   "would_update",
			result: Result{Name: "UsersTab.tsx", Status: StatusUpdated, DryRun: true},
			want:   "    ✓ UsersTab.tsx                        would update",
		},
		{
			name:   "unchanged",
			result: Result{Name: "FinesTab.tsx", Status: StatusUnchanged},
			want:   "    - FinesTab.tsx                        unchanged",
		},
		{
			name:   "not_found",
			result: Result{Name: "Gone.tsx", Status: StatusNotFound},
			want:   "    ? Gone.tsx                            not found",
		},
		{
			name:   "error",
			result: Result{Name: "Bad.tsx", Status: StatusError, Err: errors.New("permission denied")},
			want:   "    ✗ Bad.tsx                             error          permission denied",
		},
	}

	f := NewDefaultFileFormatter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.FormatResult(tt.result))
		})
	}
}

func TestDefaultFileFormatter_FormatSummary(t *testing.T) {
	f := NewDefaultFileFormatter()

	assert.Equal(t, "0 files updated", f.FormatSummary(&Summary{}))
	assert.Equal(t, "1 file updated (2 unchanged)", f.FormatSummary(&Summary{Updated: 1, Unchanged: 2}))
	assert.Equal(t, "3 files would be updated (1 not found, 1 failed)",
		f.FormatSummary(&Summary{Updated: 3, NotFound: 1, Failed: 1, DryRun: true}))
}

func TestDefaultFileFormatter_FormatError(t *testing.T) {
	f := NewDefaultFileFormatter()
	assert.Empty(t, f.FormatError(nil))
	assert.Equal(t, "❌ Error: boom", f.FormatError(errors.New("boom")))
}
