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
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/restyle/pkg/style"
)

func TestFileStatus_String(t *testing.T) {
	tests := []struct {
		status FileStatus
		want   string
	}{
		{StatusUpdated, "updated"},
		{StatusUnchanged, "unchanged"},
		{StatusNotFound, "not found"},
		{StatusError, "error"},
		{StatusUnknown, "unknown"},
		{FileStatus(42), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestResult_Label(t *testing.T) {
	assert.Equal(t, "updated", Result{Status: StatusUpdated}.Label())
	assert.Equal(t, "would update", Result{Status: StatusUpdated, DryRun: true}.Label())
	assert.Equal(t, "unchanged", Result{Status: StatusUnchanged, DryRun: true}.Label())
}

func TestSummary_Add(t *testing.T) {
	var s Summary
	s.Add(Result{Name: "a", Status: StatusUpdated})
	s.Add(Result{Name: "b", Status: StatusUnchanged})
	s.Add(Result{Name: "c", Status: StatusNotFound})
	s.Add(Result{Name: "d", Status: StatusError, Err: errors.New("boom")})
	s.Add(Result{Name: "e", Status: StatusUpdated})

	assert.Equal(t, 2, s.Updated)
	assert.Equal(t, 1, s.Unchanged)
	assert.Equal(t, 1, s.NotFound)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, 5, s.Total())
	assert.Equal(t, "a", s.Results[0].Name, "results keep processing order")
	assert.Equal(t, "e", s.Results[4].Name, "results keep processing order")
}

func TestResult_MarshalZerologObject(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logger.Info().EmbedObject(Result{
		Name:   "UsersTab.tsx",
		Path:   "/tmp/UsersTab.tsx",
		Status: StatusUpdated,
		Changes: []style.Change{
			{Rule: style.RuleMobileAffordance, Count: 2},
			{Rule: style.RuleCornerRadius, Count: 1},
		},
	}).Msg("file")

	out := buf.String()
	assert.Contains(t, out, `"file":"UsersTab.tsx"`)
	assert.Contains(t, out, `"status":"updated"`)
	assert.Contains(t, out, `"replacements":3`)
	assert.Contains(t, out, `"rules":{"mobile-affordance":2,"corner-radius":1}`)
}

func TestManager_ReadWrite(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	mgr := NewManager(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.tsx"), []byte("old"), 0600))

	exists, err := mgr.FileExists(ctx, "a.tsx")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, mgr.WriteFileAtomic(ctx, "a.tsx", []byte("new")))

	content, err := mgr.ReadFile(ctx, "a.tsx")
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))

	_, err = os.Stat(filepath.Join(dir, "a.tsx.tmp"))
	assert.True(t, os.IsNotExist(err), "temp file should be gone")

	if runtime.GOOS != "windows" {
		info, err := os.Stat(filepath.Join(dir, "a.tsx"))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "mode should be preserved")
	}
}

func TestManager_Missing(t *testing.T) {
	ctx := context.Background()
	mgr := NewManager(t.TempDir())

	exists, err := mgr.FileExists(ctx, "nope.tsx")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = mgr.ReadFile(ctx, "nope.tsx")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestManager_Glob(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	mgr := NewManager(dir)

	for _, name := range []string{"b.tsx", "a.tsx", "c.ts", "nested/d.tsx"} {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "dir.tsx"), 0755))

	matches, err := mgr.Glob(ctx, "*.tsx")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.tsx", "b.tsx"}, matches, "directories are skipped")

	matches, err = mgr.Glob(ctx, "**/*.tsx")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.tsx", "b.tsx", "nested/d.tsx"}, matches)

	_, err = mgr.Glob(ctx, "[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid glob pattern")
}

func TestManager_AbsPath(t *testing.T) {
	mgr := NewManager("/base/dir/")
	assert.Equal(t, filepath.Join("/base/dir", "x", "y.tsx"), mgr.AbsPath("x/y.tsx"))
	assert.Equal(t, "/abs/file.tsx", mgr.AbsPath("/abs/file.tsx"))
}
