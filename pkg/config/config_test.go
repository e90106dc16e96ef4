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

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, dir string, cfg *Config)
	}{
		{
			name: "yaml_config",
			file: ".restyle.yaml",
			config: `
directory: src/tabs
files:
  - UsersTab.tsx
  - "**/*Modal.tsx"
attributes:
  - className
  - class
`,
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, filepath.Join(dir, "src", "tabs"), cfg.Directory, "directory should resolve against the config file")
				assert.Equal(t, []string{"UsersTab.tsx", "**/*Modal.tsx"}, cfg.Files, "files should keep their order")
				assert.Equal(t, []string{"className", "class"}, cfg.Attributes, "attributes should match")
				assert.Equal(t, filepath.Join(dir, ".restyle.yaml"), cfg.Location(), "location should be recorded")
			},
		},
		{
			name: "hcl_config",
			file: ".restyle.hcl",
			config: `
directory = default_directory
files     = ["FinesTab.tsx", "BudgetTab.tsx"]
`,
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, filepath.Join(dir, "src", "components", "admin", "tabs"), cfg.Directory, "variable should expand")
				assert.Equal(t, []string{"FinesTab.tsx", "BudgetTab.tsx"}, cfg.Files, "files should match")
				assert.Equal(t, []string{"className"}, cfg.Attributes, "attributes should default")
			},
		},
		{
			name: "toml_config",
			file: ".restyle.toml",
			config: `
directory = "/abs/tabs"
files = ["UsersTab.tsx"]
attributes = ["class"]
`,
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, filepath.Clean("/abs/tabs"), cfg.Directory, "absolute directory should be kept")
				assert.Equal(t, []string{"class"}, cfg.Attributes, "attributes should match")
			},
		},
		{
			name:   "json_config",
			file:   ".restyle.json",
			config: `{"directory": "tabs", "files": ["  UsersTab.tsx  "]}`,
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, []string{"UsersTab.tsx"}, cfg.Files, "entries should be trimmed")
			},
		},
		{
			name:        "yaml_unknown_field",
			file:        ".restyle.yaml",
			config:      "directory: x\nfiles: [a.tsx]\nrecursive: true\n",
			wantErr:     true,
			errContains: "parsing YAML",
		},
		{
			name:        "toml_unknown_field",
			file:        ".restyle.toml",
			config:      "directory = \"x\"\nfiles = [\"a.tsx\"]\nrecursive = true\n",
			wantErr:     true,
			errContains: "parsing TOML",
		},
		{
			name:        "hcl_missing_files",
			file:        ".restyle.hcl",
			config:      `directory = "x"`,
			wantErr:     true,
			errContains: "decoding HCL",
		},
		{
			name:        "missing_directory",
			file:        ".restyle.yaml",
			config:      "files: [a.tsx]\n",
			wantErr:     true,
			errContains: "directory is required",
		},
		{
			name:        "no_files",
			file:        ".restyle.yaml",
			config:      "directory: x\n",
			wantErr:     true,
			errContains: "files must list at least one file",
		},
		{
			name:        "bad_pattern",
			file:        ".restyle.yaml",
			config:      "directory: x\nfiles: [\"[a.tsx\"]\n",
			wantErr:     true,
			errContains: "invalid pattern",
		},
		{
			name:        "bad_attribute",
			file:        ".restyle.yaml",
			config:      "directory: x\nfiles: [a.tsx]\nattributes: [\"class name\"]\n",
			wantErr:     true,
			errContains: "invalid attribute name",
		},
		{
			name:        "unknown_extension",
			file:        "restyle.ini",
			config:      "directory=x",
			wantErr:     true,
			errContains: "no parser found",
		},
	}

	ctx := zerolog.New(os.Stderr).WithContext(context.Background())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create temporary config file
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, tt.file)
			err := os.WriteFile(configPath, []byte(tt.config), 0644)
			require.NoError(t, err, "writing config file should succeed")

			// Load config
			cfg, err := Load(ctx, configPath)
			if tt.wantErr {
				require.Error(t, err, "Load should return error")
				assert.Contains(t, err.Error(), tt.errContains, "error should contain expected message")
				return
			}

			require.NoError(t, err, "Load should succeed")
			if tt.check != nil {
				tt.check(t, tmpDir, cfg)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), ".restyle.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate(), "default config should be valid")
	assert.Equal(t, filepath.FromSlash("src/components/admin/tabs"), cfg.Directory)
	assert.Len(t, cfg.Files, 18)
	assert.Equal(t, "AdminChatTab.tsx", cfg.Files[0])
	assert.Equal(t, "UsersTab.tsx", cfg.Files[17])
	assert.Equal(t, []string{"className"}, cfg.Attributes)
	assert.Empty(t, cfg.Location())

	cfg.Files[0] = "changed"
	assert.Equal(t, "AdminChatTab.tsx", DefaultFiles[0], "default should not share the slice")
}

func TestFind(t *testing.T) {
	dir := t.TempDir()

	path, err := Find(dir)
	require.NoError(t, err)
	assert.Empty(t, path, "no config file present")

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".restyle.toml"), []byte(""), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".restyle.yaml"), []byte(""), 0644))

	path, err = Find(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".restyle.yaml"), path, "yaml comes before toml")
}

func TestGetParser(t *testing.T) {
	assert.IsType(t, &YAMLParser{}, GetParser("x.yml"))
	assert.IsType(t, &HCLParser{}, GetParser("x.hcl"))
	assert.IsType(t, &TOMLParser{}, GetParser("x.toml"))
	assert.IsType(t, &JSONParser{}, GetParser("x.JSON"))
	assert.Nil(t, GetParser("x.ini"))
}

func TestConfigString(t *testing.T) {
	cfg := &Config{Directory: "tabs", Files: []string{"a", "b"}, Attributes: []string{"className", "class"}}
	assert.Equal(t, "tabs [className,class] (2 entries)", cfg.String())
}
