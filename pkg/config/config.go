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
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/restyle/pkg/style"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// FileNames are the config files Find looks for, in order
var FileNames = []string{
	".restyle.hcl",
	".restyle.yaml",
	".restyle.yml",
	".restyle.toml",
	".restyle.json",
}

// DefaultDirectory is where the admin tab components live
const DefaultDirectory = "src/components/admin/tabs"

// DefaultFiles are the admin tabs the button migration was written for
var DefaultFiles = []string{
	"AdminChatTab.tsx",
	"AdminCollectionDistribution.tsx",
	"AdminGameReservationsTab.tsx",
	"AdminMagazinesTab.tsx",
	"BudgetTab.tsx",
	"CollectionManagementTab.tsx",
	"EventManagementTab.tsx",
	"FinesTab.tsx",
	"GameManagementTab.tsx",
	"LibraryCardsTab.tsx",
	"MessagesTab.tsx",
	"QuoteManagementTab.tsx",
	"ReportsTab.tsx",
	"ReviewManagementTab.tsx",
	"RewardClaimsTab.tsx",
	"RewardManagementTab.tsx",
	"ShopManagementTab.tsx",
	"UsersTab.tsx",
}

var attributeName = regexp.MustCompile(`^[A-Za-z_:][-A-Za-z0-9_:.]*$`)

// 📚 Config represents the complete configuration
type Config struct {
	// Directory the file entries are resolved against
	Directory string `json:"directory" yaml:"directory" toml:"directory"`

	// Files are file names or doublestar patterns, processed in order
	Files []string `json:"files" yaml:"files" toml:"files"`

	// Attributes are the styling attributes to rewrite, className by default
	Attributes []string `json:"attributes,omitempty" yaml:"attributes,omitempty" toml:"attributes,omitempty"`

	location string
}

// 🏭 Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Directory:  filepath.FromSlash(DefaultDirectory),
		Files:      append([]string(nil), DefaultFiles...),
		Attributes: []string{style.DefaultAttribute},
	}
}

// Location is the file the config was loaded from, empty for Default
func (cfg *Config) Location() string {
	return cfg.location
}

// 🔍 Find returns the first config file present in dir, or "" when there is none
func Find(dir string) (string, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
		if err != nil && !os.IsNotExist(err) {
			return "", errors.Errorf("checking %s: %w", path, err)
		}
	}
	return "", nil
}

// 🎯 Load loads the configuration from a file. A relative directory is
// resolved against the config file's own directory.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	cfg.location = path
	if !filepath.IsAbs(cfg.Directory) {
		cfg.Directory = filepath.Join(filepath.Dir(path), cfg.Directory)
	}

	logger.Debug().Str("directory", cfg.Directory).Int("files", len(cfg.Files)).Msg("loaded configuration")
	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid and fills defaults
func (cfg *Config) Validate() error {
	// Check required fields
	if strings.TrimSpace(cfg.Directory) == "" {
		return errors.Errorf("directory is required")
	}
	if len(cfg.Files) == 0 {
		return errors.Errorf("files must list at least one file")
	}

	for i, f := range cfg.Files {
		f = strings.TrimSpace(f)
		if f == "" {
			return errors.Errorf("files[%d]: empty entry", i)
		}
		if !doublestar.ValidatePattern(filepath.ToSlash(f)) {
			return errors.Errorf("files[%d]: invalid pattern %q", i, f)
		}
		cfg.Files[i] = f
	}

	// Set defaults
	if len(cfg.Attributes) == 0 {
		cfg.Attributes = []string{style.DefaultAttribute}
	}
	for i, a := range cfg.Attributes {
		if !attributeName.MatchString(a) {
			return errors.Errorf("attributes[%d]: invalid attribute name %q", i, a)
		}
	}

	// Clean up paths
	cfg.Directory = filepath.Clean(cfg.Directory)

	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s [%s] (%d entries)", cfg.Directory, strings.Join(cfg.Attributes, ","), len(cfg.Files))
}
