// Package config manages configuration parsing and validation for restyle.
//
//	            +-------------+
//	            |   Config    |
//	            | (Settings)  |
//	            +------+------+
//	                   |
//	     +-------------+-------------+
//	     |             |             |
//	+----+----+   +----+----+   +----+----+
//	|  YAML   |   |   HCL   |   |  TOML   |
//	| Parser  |   | Parser  |   | Parser  |
//	+---------+   +---------+   +---------+
//
// 🎯 Purpose:
// - Describes which directory and files a run touches
// - Names the styling attributes the engine rewrites
// - Ships the built-in defaults so no file is needed at all
//
// 🔄 Flow:
// 1. Find looks for a .restyle.* file in the working directory
// 2. Load picks a parser by extension and decodes the file
// 3. Validate fills defaults and rejects unusable values
// 4. Without a file, Default is used as is
//
// 📝 Design Philosophy:
// A config file is optional. The defaults reproduce the original one-off
// migration: the admin tab components under src/components/admin/tabs.
//
// 🔍 Example:
//
//	# .restyle.yaml
//	directory: src/components/admin/tabs
//	files:
//	  - UsersTab.tsx
//	  - "**/*Modal.tsx"
//	attributes:
//	  - className
//
//	cfg, err := config.Load(ctx, ".restyle.yaml")
package config
