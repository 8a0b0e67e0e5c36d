// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default settings values.

package config

// applyDefaults fills in cfg's top-level section and the "cache" section
// with defaults, leaving any values already present untouched.
func applyDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("", Section{
		"columnLimit": detectColumnLimit(),
		"explain":     false,
	})
	cfg.RegisterDefaults("cache", Section{
		"enabled": true,
	})
}
