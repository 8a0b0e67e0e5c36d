// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Path helpers for verifmt's settings file.

package config

import (
	"os"
	"path/filepath"
)

func configRoot() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "verifmt"), nil
}

func settingsPath() (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, settingsFileName), nil
}
