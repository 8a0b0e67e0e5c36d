// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/term.go
// Summary: Terminal-width detection for the default column limit.

package config

import (
	"os"

	"golang.org/x/term"
)

// fallbackColumnLimit is used when stdout isn't a terminal (piped output,
// CI) or the width can't be queried.
const fallbackColumnLimit = 100

// detectColumnLimit returns the current terminal width of stdout, or
// fallbackColumnLimit if stdout isn't a terminal.
func detectColumnLimit() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallbackColumnLimit
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return fallbackColumnLimit
	}
	return width
}
