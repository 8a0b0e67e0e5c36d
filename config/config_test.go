// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"os"
	"sync"
	"testing"
)

func resetStore() {
	once = sync.Once{}
	current = nil
	loadErr = nil
}

func TestCurrentAppliesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	cfg := Current()
	if cfg.GetInt("", "columnLimit", 0) <= 0 {
		t.Fatalf("expected a positive default columnLimit")
	}
	if !cfg.GetBool("cache", "enabled", false) {
		t.Fatalf("expected cache.enabled to default true")
	}
}

func TestCurrentWritesDefaultsToDisk(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	Current()
	path, err := settingsPath()
	if err != nil {
		t.Fatalf("settingsPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read settings: %v", err)
	}
	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if disk.Section("cache") == nil {
		t.Fatalf("expected cache section to be persisted")
	}
}

func TestSetAndSaveRoundTrips(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	Set(Config{"columnLimit": 42})
	if err := Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	resetStore()

	if got := Current().GetInt("", "columnLimit", 0); got != 42 {
		t.Fatalf("GetInt(columnLimit) = %d, want 42", got)
	}
}

func TestRegisterDefaultsDoesNotOverwrite(t *testing.T) {
	cfg := Config{"columnLimit": 7}
	cfg.RegisterDefaults("", Section{"columnLimit": 100, "explain": false})
	if got := cfg.GetInt("", "columnLimit", 0); got != 7 {
		t.Fatalf("RegisterDefaults overwrote an existing key: got %d", got)
	}
	if got := cfg.GetBool("", "explain", true); got != false {
		t.Fatalf("expected explain default to be applied")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	cfg := Config{"cache": Section{"enabled": true}}
	clone := Clone(cfg)
	clone.Section("cache")["enabled"] = false
	if got := cfg.GetBool("cache", "enabled", false); !got {
		t.Fatalf("mutating a clone's section affected the original")
	}
}
