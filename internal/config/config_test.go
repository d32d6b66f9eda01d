package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Catalog.Path != "" {
		t.Errorf("catalog.path = %q, want empty (built-in catalog)", cfg.Catalog.Path)
	}
	if cfg.TUI.StartPage != PageCards {
		t.Errorf("start_page = %q, want %s", cfg.TUI.StartPage, PageCards)
	}
	if cfg.TUI.Theme != "auto" {
		t.Errorf("theme = %q, want auto", cfg.TUI.Theme)
	}
	if cfg.Logging.Debug {
		t.Error("debug logging should be disabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Defaults().Validate() error: %v", err)
	}
}

func TestLoadMissing(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("CARDKIT_CONFIG_DIR", tmp)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// Should return defaults when config file doesn't exist
	if cfg.TUI.StartPage != PageCards {
		t.Errorf("tui.start_page = %q, want cards", cfg.TUI.StartPage)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("CARDKIT_CONFIG_DIR", tmp)

	cfg := Defaults()
	cfg.Catalog.Path = "/data/cards.yaml"
	cfg.TUI.StartPage = PageDashboard
	cfg.Logging.Debug = true

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// Verify file exists
	if _, err := os.Stat(filepath.Join(tmp, "config.yaml")); err != nil {
		t.Fatalf("config.yaml not created: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if loaded != cfg {
		t.Errorf("loaded = %+v, want %+v", loaded, cfg)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("CARDKIT_CONFIG_DIR", tmp)
	os.WriteFile(filepath.Join(tmp, "config.yaml"), []byte("logging:\n  debug: true\n"), 0o644)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !cfg.Logging.Debug {
		t.Error("logging.debug should be true")
	}
	if cfg.TUI.StartPage != PageCards || cfg.TUI.Theme != "auto" {
		t.Errorf("unset fields should keep defaults, got %+v", cfg.TUI)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "tui: [", "parsing"},
		{"bad page", "tui:\n  start_page: settings\n", "start_page"},
		{"bad theme", "tui:\n  theme: neon\n", "theme"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmp := t.TempDir()
			t.Setenv("CARDKIT_CONFIG_DIR", tmp)
			os.WriteFile(filepath.Join(tmp, "config.yaml"), []byte(tt.content), 0o644)

			cfg, err := Load()
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want to contain %q", err, tt.wantErr)
			}
			if cfg != Defaults() {
				t.Errorf("failed Load() should return defaults, got %+v", cfg)
			}
		})
	}
}

func TestIsFirstRun(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("CARDKIT_CONFIG_DIR", tmp)

	if !IsFirstRun() {
		t.Error("IsFirstRun() = false, want true (no config.yaml)")
	}

	if err := Save(Defaults()); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	if IsFirstRun() {
		t.Error("IsFirstRun() = true, want false (config.yaml exists)")
	}
}
