package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Page names accepted by TUIConfig.StartPage.
const (
	PageCards     = "cards"
	PageDashboard = "dashboard"
)

// Config holds the application configuration.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	TUI     TUIConfig     `yaml:"tui"`
	Logging LoggingConfig `yaml:"logging"`
}

// CatalogConfig holds card catalog settings.
type CatalogConfig struct {
	Path string `yaml:"path"` // empty uses the built-in catalog
}

// TUIConfig holds TUI settings.
type TUIConfig struct {
	StartPage string `yaml:"start_page"`
	Theme     string `yaml:"theme"` // auto, dark, light or notty
}

// LoggingConfig holds debug log settings.
type LoggingConfig struct {
	Debug bool   `yaml:"debug"`
	File  string `yaml:"file"` // empty uses LogFile()
}

// Defaults returns a Config with sensible defaults.
func Defaults() Config {
	return Config{
		TUI: TUIConfig{
			StartPage: PageCards,
			Theme:     "auto",
		},
	}
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch c.TUI.StartPage {
	case PageCards, PageDashboard:
	default:
		return fmt.Errorf("tui.start_page: unknown page %q (want %s or %s)", c.TUI.StartPage, PageCards, PageDashboard)
	}
	switch c.TUI.Theme {
	case "auto", "dark", "light", "notty":
	default:
		return fmt.Errorf("tui.theme: unknown theme %q", c.TUI.Theme)
	}
	return nil
}

// Load reads the config from disk. If the file doesn't exist, returns defaults.
func Load() (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(ConfigFile())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Defaults(), fmt.Errorf("parsing %s: %w", ConfigFile(), err)
	}

	if err := cfg.Validate(); err != nil {
		return Defaults(), err
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(ConfigFile(), data, 0o644)
}

// IsFirstRun returns true if no config file exists yet.
func IsFirstRun() bool {
	_, err := os.Stat(ConfigFile())
	return os.IsNotExist(err)
}
