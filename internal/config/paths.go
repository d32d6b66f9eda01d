package config

import (
	"os"
	"path/filepath"
)

// Dir returns the configuration directory path (~/.config/cardkit).
// It can be overridden with the CARDKIT_CONFIG_DIR environment variable.
func Dir() string {
	if d := os.Getenv("CARDKIT_CONFIG_DIR"); d != "" {
		return d
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "cardkit")
	}
	return filepath.Join(home, ".config", "cardkit")
}

// ConfigFile returns the path to the config.yaml file.
func ConfigFile() string {
	return filepath.Join(Dir(), "config.yaml")
}

// CatalogFile returns the path of the starter catalog written by --init.
func CatalogFile() string {
	return filepath.Join(Dir(), "catalog.yaml")
}

// LogFile returns the default debug log path.
func LogFile() string {
	return filepath.Join(Dir(), "cardkit.log")
}
