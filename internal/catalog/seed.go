package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// file is the on-disk layout of a catalog file.
type file struct {
	Cards []Card `yaml:"cards"`
}

// Default returns the built-in six-card catalog.
func Default() Catalog {
	cat, err := Parse(seedYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded seed is invalid: %v", err))
	}
	return cat
}

// SeedData returns the raw embedded seed file, for writing a starter
// catalog.yaml to disk.
func SeedData() []byte {
	out := make([]byte, len(seedYAML))
	copy(out, seedYAML)
	return out
}

// Parse decodes a catalog from YAML. Every card must have a title.
func Parse(data []byte) (Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Catalog{}, fmt.Errorf("decoding catalog: %w", err)
	}
	for i, c := range f.Cards {
		if c.Title == "" {
			return Catalog{}, fmt.Errorf("card %d: title is required", i+1)
		}
	}
	return New(f.Cards), nil
}

// Load reads a catalog from a YAML file. An empty path yields Default().
func Load(path string) (Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	cat, err := Parse(data)
	if err != nil {
		return Catalog{}, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	return cat, nil
}
