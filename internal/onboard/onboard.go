// Package onboard writes the starter configuration on first run.
package onboard

import (
	"fmt"
	"io"
	"os"

	"github.com/stefanclaw/cardkit/internal/catalog"
	"github.com/stefanclaw/cardkit/internal/config"
)

// Result holds the outcome of the onboarding flow.
type Result struct {
	Config       config.Config
	CatalogPath  string
	WroteCatalog bool
}

// Runner encapsulates onboarding dependencies for testability.
type Runner struct {
	Stdout io.Writer
	// Force overwrites an existing catalog.yaml with the built-in seed.
	Force bool
}

// NewRunner creates a Runner writing to stdout.
func NewRunner() *Runner {
	return &Runner{Stdout: os.Stdout}
}

// Run creates the config directory, a config.yaml pointing at a starter
// catalog.yaml, and the catalog file itself.
func (r *Runner) Run() (*Result, error) {
	w := r.Stdout

	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  Welcome to cardkit!")
	fmt.Fprintln(w, "")

	// Step 1: Config directory
	fmt.Fprint(w, "  Creating config directory... ")
	if err := os.MkdirAll(config.Dir(), 0o755); err != nil {
		fmt.Fprintln(w, "failed.")
		return nil, fmt.Errorf("creating config directory: %w", err)
	}
	fmt.Fprintln(w, "done.")
	fmt.Fprintf(w, "  Config: %s\n", config.Dir())

	// Step 2: Starter catalog
	path := config.CatalogFile()
	wrote := false
	if _, err := os.Stat(path); err == nil && !r.Force {
		fmt.Fprintf(w, "  Keeping existing catalog %s\n", path)
	} else {
		fmt.Fprint(w, "  Writing starter catalog... ")
		if err := os.WriteFile(path, catalog.SeedData(), 0o644); err != nil {
			fmt.Fprintln(w, "failed.")
			return nil, fmt.Errorf("writing catalog: %w", err)
		}
		fmt.Fprintln(w, "done.")
		wrote = true
	}

	// The catalog on disk must parse before config points at it.
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "  Catalog: %d cards\n", cat.Len())

	// Step 3: Save config, preserving any existing settings
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Defaults()
	}
	cfg.Catalog.Path = path
	if err := config.Save(cfg); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  Setup complete!")
	fmt.Fprintf(w, "  Edit %s to change the cards.\n", path)

	return &Result{
		Config:       cfg,
		CatalogPath:  path,
		WroteCatalog: wrote,
	}, nil
}
