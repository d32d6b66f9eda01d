package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/stefanclaw/cardkit/internal/catalog"
	"github.com/stefanclaw/cardkit/internal/chart"
	"github.com/stefanclaw/cardkit/internal/config"
	"github.com/stefanclaw/cardkit/internal/logging"
	"github.com/stefanclaw/cardkit/internal/onboard"
	"github.com/stefanclaw/cardkit/internal/search"
	"github.com/stefanclaw/cardkit/internal/tui"
	"github.com/stefanclaw/cardkit/internal/update"
)

var version = "dev"

// flags holds the parsed command line.
type flags struct {
	catalogPath string
	filterTerm  string
	filterMode  bool
	page        string
	debug       bool
	action      string // version, help, init, update, uninstall
}

func parseFlags(args []string) (flags, error) {
	var f flags
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--catalog", "--filter", "--page":
			if i+1 >= len(args) {
				return f, fmt.Errorf("%s requires a value", args[i])
			}
			switch args[i] {
			case "--catalog":
				f.catalogPath = args[i+1]
			case "--filter":
				f.filterTerm = args[i+1]
				f.filterMode = true
			case "--page":
				f.page = args[i+1]
			}
			i++ // skip the value
		case "--debug":
			f.debug = true
		case "--version", "-v":
			f.action = "version"
		case "--help", "-h":
			f.action = "help"
		case "--init":
			f.action = "init"
		case "--update":
			f.action = "update"
		case "--uninstall":
			f.action = "uninstall"
		default:
			return f, fmt.Errorf("unknown argument %q (see --help)", args[i])
		}
	}
	return f, nil
}

func main() {
	f, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	switch f.action {
	case "version":
		fmt.Printf("cardkit %s\n", version)
		return
	case "help":
		printHelp()
		return
	case "init":
		if _, err := (&onboard.Runner{Stdout: os.Stdout, Force: true}).Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	case "update":
		runUpdate()
		return
	case "uninstall":
		runUninstall()
		return
	}

	if f.filterMode {
		if err := runFilter(os.Stdout, f); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(f); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads config.yaml and applies command line overrides.
func loadConfig(f flags) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	if f.catalogPath != "" {
		cfg.Catalog.Path = f.catalogPath
	}
	if f.page != "" {
		cfg.TUI.StartPage = f.page
	}
	if f.debug {
		cfg.Logging.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func run(f flags) error {
	// First run: write a starter config and catalog
	if config.IsFirstRun() && f.catalogPath == "" {
		if _, err := onboard.NewRunner().Run(); err != nil {
			return err
		}
	}

	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}

	logger, flush, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer flush()

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	logger.Info("starting",
		zap.String("version", version),
		zap.String("catalog", cfg.Catalog.Path),
		zap.Int("cards", cat.Len()))

	model := tui.New(tui.Options{
		Searcher:  search.New(cat, search.WithLogger(logger)),
		Charts:    chart.Defaults(),
		StartPage: cfg.TUI.StartPage,
		Theme:     cfg.TUI.Theme,
		Version:   version,
		Logger:    logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

// runFilter prints the cards matching f.filterTerm, one block per card.
func runFilter(w io.Writer, f flags) error {
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return err
	}

	v := search.New(cat).Filter(f.filterTerm)
	if v.Empty() {
		fmt.Fprintf(w, "No cards match %q.\n", v.Term)
		return nil
	}
	for i, c := range v.Cards {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, c.Title)
		if c.HasImage() {
			fmt.Fprintf(w, "  image: %s\n", c.Image)
		}
		fmt.Fprintf(w, "  %s\n", c.Description)
	}
	return nil
}

func runUpdate() {
	if !update.IsRelease(version) {
		fmt.Println("Auto-update is not available for development builds.")
		return
	}
	fmt.Println("Checking for updates...")
	res, err := update.Apply(context.Background(), version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Update failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(res.Summary())
}

func runUninstall() {
	configDir := config.Dir()
	fmt.Println("cardkit Uninstall")
	fmt.Println("=================")
	fmt.Println("")
	fmt.Println("This will remove all cardkit data:")
	fmt.Printf("  Config & catalog: %s\n", configDir)
	fmt.Println("")
	fmt.Print("Are you sure? (y/N) ")

	var answer string
	fmt.Scanln(&answer)
	if answer != "y" && answer != "Y" {
		fmt.Println("Cancelled.")
		return
	}

	if err := os.RemoveAll(configDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error removing %s: %v\n", configDir, err)
		os.Exit(1)
	}
	fmt.Printf("Removed %s\n", configDir)

	// Find and report binary location
	exe, err := os.Executable()
	if err == nil {
		fmt.Printf("\nTo complete removal, delete the binary:\n  rm %s\n", exe)
	}
}

func printHelp() {
	fmt.Printf(`cardkit %s — card browser and dashboard for the terminal

Usage:
  cardkit                          Start the TUI
  cardkit --filter <term>          Print cards whose title contains <term> and exit
  cardkit --catalog <path>         Use a catalog YAML file instead of the configured one
  cardkit --page cards|dashboard   Page to open first
  cardkit --debug                  Write a debug log to %s
  cardkit --init                   Write a starter config.yaml and catalog.yaml
  cardkit --version                Print version and exit
  cardkit --help                   Show this help
  cardkit --update                 Update to the latest version
  cardkit --uninstall              Remove all cardkit data from your system

Slash commands (in TUI):
  /help              Show available commands
  /quit, /exit       Exit cardkit
  /cards             Show the card list
  /dashboard         Show the charts
  /filter <term>     Filter cards by title
  /clear             Clear the filter
  /update            Check for updates and upgrade

Configuration:
  Config is stored in %s
  Override with CARDKIT_CONFIG_DIR environment variable.

Examples:
  cardkit --filter one                          Cards with "one" in the title
  cardkit --catalog ./cards.yaml --page cards   Browse a custom catalog
  CARDKIT_CONFIG_DIR=/tmp/test cardkit          Use custom config dir
`, version, config.LogFile(), config.Dir())
}
