package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/obinna/suya/internal/config"
	"github.com/obinna/suya/internal/log"
	"github.com/obinna/suya/internal/mealdb"
	"github.com/obinna/suya/internal/service"
	"github.com/obinna/suya/internal/store"
	"github.com/obinna/suya/internal/tui"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	// Handle version flag
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("suya %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("suya requires an interactive terminal")
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, err := log.Setup(&cfg.Logging)
	if err != nil {
		// Fall back to a discarding logger if file logging fails
		logger = log.Discard()
	}
	slog.SetDefault(logger)

	logger.Info("starting suya", "version", Version)

	// Open local storage
	db, err := store.Open(cfg.Storage.Dir)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer db.Close()

	// Create recipe source client
	client := mealdb.NewClient(
		cfg.API.BaseURL,
		cfg.API.RegionalArea,
		time.Duration(cfg.API.TimeoutSeconds)*time.Second,
		logger,
	)

	// Create services
	authSvc := service.NewAuthService(db, db, logger)
	searchSvc := service.NewSearchService(client, logger)
	favoritesSvc := service.NewFavoritesService(db, client, logger)

	// Create TUI model
	model := tui.NewModel(authSvc, searchSvc, favoritesSvc, client, cfg.UI.GridColumns, logger)

	// Run the TUI
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
