package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hbeckett/clausewise/internal/config"
	"github.com/hbeckett/clausewise/internal/gateway"
	"github.com/hbeckett/clausewise/internal/logging"
	"github.com/hbeckett/clausewise/internal/speech"
	"github.com/hbeckett/clausewise/internal/store"
	"github.com/hbeckett/clausewise/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	dataDir := config.DataDir()
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create data directory: %v\n", err)
		os.Exit(1)
	}

	if err := logging.Init(dataDir); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Close()

	// First run: persist the defaults so users have a file to edit.
	if _, err := os.Stat(config.Path()); os.IsNotExist(err) {
		if err := cfg.Save(); err != nil {
			logging.Warn("could not write default config", "error", err)
		}
	}

	// The archive is best-effort: the app runs without history if the
	// database cannot be opened.
	var archive ui.Archive
	st, err := store.Open(filepath.Join(dataDir, "clausewise.db"))
	if err != nil {
		logging.Warn("history archive unavailable", "error", err)
	} else {
		defer st.Close()
		archive = st
	}

	var player speech.Player
	if cp, err := speech.NewCommandPlayer(); err != nil {
		logging.Warn("audio disabled", "error", err)
		player = speech.DisabledPlayer{}
	} else {
		player = cp
	}

	backendURL := cfg.ResolveBackend()
	logging.Info("starting", "backend", backendURL)

	app := ui.NewApp(
		gateway.NewClient(backendURL),
		archive,
		speech.NewController(player),
		cfg.UI.HistoryLimit,
	)

	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logging.Error("program exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
