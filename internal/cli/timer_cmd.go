package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"focus_timer/internal"
	"focus_timer/internal/sessionlog"
	"focus_timer/internal/storage"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var errNotInteractive = errors.New("the timer screen needs an interactive terminal; use 'focus sessions' to print the log")

func runTimer(cmd *cobra.Command, app *App, opts *rootOptions) error {
	if app.IsInteractive != nil && !app.IsInteractive() {
		return errNotInteractive
	}

	cfg, err := opts.loadConfig(app)
	if err != nil {
		return err
	}

	logFile, err := openLogFile(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := newLogger(logFile, opts.verbose)
	slog.SetDefault(logger)

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}
	defer store.Close()

	ctx := cmd.Context()
	sessions := sessionlog.New(store, cfg.StorageKey, logger)
	sessions.Load(ctx)
	logger.Info("Timer screen starting", "db", cfg.DBPath, "sessions", sessions.Len(), "theme", cfg.Theme)

	m := internal.NewModel(sessions, internal.Options{
		Clock:  app.clock(),
		Dark:   cfg.Dark(),
		Logger: logger,
	})
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running timer screen: %w", err)
	}
	return nil
}
