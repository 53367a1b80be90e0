package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"focus_timer/internal/config"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

// EnvDBPath overrides the database location from the config file.
const EnvDBPath = "FOCUS_TIMER_DB"

// App holds the process collaborators the commands depend on.
type App struct {
	Clock         clockwork.Clock
	IsInteractive func() bool
	Getenv        func(string) string
}

type rootOptions struct {
	configPath string
	dbPath     string
	logFile    string
	dark       bool
	verbose    bool
}

// NewRootCmd creates the top-level "focus" command. Run without a
// subcommand it opens the timer screen.
func NewRootCmd(app *App) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "focus",
		Short:         "Focus timer with a persisted session log",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTimer(cmd, app, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default <user config dir>/focus-timer/config.yaml)")
	flags.StringVar(&opts.dbPath, "db", "", "session database path (overrides config and $"+EnvDBPath+")")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	root.Flags().StringVar(&opts.logFile, "log-file", "", "log file for the timer screen")
	root.Flags().BoolVar(&opts.dark, "dark", false, "start with the dark theme")

	root.AddCommand(
		newSessionsCmd(app, opts),
		newInitCmd(opts),
	)

	return root
}

func (o *rootOptions) resolveConfigPath() (string, error) {
	if o.configPath != "" {
		return o.configPath, nil
	}
	return config.DefaultPath()
}

// loadConfig merges the config file, the environment and flags, in that
// order of increasing precedence.
func (o *rootOptions) loadConfig(app *App) (config.Config, error) {
	path, err := o.resolveConfigPath()
	if err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("loading config %s: %w", path, err)
	}

	if v := app.getenv(EnvDBPath); v != "" {
		cfg.DBPath = v
	}
	if o.dbPath != "" {
		cfg.DBPath = o.dbPath
	}
	if o.logFile != "" {
		cfg.LogFile = o.logFile
	}
	if o.dark {
		cfg.Theme = config.ThemeDark
	}
	return cfg, nil
}

func (a *App) getenv(key string) string {
	if a.Getenv == nil {
		return os.Getenv(key)
	}
	return a.Getenv(key)
}

func (a *App) clock() clockwork.Clock {
	if a.Clock == nil {
		return clockwork.NewRealClock()
	}
	return a.Clock
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// openLogFile opens path for appending, creating its directory.
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}
