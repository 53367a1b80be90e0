package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"focus_timer/internal/sessionlog"
	"focus_timer/internal/storage"

	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"
)

func newSessionsCmd(app *App, opts *rootOptions) *cobra.Command {
	var (
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Print recorded focus sessions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative, got %d", limit)
			}

			cfg, err := opts.loadConfig(app)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), opts.verbose)

			store, err := storage.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("opening session store: %w", err)
			}
			defer store.Close()

			sessions := sessionlog.New(store, cfg.StorageKey, logger)
			sessions.Load(cmd.Context())

			records := sessions.Records()
			if limit > 0 && limit < len(records) {
				records = records[:limit]
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(records)
			}
			printSessions(out, records, sessions.Len())
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most N sessions (0 = all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the sessions as a JSON array")
	return cmd
}

func printSessions(w io.Writer, records []sessionlog.Record, total int) {
	if total == 0 {
		fmt.Fprintln(w, "No sessions yet.")
		return
	}

	fmt.Fprintf(w, "%-8s  %s\n", "DURATION", "STOPPED")
	for _, r := range records {
		fmt.Fprintf(w, "%-8s  %s\n", r.Duration, r.Timestamp)
	}

	summary := english.Plural(total, "session", "")
	if len(records) < total {
		summary = fmt.Sprintf("%d of %s", len(records), summary)
	}
	fmt.Fprintf(w, "\n%s\n", summary)
}
