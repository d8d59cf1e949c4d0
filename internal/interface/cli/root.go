package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/spf13/cobra"

	"github.com/lmoretti/cogito/internal/core/config"
	"github.com/lmoretti/cogito/internal/core/store"
)

var (
	dbPath      string
	versionInfo string
)

// SetVersion sets the version information from build-time ldflags
func SetVersion(version, commit, date string) {
	versionInfo = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	rootCmd.Version = versionInfo
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cogito",
	Short: "Study-time tracker",
	Long: `cogito - track focused work sessions, earn stars, review your progress

Log sessions with a built-in timer or from the command line, meet your
daily goal to collect stars, and browse per-day and per-exam statistics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default to TUI if no subcommand specified
		return tuiCmd.RunE(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database path (default: ~/.config/cogito/cogito.db)")
}

// openStore resolves the database path from the --db flag or config file
// and opens the document store.
func openStore() (*store.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	path := dbPath
	if path == "" {
		path = cfg.DatabasePath
	}
	s, err := store.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open store: %w", err)
	}
	return s, cfg, nil
}

// parseNaturalDate parses expressions like "yesterday", "last monday" or
// "2024-11-01" into a point in time.
func parseNaturalDate(input string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", input); err == nil {
		return t, nil
	}
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	result, err := w.Parse(input, time.Now())
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q: %w", input, err)
	}
	if result == nil {
		return time.Time{}, fmt.Errorf("could not understand date %q", input)
	}
	return result.Time, nil
}
