package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmoretti/cogito/internal/core/models"
	"github.com/lmoretti/cogito/internal/core/stats"
)

var (
	historyPage     int
	historyPageSize int
	historySince    string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse the daily log",
	Long: `Show logged days as a paginated table.

Examples:
  cogito history
  cogito history --page 2
  cogito history --since "last monday"`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyPage, "page", 1, "Page to show (1-based)")
	historyCmd.Flags().IntVar(&historyPageSize, "page-size", 8, "Days per page")
	historyCmd.Flags().StringVar(&historySince, "since", "", "Only days on or after this date (natural language)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() {
		_ = s.Close()
	}()

	log, err := s.LoadLog()
	if err != nil {
		return err
	}

	if historySince != "" {
		since, err := parseNaturalDate(historySince)
		if err != nil {
			return err
		}
		sinceKey := models.DateKey(since)
		filtered := log[:0]
		for _, entry := range log {
			if models.CompareDateKeys(entry.Date, sinceKey) >= 0 {
				filtered = append(filtered, entry)
			}
		}
		log = filtered
	}

	if len(log) == 0 {
		fmt.Println("No days logged yet.")
		return nil
	}

	page := stats.Paginate(log, historyPage-1, historyPageSize)
	fmt.Printf("Page %d of %d\n\n", page.Number+1, page.Total)
	fmt.Printf("%-7s %8s %7s %10s\n", "Date", "Time", "Stars", "Sessions")
	for _, entry := range page.Entries {
		fmt.Printf("%-7s %7.1fh %7s %10d\n",
			entry.Date, float64(entry.Time)/60, starRow(entry.Stars), len(entry.Sessions))
	}
	return nil
}
