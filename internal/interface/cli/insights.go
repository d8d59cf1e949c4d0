package cli

import (
	"fmt"

	"github.com/cbroglie/mustache"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/lmoretti/cogito/internal/core/stats"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "In-depth statistics across all time",
	Long: `Summarize your whole log: longest day, total time spent, and how many
of your days beat your own average.

The narrative is a mustache template; drop a custom one in
~/.config/cogito/insights.txt to change it.`,
	RunE: runInsights,
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(cmd *cobra.Command, args []string) error {
	s, cfg, err := openStore()
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
	if len(log) == 0 {
		fmt.Println("No data yet. Log a session first.")
		return nil
	}

	overview := stats.Summarize(log)
	text, err := mustache.Render(cfg.InsightsTemplate, map[string]string{
		"longest_date":      overview.LongestDate,
		"longest_hours":     humanize.FtoaWithDigits(overview.LongestHours, 2),
		"days_spent":        humanize.FtoaWithDigits(overview.DaysSpent, 2),
		"above_average_pct": humanize.FtoaWithDigits(overview.AboveAveragePct, 1),
		"total_minutes":     humanize.Comma(int64(overview.TotalMinutes)),
		"average_minutes":   humanize.FtoaWithDigits(overview.AverageMinutes, 1),
	})
	if err != nil {
		return fmt.Errorf("failed to render insights template: %w", err)
	}

	fmt.Println(text)
	return nil
}
