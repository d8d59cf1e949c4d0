package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lmoretti/cogito/internal/core/models"
	"github.com/lmoretti/cogito/internal/core/stats"
	"github.com/lmoretti/cogito/internal/core/tracker"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's progress",
	RunE:  runToday,
}

func init() {
	rootCmd.AddCommand(todayCmd)
}

func runToday(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() {
		_ = s.Close()
	}()

	profile, err := s.LoadProfile()
	if err != nil {
		return err
	}
	log, err := s.LoadLog()
	if err != nil {
		return err
	}

	dateKey := models.DateKey(time.Now())
	log, idx := tracker.EnsureToday(log, dateKey)
	if err := s.SaveLog(log); err != nil {
		return err
	}
	entry := log[idx]

	fmt.Printf("Today %s\n", entry.Date)
	fmt.Printf("Stars:    %s %d/3\n", starRow(entry.Stars), entry.Stars)
	goal := profile.GoalMinutes()
	fmt.Printf("Tracked:  %.2fh (%d%% of your %.1fh goal)\n",
		float64(entry.Time)/60,
		stats.ProgressPercent(entry, goal),
		float64(goal)/60)

	if len(entry.Sessions) == 0 {
		fmt.Println("No sessions yet")
		return nil
	}
	fmt.Println("Sessions so far:")
	for _, rec := range entry.Sessions {
		if rec.Exam != "" {
			fmt.Printf("  %d min (%s)\n", rec.Minutes, rec.Exam)
		} else {
			fmt.Printf("  %d min\n", rec.Minutes)
		}
	}
	return nil
}

func starRow(stars int) string {
	return strings.Repeat("*", stars) + strings.Repeat("-", tracker.MaxStars-stars)
}
