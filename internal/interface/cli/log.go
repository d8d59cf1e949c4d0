package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lmoretti/cogito/internal/core/models"
	"github.com/lmoretti/cogito/internal/core/tracker"
)

var (
	logExam string
	logDate string
)

var logCmd = &cobra.Command{
	Use:   "log <duration>",
	Short: "Record a finished session",
	Long: `Record a session you timed outside the app.

Duration accepts Go syntax: 90m, 1h30m, 2h.

Examples:
  cogito log 45m
  cogito log 1h30m --exam "Linear Algebra"
  cogito log 2h --date yesterday`,
	Args: cobra.ExactArgs(1),
	RunE: runLog,
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.Flags().StringVar(&logExam, "exam", "", "Exam label for this session")
	logCmd.Flags().StringVar(&logDate, "date", "", "Day to log against (natural language, default: today)")
}

func runLog(cmd *cobra.Command, args []string) error {
	elapsed, err := time.ParseDuration(args[0])
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", args[0], err)
	}
	if elapsed <= 0 {
		return tracker.ErrEmptySession
	}

	day := time.Now()
	if logDate != "" {
		day, err = parseNaturalDate(logDate)
		if err != nil {
			return err
		}
	}

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

	minutes := int(elapsed / time.Minute)
	result := models.SessionResult{Hours: minutes / 60, Minutes: minutes % 60, Exam: logExam}

	profile, log, outcome, err := tracker.Record(result, profile, log, models.DateKey(day))
	if err != nil {
		return err
	}

	// Best-effort, non-transactional: a partial failure leaves the two
	// documents inconsistent until the next full recompute.
	if err := s.SaveProfile(profile); err != nil {
		return err
	}
	if err := s.SaveLog(log); err != nil {
		return err
	}

	fmt.Printf("Logged %d min on %s (%d/3 stars)\n", outcome.SessionMinutes, outcome.DateKey, outcome.NewStars)
	if outcome.GoalCrossed {
		fmt.Println("Daily goal reached!")
	}
	return nil
}
