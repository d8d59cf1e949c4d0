package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/lmoretti/cogito/internal/core/stats"
)

var examsCmd = &cobra.Command{
	Use:   "exams",
	Short: "Per-exam time breakdown",
	Long:  "Group exam-tagged sessions by label and show totals and day series.",
	RunE:  runExams,
}

func init() {
	rootCmd.AddCommand(examsCmd)
}

func runExams(cmd *cobra.Command, args []string) error {
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

	summaries := stats.ExamTotals(log)
	if len(summaries) == 0 {
		fmt.Println("No exam sessions found.")
		return nil
	}

	for i, exam := range summaries {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s: %s hours total\n", exam.Name, humanize.FtoaWithDigits(float64(exam.TotalMinutes)/60, 2))
		for _, point := range exam.Series {
			fmt.Printf("  %s  %.1fh\n", point.Date, point.Hours)
		}
	}
	return nil
}
