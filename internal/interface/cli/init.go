package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	initName  string
	initFocus string
	initGoal  float64
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up your profile",
	Long: `Create or update your profile: display name, what you focus on, and
how many hours per day you want to dedicate to it.

Examples:
  cogito init --name Ada --focus study --goal 5
  cogito init --goal 3.5`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initName, "name", "", "Display name")
	initCmd.Flags().StringVar(&initFocus, "focus", "", "Focus category (work, study, fitness, creative)")
	initCmd.Flags().Float64Var(&initGoal, "goal", 0, "Daily goal in hours")
}

func runInit(cmd *cobra.Command, args []string) error {
	if initGoal < 0 {
		return fmt.Errorf("daily goal must be a positive number of hours")
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

	if initName != "" {
		profile.Name = initName
	}
	if initFocus != "" {
		profile.Focus = initFocus
	}
	if initGoal > 0 {
		profile.DailyGoalHours = initGoal
	}
	profile.Onboarded = true

	if err := s.SaveProfile(profile); err != nil {
		return err
	}

	fmt.Printf("Profile saved. Focus: %s, daily goal: %.1fh\n", profile.Focus, profile.DailyGoalHours)
	return nil
}
