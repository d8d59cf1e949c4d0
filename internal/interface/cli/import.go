package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lmoretti/cogito/internal/core/importer"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import day entries from a JSON file",
	Long: `Validate and merge externally supplied day entries into the log.

The file must contain an array of objects shaped like:
  {"date": "23/05", "time": 158, "stars": 2, "sessions": []}

A day already present in the log is replaced by the imported one. After the
merge every lifetime aggregate is recomputed from scratch. Nothing is
written if any entry fails validation.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	candidates, err := importer.Parse(data)
	if err != nil {
		var verr *importer.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("validation error: %w", err)
		}
		return err
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
	existing, err := s.LoadLog()
	if err != nil {
		return err
	}

	merged := importer.Merge(existing, candidates)
	profile = importer.Recompute(profile, merged)

	if err := s.SaveLog(merged); err != nil {
		return err
	}
	if err := s.SaveProfile(profile); err != nil {
		return err
	}

	fmt.Printf("Successfully imported %d entries (%d days total)\n", len(candidates), len(merged))
	return nil
}
