package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lmoretti/cogito/internal/core/models"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the daily log to a JSON file",
	Long: `Write the logger document verbatim to a file. The output can be
re-imported with "cogito import".

Examples:
  cogito export
  cogito export --output ~/backup/logger.json
  cogito export -o logger.json`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path (default: logger.json in current directory)")
}

func runExport(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() {
		_ = s.Close()
	}()

	body, err := s.Load(models.LogKey)
	if err != nil {
		return err
	}
	if body == nil {
		return fmt.Errorf("no log data found")
	}

	outputPath := exportOutput
	if outputPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		outputPath = filepath.Join(cwd, "logger.json")
	}

	if err := os.WriteFile(outputPath, body, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	fmt.Printf("Log exported to %s\n", outputPath)
	return nil
}
