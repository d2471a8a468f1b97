package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/driveindex/internal/core/domain"
)

var (
	syncIncremental bool
	syncClean       bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronise the index with the Drive folder",
	Long: `Runs one sync pass: lists the Drive folder, indexes new and modified
files, and removes documents whose files were deleted from Drive.

By default every file is reprocessed (full mode). With --incremental,
only files modified since their last indexing are reprocessed. With
--clean, the index is emptied first and rebuilt from scratch.`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVarP(&syncIncremental, "incremental", "i", false,
		"only index new or modified files")
	syncCmd.Flags().BoolVarP(&syncClean, "clean", "c", false,
		"delete all indexed documents before syncing")
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, _ []string) error {
	if syncRunner == nil {
		return errors.New("sync service not configured")
	}

	opts := domain.SyncOptions{Mode: domain.SyncModeFull, Clean: syncClean}
	if syncIncremental {
		opts.Mode = domain.SyncModeIncremental
	}

	cmd.Printf("Starting %s sync...\n", opts.Mode)

	report, err := syncRunner.Run(context.Background(), opts)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	printReport(cmd, report)
	return nil
}

// printReport writes the run summary block.
func printReport(cmd *cobra.Command, report *domain.SyncReport) {
	cmd.Println()
	cmd.Println("Sync Complete - Summary")
	cmd.Printf("  Total files at source: %d\n", report.TotalFiles)
	cmd.Printf("  Indexed:               %d\n", report.Indexed)
	cmd.Printf("  Skipped:               %d\n", report.Skipped)
	cmd.Printf("  Deleted from index:    %d\n", report.Deleted)
	cmd.Printf("  Failed:                %d\n", report.Failed)
	cmd.Printf("  Duration:              %s\n", report.Duration.Round(time.Millisecond))

	if len(report.Failures) > 0 {
		cmd.Println()
		cmd.Println("Failures:")
		for _, f := range report.Failures {
			cmd.Printf("  %s: %s\n", f.FileID, f.Reason)
		}
	}
}
