package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show index health and document count",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	ctx := context.Background()

	if !searchService.Healthy(ctx) {
		cmd.Println("Index: unreachable")
		return errors.New("index store unreachable")
	}

	count, err := searchService.Count(ctx)
	if err != nil {
		return fmt.Errorf("count failed: %w", err)
	}

	cmd.Println("Index: healthy")
	cmd.Printf("Documents: %d\n", count)

	if syncRunner != nil {
		st, err := syncRunner.Status(ctx)
		if err != nil {
			return fmt.Errorf("sync status failed: %w", err)
		}
		if st.Running {
			cmd.Printf("Sync: running (%d files processed, %d errors)\n",
				st.FilesProcessed, st.ErrorCount)
		} else {
			cmd.Println("Sync: idle")
		}
	}
	return nil
}
