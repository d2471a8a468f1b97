// Package cli implements the cobra command surface. Commands receive
// their services through SetServices before Execute runs; they hold no
// construction logic of their own.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/driveindex/internal/core/ports/driving"
	"github.com/custodia-labs/driveindex/internal/logger"
)

// Injected services, set by main before Execute.
var (
	syncRunner    driving.SyncRunner
	searchService driving.SearchService
)

var verboseFlag bool

// version is overridden at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "driveindex",
	Short: "Sync a Google Drive folder into a searchable full-text index",
	Long: `driveindex keeps a local full-text index in step with a Google Drive
folder: new and modified files are fetched, their text extracted and
indexed; files deleted from Drive are removed from the index. The
index is queried through the search command or the HTTP API.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// SetServices injects the core services the commands depend on.
func SetServices(sync driving.SyncRunner, search driving.SearchService) {
	syncRunner = sync
	searchService = search
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
