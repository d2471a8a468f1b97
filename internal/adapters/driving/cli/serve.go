package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/driveindex/internal/adapters/driving/httpapi"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the read-only search API over HTTP",
	Long: `Starts the HTTP query surface. The API is read-only and safe to run
while a sync is in progress; it may observe a partially-converged
index mid-sync.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "0.0.0.0", "listen address")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8000, "listen port")
	rootCmd.AddCommand(serveCmd)
}

// SetAPIDefaults replaces the serve flag defaults with configured
// values. Explicit flags still win.
func SetAPIDefaults(host string, port int) {
	serveHost = host
	servePort = port
	serveCmd.Flags().Lookup("host").DefValue = host
	serveCmd.Flags().Lookup("port").DefValue = strconv.Itoa(port)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	addr := fmt.Sprintf("%s:%d", serveHost, servePort)
	cmd.Printf("Serving search API on http://%s\n", addr)

	server := httpapi.NewServer(searchService)
	return server.ListenAndServe(addr)
}
