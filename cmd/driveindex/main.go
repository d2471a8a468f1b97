// Command driveindex syncs a Google Drive folder into a local
// full-text index and serves queries over CLI and HTTP.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/custodia-labs/driveindex/internal/adapters/driven/auth"
	configfile "github.com/custodia-labs/driveindex/internal/adapters/driven/config/file"
	"github.com/custodia-labs/driveindex/internal/adapters/driven/filesource/drive"
	"github.com/custodia-labs/driveindex/internal/adapters/driven/indexstore/bleve"
	"github.com/custodia-labs/driveindex/internal/adapters/driving/cli"
	"github.com/custodia-labs/driveindex/internal/core/domain"
	"github.com/custodia-labs/driveindex/internal/core/ports/driven"
	"github.com/custodia-labs/driveindex/internal/core/services"
	"github.com/custodia-labs/driveindex/internal/extractors"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := configfile.Load(os.Getenv("DRIVEINDEX_CONFIG"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := bleve.NewStore(cfg.Index.Path)
	if err != nil {
		return fmt.Errorf("opening index at %s: %w", cfg.Index.Path, err)
	}
	defer store.Close()

	registry := extractors.DefaultRegistry(extractors.NewExecRunner(), cfg.Extract.OCR)
	source := buildSource(cfg)

	syncRunner := services.NewSyncRunner(source, store, registry)
	searchService := services.NewSearchService(store)

	cli.SetServices(syncRunner, searchService)
	cli.SetAPIDefaults(cfg.API.Host, cfg.API.Port)
	return cli.Execute()
}

// buildSource constructs the Drive file source. Construction failures
// (missing config, missing token) are deferred into a source whose
// operations report the error, so commands that never touch Drive
// still work without credentials.
func buildSource(cfg *configfile.Config) driven.FileSource {
	if err := cfg.Validate(); err != nil {
		return &unavailableSource{err: err}
	}

	oauthCfg := auth.OAuthConfig(cfg.Drive.ClientID, cfg.Drive.ClientSecret)
	ts, err := auth.TokenSource(context.Background(), oauthCfg, cfg.Drive.TokenFile)
	if err != nil {
		return &unavailableSource{err: err}
	}

	source, err := drive.NewSource(context.Background(), ts, cfg.Drive.FolderID)
	if err != nil {
		return &unavailableSource{err: err}
	}
	return source
}

type unavailableSource struct {
	err error
}

var _ driven.FileSource = (*unavailableSource)(nil)

func (s *unavailableSource) ListFiles(context.Context) ([]domain.RemoteFile, error) {
	return nil, s.err
}

func (s *unavailableSource) FetchContent(context.Context, string) ([]byte, error) {
	return nil, s.err
}

func (s *unavailableSource) Ping(context.Context) error {
	return s.err
}
