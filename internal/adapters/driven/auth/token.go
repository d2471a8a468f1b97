// Package auth handles OAuth credentials for the file source.
// Tokens are persisted to a JSON file so a completed authorisation
// survives across runs; refreshed tokens are written back on the fly.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/custodia-labs/driveindex/internal/core/domain"
	"github.com/custodia-labs/driveindex/internal/logger"
)

// DriveReadonlyScope grants read access to Drive file metadata and
// content, which is all the sync pipeline needs.
const DriveReadonlyScope = "https://www.googleapis.com/auth/drive.readonly"

// OAuthConfig builds the oauth2 configuration for the Drive source.
func OAuthConfig(clientID, clientSecret string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		RedirectURL:  "http://localhost",
		Scopes:       []string{DriveReadonlyScope},
	}
}

// LoadToken reads a persisted token from path.
// Returns domain.ErrAuthRequired when no token has been stored yet.
func LoadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: no token at %s", domain.ErrAuthRequired, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read token file: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("parse token file: %w", err)
	}
	return &token, nil
}

// SaveToken writes a token to path with owner-only permissions.
func SaveToken(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create token directory: %w", err)
	}

	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal token: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

// savingTokenSource wraps a refreshing token source and persists any
// newly-minted token back to disk.
type savingTokenSource struct {
	mu   sync.Mutex
	src  oauth2.TokenSource
	path string
	last *oauth2.Token
}

// Token implements oauth2.TokenSource.
func (s *savingTokenSource) Token() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := s.src.Token()
	if err != nil {
		return nil, err
	}

	if s.last == nil || token.AccessToken != s.last.AccessToken {
		if err := SaveToken(s.path, token); err != nil {
			logger.Warn("Failed to persist refreshed token: %v", err)
		} else {
			logger.Debug("Persisted refreshed token to %s", s.path)
		}
		s.last = token
	}
	return token, nil
}

// TokenSource returns an auto-refreshing oauth2.TokenSource backed by
// the token file at path. Refreshed tokens are saved back to the file.
func TokenSource(ctx context.Context, cfg *oauth2.Config, path string) (oauth2.TokenSource, error) {
	token, err := LoadToken(path)
	if err != nil {
		return nil, err
	}

	return &savingTokenSource{
		src:  cfg.TokenSource(ctx, token),
		path: path,
		last: token,
	}, nil
}
