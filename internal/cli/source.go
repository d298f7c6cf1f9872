package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"todo/internal/backend/googletasks"
	"todo/internal/config"
	"todo/internal/seed"
)

var (
	// ErrSeedFileRequired is returned for the file source without a path.
	ErrSeedFileRequired = errors.New("seed file required (set seed.file or --seed-file)")

	// ErrNoOAuthClient is returned for the google source without
	// oauth_client.json.
	ErrNoOAuthClient = errors.New("oauth_client.json not found")

	// ErrNotLoggedIn is returned for the google source without a token.
	ErrNotLoggedIn = errors.New("not logged in (run: todo login)")
)

// DefaultSourceFactory builds the seed source named by cfg.SeedSource.
func DefaultSourceFactory(ctx context.Context, cfg *config.Config) (seed.Source, error) {
	switch kind := seed.NormalizeKind(cfg.SeedSource); kind {
	case seed.KindBuiltin:
		return seed.Builtin(time.Now), nil
	case seed.KindFile:
		path := cfg.SeedFilePath()
		if path == "" {
			return nil, ErrSeedFileRequired
		}
		return seed.File(path), nil
	case seed.KindGoogle:
		if !cfg.HasOAuthClient() {
			return nil, fmt.Errorf("%w in %s", ErrNoOAuthClient, cfg.Dir)
		}
		if !cfg.HasToken() {
			return nil, ErrNotLoggedIn
		}
		return googletasks.New(ctx, cfg, cfg.GoogleList)
	case seed.KindEmpty:
		return seed.Empty(), nil
	default:
		return nil, fmt.Errorf("%w: %s", seed.ErrUnknownSource, cfg.SeedSource)
	}
}
