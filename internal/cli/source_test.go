package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"todo/internal/config"
	"todo/internal/seed"
)

func TestDefaultSourceFactory(t *testing.T) {
	tests := []struct {
		name    string
		cfg     func(dir string) *config.Config
		records int
		wantErr error
	}{
		{
			name:    "builtin",
			cfg:     func(dir string) *config.Config { return &config.Config{Dir: dir, SeedSource: "builtin"} },
			records: 7,
		},
		{
			name:    "blank means builtin",
			cfg:     func(dir string) *config.Config { return &config.Config{Dir: dir} },
			records: 7,
		},
		{
			name:    "empty",
			cfg:     func(dir string) *config.Config { return &config.Config{Dir: dir, SeedSource: "Empty"} },
			records: 0,
		},
		{
			name:    "file",
			cfg:     func(dir string) *config.Config { return &config.Config{Dir: dir, SeedSource: "file", SeedFile: "tasks.yaml"} },
			records: 1,
		},
		{
			name:    "file without path",
			cfg:     func(dir string) *config.Config { return &config.Config{Dir: dir, SeedSource: "file"} },
			wantErr: ErrSeedFileRequired,
		},
		{
			name:    "google without client",
			cfg:     func(dir string) *config.Config { return &config.Config{Dir: dir, SeedSource: "google"} },
			wantErr: ErrNoOAuthClient,
		},
		{
			name:    "unknown",
			cfg:     func(dir string) *config.Config { return &config.Config{Dir: dir, SeedSource: "ftp"} },
			wantErr: seed.ErrUnknownSource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, "tasks.yaml"), []byte("- title: one\n"), 0600); err != nil {
				t.Fatalf("failed to write seed file: %v", err)
			}

			src, err := DefaultSourceFactory(context.Background(), tt.cfg(dir))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			records, err := src.Records(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(records) != tt.records {
				t.Errorf("expected %d records, got %d", tt.records, len(records))
			}
		})
	}
}

func TestDefaultSourceFactory_GoogleNotLoggedIn(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.OAuthClientFile), []byte("{}"), 0600); err != nil {
		t.Fatalf("failed to write oauth client: %v", err)
	}

	_, err := DefaultSourceFactory(context.Background(), &config.Config{Dir: dir, SeedSource: "google"})
	if !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("expected ErrNotLoggedIn, got %v", err)
	}
}
