package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Defaults for settings missing from the config file and environment.
const (
	DefaultSeedSource = "builtin"
	DefaultLogLevel   = "warn"
	DefaultLogFormat  = "text"

	// EnvPrefix prefixes environment overrides, e.g. TODO_SEED_SOURCE.
	EnvPrefix = "TODO"
)

// Load creates a Config for configDir and fills its settings from, in
// increasing priority: defaults, config.yaml in the directory, the .env
// file in the directory and the process environment.
func Load(configDir string) (*Config, error) {
	cfg, err := New(configDir)
	if err != nil {
		return nil, err
	}

	// Variables already set in the environment win over .env.
	if err := godotenv.Load(cfg.EnvPath()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading %s: %w", EnvFile, err)
	}

	v := viper.New()
	v.SetConfigName(SettingsFile)
	v.SetConfigType("yaml")
	v.AddConfigPath(cfg.Dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("seed.source", DefaultSeedSource)
	v.SetDefault("seed.file", "")
	v.SetDefault("seed.google_list", "")
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading %s.yaml: %w", SettingsFile, err)
		}
	}

	cfg.SeedSource = v.GetString("seed.source")
	cfg.SeedFile = v.GetString("seed.file")
	cfg.GoogleList = v.GetString("seed.google_list")
	cfg.LogLevel = v.GetString("log.level")
	cfg.LogFormat = v.GetString("log.format")

	return cfg, nil
}
