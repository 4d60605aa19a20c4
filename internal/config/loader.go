package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if MOVIES_CONFIG is set
//  3. env (prefix MOVIES_)
//
// The dataset path therefore arrives as MOVIES_FILE_PATH, matching the
// key file_path on the struct.
func Load(_ context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("MOVIES_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: MOVIES_FILE_PATH, MOVIES_SHEET_NAME, ...
	// Map env keys like MOVIES_FILE_PATH -> file_path (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("MOVIES_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "movies_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Basic validation
	if cfg.TopN <= 0 {
		return nil, fmt.Errorf("%w: top_n must be positive", ErrInvalidConfig)
	}
	if cfg.LikeBarWidth <= 0 {
		return nil, fmt.Errorf("%w: like_bar_width must be positive", ErrInvalidConfig)
	}
	if cfg.SheetName == "" {
		return nil, fmt.Errorf("%w: sheet_name must not be empty", ErrInvalidConfig)
	}
	return &cfg, nil
}
