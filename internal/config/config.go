package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/wallaceicy06/go-tmas"
)

// Config holds the command line tool's settings, populated from environment
// variables.
type Config struct {
	LogLevel  string
	LogFormat string

	// DataDir is the directory exchange files are named relative to.
	DataDir string

	// ClassificationGroupings is the number of class bins assumed for
	// classification files when no station description is given.
	ClassificationGroupings tmas.ClassificationGroupings
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	groupings, err := ParseGroupings(envOrDefault("TMAS_CLASSIFICATION_GROUPINGS", strconv.Itoa(int(tmas.DefaultGroupings))))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		LogLevel:                envOrDefault("LOG_LEVEL", "info"),
		LogFormat:               envOrDefault("LOG_FORMAT", "json"),
		DataDir:                 envOrDefault("TMAS_DATA_DIR", "."),
		ClassificationGroupings: groupings,
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, errors.Errorf("invalid LOG_LEVEL %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		return nil, errors.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}

	return cfg, nil
}

// ParseGroupings parses a classification grouping count, one of 2, 3, 4,
// 5, 6, 7 or 13.
func ParseGroupings(s string) (tmas.ClassificationGroupings, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Errorf("invalid classification groupings %q", s)
	}
	g := tmas.ClassificationGroupings(n)
	if !g.Valid() {
		return 0, errors.Errorf("invalid classification groupings %d", n)
	}
	return g, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
