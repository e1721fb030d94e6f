package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wallaceicy06/go-tmas"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("TMAS_DATA_DIR", "")
	t.Setenv("TMAS_CLASSIFICATION_GROUPINGS", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, tmas.Groupings13, cfg.ClassificationGroupings)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("TMAS_DATA_DIR", "/var/tmas")
	t.Setenv("TMAS_CLASSIFICATION_GROUPINGS", "4")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "/var/tmas", cfg.DataDir)
	assert.Equal(t, tmas.Groupings4, cfg.ClassificationGroupings)
}

func TestLoad_Invalid(t *testing.T) {
	for _, tt := range []struct {
		name string
		key  string
		val  string
	}{
		{"level", "LOG_LEVEL", "verbose"},
		{"format", "LOG_FORMAT", "xml"},
		{"groupings not a number", "TMAS_CLASSIFICATION_GROUPINGS", "many"},
		{"groupings out of domain", "TMAS_CLASSIFICATION_GROUPINGS", "8"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", "")
			t.Setenv("LOG_FORMAT", "")
			t.Setenv("TMAS_CLASSIFICATION_GROUPINGS", "")
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestParseGroupings(t *testing.T) {
	for _, s := range []string{"2", "3", "4", "5", "6", "7", "13"} {
		g, err := ParseGroupings(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, g.String())
	}
	for _, s := range []string{"", "0", "1", "8", "12", "14", "-3"} {
		_, err := ParseGroupings(s)
		assert.Error(t, err, s)
	}
}
