package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/wallaceicy06/go-tmas/internal/config"
)

var (
	cfg    *config.Config
	logger = slog.Default()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tmas",
	Short: "Read, check and name TMAS traffic exchange files",
	Long: `tmas works with the fixed-column traffic monitoring exchange files:
station descriptions (.sta), hourly volumes (.vol), classification (.cla),
speed (.spd) and weight (.wgt) records.

Settings are read from LOG_LEVEL, LOG_FORMAT, TMAS_DATA_DIR and
TMAS_CLASSIFICATION_GROUPINGS.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		cfg = c
		logger = newLogger(cmd.ErrOrStderr(), cfg)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds a slog logger writing to w in the configured format and
// level.
func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}
