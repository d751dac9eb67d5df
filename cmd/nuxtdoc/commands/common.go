package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/nuxtdoc/internal/apidoc"
	"git.home.luguber.info/inful/nuxtdoc/internal/config"
	"git.home.luguber.info/inful/nuxtdoc/internal/errors"
	"git.home.luguber.info/inful/nuxtdoc/internal/gitinfo"
	"git.home.luguber.info/inful/nuxtdoc/internal/logfields"
)

// Global state shared with subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI defines the command tree and global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"nuxtdoc.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Render  RenderCmd  `cmd:"" help:"Render the documentation tree into the content directory"`
	Watch   WatchCmd   `cmd:"" help:"Re-render on changes and serve the content directory"`
	Init    InitCmd    `cmd:"" help:"Initialize a new configuration file"`
	History HistoryCmd `cmd:"" help:"Show recent render runs from the history database"`
}

// AfterApply runs after flag parsing; sets up logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadConfig reads the configuration, mapping a missing file onto the
// config error category for exit-code handling.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.CategoryConfig, errors.SeverityFatal, "load configuration").
			WithContext("path", path)
	}
	return cfg, nil
}

// loadObjects reads the API dump configured for rendering.
func loadObjects(cfg *config.Config) ([]*apidoc.Object, error) {
	objects, err := apidoc.Load(cfg.APIDump)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryConfig, errors.SeverityFatal, "load API dump").
			WithContext("path", cfg.APIDump)
	}
	return objects, nil
}

// resolveEditBase returns the configured edit base URL, probing the local
// git checkout when none is configured. An undetectable repository just
// means pages carry no edit link.
func resolveEditBase(cfg *config.Config) string {
	if cfg.EditBaseURL != "" {
		return cfg.EditBaseURL
	}
	info, err := gitinfo.Detect(".")
	if err != nil {
		slog.Debug("No git checkout detected, skipping edit links", logfields.Error(err))
		return ""
	}
	return info.EditBaseURL()
}
