package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/nuxtdoc/internal/daemon"
	"git.home.luguber.info/inful/nuxtdoc/internal/events"
	"git.home.luguber.info/inful/nuxtdoc/internal/logfields"
	"git.home.luguber.info/inful/nuxtdoc/internal/state"
)

// WatchCmd implements the 'watch' command: continuous re-rendering with a
// preview server.
type WatchCmd struct {
	Interval time.Duration `help:"Re-render on this interval in addition to file changes"`
	Listen   string        `help:"Preview/metrics listen address (overrides config)"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config)
	if err != nil {
		return err
	}
	if w.Interval > 0 {
		cfg.Watch.Interval = w.Interval
	}
	if w.Listen != "" {
		cfg.Watch.Listen = w.Listen
	}

	opts := daemon.Options{EditBase: resolveEditBase(cfg)}

	if cfg.HistoryDB != "" {
		store, err := state.OpenHistory(cfg.HistoryDB)
		if err != nil {
			slog.Warn("Opening history database failed, continuing without history", logfields.Error(err))
		} else {
			opts.History = store
			defer store.Close()
		}
	}

	if cfg.Events.NATSURL != "" {
		pub, err := events.Connect(cfg.Events.NATSURL, cfg.Events.Subject)
		if err != nil {
			slog.Warn("Connecting to NATS failed, continuing without events", logfields.Error(err))
		} else {
			opts.Publisher = pub
			defer pub.Close()
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return daemon.New(root.Config, cfg, opts).Run(ctx)
}
