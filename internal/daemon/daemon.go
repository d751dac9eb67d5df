// Package daemon implements watch mode: it re-renders the documentation
// when the API dump, the configuration, or a page source file changes, on a
// configurable interval, and serves the rendered content with health and
// metrics endpoints.
package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"git.home.luguber.info/inful/nuxtdoc/internal/apidoc"
	"git.home.luguber.info/inful/nuxtdoc/internal/config"
	"git.home.luguber.info/inful/nuxtdoc/internal/events"
	"git.home.luguber.info/inful/nuxtdoc/internal/logfields"
	"git.home.luguber.info/inful/nuxtdoc/internal/metrics"
	"git.home.luguber.info/inful/nuxtdoc/internal/pages"
	"git.home.luguber.info/inful/nuxtdoc/internal/renderer"
	"git.home.luguber.info/inful/nuxtdoc/internal/state"
)

// Daemon re-renders documentation on change and serves the result.
type Daemon struct {
	configPath string
	recorder   *metrics.PrometheusRecorder
	history    *state.HistoryStore
	publisher  *events.Publisher
	editBase   string

	mu         sync.Mutex
	cfg        *config.Config
	lastReport *renderer.Report
}

// Options carries the optional collaborators of a Daemon.
type Options struct {
	History   *state.HistoryStore
	Publisher *events.Publisher
	EditBase  string
}

// New creates a daemon for the given configuration file.
func New(configPath string, cfg *config.Config, opts Options) *Daemon {
	return &Daemon{
		configPath: configPath,
		recorder:   metrics.NewPrometheusRecorder(nil),
		history:    opts.History,
		publisher:  opts.Publisher,
		editBase:   opts.EditBase,
		cfg:        cfg,
	}
}

// Run renders once, then blocks re-rendering on file changes and the
// configured interval until the context is canceled.
func (d *Daemon) Run(ctx context.Context) error {
	d.render(ctx, "startup")

	watcher, err := NewSourceWatcher(d.watchedFiles())
	if err != nil {
		return err
	}
	go watcher.Run(ctx)

	intervalCh, stopScheduler, err := d.startScheduler()
	if err != nil {
		return err
	}
	defer stopScheduler()

	server := NewServer(d)
	go func() {
		if err := server.ListenAndServe(ctx); err != nil {
			slog.Error("Preview server stopped", logfields.Error(err))
		}
	}()

	slog.Info("Watching for changes",
		logfields.Path(d.configPath),
		slog.String("listen", d.config().Watch.Listen))

	for {
		select {
		case <-ctx.Done():
			return nil
		case path := <-watcher.Triggers():
			slog.Info("Change detected", logfields.Path(path))
			d.reloadConfig()
			if err := watcher.Update(d.watchedFiles()); err != nil {
				slog.Warn("Updating watch set failed", logfields.Error(err))
			}
			d.render(ctx, "file_change")
		case <-intervalCh:
			d.render(ctx, "interval")
		}
	}
}

// startScheduler sets up the periodic re-render job when an interval is
// configured. The returned channel receives one value per tick.
func (d *Daemon) startScheduler() (<-chan struct{}, func(), error) {
	interval := d.config().Watch.Interval
	ch := make(chan struct{}, 1)
	if interval <= 0 {
		return ch, func() {}, nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, nil, fmt.Errorf("create scheduler: %w", err)
	}
	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			select {
			case ch <- struct{}{}:
			default:
			}
		}),
		gocron.WithName("interval-render"),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("create interval job: %w", err)
	}

	scheduler.Start()
	return ch, func() { _ = scheduler.Shutdown() }, nil
}

// render performs one render run and reports it to history, metrics, and
// the event bus. Failures are logged; the daemon keeps running.
func (d *Daemon) render(ctx context.Context, reason string) {
	d.mu.Lock()
	cfg := d.cfg
	d.mu.Unlock()

	started := time.Now()
	objects, err := apidoc.Load(cfg.APIDump)
	if err != nil {
		slog.Error("Loading API dump failed", logfields.Error(err), slog.String("reason", reason))
		return
	}

	r := renderer.New(cfg, objects,
		renderer.WithRecorder(d.recorder),
		renderer.WithEditBase(d.editBase))

	report, err := r.Render(ctx)
	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = metrics.OutcomeFailed
		slog.Error("Render failed", logfields.Error(err), slog.String("reason", reason))
	}

	d.mu.Lock()
	d.lastReport = report
	d.mu.Unlock()

	if d.history != nil {
		run := state.Run{
			ID:         report.RunID,
			StartedAt:  started,
			DurationMS: report.Duration.Milliseconds(),
			Pages:      report.Pages,
			Files:      len(report.Files),
			Collisions: report.Collisions,
			Outcome:    outcome,
		}
		if err := d.history.RecordRun(ctx, run); err != nil {
			slog.Warn("Recording run history failed", logfields.Error(err))
		}
	}

	if err := d.publisher.PublishRenderCompleted(events.RenderCompleted{
		RunID:      report.RunID,
		FinishedAt: time.Now(),
		Pages:      report.Pages,
		Files:      len(report.Files),
		Collisions: report.Collisions,
		Outcome:    outcome,
	}); err != nil {
		slog.Warn("Publishing render event failed", logfields.Error(err))
	}
}

// reloadConfig re-reads the configuration file. On failure the previous
// configuration stays active.
func (d *Daemon) reloadConfig() {
	cfg, err := config.Load(d.configPath)
	if err != nil {
		slog.Error("Reloading configuration failed, keeping previous", logfields.Error(err))
		return
	}
	d.mu.Lock()
	d.cfg = cfg
	d.mu.Unlock()
}

func (d *Daemon) config() *config.Config {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cfg
}

func (d *Daemon) report() *renderer.Report {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastReport
}

// watchedFiles collects the files whose changes trigger a re-render: the
// configuration, the API dump, and every page source.
func (d *Daemon) watchedFiles() []string {
	cfg := d.config()
	files := []string{d.configPath}
	if cfg.APIDump != "" {
		files = append(files, cfg.APIDump)
	}
	var collect func(ps []pages.Page)
	collect = func(ps []pages.Page) {
		for i := range ps {
			if ps[i].Source != "" {
				files = append(files, ps[i].Source)
			}
			collect(ps[i].Children)
		}
	}
	collect(cfg.Pages)
	return files
}
