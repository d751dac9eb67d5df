package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/nuxtdoc/internal/config"
	"git.home.luguber.info/inful/nuxtdoc/internal/events"
	"git.home.luguber.info/inful/nuxtdoc/internal/logfields"
	"git.home.luguber.info/inful/nuxtdoc/internal/metrics"
	"git.home.luguber.info/inful/nuxtdoc/internal/renderer"
	"git.home.luguber.info/inful/nuxtdoc/internal/state"
)

// RenderCmd implements the 'render' command: one full render pass.
type RenderCmd struct{}

func (r *RenderCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config)
	if err != nil {
		return err
	}
	objects, err := loadObjects(cfg)
	if err != nil {
		return err
	}

	started := time.Now()
	rd := renderer.New(cfg, objects, renderer.WithEditBase(resolveEditBase(cfg)))

	report, renderErr := rd.Render(context.Background())
	outcome := metrics.OutcomeSuccess
	if renderErr != nil {
		outcome = metrics.OutcomeFailed
	}

	recordHistory(cfg.HistoryDB, report, started, outcome)
	publishEvent(cfg, report, outcome)

	if renderErr != nil {
		return renderErr
	}

	fmt.Printf("Rendered %d pages (%d skipped, %d links) in %s\n",
		report.Pages, report.Skipped, report.Links, report.Duration.Round(time.Millisecond))
	return nil
}

// recordHistory appends the run to the history database when one is
// configured. History failures never fail the render.
func recordHistory(dbPath string, report *renderer.Report, started time.Time, outcome string) {
	if dbPath == "" {
		return
	}
	store, err := state.OpenHistory(dbPath)
	if err != nil {
		slog.Warn("Opening history database failed", logfields.Error(err))
		return
	}
	defer store.Close()

	run := state.Run{
		ID:         report.RunID,
		StartedAt:  started,
		DurationMS: report.Duration.Milliseconds(),
		Pages:      report.Pages,
		Files:      len(report.Files),
		Collisions: report.Collisions,
		Outcome:    outcome,
	}
	if err := store.RecordRun(context.Background(), run); err != nil {
		slog.Warn("Recording run history failed", logfields.Error(err))
	}
}

// publishEvent emits the render summary over NATS when configured.
func publishEvent(cfg *config.Config, report *renderer.Report, outcome string) {
	if cfg.Events.NATSURL == "" {
		return
	}
	pub, err := events.Connect(cfg.Events.NATSURL, cfg.Events.Subject)
	if err != nil {
		slog.Warn("Connecting to NATS failed", logfields.Error(err))
		return
	}
	defer pub.Close()

	if err := pub.PublishRenderCompleted(events.RenderCompleted{
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
