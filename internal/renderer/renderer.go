// Package renderer drives a render run: it walks the configured page tree,
// assembles frontmatter, runs docstrings through the MDC pipeline, writes
// output files, and maintains the between-run manifest used for cleanup.
package renderer

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/nuxtdoc/internal/apidoc"
	"git.home.luguber.info/inful/nuxtdoc/internal/config"
	"git.home.luguber.info/inful/nuxtdoc/internal/docstring"
	"git.home.luguber.info/inful/nuxtdoc/internal/errors"
	"git.home.luguber.info/inful/nuxtdoc/internal/logfields"
	"git.home.luguber.info/inful/nuxtdoc/internal/manifest"
	"git.home.luguber.info/inful/nuxtdoc/internal/metrics"
	"git.home.luguber.info/inful/nuxtdoc/internal/pages"
	"git.home.luguber.info/inful/nuxtdoc/internal/resolver"
	"git.home.luguber.info/inful/nuxtdoc/internal/util/sets"
)

// Renderer renders documentation trees into the content directory.
type Renderer struct {
	cfg      *config.Config
	objects  []*apidoc.Object
	pipeline *docstring.Pipeline
	refs     *resolver.Resolver
	recorder metrics.Recorder
	editBase string
	icons    map[string]string
}

// Option customizes a Renderer.
type Option func(*Renderer)

// WithRecorder injects a metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(rd *Renderer) {
		if r != nil {
			rd.recorder = r
		}
	}
}

// WithEditBase sets the base URL used to derive per-page editURL
// frontmatter.
func WithEditBase(base string) Option {
	return func(rd *Renderer) { rd.editBase = base }
}

// New creates a renderer over the given configuration and documentation
// trees.
func New(cfg *config.Config, objects []*apidoc.Object, opts ...Option) *Renderer {
	r := &Renderer{
		cfg:      cfg,
		objects:  objects,
		pipeline: docstring.New(cfg.Components()),
		refs:     resolver.FromContentDirectory(baseFor(cfg)),
		recorder: metrics.NoopRecorder{},
		editBase: cfg.EditBaseURL,
		icons:    cfg.Icons(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func baseFor(cfg *config.Config) string {
	if cfg.BaseURL != "" {
		return cfg.BaseURL
	}
	return cfg.ContentDirectory
}

// Report summarizes one render run.
type Report struct {
	RunID      string
	Pages      int
	Files      []string
	Collisions int
	Skipped    int
	Links      int
	Duration   time.Duration
}

// Render performs one full render pass: prepare the output root, clean
// prior outputs when configured, render every page, and persist the new
// manifest. Write failures abort the remaining pages; files already written
// stay on disk.
func (r *Renderer) Render(ctx context.Context) (*Report, error) {
	started := time.Now()
	report := &Report{RunID: uuid.NewString()}

	contentDir := r.cfg.ContentDirectory
	if err := os.MkdirAll(contentDir, 0o755); err != nil {
		return report, errors.Wrap(err, errors.CategoryFileSystem, errors.SeverityFatal, "create content directory").
			WithContext("path", contentDir)
	}

	prior, err := manifest.Load(contentDir)
	if err != nil {
		return report, errors.Wrap(err, errors.CategoryFileSystem, errors.SeverityFatal, "load prior manifest")
	}

	if r.cfg.CleanRenderEnabled() {
		removed, err := prior.Clean(contentDir)
		if err != nil {
			return report, errors.Wrap(err, errors.CategoryFileSystem, errors.SeverityFatal, "clean prior outputs")
		}
		slog.Debug("Cleaned previous render outputs", logfields.Files(removed))
	}

	current := manifest.New(report.RunID, started)
	written := sets.New[string]()

	slog.Info("Rendering documentation", logfields.RunID(report.RunID), logfields.Path(contentDir))

	for _, resolved := range pages.Walk(r.cfg.Pages) {
		if err := ctx.Err(); err != nil {
			return report, errors.Wrap(err, errors.CategoryRender, errors.SeverityFatal, "render canceled")
		}

		if written.Has(resolved.OutputPath) {
			// Two pages resolved to the same file: keep last-write-wins
			// but make it visible.
			slog.Warn("Output path collision, last page wins",
				logfields.Page(resolved.Page.Name), logfields.Path(resolved.OutputPath))
			report.Collisions++
			r.recorder.IncPathCollision()
		}

		pageStart := time.Now()
		result, err := r.renderPage(resolved)
		if err != nil {
			r.recorder.IncRunOutcome(metrics.OutcomeFailed)
			return report, err
		}
		r.recorder.ObservePageRenderDuration(time.Since(pageStart))

		report.Pages++
		report.Links += result.links
		if result.skipped {
			report.Skipped++
		}
		if !written.Has(resolved.OutputPath) {
			current.Append(resolved.OutputPath)
		}
		written.Add(resolved.OutputPath)
		report.Files = append(report.Files, resolved.OutputPath)

		slog.Info("Rendered page",
			logfields.Page(resolved.Page.Name),
			logfields.Path(resolved.OutputPath),
			slog.Bool("skipped", result.skipped))
	}

	if err := current.Save(contentDir); err != nil {
		r.recorder.IncRunOutcome(metrics.OutcomeFailed)
		return report, errors.Wrap(err, errors.CategoryFileSystem, errors.SeverityFatal, "persist manifest")
	}

	report.Duration = time.Since(started)
	r.recorder.ObserveRunDuration(report.Duration)
	r.recorder.SetPagesRendered(report.Pages)
	r.recorder.IncRunOutcome(metrics.OutcomeSuccess)

	slog.Info("Render complete",
		logfields.RunID(report.RunID),
		logfields.Files(len(report.Files)),
		logfields.DurationMS(float64(report.Duration.Milliseconds())))

	return report, nil
}

// outputPathFor returns the absolute path of a resolved page.
func (r *Renderer) outputPathFor(resolved pages.Resolved) string {
	return filepath.Join(r.cfg.ContentDirectory, filepath.FromSlash(resolved.OutputPath))
}
