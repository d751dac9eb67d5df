package commands

import (
	"context"
	"fmt"
	"time"

	"git.home.luguber.info/inful/nuxtdoc/internal/errors"
	"git.home.luguber.info/inful/nuxtdoc/internal/state"
)

// HistoryCmd implements the 'history' command: list recent render runs.
type HistoryCmd struct {
	Limit int `short:"n" help:"Number of runs to show" default:"20"`
}

func (h *HistoryCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config)
	if err != nil {
		return err
	}
	if cfg.HistoryDB == "" {
		return errors.New(errors.CategoryConfig, errors.SeverityFatal, "no history_db configured")
	}

	store, err := state.OpenHistory(cfg.HistoryDB)
	if err != nil {
		return errors.Wrap(err, errors.CategoryConfig, errors.SeverityFatal, "open history database").
			WithContext("path", cfg.HistoryDB)
	}
	defer store.Close()

	runs, err := store.ListRuns(context.Background(), h.Limit)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, errors.SeverityFatal, "list render runs")
	}

	if len(runs) == 0 {
		fmt.Println("No render runs recorded")
		return nil
	}

	fmt.Printf("%-36s  %-20s  %8s  %6s  %6s  %s\n", "RUN", "STARTED", "DURATION", "PAGES", "FILES", "OUTCOME")
	for _, run := range runs {
		fmt.Printf("%-36s  %-20s  %7dms  %6d  %6d  %s\n",
			run.ID,
			run.StartedAt.Format(time.RFC3339),
			run.DurationMS,
			run.Pages,
			run.Files,
			run.Outcome)
	}
	return nil
}
