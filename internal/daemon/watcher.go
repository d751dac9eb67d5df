package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/nuxtdoc/internal/logfields"
)

// SourceWatcher monitors the API dump, the configuration file, and page
// source files, coalescing bursts of filesystem events into single render
// triggers.
type SourceWatcher struct {
	watcher    *fsnotify.Watcher
	triggerCh  chan string
	quietDelay time.Duration

	mu    sync.Mutex
	paths map[string]bool
}

// NewSourceWatcher creates a watcher over the given files. Directories
// containing the files are watched rather than the files themselves, which
// survives editors that replace files on save.
func NewSourceWatcher(files []string) (*SourceWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	sw := &SourceWatcher{
		watcher:    w,
		paths:      make(map[string]bool, len(files)),
		triggerCh:  make(chan string, 1),
		quietDelay: 2 * time.Second,
	}

	if err := sw.Update(files); err != nil {
		w.Close()
		return nil, err
	}
	return sw, nil
}

// Update registers files that are not yet watched, such as page sources
// introduced by a configuration reload. Files already in the watch set are
// kept.
func (sw *SourceWatcher) Update(files []string) error {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("resolve watched path %s: %w", file, err)
		}
		if sw.paths[abs] {
			continue
		}
		dir := filepath.Dir(abs)
		if err := sw.watcher.Add(dir); err != nil {
			return fmt.Errorf("watch directory %s: %w", dir, err)
		}
		sw.paths[abs] = true
	}
	return nil
}

// Triggers delivers one value per debounced change burst. The value is the
// path that triggered the render.
func (sw *SourceWatcher) Triggers() <-chan string {
	return sw.triggerCh
}

// Run processes filesystem events until the context is canceled. Rapid
// event bursts within the quiet window produce a single trigger.
func (sw *SourceWatcher) Run(ctx context.Context) {
	var (
		quiet   *time.Timer
		quietC  <-chan time.Time
		changed string
	)

	for {
		select {
		case <-ctx.Done():
			if quiet != nil {
				quiet.Stop()
			}
			sw.watcher.Close()
			return

		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if !sw.relevant(event) {
				continue
			}
			slog.Debug("Watched file changed", logfields.Path(event.Name))
			changed = event.Name
			if quiet == nil {
				quiet = time.NewTimer(sw.quietDelay)
			} else {
				if !quiet.Stop() {
					select {
					case <-quiet.C:
					default:
					}
				}
				quiet.Reset(sw.quietDelay)
			}
			quietC = quiet.C

		case <-quietC:
			quietC = nil
			select {
			case sw.triggerCh <- changed:
			default:
				// A trigger is already pending; the render it starts will
				// pick up this change too.
			}

		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("File watcher error", logfields.Error(err))
		}
	}
}

func (sw *SourceWatcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.paths[event.Name]
}
