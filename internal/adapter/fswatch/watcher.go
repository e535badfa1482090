// Package fswatch triggers a callback when content data files change on disk.
package fswatch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce batches bursts of events (editors often write, chmod and
// rename in quick succession) into one callback.
const DefaultDebounce = 500 * time.Millisecond

// Watcher observes a directory and calls OnChange after tracked files change.
type Watcher struct {
	dir      string
	tracked  map[string]struct{}
	debounce time.Duration
	onChange func(ctx context.Context)
}

// New creates a Watcher for the given files, which must live in dir.
func New(dir string, files []string, debounce time.Duration, onChange func(ctx context.Context)) *Watcher {
	tracked := make(map[string]struct{}, len(files))
	for _, f := range files {
		tracked[filepath.Base(f)] = struct{}{}
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{dir: dir, tracked: tracked, debounce: debounce, onChange: onChange}
}

// Run watches until ctx is canceled. The directory itself is watched rather
// than each file so files that are created later, or replaced by rename, are seen.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = fw.Close() }()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	slog.Info("watching content directory", "dir", w.dir)

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			slog.Debug("content file changed", "file", event.Name, "op", event.Op.String())

			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				if ctx.Err() == nil {
					w.onChange(ctx)
				}
			})
			mu.Unlock()

		case watchErr, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("fsnotify error", "error", watchErr)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	_, ok := w.tracked[filepath.Base(event.Name)]
	return ok
}
