// Package watch re-runs a callback when the local override file changes
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// ChangeFunc is called after the watched file settles
type ChangeFunc func(ctx context.Context)

// Watcher watches a single file. The parent directory is watched because
// editors usually replace files rather than write them in place.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange ChangeFunc
	watcher  *fsnotify.Watcher
}

// New creates a watcher for path. The file itself does not need to exist.
func New(path string, debounce time.Duration, onChange ChangeFunc) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		if cerr := watcher.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("Failed to close watcher after add error")
		}
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		debounce: debounce,
		onChange: onChange,
		watcher:  watcher,
	}, nil
}

// Path returns the absolute path being watched
func (w *Watcher) Path() string {
	return w.path
}

// Run delivers change notifications until ctx is cancelled, then closes
// the underlying watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.watcher.Close(); err != nil {
			log.Error().Err(err).Str("path", w.path).Msg("Failed to close file watcher")
		}
	}()

	debounceTimer := time.NewTimer(w.debounce)
	defer debounceTimer.Stop()
	pending := false

	log.Info().Str("path", w.path).Msg("File watcher started")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				pending = true
				debounceTimer.Reset(w.debounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Str("path", w.path).Msg("File watcher error")

		case <-debounceTimer.C:
			if pending {
				pending = false
				log.Info().Str("path", w.path).Msg("Detected override change")
				w.onChange(ctx)
			}
		}
	}
}
