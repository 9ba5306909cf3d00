package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// driftDebounce coalesces the event bursts editors produce for one save.
const driftDebounce = 500 * time.Millisecond

// DriftLogger receives the watcher's notifications. Both *slog.Logger and
// the engine's redacting logger satisfy it.
type DriftLogger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// WatchArtifact watches the deployment artifact for changes and logs a
// warning when the file on disk no longer matches the running instance.
// The published configuration is never replaced; a jurisdiction change
// requires a restart so it passes the full validation pipeline.
//
// Blocks until ctx is cancelled.
func WatchArtifact(ctx context.Context, path string, logger DriftLogger) error {
	if logger == nil {
		logger = slog.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create artifact watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files via rename,
	// which would drop a watch on the file itself.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %q: %w", dir, err)
	}

	logger.Info("artifact drift watcher started", "path", path)

	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			logger.Info("artifact drift watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(driftDebounce)
				timerCh = timer.C
			} else {
				timer.Reset(driftDebounce)
			}

		case <-timerCh:
			timer = nil
			timerCh = nil
			logger.Warn("deployment artifact changed on disk; the running configuration no longer matches it, restart to apply",
				"path", path,
			)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("artifact watcher error", "error", err)
		}
	}
}
