// SPDX-License-Identifier: MIT

// Package watch re-runs the export whenever the scene file changes,
// the engine behind watch mode and the preview server's live reload.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/Nutek/blender-export-svg/internal/config"
	"github.com/Nutek/blender-export-svg/internal/jobs"
	"github.com/Nutek/blender-export-svg/internal/log"
	"github.com/Nutek/blender-export-svg/internal/metrics"
)

// ExportFunc runs one export; jobs.Export outside of tests.
type ExportFunc func(context.Context, config.Config) (*jobs.Status, error)

// Watcher debounces scene file changes into export runs.
type Watcher struct {
	Config config.Config

	// Export defaults to jobs.Export.
	Export ExportFunc

	// OnExport, when set, receives the result of every run.
	OnExport func(*jobs.Status, error)
}

func New(cfg config.Config) *Watcher {
	return &Watcher{Config: cfg, Export: jobs.Export}
}

// Run exports once, then blocks re-exporting on changes until the
// context is cancelled. Export failures are logged, not fatal: the
// last good document stays in place and the watch continues.
func (w *Watcher) Run(ctx context.Context) error {
	logger := log.WithComponentFromContext(ctx, "watch")
	export := w.Export
	if export == nil {
		export = jobs.Export
	}

	scenePath := filepath.Clean(w.Config.Scene)
	dir := filepath.Dir(scenePath)

	// Watch the directory, not the file: editors replace files by
	// rename, which silently kills a plain file watch.
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() {
		if cerr := watcher.Close(); cerr != nil {
			logger.Debug().Err(cerr).Msg("close watcher")
		}
	}()
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch directory %s: %w", dir, err)
	}

	settle := time.Duration(w.Config.DebounceMS) * time.Millisecond
	if settle <= 0 {
		settle = 500 * time.Millisecond
	}
	limiter := rate.NewLimiter(rate.Every(settle), 1)

	logger.Info().
		Str("event", "watch.start").
		Str("scene", w.Config.Scene).
		Dur("settle", settle).
		Msg("watching scene for changes")

	w.runExport(ctx, export, logger)

	timer := time.NewTimer(settle)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Str("event", "watch.stop").Msg("watcher stopped")
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watch events channel closed")
			}
			if !w.relevant(event.Name, scenePath) {
				continue
			}
			switch {
			case event.Has(fsnotify.Write) || event.Has(fsnotify.Create):
				logger.Debug().
					Str("event", "watch.change").
					Str("path", event.Name).
					Str("op", event.Op.String()).
					Msg("scene change detected")
				timer.Reset(settle)
			case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
				logger.Debug().
					Str("event", "watch.gone").
					Str("path", event.Name).
					Msg("scene file moved away; waiting for recreation")
			}

		case <-timer.C:
			if !limiter.Allow() {
				// pace back-to-back runs; the change stays pending
				timer.Reset(settle)
				continue
			}
			metrics.IncWatchTrigger()
			w.runExport(ctx, export, logger)

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watch errors channel closed")
			}
			logger.Warn().Err(err).Str("event", "watch.error").Msg("watcher error")
		}
	}
}

// relevant reports whether a change at name should trigger a run: the
// scene document itself or geometry it references, never the exporter's
// own output.
func (w *Watcher) relevant(name, scenePath string) bool {
	clean := filepath.Clean(name)
	if clean == filepath.Clean(w.Config.Out) {
		return false
	}
	if clean == scenePath {
		return true
	}
	switch strings.ToLower(filepath.Ext(clean)) {
	case ".obj", ".mtl":
		return true
	}
	return false
}

func (w *Watcher) runExport(ctx context.Context, export ExportFunc, logger zerolog.Logger) {
	status, err := export(ctx, w.Config)
	if err != nil {
		logger.Error().
			Err(err).
			Str("event", "watch.export_failed").
			Msg("export failed; keeping the last good document")
	}
	if w.OnExport != nil {
		w.OnExport(status, err)
	}
}
