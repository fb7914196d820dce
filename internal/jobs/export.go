// SPDX-License-Identifier: MIT

// Package jobs runs the export operations behind the CLI and the
// preview server: rendering scenes to SVG documents, appending session
// layers, frame sequences, compression and opening the result.
package jobs

import (
	"context"
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/Nutek/blender-export-svg/internal/config"
	"github.com/Nutek/blender-export-svg/internal/log"
	"github.com/Nutek/blender-export-svg/internal/metrics"
	"github.com/Nutek/blender-export-svg/internal/render"
	"github.com/Nutek/blender-export-svg/internal/scene"
	"github.com/Nutek/blender-export-svg/internal/scenefile"
	"github.com/Nutek/blender-export-svg/internal/style"
)

// Status represents the outcome of the last export run.
type Status struct {
	LastRun time.Time `json:"last_run"`
	Scene   string    `json:"scene"`
	Output  string    `json:"output"`
	Frames  int       `json:"frames"`
	Objects int       `json:"objects"`
	Faces   int       `json:"faces"`
	Seed    int64     `json:"seed"`
	Error   string    `json:"error,omitempty"`
}

// Export performs one export run: load the scene, render the frame or
// frame sequence, and write (or append to) the output document.
func Export(ctx context.Context, cfg config.Config) (*Status, error) {
	started := time.Now()
	status, err := run(ctx, cfg)
	if err != nil {
		metrics.RecordExport("error", time.Since(started).Seconds())
		return nil, err
	}
	metrics.RecordExport("success", time.Since(started).Seconds())
	return status, nil
}

func run(ctx context.Context, cfg config.Config) (*Status, error) {
	logger := log.WithComponentFromContext(ctx, "jobs")
	logger.Info().
		Str("event", "export.start").
		Str("scene", cfg.Scene).
		Str("out", cfg.Out).
		Str("frames", cfg.Frames.String()).
		Msg("starting export")

	file, err := scenefile.Load(cfg.Scene)
	if err != nil {
		return nil, fmt.Errorf("load scene: %w", err)
	}
	sc := file.Scene
	if cfg.Width > 0 {
		sc.Camera.Width = cfg.Width
	}
	if cfg.Height > 0 {
		sc.Camera.Height = cfg.Height
	}
	sc.Camera.UpdateMatrix()

	// A bisect declaration in the scene document names the synthesized
	// plane, which wins over the configured object name.
	st := cfg.Style
	if file.Bisect != "" {
		st.BisectObject = file.Bisect
	}

	status := &Status{LastRun: time.Now(), Scene: cfg.Scene, Output: cfg.Out}
	if cfg.Frames.Active() {
		err = runSequence(ctx, cfg, file, st, status, logger)
	} else {
		err = runSingle(ctx, cfg, sc, st, status, logger)
	}
	if err != nil {
		return nil, err
	}

	metrics.RecordSceneObjects(status.Objects)
	if status.Objects == 0 {
		logger.Warn().
			Str("event", "export.empty").
			Msg("no selected visible objects; the session layer is empty")
	}
	logger.Info().
		Str("event", "export.success").
		Int("frames", status.Frames).
		Int("objects", status.Objects).
		Int("faces", status.Faces).
		Msg("export completed")
	return status, nil
}

func runSingle(ctx context.Context, cfg config.Config, sc *scene.Scene, st style.Settings, status *Status, logger zerolog.Logger) error {
	seed := frameSeed(&st)
	stats, err := renderFrame(ctx, sc, &st, seed, cfg.Out, cfg.Append, cfg.Frames.Start, logger)
	if err != nil {
		return err
	}
	status.Frames = 1
	status.Objects = stats.Objects
	status.Faces = stats.Faces
	status.Seed = seed
	return nil
}

// runSequence renders the half-open frame range to numbered documents.
// With a fixed seed every frame is independent of the others, so they
// render concurrently; otherwise seeds are drawn in frame order and
// the frames render sequentially to keep the draws reproducible.
func runSequence(ctx context.Context, cfg config.Config, file *scenefile.File, st style.Settings, status *Status, logger zerolog.Logger) error {
	stem, ext := splitOut(cfg.Out)
	count := cfg.Frames.Count()
	stats := make([]render.Stats, count)

	if st.FixedSeed {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i := 0; i < count; i++ {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				n := cfg.Frames.Start + i
				view := frameView(file, i)
				frameStyle := st
				s, err := renderFrame(gctx, view, &frameStyle, st.Seed, framePath(stem, ext, n), false, n, logger)
				if err != nil {
					return err
				}
				stats[i] = s
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		status.Seed = st.Seed
	} else {
		for i := 0; i < count; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			n := cfg.Frames.Start + i
			seed := rand.Int64N(10000)
			view := frameView(file, i)
			frameStyle := st
			s, err := renderFrame(ctx, view, &frameStyle, seed, framePath(stem, ext, n), false, n, logger)
			if err != nil {
				return err
			}
			stats[i] = s
			status.Seed = seed
		}
	}

	status.Frames = count
	for _, s := range stats {
		status.Faces += s.Faces
		if s.Objects > status.Objects {
			status.Objects = s.Objects
		}
	}
	return nil
}

// frameView returns a scene view for the i-th frame of a sequence:
// objects shared, camera copied and orbited by the turntable step.
func frameView(file *scenefile.File, i int) *scene.Scene {
	view := *file.Scene
	view.Camera.Orbit(float32(file.Turntable) * float32(i))
	return &view
}

func renderFrame(ctx context.Context, sc *scene.Scene, st *style.Settings, seed int64, path string, appendTo bool, frame int, logger zerolog.Logger) (render.Stats, error) {
	begin := time.Now()
	doc, stats := render.Frame(sc, st, render.Options{Seed: seed, Stamp: time.Now()})

	var err error
	if appendTo {
		err = appendLayer(ctx, path, doc)
	} else {
		err = writeDocument(ctx, path, doc)
	}
	if err != nil {
		return stats, err
	}

	metrics.RecordFrame(stats.Faces)
	logger.Info().
		Str("event", "frame.write").
		Int("frame", frame).
		Int64("seed", seed).
		Int("objects", stats.Objects).
		Int("faces", stats.Faces).
		Float64("seconds", time.Since(begin).Seconds()).
		Str("path", path).
		Msg("frame written")
	return stats, nil
}

// frameSeed picks the seed for one frame: the configured seed when it
// is fixed, a fresh draw from [0, 10000) otherwise.
func frameSeed(st *style.Settings) int64 {
	if st.FixedSeed {
		return st.Seed
	}
	return rand.Int64N(10000)
}

func splitOut(out string) (stem, ext string) {
	ext = filepath.Ext(out)
	return strings.TrimSuffix(out, ext), ext
}

func framePath(stem, ext string, frame int) string {
	return fmt.Sprintf("%s_%04d%s", stem, frame, ext)
}
