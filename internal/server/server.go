// SPDX-License-Identifier: MIT

// Package server hosts the live preview: a small HTTP server that
// serves the exported document and re-exports the scene on demand or
// whenever the scene file changes.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Nutek/blender-export-svg/internal/config"
	"github.com/Nutek/blender-export-svg/internal/jobs"
	"github.com/Nutek/blender-export-svg/internal/log"
	"github.com/Nutek/blender-export-svg/internal/watch"
)

// Server is the preview server. The configuration is fixed at
// construction; the mutex guards the last export status and the bound
// address.
type Server struct {
	mu         sync.RWMutex
	refreshing atomic.Bool // serialize manual refreshes
	cfg        config.Config
	status     jobs.Status
	addr       string
	startTime  time.Time

	// exportFn allows tests to stub the export; defaults to jobs.Export.
	exportFn watch.ExportFunc
	watcher  *watch.Watcher
}

// New creates a preview server for cfg with a scene watcher feeding
// the status endpoint.
func New(cfg config.Config) *Server {
	s := &Server{
		cfg:       cfg,
		startTime: time.Now(),
		exportFn:  jobs.Export,
	}
	w := watch.New(cfg)
	w.OnExport = s.setStatus
	s.watcher = w
	return s
}

// setStatus records the outcome of an export run. A failed run keeps
// the last good numbers and stores the error alongside them.
func (s *Server) setStatus(st *jobs.Status, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status.Error = err.Error()
		return
	}
	s.status = *st
}

// Status returns the last recorded export status.
func (s *Server) Status() jobs.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Addr returns the bound listen address once Run is serving. With a
// ":0" listen address this is the only way to learn the port.
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.addr
}

// Run binds the listen address and serves until ctx is cancelled,
// supervising the HTTP server and the scene watcher together. On a
// clean shutdown it returns ctx.Err().
func (s *Server) Run(ctx context.Context) error {
	logger := log.WithComponentFromContext(ctx, "server")

	if s.cfg.Frames.Active() {
		return errors.New("the preview serves a single frame; drop the frame range")
	}

	ln, err := net.Listen("tcp", s.cfg.Listen)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Listen, err)
	}
	s.mu.Lock()
	s.addr = ln.Addr().String()
	addr := s.addr
	s.mu.Unlock()

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info().
		Str("event", "server.start").
		Str("listen", addr).
		Str("scene", s.cfg.Scene).
		Msg("preview server listening")

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.watcher.Run(gctx)
	})

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info().Str("event", "server.stop").Msg("shutting down preview server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
