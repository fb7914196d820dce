// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/Nutek/blender-export-svg/internal/jobs"
	"github.com/Nutek/blender-export-svg/internal/log"
)

// indexHTML is the whole preview UI: an image polling the status
// endpoint and reloading the document when a new export lands.
const indexHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>viewsvg preview</title>
<style>
body { margin: 0; font: 14px/1.4 system-ui, sans-serif; background: #1d1d1d; color: #ddd; }
header { display: flex; gap: 1em; align-items: baseline; padding: 8px 12px; background: #2a2a2a; }
header h1 { margin: 0; font-size: 16px; font-weight: 600; }
header button { font: inherit; }
#meta { color: #9a9; }
#meta.error { color: #e88; }
main { display: flex; justify-content: center; padding: 12px; }
img { max-width: 100%; background: #fff; box-shadow: 0 2px 12px rgba(0,0,0,.5); }
</style>
</head>
<body>
<header>
<h1>viewsvg</h1>
<button id="refresh" type="button">re-export</button>
<span id="meta">waiting for first export&hellip;</span>
</header>
<main><img id="doc" src="/svg" alt="exported document"></main>
<script>
var img = document.getElementById('doc');
var meta = document.getElementById('meta');
var lastRun = '';

function poll() {
  fetch('/status').then(function (res) {
    if (!res.ok) { return null; }
    return res.json();
  }).then(function (st) {
    if (!st) { return; }
    if (st.error) {
      meta.className = 'error';
      meta.textContent = 'export failed: ' + st.error;
      return;
    }
    meta.className = '';
    meta.textContent = st.objects + ' objects, ' + st.faces + ' faces, seed ' + st.seed;
    if (st.last_run && st.last_run !== lastRun) {
      lastRun = st.last_run;
      img.src = '/svg?t=' + Date.now();
    }
  }).catch(function () { /* server restarting; keep polling */ });
}

document.getElementById('refresh').addEventListener('click', function () {
  fetch('/refresh', { method: 'POST' }).then(poll);
});

setInterval(poll, 1000);
poll();
</script>
</body>
</html>
`

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}

// handleSVG serves the exported document. Never cached: the whole
// point is seeing the latest export.
func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	data, err := os.ReadFile(s.cfg.Out)
	if err != nil {
		if os.IsNotExist(err) {
			http.Error(w, "no document exported yet", http.StatusNotFound)
			return
		}
		log.WithComponentFromContext(r.Context(), "server").
			Error().Err(err).Msg("failed to read exported document")
		http.Error(w, "failed to read document", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(data)
}

type statusResponse struct {
	jobs.Status
	Version       string `json:"version"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{
		Status:        s.Status(),
		Version:       s.cfg.Version,
		UptimeSeconds: int64(time.Since(s.startTime).Seconds()),
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

type healthResponse struct {
	Status        string    `json:"status"`
	Version       string    `json:"version"`
	UptimeSeconds int64     `json:"uptime_seconds"`
	LastExport    time.Time `json:"last_export,omitzero"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	st := s.Status()

	status := "ok"
	if st.Error != "" {
		status = "degraded"
	}

	resp := healthResponse{
		Status:        status,
		Version:       s.cfg.Version,
		UptimeSeconds: int64(time.Since(s.startTime).Seconds()),
		LastExport:    st.LastRun,
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// handleRefresh re-exports the scene immediately. Concurrent refreshes
// are rejected instead of queued.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	logger := log.WithComponentFromContext(r.Context(), "server")

	if !s.refreshing.CompareAndSwap(false, true) {
		logger.Warn().
			Str("event", "refresh.conflict").
			Msg("export already in progress")
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Retry-After", "5")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error":  "conflict",
			"detail": "an export is already running",
		})
		return
	}
	defer s.refreshing.Store(false)

	// Independent context: the export must finish even when an
	// impatient client hangs up.
	jobCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	start := time.Now()
	st, err := s.exportFn(jobCtx, s.cfg)
	s.setStatus(st, err)

	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		// The detail is the product here: scene errors belong in the
		// browser where the user is iterating.
		logger.Error().
			Err(err).
			Str("event", "refresh.failed").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("manual export failed")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error":  "export_failed",
			"detail": err.Error(),
		})
		return
	}

	logger.Info().
		Str("event", "refresh.success").
		Int("objects", st.Objects).
		Int("faces", st.Faces).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("manual export completed")
	_ = json.NewEncoder(w).Encode(st)
}
