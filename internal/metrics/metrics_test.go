// SPDX-License-Identifier: MIT

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Nutek/blender-export-svg/internal/metrics"
)

func scrape(t *testing.T) string {
	t.Helper()
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	promhttp.Handler().ServeHTTP(recorder, req)
	return recorder.Body.String()
}

func TestRecordExport(t *testing.T) {
	metrics.RecordExport("success", 0.25)
	metrics.RecordExport("error", 0.1)

	body := scrape(t)
	if !strings.Contains(body, "viewsvg_exports_total") {
		t.Error("expected viewsvg_exports_total metric to be present")
	}
	if !strings.Contains(body, `status="success"`) {
		t.Error("expected success outcome label in metrics output")
	}
	if !strings.Contains(body, `status="error"`) {
		t.Error("expected error outcome label in metrics output")
	}
	if !strings.Contains(body, "viewsvg_export_duration_seconds") {
		t.Error("expected duration histogram to be present")
	}
}

func TestRecordFrame(t *testing.T) {
	metrics.RecordFrame(120)

	body := scrape(t)
	if !strings.Contains(body, "viewsvg_frames_total") {
		t.Error("expected viewsvg_frames_total metric to be present")
	}
	if !strings.Contains(body, "viewsvg_faces_rendered_total") {
		t.Error("expected viewsvg_faces_rendered_total metric to be present")
	}
}

func TestGaugesAndCounters(t *testing.T) {
	metrics.RecordSceneObjects(7)
	metrics.IncWatchTrigger()

	body := scrape(t)
	if !strings.Contains(body, "viewsvg_scene_objects 7") {
		t.Error("expected scene objects gauge to read 7")
	}
	if !strings.Contains(body, "viewsvg_watch_triggers_total") {
		t.Error("expected watch trigger counter to be present")
	}
}
