// SPDX-License-Identifier: MIT

// Package metrics holds the exporter's Prometheus collectors, exposed
// by the preview server's /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	exportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "viewsvg_exports_total",
		Help: "Export runs by outcome",
	}, []string{"status"}) // status=success|error

	exportDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "viewsvg_export_duration_seconds",
		Help:    "Wall time of a full export run",
		Buckets: prometheus.DefBuckets,
	})

	framesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "viewsvg_frames_total",
		Help: "Frames rendered across all exports",
	})

	facesRenderedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "viewsvg_faces_rendered_total",
		Help: "Faces emitted across all rendered frames",
	})

	sceneObjects = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "viewsvg_scene_objects",
		Help: "Objects in the scene of the last export",
	})

	watchTriggersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "viewsvg_watch_triggers_total",
		Help: "Re-exports triggered by scene file changes",
	})
)

// RecordExport counts a finished export run and its duration.
func RecordExport(status string, seconds float64) {
	exportsTotal.WithLabelValues(status).Inc()
	exportDurationSeconds.Observe(seconds)
}

// RecordFrame counts one rendered frame and the faces it emitted.
func RecordFrame(faces int) {
	framesTotal.Inc()
	facesRenderedTotal.Add(float64(faces))
}

func RecordSceneObjects(n int) { sceneObjects.Set(float64(n)) }

func IncWatchTrigger() { watchTriggersTotal.Inc() }
