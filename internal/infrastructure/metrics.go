package infrastructure

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PipelineMetrics collects per-run counters for a batch preparation job.
// Each run uses its own registry so nothing leaks into the default registerer.
type PipelineMetrics struct {
	registry *prometheus.Registry

	FilesLoaded  prometheus.Counter
	FilesFailed  prometheus.Counter
	RowsCombined prometheus.Gauge
	RowsDropped  prometheus.Gauge
	SplitRows    *prometheus.GaugeVec
	LastRunTime  prometheus.Gauge
	RunDuration  prometheus.Gauge
}

// NewPipelineMetrics creates and registers the preparation metrics
func NewPipelineMetrics(command string) *PipelineMetrics {
	registry := prometheus.NewRegistry()
	constLabels := prometheus.Labels{"command": command}

	m := &PipelineMetrics{
		registry: registry,
		FilesLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "velocity",
			Name:        "files_loaded_total",
			Help:        "Input files parsed successfully.",
			ConstLabels: constLabels,
		}),
		FilesFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "velocity",
			Name:        "files_failed_total",
			Help:        "Input files skipped because they could not be parsed.",
			ConstLabels: constLabels,
		}),
		RowsCombined: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "velocity",
			Name:        "rows_combined",
			Help:        "Rows in the combined dataset.",
			ConstLabels: constLabels,
		}),
		RowsDropped: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "velocity",
			Name:        "rows_dropped",
			Help:        "Rows dropped for missing feature or target values.",
			ConstLabels: constLabels,
		}),
		SplitRows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   "velocity",
			Name:        "split_rows",
			Help:        "Rows per split subset.",
			ConstLabels: constLabels,
		}, []string{"subset"}),
		LastRunTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "velocity",
			Name:        "last_run_timestamp_seconds",
			Help:        "Unix time the run finished.",
			ConstLabels: constLabels,
		}),
		RunDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "velocity",
			Name:        "run_duration_seconds",
			Help:        "Wall time of the run.",
			ConstLabels: constLabels,
		}),
	}

	registry.MustRegister(
		m.FilesLoaded,
		m.FilesFailed,
		m.RowsCombined,
		m.RowsDropped,
		m.SplitRows,
		m.LastRunTime,
		m.RunDuration,
	)

	return m
}

// Registry exposes the underlying registry, mainly for tests
func (m *PipelineMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Finish records the run duration and completion time
func (m *PipelineMetrics) Finish(started time.Time) {
	now := time.Now()
	m.RunDuration.Set(now.Sub(started).Seconds())
	m.LastRunTime.Set(float64(now.Unix()))
}

// WriteTextfile writes the metrics in Prometheus text format to path.
// An empty path is a no-op.
func (m *PipelineMetrics) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create metrics directory: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile %s: %w", path, err)
	}
	return nil
}
