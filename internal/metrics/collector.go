// Package metrics records the outcome of fitting runs as Prometheus metrics.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Run outcomes used as the "outcome" label of radiusfit_runs_total.
const (
	OutcomeSuccess         = "success"
	OutcomeInvalid         = "invalid"
	OutcomeUnderdetermined = "underdetermined"
	OutcomeError           = "error"
)

// FitCollector bundles the Prometheus metrics for a fitting run. All methods
// are safe to call on a nil collector.
type FitCollector struct {
	gatherer prometheus.Gatherer

	Runs          *prometheus.CounterVec
	StageDuration *prometheus.HistogramVec
	Warnings      prometheus.Counter

	MaxAbsError prometheus.Gauge
	RMSError    prometheus.Gauge
	Condition   prometheus.Gauge
	Degree      prometheus.Gauge
	Samples     prometheus.Gauge

	HeapAlloc  prometheus.Gauge
	TotalAlloc prometheus.Gauge
	GCCycles   prometheus.Gauge
}

// NewFitCollector registers the fit metrics against reg. A nil reg gets a
// fresh private registry so runs never touch the global one.
func NewFitCollector(reg *prometheus.Registry) (*FitCollector, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	c := &FitCollector{
		gatherer: reg,
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "radiusfit_runs_total",
			Help: "Fitting runs, labeled by outcome.",
		}, []string{"outcome"}),
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "radiusfit_stage_duration_seconds",
			Help:    "Wall time of each pipeline stage.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"stage"}),
		Warnings: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "radiusfit_instability_warnings_total",
			Help: "Fits whose design matrix exceeded the condition threshold.",
		}),
		MaxAbsError: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "radiusfit_max_abs_error_meters",
			Help: "Maximum absolute residual of the last fit.",
		}),
		RMSError: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "radiusfit_rms_error_meters",
			Help: "Root-mean-square residual of the last fit.",
		}),
		Condition: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "radiusfit_design_condition_number",
			Help: "2-norm condition number of the last design matrix.",
		}),
		Degree: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "radiusfit_degree",
			Help: "Polynomial degree of the last fit.",
		}),
		Samples: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "radiusfit_samples",
			Help: "Sample count of the last fit.",
		}),
		HeapAlloc: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "radiusfit_heap_alloc_bytes",
			Help: "Heap bytes in use after the run.",
		}),
		TotalAlloc: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "radiusfit_total_alloc_bytes",
			Help: "Cumulative bytes allocated by the run.",
		}),
		GCCycles: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "radiusfit_gc_cycles",
			Help: "Completed GC cycles after the run.",
		}),
	}

	for name, col := range map[string]prometheus.Collector{
		"radiusfit_runs_total":                 c.Runs,
		"radiusfit_stage_duration_seconds":     c.StageDuration,
		"radiusfit_instability_warnings_total": c.Warnings,
		"radiusfit_max_abs_error_meters":       c.MaxAbsError,
		"radiusfit_rms_error_meters":           c.RMSError,
		"radiusfit_design_condition_number":    c.Condition,
		"radiusfit_degree":                     c.Degree,
		"radiusfit_samples":                    c.Samples,
		"radiusfit_heap_alloc_bytes":           c.HeapAlloc,
		"radiusfit_total_alloc_bytes":          c.TotalAlloc,
		"radiusfit_gc_cycles":                  c.GCCycles,
	} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("register %s: %w", name, err)
		}
	}
	return c, nil
}

// ObserveStage records the duration of one pipeline stage.
func (c *FitCollector) ObserveStage(stage string, d time.Duration) {
	if c == nil {
		return
	}
	c.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// RecordFit stores the figures of a completed fit.
func (c *FitCollector) RecordFit(samples, degree int, condition, maxAbs, rms float64, warned bool) {
	if c == nil {
		return
	}
	c.Samples.Set(float64(samples))
	c.Degree.Set(float64(degree))
	c.Condition.Set(condition)
	c.MaxAbsError.Set(maxAbs)
	c.RMSError.Set(rms)
	if warned {
		c.Warnings.Inc()
	}
}

// RecordOutcome counts a finished run.
func (c *FitCollector) RecordOutcome(outcome string) {
	if c == nil {
		return
	}
	c.Runs.WithLabelValues(outcome).Inc()
}

// WriteText writes every registered metric in the Prometheus text
// exposition format.
func (c *FitCollector) WriteText(w io.Writer) error {
	if c == nil {
		return nil
	}
	families, err := c.gatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
