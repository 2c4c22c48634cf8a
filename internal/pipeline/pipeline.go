package pipeline

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/agbru/radiusfit/internal/ellipsoid"
	apperrors "github.com/agbru/radiusfit/internal/errors"
	"github.com/agbru/radiusfit/internal/logging"
	"github.com/agbru/radiusfit/internal/metrics"
	"github.com/agbru/radiusfit/internal/observability"
	"github.com/agbru/radiusfit/internal/polyfit"
	"github.com/agbru/radiusfit/internal/quality"
	"github.com/agbru/radiusfit/internal/sampling"
)

// Stage names, used for spans, logs and the stage duration histogram.
const (
	StageValidate = "validate"
	StageSample   = "sample"
	StageFit      = "fit"
	StageEvaluate = "evaluate"
)

// Request is the full input of a run.
type Request struct {
	Ellipsoid ellipsoid.Parameters
	Samples   int
	Degree    int
}

// DefaultRequest returns the WGS84, 200 sample, degree 4 configuration.
func DefaultRequest() Request {
	return Request{
		Ellipsoid: ellipsoid.WGS84,
		Samples:   sampling.DefaultCount,
		Degree:    polyfit.DefaultDegree,
	}
}

// Validate checks every parameter of the request. Parameter errors are
// reported before the sample/degree relationship is examined.
func (r Request) Validate() error {
	if err := r.Ellipsoid.Validate(); err != nil {
		return err
	}
	if r.Samples < sampling.MinCount {
		return apperrors.NewInvalidParameterError("sample_count", r.Samples, "must be at least %d", sampling.MinCount)
	}
	return polyfit.CheckDegree(r.Samples, r.Degree)
}

// StageTiming is the wall time of one stage.
type StageTiming struct {
	Stage    string
	Duration time.Duration
}

// Outcome is the result of a successful run.
type Outcome struct {
	Request Request
	Fit     polyfit.Result
	Report  quality.Report
	Stages  []StageTiming
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used for stage diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithMetrics attaches a Prometheus collector.
func WithMetrics(c *metrics.FitCollector) Option {
	return func(r *Runner) { r.metrics = c }
}

// WithTracer sets the tracer used for stage spans.
func WithTracer(t trace.Tracer) Option {
	return func(r *Runner) { r.tracer = t }
}

// Runner executes the pipeline stages in order.
type Runner struct {
	logger  logging.Logger
	metrics *metrics.FitCollector
	tracer  trace.Tracer
}

// NewRunner creates a Runner. Without options it logs nothing, records no
// metrics and creates no spans.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logging.Nop()
	}
	if r.tracer == nil {
		r.tracer = noop.NewTracerProvider().Tracer(observability.TracerName)
	}
	return r
}

// Run validates the request, generates the samples, fits the polynomial and
// evaluates its error. On failure no partial outcome is returned.
func (r *Runner) Run(ctx context.Context, req Request) (Outcome, error) {
	ctx, span := r.tracer.Start(ctx, "pipeline", trace.WithAttributes(
		attribute.Float64("ellipsoid.equatorial_m", req.Ellipsoid.Equatorial),
		attribute.Float64("ellipsoid.polar_m", req.Ellipsoid.Polar),
		attribute.Int("fit.samples", req.Samples),
		attribute.Int("fit.degree", req.Degree),
	))
	defer span.End()

	out, err := r.run(ctx, req)
	r.metrics.RecordOutcome(outcomeLabel(err))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.logger.Debug("fit aborted", logging.Err(err),
			logging.Int("samples", req.Samples), logging.Int("degree", req.Degree))
		return Outcome{}, err
	}
	return out, nil
}

func (r *Runner) run(ctx context.Context, req Request) (Outcome, error) {
	out := Outcome{Request: req}

	if err := r.stage(ctx, &out, StageValidate, req.Validate); err != nil {
		return Outcome{}, err
	}

	var set *sampling.Set
	err := r.stage(ctx, &out, StageSample, func() (err error) {
		set, err = sampling.Generate(req.Samples, req.Ellipsoid)
		return err
	})
	if err != nil {
		return Outcome{}, err
	}

	err = r.stage(ctx, &out, StageFit, func() (err error) {
		out.Fit, err = polyfit.Fit(set, req.Degree)
		return err
	})
	if err != nil {
		return Outcome{}, err
	}
	if out.Fit.Warning != nil {
		r.logger.Warn(out.Fit.Warning.Error(),
			logging.Float64("condition", out.Fit.Condition), logging.Int("degree", req.Degree))
		trace.SpanFromContext(ctx).AddEvent("numerical instability",
			trace.WithAttributes(attribute.Float64("fit.condition", out.Fit.Condition)))
	}

	_ = r.stage(ctx, &out, StageEvaluate, func() error {
		out.Report = quality.Evaluate(set, out.Fit.Poly)
		return nil
	})

	r.metrics.RecordFit(req.Samples, req.Degree, out.Fit.Condition,
		out.Report.MaxAbs, out.Report.RMS, out.Fit.Warning != nil)
	r.logger.Info("fit complete",
		logging.Float64("max_abs_m", out.Report.MaxAbs),
		logging.Float64("rms_m", out.Report.RMS),
		logging.Float64("condition", out.Fit.Condition))
	return out, nil
}

// stage runs fn inside a span, timing it into out.Stages and the collector.
func (r *Runner) stage(ctx context.Context, out *Outcome, name string, fn func() error) error {
	_, span := r.tracer.Start(ctx, name)
	defer span.End()

	start := time.Now()
	err := fn()
	elapsed := time.Since(start)

	out.Stages = append(out.Stages, StageTiming{Stage: name, Duration: elapsed})
	r.metrics.ObserveStage(name, elapsed)
	r.logger.Debug("stage finished", logging.String("stage", name), logging.String("elapsed", elapsed.String()))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func outcomeLabel(err error) string {
	switch apperrors.ExitCodeFor(err) {
	case apperrors.ExitSuccess:
		return metrics.OutcomeSuccess
	case apperrors.ExitErrorConfig:
		return metrics.OutcomeInvalid
	case apperrors.ExitErrorUnderdetermined:
		return metrics.OutcomeUnderdetermined
	default:
		return metrics.OutcomeError
	}
}

// Run executes req with a default Runner.
func Run(ctx context.Context, req Request, opts ...Option) (Outcome, error) {
	return NewRunner(opts...).Run(ctx, req)
}
