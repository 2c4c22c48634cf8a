// Package observability sets up OpenTelemetry tracing for the fitting
// pipeline.
package observability

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// TracerName is the instrumentation scope of pipeline spans.
const TracerName = "github.com/agbru/radiusfit/internal/pipeline"

// TracingConfig governs how tracing is initialised.
type TracingConfig struct {
	// Enabled turns on span export. When false a no-op tracer is returned.
	Enabled bool
	// ServiceName is recorded as the service.name resource attribute.
	ServiceName string
	// Writer receives the exported spans as JSON.
	Writer io.Writer
	// Pretty indents the exported JSON.
	Pretty bool
}

// InitTracing builds a tracer for the given configuration. The returned
// shutdown function flushes pending spans and must be called before exit.
func InitTracing(ctx context.Context, cfg TracingConfig) (trace.Tracer, func(context.Context) error, error) {
	if !cfg.Enabled {
		return noop.NewTracerProvider().Tracer(TracerName), func(context.Context) error { return nil }, nil
	}
	if cfg.Writer == nil {
		return nil, nil, fmt.Errorf("tracing enabled without a writer")
	}

	opts := []stdouttrace.Option{stdouttrace.WithWriter(cfg.Writer), stdouttrace.WithoutTimestamps()}
	if cfg.Pretty {
		opts = append(opts, stdouttrace.WithPrettyPrint())
	}
	exp, err := stdouttrace.New(opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("create stdout exporter: %w", err)
	}

	service := cfg.ServiceName
	if service == "" {
		service = "radiusfit"
	}
	res, err := resource.New(ctx, resource.WithAttributes(attribute.String("service.name", service)))
	if err != nil {
		return nil, nil, fmt.Errorf("build resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exp),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	return tp.Tracer(TracerName), tp.Shutdown, nil
}
