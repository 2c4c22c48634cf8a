package observability

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestInitTracing_Disabled(t *testing.T) {
	tracer, shutdown, err := InitTracing(context.Background(), TracingConfig{})
	if err != nil {
		t.Fatalf("InitTracing: %v", err)
	}
	_, span := tracer.Start(context.Background(), "noop")
	if span.SpanContext().IsValid() {
		t.Error("disabled tracing should produce invalid (no-op) span contexts")
	}
	span.End()
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown: %v", err)
	}
}

func TestInitTracing_RequiresWriter(t *testing.T) {
	if _, _, err := InitTracing(context.Background(), TracingConfig{Enabled: true}); err == nil {
		t.Fatal("expected an error when no writer is configured")
	}
}

func TestInitTracing_ExportsSpans(t *testing.T) {
	var buf bytes.Buffer
	tracer, shutdown, err := InitTracing(context.Background(), TracingConfig{
		Enabled:     true,
		ServiceName: "radiusfit-test",
		Writer:      &buf,
	})
	if err != nil {
		t.Fatalf("InitTracing: %v", err)
	}

	ctx, parent := tracer.Start(context.Background(), "pipeline")
	_, child := tracer.Start(ctx, "fit")
	child.End()
	parent.End()

	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"Name":"pipeline"`, `"Name":"fit"`, "radiusfit-test"} {
		if !strings.Contains(out, want) {
			t.Errorf("exported spans should contain %q, got: %s", want, out)
		}
	}
}
