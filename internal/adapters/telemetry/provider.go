package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/cargojni/internal/core/ports"
)

// OTelTracer is a concrete implementation of ports.Tracer using OpenTelemetry.
// Span output is streamed to the renderer, if one is set.
type OTelTracer struct {
	tracer   trace.Tracer
	renderer ports.Renderer
}

// Option configures an OTelTracer.
type Option func(*tracerOptions)

type tracerOptions struct {
	provider trace.TracerProvider
	renderer ports.Renderer
}

// WithProvider selects the tracer provider instead of the global one.
func WithProvider(tp trace.TracerProvider) Option {
	return func(o *tracerOptions) { o.provider = tp }
}

// WithRenderer streams span output to r.
func WithRenderer(r ports.Renderer) Option {
	return func(o *tracerOptions) { o.renderer = r }
}

// NewOTelTracer creates a new OTelTracer with the given instrumentation name.
func NewOTelTracer(name string, opts ...Option) *OTelTracer {
	o := tracerOptions{provider: otel.GetTracerProvider()}
	for _, opt := range opts {
		opt(&o)
	}
	return &OTelTracer{
		tracer:   o.provider.Tracer(name),
		renderer: o.renderer,
	}
}

// Start creates a new span.
func (t *OTelTracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	attrs := make([]attribute.KeyValue, 0, len(cfg.Attributes))
	for k, v := range cfg.Attributes {
		attrs = append(attrs, attribute.String(k, v))
	}
	ctx, span := t.tracer.Start(ctx, name, trace.WithAttributes(attrs...))

	var batcher *Batcher
	if t.renderer != nil {
		id := span.SpanContext().SpanID().String()
		renderer := t.renderer
		batcher = NewBatcher(0, 0, func(data []byte) {
			renderer.OnTaskLog(id, data)
		})
	}

	return ctx, &OTelSpan{span: span, batcher: batcher}
}

// EmitPlan records the planned targets on the current span and tells the renderer.
func (t *OTelTracer) EmitPlan(ctx context.Context, targets []string) {
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.AddEvent("plan_emitted", trace.WithAttributes(
			attribute.StringSlice("targets", targets),
		))
	}

	if t.renderer != nil {
		t.renderer.OnPlanEmit(targets)
	}
}

// OTelSpan is a concrete implementation of ports.Span using OpenTelemetry.
type OTelSpan struct {
	span    trace.Span
	batcher *Batcher
}

// End completes the span. Buffered output is flushed first so the renderer
// sees it before the completion event.
func (s *OTelSpan) End() {
	if s.batcher != nil {
		_ = s.batcher.Close()
	}
	s.span.End()
}

// RecordError records an error for the span.
func (s *OTelSpan) RecordError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// SetAttribute adds a key-value pair to the span.
func (s *OTelSpan) SetAttribute(key string, value any) {
	s.span.SetAttributes(toAttribute(key, value))
}

// SpanID returns the hex id the renderer knows this span by.
func (s *OTelSpan) SpanID() string {
	return s.span.SpanContext().SpanID().String()
}

func toAttribute(key string, value any) attribute.KeyValue {
	switch v := value.(type) {
	case string:
		return attribute.String(key, v)
	case int:
		return attribute.Int(key, v)
	case bool:
		return attribute.Bool(key, v)
	case []string:
		return attribute.StringSlice(key, v)
	case fmt.Stringer:
		return attribute.String(key, v.String())
	default:
		return attribute.String(key, fmt.Sprint(v))
	}
}

// Write satisfies io.Writer by streaming to the renderer or adding a log event to the span.
func (s *OTelSpan) Write(p []byte) (n int, err error) {
	if s.batcher != nil {
		return s.batcher.Write(p)
	}
	s.span.AddEvent("log", trace.WithAttributes(attribute.String("message", string(p))))
	return len(p), nil
}
