package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.trai.ch/cargojni/internal/core/ports"
	"go.trai.ch/zerr"
)

// Bridge is an sdktrace.SpanProcessor that reports target spans to a Renderer.
type Bridge struct {
	renderer ports.Renderer
}

// NewBridge returns a Bridge reporting to renderer.
func NewBridge(renderer ports.Renderer) *Bridge {
	return &Bridge{renderer: renderer}
}

// NewProvider creates a tracer provider that reports every span to renderer.
// Spans are processed synchronously, so the renderer sees them in order.
func NewProvider(renderer ports.Renderer) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(NewBridge(renderer)))
}

// NewDiscardTracer returns a tracer whose spans go nowhere.
func NewDiscardTracer() *OTelTracer {
	return NewOTelTracer("discard", WithProvider(noop.NewTracerProvider()))
}

// OnStart implements sdktrace.SpanProcessor.
func (b *Bridge) OnStart(parent context.Context, s sdktrace.ReadWriteSpan) {
	id, ok := spanID(s.SpanContext())
	if !ok || b.renderer == nil {
		return
	}
	parentID, _ := spanID(trace.SpanContextFromContext(parent))
	b.renderer.OnTaskStart(id, parentID, s.Name(), s.StartTime())
}

// OnEnd implements sdktrace.SpanProcessor.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	id, ok := spanID(s.SpanContext())
	if !ok || b.renderer == nil {
		return
	}
	b.renderer.OnTaskComplete(id, s.EndTime(), spanError(s))
}

// ForceFlush implements sdktrace.SpanProcessor. Nothing is buffered.
func (*Bridge) ForceFlush(context.Context) error { return nil }

// Shutdown implements sdktrace.SpanProcessor.
func (*Bridge) Shutdown(context.Context) error { return nil }

func spanID(sc trace.SpanContext) (string, bool) {
	if !sc.IsValid() {
		return "", false
	}
	return sc.SpanID().String(), true
}

func spanError(s sdktrace.ReadOnlySpan) error {
	status := s.Status()
	if status.Code != codes.Error {
		return nil
	}
	if status.Description == "" {
		return zerr.New(s.Name() + " failed")
	}
	return zerr.New(status.Description)
}
