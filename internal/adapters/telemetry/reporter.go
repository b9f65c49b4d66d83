package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/melt/internal/core/ports"
)

// Reporter implements sdktrace.SpanProcessor and reports finished spans to the logger.
type Reporter struct {
	logger ports.Logger
}

// NewReporter returns a new Reporter.
func NewReporter(logger ports.Logger) *Reporter {
	return &Reporter{logger: logger}
}

// OnStart does nothing.
func (r *Reporter) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name and its duration at debug level.
func (r *Reporter) OnEnd(s sdktrace.ReadOnlySpan) {
	if !s.SpanContext().IsValid() {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)

	if s.Status().Code == codes.Error {
		r.logger.Debug(fmt.Sprintf("%s failed after %s", s.Name(), elapsed))
		return
	}
	r.logger.Debug(fmt.Sprintf("%s done in %s", s.Name(), elapsed))
}

// ForceFlush does nothing.
func (r *Reporter) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (r *Reporter) Shutdown(_ context.Context) error {
	return nil
}
