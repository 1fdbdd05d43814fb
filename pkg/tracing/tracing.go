// Package tracing times operations and reports them through a logger.
package tracing

// Tracer starts spans.
type Tracer interface {
	StartSpan(operationName string) Span
}

// Span is a single timed operation. Finish must be called exactly once.
type Span interface {
	SetBaggageItem(key string, value any)
	Finish()
}
