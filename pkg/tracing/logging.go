package tracing

import (
	"context"
	"log/slog"
	"slices"
	"time"
)

var (
	_ Tracer = LoggingTracer{}
	_ Span   = (*loggingSpan)(nil)
)

// LoggingTracer reports finished spans as debug log records.
type LoggingTracer struct {
	logger *slog.Logger
}

func NewLoggingTracer(logger *slog.Logger) *LoggingTracer {
	return &LoggingTracer{
		logger: logger,
	}
}

//nolint:ireturn
func (l LoggingTracer) StartSpan(operationName string) Span {
	return &loggingSpan{
		logger:        l.logger,
		operationName: operationName,
		baggage:       make(map[string]any),
		start:         time.Now(),
	}
}

type loggingSpan struct {
	start         time.Time
	logger        *slog.Logger
	baggage       map[string]any
	operationName string
}

func (s *loggingSpan) Finish() {
	if !s.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	attrs := baggageToAttrs(s.baggage)
	attrs = append(attrs,
		slog.String("operation_name", s.operationName),
		slog.Float64("time_ms", time.Since(s.start).Seconds()*1e3),
	)
	s.logger.LogAttrs(context.Background(), slog.LevelDebug, "trace", attrs...)
}

func (s *loggingSpan) SetBaggageItem(key string, value any) {
	s.baggage[key] = value
}

// baggageToAttrs returns the baggage as attributes sorted by key.
func baggageToAttrs(baggage map[string]any) []slog.Attr {
	keys := make([]string, 0, len(baggage))
	for k := range baggage {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	result := make([]slog.Attr, 0, len(baggage)+2)
	for _, k := range keys {
		result = append(result, slog.Any(k, baggage[k]))
	}

	return result
}
