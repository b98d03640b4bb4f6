package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records configuration resolution metrics.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must return quickly; recording happens on the lookup path.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordLookup records one TryGet through a resolution layer.
	RecordLookup(ctx context.Context, key string, found bool, duration time.Duration, err error)

	// RecordCycle records a placeholder resolution cycle for key.
	RecordCycle(ctx context.Context, key string)

	// RecordDecrypt records one decryption attempt for key.
	RecordDecrypt(ctx context.Context, key string, duration time.Duration, err error)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	meter           metric.Meter
	lookupCount     metric.Int64Counter
	lookupErrors    metric.Int64Counter
	lookupDuration  metric.Float64Histogram
	cycleCount      metric.Int64Counter
	decryptCount    metric.Int64Counter
	decryptErrors   metric.Int64Counter
	decryptDuration metric.Float64Histogram
}

// NewMetrics creates a Metrics instance recording through meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	lookupCount, err := meter.Int64Counter(
		"config.lookup.total",
		metric.WithDescription("Total number of configuration lookups"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}

	lookupErrors, err := meter.Int64Counter(
		"config.lookup.errors",
		metric.WithDescription("Total number of configuration lookup errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	lookupDuration, err := meter.Float64Histogram(
		"config.lookup.duration_us",
		metric.WithDescription("Configuration lookup duration in microseconds"),
		metric.WithUnit("us"),
	)
	if err != nil {
		return nil, err
	}

	cycleCount, err := meter.Int64Counter(
		"config.resolve.cycles",
		metric.WithDescription("Total number of placeholder resolution cycles detected"),
		metric.WithUnit("{cycle}"),
	)
	if err != nil {
		return nil, err
	}

	decryptCount, err := meter.Int64Counter(
		"config.decrypt.total",
		metric.WithDescription("Total number of value decryption attempts"),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		return nil, err
	}

	decryptErrors, err := meter.Int64Counter(
		"config.decrypt.errors",
		metric.WithDescription("Total number of value decryption failures"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	decryptDuration, err := meter.Float64Histogram(
		"config.decrypt.duration_us",
		metric.WithDescription("Value decryption duration in microseconds"),
		metric.WithUnit("us"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		meter:           meter,
		lookupCount:     lookupCount,
		lookupErrors:    lookupErrors,
		lookupDuration:  lookupDuration,
		cycleCount:      cycleCount,
		decryptCount:    decryptCount,
		decryptErrors:   decryptErrors,
		decryptDuration: decryptDuration,
	}, nil
}

// RecordLookup records one lookup. The key travels as an attribute; values
// never do.
func (m *metricsImpl) RecordLookup(ctx context.Context, key string, found bool, duration time.Duration, err error) {
	opt := metric.WithAttributes(
		attribute.String("config.key", key),
		attribute.Bool("config.found", found),
	)

	m.lookupCount.Add(ctx, 1, opt)
	if err != nil {
		m.lookupErrors.Add(ctx, 1, opt)
	}
	m.lookupDuration.Record(ctx, float64(duration.Microseconds()), opt)
}

// RecordCycle records one detected resolution cycle.
func (m *metricsImpl) RecordCycle(ctx context.Context, key string) {
	m.cycleCount.Add(ctx, 1, metric.WithAttributes(attribute.String("config.key", key)))
}

// RecordDecrypt records one decryption attempt.
func (m *metricsImpl) RecordDecrypt(ctx context.Context, key string, duration time.Duration, err error) {
	opt := metric.WithAttributes(attribute.String("config.key", key))

	m.decryptCount.Add(ctx, 1, opt)
	if err != nil {
		m.decryptErrors.Add(ctx, 1, opt)
	}
	m.decryptDuration.Record(ctx, float64(duration.Microseconds()), opt)
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

func (noopMetrics) RecordLookup(context.Context, string, bool, time.Duration, error) {}
func (noopMetrics) RecordCycle(context.Context, string)                              {}
func (noopMetrics) RecordDecrypt(context.Context, string, time.Duration, error)      {}

// NopMetrics returns a Metrics that discards everything. It is the default
// metrics hook of the resolution layers.
func NopMetrics() Metrics { return noopMetrics{} }

// Ensure implementations satisfy Metrics
var (
	_ Metrics = (*metricsImpl)(nil)
	_ Metrics = noopMetrics{}
)
