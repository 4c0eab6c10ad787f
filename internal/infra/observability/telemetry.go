// Package observability provides the simulator's tracing and metrics
// bootstrap. Grounded on the teacher's
// internal/infra/observability/telemetry.go TelemetryProvider shape,
// trimmed to the tracer/meter core a single-process simulator run
// exercises — the teacher's DataDog/Elastic/OTLP exporter fan-out and
// agent auto-detection have no consumer here (see DESIGN.md) and are
// dropped rather than carried as dead code.
package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Config controls whether tracing/metrics are wired up.
type Config struct {
	Enabled     bool   `env:"OTEL_ENABLED" envDefault:"false"`
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"elevator-simulator"`
	Environment string `env:"OTEL_ENVIRONMENT" envDefault:"development"`
}

// TelemetryProvider exposes a tracer and meter taken from the global
// otel providers. The dispatcher and HTTP layer do not go through it:
// they call otel.Tracer directly.
type TelemetryProvider struct {
	config *Config
	logger *slog.Logger
	tracer trace.Tracer
	meter  metric.Meter
}

// NewTelemetryProvider creates a provider. When cfg.Enabled is false
// GetTracer/GetMeter still return usable no-op implementations so
// callers never need to nil-check.
func NewTelemetryProvider(cfg *Config, logger *slog.Logger) (*TelemetryProvider, error) {
	if !cfg.Enabled {
		return &TelemetryProvider{config: cfg, logger: logger}, nil
	}

	provider := &TelemetryProvider{config: cfg, logger: logger}
	provider.tracer = otel.Tracer(cfg.ServiceName)
	provider.meter = otel.Meter(cfg.ServiceName)

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	provider.logger.Info("telemetry provider initialized",
		slog.String("service", cfg.ServiceName),
		slog.String("environment", cfg.Environment))

	return provider, nil
}

// GetTracer returns the configured tracer, or a no-op tracer when
// telemetry is disabled.
func (tp *TelemetryProvider) GetTracer() trace.Tracer {
	if tp.tracer == nil {
		return noop.NewTracerProvider().Tracer("noop")
	}
	return tp.tracer
}

// GetMeter returns the configured meter, or the global no-op meter.
func (tp *TelemetryProvider) GetMeter() metric.Meter {
	if tp.meter == nil {
		return otel.Meter("noop")
	}
	return tp.meter
}

// CreateSpan creates a new span with the given name and options.
func (tp *TelemetryProvider) CreateSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	if tp.tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return tp.tracer.Start(ctx, name, opts...)
}

// Shutdown is a no-op placeholder for the exporter-flush step a
// configured SDK provider would need; this provider registers no
// exporters, so there is nothing to flush.
func (tp *TelemetryProvider) Shutdown(_ context.Context) error {
	tp.logger.Info("telemetry provider shutdown completed")
	return nil
}
