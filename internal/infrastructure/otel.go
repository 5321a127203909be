package infrastructure

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.28.0"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"esplorocli/internal/config"
)

// MeterName is the instrumentation scope for tracer and meter.
const MeterName = "esplorocli"

// Telemetry holds the OpenTelemetry providers for one run
type Telemetry struct {
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *sdkmetric.MeterProvider
	Registry       *prometheus.Registry
	Tracer         trace.Tracer
	Meter          metric.Meter

	metricsFile string
	traceOut    io.Closer
	logger      *slog.Logger
}

// NewNoopTelemetry returns telemetry whose tracer and meter discard everything.
func NewNoopTelemetry() *Telemetry {
	return &Telemetry{
		Tracer: tracenoop.NewTracerProvider().Tracer(MeterName),
		Meter:  metricnoop.NewMeterProvider().Meter(MeterName),
		logger: GetLogger(),
	}
}

// InitializeTelemetry sets up tracing (stdout exporter or none) and metrics backed by
// a private Prometheus registry, which Shutdown writes to cfg.MetricsFile if set.
func InitializeTelemetry(ctx context.Context, cfg config.TelemetryConfig, version string, logger *slog.Logger) (*Telemetry, error) {
	if logger == nil {
		logger = GetLogger()
	}

	logger.InfoContext(ctx, "Initializing OpenTelemetry",
		slog.String("service", cfg.ServiceName),
		slog.String("trace_exporter", cfg.TraceExporter),
		slog.Bool("metrics_file_enabled", cfg.MetricsFile != ""))

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(version),
	)

	t := &Telemetry{metricsFile: cfg.MetricsFile, logger: logger}

	if err := t.initializeTracing(cfg, res); err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}
	if err := t.initializeMetrics(res); err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	return t, nil
}

// initializeTracing sets up OpenTelemetry tracing
func (t *Telemetry) initializeTracing(cfg config.TelemetryConfig, res *resource.Resource) error {
	switch cfg.TraceExporter {
	case "none", "":
		t.Tracer = tracenoop.NewTracerProvider().Tracer(MeterName)
		return nil
	case "stdout":
	default:
		return fmt.Errorf("unsupported trace exporter: %s", cfg.TraceExporter)
	}

	var out io.Writer = os.Stderr
	if cfg.TraceFile != "" {
		f, err := os.Create(cfg.TraceFile)
		if err != nil {
			return fmt.Errorf("failed to open trace file: %w", err)
		}
		out = f
		t.traceOut = f
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(out), stdouttrace.WithPrettyPrint())
	if err != nil {
		return fmt.Errorf("failed to create trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)

	t.TracerProvider = tp
	t.Tracer = tp.Tracer(MeterName)
	return nil
}

// initializeMetrics registers an OpenTelemetry Prometheus reader on a private registry
func (t *Telemetry) initializeMetrics(res *resource.Resource) error {
	registry := prometheus.NewRegistry()
	exporter, err := otelprom.New(
		otelprom.WithRegisterer(registry),
		otelprom.WithoutScopeInfo(),
		otelprom.WithoutTargetInfo(),
	)
	if err != nil {
		return fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exporter),
	)

	t.Registry = registry
	t.MeterProvider = mp
	t.Meter = mp.Meter(MeterName)
	return nil
}

// Shutdown flushes spans, writes the metrics textfile and releases the providers.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error

	if t.TracerProvider != nil {
		if err := t.TracerProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer provider shutdown: %w", err))
		}
	}

	// The exporter gathers from the meter provider, so write before shutting it down.
	if t.metricsFile != "" && t.Registry != nil {
		if err := prometheus.WriteToTextfile(t.metricsFile, t.Registry); err != nil {
			errs = append(errs, fmt.Errorf("write metrics file: %w", err))
		} else {
			t.logger.InfoContext(ctx, "Metrics written", slog.String("metrics_file", t.metricsFile))
		}
	}

	if t.MeterProvider != nil {
		if err := t.MeterProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter provider shutdown: %w", err))
		}
	}

	if t.traceOut != nil {
		if err := t.traceOut.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close trace file: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("opentelemetry shutdown errors: %v", errs)
	}
	return nil
}

// RecordError records an error on the span in ctx
func RecordError(ctx context.Context, err error) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// SetSpanAttributes adds integer counters to the span in ctx
func SetSpanAttributes(ctx context.Context, attrs map[string]int) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	kvs := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range attrs {
		kvs = append(kvs, attribute.Int(k, v))
	}
	span.SetAttributes(kvs...)
}
