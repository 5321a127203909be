package infrastructure

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// LoaderMetrics holds the instruments recorded by a loader run
type LoaderMetrics struct {
	RowsRead     metric.Int64Counter
	RowsRetained metric.Int64Counter
	RowsDropped  metric.Int64Counter
	LookupMisses metric.Int64Counter
	InvalidDates metric.Int64Counter
	StepDuration metric.Float64Histogram
	StepErrors   metric.Int64Counter
}

// RowCounts is the per-run tally reported after the transform step
type RowCounts struct {
	Read         int
	Retained     int
	Dropped      map[string]int
	LookupMisses int
	InvalidDates int
}

// NewLoaderMetrics creates the loader instruments on meter
func NewLoaderMetrics(meter metric.Meter) (*LoaderMetrics, error) {
	rowsRead, err := meter.Int64Counter(
		"esploro_rows_read",
		metric.WithDescription("Roster rows read"),
	)
	if err != nil {
		return nil, err
	}

	rowsRetained, err := meter.Int64Counter(
		"esploro_rows_retained",
		metric.WithDescription("Roster rows written as activities"),
	)
	if err != nil {
		return nil, err
	}

	rowsDropped, err := meter.Int64Counter(
		"esploro_rows_dropped",
		metric.WithDescription("Roster rows filtered out, by reason"),
	)
	if err != nil {
		return nil, err
	}

	lookupMisses, err := meter.Int64Counter(
		"esploro_lookup_misses",
		metric.WithDescription("Instructor names without a researcher identifier"),
	)
	if err != nil {
		return nil, err
	}

	invalidDates, err := meter.Int64Counter(
		"esploro_invalid_dates",
		metric.WithDescription("Non-blank start or end dates that could not be parsed"),
	)
	if err != nil {
		return nil, err
	}

	stepDuration, err := meter.Float64Histogram(
		"esploro_step_duration_seconds",
		metric.WithDescription("Pipeline step duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	stepErrors, err := meter.Int64Counter(
		"esploro_step_errors",
		metric.WithDescription("Pipeline step failures"),
	)
	if err != nil {
		return nil, err
	}

	return &LoaderMetrics{
		RowsRead:     rowsRead,
		RowsRetained: rowsRetained,
		RowsDropped:  rowsDropped,
		LookupMisses: lookupMisses,
		InvalidDates: invalidDates,
		StepDuration: stepDuration,
		StepErrors:   stepErrors,
	}, nil
}

// RecordRows adds the tallies of one transform
func (m *LoaderMetrics) RecordRows(ctx context.Context, c RowCounts) {
	if m == nil {
		return
	}
	m.RowsRead.Add(ctx, int64(c.Read))
	m.RowsRetained.Add(ctx, int64(c.Retained))
	for reason, n := range c.Dropped {
		m.RowsDropped.Add(ctx, int64(n), metric.WithAttributes(attribute.String("reason", reason)))
	}
	m.LookupMisses.Add(ctx, int64(c.LookupMisses))
	m.InvalidDates.Add(ctx, int64(c.InvalidDates))
}

// RecordStep records the duration and outcome of one pipeline step
func (m *LoaderMetrics) RecordStep(ctx context.Context, stepID string, d time.Duration, err error) {
	if m == nil {
		return
	}
	status := "completed"
	if err != nil {
		status = "failed"
		m.StepErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("step", stepID)))
	}
	m.StepDuration.Record(ctx, d.Seconds(), metric.WithAttributes(
		attribute.String("step", stepID),
		attribute.String("status", status),
	))
}
