package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/onyxtech/onyx-invoice"

// Metrics holds the application instruments. They are created on the global
// MeterProvider, so call NewMetrics after Setup. A nil *Metrics records nothing.
type Metrics struct {
	exports           metric.Int64Counter
	directoryMutation metric.Int64Counter
	renderDuration    metric.Float64Histogram
}

// NewMetrics registers the invoice.exports, directory.mutations and
// invoice.render.duration instruments.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)

	exports, err := meter.Int64Counter("invoice.exports",
		metric.WithDescription("PDF exports by result"))
	if err != nil {
		return nil, fmt.Errorf("invoice.exports counter: %w", err)
	}
	mutations, err := meter.Int64Counter("directory.mutations",
		metric.WithDescription("Company directory add/delete operations by result"))
	if err != nil {
		return nil, fmt.Errorf("directory.mutations counter: %w", err)
	}
	render, err := meter.Float64Histogram("invoice.render.duration",
		metric.WithDescription("Time to compose and render an invoice document"),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, fmt.Errorf("invoice.render.duration histogram: %w", err)
	}

	return &Metrics{exports: exports, directoryMutation: mutations, renderDuration: render}, nil
}

// RecordExport counts one PDF export attempt.
func (m *Metrics) RecordExport(ctx context.Context, err error) {
	if m == nil {
		return
	}
	m.exports.Add(ctx, 1, metric.WithAttributes(resultAttr(err)))
}

// RecordDirectoryMutation counts one add or delete against the directory.
func (m *Metrics) RecordDirectoryMutation(ctx context.Context, op string, err error) {
	if m == nil {
		return
	}
	m.directoryMutation.Add(ctx, 1, metric.WithAttributes(attribute.String("op", op), resultAttr(err)))
}

// RecordRender observes how long composing a document took.
func (m *Metrics) RecordRender(ctx context.Context, d time.Duration) {
	if m == nil {
		return
	}
	m.renderDuration.Record(ctx, float64(d.Microseconds())/1000)
}

func resultAttr(err error) attribute.KeyValue {
	if err != nil {
		return attribute.String("result", "error")
	}
	return attribute.String("result", "ok")
}
