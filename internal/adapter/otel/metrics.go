package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "codeguide"

// Metrics holds all codeguide metric instruments.
type Metrics struct {
	SearchQueries metric.Int64Counter
	SearchResults metric.Int64Histogram
	Reloads       metric.Int64Counter
	Records       metric.Int64Gauge
}

// NewMetrics creates all metric instruments from the global meter provider.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)
	m := &Metrics{}
	var err error

	m.SearchQueries, err = meter.Int64Counter("codeguide.search.queries",
		metric.WithDescription("Number of search queries served"))
	if err != nil {
		return nil, err
	}

	m.SearchResults, err = meter.Int64Histogram("codeguide.search.results",
		metric.WithDescription("Number of results per search query"))
	if err != nil {
		return nil, err
	}

	m.Reloads, err = meter.Int64Counter("codeguide.content.reloads",
		metric.WithDescription("Number of content reloads"))
	if err != nil {
		return nil, err
	}

	m.Records, err = meter.Int64Gauge("codeguide.content.records",
		metric.WithDescription("Records loaded per collection"))
	if err != nil {
		return nil, err
	}

	return m, nil
}

// RecordSearch counts one search and its result count. Safe on a nil receiver.
func (m *Metrics) RecordSearch(ctx context.Context, results int, cached bool) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.Bool("cached", cached))
	m.SearchQueries.Add(ctx, 1, attrs)
	m.SearchResults.Record(ctx, int64(results), attrs)
}

// RecordReload counts one reload and the resulting collection sizes. Safe on a nil receiver.
func (m *Metrics) RecordReload(ctx context.Context, counts map[string]int) {
	if m == nil {
		return
	}
	m.Reloads.Add(ctx, 1)
	for name, n := range counts {
		m.Records.Record(ctx, int64(n), metric.WithAttributes(attribute.String("collection", name)))
	}
}
