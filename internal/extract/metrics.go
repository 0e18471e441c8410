package extract

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const extractInstrumentationName = "github.com/fyrsmithlabs/rfpd/internal/extract"

// Metrics holds extraction pipeline metrics.
type Metrics struct {
	meter        metric.Meter
	logger       *zap.Logger
	duration     metric.Float64Histogram
	documents    metric.Int64Counter
	requirements metric.Int64Counter
}

// NewMetrics creates a Metrics instance for the extraction pipeline.
func NewMetrics(logger *zap.Logger) *Metrics {
	m := &Metrics{
		meter:  otel.Meter(extractInstrumentationName),
		logger: logger,
	}
	m.init()
	return m
}

func (m *Metrics) init() {
	var err error

	m.duration, err = m.meter.Float64Histogram(
		"rfpd.extraction.duration_seconds",
		metric.WithDescription("Duration of one document extraction, labeled by strategy"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0),
	)
	if err != nil {
		m.logger.Warn("failed to create duration histogram", zap.Error(err))
	}

	m.documents, err = m.meter.Int64Counter(
		"rfpd.extraction.documents_total",
		metric.WithDescription("Documents processed, labeled by strategy and placeholder outcome"),
		metric.WithUnit("{document}"),
	)
	if err != nil {
		m.logger.Warn("failed to create documents counter", zap.Error(err))
	}

	m.requirements, err = m.meter.Int64Counter(
		"rfpd.extraction.requirements_total",
		metric.WithDescription("Requirement records produced across all documents"),
		metric.WithUnit("{requirement}"),
	)
	if err != nil {
		m.logger.Warn("failed to create requirements counter", zap.Error(err))
	}
}

// RecordExtraction records the outcome of one document extraction.
func (m *Metrics) RecordExtraction(ctx context.Context, strategy string, duration time.Duration, requirements int, placeholder bool) {
	attrs := []attribute.KeyValue{
		attribute.String("strategy", strategy),
		attribute.Bool("placeholder", placeholder),
	}

	if m.duration != nil {
		m.duration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
	}
	if m.documents != nil {
		m.documents.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
	if m.requirements != nil {
		m.requirements.Add(ctx, int64(requirements), metric.WithAttributes(attrs...))
	}
}
