package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys
const (
	AttrKind     = attribute.Key("kind")
	AttrOutcome  = attribute.Key("outcome")
	AttrCategory = attribute.Key("category")
)

// Outcome values
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeNotFound = "not_found"
)

// DocumentMetrics counts stored documents, rendered PDFs and barcode scans.
type DocumentMetrics struct {
	documentsCreated metric.Int64Counter
	renderDuration   metric.Float64Histogram
	scans            metric.Int64Counter
}

// NewDocumentMetrics registers the instruments on meter
func NewDocumentMetrics(meter metric.Meter) (*DocumentMetrics, error) {
	created, err := meter.Int64Counter("invoicing.documents.created",
		metric.WithDescription("Invoices and quotations stored"),
		metric.WithUnit("{document}"))
	if err != nil {
		return nil, fmt.Errorf("failed to create documents counter: %w", err)
	}
	render, err := meter.Float64Histogram("invoicing.pdf.render.duration",
		metric.WithDescription("Time spent rendering a PDF"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10))
	if err != nil {
		return nil, fmt.Errorf("failed to create render histogram: %w", err)
	}
	scans, err := meter.Int64Counter("invoicing.barcode.scans",
		metric.WithDescription("Barcode scans resolved to invoice lines"),
		metric.WithUnit("{scan}"))
	if err != nil {
		return nil, fmt.Errorf("failed to create scans counter: %w", err)
	}
	return &DocumentMetrics{
		documentsCreated: created,
		renderDuration:   render,
		scans:            scans,
	}, nil
}

// DocumentCreated counts one stored document of the given type
func (m *DocumentMetrics) DocumentCreated(ctx context.Context, documentType string) {
	if m == nil {
		return
	}
	m.documentsCreated.Add(ctx, 1, metric.WithAttributes(attribute.String("document_type", documentType)))
}

// PDFRendered records a render of kind "invoice" or "label"
func (m *DocumentMetrics) PDFRendered(ctx context.Context, kind string, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.renderDuration.Record(ctx, d.Seconds(), metric.WithAttributes(AttrKind.String(kind), AttrOutcome.String(outcome(err))))
}

// Scanned counts a scan of a category; outcome is one of the Outcome values
func (m *DocumentMetrics) Scanned(ctx context.Context, category, result string) {
	if m == nil {
		return
	}
	m.scans.Add(ctx, 1, metric.WithAttributes(AttrCategory.String(category), AttrOutcome.String(result)))
}

func outcome(err error) string {
	if err != nil {
		return OutcomeFailure
	}
	return OutcomeSuccess
}
