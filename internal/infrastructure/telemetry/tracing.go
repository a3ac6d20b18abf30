package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName names the spans opened by application services
const TracerName = "orgalaser-invoicing"

// Span attribute keys
const (
	AttrDocumentID   = attribute.Key("invoice.document_id")
	AttrDocumentType = attribute.Key("invoice.document_type")
	AttrBarcodeID    = attribute.Key("product.barcode_id")
	AttrSheetNumber  = attribute.Key("print.number")
)

// StartServiceSpan opens an internal span named {service}.{method}.
//
//	ctx, span := telemetry.StartServiceSpan(ctx, "printing", "print")
//	defer span.End()
func StartServiceSpan(ctx context.Context, service, method string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.GetTracerProvider().Tracer(TracerName).Start(ctx, service+"."+method,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...))
}

// RecordError marks the span failed. A nil error is ignored.
func RecordError(span trace.Span, err error) {
	if span == nil || err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// TraceID returns the trace id of the span in ctx, or "".
func TraceID(ctx context.Context) string {
	id := trace.SpanFromContext(ctx).SpanContext().TraceID()
	if !id.IsValid() {
		return ""
	}
	return id.String()
}
