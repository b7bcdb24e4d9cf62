package oteladapters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/domainblocks/ddd-blocks-go/oteladapters"
)

func newTestTracer() (*tracetest.InMemoryExporter, *oteladapters.TracingCollector) {
	exporter := tracetest.NewInMemoryExporter()
	provider := trace.NewTracerProvider(trace.WithSyncer(exporter))

	return exporter, oteladapters.NewTracingCollector(provider.Tracer("test"))
}

func Test_TracingCollector_StartSpan(t *testing.T) {
	exporter, collector := newTestTracer()

	attrs := map[string]string{
		"operation": "query",
		"table":     "users",
	}

	ctx, spanCtx := collector.StartSpan(context.Background(), "database.query", attrs)

	assert.NotNil(t, ctx, "Context should not be nil")
	assert.NotNil(t, spanCtx, "SpanContext should not be nil")

	collector.FinishSpan(spanCtx, "ok", map[string]string{"result": "done"})

	spans := exporter.GetSpans()
	require.Len(t, spans, 1, "Expected exactly one span")

	span := spans[0]
	assert.Equal(t, "database.query", span.Name, "Span name should match")
	assertSpanHasAttribute(t, span, "operation", "query")
	assertSpanHasAttribute(t, span, "table", "users")
	assertSpanHasAttribute(t, span, "result", "done")
	assert.Equal(t, codes.Ok, span.Status.Code, "Span should have OK status")
}

func Test_TracingCollector_FinishSpan_Error(t *testing.T) {
	exporter, collector := newTestTracer()

	_, spanCtx := collector.StartSpan(context.Background(), "database.exec", nil)
	collector.FinishSpan(spanCtx, "error", map[string]string{"error_type": "database"})

	spans := exporter.GetSpans()
	require.Len(t, spans, 1, "Expected exactly one span")

	span := spans[0]
	assert.Equal(t, codes.Error, span.Status.Code, "Span should have Error status")
	assert.Equal(t, "Operation failed", span.Status.Description, "Error description should match")
	assertSpanHasAttribute(t, span, "error_type", "database")
}

func Test_TracingCollector_StatusMapping(t *testing.T) {
	tests := []struct {
		name         string
		status       string
		expectedCode codes.Code
	}{
		{name: "ok_maps_to_ok", status: "ok", expectedCode: codes.Ok},
		{name: "success_maps_to_ok", status: "success", expectedCode: codes.Ok},
		{name: "completed_maps_to_ok", status: "completed", expectedCode: codes.Ok},
		{name: "error_maps_to_error", status: "error", expectedCode: codes.Error},
		{name: "failed_maps_to_error", status: "failed", expectedCode: codes.Error},
		{name: "cancelled_maps_to_error", status: "cancelled", expectedCode: codes.Error},
		{name: "timeout_maps_to_error", status: "timeout", expectedCode: codes.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter, collector := newTestTracer()

			_, spanCtx := collector.StartSpan(context.Background(), "op", nil)
			collector.FinishSpan(spanCtx, tt.status, nil)

			spans := exporter.GetSpans()
			require.Len(t, spans, 1)
			assert.Equal(t, tt.expectedCode, spans[0].Status.Code)
		})
	}
}

func Test_TracingCollector_UnknownStatusBecomesAttribute(t *testing.T) {
	exporter, collector := newTestTracer()

	_, spanCtx := collector.StartSpan(context.Background(), "op", nil)
	collector.FinishSpan(spanCtx, "partially-done", nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)

	assert.Equal(t, codes.Unset, spans[0].Status.Code, "Unknown status should leave the code unset")
	assertSpanHasAttribute(t, spans[0], "status", "partially-done")
}

func Test_OTelSpanContext_AddAttribute(t *testing.T) {
	exporter, collector := newTestTracer()

	_, spanCtx := collector.StartSpan(context.Background(), "op", nil)
	spanCtx.AddAttribute("rows", "42")
	collector.FinishSpan(spanCtx, "ok", nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assertSpanHasAttribute(t, spans[0], "rows", "42")
}

func assertSpanHasAttribute(t *testing.T, span tracetest.SpanStub, key, value string) {
	t.Helper()

	for _, attr := range span.Attributes {
		if string(attr.Key) == key && attr.Value.AsString() == value {
			return
		}
	}

	t.Errorf("Span %s is missing attribute %s=%s", span.Name, key, value)
}
