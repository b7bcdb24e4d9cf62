package helper

import (
	"context"
	"sync"

	"github.com/domainblocks/ddd-blocks-go/querybuilder"
)

// TestTracingCollector is a TracingCollector implementation that captures spans for testing.
type TestTracingCollector struct {
	spans []SpanRecord
	mu    sync.Mutex
}

// SpanRecord represents a captured span with its lifecycle data.
type SpanRecord struct {
	Name       string
	StartAttrs map[string]string
	Status     string
	FinalAttrs map[string]string
	Finished   bool
}

// NewTestTracingCollector creates a new TestTracingCollector.
func NewTestTracingCollector() *TestTracingCollector {
	return &TestTracingCollector{spans: make([]SpanRecord, 0)}
}

// StartSpan captures a span start and returns a handle that records further updates.
func (c *TestTracingCollector) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, querybuilder.SpanContext) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.spans = append(c.spans, SpanRecord{
		Name:       name,
		StartAttrs: copyLabels(attrs),
		FinalAttrs: make(map[string]string),
	})

	return ctx, &testSpanContext{collector: c, index: len(c.spans) - 1}
}

// FinishSpan records a span completion with its final status and attributes.
func (c *TestTracingCollector) FinishSpan(spanCtx querybuilder.SpanContext, status string, attrs map[string]string) {
	span, ok := spanCtx.(*testSpanContext)
	if !ok {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	record := &c.spans[span.index]
	record.Status = status
	for k, v := range attrs {
		record.FinalAttrs[k] = v
	}
	record.Finished = true
}

// GetSpans returns a copy of all captured spans.
func (c *TestTracingCollector) GetSpans() []SpanRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	spans := make([]SpanRecord, len(c.spans))
	copy(spans, c.spans)

	return spans
}

// HasFinishedSpan checks if a span with the given name was finished with the given status.
func (c *TestTracingCollector) HasFinishedSpan(name, status string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, span := range c.spans {
		if span.Name == name && span.Status == status && span.Finished {
			return true
		}
	}

	return false
}

// Reset clears all captured spans.
func (c *TestTracingCollector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.spans = c.spans[:0]
}

type testSpanContext struct {
	collector *TestTracingCollector
	index     int
}

func (s *testSpanContext) SetStatus(status string) {
	s.collector.mu.Lock()
	defer s.collector.mu.Unlock()
	s.collector.spans[s.index].Status = status
}

func (s *testSpanContext) AddAttribute(key, value string) {
	s.collector.mu.Lock()
	defer s.collector.mu.Unlock()
	s.collector.spans[s.index].FinalAttrs[key] = value
}

// Ensure TestTracingCollector implements querybuilder.TracingCollector.
var _ querybuilder.TracingCollector = (*TestTracingCollector)(nil)
