package api

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type clientMetrics struct {
	attempts metric.Int64Counter
	retries  metric.Int64Counter
}

func newClientMetrics(m metric.Meter) clientMetrics {
	if m == nil {
		return clientMetrics{}
	}
	attempts, _ := m.Int64Counter("http.client.attempts", metric.WithDescription("Number of outbound HTTP attempts"))
	retries, _ := m.Int64Counter("http.client.retries", metric.WithDescription("Number of outbound HTTP retries after a retryable failure"))
	return clientMetrics{attempts: attempts, retries: retries}
}

func (m clientMetrics) recordAttempt(ctx context.Context, method string) {
	if m.attempts != nil {
		m.attempts.Add(ctx, 1, metric.WithAttributes(attribute.String("http.request.method", method)))
	}
}

func (m clientMetrics) recordRetry(ctx context.Context, method string) {
	if m.retries != nil {
		m.retries.Add(ctx, 1, metric.WithAttributes(attribute.String("http.request.method", method)))
	}
}
