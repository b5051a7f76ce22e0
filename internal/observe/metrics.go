// Package observe provides observability primitives for the copilot:
// OpenTelemetry metrics, tracing helpers, and HTTP middleware tying them
// together.
//
// Metrics are recorded through the OpenTelemetry Metrics API and exposed via
// a Prometheus exporter bridge (see [InitProvider]) on the standard /metrics
// endpoint. A package-level default [Metrics] instance ([DefaultMetrics]) is
// provided for convenience; tests should use [NewMetrics] with a custom
// [metric.MeterProvider] to avoid cross-test pollution.
package observe

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name used for all copilot metrics.
const meterName = "github.com/khoj-travel/copilot"

// Metrics holds all OpenTelemetry metric instruments for the application.
// All fields are safe for concurrent use — the underlying OTel types handle
// their own synchronisation.
type Metrics struct {
	// --- Latency histograms ---

	// LLMRoundDuration tracks one model-streaming pass of the agent loop.
	LLMRoundDuration metric.Float64Histogram

	// ToolExecutionDuration tracks booking/CRM tool execution latency.
	ToolExecutionDuration metric.Float64Histogram

	// STTDuration tracks speech-to-text transcription latency.
	STTDuration metric.Float64Histogram

	// TTSDuration tracks text-to-speech synthesis latency.
	TTSDuration metric.Float64Histogram

	// HTTPRequestDuration tracks HTTP request processing time. Use with
	// attributes: attribute.String("method", ...), attribute.String("path", ...)
	HTTPRequestDuration metric.Float64Histogram

	// --- Counters ---

	// AgentRuns counts completed agent runs. Use with attribute:
	//   attribute.String("status", "ok"|"error")
	AgentRuns metric.Int64Counter

	// ToolCalls counts tool invocations. Use with attributes:
	//   attribute.String("tool", ...), attribute.String("status", ...)
	ToolCalls metric.Int64Counter

	// ProviderErrors counts upstream provider errors. Use with attributes:
	//   attribute.String("provider", ...), attribute.String("kind", ...)
	ProviderErrors metric.Int64Counter

	// --- Gauges ---

	// ActiveRuns tracks the number of agent runs currently streaming.
	ActiveRuns metric.Int64UpDownCounter
}

// latencyBuckets defines histogram bucket boundaries (in seconds). Tool calls
// against the booking API routinely take multiple seconds, so the buckets
// stretch further than typical HTTP-serving defaults.
var latencyBuckets = []float64{
	0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25,
}

// NewMetrics creates a fully initialised [Metrics] struct using the given
// [metric.MeterProvider]. Returns an error if any instrument creation fails.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.LLMRoundDuration, err = m.Float64Histogram("copilot.llm.round.duration",
		metric.WithDescription("Latency of one model-streaming pass of the agent loop."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.ToolExecutionDuration, err = m.Float64Histogram("copilot.tool_execution.duration",
		metric.WithDescription("Latency of tool execution by tool name."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.STTDuration, err = m.Float64Histogram("copilot.stt.duration",
		metric.WithDescription("Latency of speech-to-text transcription."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.TTSDuration, err = m.Float64Histogram("copilot.tts.duration",
		metric.WithDescription("Latency of text-to-speech synthesis."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.HTTPRequestDuration, err = m.Float64Histogram("copilot.http.request.duration",
		metric.WithDescription("HTTP request latency by method and path."),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	if met.AgentRuns, err = m.Int64Counter("copilot.agent.runs",
		metric.WithDescription("Completed agent runs by terminal status."),
	); err != nil {
		return nil, err
	}
	if met.ToolCalls, err = m.Int64Counter("copilot.tool.calls",
		metric.WithDescription("Total tool invocations by tool name and status."),
	); err != nil {
		return nil, err
	}
	if met.ProviderErrors, err = m.Int64Counter("copilot.provider.errors",
		metric.WithDescription("Total provider errors by provider and kind."),
	); err != nil {
		return nil, err
	}

	if met.ActiveRuns, err = m.Int64UpDownCounter("copilot.active_runs",
		metric.WithDescription("Number of agent runs currently streaming."),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// defaultMetrics is the lazily-initialised package-level Metrics instance.
var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level [Metrics] instance, creating it on
// first call using [otel.GetMeterProvider]. Subsequent calls return the same
// pointer. Panics if instrument creation fails (should not happen with the
// global provider).
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// Attr is a convenience alias for [attribute.String] to reduce verbosity at
// call sites.
func Attr(key, value string) attribute.KeyValue {
	return attribute.String(key, value)
}

// RecordProviderError records a provider error counter increment.
func (m *Metrics) RecordProviderError(ctx context.Context, provider, kind string) {
	m.ProviderErrors.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("provider", provider),
			attribute.String("kind", kind),
		),
	)
}

// --- agent.Recorder implementation ---

// RunStarted increments the active-run gauge.
func (m *Metrics) RunStarted(ctx context.Context) {
	m.ActiveRuns.Add(ctx, 1)
}

// RunEnded decrements the active-run gauge and counts the run by status.
func (m *Metrics) RunEnded(ctx context.Context, failed bool) {
	m.ActiveRuns.Add(ctx, -1)
	status := "ok"
	if failed {
		status = "error"
	}
	m.AgentRuns.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}

// ModelRound records the duration of one model-streaming pass.
func (m *Metrics) ModelRound(ctx context.Context, d time.Duration) {
	m.LLMRoundDuration.Record(ctx, d.Seconds())
}

// ToolExecuted records one tool invocation with its duration and outcome.
func (m *Metrics) ToolExecuted(ctx context.Context, name string, success bool, d time.Duration) {
	status := "ok"
	if !success {
		status = "error"
	}
	m.ToolCalls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tool", name),
		attribute.String("status", status),
	))
	m.ToolExecutionDuration.Record(ctx, d.Seconds(), metric.WithAttributes(
		attribute.String("tool", name),
	))
}
