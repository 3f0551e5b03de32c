package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	MetricsNamespace    = "roastmaster"
	MetricsSubsystemAPI = "api"
	MetricsSubsystemLLM = "llm"

	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

type Metrics interface {
	GetRegistry() *prometheus.Registry

	ObserveAPIEndpointDuration(handler, method, statusCode string, elapsed float64)
	ObserveLLMRequest(provider, operation, outcome string)
	IncrementFallback(operation string)
}

type metrics struct {
	registry *prometheus.Registry

	apiTime          *prometheus.HistogramVec
	llmRequestsTotal *prometheus.CounterVec
	fallbacksTotal   *prometheus.CounterVec
}

// NewMetrics 每个进程一份独立的 registry
func NewMetrics() Metrics {
	m := &metrics{}

	m.registry = prometheus.NewRegistry()
	m.registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{
		Namespace: MetricsNamespace,
	}))
	m.registry.MustRegister(collectors.NewGoCollector())

	m.apiTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: MetricsNamespace,
			Subsystem: MetricsSubsystemAPI,
			Name:      "time_seconds",
			Help:      "Time to execute the api handler",
		},
		[]string{"handler", "method", "status_code"},
	)
	m.registry.MustRegister(m.apiTime)

	m.llmRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Subsystem: MetricsSubsystemLLM,
			Name:      "requests_total",
			Help:      "The total number of text generation requests.",
		},
		[]string{"provider", "operation", "outcome"},
	)
	m.registry.MustRegister(m.llmRequestsTotal)

	m.fallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Subsystem: MetricsSubsystemLLM,
			Name:      "fallbacks_total",
			Help:      "The total number of canned responses served instead of generated text.",
		},
		[]string{"operation"},
	)
	m.registry.MustRegister(m.fallbacksTotal)

	return m
}

func (m *metrics) GetRegistry() *prometheus.Registry {
	return m.registry
}

func (m *metrics) ObserveAPIEndpointDuration(handler, method, statusCode string, elapsed float64) {
	m.apiTime.With(prometheus.Labels{"handler": handler, "method": method, "status_code": statusCode}).Observe(elapsed)
}

func (m *metrics) ObserveLLMRequest(provider, operation, outcome string) {
	m.llmRequestsTotal.With(prometheus.Labels{"provider": provider, "operation": operation, "outcome": outcome}).Inc()
}

func (m *metrics) IncrementFallback(operation string) {
	m.fallbacksTotal.With(prometheus.Labels{"operation": operation}).Inc()
}
