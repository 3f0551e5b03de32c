package metrics

import "github.com/prometheus/client_golang/prometheus"

type NoopMetrics struct{}

func (m *NoopMetrics) GetRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

func (m *NoopMetrics) ObserveAPIEndpointDuration(handler, method, statusCode string, elapsed float64) {
}
func (m *NoopMetrics) ObserveLLMRequest(provider, operation, outcome string) {}
func (m *NoopMetrics) IncrementFallback(operation string)                    {}
