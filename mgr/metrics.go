package mgr

import (
	"github.com/prometheus/client_golang/prometheus"

	. "github.com/qiniu/convkit/utils/models"
)

const metricsNamespace = "convkit"

type Metrics struct {
	registry *prometheus.Registry

	transformSuccess *prometheus.CounterVec
	transformErrors  *prometheus.CounterVec
	convertRequests  *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		transformSuccess: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "transform_success_total",
			Help:      "Number of records successfully converted by a transformer.",
		}, []string{"type"}),
		transformErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "transform_errors_total",
			Help:      "Number of records a transformer failed to convert.",
		}, []string{"type"}),
		convertRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "convert_requests_total",
			Help:      "Number of single value conversion requests.",
		}, []string{"op", "result"}),
	}
	m.registry.MustRegister(m.transformSuccess, m.transformErrors, m.convertRequests)
	return m
}

func (m *Metrics) observeTransform(tp string, before, after StatsInfo) {
	if d := after.Success - before.Success; d > 0 {
		m.transformSuccess.WithLabelValues(tp).Add(float64(d))
	}
	if d := after.Errors - before.Errors; d > 0 {
		m.transformErrors.WithLabelValues(tp).Add(float64(d))
	}
}

func (m *Metrics) observeConvert(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.convertRequests.WithLabelValues(op, result).Inc()
}
