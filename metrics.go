package swaggervalidation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts rejected requests and responses. Create it with NewMetrics and pass it
// to New with WithMetrics.
type Metrics struct {
	// RequestsRejected counts requests that failed validation, by operation.
	RequestsRejected *prometheus.CounterVec

	// ResponsesRejected counts responses that failed validation, by operation.
	ResponsesRejected *prometheus.CounterVec

	// Errors counts individual validation errors by operation and code.
	Errors *prometheus.CounterVec
}

// NewMetrics registers the validation metrics with reg. A nil reg uses the default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		RequestsRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "swaggervalidation_requests_rejected_total",
				Help: "Total number of requests that failed validation",
			},
			[]string{"operation"},
		),
		ResponsesRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "swaggervalidation_responses_rejected_total",
				Help: "Total number of responses that failed validation",
			},
			[]string{"operation"},
		),
		Errors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "swaggervalidation_errors_total",
				Help: "Total number of validation errors",
			},
			[]string{"operation", "code"},
		),
	}
}

func (m *Metrics) observe(rejected *prometheus.CounterVec, operation string, errs []*ValidationError) {
	if m == nil || len(errs) == 0 {
		return
	}
	rejected.WithLabelValues(operation).Inc()
	for _, e := range errs {
		m.Errors.WithLabelValues(operation, string(e.Code)).Inc()
	}
}

func (m *Metrics) requestRejected(operation string, errs []*ValidationError) {
	if m == nil {
		return
	}
	m.observe(m.RequestsRejected, operation, errs)
}

func (m *Metrics) responseRejected(operation string, errs []*ValidationError) {
	if m == nil {
		return
	}
	m.observe(m.ResponsesRejected, operation, errs)
}
