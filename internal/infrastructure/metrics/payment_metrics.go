package metrics

import (
	"strconv"

	"iugu_gateway/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type paymentMetrics struct {
	chargeAttempts    *prometheus.CounterVec
	chargeResults     *prometheus.CounterVec
	statusTransitions *prometheus.CounterVec
}

// NewPaymentMetrics registers the charge and reconciliation counters on registry.
func NewPaymentMetrics(registry prometheus.Registerer) interfaces.IPaymentMetrics {
	factory := promauto.With(registry)
	return &paymentMetrics{
		chargeAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "iugu",
				Name:      "charge_attempts_total",
				Help:      "Charge attempts by payment method.",
			},
			[]string{"method"},
		),
		chargeResults: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "iugu",
				Name:      "charge_results_total",
				Help:      "Charge outcomes by payment method and result.",
			},
			[]string{"method", "result"},
		),
		statusTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "iugu",
				Name:      "invoice_status_reconciliations_total",
				Help:      "Remote invoice statuses applied to orders.",
			},
			[]string{"status", "updated"},
		),
	}
}

func (m *paymentMetrics) IncChargeAttempt(method string) {
	m.chargeAttempts.WithLabelValues(method).Inc()
}

func (m *paymentMetrics) IncChargeResult(method string, result string) {
	m.chargeResults.WithLabelValues(method, result).Inc()
}

func (m *paymentMetrics) IncStatusTransition(remoteStatus string, updated bool) {
	m.statusTransitions.WithLabelValues(remoteStatus, strconv.FormatBool(updated)).Inc()
}
