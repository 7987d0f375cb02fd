package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPaymentMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewPaymentMetrics(registry).(*paymentMetrics)

	m.IncChargeAttempt("credit-card")
	m.IncChargeAttempt("credit-card")
	m.IncChargeResult("credit-card", "paid")
	m.IncChargeResult("bank-slip", "pending")
	m.IncStatusTransition("paid", true)
	m.IncStatusTransition("pending", false)

	require.Equal(t, 2.0, testutil.ToFloat64(m.chargeAttempts.WithLabelValues("credit-card")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.chargeResults.WithLabelValues("credit-card", "paid")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.chargeResults.WithLabelValues("bank-slip", "pending")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.statusTransitions.WithLabelValues("pending", "false")))
	require.Equal(t, 2, testutil.CollectAndCount(m.chargeResults))
}
