package interfaces

import "context"

// ICart empties the payer's cart once a payment attempt is accepted.
type ICart interface {
	EmptyCart(ctx context.Context, accountID int64) error
}

// INotifier delivers store-admin notifications.
type INotifier interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// IPaymentMetrics records charge and reconciliation outcomes.
type IPaymentMetrics interface {
	IncChargeAttempt(method string)
	IncChargeResult(method string, result string)
	IncStatusTransition(remoteStatus string, updated bool)
}
