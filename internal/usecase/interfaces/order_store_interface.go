package interfaces

import (
	"context"

	"iugu_gateway/internal/domain/entities"
)

// IOrderStore abstracts the store that owns orders.
//
// The payment core must be able to:
//   - load an order for a checkout, a scheduler tick or a webhook
//   - move the order status and leave a note explaining why
//   - mark the payment complete (the store reduces stock and picks processing/completed)
//   - keep the remote invoice id as the order transaction id
//   - record the payment method the order was actually paid with
//   - read/write gateway metadata on orders and subscriptions
//
// Lookups return a zero Order (empty ID) and a nil error when nothing matches.
type IOrderStore interface {
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	FindByTransactionID(ctx context.Context, transactionID string) (entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus, note string) error
	MarkPaymentComplete(ctx context.Context, orderID string) error
	SetTransactionID(ctx context.Context, orderID string, transactionID string) error
	SetPaymentMethod(ctx context.Context, orderID string, method entities.PaymentMethod) error
	AddNote(ctx context.Context, orderID string, note string) error
	GetMetadata(ctx context.Context, orderID string, key string) (string, error)
	SetMetadata(ctx context.Context, orderID string, key string, value string) error
	DeleteMetadata(ctx context.Context, orderID string, key string) error
}
