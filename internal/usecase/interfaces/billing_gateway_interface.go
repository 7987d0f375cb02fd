package interfaces

import (
	"context"

	"iugu_gateway/internal/domain/entities"
)

// IBillingGateway abstracts the iugu billing API.
//
// Failures are typed: *entities.TransportError when no definite answer was
// received, *entities.RemoteError for non-2xx or unreadable responses.
// Charge returns the parsed body even on non-2xx answers when it carries
// charge errors, since that is how declines are reported.
type IBillingGateway interface {
	CreateInvoice(ctx context.Context, payload entities.InvoicePayload) (invoiceID string, err error)
	GetInvoiceStatus(ctx context.Context, invoiceID string) (string, error)
	Charge(ctx context.Context, req entities.ChargeRequest) (entities.Charge, error)
	CreateCustomer(ctx context.Context, req entities.CustomerRequest) (customerID string, err error)
	GetCustomer(ctx context.Context, customerID string) (entities.RemoteCustomer, error)
	CreatePaymentMethod(ctx context.Context, req entities.PaymentMethodRequest) (paymentMethodID string, err error)
}
