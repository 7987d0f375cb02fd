package request

import (
	"errors"
	"strings"

	"iugu_gateway/internal/domain/entities"
	"iugu_gateway/internal/usecase"
)

var ErrInvalidInstallments = errors.New("installments must be between 1 and 12")

const maxInstallments = 12

// PaymentRequest is the checkout submission for an order.
type PaymentRequest struct {
	PaymentMethod           string `json:"payment_method" form:"payment_method" binding:"required"`
	Token                   string `json:"token" form:"iugu_token"`
	Installments            int    `json:"installments" form:"iugu_card_installments"`
	CustomerPaymentMethodID string `json:"customer_payment_method_id" form:"customer_payment_method_id"`
}

func (r PaymentRequest) ToChargeInput() (usecase.ChargeInput, error) {
	if r.Installments < 0 || r.Installments > maxInstallments {
		return usecase.ChargeInput{}, ErrInvalidInstallments
	}
	return usecase.ChargeInput{
		Method:                  entities.PaymentMethod(strings.TrimSpace(r.PaymentMethod)),
		Token:                   strings.TrimSpace(r.Token),
		Installments:            r.Installments,
		CustomerPaymentMethodID: strings.TrimSpace(r.CustomerPaymentMethodID),
	}, nil
}

// RecurringChargeRequest is sent by the subscription scheduler.
type RecurringChargeRequest struct {
	Amount *float64 `json:"amount" binding:"required"`
}

// SubscriptionPaymentMethodRequest points a subscription at the payment
// method used to pay order_id.
type SubscriptionPaymentMethodRequest struct {
	OrderID string `json:"order_id" binding:"required"`
}

// PaymentMetaRequest carries payment meta edited by a store manager.
type PaymentMetaRequest struct {
	Meta map[string]string `json:"meta"`
}
