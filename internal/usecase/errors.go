package usecase

import (
	"errors"
	"strings"
)

// Payer-facing messages.
const (
	MsgGenericChargeFailure = "An error has occurred while processing your payment, please try again. Or contact us for assistance."
	MsgMissingCardToken     = "Please make sure your card details have been entered correctly and that your browser supports JavaScript."
	MsgPaymentMethodSave    = "An error occurred while trying to save your data. Please contact us for get help."
	MsgPaymentMethodMissing = "Customer payment method not found!"
)

var (
	ErrInvalidOrderID            = errors.New("invalid order id")
	ErrOrderNotFound             = errors.New("order not found")
	ErrInvalidPaymentMethod      = errors.New("invalid payment method")
	ErrPaymentMethodDisabled     = errors.New("payment method disabled")
	ErrMissingCardToken          = errors.New(MsgMissingCardToken)
	ErrMissingPaymentMethod      = errors.New("missing customer payment method id")
	ErrChargeFailed              = errors.New(MsgGenericChargeFailure)
	ErrPaymentMethodNotFound     = errors.New(MsgPaymentMethodMissing)
	ErrPaymentMethodCreateFailed = errors.New(MsgPaymentMethodSave)
	ErrCustomerCreateFailed      = errors.New("customer could not be created")
	ErrMalformedWebhook          = errors.New("malformed webhook notification")
	ErrBankSlipUnavailable       = errors.New("bank slip unavailable")
	ErrInvalidAmount             = errors.New("invalid amount")
	ErrMissingPaymentMeta        = errors.New(`a "_iugu_customer_payment_method_id" value is required`)
	ErrUnsupportedCurrency       = errors.New("unsupported currency")
)

// DeclinedError carries the messages the billing API returned for a charge.
// They are shown to the payer as-is.
type DeclinedError struct {
	Messages []string
}

func (e *DeclinedError) Error() string {
	if len(e.Messages) == 0 {
		return "charge declined"
	}
	return "charge declined: " + strings.Join(e.Messages, "; ")
}

// First returns the first message, or the generic failure message.
func (e *DeclinedError) First() string {
	if len(e.Messages) == 0 {
		return MsgGenericChargeFailure
	}
	return e.Messages[0]
}

// IsDeclined reports whether err is (or wraps) a *DeclinedError.
func IsDeclined(err error) bool {
	var de *DeclinedError
	return errors.As(err, &de)
}
