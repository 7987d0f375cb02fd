package handlers

import (
	"errors"
	"net/http"

	"iugu_gateway/internal/usecase"
	"iugu_gateway/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// mapPaymentError turns use case errors into the HTTP envelope. Payer facing
// messages are passed through; everything else stays generic.
func mapPaymentError(err error) *pkg.AppError {
	var declined *usecase.DeclinedError
	switch {
	case errors.As(err, &declined):
		return pkg.NewDomainError("PAYMENT_DECLINED", declined.First(), err, http.StatusPaymentRequired).WithDetails(declined.Messages...)
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_ID", "Invalid order id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Invalid payment method", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentMethodDisabled):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_DISABLED", "Payment method disabled", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnsupportedCurrency):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_CURRENCY", "Only BRL is supported", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingCardToken):
		return pkg.NewDomainErrorSimple("MISSING_CARD_TOKEN", usecase.MsgMissingCardToken, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingPaymentMethod):
		return pkg.NewDomainErrorSimple("MISSING_PAYMENT_METHOD", "Missing customer payment method", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Invalid amount", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingPaymentMeta):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_META", usecase.ErrMissingPaymentMeta.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMalformedWebhook):
		return pkg.NewDomainErrorSimple("MALFORMED_NOTIFICATION", "The request failed!", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderAlreadyPaid):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_PAID", "Order already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrBankSlipUnavailable):
		return pkg.NewDomainErrorSimple("BANK_SLIP_UNAVAILABLE", "Bank slip unavailable", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentMethodNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_NOT_FOUND", usecase.MsgPaymentMethodMissing, http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentMethodCreateFailed):
		return pkg.NewDomainError("PAYMENT_METHOD_NOT_SAVED", usecase.MsgPaymentMethodSave, err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrChargeFailed), errors.Is(err, usecase.ErrCustomerCreateFailed):
		return pkg.NewDomainError("CHARGE_FAILED", usecase.MsgGenericChargeFailure, err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWithError(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
