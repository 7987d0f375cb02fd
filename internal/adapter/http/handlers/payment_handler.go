package handlers

import (
	"net/http"

	request "iugu_gateway/internal/adapter/http/dto/request"
	response "iugu_gateway/internal/adapter/http/dto/response"
	"iugu_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler serves checkout submissions and the order payment lookups.
type PaymentHandler struct {
	checkout usecase.ICheckoutUseCase
	log      *zap.Logger
}

func NewPaymentHandler(checkout usecase.ICheckoutUseCase, log *zap.Logger) *PaymentHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &PaymentHandler{checkout: checkout, log: log.Named("payment_handler")}
}

// ProcessPayment charges an order with the submitted payment data.
//
// @Summary      Pay an order
// @Tags         payments
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        order_id  path  string                  true  "Order ID"
// @Param        payload   body  request.PaymentRequest  true  "Payment data"
// @Success      200  {object}  response.CheckoutResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      402  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /orders/{order_id}/payments [post]
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	orderID := c.Param("order_id")

	var payload request.PaymentRequest
	if err := c.ShouldBind(&payload); err != nil {
		h.log.Info("invalid payment payload", zap.String("order_id", orderID), zap.Error(err))
		abortWithError(c, errInvalidRequest)
		return
	}
	input, err := payload.ToChargeInput()
	if err != nil {
		abortWithError(c, errInvalidRequest.WithDetails(err.Error()))
		return
	}

	result, err := h.checkout.ProcessPayment(c.Request.Context(), orderID, input)
	if err != nil {
		h.log.Info("payment failed", zap.String("order_id", orderID), zap.Error(err))
		abortWithError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutResult(result))
}

// @Summary      Bank slip link of an unpaid order
// @Tags         payments
// @Produce      json
// @Param        order_id  path  string  true  "Order ID"
// @Success      200  {object}  response.BankSlipResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{order_id}/bank-slip [get]
func (h *PaymentHandler) BankSlipLink(c *gin.Context) {
	orderID := c.Param("order_id")

	link, err := h.checkout.BankSlipLink(c.Request.Context(), orderID)
	if err != nil {
		abortWithError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.BankSlipResponse{OrderID: orderID, URL: link})
}

// @Summary      Enabled payment methods and installment rates
// @Tags         payments
// @Produce      json
// @Success      200  {object}  response.PaymentOptionsResponse
// @Router       /payment-options [get]
func (h *PaymentHandler) PaymentOptions(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromPaymentOptions(h.checkout.PaymentOptions()))
}
