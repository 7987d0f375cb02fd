package handlers

import (
	"net/http"

	request "iugu_gateway/internal/adapter/http/dto/request"
	response "iugu_gateway/internal/adapter/http/dto/response"
	"iugu_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SubscriptionHandler serves the scheduler callbacks (renewals and pre-order
// releases) and stored payment method maintenance.
type SubscriptionHandler struct {
	usecase usecase.ISubscriptionUseCase
	log     *zap.Logger
}

func NewSubscriptionHandler(uc usecase.ISubscriptionUseCase, log *zap.Logger) *SubscriptionHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &SubscriptionHandler{usecase: uc, log: log.Named("subscription_handler")}
}

// RecurringCharge answers 200 with success=false when the charge was refused;
// the order has already been marked failed.
//
// @Summary      Charge a subscription renewal
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Param        order_id  path  string                          true  "Renewal order ID"
// @Param        payload   body  request.RecurringChargeRequest  true  "Amount to charge"
// @Success      200  {object}  response.RecurringChargeResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{order_id}/recurring-charges [post]
func (h *SubscriptionHandler) RecurringCharge(c *gin.Context) {
	orderID := c.Param("order_id")

	var payload request.RecurringChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}

	res, err := h.usecase.ScheduledSubscriptionPayment(c.Request.Context(), orderID, *payload.Amount)
	if err != nil {
		h.log.Warn("scheduled payment failed", zap.String("order_id", orderID), zap.Error(err))
		abortWithError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRecurringResult(res))
}

// @Summary      Charge a released pre-order
// @Tags         subscriptions
// @Produce      json
// @Param        order_id  path  string  true  "Order ID"
// @Success      200  {object}  response.RecurringChargeResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{order_id}/pre-order-release [post]
func (h *SubscriptionHandler) PreOrderRelease(c *gin.Context) {
	orderID := c.Param("order_id")

	res, err := h.usecase.PreOrderRelease(c.Request.Context(), orderID)
	if err != nil {
		h.log.Warn("pre-order release failed", zap.String("order_id", orderID), zap.Error(err))
		abortWithError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRecurringResult(res))
}

// @Summary      Copy an order's payment method onto a subscription
// @Tags         subscriptions
// @Accept       json
// @Param        subscription_id  path  string                                    true  "Subscription ID"
// @Param        payload          body  request.SubscriptionPaymentMethodRequest  true  "Source order"
// @Success      204
// @Failure      400  {object}  pkg.HTTPError
// @Router       /subscriptions/{subscription_id}/payment-method [put]
func (h *SubscriptionHandler) UpdatePaymentMethod(c *gin.Context) {
	subscriptionID := c.Param("subscription_id")

	var payload request.SubscriptionPaymentMethodRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}
	if err := h.usecase.UpdateFailingPaymentMethod(c.Request.Context(), subscriptionID, payload.OrderID); err != nil {
		abortWithError(c, mapPaymentError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Stored payment method of a subscription
// @Tags         subscriptions
// @Produce      json
// @Param        subscription_id  path  string  true  "Subscription ID"
// @Success      200  {object}  response.PaymentMetaResponse
// @Router       /subscriptions/{subscription_id}/payment-method [get]
func (h *SubscriptionHandler) GetPaymentMethod(c *gin.Context) {
	subscriptionID := c.Param("subscription_id")

	meta, err := h.usecase.SubscriptionPaymentMeta(c.Request.Context(), subscriptionID)
	if err != nil {
		abortWithError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentMeta(subscriptionID, meta))
}

// @Summary      Validate payment meta edited by a store manager
// @Tags         subscriptions
// @Accept       json
// @Param        payload  body  request.PaymentMetaRequest  true  "Payment meta"
// @Success      204
// @Failure      400  {object}  pkg.HTTPError
// @Router       /subscriptions/payment-meta/validate [post]
func (h *SubscriptionHandler) ValidatePaymentMeta(c *gin.Context) {
	var payload request.PaymentMetaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}
	if err := h.usecase.ValidatePaymentMeta(payload.Meta); err != nil {
		abortWithError(c, mapPaymentError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteResubscribeMeta drops the stored payment method copied onto a
// resubscribe order.
//
// @Summary      Drop the payment method of a resubscribe order
// @Tags         subscriptions
// @Param        order_id  path  string  true  "Order ID"
// @Success      204
// @Router       /orders/{order_id}/payment-method [delete]
func (h *SubscriptionHandler) DeleteResubscribeMeta(c *gin.Context) {
	if err := h.usecase.DeleteResubscribeMeta(c.Request.Context(), c.Param("order_id")); err != nil {
		abortWithError(c, mapPaymentError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
