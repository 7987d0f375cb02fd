package routes

import (
	"net/http"

	"iugu_gateway/internal/adapter/http/handlers"
	"iugu_gateway/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	PathPing           = "/ping"
	PathOrders         = "/orders"
	PathSubscriptions  = "/subscriptions"
	PathWebhooks       = "/webhooks"
	PathPaymentOptions = "/payment-options"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler) {
	rg.GET(PathPaymentOptions, h.PaymentOptions)

	orders := rg.Group(PathOrders)
	{
		orders.POST("/:order_id/payments", h.ProcessPayment)
		orders.GET("/:order_id/bank-slip", h.BankSlipLink)
	}
}

// addSubscriptionRoutes registers the scheduler callbacks and the stored
// payment method maintenance endpoints.
func addSubscriptionRoutes(rg *gin.RouterGroup, h *handlers.SubscriptionHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("/:order_id/recurring-charges", h.RecurringCharge)
		orders.POST("/:order_id/pre-order-release", h.PreOrderRelease)
		orders.DELETE("/:order_id/payment-method", h.DeleteResubscribeMeta)
	}

	subscriptions := rg.Group(PathSubscriptions)
	{
		subscriptions.POST("/payment-meta/validate", h.ValidatePaymentMeta)
		subscriptions.GET("/:subscription_id/payment-method", h.GetPaymentMethod)
		subscriptions.PUT("/:subscription_id/payment-method", h.UpdatePaymentMethod)
	}
}

func addWebhookRoutes(rg *gin.RouterGroup, h *handlers.WebhookHandler, limit rate.Limit, burst int, log *zap.Logger) {
	webhooks := rg.Group(PathWebhooks, middleware.RateLimit(limit, burst, log))
	{
		webhooks.POST("/iugu", h.Notify)
	}
}
