package handlers

import (
	"errors"
	"net/http"

	request "iugu_gateway/internal/adapter/http/dto/request"
	response "iugu_gateway/internal/adapter/http/dto/response"
	"iugu_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const reasonProcessingFailed = "processing failed"

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
	log     *zap.Logger
}

func NewWebhookHandler(uc usecase.IWebhookUseCase, log *zap.Logger) *WebhookHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &WebhookHandler{usecase: uc, log: log.Named("webhook_handler")}
}

// Notify handles billing notifications. Everything but a malformed
// notification is answered with 200 so the provider stops retrying.
//
// @Summary      Billing notification callback
// @Tags         webhooks
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        event     formData  string  true  "Event name"
// @Param        data[id]  formData  string  true  "Invoice ID"
// @Success      200  {object}  response.WebhookResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      429  {object}  pkg.HTTPError
// @Router       /webhooks/iugu [post]
func (h *WebhookHandler) Notify(c *gin.Context) {
	n := request.BindWebhook(c)

	res, err := h.usecase.HandleNotification(c.Request.Context(), n)
	switch {
	case errors.Is(err, usecase.ErrMalformedWebhook):
		abortWithError(c, mapPaymentError(err))
		return
	case err != nil:
		h.log.Error("notification failed", zap.String("invoice_id", n.InvoiceID), zap.Error(err))
		res = usecase.WebhookResult{Reason: reasonProcessingFailed}
	}
	c.JSON(http.StatusOK, response.FromWebhookResult(res))
}
