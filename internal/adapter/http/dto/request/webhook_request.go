package request

import (
	"strings"

	"iugu_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// WebhookRequest is the JSON shape of a billing notification. The provider
// posts the same fields form-encoded as event and data[id].
type WebhookRequest struct {
	Event string `json:"event"`
	Data  struct {
		ID     string `json:"id"`
		Status string `json:"status,omitempty"`
	} `json:"data"`
}

// BindWebhook reads a notification from either encoding. A body that cannot
// be read yields an empty notification, which the use case rejects.
func BindWebhook(c *gin.Context) usecase.WebhookNotification {
	if c.ContentType() == binding.MIMEJSON {
		var r WebhookRequest
		if err := c.ShouldBindJSON(&r); err != nil {
			return usecase.WebhookNotification{}
		}
		return usecase.WebhookNotification{Event: strings.TrimSpace(r.Event), InvoiceID: strings.TrimSpace(r.Data.ID)}
	}
	return usecase.WebhookNotification{
		Event:     strings.TrimSpace(c.PostForm("event")),
		InvoiceID: strings.TrimSpace(c.PostForm("data[id]")),
	}
}
