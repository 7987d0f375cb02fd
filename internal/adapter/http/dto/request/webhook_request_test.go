package request

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func bindRequest(req *http.Request) (string, string) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	n := BindWebhook(c)
	return n.Event, n.InvoiceID
}

func TestBindWebhook(t *testing.T) {
	t.Run("form encoded", func(t *testing.T) {
		form := url.Values{"event": {"invoice.status_changed"}, "data[id]": {" inv_1 "}, "data[status]": {"paid"}}
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/iugu", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		event, id := bindRequest(req)
		if event != "invoice.status_changed" || id != "inv_1" {
			t.Fatalf("unexpected event=%q id=%q", event, id)
		}
	})

	t.Run("json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/iugu", strings.NewReader(`{"event":"invoice.status_changed","data":{"id":"inv_2"}}`))
		req.Header.Set("Content-Type", "application/json")

		event, id := bindRequest(req)
		if event != "invoice.status_changed" || id != "inv_2" {
			t.Fatalf("unexpected event=%q id=%q", event, id)
		}
	})

	t.Run("broken json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/iugu", strings.NewReader(`{`))
		req.Header.Set("Content-Type", "application/json")

		if event, id := bindRequest(req); event != "" || id != "" {
			t.Fatalf("expected empty notification, got event=%q id=%q", event, id)
		}
	})
}
