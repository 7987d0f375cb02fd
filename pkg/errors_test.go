package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause")
	}
	body := err.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" || body.Details != nil {
		t.Fatalf("unexpected body %+v", body)
	}

	declined := NewDomainErrorSimple("PAYMENT_DECLINED", "Payment declined", http.StatusPaymentRequired)
	withDetails := declined.WithDetails("Saldo insuficiente")
	if len(declined.Details) != 0 || withDetails.ToHTTPError().Details[0] != "Saldo insuficiente" {
		t.Fatalf("details must not leak into the receiver: %+v %+v", declined, withDetails)
	}
}
