package request

import (
	"errors"
	"testing"

	"iugu_gateway/internal/domain/entities"
)

func TestPaymentRequest_ToChargeInput(t *testing.T) {
	cases := []struct {
		name    string
		req     PaymentRequest
		want    entities.PaymentMethod
		wantErr error
	}{
		{"card", PaymentRequest{PaymentMethod: " credit-card ", Token: " tok ", Installments: 6}, entities.PaymentMethodCreditCard, nil},
		{"bank slip", PaymentRequest{PaymentMethod: "bank-slip"}, entities.PaymentMethodBankSlip, nil},
		{"too many installments", PaymentRequest{PaymentMethod: "credit-card", Installments: 13}, "", ErrInvalidInstallments},
		{"negative installments", PaymentRequest{PaymentMethod: "credit-card", Installments: -1}, "", ErrInvalidInstallments},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in, err := c.req.ToChargeInput()
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("expected %v, got %v", c.wantErr, err)
			}
			if in.Method != c.want {
				t.Fatalf("expected method %q, got %q", c.want, in.Method)
			}
			if c.name == "card" && (in.Token != "tok" || in.Installments != 6) {
				t.Fatalf("unexpected input %+v", in)
			}
		})
	}
}
