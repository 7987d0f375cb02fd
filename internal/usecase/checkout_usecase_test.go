package usecase

import (
	"context"
	"errors"
	"testing"

	"iugu_gateway/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

func newCheckoutUseCase(t *testing.T, s Settings) (*CheckoutUseCase, chargeDeps) {
	t.Helper()
	charges, d := newChargeUseCase(t, s)
	subs := NewSubscriptionUseCase(d.orders, d.cart, charges, charges.customers, s, nil)
	return NewCheckoutUseCase(d.orders, charges, subs, s, nil), d
}

func TestClassify(t *testing.T) {
	both := Capabilities{Subscriptions: true, PreOrders: true}
	cases := []struct {
		name  string
		order entities.Order
		caps  Capabilities
		want  OrderKind
	}{
		{"plain", entities.Order{}, both, OrderKindPlain},
		{"subscription", entities.Order{ContainsSubscription: true}, both, OrderKindSubscription},
		{"pre-order", entities.Order{ContainsPreOrder: true}, both, OrderKindPreOrder},
		{"subscription wins", entities.Order{ContainsSubscription: true, ContainsPreOrder: true}, both, OrderKindSubscription},
		{"subscriptions unavailable", entities.Order{ContainsSubscription: true}, Capabilities{PreOrders: true}, OrderKindPlain},
		{"pre-orders unavailable", entities.Order{ContainsPreOrder: true}, Capabilities{}, OrderKindPlain},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Classify(c.order, c.caps); got != c.want {
				t.Fatalf("expected %s, got %s", c.want, got)
			}
		})
	}
}

func TestCheckoutUseCase_ProcessPayment(t *testing.T) {
	t.Run("plain order", func(t *testing.T) {
		uc, d := newCheckoutUseCase(t, DefaultSettings())
		d.orders.EXPECT().GetOrder(gomock.Any(), "42").Return(sampleOrder(), nil)
		d.gateway.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return("inv_1", nil)
		d.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(entities.Charge{Success: true, InvoiceID: "inv_1", PDF: "https://pdf"}, nil)
		d.orders.EXPECT().SetMetadata(gomock.Any(), "42", gomock.Any(), gomock.Any()).Return(nil).Times(2)
		d.orders.EXPECT().SetTransactionID(gomock.Any(), "42", "inv_1").Return(nil)
		d.cart.EXPECT().EmptyCart(gomock.Any(), int64(7)).Return(nil)
		d.orders.EXPECT().UpdateStatus(gomock.Any(), "42", entities.OrderStatusOnHold, NoteBankSlipGenerated).Return(nil)

		res, err := uc.ProcessPayment(context.Background(), "42", ChargeInput{Method: entities.PaymentMethodBankSlip})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Kind != OrderKindPlain || res.PDF != "https://pdf" || res.Status != entities.OrderStatusOnHold {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("subscription is ignored without the extension", func(t *testing.T) {
		uc, d := newCheckoutUseCase(t, DefaultSettings())
		order := sampleOrder()
		order.ContainsSubscription = true
		d.orders.EXPECT().GetOrder(gomock.Any(), "42").Return(order, nil)
		d.gateway.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return("inv_1", nil)
		d.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(entities.Charge{Success: true, InvoiceID: "inv_1"}, nil)
		d.orders.EXPECT().SetMetadata(gomock.Any(), "42", gomock.Any(), gomock.Any()).Return(nil).Times(2)
		d.orders.EXPECT().SetTransactionID(gomock.Any(), "42", "inv_1").Return(nil)
		d.cart.EXPECT().EmptyCart(gomock.Any(), int64(7)).Return(nil)
		d.orders.EXPECT().UpdateStatus(gomock.Any(), "42", entities.OrderStatusOnHold, NoteBankSlipGenerated).Return(nil)

		res, err := uc.ProcessPayment(context.Background(), "42", ChargeInput{Method: entities.PaymentMethodBankSlip})
		if err != nil || res.Kind != OrderKindPlain {
			t.Fatalf("unexpected result %+v err=%v", res, err)
		}
	})

	t.Run("subscription requires a card", func(t *testing.T) {
		s := DefaultSettings()
		s.Capabilities = Capabilities{Subscriptions: true}
		uc, d := newCheckoutUseCase(t, s)
		order := sampleOrder()
		order.ContainsSubscription = true
		d.orders.EXPECT().GetOrder(gomock.Any(), "42").Return(order, nil)

		_, err := uc.ProcessPayment(context.Background(), "42", ChargeInput{Method: entities.PaymentMethodBankSlip})
		if !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
	})

	t.Run("subscription dispatch", func(t *testing.T) {
		s := DefaultSettings()
		s.Capabilities = Capabilities{Subscriptions: true}
		uc, d := newCheckoutUseCase(t, s)
		order := sampleOrder()
		order.ContainsSubscription = true
		d.orders.EXPECT().GetOrder(gomock.Any(), "42").Return(order, nil)

		// Reaching the token check proves the subscription flow ran.
		res, err := uc.ProcessPayment(context.Background(), "42", ChargeInput{Method: entities.PaymentMethodCreditCard})
		if !errors.Is(err, ErrMissingCardToken) || res.Kind != OrderKindSubscription {
			t.Fatalf("unexpected result %+v err=%v", res, err)
		}
	})

	t.Run("pre-order dispatch", func(t *testing.T) {
		s := DefaultSettings()
		s.Capabilities = Capabilities{PreOrders: true}
		uc, d := newCheckoutUseCase(t, s)
		order := sampleOrder()
		order.ContainsPreOrder = true
		order.PreOrderRequiresTokenization = true
		d.orders.EXPECT().GetOrder(gomock.Any(), "42").Return(order, nil)
		d.customers.EXPECT().GetMetadata(gomock.Any(), int64(7), entities.MetaCustomerID).Return("cus_1", nil)
		d.gateway.EXPECT().CreatePaymentMethod(gomock.Any(), gomock.Any()).Return("pm_1", nil)
		d.orders.EXPECT().SetMetadata(gomock.Any(), "42", entities.MetaCustomerPaymentMethodID, "pm_1").Return(nil)
		d.cart.EXPECT().EmptyCart(gomock.Any(), int64(7)).Return(nil)
		d.orders.EXPECT().UpdateStatus(gomock.Any(), "42", entities.OrderStatusPreOrdered, "").Return(nil)

		res, err := uc.ProcessPayment(context.Background(), "42", ChargeInput{Method: entities.PaymentMethodCreditCard, Token: "tok"})
		if err != nil || res.Kind != OrderKindPreOrder || res.Status != entities.OrderStatusPreOrdered {
			t.Fatalf("unexpected result %+v err=%v", res, err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		uc, d := newCheckoutUseCase(t, DefaultSettings())
		order := sampleOrder()
		order.TransactionID = "inv_0"
		order.Status = entities.OrderStatusProcessing
		d.orders.EXPECT().GetOrder(gomock.Any(), "42").Return(order, nil)

		if _, err := uc.ProcessPayment(context.Background(), "42", ChargeInput{Method: entities.PaymentMethodBankSlip}); !errors.Is(err, ErrOrderAlreadyPaid) {
			t.Fatalf("expected ErrOrderAlreadyPaid, got %v", err)
		}
	})

	t.Run("blank order id", func(t *testing.T) {
		uc, _ := newCheckoutUseCase(t, DefaultSettings())
		if _, err := uc.ProcessPayment(context.Background(), " ", ChargeInput{}); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		uc, d := newCheckoutUseCase(t, DefaultSettings())
		d.orders.EXPECT().GetOrder(gomock.Any(), "9").Return(entities.Order{}, nil)
		if _, err := uc.ProcessPayment(context.Background(), "9", ChargeInput{}); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestCheckoutUseCase_BankSlipLink(t *testing.T) {
	withMetaOrder := func(status entities.OrderStatus, meta map[string]string) entities.Order {
		o := sampleOrder()
		o.Status = status
		o.Metadata = meta
		return o
	}
	cases := []struct {
		name    string
		order   entities.Order
		want    string
		wantErr error
	}{
		{"stored url", withMetaOrder(entities.OrderStatusOnHold, map[string]string{entities.MetaBankSlipURL: "https://slip"}), "https://slip", nil},
		{"transaction data fallback", withMetaOrder(entities.OrderStatusPending, map[string]string{entities.MetaTransactionData: `{"pdf":"https://pdf"}`}), "https://pdf", nil},
		{"paid order", withMetaOrder(entities.OrderStatusProcessing, map[string]string{entities.MetaBankSlipURL: "https://slip"}), "", ErrBankSlipUnavailable},
		{"nothing stored", withMetaOrder(entities.OrderStatusOnHold, nil), "", ErrBankSlipUnavailable},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			uc, d := newCheckoutUseCase(t, DefaultSettings())
			d.orders.EXPECT().GetOrder(gomock.Any(), "42").Return(c.order, nil)

			got, err := uc.BankSlipLink(context.Background(), "42")
			if !errors.Is(err, c.wantErr) || got != c.want {
				t.Fatalf("expected %q/%v, got %q/%v", c.want, c.wantErr, got, err)
			}
		})
	}

	t.Run("card order", func(t *testing.T) {
		uc, d := newCheckoutUseCase(t, DefaultSettings())
		order := withMetaOrder(entities.OrderStatusOnHold, map[string]string{entities.MetaBankSlipURL: "https://slip"})
		order.PaymentMethod = entities.PaymentMethodCreditCard
		d.orders.EXPECT().GetOrder(gomock.Any(), "42").Return(order, nil)

		if _, err := uc.BankSlipLink(context.Background(), "42"); !errors.Is(err, ErrBankSlipUnavailable) {
			t.Fatalf("expected ErrBankSlipUnavailable, got %v", err)
		}
	})
}

func TestCheckoutUseCase_PaymentOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		uc, _ := newCheckoutUseCase(t, DefaultSettings())
		opts := uc.PaymentOptions()
		if !opts.Available || len(opts.Methods) != 2 {
			t.Fatalf("unexpected options %+v", opts)
		}
		if len(opts.Installments) != 12 || opts.Installments[0].Months != 1 || opts.Installments[0].InterestRate != 0 {
			t.Fatalf("unexpected installments %+v", opts.Installments)
		}
		if last := opts.Installments[11]; last.Months != 12 || last.InterestRate != 22 {
			t.Fatalf("unexpected last installment %+v", last)
		}
	})

	t.Run("bank slip only in another currency", func(t *testing.T) {
		s := DefaultSettings()
		s.CreditCardEnabled = false
		s.Currency = "USD"
		uc, _ := newCheckoutUseCase(t, s)
		opts := uc.PaymentOptions()
		if opts.Available || len(opts.Methods) != 1 || opts.Methods[0] != entities.PaymentMethodBankSlip || opts.Installments != nil {
			t.Fatalf("unexpected options %+v", opts)
		}
	})
}
