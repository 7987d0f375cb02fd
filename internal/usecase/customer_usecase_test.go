package usecase

import (
	"context"
	"errors"
	"testing"

	"iugu_gateway/internal/domain/entities"
	mock_interfaces "iugu_gateway/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newCustomerUseCase(t *testing.T, s Settings, hooks Hooks) (*CustomerUseCase, *mock_interfaces.MockIBillingGateway, *mock_interfaces.MockICustomerStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gateway := mock_interfaces.NewMockIBillingGateway(ctrl)
	store := mock_interfaces.NewMockICustomerStore(ctrl)
	return NewCustomerUseCase(gateway, store, s, hooks, nil), gateway, store
}

func TestCustomerUseCase_ResolveCustomer(t *testing.T) {
	t.Run("cached mapping", func(t *testing.T) {
		uc, _, store := newCustomerUseCase(t, DefaultSettings(), Hooks{})
		store.EXPECT().GetMetadata(gomock.Any(), int64(7), entities.MetaCustomerID).Return("cus_1", nil)

		id, err := uc.ResolveCustomer(context.Background(), sampleOrder())
		if err != nil || id != "cus_1" {
			t.Fatalf("unexpected id=%q err=%v", id, err)
		}
	})

	t.Run("creates and remembers customer", func(t *testing.T) {
		s := DefaultSettings()
		s.PersonType = entities.PersonTypeIndividual
		uc, gateway, store := newCustomerUseCase(t, s, Hooks{})

		store.EXPECT().GetMetadata(gomock.Any(), int64(7), entities.MetaCustomerID).Return("", nil)
		gateway.EXPECT().CreateCustomer(gomock.Any(), entities.CustomerRequest{
			Email:        "ana@example.com",
			Name:         "Ana Souza",
			CPFCNPJ:      "12345678909",
			SetAsDefault: true,
		}).Return("cus_2", nil)
		store.EXPECT().SetMetadata(gomock.Any(), int64(7), entities.MetaCustomerID, "cus_2").Return(nil)

		id, err := uc.ResolveCustomer(context.Background(), sampleOrder())
		if err != nil || id != "cus_2" {
			t.Fatalf("unexpected id=%q err=%v", id, err)
		}
	})

	t.Run("guest is never cached", func(t *testing.T) {
		uc, gateway, _ := newCustomerUseCase(t, DefaultSettings(), Hooks{})
		order := sampleOrder()
		order.AccountID = 0

		gateway.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return("cus_3", nil)

		id, err := uc.ResolveCustomer(context.Background(), order)
		if err != nil || id != "cus_3" {
			t.Fatalf("unexpected id=%q err=%v", id, err)
		}
	})

	t.Run("customer hook", func(t *testing.T) {
		hooks := Hooks{Customer: func(_ entities.Order, req entities.CustomerRequest) entities.CustomerRequest {
			req.Name = "Custom"
			return req
		}}
		uc, gateway, _ := newCustomerUseCase(t, DefaultSettings(), hooks)
		order := sampleOrder()
		order.AccountID = 0

		gateway.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req entities.CustomerRequest) (string, error) {
			if req.Name != "Custom" {
				t.Fatalf("expected hook to apply, got %q", req.Name)
			}
			return "cus_4", nil
		})

		if _, err := uc.ResolveCustomer(context.Background(), order); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("remote failure", func(t *testing.T) {
		uc, gateway, store := newCustomerUseCase(t, DefaultSettings(), Hooks{})
		store.EXPECT().GetMetadata(gomock.Any(), int64(7), entities.MetaCustomerID).Return("", nil)
		gateway.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return("", &entities.RemoteError{Endpoint: "customers", StatusCode: 500})

		_, err := uc.ResolveCustomer(context.Background(), sampleOrder())
		if !errors.Is(err, ErrCustomerCreateFailed) {
			t.Fatalf("expected ErrCustomerCreateFailed, got %v", err)
		}
	})
}

func TestCustomerUseCase_CreatePaymentMethod(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc, gateway, store := newCustomerUseCase(t, DefaultSettings(), Hooks{})
		store.EXPECT().GetMetadata(gomock.Any(), int64(7), entities.MetaCustomerID).Return("cus_1", nil)
		gateway.EXPECT().CreatePaymentMethod(gomock.Any(), entities.PaymentMethodRequest{
			CustomerID:  "cus_1",
			Description: "Payment method created for order 1042",
			Token:       "tok_abc",
		}).Return("pm_1", nil)

		id, err := uc.CreatePaymentMethod(context.Background(), sampleOrder(), "tok_abc")
		if err != nil || id != "pm_1" {
			t.Fatalf("unexpected id=%q err=%v", id, err)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		uc, _, _ := newCustomerUseCase(t, DefaultSettings(), Hooks{})
		if _, err := uc.CreatePaymentMethod(context.Background(), sampleOrder(), ""); !errors.Is(err, ErrMissingCardToken) {
			t.Fatalf("expected ErrMissingCardToken, got %v", err)
		}
	})

	t.Run("remote failure", func(t *testing.T) {
		uc, gateway, store := newCustomerUseCase(t, DefaultSettings(), Hooks{})
		store.EXPECT().GetMetadata(gomock.Any(), int64(7), entities.MetaCustomerID).Return("cus_1", nil)
		gateway.EXPECT().CreatePaymentMethod(gomock.Any(), gomock.Any()).Return("", &entities.RemoteError{Endpoint: "customers/cus_1/payment_methods", StatusCode: 422})

		if _, err := uc.CreatePaymentMethod(context.Background(), sampleOrder(), "tok"); !errors.Is(err, ErrPaymentMethodCreateFailed) {
			t.Fatalf("expected ErrPaymentMethodCreateFailed, got %v", err)
		}
	})
}

func TestCustomerUseCase_DefaultPaymentMethod(t *testing.T) {
	t.Run("guest", func(t *testing.T) {
		uc, _, _ := newCustomerUseCase(t, DefaultSettings(), Hooks{})
		id, err := uc.DefaultPaymentMethod(context.Background(), 0)
		if err != nil || id != "" {
			t.Fatalf("unexpected id=%q err=%v", id, err)
		}
	})

	t.Run("customer default", func(t *testing.T) {
		uc, gateway, store := newCustomerUseCase(t, DefaultSettings(), Hooks{})
		store.EXPECT().GetMetadata(gomock.Any(), int64(7), entities.MetaCustomerID).Return("cus_1", nil)
		gateway.EXPECT().GetCustomer(gomock.Any(), "cus_1").Return(entities.RemoteCustomer{DefaultPaymentMethodID: " pm_2 "}, nil)

		id, err := uc.DefaultPaymentMethod(context.Background(), 7)
		if err != nil || id != "pm_2" {
			t.Fatalf("unexpected id=%q err=%v", id, err)
		}
	})
}
