package usecase

import (
	"context"
	"fmt"
	"strings"

	"iugu_gateway/internal/domain/entities"
	"iugu_gateway/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ICustomerUseCase maps store accounts to remote customers and stores card
// tokens as reusable payment methods.
type ICustomerUseCase interface {
	ResolveCustomer(ctx context.Context, order entities.Order) (string, error)
	CreatePaymentMethod(ctx context.Context, order entities.Order, token string) (string, error)
	DefaultPaymentMethod(ctx context.Context, accountID int64) (string, error)
}

type CustomerUseCase struct {
	gateway   interfaces.IBillingGateway
	customers interfaces.ICustomerStore
	settings  Settings
	hook      func(entities.Order, entities.CustomerRequest) entities.CustomerRequest
	log       *zap.Logger
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(gateway interfaces.IBillingGateway, customers interfaces.ICustomerStore, settings Settings, hooks Hooks, log *zap.Logger) *CustomerUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &CustomerUseCase{
		gateway:   gateway,
		customers: customers,
		settings:  settings,
		hook:      hooks.Customer,
		log:       log.Named("customer"),
	}
}

// ResolveCustomer returns the remote customer id for the order's account,
// creating the customer on first use. Guest orders (AccountID 0) get a fresh
// customer every time since there is no account to remember it on.
func (u *CustomerUseCase) ResolveCustomer(ctx context.Context, order entities.Order) (string, error) {
	if order.AccountID > 0 {
		id, err := u.customers.GetMetadata(ctx, order.AccountID, entities.MetaCustomerID)
		if err != nil {
			u.log.Warn("read customer mapping failed", zap.Int64("account_id", order.AccountID), zap.Error(err))
		} else if id = strings.TrimSpace(id); id != "" {
			return id, nil
		}
	}

	u.log.Debug("creating customer", zap.String("order_id", order.ID))
	req := entities.CustomerRequest{
		Email:        order.Billing.Email,
		Name:         strings.TrimSpace(order.Billing.FirstName + " " + order.Billing.LastName),
		CPFCNPJ:      payerDocument(order.Billing, u.settings.PersonType),
		SetAsDefault: true,
	}
	if u.hook != nil {
		req = u.hook(order, req)
	}

	id, err := u.gateway.CreateCustomer(ctx, req)
	if err != nil {
		u.log.Error("create customer failed", zap.String("order_id", order.ID), zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrCustomerCreateFailed, err)
	}
	u.log.Debug("customer created", zap.String("order_id", order.ID), zap.String("customer_id", id))

	if order.AccountID > 0 {
		if err := u.customers.SetMetadata(ctx, order.AccountID, entities.MetaCustomerID, id); err != nil {
			u.log.Warn("save customer mapping failed", zap.Int64("account_id", order.AccountID), zap.Error(err))
		}
	}
	return id, nil
}

func (u *CustomerUseCase) CreatePaymentMethod(ctx context.Context, order entities.Order, token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingCardToken
	}

	u.log.Debug("creating customer payment method", zap.String("order_id", order.ID))
	customerID, err := u.ResolveCustomer(ctx, order)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPaymentMethodCreateFailed, err)
	}

	id, err := u.gateway.CreatePaymentMethod(ctx, entities.PaymentMethodRequest{
		CustomerID:  customerID,
		Description: fmt.Sprintf("Payment method created for order %s", order.DisplayNumber()),
		Token:       token,
	})
	if err != nil {
		u.log.Error("create payment method failed", zap.String("order_id", order.ID), zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrPaymentMethodCreateFailed, err)
	}
	return id, nil
}

// DefaultPaymentMethod reads the default payment method of the account's
// remote customer. It returns "" when the account has no customer yet.
func (u *CustomerUseCase) DefaultPaymentMethod(ctx context.Context, accountID int64) (string, error) {
	if accountID <= 0 {
		return "", nil
	}
	customerID, err := u.customers.GetMetadata(ctx, accountID, entities.MetaCustomerID)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(customerID) == "" {
		return "", nil
	}

	cus, err := u.gateway.GetCustomer(ctx, customerID)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(cus.DefaultPaymentMethodID), nil
}
