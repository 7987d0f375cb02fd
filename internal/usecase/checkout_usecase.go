package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"iugu_gateway/internal/domain/entities"
	"iugu_gateway/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrOrderAlreadyPaid = errors.New("order already paid")

// Capabilities lists the optional store extensions available at runtime.
type Capabilities struct {
	Subscriptions bool
	PreOrders     bool
}

type OrderKind string

const (
	OrderKindPlain        OrderKind = "plain"
	OrderKindSubscription OrderKind = "subscription"
	OrderKindPreOrder     OrderKind = "pre-order"
)

// Classify decides which checkout flow applies to the order. Subscriptions win
// over pre-orders; an extension that is not available never classifies.
func Classify(order entities.Order, caps Capabilities) OrderKind {
	switch {
	case caps.Subscriptions && order.ContainsSubscription:
		return OrderKindSubscription
	case caps.PreOrders && order.ContainsPreOrder:
		return OrderKindPreOrder
	}
	return OrderKindPlain
}

type CheckoutResult struct {
	Kind OrderKind `json:"kind"`
	ChargeOutcome
}

type InstallmentOption struct {
	Months       int     `json:"months"`
	InterestRate float64 `json:"interest_rate"`
}

type PaymentOptions struct {
	Available        bool                     `json:"available"`
	AccountID        string                   `json:"account_id,omitempty"`
	Currency         string                   `json:"currency"`
	Methods          []entities.PaymentMethod `json:"methods"`
	Installments     []InstallmentOption      `json:"installments,omitempty"`
	TransactionRate  float64                  `json:"transaction_rate"`
	BankSlipDeadline int                      `json:"bank_slip_deadline"`
	Subscriptions    bool                     `json:"subscriptions"`
	PreOrders        bool                     `json:"pre_orders"`
}

type ICheckoutUseCase interface {
	ProcessPayment(ctx context.Context, orderID string, input ChargeInput) (CheckoutResult, error)
	BankSlipLink(ctx context.Context, orderID string) (string, error)
	PaymentOptions() PaymentOptions
}

type chargeStrategy func(ctx context.Context, order entities.Order, input ChargeInput) (ChargeOutcome, error)

type CheckoutUseCase struct {
	orders     interfaces.IOrderStore
	settings   Settings
	strategies map[OrderKind]chargeStrategy
	log        *zap.Logger
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(orders interfaces.IOrderStore, charges IChargeUseCase, subscriptions ISubscriptionUseCase, settings Settings, log *zap.Logger) *CheckoutUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &CheckoutUseCase{
		orders:   orders,
		settings: settings,
		strategies: map[OrderKind]chargeStrategy{
			OrderKindPlain:        charges.Pay,
			OrderKindSubscription: subscriptions.ProcessSubscription,
			OrderKindPreOrder:     subscriptions.ProcessPreOrder,
		},
		log: log.Named("checkout"),
	}
}

func (u *CheckoutUseCase) ProcessPayment(ctx context.Context, orderID string, input ChargeInput) (CheckoutResult, error) {
	order, err := loadOrder(ctx, u.orders, orderID)
	if err != nil {
		return CheckoutResult{}, err
	}
	if order.TransactionID != "" && order.Status.IsOneOf(entities.OrderStatusProcessing, entities.OrderStatusCompleted) {
		return CheckoutResult{}, ErrOrderAlreadyPaid
	}

	kind := Classify(order, u.settings.Capabilities)
	storesCard := kind == OrderKindSubscription || (kind == OrderKindPreOrder && order.PreOrderRequiresTokenization)
	if storesCard && input.Method != entities.PaymentMethodCreditCard {
		return CheckoutResult{}, ErrInvalidPaymentMethod
	}

	u.log.Info("processing payment",
		zap.String("order_id", order.ID),
		zap.String("kind", string(kind)),
		zap.String("method", string(input.Method)),
	)
	out, err := u.strategies[kind](ctx, order, input)
	if err != nil {
		return CheckoutResult{Kind: kind}, err
	}
	return CheckoutResult{Kind: kind, ChargeOutcome: out}, nil
}

// BankSlipLink returns the printable bank slip of an order still waiting for
// payment.
func (u *CheckoutUseCase) BankSlipLink(ctx context.Context, orderID string) (string, error) {
	order, err := loadOrder(ctx, u.orders, orderID)
	if err != nil {
		return "", err
	}
	if order.PaymentMethod != entities.PaymentMethodBankSlip ||
		!order.Status.IsOneOf(entities.OrderStatusPending, entities.OrderStatusOnHold) {
		return "", ErrBankSlipUnavailable
	}

	link := strings.TrimSpace(order.Meta(entities.MetaBankSlipURL))
	if link == "" {
		if raw := order.Meta(entities.MetaTransactionData); raw != "" {
			var data entities.TransactionData
			if err := json.Unmarshal([]byte(raw), &data); err == nil {
				link = strings.TrimSpace(data.PDF)
			}
		}
	}
	if link == "" {
		return "", ErrBankSlipUnavailable
	}
	return link, nil
}

func (u *CheckoutUseCase) PaymentOptions() PaymentOptions {
	opts := PaymentOptions{
		Available:        u.settings.UsingSupportedCurrency(),
		AccountID:        u.settings.AccountID,
		Currency:         SupportedCurrency,
		TransactionRate:  u.settings.TransactionRate,
		BankSlipDeadline: u.settings.BankSlipDeadline,
		Subscriptions:    u.settings.Capabilities.Subscriptions,
		PreOrders:        u.settings.Capabilities.PreOrders,
	}
	if u.settings.CreditCardEnabled {
		opts.Methods = append(opts.Methods, entities.PaymentMethodCreditCard)
		opts.Installments = installmentOptions(u.settings.InterestRates)
	}
	if u.settings.BankSlipEnabled {
		opts.Methods = append(opts.Methods, entities.PaymentMethodBankSlip)
	}
	return opts
}

// installmentOptions always offers a single payment without interest,
// followed by the configured rates in ascending month order.
func installmentOptions(rates map[int]float64) []InstallmentOption {
	out := []InstallmentOption{{Months: 1}}
	months := make([]int, 0, len(rates))
	for m := range rates {
		if m > 1 {
			months = append(months, m)
		}
	}
	sort.Ints(months)
	for _, m := range months {
		out = append(out, InstallmentOption{Months: m, InterestRate: rates[m]})
	}
	return out
}
