package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"iugu_gateway/internal/domain/entities"
	"iugu_gateway/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	PaymentMetaLabel = "Iugu Payment Method ID"

	msgCardDeclined = "Credit card declined."
)

// PaymentMeta is the stored payment method of a subscription as shown to
// store managers.
type PaymentMeta struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Label string `json:"label"`
}

// ISubscriptionUseCase covers the flows that charge without the payer present
// (renewals and pre-order releases) and the bookkeeping of stored payment
// methods on subscriptions.
type ISubscriptionUseCase interface {
	ProcessSubscription(ctx context.Context, order entities.Order, input ChargeInput) (ChargeOutcome, error)
	ProcessPreOrder(ctx context.Context, order entities.Order, input ChargeInput) (ChargeOutcome, error)
	ScheduledSubscriptionPayment(ctx context.Context, orderID string, amount float64) (RecurringResult, error)
	PreOrderRelease(ctx context.Context, orderID string) (RecurringResult, error)
	UpdateFailingPaymentMethod(ctx context.Context, subscriptionID, orderID string) error
	DeleteResubscribeMeta(ctx context.Context, orderID string) error
	SubscriptionPaymentMeta(ctx context.Context, subscriptionID string) (PaymentMeta, error)
	ValidatePaymentMeta(meta map[string]string) error
}

type SubscriptionUseCase struct {
	orders    interfaces.IOrderStore
	cart      interfaces.ICart
	charges   IChargeUseCase
	customers ICustomerUseCase
	settings  Settings
	log       *zap.Logger
}

var _ ISubscriptionUseCase = (*SubscriptionUseCase)(nil)

func NewSubscriptionUseCase(orders interfaces.IOrderStore, cart interfaces.ICart, charges IChargeUseCase, customers ICustomerUseCase, settings Settings, log *zap.Logger) *SubscriptionUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &SubscriptionUseCase{
		orders:    orders,
		cart:      cart,
		charges:   charges,
		customers: customers,
		settings:  settings,
		log:       log.Named("subscription"),
	}
}

// ProcessSubscription stores the card as a customer payment method on the
// order and its subscriptions, then charges the first payment with it.
func (u *SubscriptionUseCase) ProcessSubscription(ctx context.Context, order entities.Order, input ChargeInput) (ChargeOutcome, error) {
	pmID, err := u.storePaymentMethod(ctx, order, input)
	if err != nil {
		return ChargeOutcome{}, err
	}

	for _, subID := range order.SubscriptionIDs {
		if err := u.orders.SetMetadata(ctx, subID, entities.MetaCustomerPaymentMethodID, pmID); err != nil {
			u.log.Error("save payment method on subscription failed", zap.String("subscription_id", subID), zap.Error(err))
			return ChargeOutcome{}, err
		}
	}

	order.Metadata = withMeta(order.Metadata, entities.MetaCustomerPaymentMethodID, pmID)
	res := u.charges.ChargeRecurring(ctx, order, order.Total)
	if res.Err != nil {
		u.log.Info("subscription first payment failed", zap.String("order_id", order.ID), zap.Error(res.Err))
		return ChargeOutcome{}, res.Err
	}
	u.emptyCart(ctx, order)

	return ChargeOutcome{
		OrderID:     order.ID,
		InvoiceID:   res.InvoiceID,
		Paid:        true,
		Status:      entities.OrderStatusProcessing,
		RedirectURL: returnURL(u.settings.StoreBaseURL, order),
	}, nil
}

// ProcessPreOrder stores the card for a pre-order charged on release. Pre-orders
// charged upfront go through the plain charge flow.
func (u *SubscriptionUseCase) ProcessPreOrder(ctx context.Context, order entities.Order, input ChargeInput) (ChargeOutcome, error) {
	if !order.PreOrderRequiresTokenization {
		return u.charges.Pay(ctx, order, input)
	}

	if _, err := u.storePaymentMethod(ctx, order, input); err != nil {
		return ChargeOutcome{}, err
	}
	u.emptyCart(ctx, order)

	if err := u.orders.UpdateStatus(ctx, order.ID, entities.OrderStatusPreOrdered, ""); err != nil {
		return ChargeOutcome{}, err
	}
	return ChargeOutcome{
		OrderID:     order.ID,
		Status:      entities.OrderStatusPreOrdered,
		RedirectURL: returnURL(u.settings.StoreBaseURL, order),
	}, nil
}

// ScheduledSubscriptionPayment charges a renewal order. On failure the order
// is marked failed with the failure message and the result is returned
// without error; err is only set when the order cannot be loaded. A transport
// failure leaves the order as it was, since the charge may have gone through.
func (u *SubscriptionUseCase) ScheduledSubscriptionPayment(ctx context.Context, orderID string, amount float64) (RecurringResult, error) {
	order, err := loadOrder(ctx, u.orders, orderID)
	if err != nil {
		return RecurringResult{}, err
	}

	res := u.charges.ChargeRecurring(ctx, order, amount)
	if entities.IsTransportError(res.Err) {
		u.log.Warn("scheduled payment outcome unknown", zap.String("order_id", order.ID), zap.Error(res.Err))
		return res, nil
	}
	if res.Err != nil {
		u.log.Info("scheduled payment failed", zap.String("order_id", order.ID), zap.String("message", res.Message))
		if err := u.orders.UpdateStatus(ctx, order.ID, entities.OrderStatusFailed, res.Message); err != nil {
			return res, err
		}
	}
	return res, nil
}

// PreOrderRelease charges a released pre-order with its stored payment method.
// A failure marks the order failed, or only adds a note when it already is.
// Transport failures leave the order untouched.
func (u *SubscriptionUseCase) PreOrderRelease(ctx context.Context, orderID string) (RecurringResult, error) {
	order, err := loadOrder(ctx, u.orders, orderID)
	if err != nil {
		return RecurringResult{}, err
	}
	u.log.Info("processing pre-order release", zap.String("order_id", order.ID))

	res := RecurringResult{OrderID: order.ID}
	reason := ""

	pmID := strings.TrimSpace(order.Meta(entities.MetaCustomerPaymentMethodID))
	if pmID == "" {
		res.Err = ErrPaymentMethodNotFound
		reason = MsgPaymentMethodMissing
	} else {
		charge, err := u.charges.ChargeStored(ctx, order, pmID)
		res.InvoiceID = charge.InvoiceID
		switch {
		case entities.IsTransportError(err):
			u.log.Warn("pre-order release outcome unknown", zap.String("order_id", order.ID), zap.Error(err))
			res.Err = err
			res.Message = payerMessage(err)
			return res, nil
		case err != nil:
			res.Err = err
			reason = payerMessage(err)
		case !charge.Success:
			res.Err = &DeclinedError{Messages: []string{msgCardDeclined}}
			reason = msgCardDeclined
		default:
			if err := u.orders.AddNote(ctx, order.ID, NoteCardPaid); err != nil {
				u.log.Warn("add order note failed", zap.String("order_id", order.ID), zap.Error(err))
			}
			if err := u.orders.MarkPaymentComplete(ctx, order.ID); err != nil {
				return res, err
			}
			res.Success = true
			return res, nil
		}
	}

	res.Message = fmt.Sprintf("Iugu: Pre-order payment failed (%s).", reason)
	if order.Status != entities.OrderStatusFailed {
		err = u.orders.UpdateStatus(ctx, order.ID, entities.OrderStatusFailed, res.Message)
	} else {
		err = u.orders.AddNote(ctx, order.ID, res.Message)
	}
	return res, err
}

// UpdateFailingPaymentMethod copies the payment method used to pay orderID
// onto the subscription whose renewal had failed.
func (u *SubscriptionUseCase) UpdateFailingPaymentMethod(ctx context.Context, subscriptionID, orderID string) error {
	subscriptionID = strings.TrimSpace(subscriptionID)
	if subscriptionID == "" {
		return ErrInvalidOrderID
	}
	order, err := loadOrder(ctx, u.orders, orderID)
	if err != nil {
		return err
	}
	pmID := strings.TrimSpace(order.Meta(entities.MetaCustomerPaymentMethodID))
	if pmID == "" {
		return ErrPaymentMethodNotFound
	}
	return u.orders.SetMetadata(ctx, subscriptionID, entities.MetaCustomerPaymentMethodID, pmID)
}

// DeleteResubscribeMeta drops the stored payment method copied onto a
// resubscribe order so the payer must enter a card again.
func (u *SubscriptionUseCase) DeleteResubscribeMeta(ctx context.Context, orderID string) error {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return ErrInvalidOrderID
	}
	return u.orders.DeleteMetadata(ctx, orderID, entities.MetaCustomerPaymentMethodID)
}

func (u *SubscriptionUseCase) SubscriptionPaymentMeta(ctx context.Context, subscriptionID string) (PaymentMeta, error) {
	subscriptionID = strings.TrimSpace(subscriptionID)
	if subscriptionID == "" {
		return PaymentMeta{}, ErrInvalidOrderID
	}
	v, err := u.orders.GetMetadata(ctx, subscriptionID, entities.MetaCustomerPaymentMethodID)
	if err != nil {
		return PaymentMeta{}, err
	}
	return PaymentMeta{Key: entities.MetaCustomerPaymentMethodID, Value: v, Label: PaymentMetaLabel}, nil
}

func (u *SubscriptionUseCase) ValidatePaymentMeta(meta map[string]string) error {
	if strings.TrimSpace(meta[entities.MetaCustomerPaymentMethodID]) == "" {
		return ErrMissingPaymentMeta
	}
	return nil
}

func (u *SubscriptionUseCase) storePaymentMethod(ctx context.Context, order entities.Order, input ChargeInput) (string, error) {
	if strings.TrimSpace(input.Token) == "" {
		u.log.Info("missing card token", zap.String("order_id", order.ID))
		return "", ErrMissingCardToken
	}

	pmID, err := u.customers.CreatePaymentMethod(ctx, order, input.Token)
	if err != nil || pmID == "" {
		u.log.Warn("invalid customer payment method", zap.String("order_id", order.ID), zap.Error(err))
		if errors.Is(err, ErrPaymentMethodCreateFailed) {
			return "", err
		}
		return "", ErrPaymentMethodCreateFailed
	}

	if err := u.orders.SetMetadata(ctx, order.ID, entities.MetaCustomerPaymentMethodID, pmID); err != nil {
		return "", err
	}
	return pmID, nil
}

func (u *SubscriptionUseCase) emptyCart(ctx context.Context, order entities.Order) {
	if u.cart == nil || order.AccountID <= 0 {
		return
	}
	if err := u.cart.EmptyCart(ctx, order.AccountID); err != nil {
		u.log.Warn("empty cart failed", zap.Int64("account_id", order.AccountID), zap.Error(err))
	}
}

func loadOrder(ctx context.Context, orders interfaces.IOrderStore, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	order, err := orders.GetOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return order, nil
}

func withMeta(meta map[string]string, key, value string) map[string]string {
	out := make(map[string]string, len(meta)+1)
	for k, v := range meta {
		out[k] = v
	}
	out[key] = value
	return out
}
