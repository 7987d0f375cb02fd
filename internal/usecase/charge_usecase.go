package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"iugu_gateway/internal/domain/entities"
	"iugu_gateway/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Order notes written by the charge flow.
const (
	NoteBankSlipGenerated      = "Iugu: The customer generated a bank slip, awaiting payment confirmation."
	NoteCardPaid               = "Iugu: Invoice paid successfully by credit card."
	NoteCardDeclined           = "Iugu: Credit card declined."
	NoteSubscriptionPaid       = "Iugu: Subscription paid successfully by credit card."
	NoteSubscriptionCardFailed = "Iugu: Subscription payment failed. Credit card declined."
)

// Metric result labels.
const (
	resultPaid     = "paid"
	resultPending  = "pending"
	resultDeclined = "declined"
	resultFailed   = "failed"
	resultError    = "error"
)

// ChargeInput is what the payer submitted at checkout.
type ChargeInput struct {
	Method                  entities.PaymentMethod
	Token                   string
	Installments            int
	CustomerPaymentMethodID string
}

// ChargeOutcome is the local result of an accepted charge attempt. A card
// refused without detailed errors is an outcome (Paid=false, Status=failed),
// not an error.
type ChargeOutcome struct {
	OrderID     string               `json:"order_id"`
	InvoiceID   string               `json:"invoice_id"`
	Paid        bool                 `json:"paid"`
	Status      entities.OrderStatus `json:"status"`
	PDF         string               `json:"pdf,omitempty"`
	RedirectURL string               `json:"redirect_url,omitempty"`
}

// RecurringResult reports a charge made without the payer present.
type RecurringResult struct {
	OrderID   string `json:"order_id"`
	InvoiceID string `json:"invoice_id,omitempty"`
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Err       error  `json:"-"`
}

type IChargeUseCase interface {
	Pay(ctx context.Context, order entities.Order, input ChargeInput) (ChargeOutcome, error)
	ChargeRecurring(ctx context.Context, order entities.Order, amount float64) RecurringResult
	ChargeStored(ctx context.Context, order entities.Order, paymentMethodID string) (entities.Charge, error)
}

type ChargeUseCase struct {
	gateway   interfaces.IBillingGateway
	orders    interfaces.IOrderStore
	cart      interfaces.ICart
	customers ICustomerUseCase
	metrics   interfaces.IPaymentMetrics
	builder   *InvoiceBuilder
	settings  Settings
	hook      func(entities.Order, entities.ChargeRequest) entities.ChargeRequest
	now       func() time.Time
	log       *zap.Logger
}

var _ IChargeUseCase = (*ChargeUseCase)(nil)

func NewChargeUseCase(
	gateway interfaces.IBillingGateway,
	orders interfaces.IOrderStore,
	cart interfaces.ICart,
	customers ICustomerUseCase,
	metrics interfaces.IPaymentMetrics,
	settings Settings,
	hooks Hooks,
	log *zap.Logger,
) *ChargeUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ChargeUseCase{
		gateway:   gateway,
		orders:    orders,
		cart:      cart,
		customers: customers,
		metrics:   metrics,
		builder:   NewInvoiceBuilder(settings, hooks),
		settings:  settings,
		hook:      hooks.Charge,
		now:       time.Now,
		log:       log.Named("charge"),
	}
}

// Pay creates an invoice for the order, charges it and records the result on
// the order.
func (u *ChargeUseCase) Pay(ctx context.Context, order entities.Order, input ChargeInput) (ChargeOutcome, error) {
	req, err := u.validate(input)
	if err != nil {
		u.log.Info("charge input rejected", zap.String("order_id", order.ID), zap.Error(err))
		return ChargeOutcome{}, err
	}
	method := string(input.Method)
	u.incAttempt(method)

	charge, err := u.createAndCharge(ctx, order, input.Method, req)
	if err != nil {
		u.incResult(method, resultFor(err))
		return ChargeOutcome{}, err
	}

	if err := u.saveTransactionData(ctx, order, input, charge); err != nil {
		u.incResult(method, resultError)
		return ChargeOutcome{}, err
	}
	if err := u.orders.SetTransactionID(ctx, order.ID, charge.InvoiceID); err != nil {
		u.log.Error("set transaction id failed", zap.String("order_id", order.ID), zap.String("invoice_id", charge.InvoiceID), zap.Error(err))
		u.incResult(method, resultError)
		return ChargeOutcome{}, err
	}
	if order.PaymentMethod != input.Method {
		if err := u.orders.SetPaymentMethod(ctx, order.ID, input.Method); err != nil {
			u.log.Error("set payment method failed", zap.String("order_id", order.ID), zap.String("method", method), zap.Error(err))
			u.incResult(method, resultError)
			return ChargeOutcome{}, err
		}
	}
	u.emptyCart(ctx, order)

	out := ChargeOutcome{
		OrderID:     order.ID,
		InvoiceID:   charge.InvoiceID,
		PDF:         charge.PDF,
		RedirectURL: returnURL(u.settings.StoreBaseURL, order),
	}

	switch {
	case input.Method == entities.PaymentMethodBankSlip:
		if err := u.orders.UpdateStatus(ctx, order.ID, entities.OrderStatusOnHold, NoteBankSlipGenerated); err != nil {
			return ChargeOutcome{}, err
		}
		out.Status = entities.OrderStatusOnHold
		u.incResult(method, resultPending)
	case charge.Success:
		if err := u.completePayment(ctx, order.ID, NoteCardPaid); err != nil {
			return ChargeOutcome{}, err
		}
		out.Paid = true
		out.Status = entities.OrderStatusProcessing
		u.incResult(method, resultPaid)
	default:
		if err := u.orders.UpdateStatus(ctx, order.ID, entities.OrderStatusFailed, NoteCardDeclined); err != nil {
			return ChargeOutcome{}, err
		}
		out.Status = entities.OrderStatusFailed
		u.incResult(method, resultFailed)
	}

	u.log.Info("charge done",
		zap.String("order_id", order.ID),
		zap.String("invoice_id", out.InvoiceID),
		zap.String("method", method),
		zap.Bool("paid", out.Paid),
		zap.String("status", string(out.Status)),
	)
	return out, nil
}

// ChargeRecurring charges amount against the payment method stored for the
// order (or the customer default). A zero amount completes the order without
// contacting the billing API.
func (u *ChargeUseCase) ChargeRecurring(ctx context.Context, order entities.Order, amount float64) RecurringResult {
	res := RecurringResult{OrderID: order.ID}
	if amount < 0 {
		res.Err = ErrInvalidAmount
		res.Message = ErrInvalidAmount.Error()
		return res
	}
	if ToMinorUnits(amount) == 0 {
		if err := u.orders.MarkPaymentComplete(ctx, order.ID); err != nil {
			res.Err = err
			res.Message = err.Error()
			return res
		}
		res.Success = true
		return res
	}

	u.log.Info("processing subscription payment", zap.String("order_id", order.ID), zap.Float64("amount", amount))

	pmID := strings.TrimSpace(order.Meta(entities.MetaCustomerPaymentMethodID))
	if pmID == "" {
		def, err := u.customers.DefaultPaymentMethod(ctx, order.AccountID)
		if err != nil {
			u.log.Warn("default payment method lookup failed", zap.String("order_id", order.ID), zap.Error(err))
		}
		if def != "" {
			pmID = def
			if err := u.orders.SetMetadata(ctx, order.ID, entities.MetaCustomerPaymentMethodID, def); err != nil {
				u.log.Warn("save payment method on order failed", zap.String("order_id", order.ID), zap.Error(err))
			}
		}
	}
	if pmID == "" {
		u.log.Warn("missing customer payment method", zap.String("order_id", order.ID))
		res.Err = ErrPaymentMethodNotFound
		res.Message = MsgPaymentMethodMissing
		return res
	}

	charge, err := u.ChargeStored(ctx, order, pmID)
	res.InvoiceID = charge.InvoiceID
	if err != nil {
		res.Err = err
		res.Message = payerMessage(err)
		return res
	}

	if !charge.Success {
		res.Err = &DeclinedError{Messages: []string{NoteSubscriptionCardFailed}}
		res.Message = NoteSubscriptionCardFailed
		return res
	}
	if err := u.completePayment(ctx, order.ID, NoteSubscriptionPaid); err != nil {
		res.Err = err
		res.Message = err.Error()
		return res
	}
	res.Success = true
	return res
}

// ChargeStored creates an invoice for the order and charges it with a stored
// customer payment method. The invoice id is kept on the order whenever the
// charge was answered without errors, paid or not.
func (u *ChargeUseCase) ChargeStored(ctx context.Context, order entities.Order, paymentMethodID string) (entities.Charge, error) {
	method := string(entities.PaymentMethodCreditCard)
	u.incAttempt(method)

	req := entities.ChargeRequest{
		Mode:                    entities.ChargeModeStoredPaymentMethod,
		CustomerPaymentMethodID: paymentMethodID,
	}
	charge, err := u.createAndCharge(ctx, order, entities.PaymentMethodCreditCard, req)
	if err != nil {
		u.incResult(method, resultFor(err))
		return entities.Charge{}, err
	}

	if err := u.orders.SetTransactionID(ctx, order.ID, charge.InvoiceID); err != nil {
		u.log.Error("set transaction id failed", zap.String("order_id", order.ID), zap.Error(err))
		u.incResult(method, resultError)
		return charge, err
	}
	if charge.Success {
		u.incResult(method, resultPaid)
	} else {
		u.incResult(method, resultFailed)
	}
	return charge, nil
}

func (u *ChargeUseCase) validate(input ChargeInput) (entities.ChargeRequest, error) {
	if !input.Method.Valid() {
		return entities.ChargeRequest{}, ErrInvalidPaymentMethod
	}
	if !u.settings.methodEnabled(input.Method) {
		return entities.ChargeRequest{}, ErrPaymentMethodDisabled
	}
	if !u.settings.UsingSupportedCurrency() {
		return entities.ChargeRequest{}, ErrUnsupportedCurrency
	}

	if input.Method == entities.PaymentMethodBankSlip {
		return entities.ChargeRequest{Mode: entities.ChargeModeBankSlip}, nil
	}

	token := strings.TrimSpace(input.Token)
	pmID := strings.TrimSpace(input.CustomerPaymentMethodID)
	switch {
	case token != "":
		return entities.ChargeRequest{
			Mode:                    entities.ChargeModeCardToken,
			Token:                   token,
			Months:                  input.Installments,
			CustomerPaymentMethodID: pmID,
		}, nil
	case pmID != "":
		return entities.ChargeRequest{
			Mode:                    entities.ChargeModeStoredPaymentMethod,
			CustomerPaymentMethodID: pmID,
		}, nil
	}
	return entities.ChargeRequest{}, ErrMissingCardToken
}

// createAndCharge runs invoice creation and the charge call. A missing
// invoice, a transport failure or an unreadable answer yields ErrChargeFailed;
// a charge carrying errors yields *DeclinedError.
func (u *ChargeUseCase) createAndCharge(ctx context.Context, order entities.Order, method entities.PaymentMethod, req entities.ChargeRequest) (entities.Charge, error) {
	payload := u.builder.BuildInvoice(order, method, u.now())
	u.log.Debug("creating invoice", zap.String("order_id", order.ID), zap.Int64("total_cents", payload.Total()))

	invoiceID, err := u.gateway.CreateInvoice(ctx, payload)
	if err != nil {
		u.log.Error("create invoice failed", zap.String("order_id", order.ID), zap.Error(err))
		return entities.Charge{}, fmt.Errorf("%w: %w", ErrChargeFailed, err)
	}

	req.InvoiceID = invoiceID
	if u.hook != nil {
		req = u.hook(order, req)
	}

	u.log.Debug("doing charge", zap.String("order_id", order.ID), zap.String("invoice_id", invoiceID), zap.String("mode", string(req.Mode)))
	charge, err := u.gateway.Charge(ctx, req)
	if err != nil {
		u.log.Error("charge failed", zap.String("order_id", order.ID), zap.String("invoice_id", invoiceID), zap.Error(err))
		return entities.Charge{}, fmt.Errorf("%w: %w", ErrChargeFailed, err)
	}

	if msgs := charge.ErrorMessages(); len(msgs) > 0 {
		u.log.Info("charge declined", zap.String("order_id", order.ID), zap.Strings("errors", msgs))
		return entities.Charge{}, &DeclinedError{Messages: msgs}
	}
	return charge, nil
}

func (u *ChargeUseCase) saveTransactionData(ctx context.Context, order entities.Order, input ChargeInput, charge entities.Charge) error {
	var data entities.TransactionData
	if input.Method == entities.PaymentMethodBankSlip {
		data.PDF = charge.PDF
		if err := u.orders.SetMetadata(ctx, order.ID, entities.MetaBankSlipURL, charge.PDF); err != nil {
			return err
		}
	} else {
		installments := input.Installments
		if installments < 1 {
			installments = 1
		}
		data.Installments = strconv.Itoa(installments)
	}

	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return u.orders.SetMetadata(ctx, order.ID, entities.MetaTransactionData, string(b))
}

func (u *ChargeUseCase) completePayment(ctx context.Context, orderID, note string) error {
	if err := u.orders.AddNote(ctx, orderID, note); err != nil {
		u.log.Warn("add order note failed", zap.String("order_id", orderID), zap.Error(err))
	}
	return u.orders.MarkPaymentComplete(ctx, orderID)
}

func (u *ChargeUseCase) emptyCart(ctx context.Context, order entities.Order) {
	if u.cart == nil || order.AccountID <= 0 {
		return
	}
	if err := u.cart.EmptyCart(ctx, order.AccountID); err != nil {
		u.log.Warn("empty cart failed", zap.Int64("account_id", order.AccountID), zap.Error(err))
	}
}

func (u *ChargeUseCase) incAttempt(method string) {
	if u.metrics != nil {
		u.metrics.IncChargeAttempt(method)
	}
}

func (u *ChargeUseCase) incResult(method, result string) {
	if u.metrics != nil {
		u.metrics.IncChargeResult(method, result)
	}
}

func resultFor(err error) string {
	if IsDeclined(err) {
		return resultDeclined
	}
	return resultError
}

// payerMessage is the text a payer or scheduler sees for a failed charge.
func payerMessage(err error) string {
	var de *DeclinedError
	if errors.As(err, &de) {
		return de.First()
	}
	switch {
	case errors.Is(err, ErrPaymentMethodNotFound):
		return MsgPaymentMethodMissing
	case errors.Is(err, ErrMissingCardToken):
		return MsgMissingCardToken
	case errors.Is(err, ErrPaymentMethodCreateFailed):
		return MsgPaymentMethodSave
	}
	return MsgGenericChargeFailure
}
