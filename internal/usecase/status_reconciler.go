package usecase

import (
	"context"
	"fmt"
	"strings"

	"iugu_gateway/internal/domain/entities"
	"iugu_gateway/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Remote invoice statuses.
const (
	InvoiceStatusPending       = "pending"
	InvoiceStatusPaid          = "paid"
	InvoiceStatusCanceled      = "canceled"
	InvoiceStatusPartiallyPaid = "partially_paid"
	InvoiceStatusRefunded      = "refunded"
	InvoiceStatusExpired       = "expired"
)

const (
	NoteCardAwaitingOperator = "Iugu: Invoice paid by credit card, waiting for operator confirmation."
	NoteInvoicePaid          = "Iugu: Invoice paid successfully."
	NoteInvoiceCanceled      = "Iugu: Invoice canceled."
	NoteInvoicePartiallyPaid = "Iugu: Invoice partially paid."
	NoteInvoiceRefunded      = "Iugu: Invoice refunded."
	NoteInvoiceExpired       = "Iugu: Invoice expired."
)

// transition is one row of the remote-status table. skipWhen lists the local
// statuses for which the row does nothing.
type transition struct {
	skipWhen []entities.OrderStatus
	target   entities.OrderStatus
	note     func(entities.Order) string
	complete bool
	refund   bool
}

var transitions = map[string]transition{
	InvoiceStatusPending: {
		skipWhen: []entities.OrderStatus{entities.OrderStatusOnHold, entities.OrderStatusProcessing, entities.OrderStatusCompleted},
		target:   entities.OrderStatusOnHold,
		note: func(o entities.Order) string {
			if o.PaymentMethod == entities.PaymentMethodBankSlip {
				return NoteBankSlipGenerated
			}
			return NoteCardAwaitingOperator
		},
	},
	InvoiceStatusPaid: {
		skipWhen: []entities.OrderStatus{entities.OrderStatusProcessing, entities.OrderStatusCompleted},
		target:   entities.OrderStatusProcessing,
		note:     staticNote(NoteInvoicePaid),
		complete: true,
	},
	InvoiceStatusCanceled: {
		target: entities.OrderStatusCancelled,
		note:   staticNote(NoteInvoiceCanceled),
	},
	InvoiceStatusPartiallyPaid: {
		target: entities.OrderStatusOnHold,
		note:   staticNote(NoteInvoicePartiallyPaid),
	},
	InvoiceStatusRefunded: {
		target: entities.OrderStatusRefunded,
		note:   staticNote(NoteInvoiceRefunded),
		refund: true,
	},
	InvoiceStatusExpired: {
		target: entities.OrderStatusFailed,
		note:   staticNote(NoteInvoiceExpired),
	},
}

func staticNote(s string) func(entities.Order) string {
	return func(entities.Order) string { return s }
}

type IStatusReconciler interface {
	Reconcile(ctx context.Context, order entities.Order, remoteStatus string) (bool, error)
}

type StatusReconciler struct {
	orders     interfaces.IOrderStore
	notifier   interfaces.INotifier
	metrics    interfaces.IPaymentMetrics
	adminEmail string
	onUpdate   func(entities.Order, string, bool)
	log        *zap.Logger
}

var _ IStatusReconciler = (*StatusReconciler)(nil)

func NewStatusReconciler(orders interfaces.IOrderStore, notifier interfaces.INotifier, metrics interfaces.IPaymentMetrics, settings Settings, hooks Hooks, log *zap.Logger) *StatusReconciler {
	if log == nil {
		log = zap.NewNop()
	}
	return &StatusReconciler{
		orders:     orders,
		notifier:   notifier,
		metrics:    metrics,
		adminEmail: settings.AdminEmail,
		onUpdate:   hooks.StatusUpdate,
		log:        log.Named("reconciler"),
	}
}

// Reconcile applies a remote invoice status to the order and reports whether
// the order was changed.
//
// Applying the same status twice is a no-op, and an order in a terminal
// status is never moved back to a non-terminal one. Unknown remote statuses
// are ignored.
func (r *StatusReconciler) Reconcile(ctx context.Context, order entities.Order, remoteStatus string) (bool, error) {
	status := strings.ToLower(strings.TrimSpace(remoteStatus))
	r.log.Info("remote status received",
		zap.String("order_id", order.ID),
		zap.String("order_status", string(order.Status)),
		zap.String("invoice_status", status),
	)

	updated, err := r.apply(ctx, order, status)
	if err != nil {
		r.log.Error("reconcile failed", zap.String("order_id", order.ID), zap.String("invoice_status", status), zap.Error(err))
		return false, err
	}

	if r.metrics != nil {
		r.metrics.IncStatusTransition(status, updated)
	}
	if r.onUpdate != nil {
		r.onUpdate(order, status, updated)
	}
	return updated, nil
}

func (r *StatusReconciler) apply(ctx context.Context, order entities.Order, status string) (bool, error) {
	t, ok := transitions[status]
	if !ok {
		r.log.Warn("unknown invoice status ignored", zap.String("order_id", order.ID), zap.String("invoice_status", status))
		return false, nil
	}
	if order.Status.IsOneOf(t.skipWhen...) || order.Status == t.target {
		return false, nil
	}
	if order.Status.IsTerminal() && !t.target.IsTerminal() {
		r.log.Info("terminal order left untouched", zap.String("order_id", order.ID), zap.String("order_status", string(order.Status)))
		return false, nil
	}

	note := t.note(order)
	if t.complete {
		if err := r.orders.AddNote(ctx, order.ID, note); err != nil {
			r.log.Warn("add order note failed", zap.String("order_id", order.ID), zap.Error(err))
		}
		if err := r.orders.MarkPaymentComplete(ctx, order.ID); err != nil {
			return false, err
		}
	} else if err := r.orders.UpdateStatus(ctx, order.ID, t.target, note); err != nil {
		return false, err
	}

	if t.refund {
		r.notifyRefund(ctx, order)
	}
	return true, nil
}

func (r *StatusReconciler) notifyRefund(ctx context.Context, order entities.Order) {
	if r.notifier == nil || r.adminEmail == "" {
		return
	}
	number := order.DisplayNumber()
	subject := fmt.Sprintf("Invoice for order %s was refunded", number)
	body := "Invoice refunded\n\n" + fmt.Sprintf("Order %s has been marked as refunded by Iugu.", number)
	if err := r.notifier.SendEmail(ctx, r.adminEmail, subject, body); err != nil {
		r.log.Warn("refund email failed", zap.String("order_id", order.ID), zap.Error(err))
	}
}
