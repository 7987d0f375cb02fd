package usecase

import (
	"context"
	"strings"

	"iugu_gateway/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const EventInvoiceStatusChanged = "invoice.status_changed"

// Reasons reported for notifications that did not touch an order.
const (
	ReasonIgnoredEvent  = "ignored"
	ReasonOrderNotFound = "order not found"
	ReasonStatusUnknown = "invoice status unavailable"
)

// WebhookNotification is the part of an inbound notification this service
// reads: the event name and data[id], the invoice id.
type WebhookNotification struct {
	Event     string
	InvoiceID string
}

type WebhookResult struct {
	OrderID       string `json:"order_id,omitempty"`
	InvoiceStatus string `json:"invoice_status,omitempty"`
	Updated       bool   `json:"updated"`
	Reason        string `json:"reason,omitempty"`
}

type IWebhookUseCase interface {
	HandleNotification(ctx context.Context, n WebhookNotification) (WebhookResult, error)
}

// WebhookUseCase never trusts the status carried by a notification: it polls
// the invoice and reconciles with what the billing API answers.
type WebhookUseCase struct {
	orders     interfaces.IOrderStore
	gateway    interfaces.IBillingGateway
	reconciler IStatusReconciler
	log        *zap.Logger
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(orders interfaces.IOrderStore, gateway interfaces.IBillingGateway, reconciler IStatusReconciler, log *zap.Logger) *WebhookUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &WebhookUseCase{orders: orders, gateway: gateway, reconciler: reconciler, log: log.Named("webhook")}
}

func (u *WebhookUseCase) HandleNotification(ctx context.Context, n WebhookNotification) (WebhookResult, error) {
	event := strings.TrimSpace(n.Event)
	invoiceID := strings.TrimSpace(n.InvoiceID)
	if event == "" || invoiceID == "" {
		return WebhookResult{}, ErrMalformedWebhook
	}
	if event != EventInvoiceStatusChanged {
		u.log.Debug("event ignored", zap.String("event", event))
		return WebhookResult{Reason: ReasonIgnoredEvent}, nil
	}

	order, err := u.orders.FindByTransactionID(ctx, invoiceID)
	if err != nil {
		u.log.Error("order lookup failed", zap.String("invoice_id", invoiceID), zap.Error(err))
		return WebhookResult{}, err
	}
	if order.ID == "" {
		u.log.Info("no order for invoice", zap.String("invoice_id", invoiceID))
		return WebhookResult{Reason: ReasonOrderNotFound}, nil
	}

	status, err := u.gateway.GetInvoiceStatus(ctx, invoiceID)
	if err != nil || status == "" {
		u.log.Warn("invoice status lookup failed", zap.String("invoice_id", invoiceID), zap.String("order_id", order.ID), zap.Error(err))
		return WebhookResult{OrderID: order.ID, Reason: ReasonStatusUnknown}, nil
	}

	updated, err := u.reconciler.Reconcile(ctx, order, status)
	if err != nil {
		return WebhookResult{}, err
	}
	return WebhookResult{OrderID: order.ID, InvoiceStatus: strings.ToLower(status), Updated: updated}, nil
}
