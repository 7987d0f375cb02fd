package response

import (
	"iugu_gateway/internal/usecase"
)

type CheckoutResponse struct {
	Result      string `json:"result"`
	Kind        string `json:"kind"`
	OrderID     string `json:"order_id"`
	InvoiceID   string `json:"invoice_id,omitempty"`
	Paid        bool   `json:"paid"`
	Status      string `json:"status"`
	PDF         string `json:"pdf,omitempty"`
	RedirectURL string `json:"redirect_url,omitempty"`
}

func FromCheckoutResult(r usecase.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		Result:      "success",
		Kind:        string(r.Kind),
		OrderID:     r.OrderID,
		InvoiceID:   r.InvoiceID,
		Paid:        r.Paid,
		Status:      string(r.Status),
		PDF:         r.PDF,
		RedirectURL: r.RedirectURL,
	}
}

type RecurringChargeResponse struct {
	OrderID   string `json:"order_id"`
	InvoiceID string `json:"invoice_id,omitempty"`
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
}

func FromRecurringResult(r usecase.RecurringResult) RecurringChargeResponse {
	return RecurringChargeResponse{
		OrderID:   r.OrderID,
		InvoiceID: r.InvoiceID,
		Success:   r.Success,
		Message:   r.Message,
	}
}

type BankSlipResponse struct {
	OrderID string `json:"order_id"`
	URL     string `json:"url"`
}

type WebhookResponse struct {
	OrderID       string `json:"order_id,omitempty"`
	InvoiceStatus string `json:"invoice_status,omitempty"`
	Updated       bool   `json:"updated"`
	Reason        string `json:"reason,omitempty"`
}

func FromWebhookResult(r usecase.WebhookResult) WebhookResponse {
	return WebhookResponse{
		OrderID:       r.OrderID,
		InvoiceStatus: r.InvoiceStatus,
		Updated:       r.Updated,
		Reason:        r.Reason,
	}
}

type InstallmentResponse struct {
	Months       int     `json:"months"`
	InterestRate float64 `json:"interest_rate"`
}

type PaymentOptionsResponse struct {
	Available        bool                  `json:"available"`
	AccountID        string                `json:"account_id,omitempty"`
	Currency         string                `json:"currency"`
	Methods          []string              `json:"methods"`
	Installments     []InstallmentResponse `json:"installments,omitempty"`
	TransactionRate  float64               `json:"transaction_rate"`
	BankSlipDeadline int                   `json:"bank_slip_deadline"`
	Subscriptions    bool                  `json:"subscriptions"`
	PreOrders        bool                  `json:"pre_orders"`
}

func FromPaymentOptions(o usecase.PaymentOptions) PaymentOptionsResponse {
	methods := make([]string, 0, len(o.Methods))
	for _, m := range o.Methods {
		methods = append(methods, string(m))
	}
	var installments []InstallmentResponse
	for _, i := range o.Installments {
		installments = append(installments, InstallmentResponse{Months: i.Months, InterestRate: i.InterestRate})
	}
	return PaymentOptionsResponse{
		Available:        o.Available,
		AccountID:        o.AccountID,
		Currency:         o.Currency,
		Methods:          methods,
		Installments:     installments,
		TransactionRate:  o.TransactionRate,
		BankSlipDeadline: o.BankSlipDeadline,
		Subscriptions:    o.Subscriptions,
		PreOrders:        o.PreOrders,
	}
}

type PaymentMetaResponse struct {
	SubscriptionID string `json:"subscription_id"`
	Key            string `json:"key"`
	Value          string `json:"value"`
	Label          string `json:"label"`
}

func FromPaymentMeta(subscriptionID string, m usecase.PaymentMeta) PaymentMetaResponse {
	return PaymentMetaResponse{SubscriptionID: subscriptionID, Key: m.Key, Value: m.Value, Label: m.Label}
}
