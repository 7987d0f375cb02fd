package iugu

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"iugu_gateway/internal/domain/entities"
	"iugu_gateway/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Gateway implements the typed billing API calls on top of Client.
type Gateway struct {
	client *Client
	log    *zap.Logger
}

var _ interfaces.IBillingGateway = (*Gateway)(nil)

func NewGateway(client *Client, log *zap.Logger) *Gateway {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gateway{client: client, log: log}
}

func (g *Gateway) CreateInvoice(ctx context.Context, payload entities.InvoicePayload) (string, error) {
	g.log.Debug("create invoice", zap.Any("payload", payload))

	resp, err := g.client.Request(ctx, "invoices", http.MethodPost, invoiceParams(payload), nil)
	if err != nil {
		return "", err
	}
	if !resp.OK() {
		return "", remoteError("invoices", resp, "")
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return "", remoteError("invoices", resp, "malformed body")
	}
	if strings.TrimSpace(out.ID) == "" {
		return "", remoteError("invoices", resp, "missing invoice id")
	}
	g.log.Debug("invoice created", zap.String("invoice_id", out.ID))
	return out.ID, nil
}

func (g *Gateway) GetInvoiceStatus(ctx context.Context, invoiceID string) (string, error) {
	endpoint := "invoices/" + url.PathEscape(invoiceID)
	resp, err := g.client.Request(ctx, endpoint, http.MethodGet, nil, nil)
	if err != nil {
		return "", err
	}
	if !resp.OK() {
		return "", remoteError(endpoint, resp, "")
	}

	var out struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return "", remoteError(endpoint, resp, "malformed body")
	}
	status := strings.TrimSpace(out.Status)
	if status == "" {
		return "", remoteError(endpoint, resp, "missing status")
	}
	return status, nil
}

// Charge returns the decoded charge whenever the body is a charge document,
// including 4xx answers that carry an errors field.
func (g *Gateway) Charge(ctx context.Context, req entities.ChargeRequest) (entities.Charge, error) {
	resp, err := g.client.Request(ctx, "charge", http.MethodPost, chargeParams(req), nil)
	if err != nil {
		return entities.Charge{}, err
	}
	if len(strings.TrimSpace(string(resp.Body))) == 0 {
		return entities.Charge{}, remoteError("charge", resp, "empty body")
	}

	var charge entities.Charge
	if err := json.Unmarshal(resp.Body, &charge); err != nil {
		return entities.Charge{}, remoteError("charge", resp, "malformed body")
	}
	if !resp.OK() && !charge.HasErrors() {
		return entities.Charge{}, remoteError("charge", resp, "")
	}
	if charge.InvoiceID == "" {
		charge.InvoiceID = req.InvoiceID
	}
	return charge, nil
}

func (g *Gateway) CreateCustomer(ctx context.Context, req entities.CustomerRequest) (string, error) {
	resp, err := g.client.Request(ctx, "customers", http.MethodPost, customerParams(req), nil)
	if err != nil {
		return "", err
	}
	return decodeID("customers", resp)
}

func (g *Gateway) GetCustomer(ctx context.Context, customerID string) (entities.RemoteCustomer, error) {
	endpoint := "customers/" + url.PathEscape(customerID)
	resp, err := g.client.Request(ctx, endpoint, http.MethodGet, nil, nil)
	if err != nil {
		return entities.RemoteCustomer{}, err
	}
	if !resp.OK() {
		return entities.RemoteCustomer{}, remoteError(endpoint, resp, "")
	}

	var out entities.RemoteCustomer
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return entities.RemoteCustomer{}, remoteError(endpoint, resp, "malformed body")
	}
	return out, nil
}

func (g *Gateway) CreatePaymentMethod(ctx context.Context, req entities.PaymentMethodRequest) (string, error) {
	endpoint := "customers/" + url.PathEscape(req.CustomerID) + "/payment_methods"
	resp, err := g.client.Request(ctx, endpoint, http.MethodPost, paymentMethodParams(req), nil)
	if err != nil {
		return "", err
	}
	return decodeID(endpoint, resp)
}

func decodeID(endpoint string, resp *RawResponse) (string, error) {
	if !resp.OK() {
		return "", remoteError(endpoint, resp, "")
	}
	var out struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return "", remoteError(endpoint, resp, "malformed body")
	}
	if strings.TrimSpace(out.ID) == "" {
		return "", remoteError(endpoint, resp, "missing id")
	}
	return out.ID, nil
}

func remoteError(endpoint string, resp *RawResponse, reason string) *entities.RemoteError {
	return &entities.RemoteError{
		Endpoint:   endpoint,
		StatusCode: resp.StatusCode,
		Body:       string(resp.Body),
		Reason:     reason,
	}
}

func invoiceParams(p entities.InvoicePayload) Params {
	vars := make([]Params, 0, len(p.CustomVariables))
	for _, v := range p.CustomVariables {
		vars = append(vars, Params{"name": v.Name, "value": v.Value})
	}

	items := make([]Params, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, Params{
			"description": it.Description,
			"price_cents": it.PriceCents,
			"quantity":    it.Quantity,
		})
	}

	return Params{
		"email":            p.Email,
		"due_date":         p.DueDate,
		"return_url":       optional(p.ReturnURL),
		"expired_url":      optional(p.ExpiredURL),
		"notification_url": optional(p.NotificationURL),
		"ignore_due_email": p.IgnoreDueEmail,
		"payable_with":     p.PayableWith,
		"custom_variables": vars,
		"items":            items,
		"payer": Params{
			"name":         p.Payer.Name,
			"phone_prefix": p.Payer.PhonePrefix,
			"phone":        p.Payer.Phone,
			"email":        p.Payer.Email,
			"cpf_cnpj":     optional(p.Payer.CPFCNPJ),
			"address": Params{
				"street":   p.Payer.Address.Street,
				"number":   p.Payer.Address.Number,
				"city":     p.Payer.Address.City,
				"state":    p.Payer.Address.State,
				"country":  p.Payer.Address.Country,
				"zip_code": p.Payer.Address.ZipCode,
			},
		},
	}
}

func chargeParams(req entities.ChargeRequest) Params {
	p := Params{"invoice_id": req.InvoiceID}
	switch req.Mode {
	case entities.ChargeModeCardToken:
		p["token"] = req.Token
		if req.Months > 1 {
			p["months"] = req.Months
		}
	case entities.ChargeModeStoredPaymentMethod:
		p["customer_payment_method_id"] = req.CustomerPaymentMethodID
	case entities.ChargeModeBankSlip:
		p["method"] = entities.PayableWithBankSlip
	}
	return p
}

func customerParams(req entities.CustomerRequest) Params {
	return Params{
		"email":          req.Email,
		"name":           req.Name,
		"cpf_cnpj":       optional(req.CPFCNPJ),
		"set_as_default": req.SetAsDefault,
	}
}

func paymentMethodParams(req entities.PaymentMethodRequest) Params {
	return Params{
		"customer_id": req.CustomerID,
		"description": req.Description,
		"token":       req.Token,
	}
}
