package entities

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// ChargeMode selects how an invoice is charged.
type ChargeMode string

const (
	ChargeModeCardToken           ChargeMode = "credit-card-token"
	ChargeModeStoredPaymentMethod ChargeMode = "stored-payment-method"
	ChargeModeBankSlip            ChargeMode = "bank-slip"
)

// ChargeRequest is the body of POST charge.
type ChargeRequest struct {
	InvoiceID               string     `json:"invoice_id"`
	Mode                    ChargeMode `json:"-"`
	Token                   string     `json:"token,omitempty"`
	Months                  int        `json:"months,omitempty"`
	CustomerPaymentMethodID string     `json:"customer_payment_method_id,omitempty"`
}

// Charge is the remote answer to POST charge.
//
// Errors arrives in several shapes (a string, a list of strings, a list of
// lists, or an object keyed by field) so it is kept raw and flattened with
// ErrorMessages.
type Charge struct {
	Success   bool            `json:"success"`
	InvoiceID string          `json:"invoice_id"`
	PDF       string          `json:"pdf,omitempty"`
	URL       string          `json:"url,omitempty"`
	Message   string          `json:"message,omitempty"`
	LR        string          `json:"LR,omitempty"`
	Errors    json.RawMessage `json:"errors,omitempty"`
}

// ErrorMessages returns the charge errors as a flat ordered list.
func (c Charge) ErrorMessages() []string {
	return NormalizeErrors(c.Errors)
}

// HasErrors reports whether the remote returned at least one error message.
func (c Charge) HasErrors() bool {
	return len(c.ErrorMessages()) > 0
}

// NormalizeErrors flattens the heterogeneous errors field into displayable
// messages, preserving order. Object keys are sorted and prefixed to the
// message ("number is invalid").
func NormalizeErrors(raw json.RawMessage) []string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return []string{trimmed}
	}

	var out []string
	flattenErrors(v, "", &out)
	return out
}

func flattenErrors(v any, prefix string, out *[]string) {
	switch t := v.(type) {
	case nil:
		return
	case string:
		msg := strings.TrimSpace(t)
		if msg == "" {
			return
		}
		if prefix != "" {
			msg = prefix + " " + msg
		}
		*out = append(*out, msg)
	case []any:
		for _, e := range t {
			flattenErrors(e, prefix, out)
		}
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			p := k
			if prefix != "" {
				p = prefix + "." + k
			}
			flattenErrors(t[k], p, out)
		}
	default:
		msg := fmt.Sprintf("%v", t)
		if prefix != "" {
			msg = prefix + " " + msg
		}
		*out = append(*out, msg)
	}
}

// TransactionData is stored on the order under MetaTransactionData.
type TransactionData struct {
	PDF          string `json:"pdf,omitempty"`
	Installments string `json:"installments,omitempty"`
}
