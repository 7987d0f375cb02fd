package usecase

import (
	"strings"

	"iugu_gateway/internal/domain/entities"
)

const (
	DefaultBankSlipDeadline = 5
	DefaultTransactionRate  = 7.0
	SupportedCurrency       = "BRL"
)

// DefaultInterestRates maps installment count to the interest rate (percent)
// offered when the payer splits a card payment.
func DefaultInterestRates() map[int]float64 {
	return map[int]float64{
		2: 10, 3: 11, 4: 12, 5: 13, 6: 15, 7: 16,
		8: 17, 9: 18, 10: 20, 11: 21, 12: 22,
	}
}

// Settings is the gateway configuration the payment core needs.
type Settings struct {
	// AccountID is public; the storefront needs it to tokenize cards.
	AccountID string

	CreditCardEnabled bool
	BankSlipEnabled   bool

	// BankSlipDeadline is the number of days until a bank slip is due.
	BankSlipDeadline int
	SendOnlyTotal    bool
	PersonType       entities.PersonType

	NotificationURL string
	StoreBaseURL    string
	Currency        string
	AdminEmail      string

	InterestRates   map[int]float64
	TransactionRate float64

	Capabilities Capabilities
}

func DefaultSettings() Settings {
	return Settings{
		CreditCardEnabled: true,
		BankSlipEnabled:   true,
		BankSlipDeadline:  DefaultBankSlipDeadline,
		Currency:          SupportedCurrency,
		InterestRates:     DefaultInterestRates(),
		TransactionRate:   DefaultTransactionRate,
	}
}

// UsingSupportedCurrency reports whether the store currency can be charged.
func (s Settings) UsingSupportedCurrency() bool {
	return strings.EqualFold(strings.TrimSpace(s.Currency), SupportedCurrency)
}

func (s Settings) methodEnabled(m entities.PaymentMethod) bool {
	switch m {
	case entities.PaymentMethodCreditCard:
		return s.CreditCardEnabled
	case entities.PaymentMethodBankSlip:
		return s.BankSlipEnabled
	}
	return false
}

// Hooks lets integrators adjust outgoing payloads and observe status updates.
// Nil hooks are skipped.
type Hooks struct {
	Invoice      func(order entities.Order, payload entities.InvoicePayload) entities.InvoicePayload
	Charge       func(order entities.Order, req entities.ChargeRequest) entities.ChargeRequest
	Customer     func(order entities.Order, req entities.CustomerRequest) entities.CustomerRequest
	StatusUpdate func(order entities.Order, remoteStatus string, updated bool)
}
