package entities

import "time"

// OrderStatus mirrors the store's order lifecycle.
//
// Domain notes:
//   - completed, cancelled, refunded and failed are terminal for automatic
//     reconciliation: a webhook never moves an order out of them into a
//     non-terminal status.
//   - pre-ordered is set by the pre-order flow once the payment method is stored.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusOnHold     OrderStatus = "on-hold"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
	OrderStatusFailed     OrderStatus = "failed"
	OrderStatusPreOrdered OrderStatus = "pre-ordered"
)

// IsTerminal reports whether automatic reconciliation must treat s as final.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusCompleted, OrderStatusCancelled, OrderStatusRefunded, OrderStatusFailed:
		return true
	}
	return false
}

// IsOneOf reports whether s equals any of the given statuses.
func (s OrderStatus) IsOneOf(statuses ...OrderStatus) bool {
	for _, v := range statuses {
		if s == v {
			return true
		}
	}
	return false
}

// PaymentMethod identifies the gateway the payer selected at checkout.
type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit-card"
	PaymentMethodBankSlip   PaymentMethod = "bank-slip"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCreditCard || m == PaymentMethodBankSlip
}

// Order metadata keys shared with the host store.
const (
	MetaCustomerID              = "_iugu_customer_id"
	MetaCustomerPaymentMethodID = "_iugu_customer_payment_method_id"
	MetaTransactionData         = "_iugu_wc_transaction_data"
	MetaBankSlipURL             = "Iugu Bank Slip URL"
)

// Order is the store order this service charges and reconciles.
//
// The order itself is owned by the store: this service only reads it and
// mutates status, transaction id, notes and metadata through IOrderStore.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (transaction_id-index): transaction_id
type Order struct {
	ID            string         `json:"id"`
	AccountID     int64          `json:"account_id"`
	Number        string         `json:"number"`
	Status        OrderStatus    `json:"status"`
	PaymentMethod PaymentMethod  `json:"payment_method"`
	TransactionID string         `json:"transaction_id,omitempty"`
	Total         float64        `json:"total"`
	Billing       BillingAddress `json:"billing"`

	Items          []LineItem `json:"items"`
	Fees           []Fee      `json:"fees"`
	Taxes          []Tax      `json:"taxes"`
	ShippingTotal  float64    `json:"shipping_total"`
	ShippingMethod string     `json:"shipping_method"`

	ContainsSubscription         bool     `json:"contains_subscription"`
	ContainsPreOrder             bool     `json:"contains_pre_order"`
	PreOrderRequiresTokenization bool     `json:"pre_order_requires_tokenization"`
	SubscriptionIDs              []string `json:"subscription_ids,omitempty"`

	Metadata  map[string]string `json:"metadata,omitempty"`
	Notes     []OrderNote       `json:"notes,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Meta returns the metadata value for key, or "" when absent.
func (o Order) Meta(key string) string {
	if o.Metadata == nil {
		return ""
	}
	return o.Metadata[key]
}

// DisplayNumber is the number shown to payers, falling back to the id.
func (o Order) DisplayNumber() string {
	if o.Number != "" {
		return o.Number
	}
	return o.ID
}

// BillingAddress holds the payer fields collected at checkout, including the
// Brazilian tax identifiers (CPF for individuals, CNPJ for companies).
type BillingAddress struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Company    string `json:"company,omitempty"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address1   string `json:"address_1"`
	Number     string `json:"number"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	Postcode   string `json:"postcode"`
	CPF        string `json:"cpf,omitempty"`
	CNPJ       string `json:"cnpj,omitempty"`
	PersonType int    `json:"person_type,omitempty"`
}

type LineItem struct {
	Name      string  `json:"name"`
	Meta      string  `json:"meta,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitTotal float64 `json:"unit_total"`
}

type Fee struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

type Tax struct {
	Label          string  `json:"label"`
	Amount         float64 `json:"amount"`
	ShippingAmount float64 `json:"shipping_amount"`
}

type OrderNote struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
