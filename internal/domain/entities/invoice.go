package entities

// InvoicePayload is built fresh for every charge attempt from an order
// snapshot. It is never persisted; only the returned invoice id is kept on the
// order as its transaction id.
type InvoicePayload struct {
	Email           string           `json:"email"`
	DueDate         string           `json:"due_date"`
	ReturnURL       string           `json:"return_url,omitempty"`
	ExpiredURL      string           `json:"expired_url,omitempty"`
	NotificationURL string           `json:"notification_url,omitempty"`
	IgnoreDueEmail  bool             `json:"ignore_due_email"`
	PayableWith     string           `json:"payable_with"`
	CustomVariables []CustomVariable `json:"custom_variables"`
	Payer           Payer            `json:"payer"`
	Items           []InvoiceItem    `json:"items"`
}

// Values accepted by the remote payable_with field.
const (
	PayableWithCreditCard = "credit_card"
	PayableWithBankSlip   = "bank_slip"
)

type CustomVariable struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Payer struct {
	Name        string       `json:"name"`
	PhonePrefix string       `json:"phone_prefix"`
	Phone       string       `json:"phone"`
	Email       string       `json:"email"`
	CPFCNPJ     string       `json:"cpf_cnpj,omitempty"`
	Address     PayerAddress `json:"address"`
}

type PayerAddress struct {
	Street  string `json:"street"`
	Number  string `json:"number"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	ZipCode string `json:"zip_code"`
}

// InvoiceItem carries its price in integer cents.
type InvoiceItem struct {
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	Quantity    int    `json:"quantity"`
}

// Total returns the sum of price * quantity over all items, in cents.
func (p InvoicePayload) Total() int64 {
	var total int64
	for _, it := range p.Items {
		total += it.PriceCents * int64(it.Quantity)
	}
	return total
}
