package entities

// PersonType is the store-wide setting deciding which Brazilian tax id is sent
// to the billing API. Values match the checkout fields plugin settings.
type PersonType int

const (
	PersonTypeNone PersonType = iota
	PersonTypeIndividualOrCompany
	PersonTypeIndividual
	PersonTypeCompany
)

// Order-level person type chosen by the payer when the store allows both.
const (
	OrderPersonIndividual = 1
	OrderPersonCompany    = 2
)

// CustomerRequest is the body of POST customers.
type CustomerRequest struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	CPFCNPJ      string `json:"cpf_cnpj,omitempty"`
	SetAsDefault bool   `json:"set_as_default"`
}

// PaymentMethodRequest is the body of POST customers/{id}/payment_methods.
type PaymentMethodRequest struct {
	CustomerID  string `json:"customer_id"`
	Description string `json:"description"`
	Token       string `json:"token"`
}

// RemoteCustomer is the subset of GET customers/{id} this service reads.
type RemoteCustomer struct {
	ID                     string `json:"id"`
	Email                  string `json:"email"`
	Name                   string `json:"name"`
	DefaultPaymentMethodID string `json:"default_payment_method_id"`
}
