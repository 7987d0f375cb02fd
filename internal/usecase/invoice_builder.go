package usecase

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"iugu_gateway/internal/domain/entities"
)

const dueDateLayout = "02-01-2006"

// InvoiceBuilder turns an order snapshot into an invoice payload.
//
// Building has no side effects: the same order, method and clock always
// produce the same payload.
type InvoiceBuilder struct {
	settings Settings
	hook     func(entities.Order, entities.InvoicePayload) entities.InvoicePayload
}

func NewInvoiceBuilder(settings Settings, hooks Hooks) *InvoiceBuilder {
	return &InvoiceBuilder{settings: settings, hook: hooks.Invoice}
}

func (b *InvoiceBuilder) BuildInvoice(order entities.Order, method entities.PaymentMethod, now time.Time) entities.InvoicePayload {
	area, number := splitPhone(order.Billing.Phone)

	payer := entities.Payer{
		Name:        strings.TrimSpace(order.Billing.FirstName + " " + order.Billing.LastName),
		PhonePrefix: area,
		Phone:       number,
		Email:       order.Billing.Email,
		CPFCNPJ:     payerDocument(order.Billing, b.settings.PersonType),
		Address: entities.PayerAddress{
			Street:  order.Billing.Address1,
			Number:  order.Billing.Number,
			City:    order.Billing.City,
			State:   order.Billing.State,
			Country: order.Billing.Country,
			ZipCode: onlyDigits(order.Billing.Postcode),
		},
	}
	if isCompany(order.Billing, b.settings.PersonType) {
		payer.Name = order.Billing.Company
	}

	payableWith := entities.PayableWithBankSlip
	if method == entities.PaymentMethodCreditCard {
		payableWith = entities.PayableWithCreditCard
	}

	payload := entities.InvoicePayload{
		Email:           order.Billing.Email,
		DueDate:         b.dueDate(method, now),
		ReturnURL:       returnURL(b.settings.StoreBaseURL, order),
		ExpiredURL:      cancelURL(b.settings.StoreBaseURL, order),
		NotificationURL: b.settings.NotificationURL,
		IgnoreDueEmail:  true,
		PayableWith:     payableWith,
		CustomVariables: []entities.CustomVariable{{Name: "order_id", Value: order.ID}},
		Payer:           payer,
		Items:           b.items(order),
	}

	if b.hook != nil {
		payload = b.hook(order, payload)
	}
	return payload
}

func (b *InvoiceBuilder) dueDate(method entities.PaymentMethod, now time.Time) string {
	days := b.settings.BankSlipDeadline
	if method == entities.PaymentMethodCreditCard {
		days = 1
	}
	return now.AddDate(0, 0, days).Format(dueDateLayout)
}

// items lists what the payer is charged for. Lines priced below zero
// (discount lines) are dropped, so the invoice total can exceed the order total
// when the store models discounts that way.
func (b *InvoiceBuilder) items(order entities.Order) []entities.InvoiceItem {
	if b.settings.SendOnlyTotal {
		return []entities.InvoiceItem{{
			Description: fmt.Sprintf("Order %s", order.DisplayNumber()),
			PriceCents:  ToMinorUnits(order.Total),
			Quantity:    1,
		}}
	}

	items := make([]entities.InvoiceItem, 0, len(order.Items)+len(order.Fees)+len(order.Taxes)+1)
	for _, li := range order.Items {
		if li.Quantity <= 0 {
			continue
		}
		cents := ToMinorUnits(li.UnitTotal)
		if cents < 0 {
			continue
		}
		name := li.Name
		if li.Meta != "" {
			name += " - " + li.Meta
		}
		items = append(items, entities.InvoiceItem{Description: name, PriceCents: cents, Quantity: li.Quantity})
	}

	for _, fee := range order.Fees {
		cents := ToMinorUnits(fee.Total)
		if cents < 0 {
			continue
		}
		items = append(items, entities.InvoiceItem{Description: fee.Name, PriceCents: cents, Quantity: 1})
	}

	for _, tax := range order.Taxes {
		cents := ToMinorUnits(tax.Amount + tax.ShippingAmount)
		if cents < 0 {
			continue
		}
		items = append(items, entities.InvoiceItem{Description: tax.Label, PriceCents: cents, Quantity: 1})
	}

	if shipping := ToMinorUnits(order.ShippingTotal); shipping > 0 {
		items = append(items, entities.InvoiceItem{
			Description: fmt.Sprintf("Shipping via %s", order.ShippingMethod),
			PriceCents:  shipping,
			Quantity:    1,
		})
	}
	return items
}

// returnURL is the order-received page the payer lands on after paying.
func returnURL(storeBaseURL string, order entities.Order) string {
	base := strings.TrimRight(storeBaseURL, "/")
	if base == "" {
		return ""
	}
	return base + "/checkout/order-received/" + url.PathEscape(order.ID) + "/"
}

func cancelURL(storeBaseURL string, order entities.Order) string {
	base := strings.TrimRight(storeBaseURL, "/")
	if base == "" {
		return ""
	}
	q := url.Values{}
	q.Set("cancel_order", "true")
	q.Set("order_id", order.ID)
	return base + "/cart/?" + q.Encode()
}

func onlyDigits(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// splitPhone keeps digits only; the first two are the area code.
func splitPhone(phone string) (areaCode, number string) {
	digits := onlyDigits(phone)
	if len(digits) <= 2 {
		return digits, ""
	}
	return digits[:2], digits[2:]
}

// payerDocument picks CPF or CNPJ according to the store person-type setting
// and, when both are accepted, the type the payer chose on the order.
func payerDocument(billing entities.BillingAddress, setting entities.PersonType) string {
	switch {
	case setting == entities.PersonTypeIndividual,
		setting == entities.PersonTypeIndividualOrCompany && billing.PersonType == entities.OrderPersonIndividual:
		return onlyDigits(billing.CPF)
	case setting == entities.PersonTypeCompany,
		setting == entities.PersonTypeIndividualOrCompany && billing.PersonType == entities.OrderPersonCompany:
		return onlyDigits(billing.CNPJ)
	}
	return ""
}

func isCompany(billing entities.BillingAddress, setting entities.PersonType) bool {
	return setting == entities.PersonTypeCompany ||
		(setting == entities.PersonTypeIndividualOrCompany && billing.PersonType == entities.OrderPersonCompany)
}
