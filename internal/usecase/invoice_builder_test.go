package usecase

import (
	"testing"
	"time"

	"iugu_gateway/internal/domain/entities"
)

var fixedNow = time.Date(2026, 10, 16, 14, 30, 0, 0, time.UTC)

func sampleOrder() entities.Order {
	return entities.Order{
		ID:            "42",
		AccountID:     7,
		Number:        "1042",
		Status:        entities.OrderStatusPending,
		PaymentMethod: entities.PaymentMethodBankSlip,
		Total:         150,
		Billing: entities.BillingAddress{
			FirstName: "Ana",
			LastName:  "Souza",
			Company:   "Souza LTDA",
			Email:     "ana@example.com",
			Phone:     "(11) 99999-0000",
			Address1:  "Rua A",
			Number:    "100",
			City:      "São Paulo",
			State:     "SP",
			Country:   "BR",
			Postcode:  "01310-100",
			CPF:       "123.456.789-09",
			CNPJ:      "12.345.678/0001-90",
		},
		Items: []entities.LineItem{{Name: "Camiseta", Quantity: 1, UnitTotal: 150}},
	}
}

func TestMoney_ToMinorUnits(t *testing.T) {
	cases := []struct {
		in   float64
		want int64
	}{
		{0, 0},
		{1, 100},
		{10.005, 1001},
		{19.999, 2000},
		{150, 15000},
		{0.1 + 0.2, 30},
		{99.994, 9999},
	}
	for _, c := range cases {
		if got := ToMinorUnits(c.in); got != c.want {
			t.Fatalf("ToMinorUnits(%v): expected %d, got %d", c.in, c.want, got)
		}
	}
}

func TestMoney_ToMinorUnits_NeverNegative(t *testing.T) {
	for i := 0; i < 10000; i++ {
		x := float64(i) * 0.0013
		if got := ToMinorUnits(x); got < 0 {
			t.Fatalf("ToMinorUnits(%v) = %d", x, got)
		}
	}
}

func TestInvoiceBuilder_BankSlipScenario(t *testing.T) {
	s := DefaultSettings()
	s.BankSlipDeadline = 5
	b := NewInvoiceBuilder(s, Hooks{})

	p := b.BuildInvoice(sampleOrder(), entities.PaymentMethodBankSlip, fixedNow)

	if p.DueDate != "21-10-2026" {
		t.Fatalf("expected due date 21-10-2026, got %s", p.DueDate)
	}
	if p.PayableWith != entities.PayableWithBankSlip {
		t.Fatalf("expected bank_slip, got %s", p.PayableWith)
	}
	if p.Total() != 15000 {
		t.Fatalf("expected total 15000, got %d", p.Total())
	}
	if !p.IgnoreDueEmail {
		t.Fatalf("expected ignore_due_email")
	}
	if len(p.CustomVariables) != 1 || p.CustomVariables[0].Name != "order_id" || p.CustomVariables[0].Value != "42" {
		t.Fatalf("unexpected custom variables: %+v", p.CustomVariables)
	}
	if p.Payer.PhonePrefix != "11" || p.Payer.Phone != "999990000" {
		t.Fatalf("unexpected phone split: %q %q", p.Payer.PhonePrefix, p.Payer.Phone)
	}
	if p.Payer.Address.ZipCode != "01310100" {
		t.Fatalf("expected digits-only zip, got %s", p.Payer.Address.ZipCode)
	}
	if p.Payer.Name != "Ana Souza" {
		t.Fatalf("unexpected payer name %q", p.Payer.Name)
	}
	if p.Payer.CPFCNPJ != "" {
		t.Fatalf("expected no tax id without person type setting, got %q", p.Payer.CPFCNPJ)
	}
}

func TestInvoiceBuilder_CreditCardDueTomorrow(t *testing.T) {
	b := NewInvoiceBuilder(DefaultSettings(), Hooks{})

	p := b.BuildInvoice(sampleOrder(), entities.PaymentMethodCreditCard, fixedNow)

	if p.DueDate != "17-10-2026" {
		t.Fatalf("expected 17-10-2026, got %s", p.DueDate)
	}
	if p.PayableWith != entities.PayableWithCreditCard {
		t.Fatalf("expected credit_card, got %s", p.PayableWith)
	}
}

func TestInvoiceBuilder_Items(t *testing.T) {
	order := sampleOrder()
	order.Items = []entities.LineItem{
		{Name: "Camiseta", Meta: "Tamanho: M", Quantity: 2, UnitTotal: 49.9},
		{Name: "Desconto", Quantity: 1, UnitTotal: -10},
		{Name: "Brinde", Quantity: 0, UnitTotal: 5},
	}
	order.Fees = []entities.Fee{{Name: "Embalagem", Total: 3.5}, {Name: "Cupom", Total: -2}}
	order.Taxes = []entities.Tax{{Label: "ICMS", Amount: 1.2, ShippingAmount: 0.3}}
	order.ShippingTotal = 20
	order.ShippingMethod = "Sedex"

	p := NewInvoiceBuilder(DefaultSettings(), Hooks{}).BuildInvoice(order, entities.PaymentMethodBankSlip, fixedNow)

	want := []entities.InvoiceItem{
		{Description: "Camiseta - Tamanho: M", PriceCents: 4990, Quantity: 2},
		{Description: "Embalagem", PriceCents: 350, Quantity: 1},
		{Description: "ICMS", PriceCents: 150, Quantity: 1},
		{Description: "Shipping via Sedex", PriceCents: 2000, Quantity: 1},
	}
	if len(p.Items) != len(want) {
		t.Fatalf("expected %d items, got %d: %+v", len(want), len(p.Items), p.Items)
	}
	for i := range want {
		if p.Items[i] != want[i] {
			t.Fatalf("item %d: expected %+v, got %+v", i, want[i], p.Items[i])
		}
	}
	for _, it := range p.Items {
		if it.PriceCents < 0 {
			t.Fatalf("negative item leaked: %+v", it)
		}
	}
}

func TestInvoiceBuilder_SendOnlyTotal(t *testing.T) {
	s := DefaultSettings()
	s.SendOnlyTotal = true
	order := sampleOrder()
	order.Total = 10.005
	order.ShippingTotal = 15

	p := NewInvoiceBuilder(s, Hooks{}).BuildInvoice(order, entities.PaymentMethodCreditCard, fixedNow)

	if len(p.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(p.Items))
	}
	if p.Items[0].Description != "Order 1042" || p.Items[0].PriceCents != 1001 || p.Items[0].Quantity != 1 {
		t.Fatalf("unexpected item %+v", p.Items[0])
	}
}

func TestInvoiceBuilder_PersonType(t *testing.T) {
	cases := []struct {
		name      string
		setting   entities.PersonType
		orderType int
		wantDoc   string
		wantName  string
	}{
		{"none", entities.PersonTypeNone, 0, "", "Ana Souza"},
		{"individual only", entities.PersonTypeIndividual, 0, "12345678909", "Ana Souza"},
		{"company only", entities.PersonTypeCompany, 0, "12345678000190", "Souza LTDA"},
		{"both, payer individual", entities.PersonTypeIndividualOrCompany, entities.OrderPersonIndividual, "12345678909", "Ana Souza"},
		{"both, payer company", entities.PersonTypeIndividualOrCompany, entities.OrderPersonCompany, "12345678000190", "Souza LTDA"},
		{"both, payer unset", entities.PersonTypeIndividualOrCompany, 0, "", "Ana Souza"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := DefaultSettings()
			s.PersonType = c.setting
			order := sampleOrder()
			order.Billing.PersonType = c.orderType

			p := NewInvoiceBuilder(s, Hooks{}).BuildInvoice(order, entities.PaymentMethodBankSlip, fixedNow)

			if p.Payer.CPFCNPJ != c.wantDoc {
				t.Fatalf("expected doc %q, got %q", c.wantDoc, p.Payer.CPFCNPJ)
			}
			if p.Payer.Name != c.wantName {
				t.Fatalf("expected name %q, got %q", c.wantName, p.Payer.Name)
			}
		})
	}
}

func TestInvoiceBuilder_URLsAndHook(t *testing.T) {
	s := DefaultSettings()
	s.StoreBaseURL = "https://loja.example.com/"
	s.NotificationURL = "https://pay.example.com/v1/webhooks/iugu"
	hooks := Hooks{Invoice: func(_ entities.Order, p entities.InvoicePayload) entities.InvoicePayload {
		p.Items = append(p.Items, entities.InvoiceItem{Description: "Gift wrap", PriceCents: 500, Quantity: 1})
		return p
	}}

	p := NewInvoiceBuilder(s, hooks).BuildInvoice(sampleOrder(), entities.PaymentMethodBankSlip, fixedNow)

	if p.ReturnURL != "https://loja.example.com/checkout/order-received/42/" {
		t.Fatalf("unexpected return url %s", p.ReturnURL)
	}
	if p.ExpiredURL != "https://loja.example.com/cart/?cancel_order=true&order_id=42" {
		t.Fatalf("unexpected expired url %s", p.ExpiredURL)
	}
	if p.NotificationURL != s.NotificationURL {
		t.Fatalf("unexpected notification url %s", p.NotificationURL)
	}
	if p.Total() != 15500 {
		t.Fatalf("expected hook item to be included, total %d", p.Total())
	}
}
