package config

import (
	"testing"
	"time"

	"iugu_gateway/internal/domain/entities"
	"iugu_gateway/internal/usecase"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("IUGU_API_TOKEN", " tok ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Port != "8080" || cfg.Iugu.APIToken != "tok" || cfg.Debug {
		t.Fatalf("unexpected config %+v", cfg)
	}
	s := cfg.Settings
	if !s.CreditCardEnabled || !s.BankSlipEnabled || s.SendOnlyTotal {
		t.Fatalf("unexpected method flags %+v", s)
	}
	if s.BankSlipDeadline != usecase.DefaultBankSlipDeadline || s.TransactionRate != usecase.DefaultTransactionRate {
		t.Fatalf("unexpected defaults %+v", s)
	}
	if s.InterestRates[12] != 22 || s.Currency != "BRL" {
		t.Fatalf("unexpected rates/currency %+v", s)
	}
	if cfg.Redis.TTL != 30*time.Minute || cfg.Kafka.Brokers != nil {
		t.Fatalf("unexpected infra config %+v", cfg)
	}
	if cfg.Webhook.RatePerSecond != 0 || cfg.Webhook.Burst != 0 {
		t.Fatalf("expected webhook throttling off by default, got %+v", cfg.Webhook)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("IUGU_DEBUG", "yes")
	t.Setenv("IUGU_ACCOUNT_ID", "ACC123")
	t.Setenv("IUGU_CREDIT_CARD_ENABLED", "no")
	t.Setenv("IUGU_SEND_ONLY_TOTAL", "yes")
	t.Setenv("IUGU_BANK_SLIP_DEADLINE", "3")
	t.Setenv("IUGU_PERSON_TYPE", "2")
	t.Setenv("IUGU_INTEREST_RATES", `{"2": 5, "3": 6.5}`)
	t.Setenv("STORE_BASE_URL", "https://loja.example.com/")
	t.Setenv("STORE_CURRENCY", "usd")
	t.Setenv("SUBSCRIPTIONS_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	s := cfg.Settings
	if !cfg.Debug || s.CreditCardEnabled || !s.SendOnlyTotal || s.BankSlipDeadline != 3 {
		t.Fatalf("unexpected settings %+v", s)
	}
	if s.AccountID != "ACC123" {
		t.Fatalf("unexpected account id %q", s.AccountID)
	}
	if s.PersonType != entities.PersonTypeIndividual {
		t.Fatalf("unexpected person type %d", s.PersonType)
	}
	if len(s.InterestRates) != 2 || s.InterestRates[3] != 6.5 {
		t.Fatalf("unexpected rates %+v", s.InterestRates)
	}
	if s.StoreBaseURL != "https://loja.example.com" || s.Currency != "USD" || s.UsingSupportedCurrency() {
		t.Fatalf("unexpected store settings %+v", s)
	}
	if !s.Capabilities.Subscriptions || s.Capabilities.PreOrders {
		t.Fatalf("unexpected capabilities %+v", s.Capabilities)
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "k2:9092" {
		t.Fatalf("unexpected brokers %v", cfg.Kafka.Brokers)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name, key, value string
	}{
		{"deadline", "IUGU_BANK_SLIP_DEADLINE", "0"},
		{"person type", "IUGU_PERSON_TYPE", "9"},
		{"rates json", "IUGU_INTEREST_RATES", "{"},
		{"rates months", "IUGU_INTEREST_RATES", `{"13": 1}`},
		{"negative rate", "IUGU_INTEREST_RATES", `{"2": -1}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Setenv(c.key, c.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", c.key, c.value)
			}
		})
	}
}
