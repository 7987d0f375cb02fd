package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"iugu_gateway/internal/domain/entities"
	"iugu_gateway/internal/usecase"

	"github.com/spf13/viper"
)

// Config is the service configuration read from the environment (a .env file
// is loaded by the godotenv autoload import in main).
type Config struct {
	Port  string
	Debug bool

	Iugu struct {
		APIToken string
		BaseURL  string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
		TTL      time.Duration
	}

	Kafka struct {
		Brokers    []string
		EmailTopic string
	}

	Webhook struct {
		RatePerSecond float64
		Burst         int
	}

	Settings usecase.Settings
}

func defaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("iugu_debug", "no")
	v.SetDefault("iugu_credit_card_enabled", "yes")
	v.SetDefault("iugu_bank_slip_enabled", "yes")
	v.SetDefault("iugu_bank_slip_deadline", usecase.DefaultBankSlipDeadline)
	v.SetDefault("iugu_send_only_total", "no")
	v.SetDefault("iugu_transaction_rate", usecase.DefaultTransactionRate)
	v.SetDefault("iugu_person_type", int(entities.PersonTypeNone))
	v.SetDefault("store_currency", usecase.SupportedCurrency)
	v.SetDefault("subscriptions_enabled", "no")
	v.SetDefault("pre_orders_enabled", "no")
	v.SetDefault("redis_db", 0)
	v.SetDefault("redis_ttl", "30m")
	v.SetDefault("kafka_email_topic", "notifications.email")
	// Webhook throttling is opt-in; a zero rate disables it.
	v.SetDefault("webhook_rate_per_second", 0)
	v.SetDefault("webhook_burst", 0)
}

// Load reads the configuration. Missing optional values fall back to the
// gateway defaults; malformed values are errors.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	defaults(v)

	var cfg Config
	cfg.Port = v.GetString("port")
	cfg.Debug = flag(v, "iugu_debug")

	cfg.Iugu.APIToken = strings.TrimSpace(v.GetString("iugu_api_token"))
	cfg.Iugu.BaseURL = v.GetString("iugu_base_url")

	cfg.Redis.Addr = v.GetString("redis_addr")
	cfg.Redis.Password = v.GetString("redis_password")
	cfg.Redis.DB = v.GetInt("redis_db")
	cfg.Redis.TTL = v.GetDuration("redis_ttl")

	cfg.Kafka.Brokers = splitList(v.GetString("kafka_brokers"))
	cfg.Kafka.EmailTopic = v.GetString("kafka_email_topic")

	cfg.Webhook.RatePerSecond = v.GetFloat64("webhook_rate_per_second")
	cfg.Webhook.Burst = v.GetInt("webhook_burst")

	settings, err := loadSettings(v)
	if err != nil {
		return nil, err
	}
	cfg.Settings = settings
	return &cfg, nil
}

func loadSettings(v *viper.Viper) (usecase.Settings, error) {
	s := usecase.DefaultSettings()
	s.AccountID = strings.TrimSpace(v.GetString("iugu_account_id"))
	s.CreditCardEnabled = flag(v, "iugu_credit_card_enabled")
	s.BankSlipEnabled = flag(v, "iugu_bank_slip_enabled")
	s.SendOnlyTotal = flag(v, "iugu_send_only_total")
	s.NotificationURL = strings.TrimSpace(v.GetString("iugu_notification_url"))
	s.StoreBaseURL = strings.TrimRight(strings.TrimSpace(v.GetString("store_base_url")), "/")
	s.Currency = strings.ToUpper(strings.TrimSpace(v.GetString("store_currency")))
	s.AdminEmail = strings.TrimSpace(v.GetString("admin_email"))
	s.TransactionRate = v.GetFloat64("iugu_transaction_rate")
	s.Capabilities = usecase.Capabilities{
		Subscriptions: flag(v, "subscriptions_enabled"),
		PreOrders:     flag(v, "pre_orders_enabled"),
	}

	deadline := v.GetInt("iugu_bank_slip_deadline")
	if deadline < 1 {
		return usecase.Settings{}, fmt.Errorf("IUGU_BANK_SLIP_DEADLINE must be at least 1, got %d", deadline)
	}
	s.BankSlipDeadline = deadline

	pt := entities.PersonType(v.GetInt("iugu_person_type"))
	if pt < entities.PersonTypeNone || pt > entities.PersonTypeCompany {
		return usecase.Settings{}, fmt.Errorf("IUGU_PERSON_TYPE out of range: %d", pt)
	}
	s.PersonType = pt

	if raw := strings.TrimSpace(v.GetString("iugu_interest_rates")); raw != "" {
		rates, err := parseInterestRates(raw)
		if err != nil {
			return usecase.Settings{}, err
		}
		s.InterestRates = rates
	}
	return s, nil
}

// parseInterestRates reads a JSON object of installments to percent, e.g.
// {"2": 10, "3": 11.5}.
func parseInterestRates(raw string) (map[int]float64, error) {
	var byKey map[string]float64
	if err := json.Unmarshal([]byte(raw), &byKey); err != nil {
		return nil, fmt.Errorf("invalid IUGU_INTEREST_RATES: %w", err)
	}
	rates := make(map[int]float64, len(byKey))
	for k, rate := range byKey {
		months, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil || months < 2 || months > 12 {
			return nil, fmt.Errorf("invalid IUGU_INTEREST_RATES installment %q", k)
		}
		if rate < 0 {
			return nil, fmt.Errorf("invalid IUGU_INTEREST_RATES rate for %d installments", months)
		}
		rates[months] = rate
	}
	return rates, nil
}

// flag accepts the "yes"/"no" values of the store settings as well as the
// usual boolean spellings.
func flag(v *viper.Viper, key string) bool {
	switch strings.ToLower(strings.TrimSpace(v.GetString(key))) {
	case "yes", "y", "on", "1", "true":
		return true
	}
	return false
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
