// Package config loads the application settings from the environment and an
// optional .env file. Values are read once at start-up and passed explicitly
// to the components that need them.
package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	Port      string
	Env       string
	SecretKey string
	LogLevel  string
	LogJSON   bool
	Timezone  string

	SessionTTL  time.Duration
	RememberTTL time.Duration

	DynamoDB    DynamoDBConfig
	Pix         PixConfig
	Pricing     PricingConfig
	Storage     StorageConfig
	MercadoPago MercadoPagoConfig
	Event       EventConfig
	SuperAdmin  SuperAdminConfig
}

type DynamoDBConfig struct {
	Region             string
	Endpoint           string
	AccessKeyID        string
	SecretAccessKey    string
	UsersTable         string
	RolesTable         string
	RegistrationsTable string
	UniquesTable       string
	PaymentsTable      string
	AuditLogsTable     string
}

// PixConfig identifies the receiving account embedded in every payload.
type PixConfig struct {
	Key          string
	MerchantName string
	MerchantCity string
}

type PricingConfig struct {
	Lot1Limit       int
	Lot1Price       decimal.Decimal
	Lot2Price       decimal.Decimal
	PixSuffix       decimal.Decimal
	MaxInstallments int
}

// StorageConfig selects the proof store. URL schemes: s3://bucket, memory://.
type StorageConfig struct {
	URL            string
	Endpoint       string
	Region         string
	KeyID          string
	ApplicationKey string
	PublicBaseURL  string
	MaxProofBytes  int64
}

// MercadoPagoConfig drives the card gateway. TestPayer* only apply to TEST- tokens.
type MercadoPagoConfig struct {
	AccessToken     string
	Mock            bool
	TestPayerEmail  string
	TestPayerUserID string
}

// EventConfig holds the texts shown on the public landing endpoint.
type EventConfig struct {
	Name           string
	PixNotice      string
	ChildrenNotice string
	IncludedItems  []string
	Contact        string
	ContactLabel   string
}

type SuperAdminConfig struct {
	Email    string
	Password string
}

const (
	defaultSecretKey = "dev-secret-change-me"

	defaultPixNotice = "Informamos que todos os pagamentos realizados via Pix, seja em valor integral ou parcelado, " +
		"devem conter obrigatoriamente os centavos finalizados em 0,09. Essa padronização é necessária " +
		"para a correta identificação do pagamento. Agradecemos a compreensão."
	defaultChildrenNotice = "Crianças até 5 anos não pagam, desde que dividam cama com responsável."
)

var defaultIncludedItems = []string{
	"Dia 20: Almoço e jantar",
	"Dia 21: Café da manhã, almoço e jantar",
	"Dia 22: Café da manhã",
	"Transporte de ônibus (caso prefira), saída de Manaus",
	"Quarto climatizado",
	"Cama",
	"Participação em todas as programações durante a convenção jovem",
	"Momento de lazer",
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("SECRET_KEY", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_JSON", false)
	v.SetDefault("TIMEZONE", "America/Manaus")
	v.SetDefault("SESSION_TTL", 8*time.Hour)
	v.SetDefault("REMEMBER_TTL", 30*24*time.Hour)

	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("DYNAMODB_ENDPOINT", "")
	v.SetDefault("AWS_ACCESS_KEY_ID", "")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "")
	v.SetDefault("USERS_TABLE", "users")
	v.SetDefault("ROLES_TABLE", "roles")
	v.SetDefault("REGISTRATIONS_TABLE", "registrations")
	v.SetDefault("UNIQUES_TABLE", "registration_uniques")
	v.SetDefault("PAYMENTS_TABLE", "payments")
	v.SetDefault("AUDIT_LOGS_TABLE", "audit_logs")

	v.SetDefault("PIX_KEY", "")
	v.SetDefault("PIX_MERCHANT_NAME", "CONVENCAO AMAZONICA")
	v.SetDefault("PIX_MERCHANT_CITY", "MANAUS")

	v.SetDefault("LOT1_LIMIT", 50)
	v.SetDefault("LOT1_PRICE", "180.09")
	v.SetDefault("LOT2_PRICE", "200.09")
	v.SetDefault("PIX_SUFFIX", "0.09")
	v.SetDefault("MAX_INSTALLMENTS", 3)

	v.SetDefault("STORAGE_URL", "memory://")
	v.SetDefault("B2_ENDPOINT", "https://s3.us-east-005.backblazeb2.com")
	v.SetDefault("B2_REGION", "us-east-005")
	v.SetDefault("B2_KEY_ID", "")
	v.SetDefault("B2_APPLICATION_KEY", "")
	v.SetDefault("STORAGE_PUBLIC_BASE_URL", "https://f005.backblazeb2.com/file")
	v.SetDefault("MAX_PROOF_BYTES", int64(10<<20))

	v.SetDefault("MERCADOPAGO_ACCESS_TOKEN", "")
	v.SetDefault("PAYMENT_GATEWAY_MOCK", "")
	v.SetDefault("MERCADOPAGO_MOCK", "")
	v.SetDefault("MERCADOPAGO_TEST_PAYER_EMAIL", "")
	v.SetDefault("MERCADOPAGO_TEST_PAYER_USER_ID", "")

	v.SetDefault("EVENT_NAME", "Convenção Jovem Amazônica")
	v.SetDefault("EVENT_PIX_NOTICE", defaultPixNotice)
	v.SetDefault("EVENT_CHILDREN_NOTICE", defaultChildrenNotice)
	v.SetDefault("EVENT_INCLUDED_ITEMS", strings.Join(defaultIncludedItems, ";"))
	v.SetDefault("EVENT_CONTACT", "+55 92 8459-6369")
	v.SetDefault("EVENT_CONTACT_LABEL", "Número de contato do pagamento de inscrição")

	v.SetDefault("SUPER_ADMIN_EMAIL", "")
	v.SetDefault("SUPER_ADMIN_PASSWORD", "")

	v.AutomaticEnv()
	return v
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:        v.GetString("PORT"),
		Env:         strings.ToLower(v.GetString("ENV")),
		SecretKey:   v.GetString("SECRET_KEY"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		LogJSON:     v.GetBool("LOG_JSON"),
		Timezone:    v.GetString("TIMEZONE"),
		SessionTTL:  v.GetDuration("SESSION_TTL"),
		RememberTTL: v.GetDuration("REMEMBER_TTL"),
		DynamoDB: DynamoDBConfig{
			Region:             v.GetString("AWS_REGION"),
			Endpoint:           v.GetString("DYNAMODB_ENDPOINT"),
			AccessKeyID:        v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey:    v.GetString("AWS_SECRET_ACCESS_KEY"),
			UsersTable:         v.GetString("USERS_TABLE"),
			RolesTable:         v.GetString("ROLES_TABLE"),
			RegistrationsTable: v.GetString("REGISTRATIONS_TABLE"),
			UniquesTable:       v.GetString("UNIQUES_TABLE"),
			PaymentsTable:      v.GetString("PAYMENTS_TABLE"),
			AuditLogsTable:     v.GetString("AUDIT_LOGS_TABLE"),
		},
		Pix: PixConfig{
			Key:          v.GetString("PIX_KEY"),
			MerchantName: v.GetString("PIX_MERCHANT_NAME"),
			MerchantCity: v.GetString("PIX_MERCHANT_CITY"),
		},
		Pricing: PricingConfig{
			Lot1Limit:       intOr(v.GetInt("LOT1_LIMIT"), 50),
			Lot1Price:       decimalOr(v.GetString("LOT1_PRICE"), "180.09"),
			Lot2Price:       decimalOr(v.GetString("LOT2_PRICE"), "200.09"),
			PixSuffix:       decimalOr(v.GetString("PIX_SUFFIX"), "0.09"),
			MaxInstallments: intOr(v.GetInt("MAX_INSTALLMENTS"), 3),
		},
		Storage: StorageConfig{
			URL:            v.GetString("STORAGE_URL"),
			Endpoint:       v.GetString("B2_ENDPOINT"),
			Region:         v.GetString("B2_REGION"),
			KeyID:          v.GetString("B2_KEY_ID"),
			ApplicationKey: v.GetString("B2_APPLICATION_KEY"),
			PublicBaseURL:  strings.TrimRight(v.GetString("STORAGE_PUBLIC_BASE_URL"), "/"),
			MaxProofBytes:  v.GetInt64("MAX_PROOF_BYTES"),
		},
		MercadoPago: MercadoPagoConfig{
			AccessToken:     strings.TrimSpace(v.GetString("MERCADOPAGO_ACCESS_TOKEN")),
			Mock:            mockFlag(v.GetString("PAYMENT_GATEWAY_MOCK")) || mockFlag(v.GetString("MERCADOPAGO_MOCK")),
			TestPayerEmail:  strings.TrimSpace(v.GetString("MERCADOPAGO_TEST_PAYER_EMAIL")),
			TestPayerUserID: strings.TrimSpace(v.GetString("MERCADOPAGO_TEST_PAYER_USER_ID")),
		},
		Event: EventConfig{
			Name:           v.GetString("EVENT_NAME"),
			PixNotice:      v.GetString("EVENT_PIX_NOTICE"),
			ChildrenNotice: v.GetString("EVENT_CHILDREN_NOTICE"),
			IncludedItems:  splitList(v.GetString("EVENT_INCLUDED_ITEMS")),
			Contact:        v.GetString("EVENT_CONTACT"),
			ContactLabel:   v.GetString("EVENT_CONTACT_LABEL"),
		},
		SuperAdmin: SuperAdminConfig{
			Email:    strings.ToLower(strings.TrimSpace(v.GetString("SUPER_ADMIN_EMAIL"))),
			Password: v.GetString("SUPER_ADMIN_PASSWORD"),
		},
	}

	if cfg.SecretKey == "" && cfg.IsDevelopment() {
		cfg.SecretKey = defaultSecretKey
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings the service cannot run without.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return fmt.Errorf("SECRET_KEY is required when ENV=%s", c.Env)
	}
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Pricing.MaxInstallments < 1 {
		return fmt.Errorf("MAX_INSTALLMENTS must be at least 1")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "dev" || c.Env == "test"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// Location resolves Timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// decimalOr accepts comma or period separators and falls back to def.
func decimalOr(raw, def string) decimal.Decimal {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.RequireFromString(def)
	}
	return d
}

func mockFlag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func intOr(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
