package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, read from the environment (and .env through godotenv/autoload).
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	SeedCatalog bool   `env:"SEED_CATALOG" envDefault:"true"`

	AWS    AWSConfig
	Tables TablesConfig

	TaxRateBasisPoints         int64   `env:"TAX_RATE_BASIS_POINTS" envDefault:"1300"`
	DocumentVersionThresholdKB float64 `env:"DOCUMENT_VERSION_THRESHOLD_KB" envDefault:"5000"`
	DocumentMaxUploadBytes     int64   `env:"DOCUMENT_MAX_UPLOAD_BYTES" envDefault:"52428800"`

	Storage   StorageConfig
	Payments  PaymentsConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
}

type AWSConfig struct {
	Region           string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID      string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT"`
}

// TablesConfig names one DynamoDB table per entity.
type TablesConfig struct {
	Applications  string `env:"APPLICATIONS_TABLE" envDefault:"applications"`
	StatusHistory string `env:"STATUS_HISTORY_TABLE" envDefault:"status_history"`
	Sequences     string `env:"SEQUENCES_TABLE" envDefault:"sequences"`
	Documents     string `env:"DOCUMENTS_TABLE" envDefault:"documents"`
	Reviews       string `env:"REVIEWS_TABLE" envDefault:"reviews"`
	Applicants    string `env:"APPLICANTS_TABLE" envDefault:"applicants"`
	Payments      string `env:"PAYMENTS_TABLE" envDefault:"payments"`
	Transactions  string `env:"TRANSACTIONS_TABLE" envDefault:"transactions"`
	FeeSchedules  string `env:"FEE_SCHEDULES_TABLE" envDefault:"fee_schedules"`
	Statuses      string `env:"STATUSES_TABLE" envDefault:"statuses"`
	PermitTypes   string `env:"PERMIT_TYPES_TABLE" envDefault:"permit_types"`
	Departments   string `env:"DEPARTMENTS_TABLE" envDefault:"departments"`
	Properties    string `env:"PROPERTIES_TABLE" envDefault:"properties"`
	Users         string `env:"USERS_TABLE" envDefault:"users"`
	Roles         string `env:"ROLES_TABLE" envDefault:"roles"`
}

type StorageConfig struct {
	Bucket          string        `env:"GCS_BUCKET"`
	CredentialsFile string        `env:"GCS_CREDENTIALS_FILE"`
	SignedURLTTL    time.Duration `env:"GCS_SIGNED_URL_TTL" envDefault:"15m"`
}

type PaymentsConfig struct {
	AccessToken string `env:"MERCADOPAGO_ACCESS_TOKEN"`
	PayerEmail  string `env:"MERCADOPAGO_TEST_PAYER_EMAIL"`
	Mock        bool   `env:"PAYMENT_GATEWAY_MOCK" envDefault:"false"`
}

type AuthConfig struct {
	JWTSecret string `env:"JWT_SECRET"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `env:"RATE_LIMIT_RPS" envDefault:"20"`
	Burst             int     `env:"RATE_LIMIT_BURST" envDefault:"40"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.TaxRateBasisPoints < 0 {
		return fmt.Errorf("invalid TAX_RATE_BASIS_POINTS %d", c.TaxRateBasisPoints)
	}
	if c.DocumentVersionThresholdKB <= 0 {
		return fmt.Errorf("invalid DOCUMENT_VERSION_THRESHOLD_KB %v", c.DocumentVersionThresholdKB)
	}
	if c.DocumentMaxUploadBytes <= 0 {
		return fmt.Errorf("invalid DOCUMENT_MAX_UPLOAD_BYTES %d", c.DocumentMaxUploadBytes)
	}
	return nil
}

func (c Config) IsDevelopment() bool {
	return c.Environment == "development" || c.Environment == "local"
}
