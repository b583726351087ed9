package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the process configuration, read from the environment (and from
// .env through godotenv/autoload in cmd/api).
type Config struct {
	Server   ServerConfig
	AWS      AWSConfig
	Tables   TablesConfig
	Redis    RedisConfig
	Budget   BudgetConfig
	Payments PaymentsConfig
}

type ServerConfig struct {
	Port     int    `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	GinMode  string `envconfig:"GIN_MODE" default:"release"`
}

type AWSConfig struct {
	Region           string `envconfig:"AWS_REGION" default:"us-east-1"`
	AccessKeyID      string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	SecretAccessKey  string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint string `envconfig:"DYNAMODB_ENDPOINT" default:""`
}

type TablesConfig struct {
	Quotes   string `envconfig:"QUOTES_TABLE" default:"quotes"`
	Deposits string `envconfig:"DEPOSITS_TABLE" default:"deposits"`
}

// RedisConfig enables the estimate cache when Addr is set.
type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:""`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"CACHE_TTL" default:"1h"`
}

type BudgetConfig struct {
	CatalogFile string  `envconfig:"CATALOG_FILE" default:""`
	DepositRate float64 `envconfig:"DEPOSIT_RATE" default:"0.30"`
}

type PaymentsConfig struct {
	MercadoPagoAccessToken string `envconfig:"MERCADOPAGO_ACCESS_TOKEN" default:""`
	GatewayMock            bool   `envconfig:"PAYMENT_GATEWAY_MOCK" default:"false"`
}

// New reads the configuration from the environment.
func New() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
