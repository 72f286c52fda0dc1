// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is loaded from the environment at startup. Stripe credentials are
// required; everything else has a local-dev default.
type Config struct {
	HTTPPort string

	// Stripe credentials. The endpoint secret is the shared secret webhook
	// signatures are verified against.
	StripeSecretKey      string
	StripeEndpointSecret string

	// Checkout behaviour.
	Currency           string
	SuccessURL         string
	SuccessURLPerOrder bool
	CancelURL          string
	ProcessorTimeout   time.Duration

	// Receipt store driver: memory | redis | postgres.
	ReceiptStoreDriver string
	RedisAddr          string
	ReceiptTTL         time.Duration

	// Postgres, used when ReceiptStoreDriver is postgres.
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// Event bus driver: kafka | rabbitmq | none.
	BusDriver   string
	BusTopic    string
	KafkaBroker string

	RabbitUser     string
	RabbitPassword string
	RabbitHost     string
	RabbitPort     string
}

// LoadConfig reads the environment and fails fast on missing required keys.
func LoadConfig() (*Config, error) {
	stripeKey := os.Getenv("STRIPE_SECRET_KEY")
	if stripeKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY is required")
	}
	endpointSecret := os.Getenv("STRIPE_ENDPOINT_SECRET")
	if endpointSecret == "" {
		return nil, fmt.Errorf("STRIPE_ENDPOINT_SECRET is required")
	}

	cfg := &Config{
		HTTPPort: getEnv("HTTP_PORT", "3003"),

		StripeSecretKey:      stripeKey,
		StripeEndpointSecret: endpointSecret,

		Currency:           getEnv("CHECKOUT_CURRENCY", "clp"),
		SuccessURL:         getEnv("CHECKOUT_SUCCESS_URL", "http://localhost:3003/payments/success"),
		SuccessURLPerOrder: getEnvBool("CHECKOUT_SUCCESS_URL_PER_ORDER", true),
		CancelURL:          getEnv("CHECKOUT_CANCEL_URL", "http://localhost:3003/payments/cancel"),
		ProcessorTimeout:   getEnvDuration("STRIPE_TIMEOUT", 10*time.Second),

		ReceiptStoreDriver: getEnv("RECEIPT_STORE", "memory"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		ReceiptTTL:         getEnvDuration("RECEIPT_TTL", 0),

		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     os.Getenv("DB_NAME"),

		BusDriver:   getEnv("BUS_DRIVER", "none"),
		BusTopic:    getEnv("BUS_TOPIC", "paymentSucceeded"),
		KafkaBroker: getEnv("KAFKA_BROKER", "localhost:9092"),

		RabbitUser:     os.Getenv("RABBITMQ_USER"),
		RabbitPassword: os.Getenv("RABBITMQ_PASSWORD"),
		RabbitHost:     getEnv("RABBITMQ_HOST", "localhost"),
		RabbitPort:     getEnv("RABBITMQ_PORT", "5672"),
	}
	return cfg, nil
}

// GetDBURL formats the config into a PostgreSQL connection string.
func (c *Config) GetDBURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// GetRabbitMQURL formats the config into a RabbitMQ connection string.
func (c *Config) GetRabbitMQURL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/",
		c.RabbitUser, c.RabbitPassword, c.RabbitHost, c.RabbitPort)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
