package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/velocita/storefront/pkg/database"
)

// CartConfig holds cart store configuration
type CartConfig struct {
	// ShippingFee is the flat fee charged whenever the cart is non-empty,
	// in whole currency units.
	ShippingFee int64

	// VariantScopedRemoval switches remove/update matching from the
	// historical product-id-only scope to the full (product id, color) key.
	VariantScopedRemoval bool

	// SnapshotKeyPrefix prefixes the per-cart persistence key.
	SnapshotKeyPrefix string
}

// CheckoutConfig holds the simulated checkout configuration
type CheckoutConfig struct {
	// ProcessingDelay is the artificial delay before a checkout completes.
	ProcessingDelay time.Duration
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// KafkaConfig holds Kafka producer configuration
type KafkaConfig struct {
	Brokers []string
	Enabled bool
}

// Config holds the full storefront configuration
type Config struct {
	ServiceName    string
	Environment    string
	LogLevel       string
	HTTPPort       string
	CatalogBackend string // "postgres" or "memory"

	Database database.Config
	Redis    RedisConfig
	Kafka    KafkaConfig
	Cart     CartConfig
	Checkout CheckoutConfig
}

// IsDevelopment reports whether the service runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Load reads configuration from the environment
func Load() *Config {
	brokers := splitAndTrim(getEnv("KAFKA_BROKERS", ""))

	return &Config{
		ServiceName:    getEnv("OTEL_SERVICE_NAME", "storefront-service"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		HTTPPort:       getEnv("HTTP_PORT", "8084"),
		CatalogBackend: getEnv("CATALOG_BACKEND", "postgres"),
		Database: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "storefrontdb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Brokers: brokers,
			Enabled: len(brokers) > 0,
		},
		Cart: CartConfig{
			ShippingFee:          int64(getEnvInt("CART_SHIPPING_FEE", 500)),
			VariantScopedRemoval: getEnvBool("CART_VARIANT_SCOPED_REMOVAL", false),
			SnapshotKeyPrefix:    getEnv("CART_SNAPSHOT_KEY_PREFIX", "velocita:cart"),
		},
		Checkout: CheckoutConfig{
			ProcessingDelay: getEnvDuration("CHECKOUT_PROCESSING_DELAY", 2*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
