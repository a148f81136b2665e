package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDynamoDB = "dynamodb"
	StorePostgres = "postgres"
	StoreMemory   = "memory"

	NotifierKafka   = "kafka"
	NotifierWebhook = "webhook"
	NotifierLog     = "log"
)

type Config struct {
	HTTP         HTTPConfig
	Store        StoreConfig
	Postgres     PostgresConfig
	Redis        RedisConfig
	Notification NotificationConfig
	Payments     PaymentsConfig
	Orders       OrdersConfig
	Tracing      TracingConfig
}

type HTTPConfig struct {
	Port string
}

type StoreConfig struct {
	Kind string
}

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// DSN is the lib/pq connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.DBName)
}

type RedisConfig struct {
	Addr     string
	Password string
	CacheTTL time.Duration
}

type NotificationConfig struct {
	Kind       string
	Brokers    []string
	Topic      string
	WebhookURL string
	Timeout    time.Duration
}

type PaymentsConfig struct {
	MercadoPagoAccessToken string
	VerifyProofs           bool
}

type OrdersConfig struct {
	AllowTerminalOverride bool
	BulkConcurrency       int
	HookTimeout           time.Duration
}

type TracingConfig struct {
	OTLPEndpoint string
	ServiceName  string
}

// Load reads the configuration from the environment, after loading a .env
// file when one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cacheTTL, err := getDuration("CATALOG_CACHE_TTL", 5*time.Minute)
	if err != nil {
		return nil, err
	}
	notifyTimeout, err := getDuration("NOTIFICATION_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	verify, err := getBool("PROOF_VERIFICATION", false)
	if err != nil {
		return nil, err
	}
	override, err := getBool("ALLOW_TERMINAL_OVERRIDE", false)
	if err != nil {
		return nil, err
	}
	concurrency, err := getInt("BULK_CONCURRENCY", 4)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTP: HTTPConfig{
			Port: getEnv("HTTP_PORT", "8080"),
		},
		Store: StoreConfig{
			Kind: strings.ToLower(getEnv("ORDER_STORE", StoreDynamoDB)),
		},
		Postgres: PostgresConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "loja_merch"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			CacheTTL: cacheTTL,
		},
		Notification: NotificationConfig{
			Kind:       strings.ToLower(getEnv("NOTIFIER", NotifierLog)),
			Brokers:    splitList(getEnv("KAFKA_BROKERS", "localhost:9092")),
			Topic:      getEnv("KAFKA_NOTIFICATION_TOPIC", "order-status-emails"),
			WebhookURL: getEnv("NOTIFICATION_WEBHOOK_URL", ""),
			Timeout:    notifyTimeout,
		},
		Payments: PaymentsConfig{
			MercadoPagoAccessToken: getEnv("MERCADOPAGO_ACCESS_TOKEN", ""),
			VerifyProofs:           verify,
		},
		Orders: OrdersConfig{
			AllowTerminalOverride: override,
			BulkConcurrency:       concurrency,
			HookTimeout:           notifyTimeout,
		},
		Tracing: TracingConfig{
			OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			ServiceName:  getEnv("SERVICE_NAME", "loja-merch-orders"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.HTTP.Port == "" {
		return fmt.Errorf("HTTP_PORT is required")
	}
	switch c.Store.Kind {
	case StoreDynamoDB, StoreMemory:
	case StorePostgres:
		if c.Postgres.Host == "" || c.Postgres.DBName == "" {
			return fmt.Errorf("DB_HOST and DB_NAME are required when ORDER_STORE=postgres")
		}
	default:
		return fmt.Errorf("ORDER_STORE must be one of dynamodb, postgres, memory; got %q", c.Store.Kind)
	}
	switch c.Notification.Kind {
	case NotifierLog:
	case NotifierKafka:
		if len(c.Notification.Brokers) == 0 || c.Notification.Topic == "" {
			return fmt.Errorf("KAFKA_BROKERS and KAFKA_NOTIFICATION_TOPIC are required when NOTIFIER=kafka")
		}
	case NotifierWebhook:
		if c.Notification.WebhookURL == "" {
			return fmt.Errorf("NOTIFICATION_WEBHOOK_URL is required when NOTIFIER=webhook")
		}
	default:
		return fmt.Errorf("NOTIFIER must be one of kafka, webhook, log; got %q", c.Notification.Kind)
	}
	if c.Payments.VerifyProofs && c.Payments.MercadoPagoAccessToken == "" {
		return fmt.Errorf("MERCADOPAGO_ACCESS_TOKEN is required when PROOF_VERIFICATION=true")
	}
	if c.Orders.BulkConcurrency < 1 {
		return fmt.Errorf("BULK_CONCURRENCY must be at least 1")
	}
	return nil
}

// getEnv treats an empty variable as unset.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func getInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
