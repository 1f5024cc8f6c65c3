package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// Config holds application configuration.
type Config struct {
	Port          string `validate:"required,numeric"`
	IsProduction  bool
	EnableDBCheck bool

	// Store selection
	StockStore     string `validate:"required,oneof=postgres redis"`
	DatabaseURL    string `validate:"required_if=StockStore postgres"`
	MigrationsPath string `validate:"required_if=StockStore postgres"`
	RedisAddr      string `validate:"required_if=StockStore redis"`
	RedisPassword  string
	RedisDB        int `validate:"gte=0"`

	// Remote market service
	StockMarketBaseURL string        `validate:"required,url"`
	StockMarketTimeout time.Duration `validate:"gt=0"`

	// Stock events. Publishing is disabled when no brokers are set.
	KafkaBrokers    []string `validate:"omitempty,dive,hostname_port"`
	KafkaStockTopic string   `validate:"required_with=KafkaBrokers"`

	// Formatted as ulule/limiter rates, e.g. "100-M".
	RateLimit          string `validate:"required"`
	CORSAllowedOrigins []string
}

// KafkaEnabled reports whether stock events should be written to Kafka.
func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("STOCK_STORE", StorePostgres)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("STOCK_MARKET_BASE_URL", "http://localhost:8081")
	viper.SetDefault("STOCK_MARKET_TIMEOUT", "5s")
	viper.SetDefault("KAFKA_BROKERS", "")
	viper.SetDefault("KAFKA_STOCK_TOPIC", "stocks")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	// Environment variables override both the defaults and the .env file.
	viper.AutomaticEnv()

	cfg := &Config{
		Port:               viper.GetString("PORT"),
		IsProduction:       viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:      viper.GetBool("ENABLE_DB_CHECK"),
		StockStore:         strings.ToLower(strings.TrimSpace(viper.GetString("STOCK_STORE"))),
		DatabaseURL:        viper.GetString("PGSQL_URL"),
		MigrationsPath:     viper.GetString("MIGRATIONS_PATH"),
		RedisAddr:          viper.GetString("REDIS_ADDR"),
		RedisPassword:      viper.GetString("REDIS_PASSWORD"),
		RedisDB:            viper.GetInt("REDIS_DB"),
		StockMarketBaseURL: strings.TrimRight(viper.GetString("STOCK_MARKET_BASE_URL"), "/"),
		StockMarketTimeout: viper.GetDuration("STOCK_MARKET_TIMEOUT"),
		KafkaBrokers:       splitList(viper.GetString("KAFKA_BROKERS")),
		KafkaStockTopic:    viper.GetString("KAFKA_STOCK_TOPIC"),
		RateLimit:          viper.GetString("RATE_LIMIT"),
		CORSAllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
	}

	if !cfg.KafkaEnabled() {
		slog.Warn("KAFKA_BROKERS not set, stock created events are disabled")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// splitList parses a comma-separated env value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
