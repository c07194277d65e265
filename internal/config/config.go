package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const ServiceName = "medsupply"

// Config holds application configuration values.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	CheckoutTimeout time.Duration
	RateLimitRPS    float64
	RateLimitBurst  int
	JournalDSN      string
	OtelEndpoint    string
	SeedSampleData  bool

	// Warnings collects values that were rejected and replaced by defaults.
	Warnings []string
}

// Load reads configuration from environment variables (and .env, if present) with reasonable defaults.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:   getEnv("HTTP_ADDR", ":9091"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		JournalDSN: os.Getenv("JOURNAL_DSN"),

		OtelEndpoint: os.Getenv("OTEL_ENDPOINT"),
	}
	cfg.CheckoutTimeout = cfg.envDuration("CHECKOUT_TIMEOUT", 2*time.Second)
	cfg.RateLimitRPS = cfg.envFloat("RATE_LIMIT_RPS", 50)
	cfg.RateLimitBurst = cfg.envInt("RATE_LIMIT_BURST", 100)
	cfg.SeedSampleData = cfg.envBool("SEED_SAMPLE_DATA", true)
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) warn(key, value string, def any) {
	c.Warnings = append(c.Warnings, fmt.Sprintf("invalid %s value %q, defaulting to %v", key, value, def))
}

func (c *Config) envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		c.warn(key, v, def)
		return def
	}
	return d
}

func (c *Config) envFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		c.warn(key, v, def)
		return def
	}
	return f
}

func (c *Config) envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		c.warn(key, v, def)
		return def
	}
	return n
}

func (c *Config) envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		c.warn(key, v, def)
		return def
	}
	return b
}
