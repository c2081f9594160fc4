package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// SourceSchema selects which shape the SAM API returns. The "store"
// schema is the flat store-items listing; the "catalogue" schema is the
// richer search-then-detail inventory API.
type SourceSchema string

const (
	SchemaStore     SourceSchema = "store"
	SchemaCatalogue SourceSchema = "catalogue"
)

type Config struct {
	// SAM (source inventory API)
	SAMBaseURL  string
	SAMAPIKey   string
	SAMUsername string
	SAMPassword string
	SAMSchema   SourceSchema

	// Webflow (destination catalogue API)
	WebflowBaseURL string
	WebflowSiteID  string
	WebflowToken   string
	Currency       string

	// Publisher behaviour
	PublishInterval   time.Duration
	PublishRetryMax   int
	PublishRetryDelay time.Duration

	// Webhook server
	WebhookPublicURL string
	APIHost          string
	APIPort          string

	// Environment
	Env      string
	LogLevel string
}

func Load() (*Config, error) {
	// Load .env file
	godotenv.Load()

	cfg := &Config{
		SAMBaseURL:        getEnv("SAM_BASE_URL", "https://apiv2.sam.org.au"),
		SAMAPIKey:         getEnv("SAM_KEY", ""),
		SAMUsername:       getEnv("SAM_USERNAME", ""),
		SAMPassword:       getEnv("SAM_PASSWORD", ""),
		SAMSchema:         SourceSchema(getEnv("SAM_SCHEMA", string(SchemaStore))),
		WebflowBaseURL:    getEnv("WEBFLOW_BASE_URL", "https://api.webflow.com"),
		WebflowSiteID:     getEnv("WEBFLOW_SITE_ID", ""),
		WebflowToken:      getEnv("WEBFLOW_KEY", ""),
		Currency:          getEnv("CURRENCY", "AUD"),
		PublishInterval:   getEnvAsDuration("PUBLISH_INTERVAL", 2*time.Second),
		PublishRetryMax:   getEnvAsInt("PUBLISH_RETRY_MAX", 5),
		PublishRetryDelay: getEnvAsDuration("PUBLISH_RETRY_DELAY", 5*time.Second),
		WebhookPublicURL:  getEnv("WEBHOOK_PUBLIC_URL", ""),
		APIHost:           getEnv("API_HOST", "0.0.0.0"),
		APIPort:           getEnv("API_PORT", "8080"),
		Env:               getEnv("ENV", "development"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.SAMSchema {
	case SchemaStore, SchemaCatalogue:
	default:
		return fmt.Errorf("invalid SAM_SCHEMA %q: must be %q or %q", c.SAMSchema, SchemaStore, SchemaCatalogue)
	}

	// The catalogue schema authenticates through a login exchange, the
	// store schema through a static key. Either credential variant is
	// acceptable as long as one is present.
	if c.SAMAPIKey == "" && (c.SAMUsername == "" || c.SAMPassword == "") {
		return fmt.Errorf("SAM credentials missing: set SAM_KEY or SAM_USERNAME/SAM_PASSWORD")
	}

	if c.WebflowSiteID == "" {
		return fmt.Errorf("WEBFLOW_SITE_ID is required")
	}
	if c.WebflowToken == "" {
		return fmt.Errorf("WEBFLOW_KEY is required")
	}

	if c.PublishRetryMax < 1 {
		return fmt.Errorf("PUBLISH_RETRY_MAX must be at least 1")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
