/*
config.go - Environment-sourced configuration

PURPOSE:
  One immutable Config built at process start and passed explicitly to
  the pieces that need it. No package reads the environment after Load
  returns; the pure calculation code receives typed values only.

VARIABLES:
  PAYMENT_DAY_OF_MONTH   required, integer 1-31
  PRICE_PER_MEAL         required, positive decimal
  PORTAL_URL             required
  PORTAL_USERNAME        required
  PORTAL_PASSWORD        required
  PORT                   default 8080
  PORTAL_TIMEOUT         default 30s
  CLOSURES_FILE          optional YAML closure calendar
  DAILY_SUMMARY_CRON     optional cron spec for the morning summary log

  A .env file in the working directory is honored when present.

VALIDATION:
  Validate collects every violation before reporting, so a broken
  environment surfaces in one pass. Invalid configuration is fatal at
  startup - the calculators never see it.
*/
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds all application configuration.
type Config struct {
	// Core calculation inputs
	PaymentDayOfMonth int
	PricePerMeal      decimal.Decimal

	// Portal
	PortalURL      string
	PortalUsername string
	PortalPassword string
	PortalTimeout  time.Duration

	// HTTP server
	Port string

	// Optional extras
	ClosuresFile     string
	DailySummaryCron string
}

// Load builds a Config from the environment, honoring a local .env file.
func Load() *Config {
	// Missing .env is the normal case outside development.
	_ = godotenv.Load()

	day, _ := strconv.Atoi(getEnv("PAYMENT_DAY_OF_MONTH", "0"))
	price, _ := decimal.NewFromString(getEnv("PRICE_PER_MEAL", "0"))

	return &Config{
		PaymentDayOfMonth: day,
		PricePerMeal:      price,

		PortalURL:      getEnv("PORTAL_URL", ""),
		PortalUsername: getEnv("PORTAL_USERNAME", ""),
		PortalPassword: getEnv("PORTAL_PASSWORD", ""),
		PortalTimeout:  getEnvDuration("PORTAL_TIMEOUT", 30*time.Second),

		Port: getEnv("PORT", "8080"),

		ClosuresFile:     getEnv("CLOSURES_FILE", ""),
		DailySummaryCron: getEnv("DAILY_SUMMARY_CRON", ""),
	}
}

// Validate checks the configuration and returns an error listing every
// violation found.
func (c *Config) Validate() error {
	var problems []string

	if c.PaymentDayOfMonth < 1 || c.PaymentDayOfMonth > 31 {
		problems = append(problems, fmt.Sprintf("PAYMENT_DAY_OF_MONTH must be between 1 and 31, got %d", c.PaymentDayOfMonth))
	}
	if !c.PricePerMeal.IsPositive() {
		problems = append(problems, fmt.Sprintf("PRICE_PER_MEAL must be a positive decimal, got %s", c.PricePerMeal))
	}
	if c.PortalURL == "" {
		problems = append(problems, "PORTAL_URL is required")
	} else if u, err := url.Parse(c.PortalURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		problems = append(problems, fmt.Sprintf("PORTAL_URL %q must be an http(s) URL", c.PortalURL))
	}
	if c.PortalUsername == "" {
		problems = append(problems, "PORTAL_USERNAME is required")
	}
	if c.PortalPassword == "" {
		problems = append(problems, "PORTAL_PASSWORD is required")
	}
	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid PORT %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid PORT %d: must be between 1 and 65535", port))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration invalid:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
