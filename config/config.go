// Package config handles loading and managing application configuration.
package config

import (
	"net"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "default-secret-change-in-production"

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `validate:"required"`
	App         AppConfig         `validate:"required"`
	Stripe      StripeConfig
	MercadoPago MercadoPagoConfig
	Mock        MockConfig
	Security    SecurityConfig    `validate:"required"`
	Events      EventsConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port    string `validate:"required,numeric"`
	Host    string `validate:"required"`
	BaseURL string `validate:"required,url"`
	GinMode string `validate:"oneof=debug release test"`
}

// Address is the host:port the HTTP server listens on.
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// AppConfig holds process-level settings.
type AppConfig struct {
	Environment string `validate:"required"`
	Version     string `validate:"required"`
	LogLevel    string `validate:"omitempty,oneof=debug info warn error"`
}

// IsProduction reports whether the service runs in production.
func (a AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

// StripeConfig holds Stripe credentials. Empty SecretKey disables Stripe.
type StripeConfig struct {
	SecretKey      string
	PublishableKey string
	WebhookSecret  string
}

// Enabled reports whether Stripe credentials are present.
func (s StripeConfig) Enabled() bool { return s.SecretKey != "" }

// MercadoPagoConfig holds Mercado Pago credentials. Empty AccessToken
// disables Mercado Pago.
type MercadoPagoConfig struct {
	AccessToken   string
	PublicKey     string
	WebhookSecret string
}

// Enabled reports whether Mercado Pago credentials are present.
func (m MercadoPagoConfig) Enabled() bool { return m.AccessToken != "" }

// MockConfig controls the in-process mock gateway.
type MockConfig struct {
	Enabled bool
}

// SecurityConfig holds security-related configuration.
type SecurityConfig struct {
	JWTSecret       string        `validate:"required"`
	AuthEnabled     bool
	RateLimitMax    int           `validate:"gte=1"`
	RateLimitWindow time.Duration `validate:"gt=0"`
}

// EventsConfig configures forwarding of handled webhook events. Empty
// ForwardURL disables forwarding.
type EventsConfig struct {
	ForwardURL    string `validate:"omitempty,url"`
	ForwardAPIKey string
}

// Load reads configuration from the environment, after loading a .env file
// from the working directory when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return fromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "3000")
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_BASE_URL", "http://localhost:3000")
	v.SetDefault("APP_VERSION", "1.0.0")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("API_AUTH_ENABLED", false)
	v.SetDefault("RATE_LIMIT_MAX", 100)
	v.SetDefault("RATE_LIMIT_WINDOW", time.Minute)

	_ = v.BindEnv("ENVIRONMENT", "ENVIRONMENT", "NODE_ENV")
	v.SetDefault("ENVIRONMENT", "development")

	return v
}

func fromViper(v *viper.Viper) (*Config, error) {
	env := strings.ToLower(v.GetString("ENVIRONMENT"))

	cfg := &Config{
		Server: ServerConfig{
			Port:    v.GetString("PORT"),
			Host:    v.GetString("API_HOST"),
			BaseURL: strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
			GinMode: v.GetString("GIN_MODE"),
		},
		App: AppConfig{
			Environment: env,
			Version:     v.GetString("APP_VERSION"),
			LogLevel:    strings.ToLower(v.GetString("LOG_LEVEL")),
		},
		Stripe: StripeConfig{
			SecretKey:      v.GetString("STRIPE_SECRET_KEY"),
			PublishableKey: v.GetString("STRIPE_PUBLISHABLE_KEY"),
			WebhookSecret:  v.GetString("STRIPE_WEBHOOK_SECRET"),
		},
		MercadoPago: MercadoPagoConfig{
			AccessToken:   v.GetString("MERCADOPAGO_ACCESS_TOKEN"),
			PublicKey:     v.GetString("MERCADOPAGO_PUBLIC_KEY"),
			WebhookSecret: v.GetString("MERCADOPAGO_WEBHOOK_SECRET"),
		},
		Mock: MockConfig{
			Enabled: isTruthy(v.GetString("PAYMENT_GATEWAY_MOCK")) || isTruthy(v.GetString("MERCADOPAGO_MOCK")),
		},
		Security: SecurityConfig{
			JWTSecret:       v.GetString("JWT_SECRET"),
			AuthEnabled:     v.GetBool("API_AUTH_ENABLED"),
			RateLimitMax:    v.GetInt("RATE_LIMIT_MAX"),
			RateLimitWindow: v.GetDuration("RATE_LIMIT_WINDOW"),
		},
		Events: EventsConfig{
			ForwardURL:    v.GetString("EVENTS_FORWARD_URL"),
			ForwardAPIKey: v.GetString("EVENTS_FORWARD_API_KEY"),
		},
	}

	if cfg.Server.GinMode == "" {
		cfg.Server.GinMode = "debug"
		if cfg.App.IsProduction() {
			cfg.Server.GinMode = "release"
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags and cross-field rules.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	if c.App.IsProduction() && c.Security.AuthEnabled && c.Security.JWTSecret == defaultJWTSecret {
		return errors.New("invalid configuration: JWT_SECRET must be set when API auth is enabled in production")
	}
	return nil
}

// isTruthy accepts the usual spellings of an enabled flag.
func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
