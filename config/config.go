// Package config loads the storefront configuration from config.yaml and
// environment overrides.
package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	defaultMaxRequestBodySize = "100KB"
	defaultBackendTimeout     = 15 * time.Second
	defaultCurrency           = "eur"
	defaultSessionHeader      = "X-Session-Id"
	defaultSearchLimit        = 8
	defaultStorageTTL         = 30 * 24 * time.Hour
)

// Storage providers for the session local-storage mirror.
const (
	StorageProviderMemory = "memory"
	StorageProviderRedis  = "redis"
)

// Pub/Sub providers for checkout events.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Backend is the TradeFood REST API every storefront call goes through
	Backend *BackendConfig `json:"backend" yaml:"backend"`

	// Stripe configuration for embedded payment confirmation
	Stripe *StripeConfig `json:"stripe" yaml:"stripe"`

	// Checkout configuration for the checkout wizard
	Checkout *CheckoutConfig `json:"checkout" yaml:"checkout"`

	// Storage configuration for the per-session local storage mirror
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Session *SessionConfig `json:"session" yaml:"session"`

	// PubSub configuration for checkout event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// BackendConfig defines how the REST client reaches the backend
type BackendConfig struct {
	BaseURL   string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
	UserAgent string        `json:"userAgent" yaml:"userAgent"`
}

// StripeConfig defines the client-side Stripe settings.
// PublishableKey is only a fallback: the payment sheet returned by the backend carries its own key.
type StripeConfig struct {
	PublishableKey string `json:"publishableKey" yaml:"publishableKey"`
	ReturnURL      string `json:"returnUrl" yaml:"returnUrl"`
	APIURL         string `json:"apiUrl" yaml:"apiUrl"`
}

// CheckoutConfig defines checkout wizard behaviour
type CheckoutConfig struct {
	Currency   string `json:"currency" yaml:"currency"`
	SuccessURL string `json:"successUrl" yaml:"successUrl"`

	// RequireVerifiedPayment makes a failed backend status verification fatal.
	// When false a client-confirmed payment is accepted even if verification fails.
	RequireVerifiedPayment bool `json:"requireVerifiedPayment" yaml:"requireVerifiedPayment"`

	// Maximum number of products returned by the header search dropdown
	SearchLimit int `json:"searchLimit" yaml:"searchLimit"`
}

// StorageConfig defines where session state is mirrored
type StorageConfig struct {
	// Provider type: "memory" or "redis"
	Provider string        `json:"provider" yaml:"provider"`
	TTL      time.Duration `json:"ttl" yaml:"ttl"`
	Redis    RedisConfig   `json:"redis" yaml:"redis"`
}

type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// SessionConfig defines how a browser session is identified
type SessionConfig struct {
	Header string `json:"header" yaml:"header"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PubSubConfig defines Pub/Sub configuration for checkout event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills optional sections so the rest of the code never checks for nil.
func (cfg *Config) applyDefaults() error {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Backend == nil || strings.TrimSpace(cfg.Backend.BaseURL) == "" {
		return errors.New("backend.baseUrl is required")
	}
	cfg.Backend.BaseURL = strings.TrimRight(cfg.Backend.BaseURL, "/")
	if cfg.Backend.Timeout <= 0 {
		cfg.Backend.Timeout = defaultBackendTimeout
	}

	if cfg.Stripe == nil {
		cfg.Stripe = &StripeConfig{}
	}

	if cfg.Checkout == nil {
		cfg.Checkout = &CheckoutConfig{}
	}
	if cfg.Checkout.Currency == "" {
		cfg.Checkout.Currency = defaultCurrency
	}
	if cfg.Checkout.SearchLimit <= 0 {
		cfg.Checkout.SearchLimit = defaultSearchLimit
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.Provider == "" {
		cfg.Storage.Provider = StorageProviderMemory
	}
	if cfg.Storage.TTL <= 0 {
		cfg.Storage.TTL = defaultStorageTTL
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.Header == "" {
		cfg.Session.Header = defaultSessionHeader
	}

	return nil
}
