package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the portal.
type Config struct {
	Port    string `mapstructure:"PORT"`
	GinMode string `mapstructure:"GIN_MODE"`

	// APIBaseURL is the marketplace backend every data operation is delegated
	// to. The default matches the backend's local development address.
	APIBaseURL string `mapstructure:"API_BASE_URL"`

	// APITimeout bounds calls to the backend. Zero means no timeout, which is
	// the default the product shipped with.
	APITimeout time.Duration `mapstructure:"API_TIMEOUT"`

	// ClientURL is the origin the portal is served from, used for CORS.
	ClientURL string `mapstructure:"CLIENT_URL"`

	// RazorpayKeyID enables the hosted checkout. When empty the checkout
	// gateway reports itself unavailable and purchases are refused up front.
	RazorpayKeyID string `mapstructure:"RAZORPAY_KEY_ID"`

	// CookieHashKey and CookieBlockKey sign and encrypt the portal state
	// cookie. The hash key is required; the block key is optional (signing
	// only when absent).
	CookieHashKey  string `mapstructure:"COOKIE_HASH_KEY"`
	CookieBlockKey string `mapstructure:"COOKIE_BLOCK_KEY"`

	// CookieSecure marks portal cookies Secure. Off by default so local
	// development over plain HTTP works.
	CookieSecure bool `mapstructure:"COOKIE_SECURE"`

	TemplatesGlob string `mapstructure:"TEMPLATES_GLOB"`
	StaticDir     string `mapstructure:"STATIC_DIR"`
}

// Load reads configuration from environment variables using viper.
func Load() (*Config, error) {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("API_BASE_URL", "http://localhost:3000")
	viper.SetDefault("API_TIMEOUT", time.Duration(0))
	viper.SetDefault("CLIENT_URL", "http://localhost:8080")
	viper.SetDefault("TEMPLATES_GLOB", "web/templates/*.html")
	viper.SetDefault("STATIC_DIR", "web/static")

	for _, key := range []string{
		"PORT", "GIN_MODE", "API_BASE_URL", "API_TIMEOUT", "CLIENT_URL",
		"RAZORPAY_KEY_ID", "COOKIE_HASH_KEY", "COOKIE_BLOCK_KEY", "COOKIE_SECURE",
		"TEMPLATES_GLOB", "STATIC_DIR",
	} {
		viper.BindEnv(key)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.New("failed to unmarshal config: " + err.Error())
	}

	if cfg.APIBaseURL == "" {
		return nil, errors.New("API_BASE_URL is required")
	}
	if cfg.CookieHashKey == "" {
		return nil, errors.New("COOKIE_HASH_KEY is required")
	}
	// A missing Razorpay key is not a boot error: the checkout gateway simply
	// reports unavailable and purchase attempts are aborted before any order
	// is created.

	return &cfg, nil
}
