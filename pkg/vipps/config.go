package vipps

import (
	"time"

	"github.com/kevin07696/vipps-client/internal/config"
)

// Version is reported in the system identification headers
const Version = "1.0.0"

// Environment selects the provider's test or production API
type Environment string

const (
	EnvironmentTest       Environment = "test"
	EnvironmentProduction Environment = "production"
)

// Base URLs per environment
const (
	TestBaseURL       = "https://apitest.vipps.no"
	ProductionBaseURL = "https://api.vipps.no"
)

// BaseURL returns the API root for the environment. Anything other than
// production resolves to the test API.
func (e Environment) BaseURL() string {
	if e == EnvironmentProduction {
		return ProductionBaseURL
	}
	return TestBaseURL
}

// Config holds everything a client needs to talk to the provider.
// It is copied into the client at construction and never changed afterwards.
type Config struct {
	ClientID                 string
	ClientSecret             string
	SubscriptionKey          string // Ocp-Apim-Subscription-Key
	SecondarySubscriptionKey string
	MerchantSerialNumber     string
	Environment              Environment

	// Endpoint replaces the environment's base URL when set (proxies, tests)
	Endpoint string

	UserAgent            string
	Language             string
	DefaultCurrency      string
	MerchantRedirectURL  string
	MerchantAgreementURL string

	// AccessToken skips the token request when the caller already holds a valid token
	AccessToken string

	Timeout   time.Duration
	RateLimit float64 // requests per second, 0 disables limiting
	RateBurst int

	SystemName    string
	SystemVersion string
	PluginName    string
	PluginVersion string
}

// BaseURL returns the root every request path is joined to
func (c Config) BaseURL() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	return c.Environment.BaseURL()
}

// Equal reports whether two configurations would produce identical clients
func (c Config) Equal(other Config) bool {
	return c == other
}

// DefaultConfig returns the process-wide defaults sourced from the environment
func DefaultConfig() Config {
	cfg := Config{
		Environment:     EnvironmentTest,
		Language:        "no_NO",
		DefaultCurrency: "NOK",
		UserAgent:       "vipps-client-go/" + Version,
		Timeout:         30 * time.Second,
		RateBurst:       1,
		SystemName:      "vipps-client-go",
		SystemVersion:   Version,
		PluginName:      "vipps-client-go",
		PluginVersion:   Version,
	}

	loaded, err := config.LoadFromEnv()
	if err != nil {
		return cfg
	}
	return fromSettings(cfg, loaded.Vipps)
}

// FromSettings builds a Config from loaded settings layered over DefaultConfig
func FromSettings(s config.VippsConfig) Config {
	return fromSettings(DefaultConfig(), s)
}

func fromSettings(cfg Config, s config.VippsConfig) Config {
	return merge(cfg, &Config{
		ClientID:                 s.ClientID,
		ClientSecret:             s.ClientSecret,
		SubscriptionKey:          s.SubscriptionKey,
		SecondarySubscriptionKey: s.SecondarySubscriptionKey,
		MerchantSerialNumber:     s.MerchantSerialNumber,
		Environment:              Environment(s.Environment),
		Endpoint:                 s.Endpoint,
		UserAgent:                s.UserAgent,
		Language:                 s.Language,
		DefaultCurrency:          s.Currency,
		MerchantRedirectURL:      s.MerchantRedirectURL,
		MerchantAgreementURL:     s.MerchantAgreementURL,
		AccessToken:              s.AccessToken,
		Timeout:                  s.TimeoutDuration(),
		RateLimit:                s.RateLimit,
		RateBurst:                s.RateBurst,
	})
}

// NewConfig merges the non-zero fields of overrides over DefaultConfig
func NewConfig(overrides *Config) Config {
	return merge(DefaultConfig(), overrides)
}

func merge(base Config, o *Config) Config {
	if o == nil {
		return base
	}
	setString(&base.ClientID, o.ClientID)
	setString(&base.ClientSecret, o.ClientSecret)
	setString(&base.SubscriptionKey, o.SubscriptionKey)
	setString(&base.SecondarySubscriptionKey, o.SecondarySubscriptionKey)
	setString(&base.MerchantSerialNumber, o.MerchantSerialNumber)
	if o.Environment != "" {
		base.Environment = o.Environment
	}
	setString(&base.Endpoint, o.Endpoint)
	setString(&base.UserAgent, o.UserAgent)
	setString(&base.Language, o.Language)
	setString(&base.DefaultCurrency, o.DefaultCurrency)
	setString(&base.MerchantRedirectURL, o.MerchantRedirectURL)
	setString(&base.MerchantAgreementURL, o.MerchantAgreementURL)
	setString(&base.AccessToken, o.AccessToken)
	if o.Timeout > 0 {
		base.Timeout = o.Timeout
	}
	if o.RateLimit > 0 {
		base.RateLimit = o.RateLimit
	}
	if o.RateBurst > 0 {
		base.RateBurst = o.RateBurst
	}
	setString(&base.SystemName, o.SystemName)
	setString(&base.SystemVersion, o.SystemVersion)
	setString(&base.PluginName, o.PluginName)
	setString(&base.PluginVersion, o.PluginVersion)
	return base
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
