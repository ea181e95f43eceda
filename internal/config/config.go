package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all client and tooling configuration
type Config struct {
	Vipps   VippsConfig   `mapstructure:"vipps"`
	Logger  LoggerConfig  `mapstructure:"logger"`
	Secrets SecretsConfig `mapstructure:"secrets"`
}

// VippsConfig holds merchant credentials and endpoint selection
type VippsConfig struct {
	ClientID                 string  `mapstructure:"client_id"`
	ClientSecret             string  `mapstructure:"client_secret"`
	SubscriptionKey          string  `mapstructure:"subscription_key"`           // Ocp-Apim-Subscription-Key (primary)
	SecondarySubscriptionKey string  `mapstructure:"secondary_subscription_key"` // kept for key rotation
	MerchantSerialNumber     string  `mapstructure:"merchant_serial_number"`
	Environment              string  `mapstructure:"environment"` // test or production
	Endpoint                 string  `mapstructure:"endpoint"`    // overrides the environment's base URL
	Language                 string  `mapstructure:"language"`
	Currency                 string  `mapstructure:"currency"`
	UserAgent                string  `mapstructure:"user_agent"`
	MerchantRedirectURL      string  `mapstructure:"merchant_redirect_url"`
	MerchantAgreementURL     string  `mapstructure:"merchant_agreement_url"`
	AccessToken              string  `mapstructure:"access_token"`
	Timeout                  int     `mapstructure:"timeout"` // seconds
	RateLimit                float64 `mapstructure:"rate_limit"`
	RateBurst                int     `mapstructure:"rate_burst"`
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level       string `mapstructure:"level"` // debug, info, warn, error
	Development bool   `mapstructure:"development"`
}

// SecretsConfig selects where credentials are resolved from when they are not set directly
type SecretsConfig struct {
	Backend string `mapstructure:"backend"` // none, file, aws, vault

	ClientSecretPath    string `mapstructure:"client_secret_path"`
	SubscriptionKeyPath string `mapstructure:"subscription_key_path"`

	Dir string `mapstructure:"dir"`

	AWSRegion   string `mapstructure:"aws_region"`
	AWSProfile  string `mapstructure:"aws_profile"`
	AWSEndpoint string `mapstructure:"aws_endpoint"`

	VaultAddress   string `mapstructure:"vault_address"`
	VaultToken     string `mapstructure:"vault_token"`
	VaultMountPath string `mapstructure:"vault_mount_path"`
	VaultKVVersion string `mapstructure:"vault_kv_version"`
}

var defaults = map[string]interface{}{
	"vipps.environment": "test",
	"vipps.language":    "no_NO",
	"vipps.currency":    "NOK",
	"vipps.timeout":     30,
	"vipps.rate_limit":  0,
	"vipps.rate_burst":  1,

	"logger.level":       "info",
	"logger.development": true,

	"secrets.backend":          "none",
	"secrets.dir":              ".secrets",
	"secrets.aws_region":       "eu-north-1",
	"secrets.vault_mount_path": "secret",
	"secrets.vault_kv_version": "v2",
}

var envBindings = map[string]string{
	"vipps.client_id":                  "VIPPS_CLIENT_ID",
	"vipps.client_secret":              "VIPPS_CLIENT_SECRET",
	"vipps.subscription_key":           "VIPPS_PRIMARY_ACCESS_TOKEN",
	"vipps.secondary_subscription_key": "VIPPS_SECONDARY_ACCESS_TOKEN",
	"vipps.merchant_serial_number":     "VIPPS_MERCHANT_SERIAL_NUMBER",
	"vipps.environment":                "VIPPS_ENVIRONMENT",
	"vipps.endpoint":                   "VIPPS_ENDPOINT",
	"vipps.language":                   "VIPPS_LANGUAGE",
	"vipps.currency":                   "VIPPS_CURRENCY",
	"vipps.user_agent":                 "VIPPS_USER_AGENT",
	"vipps.merchant_redirect_url":      "VIPPS_MERCHANT_REDIRECT_URL",
	"vipps.merchant_agreement_url":     "VIPPS_MERCHANT_AGREEMENT_URL",
	"vipps.access_token":               "VIPPS_ACCESS_TOKEN",
	"vipps.timeout":                    "VIPPS_TIMEOUT",
	"vipps.rate_limit":                 "VIPPS_RATE_LIMIT",
	"vipps.rate_burst":                 "VIPPS_RATE_BURST",

	"logger.level":       "LOG_LEVEL",
	"logger.development": "LOG_DEVELOPMENT",

	"secrets.backend":               "SECRET_MANAGER",
	"secrets.client_secret_path":    "VIPPS_CLIENT_SECRET_PATH",
	"secrets.subscription_key_path": "VIPPS_SUBSCRIPTION_KEY_PATH",
	"secrets.dir":                   "SECRETS_DIR",
	"secrets.aws_region":            "AWS_REGION",
	"secrets.aws_profile":           "AWS_PROFILE",
	"secrets.aws_endpoint":          "AWS_SECRETS_ENDPOINT",
	"secrets.vault_address":         "VAULT_ADDR",
	"secrets.vault_token":           "VAULT_TOKEN",
	"secrets.vault_mount_path":      "VAULT_MOUNT_PATH",
	"secrets.vault_kv_version":      "VAULT_KV_VERSION",
}

// LoadFromEnv loads configuration from environment variables and defaults
func LoadFromEnv() (*Config, error) {
	return Load("")
}

// Load reads configuration from an optional YAML/JSON/TOML file, with
// environment variables taking precedence over file values.
func Load(path string) (*Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that enough credentials are present to authenticate
func (c *VippsConfig) Validate() error {
	if c.Environment != "test" && c.Environment != "production" {
		return fmt.Errorf("VIPPS_ENVIRONMENT must be test or production, got %q", c.Environment)
	}
	if c.SubscriptionKey == "" {
		return fmt.Errorf("VIPPS_PRIMARY_ACCESS_TOKEN is required")
	}
	if c.AccessToken != "" {
		return nil
	}
	if c.ClientID == "" {
		return fmt.Errorf("VIPPS_CLIENT_ID is required")
	}
	if c.ClientSecret == "" {
		return fmt.Errorf("VIPPS_CLIENT_SECRET is required")
	}
	return nil
}

// TimeoutDuration returns the configured request timeout
func (c *VippsConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}
