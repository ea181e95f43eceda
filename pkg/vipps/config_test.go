package vipps

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnvironment_BaseURL(t *testing.T) {
	assert.Equal(t, "https://apitest.vipps.no", EnvironmentTest.BaseURL())
	assert.Equal(t, "https://api.vipps.no", EnvironmentProduction.BaseURL())
	assert.Equal(t, "https://apitest.vipps.no", Environment("staging").BaseURL())
}

func TestConfig_BaseURL_EndpointOverride(t *testing.T) {
	cfg := Config{Environment: EnvironmentProduction}
	assert.Equal(t, ProductionBaseURL, cfg.BaseURL())

	cfg.Endpoint = "http://localhost:8080"
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL())
}

func TestDefaultConfig_FromEnvironment(t *testing.T) {
	t.Setenv("VIPPS_CLIENT_ID", "env-client")
	t.Setenv("VIPPS_CLIENT_SECRET", "env-secret")
	t.Setenv("VIPPS_PRIMARY_ACCESS_TOKEN", "env-sub")
	t.Setenv("VIPPS_MERCHANT_SERIAL_NUMBER", "654321")
	t.Setenv("VIPPS_ENVIRONMENT", "production")
	t.Setenv("VIPPS_TIMEOUT", "10")

	cfg := DefaultConfig()

	assert.Equal(t, "env-client", cfg.ClientID)
	assert.Equal(t, "env-secret", cfg.ClientSecret)
	assert.Equal(t, "env-sub", cfg.SubscriptionKey)
	assert.Equal(t, "654321", cfg.MerchantSerialNumber)
	assert.Equal(t, EnvironmentProduction, cfg.Environment)
	assert.Equal(t, ProductionBaseURL, cfg.BaseURL())
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "NOK", cfg.DefaultCurrency)
	assert.Equal(t, Version, cfg.SystemVersion)
}

func TestDefaultConfig_VersionedUserAgent(t *testing.T) {
	t.Setenv("VIPPS_USER_AGENT", "")
	assert.Equal(t, "vipps-client-go/"+Version, DefaultConfig().UserAgent)

	t.Setenv("VIPPS_USER_AGENT", "shop-backend/2.0")
	assert.Equal(t, "shop-backend/2.0", DefaultConfig().UserAgent)
}

func TestNewConfig_OverridesNonZeroFields(t *testing.T) {
	t.Setenv("VIPPS_CLIENT_ID", "env-client")
	t.Setenv("VIPPS_CURRENCY", "NOK")

	cfg := NewConfig(&Config{
		ClientSecret:    "explicit-secret",
		DefaultCurrency: "SEK",
		Timeout:         time.Minute,
	})

	assert.Equal(t, "env-client", cfg.ClientID)
	assert.Equal(t, "explicit-secret", cfg.ClientSecret)
	assert.Equal(t, "SEK", cfg.DefaultCurrency)
	assert.Equal(t, time.Minute, cfg.Timeout)
	assert.Equal(t, DefaultConfig(), NewConfig(nil))
}

func TestConfig_Equal(t *testing.T) {
	a := testConfig("http://localhost")
	b := testConfig("http://localhost")
	assert.True(t, a.Equal(b))

	b.MerchantSerialNumber = "999999"
	assert.False(t, a.Equal(b))
}
