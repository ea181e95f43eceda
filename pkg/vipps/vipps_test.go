package vipps

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kevin07696/vipps-client/test/mocks"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	return Config{
		ClientID:             "client-id",
		ClientSecret:         "client-secret",
		SubscriptionKey:      "sub-key",
		MerchantSerialNumber: "123456",
		Environment:          EnvironmentTest,
		Endpoint:             endpoint,
		UserAgent:            "vipps-client-go/test",
		DefaultCurrency:      "NOK",
		MerchantRedirectURL:  "https://example.com/redirect",
		MerchantAgreementURL: "https://example.com/agreement",
		AccessToken:          "test-token",
		Timeout:              5 * time.Second,
		SystemName:           "test-system",
		SystemVersion:        "1.2.3",
		PluginName:           "test-plugin",
		PluginVersion:        "4.5.6",
	}
}

var fixedNow = time.Date(2025, 10, 20, 9, 30, 0, 0, time.UTC)

func setupV3Test(t *testing.T, handler http.HandlerFunc) (*V3Client, *httptest.Server, *mocks.MockLogger) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := mocks.NewMockLogger()
	client, err := NewV3Client(context.Background(), testConfig(server.URL),
		WithHTTPClient(server.Client()),
		WithLogger(logger),
		WithClock(func() time.Time { return fixedNow }),
	)
	require.NoError(t, err)

	return client, server, logger
}

func setupEcommTest(t *testing.T, handler http.HandlerFunc) *EcommClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewEcommClient(context.Background(), testConfig(server.URL), WithHTTPClient(server.Client()))
	require.NoError(t, err)
	return client
}

func decodeJSONBody(t *testing.T, r *http.Request) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	return body
}

func decodeInto(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
