package http

import (
	"crypto/tls"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_AppliesConfig(t *testing.T) {
	client := NewHTTPClient(ProviderClientConfig(), 15*time.Second)

	assert.Equal(t, 15*time.Second, client.Timeout)

	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Equal(t, 20, transport.MaxIdleConnsPerHost)
	assert.Equal(t, uint16(tls.VersionTLS12), transport.TLSClientConfig.MinVersion)
	assert.True(t, transport.ForceAttemptHTTP2)
}

func TestNewHTTPClient_NilConfigUsesProviderDefaults(t *testing.T) {
	client := NewHTTPClient(nil, time.Second)

	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Equal(t, 50, transport.MaxConnsPerHost)
}

func TestNewHTTPClient_ResponseHeaderTimeoutFollowsTimeout(t *testing.T) {
	tests := []struct {
		name    string
		timeout time.Duration
		want    time.Duration
	}{
		{name: "longer than default", timeout: 60 * time.Second, want: 60 * time.Second},
		{name: "shorter than default", timeout: 5 * time.Second, want: 5 * time.Second},
		{name: "zero keeps config value", timeout: 0, want: ProviderClientConfig().ResponseHeaderTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewHTTPClient(ProviderClientConfig(), tt.timeout)

			transport, ok := client.Transport.(*http.Transport)
			require.True(t, ok)
			assert.Equal(t, tt.want, transport.ResponseHeaderTimeout)
			assert.Equal(t, tt.timeout, client.Timeout)
		})
	}
}
