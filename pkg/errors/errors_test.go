package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticationError_Message(t *testing.T) {
	err := NewAuthenticationError(401, "token request rejected", `{"error":"unauthorized_client"}`)

	assert.Equal(t, "authentication failed (status 401): token request rejected", err.Error())
	assert.Equal(t, `{"error":"unauthorized_client"}`, err.RawBody)

	noStatus := NewAuthenticationError(0, "missing access_token", "{}")
	assert.Equal(t, "authentication failed: missing access_token", noStatus.Error())
}

func TestProviderError_WrapsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewProviderError(CodeNetworkError, "failed to reach provider", CategoryNetworkError, true).WithCause(cause)

	wrapped := fmt.Errorf("capture charge: %w", err)

	var providerErr *ProviderError
	require.True(t, errors.As(wrapped, &providerErr))
	assert.True(t, providerErr.IsRetriable)
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, "NETWORK_ERROR: failed to reach provider", providerErr.Error())
}

func TestProviderError_PayloadMap(t *testing.T) {
	payload := map[string]interface{}{"title": "Bad Request"}
	err := NewProviderError(CodeRequestError, "provider rejected request", CategoryInvalidRequest, false).
		WithResponse(400, `{"title":"Bad Request"}`, payload)

	assert.Equal(t, "Bad Request", err.PayloadMap()["title"])
	assert.Equal(t, "REQUEST_ERROR: provider rejected request (status 400)", err.Error())

	listErr := NewProviderError(CodeRequestError, "x", CategoryInvalidRequest, false).
		WithResponse(400, `[]`, []interface{}{})
	assert.Nil(t, listErr.PayloadMap())
}
