package resilience

import (
	"context"
	"time"
)

// DefaultProviderTimeout bounds a single provider round trip when nothing else is configured
const DefaultProviderTimeout = 30 * time.Second

// TimeoutConfig defines the timeouts applied to outbound provider calls
//
// Timeout hierarchy (outermost first):
//
//	caller context
//	  ↓
//	ProviderCall (default 30s) - one resource operation
//	  ↓
//	TokenFetch (default 30s) - access token request during client construction
//
// The transport's own timeout should be at least as large as ProviderCall so
// that context cancellation, not the transport, reports the deadline.
type TimeoutConfig struct {
	ProviderCall time.Duration
	TokenFetch   time.Duration
}

// DefaultTimeoutConfig returns production timeout values
func DefaultTimeoutConfig() *TimeoutConfig {
	return &TimeoutConfig{
		ProviderCall: DefaultProviderTimeout,
		TokenFetch:   DefaultProviderTimeout,
	}
}

// NewTimeoutConfig uses d for every layer, falling back to the default when d is not positive
func NewTimeoutConfig(d time.Duration) *TimeoutConfig {
	if d <= 0 {
		return DefaultTimeoutConfig()
	}
	return &TimeoutConfig{
		ProviderCall: d,
		TokenFetch:   d,
	}
}

// ProviderContext creates a context with timeout for a resource call
func (tc *TimeoutConfig) ProviderContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, tc.ProviderCall)
}

// TokenContext creates a context with timeout for the access token request
func (tc *TimeoutConfig) TokenContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, tc.TokenFetch)
}
