package vipps

import "github.com/google/uuid"

// NewIdempotencyKey returns a fresh random key for a mutating call
func NewIdempotencyKey() string {
	return uuid.NewString()
}

// idempotencyHeaders returns the protocol's idempotency header, generating a
// key when the caller supplied none.
func (c *Client) idempotencyHeaders(key string) map[string]string {
	if key == "" {
		key = c.newKey()
	}
	return map[string]string{c.protocol.IdempotencyHeader: key}
}
