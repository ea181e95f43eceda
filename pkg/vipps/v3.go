package vipps

import "context"

// Resource roots of the current API
const (
	recurringRoot = "recurring/v3"
	webhooksRoot  = "webhooks/v1/webhooks"
)

// V3Client exposes the recurring v3 and webhooks APIs
type V3Client struct {
	*Client
}

// NewV3Client builds an authenticated v3 client
func NewV3Client(ctx context.Context, cfg Config, opts ...Option) (*V3Client, error) {
	c, err := NewClient(ctx, cfg, V3, opts...)
	if err != nil {
		return nil, err
	}
	return &V3Client{Client: c}, nil
}
