package vipps

import (
	"context"
	"sync"
)

// Facade holds a process-wide configuration and a lazily built v3 client.
// Reconfiguring with a different configuration discards the cached client so
// the next call authenticates again.
type Facade struct {
	mu     sync.Mutex
	cfg    Config
	opts   []Option
	client *V3Client
}

// NewFacade creates a facade. No network call is made until first use.
func NewFacade(cfg Config, opts ...Option) *Facade {
	return &Facade{cfg: cfg, opts: opts}
}

// Configure replaces the configuration
func (f *Facade) Configure(cfg Config) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cfg.Equal(cfg) {
		return
	}
	f.cfg = cfg
	f.client = nil
}

// Config returns the current configuration
func (f *Facade) Config() Config {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cfg
}

// Client returns the cached client, building it on first use
func (f *Facade) Client(ctx context.Context) (*V3Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.client != nil {
		return f.client, nil
	}
	c, err := NewV3Client(ctx, f.cfg, f.opts...)
	if err != nil {
		return nil, err
	}
	f.client = c
	return c, nil
}

func (f *Facade) DraftAgreement(ctx context.Context, opts DraftAgreementOptions) (*Response, error) {
	c, err := f.Client(ctx)
	if err != nil {
		return nil, err
	}
	return c.DraftAgreement(ctx, opts)
}

func (f *Facade) GetAgreement(ctx context.Context, agreementID string) (*Response, error) {
	c, err := f.Client(ctx)
	if err != nil {
		return nil, err
	}
	return c.GetAgreement(ctx, agreementID)
}

func (f *Facade) ListAgreements(ctx context.Context, status string) (*Response, error) {
	c, err := f.Client(ctx)
	if err != nil {
		return nil, err
	}
	return c.ListAgreements(ctx, status)
}

func (f *Facade) UpdateAgreement(ctx context.Context, agreementID string, opts UpdateAgreementOptions) (*Response, error) {
	c, err := f.Client(ctx)
	if err != nil {
		return nil, err
	}
	return c.UpdateAgreement(ctx, agreementID, opts)
}

func (f *Facade) CreateCharge(ctx context.Context, opts CreateChargeOptions) (*Response, error) {
	c, err := f.Client(ctx)
	if err != nil {
		return nil, err
	}
	return c.CreateCharge(ctx, opts)
}

func (f *Facade) GetCharge(ctx context.Context, agreementID, chargeID string) (*Response, error) {
	c, err := f.Client(ctx)
	if err != nil {
		return nil, err
	}
	return c.GetCharge(ctx, agreementID, chargeID)
}

func (f *Facade) GetChargeByID(ctx context.Context, chargeID string) (*Response, error) {
	c, err := f.Client(ctx)
	if err != nil {
		return nil, err
	}
	return c.GetChargeByID(ctx, chargeID)
}

func (f *Facade) ListCharges(ctx context.Context, agreementID, status string) (*Response, error) {
	c, err := f.Client(ctx)
	if err != nil {
		return nil, err
	}
	return c.ListCharges(ctx, agreementID, status)
}

func (f *Facade) MultiCharge(ctx context.Context, orders []map[string]interface{}, idempotencyKey string) (*Response, error) {
	c, err := f.Client(ctx)
	if err != nil {
		return nil, err
	}
	return c.MultiCharge(ctx, orders, idempotencyKey)
}

func (f *Facade) CancelCharge(ctx context.Context, agreementID, chargeID, idempotencyKey string) (*Response, error) {
	c, err := f.Client(ctx)
	if err != nil {
		return nil, err
	}
	return c.CancelCharge(ctx, agreementID, chargeID, idempotencyKey)
}

func (f *Facade) CaptureCharge(ctx context.Context, adj ChargeAdjustment) (*Response, error) {
	c, err := f.Client(ctx)
	if err != nil {
		return nil, err
	}
	return c.CaptureCharge(ctx, adj)
}

func (f *Facade) RefundCharge(ctx context.Context, adj ChargeAdjustment) (*Response, error) {
	c, err := f.Client(ctx)
	if err != nil {
		return nil, err
	}
	return c.RefundCharge(ctx, adj)
}

func (f *Facade) RegisterWebhook(ctx context.Context, url string, events []string) (*Response, error) {
	c, err := f.Client(ctx)
	if err != nil {
		return nil, err
	}
	return c.RegisterWebhook(ctx, url, events)
}

func (f *Facade) ListWebhooks(ctx context.Context) (*Response, error) {
	c, err := f.Client(ctx)
	if err != nil {
		return nil, err
	}
	return c.ListWebhooks(ctx)
}

func (f *Facade) DeleteWebhook(ctx context.Context, webhookID string) (*Response, error) {
	c, err := f.Client(ctx)
	if err != nil {
		return nil, err
	}
	return c.DeleteWebhook(ctx, webhookID)
}
