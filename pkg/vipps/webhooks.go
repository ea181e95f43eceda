package vipps

import (
	"context"
	"net/http"
)

// Recurring webhook event names
const (
	EventAgreementActivated = "recurring.agreement-activated.v1"
	EventAgreementRejected  = "recurring.agreement-rejected.v1"
	EventAgreementStopped   = "recurring.agreement-stopped.v1"
	EventAgreementExpired   = "recurring.agreement-expired.v1"
	EventChargeReserved     = "recurring.charge-reserved.v1"
	EventChargeCaptured     = "recurring.charge-captured.v1"
	EventChargeCanceled     = "recurring.charge-canceled.v1"
	EventChargeFailed       = "recurring.charge-failed.v1"
)

// RegisterWebhook subscribes url to events. The response holds the webhook
// id and the secret used to verify deliveries.
func (c *V3Client) RegisterWebhook(ctx context.Context, url string, events []string) (*Response, error) {
	if events == nil {
		events = []string{}
	}
	return c.Call(ctx, Call{
		Operation: "register_webhook",
		Method:    http.MethodPost,
		Path:      webhooksRoot,
		Body: map[string]interface{}{
			"url":    url,
			"events": events,
		},
	})
}

// ListWebhooks lists the merchant's registered webhooks
func (c *V3Client) ListWebhooks(ctx context.Context) (*Response, error) {
	return c.Call(ctx, Call{
		Operation: "list_webhooks",
		Method:    http.MethodGet,
		Path:      webhooksRoot,
	})
}

// DeleteWebhook removes a registration
func (c *V3Client) DeleteWebhook(ctx context.Context, webhookID string) (*Response, error) {
	return c.Call(ctx, Call{
		Operation: "delete_webhook",
		Method:    http.MethodDelete,
		Path:      resourcePath(webhooksRoot, webhookID),
	})
}
