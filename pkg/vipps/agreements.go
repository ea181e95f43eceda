package vipps

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// Agreement defaults
const (
	DefaultCurrency           = "NOK"
	DefaultSuggestedMaxAmount = int64(200000)
	DefaultIntervalUnit       = "WEEK"
	DefaultIntervalCount      = 1
	PricingTypeVariable       = "VARIABLE"

	// MinPhoneNumberLength is the shortest phone number forwarded to the provider
	MinPhoneNumberLength = 8
)

// Agreement statuses
const (
	AgreementPending = "PENDING"
	AgreementActive  = "ACTIVE"
	AgreementStopped = "STOPPED"
	AgreementExpired = "EXPIRED"
)

// DraftAgreementOptions describes a new recurring agreement.
// Zero values fall back to the documented defaults.
type DraftAgreementOptions struct {
	ProductName        string
	ProductDescription string
	PhoneNumber        string
	Currency           string
	SuggestedMaxAmount int64 // minor units
	IntervalUnit       string
	IntervalCount      int
	IsApp              bool
	AgreementURL       string
	RedirectURL        string
	IdempotencyKey     string
}

// DraftAgreement creates an agreement in PENDING state. The response carries
// the agreementId and the vippsConfirmationUrl the customer must visit.
func (c *V3Client) DraftAgreement(ctx context.Context, opts DraftAgreementOptions) (*Response, error) {
	currency := opts.Currency
	if currency == "" {
		currency = c.cfg.DefaultCurrency
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	maxAmount := opts.SuggestedMaxAmount
	if maxAmount <= 0 {
		maxAmount = DefaultSuggestedMaxAmount
	}

	unit := opts.IntervalUnit
	if unit == "" {
		unit = DefaultIntervalUnit
	}
	count := opts.IntervalCount
	if count <= 0 {
		count = DefaultIntervalCount
	}

	agreementURL := opts.AgreementURL
	if agreementURL == "" {
		agreementURL = c.cfg.MerchantAgreementURL
	}
	redirectURL := opts.RedirectURL
	if redirectURL == "" {
		redirectURL = c.cfg.MerchantRedirectURL
	}

	body := map[string]interface{}{
		"pricing": map[string]interface{}{
			"type":               PricingTypeVariable,
			"currency":           currency,
			"suggestedMaxAmount": maxAmount,
		},
		"interval": map[string]interface{}{
			"unit":  unit,
			"count": count,
		},
		"isApp":                opts.IsApp,
		"merchantAgreementUrl": agreementURL,
		"merchantRedirectUrl":  redirectURL,
		"productName":          opts.ProductName,
	}
	if opts.ProductDescription != "" {
		body["productDescription"] = opts.ProductDescription
	}
	// Recurring API v3 names this field phoneNumber; v2 used customerPhoneNumber
	if phone := strings.TrimSpace(opts.PhoneNumber); len(phone) >= MinPhoneNumberLength {
		body["phoneNumber"] = phone
	}

	return c.Call(ctx, Call{
		Operation: "draft_agreement",
		Method:    http.MethodPost,
		Path:      resourcePath(recurringRoot, "agreements"),
		Body:      body,
		Headers:   c.idempotencyHeaders(opts.IdempotencyKey),
	})
}

// GetAgreement fetches one agreement
func (c *V3Client) GetAgreement(ctx context.Context, agreementID string) (*Response, error) {
	return c.Call(ctx, Call{
		Operation: "get_agreement",
		Method:    http.MethodGet,
		Path:      resourcePath(recurringRoot, "agreements", agreementID),
	})
}

// ListAgreements lists agreements, optionally filtered by status
func (c *V3Client) ListAgreements(ctx context.Context, status string) (*Response, error) {
	var query url.Values
	if status != "" {
		query = url.Values{"status": []string{status}}
	}
	return c.Call(ctx, Call{
		Operation: "list_agreements",
		Method:    http.MethodGet,
		Path:      resourcePath(recurringRoot, "agreements"),
		Query:     query,
	})
}

// UpdateAgreementOptions carries the mutable agreement fields. Only fields
// that are set are sent.
type UpdateAgreementOptions struct {
	Status         string
	Price          *int64 // minor units
	IdempotencyKey string
}

// UpdateAgreement patches status and/or price. With neither set it makes no
// call and returns a nil response and nil error.
func (c *V3Client) UpdateAgreement(ctx context.Context, agreementID string, opts UpdateAgreementOptions) (*Response, error) {
	body := map[string]interface{}{}
	if opts.Status != "" {
		body["status"] = opts.Status
	}
	if opts.Price != nil {
		body["price"] = *opts.Price
	}
	if len(body) == 0 {
		return nil, nil
	}

	call := Call{
		Operation: "update_agreement",
		Method:    http.MethodPatch,
		Path:      resourcePath(recurringRoot, "agreements", agreementID),
		Body:      body,
	}
	if opts.IdempotencyKey != "" {
		call.Headers = c.idempotencyHeaders(opts.IdempotencyKey)
	}
	return c.Call(ctx, call)
}

// StopAgreement is UpdateAgreement with status STOPPED
func (c *V3Client) StopAgreement(ctx context.Context, agreementID string) (*Response, error) {
	return c.UpdateAgreement(ctx, agreementID, UpdateAgreementOptions{Status: AgreementStopped})
}

// Int64 returns a pointer to v, for optional numeric fields
func Int64(v int64) *int64 {
	return &v
}

// Int returns a pointer to v, for optional numeric fields
func Int(v int) *int {
	return &v
}
