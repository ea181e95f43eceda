package vipps

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/kevin07696/vipps-client/pkg/casing"
	pkgerrors "github.com/kevin07696/vipps-client/pkg/errors"
	"github.com/kevin07696/vipps-client/pkg/timeutil"
)

// Charge defaults
const (
	TransactionDirectCapture = "DIRECT_CAPTURE"
	TransactionReserve       = "RESERVE_CAPTURE"

	DefaultRetryDays = 3
	// DefaultDueDays is how far ahead a charge falls due when no date is given
	DefaultDueDays = 2
)

// CreateChargeOptions describes one charge against an agreement
type CreateChargeOptions struct {
	AgreementID     string
	Amount          int64 // minor units
	Description     string
	Due             string // YYYY-MM-DD, defaults to DefaultDueDays from now (UTC)
	RetryDays       *int
	OrderID         string
	TransactionType string
	IdempotencyKey  string
}

// CreateCharge schedules a charge on an active agreement
func (c *V3Client) CreateCharge(ctx context.Context, opts CreateChargeOptions) (*Response, error) {
	due := opts.Due
	if due == "" {
		due = timeutil.DaysFrom(c.now(), DefaultDueDays)
	} else if _, err := timeutil.ParseISODate(due); err != nil {
		return nil, pkgerrors.NewProviderError(pkgerrors.CodeRequestError,
			fmt.Sprintf("due must be a YYYY-MM-DD date, got %q", due), pkgerrors.CategoryInvalidRequest, false).WithCause(err)
	}
	retryDays := DefaultRetryDays
	if opts.RetryDays != nil {
		retryDays = *opts.RetryDays
	}
	txType := opts.TransactionType
	if txType == "" {
		txType = TransactionDirectCapture
	}

	body := map[string]interface{}{
		"amount":          opts.Amount,
		"transactionType": txType,
		"description":     opts.Description,
		"due":             due,
		"retryDays":       retryDays,
	}
	if opts.OrderID != "" {
		body["orderId"] = opts.OrderID
	}

	return c.Call(ctx, Call{
		Operation: "create_charge",
		Method:    http.MethodPost,
		Path:      resourcePath(recurringRoot, "agreements", opts.AgreementID, "charges"),
		Body:      body,
		Headers:   c.idempotencyHeaders(opts.IdempotencyKey),
	})
}

// GetCharge fetches one charge of an agreement
func (c *V3Client) GetCharge(ctx context.Context, agreementID, chargeID string) (*Response, error) {
	return c.Call(ctx, Call{
		Operation: "get_charge",
		Method:    http.MethodGet,
		Path:      resourcePath(recurringRoot, "agreements", agreementID, "charges", chargeID),
	})
}

// GetChargeByID fetches a charge without knowing its agreement
func (c *V3Client) GetChargeByID(ctx context.Context, chargeID string) (*Response, error) {
	return c.Call(ctx, Call{
		Operation: "get_charge_by_id",
		Method:    http.MethodGet,
		Path:      resourcePath(recurringRoot, "charges", chargeID),
	})
}

// ListCharges lists an agreement's charges, optionally filtered by status
func (c *V3Client) ListCharges(ctx context.Context, agreementID, status string) (*Response, error) {
	var query url.Values
	if status != "" {
		query = url.Values{"status": []string{status}}
	}
	return c.Call(ctx, Call{
		Operation: "list_charges",
		Method:    http.MethodGet,
		Path:      resourcePath(recurringRoot, "agreements", agreementID, "charges"),
		Query:     query,
	})
}

// MultiCharge creates charges across agreements in one call. Order keys may
// be snake_case; they are camelized and default to DIRECT_CAPTURE.
// The caller's maps are not modified.
func (c *V3Client) MultiCharge(ctx context.Context, orders []map[string]interface{}, idempotencyKey string) (*Response, error) {
	charges := make([]interface{}, 0, len(orders))
	for _, order := range orders {
		charge := casing.OuterKeys(order)
		if charge == nil {
			charge = map[string]interface{}{}
		}
		if _, ok := charge["transactionType"]; !ok {
			charge["transactionType"] = TransactionDirectCapture
		}
		charges = append(charges, charge)
	}

	return c.Call(ctx, Call{
		Operation: "multi_charge",
		Method:    http.MethodPost,
		Path:      resourcePath(recurringRoot, "agreements", "charges"),
		Body:      charges,
		Headers:   c.idempotencyHeaders(idempotencyKey),
	})
}

// CancelCharge cancels a pending, due or reserved charge
func (c *V3Client) CancelCharge(ctx context.Context, agreementID, chargeID, idempotencyKey string) (*Response, error) {
	return c.Call(ctx, Call{
		Operation: "cancel_charge",
		Method:    http.MethodDelete,
		Path:      resourcePath(recurringRoot, "agreements", agreementID, "charges", chargeID),
		Headers:   c.idempotencyHeaders(idempotencyKey),
	})
}

// ChargeAdjustment is the body of a capture or refund
type ChargeAdjustment struct {
	AgreementID    string
	ChargeID       string
	Amount         int64 // minor units
	Description    string
	IdempotencyKey string
}

// CaptureCharge captures a reserved charge
func (c *V3Client) CaptureCharge(ctx context.Context, adj ChargeAdjustment) (*Response, error) {
	return c.adjustCharge(ctx, "capture_charge", "capture", adj)
}

// RefundCharge refunds a captured charge, fully or partially
func (c *V3Client) RefundCharge(ctx context.Context, adj ChargeAdjustment) (*Response, error) {
	return c.adjustCharge(ctx, "refund_charge", "refund", adj)
}

func (c *V3Client) adjustCharge(ctx context.Context, operation, action string, adj ChargeAdjustment) (*Response, error) {
	return c.Call(ctx, Call{
		Operation: operation,
		Method:    http.MethodPost,
		Path:      resourcePath(recurringRoot, "agreements", adj.AgreementID, "charges", adj.ChargeID, action),
		Body: map[string]interface{}{
			"amount":      adj.Amount,
			"description": adj.Description,
		},
		Headers: c.idempotencyHeaders(adj.IdempotencyKey),
	})
}
