package vipps

import (
	"context"
	"net/http"
)

const ecommRoot = "ecomm/v2/payments"

// EcommClient exposes the e-commerce v2 payments API. Responses are
// returned with snake_case keys.
type EcommClient struct {
	*Client
}

// NewEcommClient builds an authenticated e-commerce client
func NewEcommClient(ctx context.Context, cfg Config, opts ...Option) (*EcommClient, error) {
	c, err := NewClient(ctx, cfg, Ecomm, opts...)
	if err != nil {
		return nil, err
	}
	return &EcommClient{Client: c}, nil
}

// InitiatePaymentOptions describes a one-off payment
type InitiatePaymentOptions struct {
	OrderID         string
	Amount          int64 // minor units
	TransactionText string
	MobileNumber    string
	CallbackPrefix  string
	FallbackURL     string
	AuthToken       string
	IsApp           bool
}

// InitiatePayment starts a payment. The response holds the url the customer
// is sent to.
func (c *EcommClient) InitiatePayment(ctx context.Context, opts InitiatePaymentOptions) (*Response, error) {
	merchantInfo := c.merchantInfo()
	merchantInfo["callbackPrefix"] = opts.CallbackPrefix
	merchantInfo["fallBack"] = opts.FallbackURL
	merchantInfo["isApp"] = opts.IsApp
	if opts.AuthToken != "" {
		merchantInfo["authToken"] = opts.AuthToken
	}

	customerInfo := map[string]interface{}{}
	if len(opts.MobileNumber) >= MinPhoneNumberLength {
		customerInfo["mobileNumber"] = opts.MobileNumber
	}

	return c.Call(ctx, Call{
		Operation: "initiate_payment",
		Method:    http.MethodPost,
		Path:      ecommRoot,
		Body: map[string]interface{}{
			"customerInfo": customerInfo,
			"merchantInfo": merchantInfo,
			"transaction": map[string]interface{}{
				"orderId":         opts.OrderID,
				"amount":          opts.Amount,
				"transactionText": opts.TransactionText,
				"skipLandingPage": false,
			},
		},
	})
}

// PaymentAdjustment is the body of a capture or refund
type PaymentAdjustment struct {
	OrderID         string
	Amount          int64 // minor units, 0 captures the full reserved amount
	TransactionText string
	IdempotencyKey  string
}

// CapturePayment captures a reserved payment
func (c *EcommClient) CapturePayment(ctx context.Context, adj PaymentAdjustment) (*Response, error) {
	return c.adjustPayment(ctx, "capture_payment", "capture", adj)
}

// RefundPayment refunds a captured payment
func (c *EcommClient) RefundPayment(ctx context.Context, adj PaymentAdjustment) (*Response, error) {
	return c.adjustPayment(ctx, "refund_payment", "refund", adj)
}

func (c *EcommClient) adjustPayment(ctx context.Context, operation, action string, adj PaymentAdjustment) (*Response, error) {
	return c.Call(ctx, Call{
		Operation: operation,
		Method:    http.MethodPost,
		Path:      resourcePath(ecommRoot, adj.OrderID, action),
		Body: map[string]interface{}{
			"merchantInfo": c.merchantInfo(),
			"transaction": map[string]interface{}{
				"amount":          adj.Amount,
				"transactionText": adj.TransactionText,
			},
		},
		Headers: c.idempotencyHeaders(adj.IdempotencyKey),
	})
}

// CancelPayment cancels a reserved payment
func (c *EcommClient) CancelPayment(ctx context.Context, orderID, transactionText string) (*Response, error) {
	return c.Call(ctx, Call{
		Operation: "cancel_payment",
		Method:    http.MethodPut,
		Path:      resourcePath(ecommRoot, orderID, "cancel"),
		Body: map[string]interface{}{
			"merchantInfo": c.merchantInfo(),
			"transaction": map[string]interface{}{
				"transactionText": transactionText,
			},
		},
	})
}

// GetPaymentStatus returns the latest status of an order
func (c *EcommClient) GetPaymentStatus(ctx context.Context, orderID string) (*Response, error) {
	return c.Call(ctx, Call{
		Operation: "payment_status",
		Method:    http.MethodGet,
		Path:      resourcePath(ecommRoot, orderID, "status"),
	})
}

// GetPaymentDetails returns the full transaction history of an order
func (c *EcommClient) GetPaymentDetails(ctx context.Context, orderID string) (*Response, error) {
	return c.Call(ctx, Call{
		Operation: "payment_details",
		Method:    http.MethodGet,
		Path:      resourcePath(ecommRoot, orderID, "details"),
	})
}

func (c *EcommClient) merchantInfo() map[string]interface{} {
	return map[string]interface{}{"merchantSerialNumber": c.cfg.MerchantSerialNumber}
}
