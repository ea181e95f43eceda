package vipps

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitiatePayment(t *testing.T) {
	client := setupEcommTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/ecomm/v2/payments", r.URL.Path)
		assert.Equal(t, "123456", r.Header.Get("Merchant-Serial-Number"))
		assert.Empty(t, r.Header.Get("Vipps-System-Name"))

		body := decodeJSONBody(t, r)
		assert.Equal(t, map[string]interface{}{"mobileNumber": "91234567"}, body["customerInfo"])
		merchant := body["merchantInfo"].(map[string]interface{})
		assert.Equal(t, "123456", merchant["merchantSerialNumber"])
		assert.Equal(t, "https://example.com/callback", merchant["callbackPrefix"])
		assert.Equal(t, "https://example.com/fallback", merchant["fallBack"])
		assert.NotContains(t, merchant, "authToken")
		assert.Equal(t, map[string]interface{}{
			"orderId":         "order-1",
			"amount":          float64(20000),
			"transactionText": "One pair of socks",
			"skipLandingPage": false,
		}, body["transaction"])

		writeJSON(w, http.StatusOK, `{"orderId":"order-1","url":"https://api.vipps.no/dwo-api-application/v1/deeplink"}`)
	})

	resp, err := client.InitiatePayment(context.Background(), InitiatePaymentOptions{
		OrderID:         "order-1",
		Amount:          20000,
		TransactionText: "One pair of socks",
		MobileNumber:    "91234567",
		CallbackPrefix:  "https://example.com/callback",
		FallbackURL:     "https://example.com/fallback",
	})
	require.NoError(t, err)
	assert.Equal(t, "order-1", resp.String("order_id"))
	assert.NotEmpty(t, resp.String("url"))
}

func TestCapturePayment_UsesRequestIDHeader(t *testing.T) {
	client := setupEcommTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ecomm/v2/payments/order-1/capture", r.URL.Path)
		assert.Equal(t, "capture-1", r.Header.Get("X-Request-Id"))
		assert.Empty(t, r.Header.Get("Idempotency-Key"))

		body := decodeJSONBody(t, r)
		assert.Equal(t, map[string]interface{}{"amount": float64(20000), "transactionText": "shipped"}, body["transaction"])

		writeJSON(w, http.StatusOK, `{"orderId":"order-1","transactionInfo":{"status":"Captured","transactionId":"5001420062"}}`)
	})

	resp, err := client.CapturePayment(context.Background(), PaymentAdjustment{
		OrderID:         "order-1",
		Amount:          20000,
		TransactionText: "shipped",
		IdempotencyKey:  "capture-1",
	})
	require.NoError(t, err)

	info := resp.Map()["transaction_info"].(map[string]interface{})
	assert.Equal(t, "Captured", info["status"])
	assert.Equal(t, "5001420062", info["transaction_id"])
}

func TestRefundPayment_GeneratesKey(t *testing.T) {
	client := setupEcommTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ecomm/v2/payments/order-1/refund", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		writeJSON(w, http.StatusOK, `{"orderId":"order-1"}`)
	})

	_, err := client.RefundPayment(context.Background(), PaymentAdjustment{OrderID: "order-1", Amount: 100})
	require.NoError(t, err)
}

func TestCancelPayment(t *testing.T) {
	client := setupEcommTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/ecomm/v2/payments/order-1/cancel", r.URL.Path)
		body := decodeJSONBody(t, r)
		assert.Equal(t, map[string]interface{}{"transactionText": "out of stock"}, body["transaction"])
		writeJSON(w, http.StatusOK, `{"orderId":"order-1"}`)
	})

	_, err := client.CancelPayment(context.Background(), "order-1", "out of stock")
	require.NoError(t, err)
}

func TestPaymentStatusAndDetails(t *testing.T) {
	client := setupEcommTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		switch r.URL.Path {
		case "/ecomm/v2/payments/order-1/status":
			writeJSON(w, http.StatusOK, `{"orderId":"order-1","transactionInfo":{"status":"RESERVE"}}`)
		case "/ecomm/v2/payments/order-1/details":
			writeJSON(w, http.StatusOK, `{"orderId":"order-1","transactionLogHistory":[{"operation":"RESERVE"}]}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	status, err := client.GetPaymentStatus(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Contains(t, status.Map(), "transaction_info")

	details, err := client.GetPaymentDetails(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Contains(t, details.Map(), "transaction_log_history")
}
