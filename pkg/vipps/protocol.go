package vipps

import "net/http"

// Protocol describes how one generation of the provider API expects requests
// to be shaped and how its responses are normalized. The request builder and
// invoker are shared; only the policy differs between generations.
type Protocol struct {
	Name string

	// TokenMethod is the HTTP method of the accessToken/get call
	TokenMethod string

	// OuterCaseRequests rewrites request body keys from snake_case to camelCase
	OuterCaseRequests bool
	// InnerCaseResponses rewrites response keys from camelCase to snake_case
	InnerCaseResponses bool

	// MerchantHeader sends Merchant-Serial-Number on every call
	MerchantHeader bool
	// SystemHeaders sends the Vipps-System-* identification headers
	SystemHeaders bool

	// IdempotencyHeader names the header carrying the idempotency key
	IdempotencyHeader string
}

var (
	// Legacy is the original protocol: snake_case in and out, GET token call
	Legacy = Protocol{
		Name:               "legacy",
		TokenMethod:        http.MethodGet,
		OuterCaseRequests:  true,
		InnerCaseResponses: true,
		IdempotencyHeader:  "Idempotent-Key",
	}

	// Ecomm is the e-commerce v2 protocol: pre-shaped camelCase bodies, snake_case responses
	Ecomm = Protocol{
		Name:               "ecomm",
		TokenMethod:        http.MethodPost,
		InnerCaseResponses: true,
		MerchantHeader:     true,
		IdempotencyHeader:  "X-Request-Id",
	}

	// V3 is the current protocol: bodies and responses pass through untouched
	V3 = Protocol{
		Name:              "v3",
		TokenMethod:       http.MethodPost,
		MerchantHeader:    true,
		SystemHeaders:     true,
		IdempotencyHeader: "Idempotency-Key",
	}
)
