package errors

import (
	"fmt"
)

// ErrorCategory represents the category of error for handling
type ErrorCategory string

const (
	CategoryAuthentication ErrorCategory = "authentication"
	CategorySystemError    ErrorCategory = "system_error"
	CategoryNetworkError   ErrorCategory = "network_error"
	CategoryInvalidRequest ErrorCategory = "invalid_request"
	CategoryInvalidBody    ErrorCategory = "invalid_body"
)

// Provider error codes
const (
	CodeNetworkError          = "NETWORK_ERROR"
	CodeProviderInternalError = "PROVIDER_INTERNAL_ERROR"
	CodeUnparseableBody       = "UNPARSEABLE_BODY"
	CodeRequestError          = "REQUEST_ERROR"
	CodeGatewayError          = "GATEWAY_ERROR"
)

// Messages substituted when the provider body cannot be decoded
const (
	MessageProviderInternalError = "provider internal error"
	MessageUnparseableBody       = "unparseable body"
)

// AuthenticationError is returned when an access token could not be obtained
type AuthenticationError struct {
	StatusCode int
	Message    string
	RawBody    string
}

func (e *AuthenticationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("authentication failed (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("authentication failed: %s", e.Message)
}

// NewAuthenticationError creates a new authentication error
func NewAuthenticationError(statusCode int, message, rawBody string) *AuthenticationError {
	return &AuthenticationError{
		StatusCode: statusCode,
		Message:    message,
		RawBody:    rawBody,
	}
}

// ProviderError represents a failed call to the payment provider.
// RawBody always holds the response body as received; Payload holds the
// decoded JSON document when the body could be parsed, nil otherwise.
type ProviderError struct {
	Code        string
	Message     string
	StatusCode  int
	RawBody     string
	Payload     interface{}
	Category    ErrorCategory
	IsRetriable bool
	cause       error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Code, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the transport or decoding error behind this error, if any
func (e *ProviderError) Unwrap() error {
	return e.cause
}

// NewProviderError creates a new provider error
func NewProviderError(code, message string, category ErrorCategory, retriable bool) *ProviderError {
	return &ProviderError{
		Code:        code,
		Message:     message,
		Category:    category,
		IsRetriable: retriable,
	}
}

// WithResponse attaches the HTTP status and body to the error
func (e *ProviderError) WithResponse(statusCode int, rawBody string, payload interface{}) *ProviderError {
	e.StatusCode = statusCode
	e.RawBody = rawBody
	e.Payload = payload
	return e
}

// WithCause records the underlying error
func (e *ProviderError) WithCause(err error) *ProviderError {
	e.cause = err
	return e
}

// PayloadMap returns the decoded error body when it is a JSON object
func (e *ProviderError) PayloadMap() map[string]interface{} {
	m, _ := e.Payload.(map[string]interface{})
	return m
}
