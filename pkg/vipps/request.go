package vipps

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/kevin07696/vipps-client/pkg/casing"
	"github.com/kevin07696/vipps-client/pkg/encoding"
)

// Call describes one operation against the provider
type Call struct {
	// Operation labels the call in logs and metrics
	Operation string
	Method    string
	// Path is relative to the base URL, e.g. "recurring/v3/agreements"
	Path  string
	Query url.Values
	// Body is JSON-encoded when non-nil; nil sends no body at all
	Body interface{}
	// Headers are merged over the base headers, matched case-insensitively.
	// An empty value removes the base header.
	Headers map[string]string
}

// Request is a fully built outbound request, ready for the transport
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
}

// RequestBuilder turns a Call into a Request for one configuration and protocol
type RequestBuilder struct {
	cfg      Config
	protocol Protocol
	token    string
}

// NewRequestBuilder creates a builder. token may be empty for the token call itself.
func NewRequestBuilder(cfg Config, protocol Protocol, token string) *RequestBuilder {
	return &RequestBuilder{cfg: cfg, protocol: protocol, token: token}
}

// Build resolves the URL, merges headers and serializes the body
func (b *RequestBuilder) Build(call Call) (*Request, error) {
	target, err := url.JoinPath(b.cfg.BaseURL(), call.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %q: %w", call.Path, err)
	}
	if len(call.Query) > 0 {
		target += "?" + call.Query.Encode()
	}

	req := &Request{
		Method:  strings.ToUpper(call.Method),
		URL:     target,
		Headers: b.headers(call.Headers),
	}

	if call.Body != nil {
		body := call.Body
		if b.protocol.OuterCaseRequests {
			body = casing.ToOuterCase(body)
		}
		req.Body, err = encoding.EncodeJSON(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
	}

	return req, nil
}

func (b *RequestBuilder) headers(extra map[string]string) map[string]string {
	h := map[string]string{
		"Content-Type":              "application/json",
		"Ocp-Apim-Subscription-Key": b.cfg.SubscriptionKey,
	}
	if b.token != "" {
		h["Authorization"] = "bearer " + b.token
	}
	if b.protocol.MerchantHeader && b.cfg.MerchantSerialNumber != "" {
		h["Merchant-Serial-Number"] = b.cfg.MerchantSerialNumber
	}
	if b.protocol.SystemHeaders {
		h["Vipps-System-Name"] = b.cfg.SystemName
		h["Vipps-System-Version"] = b.cfg.SystemVersion
		h["Vipps-System-Plugin-Name"] = b.cfg.PluginName
		h["Vipps-System-Plugin-Version"] = b.cfg.PluginVersion
	}
	if b.cfg.UserAgent != "" {
		h["User-Agent"] = b.cfg.UserAgent
	}

	for k, v := range extra {
		k = http.CanonicalHeaderKey(k)
		if v == "" {
			delete(h, k)
			continue
		}
		h[k] = v
	}
	return h
}

// resourcePath joins a resource root with escaped path segments
func resourcePath(root string, segments ...string) string {
	var sb strings.Builder
	sb.WriteString(root)
	for _, s := range segments {
		sb.WriteByte('/')
		sb.WriteString(url.PathEscape(s))
	}
	return sb.String()
}
