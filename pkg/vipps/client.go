package vipps

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/kevin07696/vipps-client/pkg/casing"
	pkgerrors "github.com/kevin07696/vipps-client/pkg/errors"
	pkghttp "github.com/kevin07696/vipps-client/pkg/http"
	"github.com/kevin07696/vipps-client/pkg/logging"
	"github.com/kevin07696/vipps-client/pkg/observability"
	"github.com/kevin07696/vipps-client/pkg/ports"
	"github.com/kevin07696/vipps-client/pkg/resilience"
	"github.com/kevin07696/vipps-client/pkg/timeutil"
)

// Client is an authenticated connection to one generation of the provider API.
// The configuration and access token are fixed at construction, so a Client
// is safe for concurrent use. A Client holds exactly one merchant's token;
// build one Client per merchant when serving several.
type Client struct {
	cfg        Config
	protocol   Protocol
	builder    *RequestBuilder
	httpClient ports.HTTPClient
	logger     ports.Logger
	timeouts   *resilience.TimeoutConfig
	limiter    *resilience.Limiter
	newKey     func() string
	now        func() time.Time
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the default pooled transport
func WithHTTPClient(c ports.HTTPClient) Option {
	return func(cl *Client) { cl.httpClient = c }
}

// WithLogger sets the structured logger
func WithLogger(l ports.Logger) Option {
	return func(cl *Client) { cl.logger = l }
}

// WithIdempotencyKeys replaces the idempotency key generator
func WithIdempotencyKeys(gen func() string) Option {
	return func(cl *Client) { cl.newKey = gen }
}

// WithClock replaces the clock used for default due dates
func WithClock(now func() time.Time) Option {
	return func(cl *Client) { cl.now = now }
}

// WithLimiter replaces the limiter built from Config.RateLimit
func WithLimiter(l *resilience.Limiter) Option {
	return func(cl *Client) { cl.limiter = l }
}

// NewClient builds a client and acquires its access token. When
// cfg.AccessToken is set it is used as-is and no token call is made.
func NewClient(ctx context.Context, cfg Config, protocol Protocol, opts ...Option) (*Client, error) {
	c := &Client{
		cfg:      cfg,
		protocol: protocol,
		logger:   logging.Nop(),
		timeouts: resilience.NewTimeoutConfig(cfg.Timeout),
		limiter:  resilience.NewLimiter(cfg.RateLimit, cfg.RateBurst),
		newKey:   NewIdempotencyKey,
		now:      timeutil.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = pkghttp.NewHTTPClient(pkghttp.ProviderClientConfig(), c.timeouts.ProviderCall)
	}

	token := cfg.AccessToken
	if token == "" {
		var err error
		token, err = c.fetchAccessToken(ctx)
		if err != nil {
			return nil, err
		}
	}
	c.builder = NewRequestBuilder(cfg, protocol, token)

	return c, nil
}

// NewLegacyClient builds a client speaking the original protocol
func NewLegacyClient(ctx context.Context, cfg Config, opts ...Option) (*Client, error) {
	return NewClient(ctx, cfg, Legacy, opts...)
}

// Config returns the configuration the client was built with
func (c *Client) Config() Config {
	return c.cfg
}

// Protocol returns the generation policy in use
func (c *Client) Protocol() Protocol {
	return c.protocol
}

// AccessToken returns the bearer token attached to every call
func (c *Client) AccessToken() string {
	return c.builder.token
}

// Call performs one operation and normalizes the outcome. A success returns
// the decoded body; any failure is a *errors.ProviderError.
func (c *Client) Call(ctx context.Context, call Call) (*Response, error) {
	ctx, cancel := c.timeouts.ProviderContext(ctx)
	defer cancel()

	status, header, raw, err := c.do(ctx, c.builder, call)
	if err != nil {
		return nil, err
	}
	return c.normalize(status, header, raw)
}

// do sends the request and reads the full body
func (c *Client) do(ctx context.Context, builder *RequestBuilder, call Call) (int, http.Header, []byte, error) {
	req, err := builder.Build(call)
	if err != nil {
		return 0, nil, nil, pkgerrors.NewProviderError(pkgerrors.CodeRequestError, err.Error(), pkgerrors.CategoryInvalidRequest, false).WithCause(err)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return 0, nil, nil, pkgerrors.NewProviderError(pkgerrors.CodeNetworkError, "rate limiter wait aborted", pkgerrors.CategoryNetworkError, true).WithCause(err)
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return 0, nil, nil, pkgerrors.NewProviderError(pkgerrors.CodeRequestError, "failed to create request", pkgerrors.CategoryInvalidRequest, false).WithCause(err)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	c.logger.Info("making request to Vipps",
		ports.String("method", req.Method),
		ports.String("path", call.Path),
		ports.String("generation", c.protocol.Name),
	)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		observability.RecordProviderCall(c.protocol.Name, call.Operation, "error", time.Since(start).Seconds())
		c.logger.Error("request to Vipps failed",
			ports.String("path", call.Path),
			ports.Err(err),
		)
		return 0, nil, nil, pkgerrors.NewProviderError(pkgerrors.CodeNetworkError, fmt.Sprintf("request failed: %v", err), pkgerrors.CategoryNetworkError, true).WithCause(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	observability.RecordProviderCall(c.protocol.Name, call.Operation, strconv.Itoa(resp.StatusCode), time.Since(start).Seconds())
	if err != nil {
		return 0, nil, nil, pkgerrors.NewProviderError(pkgerrors.CodeNetworkError, "failed to read response", pkgerrors.CategoryNetworkError, true).WithCause(err)
	}

	return resp.StatusCode, resp.Header, raw, nil
}

// normalize maps a raw reply to a Response or ProviderError. The body is
// parsed before the status is inspected, so a non-JSON 500 reports a
// provider internal error rather than a generic gateway failure.
func (c *Client) normalize(status int, header http.Header, raw []byte) (*Response, error) {
	payload, err := decodeBody(raw)
	if err != nil {
		if status == http.StatusInternalServerError {
			return nil, pkgerrors.NewProviderError(pkgerrors.CodeProviderInternalError, pkgerrors.MessageProviderInternalError, pkgerrors.CategorySystemError, true).
				WithResponse(status, string(raw), nil).
				WithCause(err)
		}
		return nil, pkgerrors.NewProviderError(pkgerrors.CodeUnparseableBody, pkgerrors.MessageUnparseableBody, pkgerrors.CategoryInvalidBody, status >= 500).
			WithResponse(status, string(raw), nil).
			WithCause(err)
	}

	if c.protocol.InnerCaseResponses {
		payload = casing.ToInnerCase(payload)
	}

	if status < 200 || status >= 300 {
		c.logger.Warn("Vipps rejected request",
			ports.Int("status", status),
			ports.String("generation", c.protocol.Name),
		)

		msg := providerMessage(payload)
		if status >= 500 {
			if msg == "" {
				msg = "provider unavailable"
			}
			return nil, pkgerrors.NewProviderError(pkgerrors.CodeGatewayError, msg, pkgerrors.CategorySystemError, true).
				WithResponse(status, string(raw), payload)
		}
		if msg == "" {
			msg = "provider rejected request"
		}
		return nil, pkgerrors.NewProviderError(pkgerrors.CodeRequestError, msg, pkgerrors.CategoryInvalidRequest, false).
			WithResponse(status, string(raw), payload)
	}

	return &Response{StatusCode: status, Header: header, Body: payload}, nil
}
