package vipps

import (
	"context"
	"net/http"

	"github.com/kevin07696/vipps-client/pkg/casing"
	pkgerrors "github.com/kevin07696/vipps-client/pkg/errors"
	"github.com/kevin07696/vipps-client/pkg/observability"
	"github.com/kevin07696/vipps-client/pkg/ports"
)

const tokenPath = "accessToken/get"

// fetchAccessToken exchanges the client credentials for a bearer token.
// The token call carries no Authorization header of its own.
func (c *Client) fetchAccessToken(ctx context.Context) (string, error) {
	ctx, cancel := c.timeouts.TokenContext(ctx)
	defer cancel()

	call := Call{
		Operation: "access_token",
		Method:    c.protocol.TokenMethod,
		Path:      tokenPath,
		Headers: map[string]string{
			"client_id":                 c.cfg.ClientID,
			"client_secret":             c.cfg.ClientSecret,
			"Ocp-Apim-Subscription-Key": c.cfg.SubscriptionKey,
		},
	}
	if call.Method != http.MethodGet {
		call.Body = map[string]interface{}{}
	}

	status, _, raw, err := c.do(ctx, NewRequestBuilder(c.cfg, c.protocol, ""), call)
	if err != nil {
		observability.RecordTokenFetch(c.protocol.Name, false)
		return "", err
	}

	token, authErr := parseToken(status, raw)
	if authErr != nil {
		observability.RecordTokenFetch(c.protocol.Name, false)
		c.logger.Error("failed to obtain Vipps access token",
			ports.Int("status", status),
			ports.String("generation", c.protocol.Name),
		)
		return "", authErr
	}

	observability.RecordTokenFetch(c.protocol.Name, true)
	c.logger.Debug("obtained Vipps access token", ports.String("generation", c.protocol.Name))
	return token, nil
}

func parseToken(status int, raw []byte) (string, *pkgerrors.AuthenticationError) {
	if status < 200 || status >= 300 {
		return "", pkgerrors.NewAuthenticationError(status, "token request rejected", string(raw))
	}

	payload, err := decodeBody(raw)
	if err != nil {
		return "", pkgerrors.NewAuthenticationError(status, "malformed token response", string(raw))
	}
	// accepts access_token and accessToken
	doc, _ := payload.(map[string]interface{})
	token, _ := casing.InnerKeys(doc)["access_token"].(string)
	if token == "" {
		return "", pkgerrors.NewAuthenticationError(status, "response has no access_token", string(raw))
	}
	return token, nil
}
