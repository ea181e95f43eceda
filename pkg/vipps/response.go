package vipps

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Response is a successful provider reply. Body holds the decoded JSON
// document (maps, slices, json.Number, strings, bools) or nil when the
// provider sent no body.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       interface{}
}

// Map returns the body when it is a JSON object
func (r *Response) Map() map[string]interface{} {
	if r == nil {
		return nil
	}
	m, _ := r.Body.(map[string]interface{})
	return m
}

// List returns the body when it is a JSON array
func (r *Response) List() []interface{} {
	if r == nil {
		return nil
	}
	l, _ := r.Body.([]interface{})
	return l
}

// String returns a top-level string field of an object body
func (r *Response) String(key string) string {
	s, _ := r.Map()[key].(string)
	return s
}

// Decode re-encodes the body into v
func (r *Response) Decode(v interface{}) error {
	if r == nil || r.Body == nil {
		return errors.New("response has no body")
	}
	raw, err := json.Marshal(r.Body)
	if err != nil {
		return fmt.Errorf("failed to encode response body: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

// decodeBody parses a JSON document, keeping numbers as json.Number.
// An empty or whitespace-only body decodes to nil.
func decodeBody(raw []byte) (interface{}, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after JSON document")
	}
	return v, nil
}

// providerMessage extracts a human-readable reason from an error document.
// v3 returns problem details, ecomm returns a list of error objects.
func providerMessage(payload interface{}) string {
	switch p := payload.(type) {
	case map[string]interface{}:
		for _, key := range []string{"detail", "title", "message", "error_description", "error"} {
			if s, ok := p[key].(string); ok && s != "" {
				return s
			}
		}
	case []interface{}:
		if len(p) > 0 {
			if first, ok := p[0].(map[string]interface{}); ok {
				for _, key := range []string{"errorMessage", "error_message"} {
					if s, ok := first[key].(string); ok && s != "" {
						return s
					}
				}
			}
		}
	}
	return ""
}
