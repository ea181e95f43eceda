package vipps

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterWebhook(t *testing.T) {
	client, _, _ := setupV3Test(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/webhooks/v1/webhooks", r.URL.Path)
		assert.Equal(t, "123456", r.Header.Get("Merchant-Serial-Number"))
		assert.Equal(t, map[string]interface{}{
			"url":    "https://example.com/hooks/vipps",
			"events": []interface{}{"recurring.agreement-activated.v1", "recurring.charge-failed.v1"},
		}, decodeJSONBody(t, r))
		writeJSON(w, http.StatusCreated, `{"id":"wh_1","secret":"s3cr3t"}`)
	})

	resp, err := client.RegisterWebhook(context.Background(), "https://example.com/hooks/vipps",
		[]string{EventAgreementActivated, EventChargeFailed})
	require.NoError(t, err)
	assert.Equal(t, "wh_1", resp.String("id"))
	assert.Equal(t, "s3cr3t", resp.String("secret"))
}

func TestRegisterWebhook_NilEventsSendsEmptyList(t *testing.T) {
	client, _, _ := setupV3Test(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, []interface{}{}, decodeJSONBody(t, r)["events"])
		writeJSON(w, http.StatusCreated, `{"id":"wh_1"}`)
	})

	_, err := client.RegisterWebhook(context.Background(), "https://example.com/hooks", nil)
	require.NoError(t, err)
}

func TestListAndDeleteWebhooks(t *testing.T) {
	client, _, _ := setupV3Test(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "/webhooks/v1/webhooks", r.URL.Path)
			writeJSON(w, http.StatusOK, `{"webhooks":[{"id":"wh_1","url":"https://example.com","events":[]}]}`)
		case http.MethodDelete:
			assert.Equal(t, "/webhooks/v1/webhooks/wh_1", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	})

	resp, err := client.ListWebhooks(context.Background())
	require.NoError(t, err)
	hooks, ok := resp.Map()["webhooks"].([]interface{})
	require.True(t, ok)
	assert.Len(t, hooks, 1)

	resp, err = client.DeleteWebhook(context.Background(), "wh_1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
