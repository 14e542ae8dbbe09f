package paypal_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"astroleap/pkg/paypal"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *paypal.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return paypal.NewClient(paypal.Config{
		ClientID:     "client",
		ClientSecret: "secret",
		APIBase:      srv.URL + "/",
		ReturnURL:    "https://game.example/paypal-success",
		CancelURL:    "https://game.example/paypal-cancel",
		BrandName:    "AstroLeap",
	})
}

func TestClient_AccessToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/oauth2/token", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "client", user)
		assert.Equal(t, "secret", pass)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.Form.Get("grant_type"))
		w.Write([]byte(`{"access_token":"tok-1","token_type":"Bearer"}`))
	})

	token, err := client.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
}

func TestClient_CreateOrder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/checkout/orders", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("PayPal-Request-Id"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "CAPTURE", body["intent"])
		appCtx := body["application_context"].(map[string]interface{})
		assert.Equal(t, "AstroLeap", appCtx["brand_name"])
		assert.Equal(t, "https://game.example/paypal-success", appCtx["return_url"])
		unit := body["purchase_units"].([]interface{})[0].(map[string]interface{})
		amount := unit["amount"].(map[string]interface{})
		assert.Equal(t, "USD", amount["currency_code"])
		assert.Equal(t, "4.50", amount["value"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"ORDER-1","status":"CREATED","links":[]}`))
	})

	order, err := client.CreateOrder(context.Background(), "tok-1", decimal.RequireFromString("4.5"))
	require.NoError(t, err)
	assert.Equal(t, "ORDER-1", order.ID)
	assert.Equal(t, paypal.StatusCreated, order.Status)
	assert.JSONEq(t, `{"id":"ORDER-1","status":"CREATED","links":[]}`, string(order.Raw))
}

func TestClient_GetAndCaptureOrder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v2/checkout/orders/ORDER-1":
			assert.Equal(t, http.MethodGet, r.Method)
			w.Write([]byte(`{"id":"ORDER-1","status":"APPROVED"}`))
		case "/v2/checkout/orders/ORDER-1/capture":
			assert.Equal(t, http.MethodPost, r.Method)
			w.Write([]byte(`{"id":"ORDER-1","status":"COMPLETED"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	order, err := client.GetOrder(context.Background(), "tok", "ORDER-1")
	require.NoError(t, err)
	assert.Equal(t, paypal.StatusApproved, order.Status)

	captured, err := client.CaptureOrder(context.Background(), "tok", "ORDER-1")
	require.NoError(t, err)
	assert.Equal(t, paypal.StatusCompleted, captured.Status)
}

func TestClient_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"name":"UNPROCESSABLE_ENTITY"}`))
	})

	_, err := client.CreateOrder(context.Background(), "tok", decimal.NewFromInt(1))
	require.Error(t, err)
	var apiErr *paypal.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.JSONEq(t, `{"name":"UNPROCESSABLE_ENTITY"}`, string(apiErr.Body))
}

func TestClient_APIErrorWithPlainBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	})

	_, err := client.AccessToken(context.Background())
	var apiErr *paypal.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, `"upstream down"`, string(apiErr.Body))
}
