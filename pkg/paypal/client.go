package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order statuses reported by the gateway.
const (
	StatusCreated   = "CREATED"
	StatusApproved  = "APPROVED"
	StatusCompleted = "COMPLETED"
)

// Currency is the only currency orders are created in.
const Currency = "USD"

// Config holds gateway credentials and redirect targets.
type Config struct {
	ClientID     string
	ClientSecret string
	APIBase      string
	ReturnURL    string
	CancelURL    string
	BrandName    string
	// Timeout of zero means no timeout.
	Timeout time.Duration
}

// Client talks to the PayPal REST API.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// Order is a gateway order. Raw keeps the full response body.
type Order struct {
	ID     string          `json:"id"`
	Status string          `json:"status"`
	Raw    json.RawMessage `json:"-"`
}

// APIError is a non-2xx answer from the gateway.
type APIError struct {
	StatusCode int
	Body       json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("paypal returned status %d: %s", e.StatusCode, string(e.Body))
}

// NewClient creates a gateway client.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// AccessToken exchanges the client credentials for a bearer token.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/v1/oauth2/token"), strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := c.do(req)
	if err != nil {
		return "", err
	}
	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("token response has no access_token")
	}
	return tok.AccessToken, nil
}

type applicationContext struct {
	BrandName   string `json:"brand_name"`
	LandingPage string `json:"landing_page"`
	UserAction  string `json:"user_action"`
	ReturnURL   string `json:"return_url"`
	CancelURL   string `json:"cancel_url"`
}

type money struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type purchaseUnit struct {
	ReferenceID string `json:"reference_id"`
	Amount      money  `json:"amount"`
}

type createOrderRequest struct {
	Intent             string             `json:"intent"`
	ApplicationContext applicationContext `json:"application_context"`
	PurchaseUnits      []purchaseUnit     `json:"purchase_units"`
}

// CreateOrder opens a capture-intent order for amount USD.
func (c *Client) CreateOrder(ctx context.Context, token string, amount decimal.Decimal) (*Order, error) {
	payload := createOrderRequest{
		Intent: "CAPTURE",
		ApplicationContext: applicationContext{
			BrandName:   c.cfg.BrandName,
			LandingPage: "LOGIN",
			UserAction:  "PAY_NOW",
			ReturnURL:   c.cfg.ReturnURL,
			CancelURL:   c.cfg.CancelURL,
		},
		PurchaseUnits: []purchaseUnit{{
			ReferenceID: "default",
			Amount:      money{CurrencyCode: Currency, Value: amount.StringFixed(2)},
		}},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/v2/checkout/orders"), bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("PayPal-Request-Id", uuid.NewString())

	return c.doOrder(req)
}

// GetOrder fetches the live state of an order.
func (c *Client) GetOrder(ctx context.Context, token, orderID string) (*Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/v2/checkout/orders/"+url.PathEscape(orderID)), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return c.doOrder(req)
}

// CaptureOrder settles an approved order.
func (c *Client) CaptureOrder(ctx context.Context, token, orderID string) (*Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/v2/checkout/orders/"+url.PathEscape(orderID)+"/capture"), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	return c.doOrder(req)
}

func (c *Client) endpoint(path string) string {
	return strings.TrimRight(c.cfg.APIBase, "/") + path
}

func (c *Client) doOrder(req *http.Request) (*Order, error) {
	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	var order Order
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("failed to decode order response: %w", err)
	}
	order.Raw = body
	return &order, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paypal request %s %s failed: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read paypal response: %w", err)
	}
	if resp.StatusCode >= 400 {
		if !json.Valid(body) {
			body, _ = json.Marshal(string(body))
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Body: body}
	}
	return body, nil
}
