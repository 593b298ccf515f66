// Package stripe talks to the Stripe HTTP API directly: hosted checkout
// session creation plus webhook signature verification and event parsing.
package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pawsitting/booking-system/internal/core/ports"
)

const defaultAPIBase = "https://api.stripe.com"

// Client implements ports.CheckoutProvider against the Stripe REST API.
// Requests use the form-encoded bracket syntax Stripe expects.
type Client struct {
	secretKey  string
	apiBase    string
	httpClient *http.Client
}

// Config carries the settings for constructing a Client.
type Config struct {
	SecretKey string
	APIBase   string
	Timeout   time.Duration
}

// NewClient creates a Stripe API client. An empty secret key is tolerated so
// unconfigured environments still boot; checkout calls then fail loud with
// the provider's 401.
func NewClient(cfg Config) *Client {
	apiBase := strings.TrimSuffix(cfg.APIBase, "/")
	if apiBase == "" {
		apiBase = defaultAPIBase
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		secretKey:  cfg.SecretKey,
		apiBase:    apiBase,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type checkoutSessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// CreateSession creates a hosted checkout session and returns its redirect URL.
func (c *Client) CreateSession(ctx context.Context, params ports.CheckoutSessionParams) (string, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", params.SuccessURL)
	form.Set("cancel_url", params.CancelURL)
	form.Set("line_items[0][price_data][currency]", "usd")
	form.Set("line_items[0][price_data][product_data][name]", params.ProductName)
	form.Set("line_items[0][price_data][product_data][description]", params.Description)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(params.AmountCents, 10))
	form.Set("line_items[0][quantity]", "1")
	if params.CustomerEmail != "" {
		form.Set("customer_email", params.CustomerEmail)
	}
	if params.ClientRef != "" {
		form.Set("client_reference_id", params.ClientRef)
	}
	for k, v := range params.Metadata {
		if v != "" {
			form.Set(fmt.Sprintf("metadata[%s]", k), v)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.apiBase+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("stripe: create session: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("stripe: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("stripe: %s (%s)", apiErr.Error.Message, apiErr.Error.Type)
		}
		return "", fmt.Errorf("stripe: unexpected status %d", resp.StatusCode)
	}

	var session checkoutSessionResponse
	if err := json.Unmarshal(body, &session); err != nil {
		return "", fmt.Errorf("stripe: decode session: %w", err)
	}
	if session.URL == "" {
		return "", fmt.Errorf("stripe: session %s has no redirect url", session.ID)
	}

	return session.URL, nil
}
