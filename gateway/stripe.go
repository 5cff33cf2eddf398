// Package gateway talks to the external payment provider. The rest of the
// system only sees the Gateway interface: an integral minor-unit amount goes
// in, an opaque client secret comes out.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Intent is a created payment intent. ClientSecret is handed to the web
// client to complete the charge; the server never touches card data.
type Intent struct {
	ID           string
	ClientSecret string
}

// Gateway creates payment intents with the external provider.
type Gateway interface {
	CreateIntent(ctx context.Context, amountMinorUnits int64, currency string) (*Intent, error)
}

// StripeClient implements Gateway against the Stripe REST API.
type StripeClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewStripeClient builds a client for the live Stripe API.
func NewStripeClient(apiKey string) *StripeClient {
	return &StripeClient{
		apiKey:     apiKey,
		baseURL:    "https://api.stripe.com",
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// NewStripeClientWithBaseURL points the client at a different endpoint,
// used by tests.
func NewStripeClientWithBaseURL(apiKey, baseURL string) *StripeClient {
	c := NewStripeClient(apiKey)
	c.baseURL = baseURL
	return c
}

type intentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CreateIntent creates a card payment intent for the given minor-unit amount.
func (s *StripeClient) CreateIntent(ctx context.Context, amountMinorUnits int64, currency string) (*Intent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountMinorUnits, 10))
	form.Set("currency", currency)
	form.Set("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("gateway: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	// Retries with the same key never double-charge.
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway: create intent: %w", err)
	}
	defer resp.Body.Close()

	var body intentResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("gateway: decode response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if body.Error != nil {
			return nil, fmt.Errorf("gateway: intent rejected: %s", body.Error.Message)
		}
		return nil, fmt.Errorf("gateway: intent rejected: status %d", resp.StatusCode)
	}
	return &Intent{ID: body.ID, ClientSecret: body.ClientSecret}, nil
}
