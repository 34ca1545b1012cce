// Package stripe is the Stripe implementation of the payment gateway port.
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

	"github.com/eshop-platform/payment-service/internal/domain"
	"github.com/eshop-platform/payment-service/internal/gateway"
	"github.com/eshop-platform/payment-service/internal/logging"
)

const ProcessorName = "stripe"

// minorUnitFactor converts major units to cents for two-decimal currencies.
const minorUnitFactor = 100

type Client struct {
	baseURL         string
	apiKey          string
	redirectBaseURL string
	httpClient      *http.Client
}

var _ gateway.PaymentGateway = (*Client)(nil)

func NewClient(baseURL, apiKey, redirectBaseURL string) *Client {
	return &Client{
		baseURL:         strings.TrimRight(baseURL, "/"),
		apiKey:          apiKey,
		redirectBaseURL: strings.TrimRight(redirectBaseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type checkoutSessionResponse struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Status string `json:"status"`
}

func (c *Client) CreateCheckoutSession(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	form := encodeCheckoutSessionForm(checkoutSessionRequest{
		UIMode:    "custom",
		Mode:      "payment",
		ReturnURL: c.redirectBaseURL + "/return?session_id={CHECKOUT_SESSION_ID}",
		LineItems: payment.LineItems,
	})

	body, err := c.postForm(ctx, "/v1/checkout/sessions", form)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("CreateCheckoutSession: %w", err)
	}

	var resp checkoutSessionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.Payment{}, fmt.Errorf("CreateCheckoutSession: %w",
			domain.NewError(domain.KindDecodeFailure, "decode checkout session response", err))
	}

	payment.Processor = ProcessorName
	payment.ProcessorCheckoutSessionID = resp.ID
	payment.ProcessorCheckoutSessionURL = resp.URL
	payment.ProcessorStatus = resp.Status
	return payment, nil
}

func (c *Client) CreateProduct(ctx context.Context, productID, name string) error {
	form := url.Values{}
	form.Set("id", productID)
	form.Set("name", name)

	if _, err := c.postForm(ctx, "/v1/products", form); err != nil {
		return fmt.Errorf("CreateProduct: %w", err)
	}
	return nil
}

func (c *Client) CreateProductPricing(ctx context.Context, productID, currency string, unitAmount int64) error {
	form := url.Values{}
	form.Set("product", productID)
	form.Set("currency", currency)
	// Stripe denominates unit_amount in the currency's minor unit.
	form.Set("unit_amount", strconv.FormatInt(unitAmount*minorUnitFactor, 10))

	if _, err := c.postForm(ctx, "/v1/prices", form); err != nil {
		return fmt.Errorf("CreateProductPricing: %w", err)
	}
	return nil
}

// postForm performs the single outbound call for an operation and maps the
// failure modes to their kinds: transport errors to NetworkFailure, non-2xx
// statuses to ProcessorRejected.
func (c *Client) postForm(ctx context.Context, path string, form url.Values) ([]byte, error) {
	log := logging.FromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, domain.NewError(domain.KindNetworkFailure, "build request for "+path, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewError(domain.KindNetworkFailure, "send request to "+path, err)
	}
	defer resp.Body.Close()

	log.Debug("stripe response received",
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, domain.NewError(domain.KindNetworkFailure, "read response from "+path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet := body
		if len(snippet) > 512 {
			snippet = snippet[:512]
		}
		return nil, domain.NewError(domain.KindProcessorRejected,
			fmt.Sprintf("stripe returned status %d on %s: %s", resp.StatusCode, path, snippet), nil)
	}

	return body, nil
}
