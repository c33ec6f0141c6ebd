// Package api is the thin HTTP client for the remote storefront API. The
// API is treated as an opaque service; only the request/response contracts
// documented here are assumed.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	errx "github.com/storefront-poc-v1/client/internal/core/error"
	"github.com/storefront-poc-v1/client/internal/shop/model"
	logx "github.com/storefront-poc-v1/client/pkg/logger"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(cfg model.APIConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

// HealthStatus is the liveness report for the remote API.
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Health probes the liveness endpoint. Failures are reported inside the
// returned value rather than as an error; an unreachable API is a state to
// display, not a fault to propagate.
func (c *Client) Health(ctx context.Context) HealthStatus {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return HealthStatus{Status: "error", Message: fmt.Sprintf("error connecting to API: %v", err)}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return HealthStatus{Status: "error", Message: fmt.Sprintf("error connecting to API: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return HealthStatus{Status: "ok", Message: "API is running"}
	}
	return HealthStatus{Status: "error", Message: fmt.Sprintf("API returned status: %d", resp.StatusCode)}
}

type loginResponse struct {
	Status string `json:"status"`
	Data   struct {
		User *model.User `json:"user"`
	} `json:"data"`
}

// CheckEmail posts the email to the login endpoint and reports whether a
// matching user exists. An absent user is a negative result, not an error;
// the API signals it inside a 2xx body, so only transport failures and
// non-2xx statuses surface as errors.
func (c *Client) CheckEmail(ctx context.Context, email string) (*model.User, bool, error) {
	body, err := json.Marshal(map[string]string{"email": email})
	if err != nil {
		return nil, false, err
	}

	resp, err := c.post(ctx, "/auth/login", body)
	if err != nil {
		return nil, false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, false, errx.WrapStatus(resp.StatusCode, "could not verify the email")
	}

	var payload loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, false, errx.WrapParse(err, "could not verify the email")
	}

	if payload.Status != "success" || payload.Data.User == nil {
		return nil, false, nil
	}
	return payload.Data.User, true, nil
}

// listEnvelope covers the two wrapped shapes the listing endpoint may use.
type listEnvelope struct {
	Products []model.Product `json:"products"`
	Data     []model.Product `json:"data"`
}

// ListProducts fetches the product listing and normalizes the three
// accepted response shapes: a bare array, {"products": [...]} or
// {"data": [...]}. Any other shape yields an empty list without error.
func (c *Client) ListProducts(ctx context.Context) ([]model.Product, error) {
	resp, err := c.get(ctx, "/products")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errx.WrapStatus(resp.StatusCode, "could not load the products")
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errx.WrapNetwork(err, "could not load the products")
	}

	if products, ok := normalizeListing(raw); ok {
		return products, nil
	}
	logx.Warn().Msg("product listing had an unexpected shape, treating as empty")
	return []model.Product{}, nil
}

func normalizeListing(raw []byte) ([]model.Product, bool) {
	var bare []model.Product
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare, true
	}

	var envelope listEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, false
	}
	if envelope.Products != nil {
		return envelope.Products, true
	}
	if envelope.Data != nil {
		return envelope.Data, true
	}
	return nil, false
}

// GetProduct fetches one product's full record. The endpoint answers either
// {"data": {...}} or the bare record.
func (c *Client) GetProduct(ctx context.Context, id string) (*model.ProductDetails, error) {
	resp, err := c.get(ctx, "/products/"+id)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errx.WrapStatus(resp.StatusCode, "could not load the product details")
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errx.WrapNetwork(err, "could not load the product details")
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		raw = envelope.Data
	}

	var details model.ProductDetails
	if err := json.Unmarshal(raw, &details); err != nil {
		return nil, errx.WrapParse(err, "could not load the product details")
	}
	return &details, nil
}

// CreateProduct posts a new product. Any 2xx response counts as created.
func (c *Client) CreateProduct(ctx context.Context, product model.NewProduct) error {
	body, err := json.Marshal(product)
	if err != nil {
		return err
	}

	resp, err := c.post(ctx, "/products", body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errx.WrapStatus(resp.StatusCode, "could not create the product")
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, errx.WrapNetwork(err, "could not reach the API")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errx.WrapNetwork(err, "could not reach the API")
	}
	return resp, nil
}

func (c *Client) post(ctx context.Context, path string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, errx.WrapNetwork(err, "could not reach the API")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errx.WrapNetwork(err, "could not reach the API")
	}
	return resp, nil
}
