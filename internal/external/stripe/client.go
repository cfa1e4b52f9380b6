package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"PlanSync/internal/domain/gateway"

	"github.com/google/go-querystring/query"
)

const (
	DefaultBaseURL    = "https://api.stripe.com"
	DefaultAPIVersion = "2020-03-02"

	productsPath = "/v1/products"
	pricesPath   = "/v1/prices"
)

type Client struct {
	BaseURL    string
	SecretKey  string
	APIVersion string
	HTTP       *http.Client
}

func New(baseURL, secretKey, apiVersion string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		SecretKey:  secretKey,
		APIVersion: apiVersion,
		HTTP:       httpClient,
	}
}

type productForm struct {
	Name string `url:"name"`
}

type priceForm struct {
	UnitAmount int64  `url:"unit_amount"`
	Currency   string `url:"currency"`
	Interval   string `url:"recurring[interval]"`
	Product    string `url:"product"`
}

type productResp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type priceResp struct {
	ID         string            `json:"id"`
	Product    string            `json:"product"`
	UnitAmount int64             `json:"unit_amount"`
	Currency   string            `json:"currency"`
	Metadata   map[string]string `json:"metadata"`
}

func (c *Client) CreateProduct(ctx context.Context, req gateway.ProductRequest) (gateway.Product, error) {
	form, err := query.Values(productForm{Name: req.Name})
	if err != nil {
		return gateway.Product{}, fmt.Errorf("encode product form: %w", err)
	}

	var out productResp
	if err := c.post(ctx, productsPath, form, &out); err != nil {
		return gateway.Product{}, err
	}

	return gateway.Product{ID: out.ID, Name: out.Name}, nil
}

func (c *Client) CreatePrice(ctx context.Context, req gateway.PriceRequest) (gateway.Price, error) {
	form, err := query.Values(priceForm{
		UnitAmount: req.UnitAmount,
		Currency:   req.Currency,
		Interval:   string(req.Interval),
		Product:    req.ProductID,
	})
	if err != nil {
		return gateway.Price{}, fmt.Errorf("encode price form: %w", err)
	}
	// go-querystring has no map support; metadata uses the bracket form
	for k, v := range req.Metadata {
		form.Set("metadata["+k+"]", v)
	}

	var out priceResp
	if err := c.post(ctx, pricesPath, form, &out); err != nil {
		return gateway.Price{}, err
	}

	return gateway.Price{
		ID:         out.ID,
		ProductID:  out.Product,
		UnitAmount: out.UnitAmount,
		Currency:   out.Currency,
		Metadata:   out.Metadata,
	}, nil
}

func (c *Client) post(ctx context.Context, path string, form url.Values, out any) error {
	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.BaseURL+path,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Authorization", "Bearer "+c.SecretKey)
	httpReq.Header.Set("Stripe-Version", c.APIVersion)

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode/100 != 2 {
		return newAPIError(resp, raw)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode %s response: %v", gateway.ErrProvider, path, err)
	}
	return nil
}

// APIError is a non-2xx answer from the processor.
// Error() is the processor's own message so callers can show it verbatim.
type APIError struct {
	StatusCode int    `json:"-"`
	Type       string `json:"type"`
	Code       string `json:"code"`
	Param      string `json:"param"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return gateway.ErrProvider
}

func newAPIError(resp *http.Response, raw []byte) *APIError {
	var envelope struct {
		Error *APIError `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != nil && envelope.Error.Message != "" {
		envelope.Error.StatusCode = resp.StatusCode
		return envelope.Error
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("provider %s: %s", resp.Status, strings.TrimSpace(string(raw))),
	}
}

// TransportError means the processor could not be reached or the call was cancelled.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() []error {
	return []error{gateway.ErrProvider, e.Err}
}
