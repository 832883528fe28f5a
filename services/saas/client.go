package saas

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// HTTPClient talks to the laundry platform over HTTP. It is constructed with
// an explicit http.Client and token source rather than package-level state.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  *zap.Logger
}

// NewHTTPClient builds a platform client. A nil httpClient falls back to a
// client with a sane timeout.
func NewHTTPClient(baseURL string, tokens TokenSource, httpClient *http.Client, logger *zap.Logger) *HTTPClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		tokens:  tokens,
		logger:  logger,
	}
}

// envelope is the platform's uniform response wrapper: a success flag plus an
// optional error string, with the payload inlined alongside.
type envelope struct {
	Success bool   `json:"Success"`
	Error   string `json:"Error"`
}

func (c *HTTPClient) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request for %s: %w", path, err)
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("failed to obtain API token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{Path: path, Reason: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RequestError{Path: path, Status: resp.StatusCode, Reason: err.Error()}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RequestError{Path: path, Status: resp.StatusCode, Reason: string(raw)}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Error != "" {
		c.logger.Debug("platform reported error", zap.String("path", path), zap.String("error", env.Error))
		return classifyError(path, resp.StatusCode, env.Error)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &RequestError{Path: path, Status: resp.StatusCode, Reason: "malformed response: " + err.Error()}
		}
	}
	return nil
}

// CreateCustomer registers a new customer on the platform.
func (c *HTTPClient) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*RemoteCustomer, error) {
	var customer RemoteCustomer
	if err := c.post(ctx, "/addCustomer", req, &customer); err != nil {
		return nil, err
	}
	if customer.ID == "" {
		return nil, &RequestError{Path: "/addCustomer", Reason: "response missing customer id"}
	}
	return &customer, nil
}

// GetCustomer fetches a customer profile by email.
func (c *HTTPClient) GetCustomer(ctx context.Context, email string) (*RemoteCustomer, error) {
	var customer RemoteCustomer
	body := map[string]string{"customerEmail": email}
	if err := c.post(ctx, "/getCustomer", body, &customer); err != nil {
		return nil, err
	}
	if customer.ID == "" {
		return nil, ErrCustomerNotFound
	}
	return &customer, nil
}

// LoginCustomer attempts a platform sign-in. The returning-customer path
// calls this with a placeholder password purely to learn whether the email is
// registered; ErrWrongPassword is therefore a positive existence signal.
func (c *HTTPClient) LoginCustomer(ctx context.Context, email, password string) (*RemoteCustomer, error) {
	var customer RemoteCustomer
	body := map[string]string{"customerEmail": email, "customerPassword": password}
	if err := c.post(ctx, "/loginCustomer", body, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// CreateOrder places one order on the platform.
func (c *HTTPClient) CreateOrder(ctx context.Context, req CreateOrderRequest) (*RemoteOrder, error) {
	var order RemoteOrder
	if err := c.post(ctx, "/addOrder", req, &order); err != nil {
		return nil, err
	}
	if order.ID == "" {
		return nil, &RequestError{Path: "/addOrder", Reason: "response missing order id"}
	}
	return &order, nil
}

// Forward relays an arbitrary request to the platform with the bearer token
// injected server-side, so the key never reaches the browser.
func (c *HTTPClient) Forward(ctx context.Context, method, path string, body []byte) (int, []byte, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to obtain API token: %w", err)
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build proxy request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, &RequestError{Path: path, Reason: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, &RequestError{Path: path, Status: resp.StatusCode, Reason: err.Error()}
	}
	return resp.StatusCode, raw, nil
}
