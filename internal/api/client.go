// Package api is the HTTP client for the finance backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Veraticus/the-income-must-flow/internal/model"
	"golang.org/x/oauth2"
)

// AddIncomePath is the endpoint that creates an income record.
const AddIncomePath = "/income/add_income"

// Client talks to the finance backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets a request timeout. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// NewClient creates a client for the backend at baseURL, e.g. http://10.0.0.5:8000.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend root the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// AddIncome posts a new income and returns the record the backend created.
func (c *Client) AddIncome(ctx context.Context, token string, income model.IncomeSubmission) (*model.IncomeRecord, error) {
	body, err := json.Marshal(income)
	if err != nil {
		return nil, fmt.Errorf("failed to encode income: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+AddIncomePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}).SetAuthHeader(req)

	slog.Debug("Posting income",
		"url", req.URL.String(),
		"date", income.Date,
		"category", income.IncomeCategory)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send income: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newError(resp.StatusCode, respBody)
	}

	record := &model.IncomeRecord{}
	if err := json.Unmarshal(respBody, record); err != nil {
		// Keep whatever the backend sent; the store only needs the raw body.
		slog.Warn("Income response is not a record object", "error", err)
		record = &model.IncomeRecord{}
	}
	record.Raw = append(json.RawMessage(nil), respBody...)

	return record, nil
}
