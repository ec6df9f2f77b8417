package currency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// RateSource provides an exchange-rate table for a base currency. The table
// maps currency code to the multiplicative rate from the base.
type RateSource interface {
	FetchRates(ctx context.Context, base string) (map[string]float64, error)
}

var (
	ErrMissingAPIKey = errors.New("rates api key not configured")
	ErrBadResponse   = errors.New("rates api returned non-success result")
)

// Client fetches live rate tables from the exchange-rate API. Endpoint shape:
// GET {base_url}/{api_key}/latest/{base} returning
// {"result":"success","conversion_rates":{"USD":1,...}}.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

type ClientConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

func NewClient(cfg ClientConfig, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type latestResponse struct {
	Result          string             `json:"result"`
	ErrorType       string             `json:"error-type"`
	BaseCode        string             `json:"base_code"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

func (c *Client) FetchRates(ctx context.Context, base string) (map[string]float64, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	url := fmt.Sprintf("%s/%s/latest/%s", c.baseURL, c.apiKey, base)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create rates request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rates request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rates api returned status %d", resp.StatusCode)
	}

	var body latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode rates response: %w", err)
	}

	if body.Result != "success" {
		c.logger.Warn("rates api non-success result", "result", body.Result, "error_type", body.ErrorType, "base", base)
		return nil, ErrBadResponse
	}

	if len(body.ConversionRates) == 0 {
		return nil, ErrBadResponse
	}

	c.logger.Debug("fetched live rate table", "base", base, "currencies", len(body.ConversionRates))

	return body.ConversionRates, nil
}
