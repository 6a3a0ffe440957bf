// Package practicum implements the homework status API client.
package practicum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
)

// DefaultEndpoint is the only endpoint the bot talks to.
const DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

// maxResponseSize caps the body read per request; a status response is a few KiB.
const maxResponseSize = 1 << 20

// ClientConfig contains configuration for the homework API client.
type ClientConfig struct {
	// Endpoint is the full homework_statuses URL
	Endpoint string

	// Token is sent as "Authorization: OAuth <token>"
	Token string

	// Timeout is the HTTP request timeout
	Timeout time.Duration
}

// Client performs the per-cycle status request.
type Client struct {
	config     ClientConfig
	httpClient *http.Client
	logger     logrus.FieldLogger
}

var _ homework.API = (*Client)(nil)

// NewClient creates a new homework API client.
func NewClient(config ClientConfig, logger logrus.FieldLogger) *Client {
	if config.Endpoint == "" {
		config.Endpoint = DefaultEndpoint
	}
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		logger:     logger.WithField("component", "practicum_client"),
	}
}

// FetchUpdates requests homework statuses changed since the given Unix timestamp.
// Every failure is reported as *homework.APIError.
func (c *Client) FetchUpdates(ctx context.Context, since int64) (any, error) {
	body, err := c.doRequest(ctx, since)
	if err != nil {
		return nil, &homework.APIError{Endpoint: c.config.Endpoint, Err: err}
	}
	c.logger.WithField("from_date", since).Debug("Response received from homework API")
	return body, nil
}

func (c *Client) doRequest(ctx context.Context, since int64) (any, error) {
	u, err := url.Parse(c.config.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	q := u.Query()
	q.Set("from_date", strconv.FormatInt(since, 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "OAuth "+c.config.Token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var decoded any
	dec := json.NewDecoder(bytes.NewReader(respBody))
	dec.UseNumber()
	if err := dec.Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return decoded, nil
}
