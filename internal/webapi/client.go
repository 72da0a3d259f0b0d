package webapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/bjoernd/weathercli/internal/logger"
)

// StatusError reports a non-2xx HTTP response.
// It is kept distinct from transport errors so callers can tell
// "the provider answered with an error" apart from "the provider is
// unreachable".
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %s", e.Status)
}

// Client is a minimal GET-and-decode JSON API client with a bounded
// timeout, shared by the geolocation and weather services.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *logger.Logger
}

// NewClient creates a client for the given base URL.
// Every request is bounded by the given timeout.
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Disabled()
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  log.WithComponent("webapi"),
	}
}

// BaseURL returns the endpoint this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetJSON performs a GET request against the base URL with the given query
// parameters and headers, and decodes the JSON response body into out.
//
// Error classification:
//   - transport/network failure: wrapped error
//   - non-2xx status: *StatusError
//   - undecodable body: wrapped error
func (c *Client) GetJSON(params url.Values, headers map[string]string, out interface{}) error {
	defer c.logger.TimeOp("API request to " + c.baseURL)()

	req, err := http.NewRequest(http.MethodGet, c.baseURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if len(params) > 0 {
		req.URL.RawQuery = params.Encode()
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug().
			Str("url", c.baseURL).
			Int("status", resp.StatusCode).
			Msg("Non-2xx response")
		return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", c.baseURL, err)
	}

	return nil
}
