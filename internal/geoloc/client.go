package geoloc

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bjoernd/weathercli/internal/logger"
	"github.com/bjoernd/weathercli/internal/webapi"
)

const (
	// BaseURL is the IP geolocation endpoint. It resolves the caller's
	// public IP to approximate coordinates, no API key required.
	BaseURL = "https://ipapi.co/json/"

	userAgent      = "weather-cli/1.0"
	requestTimeout = 10 * time.Second
)

// coordinate is a float64 that tolerates being delivered as either a JSON
// number or a numeric string. The provider has been observed to do both.
// A null or absent value leaves Set false.
type coordinate struct {
	Value float64
	Set   bool
}

func (c *coordinate) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("malformed coordinate %q: %w", s, err)
	}
	c.Value = v
	c.Set = true
	return nil
}

// payload is the provider's JSON response. On logical failure the provider
// returns error/reason instead of data.
type payload struct {
	Error       bool       `json:"error"`
	Reason      string     `json:"reason"`
	Latitude    coordinate `json:"latitude"`
	Longitude   coordinate `json:"longitude"`
	City        string     `json:"city"`
	Region      string     `json:"region"`
	CountryName string     `json:"country_name"`
	Country     string     `json:"country"`
	Timezone    string     `json:"timezone"`
}

// Client looks up the caller's approximate location from its public IP.
//
// This is the network fallback behind native positioning: every failure —
// transport, non-2xx status, provider-reported error, missing coordinates —
// is collapsed to "not available". Nothing here ever reaches the user as
// an error.
type Client struct {
	api    *webapi.Client
	logger *logger.Logger
}

// NewClient creates a client against the default endpoint.
func NewClient(log *logger.Logger) *Client {
	return NewClientWithBaseURL(BaseURL, log)
}

// NewClientWithBaseURL creates a client against a specific endpoint.
// Tests use this to point the client at a local server.
func NewClientWithBaseURL(baseURL string, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Disabled()
	}
	return &Client{
		api:    webapi.NewClient(baseURL, requestTimeout, log),
		logger: log.WithComponent("geoloc"),
	}
}

// fetch performs the lookup request and decodes the provider payload.
func (c *Client) fetch() (*payload, error) {
	var p payload
	headers := map[string]string{"User-Agent": userAgent}
	if err := c.api.GetJSON(nil, headers, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CurrentCoordinates resolves the caller's coordinates from its IP.
// ok is false when the location could not be determined for any reason.
func (c *Client) CurrentCoordinates() (lat, lon float64, ok bool) {
	p, err := c.fetch()
	if err != nil {
		c.logger.Debug().Err(err).Msg("IP geolocation request failed")
		return 0, 0, false
	}

	if p.Error {
		reason := p.Reason
		if reason == "" {
			reason = "Unknown error"
		}
		c.logger.Warn().Str("reason", reason).Msg("IP location service error")
		return 0, 0, false
	}

	if !p.Latitude.Set || !p.Longitude.Set {
		c.logger.Debug().Msg("IP geolocation response missing coordinates")
		return 0, 0, false
	}

	return p.Latitude.Value, p.Longitude.Value, true
}

// DetailedInfo returns descriptive location fields for display.
// Missing fields default to "Unknown". Any failure yields nil, never an
// error.
func (c *Client) DetailedInfo() map[string]string {
	p, err := c.fetch()
	if err != nil {
		c.logger.Debug().Err(err).Msg("IP geolocation info request failed")
		return nil
	}
	if p.Error {
		return nil
	}

	return map[string]string{
		"city":         orUnknown(p.City),
		"region":       orUnknown(p.Region),
		"country":      orUnknown(p.CountryName),
		"country_code": orUnknown(p.Country),
		"timezone":     orUnknown(p.Timezone),
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
