package weather

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bjoernd/weathercli/internal/logger"
	"github.com/bjoernd/weathercli/internal/models"
	"github.com/bjoernd/weathercli/internal/webapi"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BaseURL is the OpenWeatherMap current weather endpoint.
const BaseURL = "https://api.openweathermap.org/data/2.5/weather"

const requestTimeout = 10 * time.Second

// Sentinel errors for conditions the CLI reports with dedicated messages.
var (
	// ErrMissingAPIKey means the service was asked to fetch without a key.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrNotFound means the provider has no weather data for the location.
	ErrNotFound = errors.New("no weather data found")

	// ErrInvalidAPIKey means the provider rejected the configured key.
	ErrInvalidAPIKey = errors.New("invalid API key")
)

// owmResponse is the subset of the OpenWeatherMap payload the report needs.
type owmResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

// Report holds the weather fields the CLI displays.
type Report struct {
	City        string
	Country     string
	Temperature float64
	FeelsLike   float64
	Humidity    int
	Description string
	Icon        string
}

// Text renders the report body, without art.
func (r *Report) Text() string {
	return fmt.Sprintf(`Weather in %s, %s:
Temperature: %v°C (feels like %v°C)
Humidity: %d%%
Conditions: %s`,
		r.City, r.Country, r.Temperature, r.FeelsLike, r.Humidity, r.Description)
}

// Service fetches current weather from OpenWeatherMap.
//
// Unlike the location engine, the weather service is allowed to fail
// loudly: by the time it runs, a Location exists and the failure is
// something the user must act on (bad key, unknown city, network down).
type Service struct {
	api    *webapi.Client
	apiKey string
	logger *logger.Logger
	titler cases.Caser
}

// NewService creates a weather service against the default endpoint.
func NewService(apiKey string, log *logger.Logger) *Service {
	return NewServiceWithBaseURL(BaseURL, apiKey, log)
}

// NewServiceWithBaseURL creates a weather service against a specific
// endpoint. Tests use this to point the service at a local server.
func NewServiceWithBaseURL(baseURL, apiKey string, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Disabled()
	}
	return &Service{
		api:    webapi.NewClient(baseURL, requestTimeout, log),
		apiKey: apiKey,
		logger: log.WithComponent("weather"),
		titler: cases.Title(language.English),
	}
}

// Current fetches current weather for the given location, metric units.
func (s *Service) Current(loc models.Location) (*Report, error) {
	if s.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	params := url.Values{}
	params.Set("appid", s.apiKey)
	params.Set("units", "metric")

	if loc.IsCoordinates() {
		lat, lon, err := loc.Coordinates()
		if err != nil {
			return nil, err
		}
		params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
		params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	} else {
		city, err := loc.CityName()
		if err != nil {
			return nil, err
		}
		params.Set("q", city)
	}

	s.logger.Debug().Str("location", loc.Description()).Msg("Fetching weather data")

	var resp owmResponse
	if err := s.api.GetJSON(params, nil, &resp); err != nil {
		return nil, classify(err)
	}

	if len(resp.Weather) == 0 {
		return nil, fmt.Errorf("malformed weather response: no conditions")
	}

	return &Report{
		City:        resp.Name,
		Country:     resp.Sys.Country,
		Temperature: resp.Main.Temp,
		FeelsLike:   resp.Main.FeelsLike,
		Humidity:    resp.Main.Humidity,
		Description: s.titler.String(resp.Weather[0].Description),
		Icon:        resp.Weather[0].Icon,
	}, nil
}

// classify maps provider status codes onto the sentinel errors the CLI
// knows how to explain. Everything else passes through wrapped.
func classify(err error) error {
	var statusErr *webapi.StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: %v", ErrInvalidAPIKey, err)
		}
	}
	return err
}
