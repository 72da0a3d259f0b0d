package main

import (
	"errors"
	"os"

	"github.com/bjoernd/weathercli/internal/config"
	"github.com/bjoernd/weathercli/internal/geoloc"
	"github.com/bjoernd/weathercli/internal/location"
	"github.com/bjoernd/weathercli/internal/logger"
	"github.com/bjoernd/weathercli/internal/models"
	"github.com/bjoernd/weathercli/internal/native"
	"github.com/bjoernd/weathercli/internal/weather"
	"github.com/bjoernd/weathercli/internal/webapi"
	"github.com/spf13/cobra"
)

// debugLogFile receives the verbose log when --debug is set.
const debugLogFile = "weather_debug.log"

// errAborted signals a failure whose explanation was already printed.
var errAborted = errors.New("aborted")

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		city       string
		here       bool
		debug      bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "weather",
		Short: "Get weather information for a city or current location",
		Long: `Get current weather for a city or for wherever you are.

The location is resolved in priority order: --here, then --city, then the
default city from config.yaml, then automatic detection (native positioning
with IP geolocation fallback).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, city, here, debug, configPath)
		},
	}

	cmd.Flags().StringVar(&city, "city", "", "City name to get weather for (uses config default if not provided)")
	cmd.Flags().BoolVar(&here, "here", false, "Use current location")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug mode with verbose logging")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default config.yaml)")

	return cmd
}

func run(cmd *cobra.Command, city string, here, debug bool, configPath string) error {
	log := setupLogger(debug)

	stopTimer := log.TimeOp("configuration initialization")
	cfg, err := config.Load(configPath)
	stopTimer()
	if err != nil {
		cmd.Printf("Error: %v\n", err)
		return errAborted
	}

	apiKey := cfg.APIKey()
	log.Debug().Bool("api_key_configured", apiKey != "").Msg("Configuration loaded")

	ipClient := geoloc.NewClient(log)
	acquirer := location.NewAcquirer(native.NewProvider(log), ipClient, log)
	resolver := location.NewResolver(cfg, acquirer, log)

	stopTimer = log.TimeOp("location resolution")
	loc, err := resolver.Resolve(here, city)
	stopTimer()
	if err != nil {
		return reportResolutionFailure(cmd, here, err)
	}
	log.Debug().Str("location", loc.Description()).Msg("Location resolved")

	if debug && loc.IsCoordinates() {
		if info := ipClient.DetailedInfo(); info != nil {
			log.Debug().
				Str("city", info["city"]).
				Str("region", info["region"]).
				Str("country", info["country"]).
				Str("timezone", info["timezone"]).
				Msg("IP location details")
		}
	}

	if apiKey == "" {
		return reportMissingAPIKey(cmd)
	}

	svc := weather.NewService(apiKey, log)

	stopTimer = log.TimeOp("weather lookup for " + loc.Description())
	report, err := svc.Current(loc)
	stopTimer()
	if err != nil {
		return reportWeatherError(cmd, loc, err)
	}

	cmd.Println(weather.FormatReport(report))
	return nil
}

// setupLogger builds the logger: silent by default, verbose console and
// file output in debug mode.
func setupLogger(debug bool) *logger.Logger {
	if !debug {
		return logger.Disabled()
	}
	return logger.New(logger.Config{
		Level:      "debug",
		Pretty:     true,
		OutputFile: debugLogFile,
	})
}

// reportResolutionFailure explains a failed location resolution. The advice
// differs: with --here the user asked for automatic location and should
// reach for --city; otherwise they gave us nothing and a default city would
// also help.
func reportResolutionFailure(cmd *cobra.Command, here bool, err error) error {
	if !errors.Is(err, location.ErrNoLocation) {
		cmd.Printf("Error: %v\n", err)
		return errAborted
	}

	if here {
		cmd.Println("Error: Could not determine current location. Try specifying a city with --city instead.")
		return errAborted
	}

	cmd.Println("Error: Could not determine location.")
	cmd.Println("Either:")
	cmd.Println("1. Use --city 'City Name' to specify a city")
	cmd.Println("2. Configure a default city in config.yaml:")
	cmd.Println("   defaults:")
	cmd.Println("     city: 'Your City'")
	return errAborted
}

func reportMissingAPIKey(cmd *cobra.Command) error {
	cmd.Println("Error: OpenWeather API key not found.")
	cmd.Println("Please set it in one of these ways:")
	cmd.Println("1. Environment variable: export OPENWEATHER_API_KEY=your_key")
	cmd.Println("2. Config file (config.yaml):")
	cmd.Println("   api:")
	cmd.Println("     openweather:")
	cmd.Println("       key: your_api_key_here")
	cmd.Println("")
	cmd.Println("Get your free API key from: https://openweathermap.org/api")
	return errAborted
}

func reportWeatherError(cmd *cobra.Command, loc models.Location, err error) error {
	switch {
	case errors.Is(err, weather.ErrMissingAPIKey):
		return reportMissingAPIKey(cmd)

	case errors.Is(err, weather.ErrNotFound):
		if loc.IsCoordinates() {
			lat, lon, _ := loc.Coordinates()
			cmd.Printf("Error: No weather data found for coordinates %.2f, %.2f.\n", lat, lon)
		} else {
			name, _ := loc.CityName()
			cmd.Printf("Error: City '%s' not found.\n", name)
		}

	case errors.Is(err, weather.ErrInvalidAPIKey):
		cmd.Println("Error: Invalid API key.")

	default:
		var statusErr *webapi.StatusError
		if errors.As(err, &statusErr) {
			cmd.Printf("Error: API request failed with status %d\n", statusErr.StatusCode)
		} else {
			cmd.Printf("Error: Network request failed for %s - %v\n", loc.Description(), err)
		}
	}
	return errAborted
}
