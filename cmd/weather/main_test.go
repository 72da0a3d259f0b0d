package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/bjoernd/weathercli/internal/location"
	"github.com/bjoernd/weathercli/internal/models"
	"github.com/bjoernd/weathercli/internal/weather"
	"github.com/bjoernd/weathercli/internal/webapi"
	"github.com/spf13/cobra"
)

// captureCmd returns a command whose output is collected in a buffer.
func captureCmd() (*cobra.Command, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	return cmd, buf
}

// TestReportResolutionFailure tests the two failure explanations
func TestReportResolutionFailure(t *testing.T) {
	t.Run("with here flag", func(t *testing.T) {
		cmd, buf := captureCmd()

		err := reportResolutionFailure(cmd, true, location.ErrNoLocation)

		if err == nil {
			t.Fatal("expected non-nil error to signal failure")
		}
		if !strings.Contains(buf.String(), "Could not determine current location") {
			t.Errorf("expected current-location message, got: %s", buf.String())
		}
		if !strings.Contains(buf.String(), "--city") {
			t.Errorf("expected --city advice, got: %s", buf.String())
		}
	})

	t.Run("without here flag", func(t *testing.T) {
		cmd, buf := captureCmd()

		err := reportResolutionFailure(cmd, false, location.ErrNoLocation)

		if err == nil {
			t.Fatal("expected non-nil error to signal failure")
		}
		out := buf.String()
		if !strings.Contains(out, "Could not determine location.") {
			t.Errorf("expected resolution failure message, got: %s", out)
		}
		if !strings.Contains(out, "Configure a default city") {
			t.Errorf("expected default-city advice, got: %s", out)
		}
	})
}

// TestReportWeatherError tests error-to-message mapping
func TestReportWeatherError(t *testing.T) {
	cityLoc, _ := models.CityLocation("Atlantis")
	coordLoc, _ := models.CoordinatesLocation(40.7128, -74.006)

	tests := []struct {
		name string
		loc  models.Location
		err  error
		want string
	}{
		{
			name: "city not found",
			loc:  cityLoc,
			err:  weather.ErrNotFound,
			want: "Error: City 'Atlantis' not found.",
		},
		{
			name: "coordinates not found",
			loc:  coordLoc,
			err:  weather.ErrNotFound,
			want: "Error: No weather data found for coordinates 40.71, -74.01.",
		},
		{
			name: "invalid api key",
			loc:  cityLoc,
			err:  weather.ErrInvalidAPIKey,
			want: "Error: Invalid API key.",
		},
		{
			name: "other status",
			loc:  cityLoc,
			err:  &webapi.StatusError{StatusCode: 503, Status: "503 Service Unavailable"},
			want: "Error: API request failed with status 503",
		},
		{
			name: "network failure",
			loc:  cityLoc,
			err:  errors.New("connection refused"),
			want: "Error: Network request failed for city Atlantis - connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, buf := captureCmd()

			if err := reportWeatherError(cmd, tt.loc, tt.err); err == nil {
				t.Fatal("expected non-nil error to signal failure")
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("expected %q in output, got: %s", tt.want, buf.String())
			}
		})
	}
}

// TestReportMissingAPIKey tests the setup guidance
func TestReportMissingAPIKey(t *testing.T) {
	cmd, buf := captureCmd()

	if err := reportMissingAPIKey(cmd); err == nil {
		t.Fatal("expected non-nil error to signal failure")
	}

	out := buf.String()
	for _, want := range []string{
		"OpenWeather API key not found",
		"OPENWEATHER_API_KEY",
		"config.yaml",
		"https://openweathermap.org/api",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got: %s", want, out)
		}
	}
}

// TestRootCommand_Flags tests flag registration
func TestRootCommand_Flags(t *testing.T) {
	cmd := newRootCommand()

	for _, name := range []string{"city", "here", "debug", "config"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("expected --%s flag to be registered", name)
		}
	}
}
