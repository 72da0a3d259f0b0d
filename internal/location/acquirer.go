// Package location implements the location resolution engine: automatic
// coordinate acquisition with graceful degradation across sources, and the
// user-intent priority chain that produces the single Location a weather
// lookup runs against.
package location

import (
	"github.com/bjoernd/weathercli/internal/logger"
	"github.com/bjoernd/weathercli/internal/models"
)

// NativeSource yields a coordinate fix from the OS positioning service,
// or reports absence. Satisfied by native.Provider.
type NativeSource interface {
	Coordinates() (lat, lon float64, ok bool)
}

// IPSource yields a coordinate estimate from the caller's public IP,
// or reports absence. Satisfied by geoloc.Client.
type IPSource interface {
	CurrentCoordinates() (lat, lon float64, ok bool)
}

// Acquirer runs the two-layer automatic fallback:
//  1. native OS positioning (higher accuracy, no network use)
//  2. IP geolocation
//
// The layers run strictly in sequence; the network is never touched when
// the native layer delivers. Acquirer adds no retries of its own — each
// layer's internal bounded rechecks are all the retrying that happens.
type Acquirer struct {
	native NativeSource
	ip     IPSource
	logger *logger.Logger
}

// NewAcquirer creates an acquirer over the two coordinate sources.
func NewAcquirer(native NativeSource, ip IPSource, log *logger.Logger) *Acquirer {
	if log == nil {
		log = logger.Disabled()
	}
	return &Acquirer{
		native: native,
		ip:     ip,
		logger: log.WithComponent("acquirer"),
	}
}

// Acquire attempts to determine the current coordinates.
// Both sources exhausting is a normal outcome, reported as Unavailable,
// never as an error.
func (a *Acquirer) Acquire() models.AcquisitionResult {
	a.logger.Debug().Msg("Attempting native system location")
	if lat, lon, ok := a.native.Coordinates(); ok {
		a.logger.Info().Float64("lat", lat).Float64("lon", lon).Msg("Using native location")
		return models.Acquired(lat, lon)
	}

	a.logger.Debug().Msg("Falling back to IP geolocation")
	if lat, lon, ok := a.ip.CurrentCoordinates(); ok {
		a.logger.Info().Float64("lat", lat).Float64("lon", lon).Msg("Using IP geolocation")
		return models.Acquired(lat, lon)
	}

	a.logger.Warn().Msg("All location methods failed")
	return models.Unavailable()
}
