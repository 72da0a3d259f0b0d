package location

import (
	"errors"
	"fmt"

	"github.com/bjoernd/weathercli/internal/logger"
	"github.com/bjoernd/weathercli/internal/models"
)

// ErrNoLocation is the single user-visible failure of the resolution
// engine: no priority branch produced a Location. It deliberately carries
// no transport detail — provider faults are absorbed well before this
// point.
var ErrNoLocation = errors.New("could not determine location")

// DefaultCitySource exposes the configured default city, empty when none
// is set. Satisfied by config.Config.
type DefaultCitySource interface {
	DefaultCity() string
}

// CoordinateAcquirer runs the automatic acquisition chain.
// Satisfied by Acquirer.
type CoordinateAcquirer interface {
	Acquire() models.AcquisitionResult
}

// Resolver applies the user-intent priority chain and produces the one
// canonical Location for this invocation:
//
//	explicit "here" flag > explicit city > configured default > automatic
//
// It is a pure decision procedure over its three inputs plus the acquirer,
// which is consulted only by the first and last branches.
type Resolver struct {
	config   DefaultCitySource
	acquirer CoordinateAcquirer
	logger   *logger.Logger
}

// NewResolver creates a resolver over the config and the acquirer.
func NewResolver(cfg DefaultCitySource, acq CoordinateAcquirer, log *logger.Logger) *Resolver {
	if log == nil {
		log = logger.Disabled()
	}
	return &Resolver{
		config:   cfg,
		acquirer: acq,
		logger:   log.WithComponent("resolver"),
	}
}

// Resolve produces the Location for the given inputs, or ErrNoLocation.
//
// When here is true the user's intent is authoritative: a failed
// acquisition fails the resolution outright, with no fallback to city or
// default.
func (r *Resolver) Resolve(here bool, city string) (models.Location, error) {
	if here {
		r.logger.Debug().Msg("Explicit current-location request")
		return r.acquired()
	}

	if city != "" {
		r.logger.Debug().Str("city", city).Msg("Using city from command line")
		return models.CityLocation(city)
	}

	if defaultCity := r.config.DefaultCity(); defaultCity != "" {
		r.logger.Debug().Str("city", defaultCity).Msg("Using default city from config")
		return models.CityLocation(defaultCity)
	}

	r.logger.Debug().Msg("No location options provided, acquiring current location")
	return r.acquired()
}

// acquired delegates to the acquirer and wraps a successful result.
func (r *Resolver) acquired() (models.Location, error) {
	result := r.acquirer.Acquire()
	if !result.Available() {
		return models.Location{}, ErrNoLocation
	}

	lat, lon := result.Coordinates()
	loc, err := models.CoordinatesLocation(lat, lon)
	if err != nil {
		// A source handed back out-of-range coordinates. That is a bug
		// in the source, not a degraded condition, so it surfaces.
		return models.Location{}, fmt.Errorf("acquired invalid coordinates: %w", err)
	}
	return loc, nil
}
