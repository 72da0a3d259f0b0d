package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is shared by the constructors below.
// A single validator instance is safe for concurrent use and avoids
// re-parsing the tag rules on every call.
var validate = validator.New()

// Location represents a place to look up weather for.
// It is a closed sum type with exactly two variants:
//   - a city name, supplied by the user or configuration
//   - a latitude/longitude pair, acquired automatically
//
// A Location is always exactly one of the two. The zero value is not a
// valid Location; use CityLocation or CoordinatesLocation to construct one.
type Location struct {
	city   string
	lat    float64
	lon    float64
	coords bool
}

// CityLocation creates a city-based location.
// The name must be non-empty; an empty name is a programming error at the
// call site, not a degraded condition.
func CityLocation(name string) (Location, error) {
	if name == "" {
		return Location{}, fmt.Errorf("city name must not be empty")
	}
	return Location{city: name}, nil
}

// CoordinatesLocation creates a coordinate-based location.
// Latitude must be within [-90, 90] and longitude within [-180, 180];
// values outside those ranges violate the Location invariant and are
// rejected loudly.
func CoordinatesLocation(lat, lon float64) (Location, error) {
	if err := validate.Var(lat, "gte=-90,lte=90"); err != nil {
		return Location{}, fmt.Errorf("latitude %v out of range [-90, 90]", lat)
	}
	if err := validate.Var(lon, "gte=-180,lte=180"); err != nil {
		return Location{}, fmt.Errorf("longitude %v out of range [-180, 180]", lon)
	}
	return Location{lat: lat, lon: lon, coords: true}, nil
}

// IsCoordinates reports whether the location is coordinate-based.
func (l Location) IsCoordinates() bool {
	return l.coords
}

// CityName returns the city name for a city-based location.
// Calling it on a coordinate-based location is an error.
func (l Location) CityName() (string, error) {
	if l.coords {
		return "", fmt.Errorf("location is not city-based")
	}
	return l.city, nil
}

// Coordinates returns the latitude and longitude for a coordinate-based
// location. Calling it on a city-based location is an error.
func (l Location) Coordinates() (float64, float64, error) {
	if !l.coords {
		return 0, 0, fmt.Errorf("location is not coordinate-based")
	}
	return l.lat, l.lon, nil
}

// Description returns the display form of the location:
// "city {name}" or "coordinates {lat}, {lon}" with two decimal places.
func (l Location) Description() string {
	if l.coords {
		return fmt.Sprintf("coordinates %.2f, %.2f", l.lat, l.lon)
	}
	return fmt.Sprintf("city %s", l.city)
}

// AcquisitionResult is the outcome of an automatic location acquisition
// attempt. Absence of a signal is a normal outcome, not an error, so the
// result carries an explicit "unavailable" state instead of an error value.
type AcquisitionResult struct {
	lat       float64
	lon       float64
	available bool
}

// Acquired creates a result carrying a coordinate fix.
func Acquired(lat, lon float64) AcquisitionResult {
	return AcquisitionResult{lat: lat, lon: lon, available: true}
}

// Unavailable creates a result signalling that no source produced a fix.
func Unavailable() AcquisitionResult {
	return AcquisitionResult{}
}

// Available reports whether the acquisition produced coordinates.
func (r AcquisitionResult) Available() bool {
	return r.available
}

// Coordinates returns the acquired latitude and longitude.
// Only meaningful when Available is true.
func (r AcquisitionResult) Coordinates() (float64, float64) {
	return r.lat, r.lon
}
