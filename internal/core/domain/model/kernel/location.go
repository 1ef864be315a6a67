package kernel

import (
	"fmt"

	"foodbridge/internal/pkg/errs"
)

// ErrLocationIsNotConstructed is returned when validating a zero-value
// Location that was not created via NewLocation.
var ErrLocationIsNotConstructed = errs.NewValidationError("location must be created via NewLocation")

const (
	minLatitude  = -90.0
	maxLatitude  = 90.0
	minLongitude = -180.0
	maxLongitude = 180.0
)

// Location is a value object holding a WGS84 geocoordinate for a
// donation pickup point. It is immutable; the zero value is invalid so a
// missing coordinate is represented as *Location(nil), never as (0, 0).
type Location struct {
	latitude  float64
	longitude float64

	isConstructed bool
}

// NewLocation creates a Location, validating that latitude is within
// [-90, 90] and longitude within [-180, 180].
func NewLocation(latitude, longitude float64) (Location, error) {
	if latitude < minLatitude || latitude > maxLatitude {
		return Location{}, errs.NewValidationErrorWithCause("latitude",
			fmt.Errorf("%f is not between %.0f and %.0f", latitude, minLatitude, maxLatitude))
	}
	if longitude < minLongitude || longitude > maxLongitude {
		return Location{}, errs.NewValidationErrorWithCause("longitude",
			fmt.Errorf("%f is not between %.0f and %.0f", longitude, minLongitude, maxLongitude))
	}

	return Location{
		latitude:      latitude,
		longitude:     longitude,
		isConstructed: true,
	}, nil
}

// Latitude returns the latitude in decimal degrees.
func (l Location) Latitude() float64 {
	return l.latitude
}

// Longitude returns the longitude in decimal degrees.
func (l Location) Longitude() float64 {
	return l.longitude
}

// IsEqual compares two locations by coordinates.
func (l Location) IsEqual(other Location) bool {
	return l.latitude == other.latitude && l.longitude == other.longitude
}

// Validate returns ErrLocationIsNotConstructed for a zero-value Location.
func (l Location) Validate() error {
	if !l.isConstructed {
		return ErrLocationIsNotConstructed
	}
	return nil
}
