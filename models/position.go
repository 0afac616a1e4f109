package models

import (
	"fmt"
	"time"
)

// PositionOptions mirrors the options of a browser position request
type PositionOptions struct {
	EnableHighAccuracy bool
	Timeout            time.Duration
	MaximumAge         time.Duration
}

// DefaultPositionOptions asks for a fresh, high accuracy fix within 20 seconds
func DefaultPositionOptions() PositionOptions {
	return PositionOptions{
		EnableHighAccuracy: true,
		Timeout:            20 * time.Second,
		MaximumAge:         0,
	}
}

// TimeoutMillis returns the timeout in the unit the browser expects
func (o PositionOptions) TimeoutMillis() int64 {
	return o.Timeout.Milliseconds()
}

// MaximumAgeMillis returns the maximum cached position age in milliseconds
func (o PositionOptions) MaximumAgeMillis() int64 {
	return o.MaximumAge.Milliseconds()
}

// Position is a device fix in decimal degrees, accuracy in meters
type Position struct {
	Latitude  float64
	Longitude float64
	Accuracy  float64
}

// PositionErrorCode follows the GeolocationPositionError codes
type PositionErrorCode int

const (
	PositionErrorUnknown     PositionErrorCode = 0
	PositionPermissionDenied PositionErrorCode = 1
	PositionUnavailable      PositionErrorCode = 2
	PositionTimeout          PositionErrorCode = 3
)

func (c PositionErrorCode) String() string {
	switch c {
	case PositionPermissionDenied:
		return "PERMISSION_DENIED"
	case PositionUnavailable:
		return "POSITION_UNAVAILABLE"
	case PositionTimeout:
		return "TIMEOUT"
	default:
		return "UNKNOWN"
	}
}

// PositionError is returned when the device could not produce a fix
type PositionError struct {
	Code    PositionErrorCode
	Message string
}

func (e *PositionError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("position error: %s", e.Code)
	}
	return fmt.Sprintf("position error: %s: %s", e.Code, e.Message)
}
