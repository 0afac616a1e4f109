package geo

import "errors"

// ErrLookupFailed is returned when a geocoding service gave no usable answer
var ErrLookupFailed = errors.New("location lookup failed")
