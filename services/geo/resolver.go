package geo

import (
	"context"
	"errors"

	"wrist_surgery_app_go/models"
	"wrist_surgery_app_go/services/metrics"

	"go.uber.org/zap"
)

// Resolver turns whatever the visitor's device and network reveal into a
// human readable location. Stages run strictly one after the other:
//
//	device position -> reverse geocode (else raw coordinates)
//	device error    -> IP lookup (else placeholder)
//	no capability   -> placeholder
type Resolver struct {
	geocoder ReverseGeocoder
	locator  IPLocator
	options  models.PositionOptions
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

func NewResolver(geocoder ReverseGeocoder, locator IPLocator, opts models.PositionOptions, m *metrics.Metrics, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		geocoder: geocoder,
		locator:  locator,
		options:  opts,
		metrics:  m,
		logger:   logger,
	}
}

// Options returns the position request options the device should use
func (r *Resolver) Options() models.PositionOptions {
	return r.options
}

// Resolve never fails: every error degrades to a less precise value.
func (r *Resolver) Resolve(ctx context.Context, device Positioner, clientIP string) string {
	if device == nil || !device.Supported() {
		r.logger.Warn("geolocation is not supported by the visitor's browser")
		r.metrics.ObserveLocation(metrics.StageDevice, metrics.OutcomeNoSupport)
		return LocationUnavailable
	}

	pos, err := device.CurrentPosition(ctx, r.options)
	if err != nil {
		r.logPositionError(err)
		r.metrics.ObserveLocation(metrics.StageDevice, metrics.OutcomeFallback)
		return r.resolveByIP(ctx, clientIP)
	}

	r.logger.Debug("device coordinates received",
		zap.Float64("lat", pos.Latitude),
		zap.Float64("lng", pos.Longitude),
		zap.Float64("accuracy_m", pos.Accuracy))
	r.metrics.ObserveLocation(metrics.StageDevice, metrics.OutcomeOK)
	return r.resolveByCoordinates(ctx, pos)
}

// resolveByCoordinates reverse geocodes a fix, falling back to the raw pair
func (r *Resolver) resolveByCoordinates(ctx context.Context, pos models.Position) string {
	addr, err := r.geocoder.Reverse(ctx, pos.Latitude, pos.Longitude)
	if err != nil {
		r.logger.Warn("reverse geocoding failed", zap.Error(err))
		r.metrics.ObserveLocation(metrics.StageReverse, metrics.OutcomeFallback)
		return FormatCoordinates(pos.Latitude, pos.Longitude)
	}

	location := FormatAddress(addr)
	r.logger.Debug("precise address resolved", zap.String("location", location))
	r.metrics.ObserveLocation(metrics.StageReverse, metrics.OutcomeOK)
	return location
}

// resolveByIP approximates the location from the client address
func (r *Resolver) resolveByIP(ctx context.Context, clientIP string) string {
	loc, err := r.locator.Locate(ctx, clientIP)
	if err != nil {
		r.logger.Warn("ip based location lookup failed", zap.String("ip", clientIP), zap.Error(err))
		r.metrics.ObserveLocation(metrics.StageIP, metrics.OutcomeFailed)
		return LocationUnavailable
	}

	location := FormatIPLocation(loc)
	r.logger.Debug("ip based location resolved", zap.String("location", location))
	r.metrics.ObserveLocation(metrics.StageIP, metrics.OutcomeOK)
	return location
}

// logPositionError only varies the diagnostic; every code falls back to IP.
func (r *Resolver) logPositionError(err error) {
	var perr *models.PositionError
	if !errors.As(err, &perr) {
		r.logger.Info("unable to fetch device location, trying alternate detection", zap.Error(err))
		return
	}
	switch perr.Code {
	case models.PositionPermissionDenied:
		r.logger.Info("location permission denied, using ip based location")
	case models.PositionUnavailable:
		r.logger.Info("device location unavailable, trying alternate detection")
	case models.PositionTimeout:
		r.logger.Info("device location request timed out, trying alternate detection")
	default:
		r.logger.Info("unable to fetch device location, trying alternate detection", zap.String("message", perr.Message))
	}
}
