package geo

import (
	"context"

	"wrist_surgery_app_go/models"
)

// Positioner is the device position capability of the visitor
type Positioner interface {
	Supported() bool
	CurrentPosition(ctx context.Context, opts models.PositionOptions) (models.Position, error)
}

// PositionReport is what the page posts once the browser's position request
// has settled. Coordinates are pointers so that 0,0 is distinguishable from
// "no fix".
type PositionReport struct {
	Supported    bool     `json:"supported"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Accuracy     float64  `json:"accuracy,omitempty"`
	ErrorCode    int      `json:"error_code,omitempty"`
	ErrorMessage string   `json:"error_message,omitempty"`
}

// ReportedPosition replays a browser report through the Positioner interface.
// The browser already applied the position options, so they are ignored here.
type ReportedPosition struct {
	report PositionReport
}

func NewReportedPosition(report PositionReport) *ReportedPosition {
	return &ReportedPosition{report: report}
}

func (p *ReportedPosition) Supported() bool {
	return p.report.Supported
}

func (p *ReportedPosition) CurrentPosition(ctx context.Context, opts models.PositionOptions) (models.Position, error) {
	r := p.report
	if r.ErrorCode == 0 && r.Latitude != nil && r.Longitude != nil {
		if validCoordinates(*r.Latitude, *r.Longitude) {
			return models.Position{
				Latitude:  *r.Latitude,
				Longitude: *r.Longitude,
				Accuracy:  r.Accuracy,
			}, nil
		}
		return models.Position{}, &models.PositionError{
			Code:    models.PositionUnavailable,
			Message: "coordinates out of range",
		}
	}

	code := models.PositionErrorCode(r.ErrorCode)
	switch code {
	case models.PositionPermissionDenied, models.PositionUnavailable, models.PositionTimeout:
	default:
		code = models.PositionErrorUnknown
	}
	return models.Position{}, &models.PositionError{Code: code, Message: r.ErrorMessage}
}

func validCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
