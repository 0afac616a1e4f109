package handlers

import (
	"net/http"

	"wrist_surgery_app_go/services/geo"

	"github.com/labstack/echo/v4"
)

// LocationResponse carries the resolved location back to the page
type LocationResponse struct {
	Location string `json:"location"`
}

// ResolveLocation runs the fallback chain for the position the browser
// reported. It always answers 200 with a location string.
func (h *Handler) ResolveLocation(c echo.Context) error {
	var report geo.PositionReport
	if err := c.Bind(&report); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid position report")
	}

	location := h.resolver.Resolve(c.Request().Context(), geo.NewReportedPosition(report), c.RealIP())
	return c.JSON(http.StatusOK, LocationResponse{Location: location})
}
