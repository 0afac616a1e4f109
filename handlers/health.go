package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health reports whether the lead log database answers
func (h *Handler) Health(c echo.Context) error {
	status := map[string]string{"status": "ok", "database": "ok"}
	if h.db == nil {
		status["database"] = "disabled"
		return c.JSON(http.StatusOK, status)
	}

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request().Context())
	}
	if err != nil {
		status["status"] = "degraded"
		status["database"] = err.Error()
		return c.JSON(http.StatusServiceUnavailable, status)
	}
	return c.JSON(http.StatusOK, status)
}
