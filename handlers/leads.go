package handlers

import (
	"fmt"
	"net/http"
	"time"

	"wrist_surgery_app_go/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportLeads downloads the lead log as xlsx. Optional from/to query
// parameters (YYYY-MM-DD) bound the range; to is inclusive.
func (h *Handler) ExportLeads(c echo.Context) error {
	if h.db == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "lead log is not configured")
	}

	from, to, err := parseDateRange(c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	buf, err := services.ExportLeadsXLSX(h.db, from, to)
	if err != nil {
		h.logger.Error("lead export failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to export leads")
	}

	filename := fmt.Sprintf("leads-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

func parseDateRange(fromParam, toParam string) (time.Time, time.Time, error) {
	var from, to time.Time
	var err error
	if fromParam != "" {
		if from, err = time.Parse("2006-01-02", fromParam); err != nil {
			return from, to, fmt.Errorf("invalid from date %q", fromParam)
		}
	}
	if toParam != "" {
		if to, err = time.Parse("2006-01-02", toParam); err != nil {
			return from, to, fmt.Errorf("invalid to date %q", toParam)
		}
		to = to.AddDate(0, 0, 1)
	}
	if !from.IsZero() && !to.IsZero() && !from.Before(to) {
		return from, to, fmt.Errorf("from must be on or before to")
	}
	return from, to, nil
}
