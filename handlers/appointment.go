package handlers

import (
	"net/http"

	"wrist_surgery_app_go/middleware"
	"wrist_surgery_app_go/services"
	"wrist_surgery_app_go/templates/pages"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const turnstileFailedMessage = "Verification failed. Please try again."

// SubmitAppointment handles the form post. HTMX requests get the form
// partial back; plain posts get the whole page.
func (h *Handler) SubmitAppointment(c echo.Context) error {
	var form services.AppointmentForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	location := c.FormValue("location")
	ctx := c.Request().Context()

	if h.cfg.TurnstileSecretKey != "" {
		token := c.FormValue("cf-turnstile-response")
		if ok, err := h.verifyTurnstile(ctx, token, h.cfg.TurnstileSecretKey, c.RealIP()); !ok {
			h.logger.Warn("turnstile verification failed", zap.String("ip", c.RealIP()), zap.Error(err))
			state := services.FormState{
				Values:    form,
				Submitted: true,
				State:     services.StateFailed,
				Flash:     turnstileFailedMessage,
			}
			return h.renderForm(c, http.StatusForbidden, state, location)
		}
	}

	// One submit in flight per browser, keyed by its CSRF token
	state := h.workflow.Submit(ctx, form, location, services.SubmissionMeta{
		VisitorKey: middleware.GetCSRFToken(c),
		IPAddress:  c.RealIP(),
		UserAgent:  c.Request().UserAgent(),
	})

	return h.renderForm(c, statusFor(state), state, location)
}

func (h *Handler) renderForm(c echo.Context, status int, state services.FormState, location string) error {
	if c.Request().Header.Get("HX-Request") != "true" {
		return h.renderPage(c, status, state, location)
	}

	// htmx only swaps 2xx responses by default
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	component := pages.AppointmentForm(h.formView(c, state, location))
	return component.Render(c.Request().Context(), c.Response().Writer)
}

func statusFor(state services.FormState) int {
	switch state.State {
	case services.StateValidationFailed:
		return http.StatusUnprocessableEntity
	case services.StateSubmitting:
		return http.StatusConflict
	case services.StateFailed:
		return http.StatusBadGateway
	}
	return http.StatusOK
}
