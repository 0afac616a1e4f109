package handlers

import (
	"net/http"
	"time"

	"wrist_surgery_app_go/middleware"
	"wrist_surgery_app_go/services"
	"wrist_surgery_app_go/templates/pages"

	"github.com/labstack/echo/v4"
)

const locationEndpoint = "/api/location"

// Landing renders the page with an empty appointment form
func (h *Handler) Landing(c echo.Context) error {
	return h.renderPage(c, http.StatusOK, services.NewFormState(), "")
}

func (h *Handler) formView(c echo.Context, state services.FormState, location string) pages.FormView {
	return pages.FormView{
		State:            state,
		CSRFToken:        middleware.GetCSRFToken(c),
		Location:         location,
		TurnstileSiteKey: h.cfg.TurnstileSiteKey,
	}
}

func (h *Handler) renderPage(c echo.Context, status int, state services.FormState, location string) error {
	ctx := c.Request().Context()
	opts := h.resolver.Options()

	view := pages.LandingView{
		SEO:     landingSEO(h.cfg),
		Content: landingContent,
		Form:    h.formView(c, state, location),
		Geo: pages.GeoView{
			Endpoint:           locationEndpoint,
			EnableHighAccuracy: opts.EnableHighAccuracy,
			TimeoutMillis:      opts.TimeoutMillis(),
			MaximumAgeMillis:   opts.MaximumAgeMillis(),
		},
		Nonce:      middleware.GetNonce(ctx),
		CSSURL:     middleware.AssetURL(ctx, "static/css/landing.css"),
		JSURL:      middleware.AssetURL(ctx, "static/js/landing.js"),
		FaviconURL: middleware.AssetURL(ctx, "static/images/favicon.svg"),
		Year:       time.Now().Year(),
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return pages.Landing(view).Render(ctx, c.Response().Writer)
}
