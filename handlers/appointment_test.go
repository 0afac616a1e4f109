package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"wrist_surgery_app_go/models"
	"wrist_surgery_app_go/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appointmentContext(env *testEnv, values url.Values, htmx bool, csrfToken string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := setupEcho(http.MethodPost, "/appointment", values.Encode(), env.cfg)
	c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	c.Request().Header.Set(echo.HeaderXRealIP, "49.207.1.1")
	if htmx {
		c.Request().Header.Set("HX-Request", "true")
	}
	c.Set("csrf", csrfToken)
	return c, rec
}

func postAppointment(t *testing.T, env *testEnv, values url.Values, htmx bool) (int, string) {
	c, rec := appointmentContext(env, values, htmx, "tok")
	require.NoError(t, env.handler.SubmitAppointment(c))
	return rec.Code, rec.Body.String()
}

func TestSubmitAppointment(t *testing.T) {
	valid := url.Values{
		"patient_name":  {"Asha Rao"},
		"mobile_number": {"9876543210"},
		"location":      {"Malleshwaram, Bengaluru"},
	}

	t.Run("HTMX success returns cleared form partial", func(t *testing.T) {
		env := setupTestEnv(t)
		code, body := postAppointment(t, env, valid, true)

		assert.Equal(t, http.StatusOK, code)
		assert.NotContains(t, body, "<html")
		assert.Contains(t, body, services.FlashSuccess)
		assert.Contains(t, body, `data-state="succeeded"`)
		assert.Contains(t, body, `id="patient_name" name="patient_name" value=""`)
		assert.Contains(t, body, `name="location" value="Malleshwaram, Bengaluru"`)

		require.Len(t, env.notifier.reqs, 1)
		req := env.notifier.reqs[0]
		assert.Equal(t, "Asha Rao", req.PatientName)
		assert.Equal(t, "Malleshwaram, Bengaluru", req.ResolvedLocation)
		assert.Equal(t, "wristsurgery.in", req.DomainName)

		var lead models.Lead
		require.NoError(t, env.db.First(&lead).Error)
		assert.Equal(t, models.LeadStatusDelivered, lead.Status)
		assert.Equal(t, "49.207.1.1", lead.IPAddress)
	})

	t.Run("Plain post renders full page", func(t *testing.T) {
		env := setupTestEnv(t)
		code, body := postAppointment(t, env, valid, false)
		assert.Equal(t, http.StatusOK, code)
		assert.Contains(t, body, "<html")
		assert.Contains(t, body, services.FlashSuccess)
	})

	t.Run("Invalid phone never reaches the channel", func(t *testing.T) {
		env := setupTestEnv(t)
		values := url.Values{"patient_name": {"Asha"}, "mobile_number": {"5987654321"}}
		code, body := postAppointment(t, env, values, false)

		assert.Equal(t, http.StatusUnprocessableEntity, code)
		assert.Contains(t, body, services.PhoneErrorMessage)
		assert.Contains(t, body, `value="5987654321"`)
		assert.Empty(t, env.notifier.reqs)
	})

	t.Run("Padded phone is rejected", func(t *testing.T) {
		env := setupTestEnv(t)
		values := url.Values{"patient_name": {"Asha"}, "mobile_number": {" 9876543210 "}}
		code, body := postAppointment(t, env, values, false)

		assert.Equal(t, http.StatusUnprocessableEntity, code)
		assert.Contains(t, body, services.PhoneErrorMessage)
		assert.Empty(t, env.notifier.reqs)
	})

	t.Run("Failed delivery keeps the name as typed", func(t *testing.T) {
		env := setupTestEnv(t)
		env.notifier.fail = true
		values := url.Values{"patient_name": {"Ravi <Kumar>"}, "mobile_number": {"9876543210"}}
		_, body := postAppointment(t, env, values, true)

		assert.Contains(t, body, services.FlashFailure)
		assert.Contains(t, body, `value="Ravi &lt;Kumar&gt;"`)
	})

	t.Run("Delivery failure keeps values", func(t *testing.T) {
		env := setupTestEnv(t)
		env.notifier.fail = true
		code, body := postAppointment(t, env, valid, true)

		assert.Equal(t, http.StatusOK, code)
		assert.Contains(t, body, services.FlashFailure)
		assert.Contains(t, body, `value="Asha Rao"`)
		assert.Contains(t, body, `value="9876543210"`)
	})

	t.Run("Missing location uses placeholder", func(t *testing.T) {
		env := setupTestEnv(t)
		values := url.Values{"patient_name": {"Asha"}, "mobile_number": {"9876543210"}}
		postAppointment(t, env, values, true)
		require.Len(t, env.notifier.reqs, 1)
		assert.Equal(t, models.LocationNotAvailable, env.notifier.reqs[0].ResolvedLocation)
	})

	t.Run("Turnstile rejection", func(t *testing.T) {
		env := setupTestEnv(t)
		env.cfg.TurnstileSecretKey = "secret"
		env.handler.verifyTurnstile = func(ctx context.Context, token, secretKey, ip string) (bool, error) {
			return false, errors.New("invalid-input-response")
		}

		code, body := postAppointment(t, env, valid, false)
		assert.Equal(t, http.StatusForbidden, code)
		assert.Contains(t, body, turnstileFailedMessage)
		assert.Empty(t, env.notifier.reqs)
	})

	t.Run("Turnstile accepted", func(t *testing.T) {
		env := setupTestEnv(t)
		env.cfg.TurnstileSecretKey = "secret"
		var gotToken string
		env.handler.verifyTurnstile = func(ctx context.Context, token, secretKey, ip string) (bool, error) {
			gotToken = token
			return true, nil
		}

		values := url.Values{}
		for k, v := range valid {
			values[k] = v
		}
		values.Set("cf-turnstile-response", "tt-1")
		code, _ := postAppointment(t, env, values, true)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "tt-1", gotToken)
		assert.Len(t, env.notifier.reqs, 1)
	})
}

func TestSubmitAppointmentSharedIP(t *testing.T) {
	env := setupTestEnv(t)
	env.notifier.hold = make(chan struct{})
	env.notifier.held = make(chan struct{})

	first, firstRec := appointmentContext(env, url.Values{
		"patient_name":  {"Asha"},
		"mobile_number": {"9876543210"},
	}, true, "tok-asha")
	errc := make(chan error, 1)
	go func() { errc <- env.handler.SubmitAppointment(first) }()
	<-env.notifier.held

	// Second browser behind the same address while the first is in flight
	second, secondRec := appointmentContext(env, url.Values{
		"patient_name":  {"Ravi Kumar"},
		"mobile_number": {"9123456780"},
	}, true, "tok-ravi")
	require.NoError(t, env.handler.SubmitAppointment(second))
	assert.Contains(t, secondRec.Body.String(), services.FlashSuccess)

	close(env.notifier.hold)
	require.NoError(t, <-errc)
	assert.Contains(t, firstRec.Body.String(), services.FlashSuccess)
	assert.Len(t, env.notifier.reqs, 2)
}

func TestSubmitAppointmentSameBrowserBusy(t *testing.T) {
	env := setupTestEnv(t)
	env.notifier.hold = make(chan struct{})
	env.notifier.held = make(chan struct{})
	values := url.Values{"patient_name": {"Asha"}, "mobile_number": {"9876543210"}}

	first, _ := appointmentContext(env, values, true, "tok-asha")
	errc := make(chan error, 1)
	go func() { errc <- env.handler.SubmitAppointment(first) }()
	<-env.notifier.held

	second, secondRec := appointmentContext(env, values, true, "tok-asha")
	require.NoError(t, env.handler.SubmitAppointment(second))
	assert.Contains(t, secondRec.Body.String(), services.FlashBusy)

	close(env.notifier.hold)
	require.NoError(t, <-errc)
	assert.Len(t, env.notifier.reqs, 1)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusOK, statusFor(services.FormState{State: services.StateSucceeded}))
	assert.Equal(t, http.StatusUnprocessableEntity, statusFor(services.FormState{State: services.StateValidationFailed}))
	assert.Equal(t, http.StatusConflict, statusFor(services.FormState{State: services.StateSubmitting}))
	assert.Equal(t, http.StatusBadGateway, statusFor(services.FormState{State: services.StateFailed}))
}
