package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAdminAuth(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	serve := func(hash, user, pass string, setAuth bool) int {
		e := echo.New()
		e.GET("/admin/leads.xlsx", func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		}, AdminAuth("admin", hash))

		req := httptest.NewRequest(http.MethodGet, "/admin/leads.xlsx", nil)
		if setAuth {
			req.SetBasicAuth(user, pass)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, serve(string(hash), "admin", "s3cret", true))
	assert.Equal(t, http.StatusUnauthorized, serve(string(hash), "admin", "wrong", true))
	assert.Equal(t, http.StatusUnauthorized, serve(string(hash), "root", "s3cret", true))
	assert.Equal(t, http.StatusUnauthorized, serve(string(hash), "", "", false))
	assert.Equal(t, http.StatusUnauthorized, serve("", "admin", "s3cret", true))
}
