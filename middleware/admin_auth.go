package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/bcrypt"
)

// AdminAuth guards the lead export with HTTP basic auth. The password is
// checked against a bcrypt hash; an empty hash locks the route.
func AdminAuth(user, passwordHash string) echo.MiddlewareFunc {
	return echomiddleware.BasicAuthWithConfig(echomiddleware.BasicAuthConfig{
		Realm: "Leads",
		Validator: func(username, password string, c echo.Context) (bool, error) {
			if passwordHash == "" {
				return false, nil
			}
			if subtle.ConstantTimeCompare([]byte(username), []byte(user)) != 1 {
				return false, nil
			}
			return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) == nil, nil
		},
	})
}
