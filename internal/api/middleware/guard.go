package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/movieflix/movieflix-api/internal/core/ports"
)

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed  bool
	Location string
}

// Authorize decides whether a protected view is reachable. The session flag
// is the sole gate: unauthenticated navigation is redirected to the login
// form. Pure and idempotent.
func Authorize(loggedIn bool) Decision {
	if !loggedIn {
		return Decision{Location: "/login"}
	}
	return Decision{Allowed: true}
}

// Guard wraps protected routes. On each request it reads the session flag
// and either passes through unchanged or redirects to /login.
func Guard(store ports.CredentialStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := store.CurrentSession(c.Request().Context())
			if err != nil {
				return err
			}

			if d := Authorize(sess != nil); !d.Allowed {
				return c.Redirect(http.StatusFound, d.Location)
			}
			return next(c)
		}
	}
}
