package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireSelf returns a middleware enforcing that the authenticated
// principal owns the resource addressed by the given path parameter
// (":id", ":user_id", ...). It must run after JWTAuth; a missing
// principal means the route was wired without authentication, which is
// a server bug and answered with 500, not 401.
func RequireSelf(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := CurrentPrincipal(c)
			if !ok {
				c.Logger().Error("RequireSelf used on a route without JWTAuth")
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
			}
			if err := AuthorizeOwnership(p, c.Param(param)); err != nil {
				return c.JSON(http.StatusForbidden, echo.Map{"error": err.Error()})
			}
			return next(c)
		}
	}
}
