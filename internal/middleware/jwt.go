package middleware // middleware provides reusable request processing for handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/job-board-api/internal/apperr"
	"github.com/iliyamo/job-board-api/internal/utils"
)

// principalKey is the context key under which JWTAuth stores the
// authenticated principal.
const principalKey = "principal"

// Principal is the authenticated identity derived from a verified
// access token. It lives only for the duration of one request and is
// never persisted. The claims are trusted as self-contained: no user
// row is loaded to re-validate them.
type Principal struct {
	SubjectID string // user id from the sub claim
	Email     string // email the token was issued for
}

// JWTAuth returns an Echo middleware that authenticates the request's
// bearer token and stores the resulting Principal in the context. A
// missing or empty credential yields 401 with a "missing" message; a
// token that fails verification or has expired yields 401 as well.
// Ownership decisions are left to RequireSelf / AuthorizeOwnership.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			claims, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
			}
			c.Set(principalKey, Principal{SubjectID: claims.UserID, Email: claims.Email})
			return next(c)
		}
	}
}

// CurrentPrincipal returns the Principal stored by JWTAuth. The second
// return is false when the route was not wrapped by JWTAuth — calling
// ownership checks in that state is a programming error, which is why
// RequireSelf fails loudly rather than treating it as anonymous access.
func CurrentPrincipal(c echo.Context) (Principal, bool) {
	p, ok := c.Get(principalKey).(Principal)
	return p, ok
}

// AuthorizeOwnership fails with Forbidden unless the principal's
// subject id equals the resource owner id. Pure comparison, no I/O.
func AuthorizeOwnership(p Principal, resourceOwnerID string) error {
	if p.SubjectID != resourceOwnerID {
		return apperr.Forbidden("access denied: you may only act on your own resources")
	}
	return nil
}
