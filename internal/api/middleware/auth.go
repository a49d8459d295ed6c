package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// UserIDKey is the echo context key under which Auth stores the
// authenticated subject id.
const UserIDKey = "user_id"

// Auth validates the bearer access token and injects the subject id into
// the request context. A missing or malformed Authorization header is 401;
// a present token that fails signature or expiry checks is 403. The
// subject is trusted as-is until expiry: no store lookup happens here.
func Auth(accessSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := &jwt.RegisteredClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(accessSecret), nil
			})
			if err != nil || !tkn.Valid || claims.Subject == "" {
				return echo.NewHTTPError(http.StatusForbidden, "invalid or expired token")
			}

			c.Set(UserIDKey, claims.Subject)
			return next(c)
		}
	}
}
