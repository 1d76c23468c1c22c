package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// RoleLookup returns the current role of a member, and false when the member
// is no longer on the roster.
type RoleLookup func(userID string) (role string, ok bool)

// Auth validates the JWT and injects claims into context. When roles is not
// nil the role claim is replaced by the member's current role, so a role
// change takes effect without a new token.
func Auth(jwtSecret string, roles RoleLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			userID, _ := claims["sub"].(string)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing subject")
			}
			role, _ := claims["role"].(string)

			if roles != nil {
				current, ok := roles(userID)
				if !ok {
					return echo.NewHTTPError(http.StatusUnauthorized, "member no longer exists")
				}
				role = current
			}

			c.Set("user_id", userID)
			c.Set("name", claims["name"])
			c.Set("role", role)

			return next(c)
		}
	}
}
