package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/winjhenshop/storefront-api/internal/core/domain"
)

// PrincipalKey is the echo context key under which Auth stores the session
// principal.
const PrincipalKey = "principal"

// Auth validates the session JWT and injects the principal into context.
func Auth(jwtSecret string) echo.MiddlewareFunc {
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

			principal := principalFromClaims(claims)
			if principal.UserID == "" || principal.Role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing identity claims")
			}

			c.Set(PrincipalKey, principal)

			return next(c)
		}
	}
}

func principalFromClaims(claims jwt.MapClaims) domain.Principal {
	str := func(key string) string {
		s, _ := claims[key].(string)
		return s
	}
	return domain.Principal{
		UserID:    str("sub"),
		Email:     str("email"),
		FirstName: str("first_name"),
		LastName:  str("last_name"),
		Role:      domain.Role(str("role")),
	}
}

// CurrentPrincipal extracts the principal injected by Auth. The boolean is
// false when the middleware did not run on this route.
func CurrentPrincipal(c echo.Context) (domain.Principal, bool) {
	principal, ok := c.Get(PrincipalKey).(domain.Principal)
	return principal, ok
}
