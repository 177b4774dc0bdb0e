package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/planet-nakshatra/consultation-api/internal/core/domain"
)

// UserValidator resolves an ACTIVE user's sanitized profile, or (nil, nil)
// when the subject no longer resolves. Satisfied by the auth service.
type UserValidator interface {
	ValidateUser(ctx context.Context, userID string) (*domain.User, error)
}

// Auth validates the bearer token under the access secret, re-resolves the
// subject, and injects the user and claims into the request context. A token
// whose subject has since gone missing or inactive is rejected even when the
// signature is still valid.
func Auth(accessSecret string, users UserValidator) echo.MiddlewareFunc {
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
				return []byte(accessSecret), nil
			}, jwt.WithExpirationRequired())
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sub, _ := claims["sub"].(string)
			if sub == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.ValidateUser(c.Request().Context(), sub)
			if err != nil {
				return err
			}
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "account no longer active")
			}

			c.Set("user", user)
			c.Set("user_id", user.ID)
			c.Set("email", user.Email)
			c.Set("role", user.Role)

			return next(c)
		}
	}
}
