package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/forumfuncionario/portal-service/config"
	"github.com/forumfuncionario/portal-service/pkg/utils"
	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
)

func writeAuthError(c echo.Context, status int, message string) error {
	errorResponse := map[string]interface{}{
		"status":  "error",
		"message": message,
		"errors":  nil,
	}
	return c.JSON(status, errorResponse)
}

// JWTAuth validates the bearer token (signature, expiration, issuer,
// audience) and stores the parsed token on the request context for
// handlers to read via utils.ExtractTokenUser.
func JWTAuth(cfg config.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return writeAuthError(c, http.StatusUnauthorized, "Missing or malformed JWT")
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(cfg.Secret), nil
			})
			if err != nil || !token.Valid {
				return writeAuthError(c, http.StatusUnauthorized, "Invalid or expired JWT")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return writeAuthError(c, http.StatusUnauthorized, "Invalid or expired JWT")
			}

			if cfg.Issuer != "" && !claims.VerifyIssuer(cfg.Issuer, true) {
				return writeAuthError(c, http.StatusUnauthorized, "Invalid token issuer")
			}

			if cfg.Audience != "" && !claims.VerifyAudience(cfg.Audience, true) {
				return writeAuthError(c, http.StatusUnauthorized, "Invalid token audience")
			}

			c.Set("user", token)

			return next(c)
		}
	}
}

// RequireRoles gates a route to callers holding at least one of the
// given roles. Must run after JWTAuth.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			_, _, tokenRoles := utils.ExtractTokenUser(c)

			for _, required := range roles {
				for _, held := range tokenRoles {
					if held == required {
						return next(c)
					}
				}
			}

			return writeAuthError(c, http.StatusForbidden, "Insufficient role")
		}
	}
}
