package utils

import (
	"time"

	"github.com/forumfuncionario/portal-service/config"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CreateJWTToken signs a credential for an authenticated account. The jti
// claim distinguishes replays; there is no server-side revocation list,
// so expiration is the only invalidation.
func CreateJWTToken(userID int64, username string, email string, roles []string, clientIP string, cfg config.JWTConfig) (string, time.Time, error) {
	expiresAt := time.Now().Add(time.Duration(cfg.LifetimeHours) * time.Hour)

	claims := jwt.MapClaims{}
	claims["sub"] = username
	claims["userID"] = userID
	claims["email"] = email
	claims["jti"] = uuid.New().String()
	claims["roles"] = roles
	claims["iss"] = cfg.Issuer
	claims["aud"] = cfg.Audience
	claims["exp"] = expiresAt.Unix()
	if clientIP != "" {
		claims["client_ip"] = clientIP
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// ExtractTokenUser reads the identity of the already-validated token the
// auth middleware stored on the request context.
func ExtractTokenUser(c echo.Context) (int64, string, []string) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok || !token.Valid {
		return 0, "", nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", nil
	}

	userID, _ := claims["userID"].(float64)
	username, _ := claims["sub"].(string)

	var roles []string
	if rawRoles, ok := claims["roles"].([]interface{}); ok {
		for _, r := range rawRoles {
			if role, ok := r.(string); ok {
				roles = append(roles, role)
			}
		}
	}

	return int64(userID), username, roles
}
