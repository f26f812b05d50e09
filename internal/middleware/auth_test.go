package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/forumfuncionario/portal-service/config"
	"github.com/forumfuncionario/portal-service/internal/domain"
	"github.com/forumfuncionario/portal-service/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:        "test-secret",
		Issuer:        "portal-service",
		Audience:      "portal-frontend",
		LifetimeHours: 3,
	}
}

func newTestServer(cfg config.JWTConfig) *echo.Echo {
	e := echo.New()

	handler := func(c echo.Context) error {
		userID, username, _ := utils.ExtractTokenUser(c)
		return c.String(http.StatusOK, fmt.Sprintf("%d:%s", userID, username))
	}

	e.GET("/protected", handler, JWTAuth(cfg))
	e.GET("/admin", handler, JWTAuth(cfg), RequireRoles(domain.RoleAdmin))

	return e
}

func doRequest(e *echo.Echo, path string, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuth_ValidToken(t *testing.T) {
	cfg := testJWTConfig()
	e := newTestServer(cfg)

	token, _, err := utils.CreateJWTToken(7, "jdoe", "jdoe@example.com", nil, "", cfg)
	require.NoError(t, err)

	rec := doRequest(e, "/protected", token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "7:jdoe", rec.Body.String())
}

func TestJWTAuth_MissingToken(t *testing.T) {
	e := newTestServer(testJWTConfig())

	rec := doRequest(e, "/protected", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_GarbageToken(t *testing.T) {
	e := newTestServer(testJWTConfig())

	rec := doRequest(e, "/protected", "not.a.jwt")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	e := newTestServer(cfg)

	expiredCfg := cfg
	expiredCfg.LifetimeHours = -1
	token, _, err := utils.CreateJWTToken(7, "jdoe", "jdoe@example.com", nil, "", expiredCfg)
	require.NoError(t, err)

	rec := doRequest(e, "/protected", token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_WrongIssuer(t *testing.T) {
	cfg := testJWTConfig()
	e := newTestServer(cfg)

	otherCfg := cfg
	otherCfg.Issuer = "someone-else"
	token, _, err := utils.CreateJWTToken(7, "jdoe", "jdoe@example.com", nil, "", otherCfg)
	require.NoError(t, err)

	rec := doRequest(e, "/protected", token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoles(t *testing.T) {
	cfg := testJWTConfig()
	e := newTestServer(cfg)

	adminToken, _, err := utils.CreateJWTToken(1, "admin", "admin@example.com", []string{domain.RoleAdmin}, "", cfg)
	require.NoError(t, err)

	plainToken, _, err := utils.CreateJWTToken(2, "jdoe", "jdoe@example.com", nil, "", cfg)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, doRequest(e, "/admin", adminToken).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(e, "/admin", plainToken).Code)
}
