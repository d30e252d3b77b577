package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"app/internal/config"
	"app/internal/middleware"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newGuardedServer(cfg config.Config, adminOnly bool) *echo.Echo {
	e := echo.New()
	mws := []echo.MiddlewareFunc{middleware.AuthJWT(cfg)}
	if adminOnly {
		mws = append(mws, middleware.AdminRoleGuard())
	}
	e.GET("/secure", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get(middleware.CtxUserIDKey).(string))
	}, mws...)
	return e
}

func signToken(t *testing.T, secret, sub, role string) string {
	t.Helper()
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(time.Minute).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func TestAuthJWT_ValidTokenSetsUserContext(t *testing.T) {
	cfg := config.Config{Secret: "test_secret"}
	e := newGuardedServer(cfg, false)

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, cfg.Secret, "u1", "USER"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", rec.Body.String())
}

func TestAuthJWT_MissingHeader(t *testing.T) {
	e := newGuardedServer(config.Config{Secret: "test_secret"}, false)

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_WrongSecret(t *testing.T) {
	e := newGuardedServer(config.Config{Secret: "test_secret"}, false)

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other_secret", "u1", "USER"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_ExpiredToken(t *testing.T) {
	cfg := config.Config{Secret: "test_secret"}
	e := newGuardedServer(cfg, false)

	past := time.Now().Add(-time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "u1",
		"role": "USER",
		"iat":  past.Unix(),
		"exp":  past.Add(time.Minute).Unix(),
	})
	signed, err := token.SignedString([]byte(cfg.Secret))
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoleGuard_RejectsUserRole(t *testing.T) {
	cfg := config.Config{Secret: "test_secret"}
	e := newGuardedServer(cfg, true)

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, cfg.Secret, "u1", "USER"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminRoleGuard_AllowsAdmin(t *testing.T) {
	cfg := config.Config{Secret: "test_secret"}
	e := newGuardedServer(cfg, true)

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, cfg.Secret, "a1", "ADMIN"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
