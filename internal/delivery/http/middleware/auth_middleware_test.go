package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	"storefront/internal/domain/constants"
	mockService "storefront/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var problem map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))

	return problem
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_MissingHeaderReturnsProblem(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	middleware := NewAuthMiddleware(tokenSvc, &config.Config{})

	c, rec := newAuthTestContext(t, "")

	err := middleware.Authenticate(okHandler)(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	problem := decodeProblem(t, rec)
	assert.Equal(t, "https://storefront.example.com/problems/unauthorized", problem["type"])
	assert.Equal(t, "Authorization header is missing", problem["title"])
	assert.Equal(t, float64(http.StatusUnauthorized), problem["status"])
	assert.Equal(t, "/orders", problem["instance"])
	assert.NotContains(t, problem, "error")
}

func TestAuthMiddleware_Authenticate_InvalidTokenReturnsProblem(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"

	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("bad-token", "test-secret").
		Return(nil, errors.New("token is malformed"))

	middleware := NewAuthMiddleware(tokenSvc, cfg)

	c, rec := newAuthTestContext(t, "Bearer bad-token")

	err := middleware.Authenticate(okHandler)(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	problem := decodeProblem(t, rec)
	assert.Equal(t, "https://storefront.example.com/problems/unauthorized", problem["type"])
	assert.Equal(t, "Invalid or expired token", problem["title"])
	assert.Equal(t, float64(http.StatusUnauthorized), problem["status"])
}

func TestAuthMiddleware_RequireRole_MissingRoleReturnsProblem(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	middleware := NewAuthMiddleware(tokenSvc, &config.Config{})

	c, rec := newAuthTestContext(t, "")
	c.Set(constants.ContextKeyRoles, []string{"shopper"})

	err := middleware.RequireRole(constants.RoleAdmin)(okHandler)(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	problem := decodeProblem(t, rec)
	assert.Equal(t, "https://storefront.example.com/problems/forbidden", problem["type"])
	assert.Equal(t, float64(http.StatusForbidden), problem["status"])
	assert.Equal(t, "/orders", problem["instance"])
}
