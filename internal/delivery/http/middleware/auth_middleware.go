package middleware

import (
	"slices"
	"strings"

	"storefront/config"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		userID, roles, ok := m.resolveToken(tokenString)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		// Set user info on the context for handlers to use
		c.Set(constants.ContextKeyUserID, userID)
		c.Set(constants.ContextKeyRoles, roles)

		return next(c)
	}
}

// OptionalAuthenticate attaches the user to the context when a valid bearer
// token is present and lets the request through anonymously otherwise. The
// storefront cart and checkout surfaces serve guests and shoppers alike.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || tokenString == authHeader {
			return next(c)
		}

		// A malformed or expired token on an optional surface is treated as
		// anonymous rather than rejected.
		if userID, roles, ok := m.resolveToken(tokenString); ok {
			c.Set(constants.ContextKeyUserID, userID)
			c.Set(constants.ContextKeyRoles, roles)
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rolesVal := c.Get(constants.ContextKeyRoles)
			roles, ok := rolesVal.([]string)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !slices.Contains(roles, requiredRole) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole+"' role")
			}

			return next(c)
		}
	}
}

// resolveToken validates the token string and extracts the subject and roles.
func (m *AuthMiddleware) resolveToken(tokenString string) (uuid.UUID, []string, bool) {
	token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
	if err != nil || !token.Valid {
		return uuid.Nil, nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, nil, false
	}

	userIDStr, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, nil, false
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, nil, false
	}

	rolesClaim, _ := claims["roles"].([]any)
	var roles []string
	for _, r := range rolesClaim {
		if roleStr, ok := r.(string); ok {
			roles = append(roles, roleStr)
		}
	}

	return userID, roles, true
}
