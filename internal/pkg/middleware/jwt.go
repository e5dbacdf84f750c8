package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/scrapcycle/scrapcycle/internal/pkg/jwt"
	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
	"github.com/scrapcycle/scrapcycle/internal/utils"
)

const sessionContextKey = "session"

// JWTAuthMiddleware creates a middleware for JWT authentication. On success
// the verified session is stored in the echo context for handlers.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			session, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}
			if session.UserID == uuid.Nil {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			c.Set(sessionContextKey, session)

			return next(c)
		}
	}
}

// GetSession extracts the authenticated session from the echo context. The
// second return is false when the route ran without the JWT middleware.
func GetSession(c echo.Context) (*models.Session, bool) {
	session, ok := c.Get(sessionContextKey).(*models.Session)
	return session, ok
}

// RequireRole rejects requests whose session does not carry the given role.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := GetSession(c)
			if !ok {
				return utils.UnauthorizedResponse(c, "")
			}
			if session.Role != role {
				return utils.ForbiddenResponse(c, "Insufficient role")
			}
			return next(c)
		}
	}
}
