package middleware

import (
	"strings"

	"Stowage/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserIDKey is the request-local carrying the authenticated user id. Every
// handler reads the session from here and passes it explicitly into the
// services; there is no ambient current-user accessor anywhere else.
const UserIDKey = "userID"

type AuthMiddleware struct {
	auth       services.AuthService
	logService services.LogService
}

func NewAuthMiddleware(auth services.AuthService, logService services.LogService) *AuthMiddleware {
	return &AuthMiddleware{auth: auth, logService: logService}
}

func (a *AuthMiddleware) RequireAuth(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
	if tokenString == authHeader || tokenString == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
	}
	userID, err := a.auth.ValidateToken(tokenString)
	if err != nil {
		a.logService.Log.WithField("path", c.Path()).Warn("token validation failed")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
	}
	c.Locals(UserIDKey, userID)
	return c.Next()
}

// SessionUserID reads the authenticated user id set by RequireAuth.
func SessionUserID(c *fiber.Ctx) string {
	userID, _ := c.Locals(UserIDKey).(string)
	return userID
}
