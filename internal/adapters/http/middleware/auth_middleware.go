package middleware

import (
	"strings"

	"github.com/Rajo-Lahatra/JMC/internal/config"
	"github.com/Rajo-Lahatra/JMC/internal/core/domain"
	"github.com/Rajo-Lahatra/JMC/internal/core/services"
	"github.com/Rajo-Lahatra/JMC/internal/pkg/jwt"
	"github.com/Rajo-Lahatra/JMC/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware creates authentication middleware
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		// 1. Try to get token from cookie first
		accessToken = c.Cookies("access_token")

		// 2. If not in cookie, try Authorization header
		if accessToken == "" {
			authHeader := c.Get("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				accessToken = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		// 3. No token found
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		// 4. Validate token
		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		// 5. Set user info in context
		c.Locals("userID", claims.UserID)
		c.Locals("email", claims.Email)

		return c.Next()
	}
}

// ActorMiddleware resolves the caller's collaborator profile and grade after
// AuthMiddleware has run. The grade is read from the database on every request
// so a grade change takes effect immediately, not at next login.
func ActorMiddleware(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userID").(string)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		actor := services.Actor{}
		if collab, err := authService.Collaborator(c.Context(), userID); err == nil {
			actor.CollaboratorID = &collab.ID
			actor.Grade = domain.Grade(collab.Grade)
		}
		c.Locals("actor", actor)

		return c.Next()
	}
}

// GetActor reads the actor set by ActorMiddleware. Missing actor means no
// collaborator profile: every capability resolves to false.
func GetActor(c *fiber.Ctx) services.Actor {
	actor, ok := c.Locals("actor").(services.Actor)
	if !ok {
		return services.Actor{}
	}
	return actor
}

// FinanceGate restricts a route to grades allowed to edit financial fields
func FinanceGate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !GetActor(c).CanEditFinance() {
			return response.Forbidden(c, "You don't have permission to access financial data")
		}
		return c.Next()
	}
}

// AuditGate restricts a route to grades allowed to read the login journal
func AuditGate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !domain.CanViewAuditLog(GetActor(c).Grade) {
			return response.Forbidden(c, "You don't have permission to view the audit log")
		}
		return c.Next()
	}
}
