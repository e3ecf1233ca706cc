package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/IsaacJM03/Year-3-Capstone-Project/domain"
	"github.com/IsaacJM03/Year-3-Capstone-Project/internal/api/presenters"
	"github.com/IsaacJM03/Year-3-Capstone-Project/pkg/jwt"
)

// SessionChecker reports whether a token's session (by jti) is still live.
// Satisfied by user.UserService.
type SessionChecker interface {
	IsSessionActive(ctx context.Context, jti string) (bool, error)
}

type (
	Middleware interface {
		AuthMiddleware(jwtService jwt.JWTService, sessions SessionChecker) fiber.Handler
		OnlyAdmin(c *fiber.Ctx) error
		CORSMiddleware() fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

// AuthMiddleware validates the bearer token, rejects revoked sessions, and
// stashes user_id, role, and jti in the request locals.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService, sessions SessionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, domain.ErrTokenInvalid)
		}

		claims, err := jwtService.ValidateTokenUser(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}

		active, err := sessions.IsSessionActive(c.Context(), claims.ID)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, domain.ErrTokenInvalid)
		}
		if !active {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, domain.ErrTokenRevoked)
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("role", claims.Role)
		c.Locals("jti", claims.ID)
		return c.Next()
	}
}

func (m *middleware) OnlyAdmin(c *fiber.Ctx) error {
	if role, ok := c.Locals("role").(string); !ok || role != domain.RoleAdmin {
		return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageUserNotAllowed, domain.ErrUserNotAllowed)
	}
	return c.Next()
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	})
}
