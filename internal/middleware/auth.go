package middleware

import (
	"strings"

	"github.com/adcraft/backend/internal/auth"
	"github.com/adcraft/backend/internal/http/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const CtxSessionID = "session_id"

// SessionAuthMiddleware resolves the bearer session token into a session id.
func SessionAuthMiddleware(secret string, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "missing authorization header", RequestID: GetRequestID(c)})
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "invalid authorization format", RequestID: GetRequestID(c)})
		}

		claims, err := auth.ParseSessionToken(secret, tokenStr)
		if err != nil {
			log.Debug("session token parse error", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "invalid or expired session token", RequestID: GetRequestID(c)})
		}

		c.Locals(CtxSessionID, claims.SessionID)
		return c.Next()
	}
}

func GetSessionID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(CtxSessionID).(uuid.UUID)
	return id
}
