package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/warrior-admin-console/internal/domain"
)

const (
	sessionKey   = "console_session"
	sessionIDKey = "console_session_id"
)

// StoreSession attaches the restored session to the request context.
func StoreSession(c *fiber.Ctx, sessionID string, session *domain.Session) {
	c.Locals(sessionIDKey, sessionID)
	c.Locals(sessionKey, session)
}

// SessionFromContext retrieves the restored session, if any.
func SessionFromContext(c *fiber.Ctx) (*domain.Session, bool) {
	val := c.Locals(sessionKey)
	if val == nil {
		return nil, false
	}
	session, ok := val.(*domain.Session)
	return session, ok
}

// SessionIDFromContext retrieves the console session id.
func SessionIDFromContext(c *fiber.Ctx) (string, bool) {
	val := c.Locals(sessionIDKey)
	if val == nil {
		return "", false
	}
	id, ok := val.(string)
	return id, ok
}

// RequireSession ensures an active admin session was restored.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := SessionFromContext(c)
		if !ok || !session.Active() {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		return c.Next()
	}
}

// RequireCapability gates a route on one capability. Link hiding in the UI is
// a usability feature; this check and the upstream API are the enforcement.
func RequireCapability(capability Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := SessionFromContext(c)
		if !ok || !session.Active() {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		if !HasPermission(session, capability) {
			return fiber.NewError(http.StatusForbidden, "insufficient permissions")
		}
		return c.Next()
	}
}
