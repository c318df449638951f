package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/warrior-admin-console/internal/api/dto"
	"github.com/spec-kit/warrior-admin-console/internal/auth"
	"github.com/spec-kit/warrior-admin-console/internal/events"
	"github.com/spec-kit/warrior-admin-console/internal/session"
	"github.com/spec-kit/warrior-admin-console/internal/upstream"
	"github.com/spec-kit/warrior-admin-console/pkg/util"
)

// SessionHandler exposes the console session lifecycle.
type SessionHandler struct {
	tokens     *auth.TokenManager
	stores     session.Factory
	client     *upstream.Client
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewSessionHandler constructs handler.
func NewSessionHandler(tokens *auth.TokenManager, stores session.Factory, client *upstream.Client, dispatcher events.Dispatcher, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{tokens: tokens, stores: stores, client: client, dispatcher: dispatcher, logger: logger}
}

func (h *SessionHandler) manager(sessionID string) *session.Manager {
	return session.NewManager(h.stores(sessionID), h.client, h.logger)
}

// Login handles POST /auth/login.
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	sessionID := uuid.NewString()
	established, err := h.manager(sessionID).Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrAccessDenied) {
			role, _ := util.ToDomainError(err).Details["role"].(string)
			h.publish(c, sessionID, events.EventAccessDenied, events.Actor{Email: req.Email},
				events.AccessDeniedPayload{Email: req.Email, Role: role})
		}
		return err
	}

	token, expiresAt, err := h.tokens.Generate(sessionID)
	if err != nil {
		return util.NewInternalError(err)
	}

	h.publish(c, sessionID, events.EventSessionLoggedIn,
		events.Actor{ID: established.User.ID, Email: established.User.Email}, nil)

	return c.JSON(fiber.Map{
		"data": dto.SessionResponse{Token: token, ExpiresAt: expiresAt, User: established.User},
	})
}

// Logout handles POST /auth/logout. Idempotent: logging out an already
// cleared session succeeds.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	sessionID, _ := auth.SessionIDFromContext(c)
	current, _ := auth.SessionFromContext(c)

	if err := h.manager(sessionID).Logout(c.UserContext()); err != nil {
		return err
	}

	actor := events.Actor{}
	if current.Active() {
		actor = events.Actor{ID: current.User.ID, Email: current.User.Email}
	}
	h.publish(c, sessionID, events.EventSessionLoggedOut, actor, nil)

	return c.JSON(fiber.Map{"data": fiber.Map{"message": "logged out"}})
}

// Me handles GET /auth/session.
func (h *SessionHandler) Me(c *fiber.Ctx) error {
	current, _ := auth.SessionFromContext(c)
	return c.JSON(fiber.Map{"data": fiber.Map{"user": current.User}})
}

// UpdateProfile handles PUT /auth/profile: pushes the edit upstream, then
// replaces the local identity snapshot without touching tokens.
func (h *SessionHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	sessionID, _ := auth.SessionIDFromContext(c)
	current, _ := auth.SessionFromContext(c)

	updated, err := h.client.UpdateUser(c.UserContext(), current.AccessToken, current.User.ID, upstream.UpdateProfileRequest{
		FullName:         req.FullName,
		PhoneNumber:      req.PhoneNumber,
		EmergencyContact: req.EmergencyContact,
	})
	if err != nil {
		return err
	}

	manager := h.manager(sessionID)
	manager.Restore(c.UserContext())
	if err := manager.UpdateIdentity(c.UserContext(), updated); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": fiber.Map{"user": updated}})
}

// ChangePassword handles POST /auth/change-password.
func (h *SessionHandler) ChangePassword(c *fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return fiber.NewError(http.StatusBadRequest, "current and new password required")
	}

	current, _ := auth.SessionFromContext(c)
	if err := h.client.ChangePassword(c.UserContext(), current.AccessToken, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "password changed"}})
}

// ForgotPassword handles POST /auth/forgot-password.
func (h *SessionHandler) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" {
		return fiber.NewError(http.StatusBadRequest, "email required")
	}

	if err := h.client.ForgotPassword(c.UserContext(), req.Email); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "reset email sent"}})
}

// ResetPassword handles POST /auth/reset-password.
func (h *SessionHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.OTP == "" || req.NewPassword == "" {
		return fiber.NewError(http.StatusBadRequest, "email, otp and new password required")
	}

	if err := h.client.ResetPassword(c.UserContext(), req.Email, req.OTP, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "password reset"}})
}

func (h *SessionHandler) publish(c *fiber.Ctx, sessionID string, eventType events.EventType, actor events.Actor, payload interface{}) {
	if h.dispatcher == nil {
		return
	}
	_ = h.dispatcher.Publish(c.UserContext(), events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SessionID: sessionID,
		Actor:     actor,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
