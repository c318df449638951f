package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/warrior-admin-console/internal/repository"
	"github.com/spec-kit/warrior-admin-console/internal/service"
)

// ActivityHandler serves the console's own audit log.
type ActivityHandler struct {
	audit *service.AuditService
}

// NewActivityHandler constructs handler.
func NewActivityHandler(audit *service.AuditService) *ActivityHandler {
	return &ActivityHandler{audit: audit}
}

// List handles GET /admin/activity.
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	entries, err := h.audit.List(c.UserContext(), repository.AuditFilter{
		Action: c.Query("actionType"),
		Limit:  c.QueryInt("limit", 50),
		Offset: c.QueryInt("offset", 0),
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"entries": entries}})
}
