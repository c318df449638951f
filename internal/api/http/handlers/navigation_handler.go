package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/warrior-admin-console/internal/auth"
	"github.com/spec-kit/warrior-admin-console/internal/nav"
)

// NavigationHandler serves the permission-filtered menu layout.
type NavigationHandler struct{}

// NewNavigationHandler constructs handler.
func NewNavigationHandler() *NavigationHandler {
	return &NavigationHandler{}
}

// Sections handles GET /navigation. Sections are recomputed per request so a
// profile update reflects immediately.
func (h *NavigationHandler) Sections(c *fiber.Ctx) error {
	current, _ := auth.SessionFromContext(c)
	return c.JSON(fiber.Map{"data": fiber.Map{"sections": nav.VisibleSections(current)}})
}
