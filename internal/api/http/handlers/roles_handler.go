package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/warrior-admin-console/internal/api/dto"
	"github.com/spec-kit/warrior-admin-console/internal/auth"
	"github.com/spec-kit/warrior-admin-console/internal/service"
	"github.com/spec-kit/warrior-admin-console/internal/upstream"
)

// RolesHandler exposes role definition and admin account management.
type RolesHandler struct {
	roles  *service.RoleService
	admins *service.AdminService
}

// NewRolesHandler constructs handler.
func NewRolesHandler(roles *service.RoleService, admins *service.AdminService) *RolesHandler {
	return &RolesHandler{roles: roles, admins: admins}
}

// List handles GET /admin/roles.
func (h *RolesHandler) List(c *fiber.Ctx) error {
	current, _ := auth.SessionFromContext(c)
	roles, err := h.roles.List(c.UserContext(), current)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"roles": roles}})
}

// CreateRole handles POST /admin/roles.
func (h *RolesHandler) CreateRole(c *fiber.Ctx) error {
	var req dto.CreateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	current, _ := auth.SessionFromContext(c)
	role, err := h.roles.Create(c.UserContext(), current, req.Name, req.Description, req.Permissions)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"role": role}})
}

// CreateAdmin handles POST /admin/admins.
func (h *RolesHandler) CreateAdmin(c *fiber.Ctx) error {
	var req dto.CreateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	current, _ := auth.SessionFromContext(c)
	admin, err := h.admins.Create(c.UserContext(), current, upstream.CreateAdminRequest{
		FullName:         req.FullName,
		Email:            req.Email,
		PhoneNumber:      req.PhoneNumber,
		EmergencyContact: req.EmergencyContact,
		Password:         req.Password,
		Age:              req.Age,
		RoleID:           req.RoleID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"admin": admin}})
}
