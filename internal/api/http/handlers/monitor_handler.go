package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/warrior-admin-console/internal/api/dto"
	"github.com/spec-kit/warrior-admin-console/internal/auth"
	"github.com/spec-kit/warrior-admin-console/internal/service"
	"github.com/spec-kit/warrior-admin-console/internal/upstream"
)

// MonitorHandler proxies the monitoring pages to the upstream platform.
type MonitorHandler struct {
	monitor *service.MonitorService
}

// NewMonitorHandler constructs handler.
func NewMonitorHandler(monitor *service.MonitorService) *MonitorHandler {
	return &MonitorHandler{monitor: monitor}
}

func listParams(c *fiber.Ctx) upstream.ListParams {
	return upstream.ListParams{
		Limit:  c.QueryInt("limit", 0),
		Offset: c.QueryInt("offset", 0),
		Role:   c.Query("role"),
		Status: c.Query("status"),
		Search: c.Query("search"),
	}
}

// Stats handles GET /admin/stats.
func (h *MonitorHandler) Stats(c *fiber.Ctx) error {
	current, _ := auth.SessionFromContext(c)
	stats, err := h.monitor.Stats(c.UserContext(), current)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": stats})
}

// Users handles GET /admin/users.
func (h *MonitorHandler) Users(c *fiber.Ctx) error {
	current, _ := auth.SessionFromContext(c)
	list, err := h.monitor.Users(c.UserContext(), current, listParams(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": list})
}

// Verifications handles GET /admin/verifications.
func (h *MonitorHandler) Verifications(c *fiber.Ctx) error {
	current, _ := auth.SessionFromContext(c)
	requests, err := h.monitor.Verifications(c.UserContext(), current, c.Query("status"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"verifications": requests}})
}

// Verify handles POST /admin/verifications/:id/verify.
func (h *MonitorHandler) Verify(c *fiber.Ctx) error {
	var req dto.VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	current, _ := auth.SessionFromContext(c)
	request, err := h.monitor.Verify(c.UserContext(), current, c.Params("id"), req.Status, req.Note)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": request})
}

// PainLogs handles GET /admin/pain-logs.
func (h *MonitorHandler) PainLogs(c *fiber.Ctx) error {
	current, _ := auth.SessionFromContext(c)
	list, err := h.monitor.PainLogs(c.UserContext(), current, listParams(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": list})
}

// Tasks handles GET /admin/tasks.
func (h *MonitorHandler) Tasks(c *fiber.Ctx) error {
	current, _ := auth.SessionFromContext(c)
	list, err := h.monitor.Tasks(c.UserContext(), current, listParams(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": list})
}

// Connections handles GET /admin/connections.
func (h *MonitorHandler) Connections(c *fiber.Ctx) error {
	current, _ := auth.SessionFromContext(c)
	list, err := h.monitor.Connections(c.UserContext(), current, listParams(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": list})
}

// StreakableItems handles GET /streakable-items.
func (h *MonitorHandler) StreakableItems(c *fiber.Ctx) error {
	current, _ := auth.SessionFromContext(c)
	items, err := h.monitor.StreakableItems(c.UserContext(), current)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"items": items}})
}

// CreateStreakableItem handles POST /streakable-items.
func (h *MonitorHandler) CreateStreakableItem(c *fiber.Ctx) error {
	var req dto.CreateStreakableItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	current, _ := auth.SessionFromContext(c)
	item, err := h.monitor.CreateStreakableItem(c.UserContext(), current, upstream.CreateStreakableItemRequest{
		Title:           req.Title,
		Description:     req.Description,
		FrequencyPerDay: req.FrequencyPerDay,
		IntervalDays:    req.IntervalDays,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": item})
}

// Analytics handles GET /admin/analytics.
func (h *MonitorHandler) Analytics(c *fiber.Ctx) error {
	current, _ := auth.SessionFromContext(c)
	data, err := h.monitor.Analytics(c.UserContext(), current, c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": data})
}

// Broadcasts handles GET /admin/broadcasts.
func (h *MonitorHandler) Broadcasts(c *fiber.Ctx) error {
	current, _ := auth.SessionFromContext(c)
	broadcasts, err := h.monitor.Broadcasts(c.UserContext(), current)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"broadcasts": broadcasts}})
}

// SendBroadcast handles POST /admin/broadcasts.
func (h *MonitorHandler) SendBroadcast(c *fiber.Ctx) error {
	var req dto.SendBroadcastRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	current, _ := auth.SessionFromContext(c)
	broadcast, err := h.monitor.SendBroadcast(c.UserContext(), current, upstream.SendBroadcastRequest{
		Title:    req.Title,
		Content:  req.Content,
		Priority: req.Priority,
		Audience: req.Audience,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": broadcast})
}
