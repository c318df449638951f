package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/warrior-admin-console/internal/api/http/handlers"
	"github.com/spec-kit/warrior-admin-console/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Session    *handlers.SessionHandler
	Navigation *handlers.NavigationHandler
	Roles      *handlers.RolesHandler
	Monitor    *handlers.MonitorHandler
	Activity   *handlers.ActivityHandler
	SessionMW  fiber.Handler
}

// RegisterRoutes wires HTTP routes. Capability gates mirror the navigation
// catalog so a hidden link is also an unreachable route on this gateway.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Session.Login)
	authGroup.Post("/forgot-password", cfg.Session.ForgotPassword)
	authGroup.Post("/reset-password", cfg.Session.ResetPassword)

	// Logout skips RequireSession: clearing an already cleared session is a
	// success, not a 401.
	authGroup.Post("/logout", cfg.SessionMW, cfg.Session.Logout)

	authed := authGroup.Group("", cfg.SessionMW, auth.RequireSession())
	authed.Get("/session", cfg.Session.Me)
	authed.Put("/profile", cfg.Session.UpdateProfile)
	authed.Post("/change-password", cfg.Session.ChangePassword)

	app.Get("/navigation", cfg.SessionMW, auth.RequireSession(), cfg.Navigation.Sections)

	admin := app.Group("/admin", cfg.SessionMW, auth.RequireSession())
	admin.Get("/stats", cfg.Monitor.Stats)
	admin.Get("/users", auth.RequireCapability(auth.CapManageUsers), cfg.Monitor.Users)
	admin.Get("/verifications", auth.RequireCapability(auth.CapManageUsers), cfg.Monitor.Verifications)
	admin.Post("/verifications/:id/verify", auth.RequireCapability(auth.CapManageUsers), cfg.Monitor.Verify)
	admin.Get("/connections", auth.RequireCapability(auth.CapManageUsers), cfg.Monitor.Connections)
	admin.Get("/tasks", auth.RequireCapability(auth.CapManageUsers), cfg.Monitor.Tasks)
	admin.Get("/pain-logs", auth.RequireCapability(auth.CapViewLogs), cfg.Monitor.PainLogs)
	admin.Get("/analytics", auth.RequireCapability(auth.CapViewLogs), cfg.Monitor.Analytics)
	admin.Get("/activity", auth.RequireCapability(auth.CapViewLogs), cfg.Activity.List)
	admin.Get("/broadcasts", auth.RequireCapability(auth.CapManageContent), cfg.Monitor.Broadcasts)
	admin.Post("/broadcasts", auth.RequireCapability(auth.CapManageContent), cfg.Monitor.SendBroadcast)
	admin.Get("/roles", auth.RequireCapability(auth.CapManageAdmins), cfg.Roles.List)
	admin.Post("/roles", auth.RequireCapability(auth.CapManageAdmins), cfg.Roles.CreateRole)
	admin.Post("/admins", auth.RequireCapability(auth.CapManageAdmins), cfg.Roles.CreateAdmin)

	items := app.Group("/streakable-items", cfg.SessionMW, auth.RequireSession(), auth.RequireCapability(auth.CapManageContent))
	items.Get("/", cfg.Monitor.StreakableItems)
	items.Post("/", cfg.Monitor.CreateStreakableItem)
}
