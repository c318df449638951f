package nav

import (
	"github.com/spec-kit/warrior-admin-console/internal/auth"
)

// Entry is one link in the console menu, optionally gated by a capability.
type Entry struct {
	Label    string          `json:"label"`
	Route    string          `json:"route"`
	Icon     string          `json:"icon"`
	Requires auth.Capability `json:"requires,omitempty"`
}

// Section is a fixed named group of entries. Order of sections and of entries
// within a section defines on-screen order.
type Section struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

// Catalog returns the full navigation layout. Entries with no required
// capability are visible to every authenticated admin.
func Catalog() []Section {
	return []Section{
		{
			Name: "Main",
			Entries: []Entry{
				{Label: "Overview", Route: "/overview", Icon: "layout-dashboard"},
				{Label: "Users", Route: "/users", Icon: "users", Requires: auth.CapManageUsers},
				{Label: "Verify", Route: "/verify", Icon: "badge-check", Requires: auth.CapManageUsers},
				{Label: "Analytics", Route: "/analytics", Icon: "bar-chart-3", Requires: auth.CapViewLogs},
				{Label: "Broadcast", Route: "/broadcast", Icon: "megaphone", Requires: auth.CapManageContent},
				{Label: "Reports", Route: "/reports", Icon: "file-text", Requires: auth.CapViewLogs},
			},
		},
		{
			Name: "Management",
			Entries: []Entry{
				{Label: "Connections", Route: "/connections", Icon: "link-2", Requires: auth.CapManageUsers},
				{Label: "Tasks", Route: "/tasks", Icon: "clipboard-list", Requires: auth.CapManageUsers},
				{Label: "Pain Logs", Route: "/pain-logs", Icon: "activity", Requires: auth.CapViewLogs},
				{Label: "Streakable Items", Route: "/streakable-items", Icon: "flame", Requires: auth.CapManageContent},
				{Label: "Activity Logs", Route: "/activity-logs", Icon: "history", Requires: auth.CapViewLogs},
			},
		},
		{
			Name: "System",
			Entries: []Entry{
				{Label: "Settings", Route: "/settings", Icon: "settings", Requires: auth.CapManageSettings},
			},
		},
	}
}
