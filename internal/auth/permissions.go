package auth

import (
	"github.com/spec-kit/warrior-admin-console/internal/domain"
)

// Capability names a unit of access control drawn from a closed catalog. The
// catalog only changes with a release, never at runtime.
type Capability string

const (
	CapManageUsers    Capability = "manage_users"
	CapManageAdmins   Capability = "manage_admins"
	CapManageContent  Capability = "manage_content"
	CapViewLogs       Capability = "view_logs"
	CapManageFinance  Capability = "manage_finance"
	CapManageSettings Capability = "manage_settings"
)

// CapabilityNone marks an ungated entry: visible to any authenticated admin.
const CapabilityNone Capability = ""

// Catalog returns the closed capability enumeration.
func Catalog() []Capability {
	return []Capability{
		CapManageUsers,
		CapManageAdmins,
		CapManageContent,
		CapViewLogs,
		CapManageFinance,
		CapManageSettings,
	}
}

// InCatalog reports whether the capability belongs to the closed catalog.
func InCatalog(capability Capability) bool {
	for _, known := range Catalog() {
		if capability == known {
			return true
		}
	}
	return false
}

// IsAuthorizedRole is the single admin-only predicate shared by login and
// session restore.
func IsAuthorizedRole(identity *domain.Identity) bool {
	return identity != nil && identity.Role == domain.RoleAdmin
}

// HasPermission reports whether the session grants the capability. Pure: no
// caching, re-evaluated on every check since the permission set can change
// after a profile update. CapabilityNone means "no restriction" and holds for
// any active session. An absent permission list grants nothing.
func HasPermission(session *domain.Session, capability Capability) bool {
	if !session.Active() {
		return false
	}
	if capability == CapabilityNone {
		return true
	}
	for _, granted := range session.User.Permissions {
		if granted == string(capability) {
			return true
		}
	}
	return false
}
