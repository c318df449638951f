package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/warrior-admin-console/internal/domain"
)

func adminSession(permissions ...string) *domain.Session {
	return &domain.Session{
		User: &domain.Identity{
			ID:          "adm-1",
			Email:       "admin@example.com",
			Role:        domain.RoleAdmin,
			Permissions: permissions,
		},
		AccessToken: "token",
	}
}

func TestHasPermission(t *testing.T) {
	tests := []struct {
		name       string
		session    *domain.Session
		capability Capability
		want       bool
	}{
		{
			name:       "nil session grants nothing",
			session:    nil,
			capability: CapManageUsers,
			want:       false,
		},
		{
			name:       "inactive session grants nothing",
			session:    &domain.Session{},
			capability: CapManageUsers,
			want:       false,
		},
		{
			name:       "session without token is inactive",
			session:    &domain.Session{User: &domain.Identity{Role: domain.RoleAdmin}},
			capability: CapManageUsers,
			want:       false,
		},
		{
			name:       "granted capability",
			session:    adminSession("manage_users", "view_logs"),
			capability: CapManageUsers,
			want:       true,
		},
		{
			name:       "absent capability",
			session:    adminSession("manage_users"),
			capability: CapManageAdmins,
			want:       false,
		},
		{
			name:       "empty permission list grants nothing",
			session:    adminSession(),
			capability: CapViewLogs,
			want:       false,
		},
		{
			name:       "ungated check holds for any active session",
			session:    adminSession(),
			capability: CapabilityNone,
			want:       true,
		},
		{
			name:       "ungated check still requires an active session",
			session:    &domain.Session{},
			capability: CapabilityNone,
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPermission(tt.session, tt.capability))
		})
	}
}

func TestHasPermissionReflectsIdentityChange(t *testing.T) {
	session := adminSession("manage_users")
	assert.True(t, HasPermission(session, CapManageUsers))

	// A profile update can narrow the permission set; the check is
	// re-evaluated, not cached.
	session.User.Permissions = []string{"view_logs"}
	assert.False(t, HasPermission(session, CapManageUsers))
	assert.True(t, HasPermission(session, CapViewLogs))
}

func TestInCatalog(t *testing.T) {
	for _, capability := range Catalog() {
		assert.True(t, InCatalog(capability), string(capability))
	}
	assert.False(t, InCatalog(Capability("delete_everything")))
	assert.False(t, InCatalog(CapabilityNone))
}

func TestIsAuthorizedRole(t *testing.T) {
	assert.False(t, IsAuthorizedRole(nil))
	assert.False(t, IsAuthorizedRole(&domain.Identity{Role: domain.RoleWarrior}))
	assert.False(t, IsAuthorizedRole(&domain.Identity{Role: domain.RoleGuardian}))
	assert.False(t, IsAuthorizedRole(&domain.Identity{Role: domain.RoleCaregiver}))
	assert.True(t, IsAuthorizedRole(&domain.Identity{Role: domain.RoleAdmin}))
}
