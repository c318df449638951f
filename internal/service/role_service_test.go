package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/warrior-admin-console/internal/domain"
	"github.com/spec-kit/warrior-admin-console/internal/upstream"
	"github.com/spec-kit/warrior-admin-console/pkg/util"
)

type stubRoleAPI struct {
	roles       []domain.RoleDefinition
	created     *domain.RoleDefinition
	listCalls   int
	createCalls int
	lastRequest upstream.CreateRoleRequest
}

func (s *stubRoleAPI) Roles(_ context.Context, _ string) ([]domain.RoleDefinition, error) {
	s.listCalls++
	return s.roles, nil
}

func (s *stubRoleAPI) CreateRole(_ context.Context, _ string, req upstream.CreateRoleRequest) (*domain.RoleDefinition, error) {
	s.createCalls++
	s.lastRequest = req
	return s.created, nil
}

func actorSession() *domain.Session {
	return &domain.Session{
		User:        &domain.Identity{ID: "adm-1", Email: "admin@example.com", Role: domain.RoleAdmin},
		AccessToken: "token",
	}
}

func TestRoleCreateRejectsEmptyName(t *testing.T) {
	api := &stubRoleAPI{}
	svc := NewRoleService(api, nil, nil)

	_, err := svc.Create(context.Background(), actorSession(), "  ", "", []string{"manage_users"})
	require.Error(t, err)
	assert.Equal(t, "name", util.FieldOf(err))
	assert.Zero(t, api.createCalls, "validation failures must not reach upstream")
}

func TestRoleCreateRejectsEmptyPermissions(t *testing.T) {
	api := &stubRoleAPI{}
	svc := NewRoleService(api, nil, nil)

	_, err := svc.Create(context.Background(), actorSession(), "Moderator", "", nil)
	require.Error(t, err)
	assert.Equal(t, "permissions", util.FieldOf(err))
	assert.Zero(t, api.createCalls)
}

func TestRoleCreateRejectsUnknownPermission(t *testing.T) {
	api := &stubRoleAPI{}
	svc := NewRoleService(api, nil, nil)

	_, err := svc.Create(context.Background(), actorSession(), "Moderator", "",
		[]string{"manage_users", "launch_rockets"})
	require.Error(t, err)
	assert.Equal(t, "permissions", util.FieldOf(err))
	assert.Zero(t, api.createCalls)
}

func TestRoleCreateForwardsValidRequest(t *testing.T) {
	api := &stubRoleAPI{
		created: &domain.RoleDefinition{
			ID:          "role-1",
			Name:        "Moderator",
			Permissions: []string{"manage_users", "view_logs"},
		},
	}
	svc := NewRoleService(api, nil, nil)

	role, err := svc.Create(context.Background(), actorSession(), "Moderator", "handles reports",
		[]string{"manage_users", "view_logs"})
	require.NoError(t, err)
	assert.Equal(t, "role-1", role.ID)
	assert.Equal(t, 1, api.createCalls)
	assert.Equal(t, "Moderator", api.lastRequest.Name)
	assert.Equal(t, "handles reports", api.lastRequest.Description)
	assert.Equal(t, []string{"manage_users", "view_logs"}, api.lastRequest.Permissions)
}

func TestRoleListDelegates(t *testing.T) {
	api := &stubRoleAPI{roles: []domain.RoleDefinition{{ID: "role-1", Name: "Moderator"}}}
	svc := NewRoleService(api, nil, nil)

	roles, err := svc.List(context.Background(), actorSession())
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, "Moderator", roles[0].Name)
	assert.Equal(t, 1, api.listCalls)
}
