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

type stubAdminAPI struct {
	roles       []domain.RoleDefinition
	created     *domain.Identity
	rolesCalls  int
	createCalls int
}

func (s *stubAdminAPI) Roles(_ context.Context, _ string) ([]domain.RoleDefinition, error) {
	s.rolesCalls++
	return s.roles, nil
}

func (s *stubAdminAPI) CreateAdmin(_ context.Context, _ string, _ upstream.CreateAdminRequest) (*domain.Identity, error) {
	s.createCalls++
	return s.created, nil
}

func validAdminRequest() upstream.CreateAdminRequest {
	return upstream.CreateAdminRequest{
		FullName:         "New Admin",
		Email:            "new.admin@example.com",
		PhoneNumber:      "08012345678",
		EmergencyContact: "08087654321",
		Password:         "long-enough-secret",
		Age:              29,
		RoleID:           "role-1",
	}
}

func TestAdminCreateFieldValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*upstream.CreateAdminRequest)
		field  string
	}{
		{"blank full name", func(r *upstream.CreateAdminRequest) { r.FullName = "   " }, "fullName"},
		{"malformed email", func(r *upstream.CreateAdminRequest) { r.Email = "not-an-email" }, "email"},
		{"short phone number", func(r *upstream.CreateAdminRequest) { r.PhoneNumber = "12345" }, "phoneNumber"},
		{"short emergency contact", func(r *upstream.CreateAdminRequest) { r.EmergencyContact = "12345" }, "emergencyContact"},
		{"short password", func(r *upstream.CreateAdminRequest) { r.Password = "short" }, "password"},
		{"underage", func(r *upstream.CreateAdminRequest) { r.Age = 17 }, "age"},
		{"missing role", func(r *upstream.CreateAdminRequest) { r.RoleID = "" }, "roleId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &stubAdminAPI{}
			svc := NewAdminService(api, nil, nil)

			req := validAdminRequest()
			tt.mutate(&req)

			_, err := svc.Create(context.Background(), actorSession(), req)
			require.Error(t, err)
			assert.Equal(t, tt.field, util.FieldOf(err))
			assert.Zero(t, api.rolesCalls, "field validation runs before any upstream call")
			assert.Zero(t, api.createCalls)
		})
	}
}

func TestAdminCreateRejectsUnknownRole(t *testing.T) {
	api := &stubAdminAPI{roles: []domain.RoleDefinition{{ID: "role-other"}}}
	svc := NewAdminService(api, nil, nil)

	_, err := svc.Create(context.Background(), actorSession(), validAdminRequest())
	require.Error(t, err)
	assert.Equal(t, "roleId", util.FieldOf(err))
	assert.Equal(t, 1, api.rolesCalls)
	assert.Zero(t, api.createCalls)
}

func TestAdminCreateForwardsValidRequest(t *testing.T) {
	api := &stubAdminAPI{
		roles:   []domain.RoleDefinition{{ID: "role-1", Name: "Moderator"}},
		created: &domain.Identity{ID: "adm-2", Email: "new.admin@example.com", Role: domain.RoleAdmin},
	}
	svc := NewAdminService(api, nil, nil)

	admin, err := svc.Create(context.Background(), actorSession(), validAdminRequest())
	require.NoError(t, err)
	assert.Equal(t, "adm-2", admin.ID)
	assert.Equal(t, 1, api.createCalls)
}
