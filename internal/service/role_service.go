package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/warrior-admin-console/internal/auth"
	"github.com/spec-kit/warrior-admin-console/internal/domain"
	"github.com/spec-kit/warrior-admin-console/internal/events"
	"github.com/spec-kit/warrior-admin-console/internal/upstream"
	"github.com/spec-kit/warrior-admin-console/pkg/util"
)

// RoleAPI is the slice of the upstream client that role management needs.
type RoleAPI interface {
	Roles(ctx context.Context, token string) ([]domain.RoleDefinition, error)
	CreateRole(ctx context.Context, token string, req upstream.CreateRoleRequest) (*domain.RoleDefinition, error)
}

// RoleService creates and lists role definitions. Validation here is a guard
// rail: the upstream platform is the source of truth and may still reject.
type RoleService struct {
	api        RoleAPI
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewRoleService builds the service.
func NewRoleService(api RoleAPI, dispatcher events.Dispatcher, logger *zap.Logger) *RoleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RoleService{api: api, dispatcher: dispatcher, logger: logger}
}

// List fetches role definitions for the current session.
func (s *RoleService) List(ctx context.Context, session *domain.Session) ([]domain.RoleDefinition, error) {
	return s.api.Roles(ctx, session.AccessToken)
}

// Create validates and forwards a new role definition. Violations are
// rejected before any upstream call.
func (s *RoleService) Create(ctx context.Context, session *domain.Session, name, description string, permissions []string) (*domain.RoleDefinition, error) {
	if strings.TrimSpace(name) == "" {
		return nil, util.NewFieldError("name", "role name is required")
	}
	if len(permissions) == 0 {
		return nil, util.NewFieldError("permissions", "a role requires at least one permission")
	}
	for _, permission := range permissions {
		if !auth.InCatalog(auth.Capability(permission)) {
			return nil, util.NewFieldError("permissions", "unknown permission "+permission)
		}
	}

	role, err := s.api.CreateRole(ctx, session.AccessToken, upstream.CreateRoleRequest{
		Name:        name,
		Description: description,
		Permissions: permissions,
	})
	if err != nil {
		return nil, err
	}

	s.publishCreated(ctx, session, role)
	return role, nil
}

func (s *RoleService) publishCreated(ctx context.Context, session *domain.Session, role *domain.RoleDefinition) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventRoleCreated,
		Actor:     events.Actor{ID: session.User.ID, Email: session.User.Email},
		Timestamp: time.Now(),
		Payload: events.RoleCreatedPayload{
			RoleID:      role.ID,
			Name:        role.Name,
			Permissions: role.Permissions,
		},
	})
}
