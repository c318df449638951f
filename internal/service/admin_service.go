package service

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/warrior-admin-console/internal/domain"
	"github.com/spec-kit/warrior-admin-console/internal/events"
	"github.com/spec-kit/warrior-admin-console/internal/upstream"
	"github.com/spec-kit/warrior-admin-console/pkg/util"
)

const (
	minAdminAge       = 18
	minPasswordLen    = 8
	minPhoneNumberLen = 10
)

// AdminAPI is the slice of the upstream client that admin creation needs.
type AdminAPI interface {
	Roles(ctx context.Context, token string) ([]domain.RoleDefinition, error)
	CreateAdmin(ctx context.Context, token string, req upstream.CreateAdminRequest) (*domain.Identity, error)
}

// AdminService creates admin accounts bound to a role definition.
type AdminService struct {
	api        AdminAPI
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAdminService builds the service.
func NewAdminService(api AdminAPI, dispatcher events.Dispatcher, logger *zap.Logger) *AdminService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminService{api: api, dispatcher: dispatcher, logger: logger}
}

// Create validates and forwards a new admin account. All field checks run
// before any upstream call; the role check then verifies the role id against
// the fetched role list rather than accepting arbitrary text.
func (s *AdminService) Create(ctx context.Context, session *domain.Session, req upstream.CreateAdminRequest) (*domain.Identity, error) {
	if err := validateAdminRequest(req); err != nil {
		return nil, err
	}

	roles, err := s.api.Roles(ctx, session.AccessToken)
	if err != nil {
		return nil, err
	}
	if !roleExists(roles, req.RoleID) {
		return nil, util.NewFieldError("roleId", "role does not exist")
	}

	admin, err := s.api.CreateAdmin(ctx, session.AccessToken, req)
	if err != nil {
		return nil, err
	}

	s.publishCreated(ctx, session, admin, req.RoleID)
	return admin, nil
}

func validateAdminRequest(req upstream.CreateAdminRequest) error {
	if strings.TrimSpace(req.FullName) == "" {
		return util.NewFieldError("fullName", "full name is required")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return util.NewFieldError("email", "email is not well-formed")
	}
	if len(req.PhoneNumber) < minPhoneNumberLen {
		return util.NewFieldError("phoneNumber", "phone number too short")
	}
	if len(req.EmergencyContact) < minPhoneNumberLen {
		return util.NewFieldError("emergencyContact", "emergency contact too short")
	}
	if len(req.Password) < minPasswordLen {
		return util.NewFieldError("password", "password must be at least 8 characters")
	}
	if req.Age < minAdminAge {
		return util.NewFieldError("age", "admin must be at least 18")
	}
	if strings.TrimSpace(req.RoleID) == "" {
		return util.NewFieldError("roleId", "role is required")
	}
	return nil
}

func roleExists(roles []domain.RoleDefinition, roleID string) bool {
	for _, role := range roles {
		if role.ID == roleID {
			return true
		}
	}
	return false
}

func (s *AdminService) publishCreated(ctx context.Context, session *domain.Session, admin *domain.Identity, roleID string) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventAdminCreated,
		Actor:     events.Actor{ID: session.User.ID, Email: session.User.Email},
		Timestamp: time.Now(),
		Payload: events.AdminCreatedPayload{
			AdminID: admin.ID,
			Email:   admin.Email,
			RoleID:  roleID,
		},
	})
}
