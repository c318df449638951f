package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/spec-kit/warrior-admin-console/internal/domain"
	"github.com/spec-kit/warrior-admin-console/internal/events"
	"github.com/spec-kit/warrior-admin-console/internal/repository"
)

// AuditService turns console events into audit-log entries. The entries back
// the activity-logs page, which has no upstream endpoint.
type AuditService struct {
	repo       repository.AuditRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(repo repository.AuditRepository, dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditService{repo: repo, dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to every audited event type.
func (s *AuditService) RegisterHandlers() {
	if s.dispatcher == nil {
		return
	}
	for _, eventType := range []events.EventType{
		events.EventSessionLoggedIn,
		events.EventSessionLoggedOut,
		events.EventAccessDenied,
		events.EventRoleCreated,
		events.EventAdminCreated,
		events.EventUserVerified,
		events.EventBroadcastSent,
	} {
		s.dispatcher.Subscribe(eventType, s.record)
	}
}

// List returns recent audit entries, newest first.
func (s *AuditService) List(ctx context.Context, filter repository.AuditFilter) ([]domain.AuditEntry, error) {
	return s.repo.List(ctx, filter)
}

func (s *AuditService) record(ctx context.Context, event events.Event) error {
	entry := &domain.AuditEntry{
		ID:         event.ID,
		SessionID:  event.SessionID,
		ActorID:    event.Actor.ID,
		ActorEmail: event.Actor.Email,
		Action:     string(event.Type),
		Metadata:   payloadToMetadata(event.Payload),
		CreatedAt:  event.Timestamp,
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		s.logger.Error("failed to persist audit entry",
			zap.String("action", entry.Action),
			zap.Error(err))
		return err
	}
	s.logger.Info("audit",
		zap.String("action", entry.Action),
		zap.String("actor", entry.ActorEmail))
	return nil
}

func payloadToMetadata(payload interface{}) map[string]any {
	if payload == nil {
		return nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil
	}
	var metadata map[string]any
	if err := json.Unmarshal(raw, &metadata); err != nil {
		return nil
	}
	return metadata
}
