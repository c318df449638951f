package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/warrior-admin-console/internal/domain"
	"github.com/spec-kit/warrior-admin-console/internal/events"
	"github.com/spec-kit/warrior-admin-console/internal/upstream"
	"github.com/spec-kit/warrior-admin-console/pkg/util"
)

// MonitorAPI is the slice of the upstream client the monitoring pages need.
type MonitorAPI interface {
	Stats(ctx context.Context, token string) (*domain.DashboardStats, error)
	Users(ctx context.Context, token string, params upstream.ListParams) (*upstream.UserList, error)
	Verifications(ctx context.Context, token, status string) ([]domain.VerificationRequest, error)
	Verify(ctx context.Context, token, id, status, note string) (*domain.VerificationRequest, error)
	PainLogs(ctx context.Context, token string, params upstream.ListParams) (*upstream.PainLogList, error)
	Tasks(ctx context.Context, token string, params upstream.ListParams) (*upstream.TaskList, error)
	Connections(ctx context.Context, token string, params upstream.ListParams) (*upstream.ConnectionList, error)
	StreakableItems(ctx context.Context, token string) ([]domain.StreakableItem, error)
	CreateStreakableItem(ctx context.Context, token string, req upstream.CreateStreakableItemRequest) (*domain.StreakableItem, error)
	Analytics(ctx context.Context, token, startDate, endDate string) (*domain.AnalyticsData, error)
	Broadcasts(ctx context.Context, token string) ([]domain.Broadcast, error)
	SendBroadcast(ctx context.Context, token string, req upstream.SendBroadcastRequest) (*domain.Broadcast, error)
}

// MonitorService fronts the read-mostly monitoring pages. Besides the two
// write actions (verification review, broadcast), everything passes through.
type MonitorService struct {
	api        MonitorAPI
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewMonitorService builds the service.
func NewMonitorService(api MonitorAPI, dispatcher events.Dispatcher, logger *zap.Logger) *MonitorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MonitorService{api: api, dispatcher: dispatcher, logger: logger}
}

func (s *MonitorService) Stats(ctx context.Context, session *domain.Session) (*domain.DashboardStats, error) {
	return s.api.Stats(ctx, session.AccessToken)
}

func (s *MonitorService) Users(ctx context.Context, session *domain.Session, params upstream.ListParams) (*upstream.UserList, error) {
	return s.api.Users(ctx, session.AccessToken, params)
}

func (s *MonitorService) Verifications(ctx context.Context, session *domain.Session, status string) ([]domain.VerificationRequest, error) {
	return s.api.Verifications(ctx, session.AccessToken, status)
}

// Verify records a review decision and audits it.
func (s *MonitorService) Verify(ctx context.Context, session *domain.Session, id, status, note string) (*domain.VerificationRequest, error) {
	switch domain.VerificationStatus(status) {
	case domain.VerificationApproved, domain.VerificationRejected:
	default:
		return nil, util.NewFieldError("status", "status must be approved or rejected")
	}

	request, err := s.api.Verify(ctx, session.AccessToken, id, status, note)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, session, events.EventUserVerified, events.UserVerifiedPayload{
		RequestID: request.ID,
		Status:    status,
		Note:      note,
	})
	return request, nil
}

func (s *MonitorService) PainLogs(ctx context.Context, session *domain.Session, params upstream.ListParams) (*upstream.PainLogList, error) {
	return s.api.PainLogs(ctx, session.AccessToken, params)
}

func (s *MonitorService) Tasks(ctx context.Context, session *domain.Session, params upstream.ListParams) (*upstream.TaskList, error) {
	return s.api.Tasks(ctx, session.AccessToken, params)
}

func (s *MonitorService) Connections(ctx context.Context, session *domain.Session, params upstream.ListParams) (*upstream.ConnectionList, error) {
	return s.api.Connections(ctx, session.AccessToken, params)
}

func (s *MonitorService) StreakableItems(ctx context.Context, session *domain.Session) ([]domain.StreakableItem, error) {
	return s.api.StreakableItems(ctx, session.AccessToken)
}

func (s *MonitorService) CreateStreakableItem(ctx context.Context, session *domain.Session, req upstream.CreateStreakableItemRequest) (*domain.StreakableItem, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, util.NewFieldError("title", "title is required")
	}
	return s.api.CreateStreakableItem(ctx, session.AccessToken, req)
}

func (s *MonitorService) Analytics(ctx context.Context, session *domain.Session, startDate, endDate string) (*domain.AnalyticsData, error) {
	return s.api.Analytics(ctx, session.AccessToken, startDate, endDate)
}

func (s *MonitorService) Broadcasts(ctx context.Context, session *domain.Session) ([]domain.Broadcast, error) {
	return s.api.Broadcasts(ctx, session.AccessToken)
}

// SendBroadcast validates and publishes an announcement, then audits it.
func (s *MonitorService) SendBroadcast(ctx context.Context, session *domain.Session, req upstream.SendBroadcastRequest) (*domain.Broadcast, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, util.NewFieldError("title", "title is required")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, util.NewFieldError("content", "content is required")
	}
	switch req.Audience {
	case "all", "warriors", "guardians", "caregivers":
	default:
		return nil, util.NewFieldError("audience", "unknown audience "+req.Audience)
	}

	broadcast, err := s.api.SendBroadcast(ctx, session.AccessToken, req)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, session, events.EventBroadcastSent, events.BroadcastSentPayload{
		BroadcastID: broadcast.ID,
		Title:       broadcast.Title,
		Audience:    broadcast.Audience,
	})
	return broadcast, nil
}

func (s *MonitorService) publish(ctx context.Context, session *domain.Session, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Actor:     events.Actor{ID: session.User.ID, Email: session.User.Email},
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
