package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/warrior-admin-console/internal/domain"
	"github.com/spec-kit/warrior-admin-console/internal/events"
	"github.com/spec-kit/warrior-admin-console/internal/repository"
	"github.com/spec-kit/warrior-admin-console/internal/upstream"
	"github.com/spec-kit/warrior-admin-console/pkg/util"
)

type stubMonitorAPI struct {
	verifyCalls    int
	broadcastCalls int
	streakCalls    int
}

func (s *stubMonitorAPI) Stats(context.Context, string) (*domain.DashboardStats, error) {
	return &domain.DashboardStats{}, nil
}

func (s *stubMonitorAPI) Users(context.Context, string, upstream.ListParams) (*upstream.UserList, error) {
	return &upstream.UserList{}, nil
}

func (s *stubMonitorAPI) Verifications(context.Context, string, string) ([]domain.VerificationRequest, error) {
	return nil, nil
}

func (s *stubMonitorAPI) Verify(_ context.Context, _, id, status, _ string) (*domain.VerificationRequest, error) {
	s.verifyCalls++
	return &domain.VerificationRequest{ID: id, VerificationStatus: domain.VerificationStatus(status)}, nil
}

func (s *stubMonitorAPI) PainLogs(context.Context, string, upstream.ListParams) (*upstream.PainLogList, error) {
	return &upstream.PainLogList{}, nil
}

func (s *stubMonitorAPI) Tasks(context.Context, string, upstream.ListParams) (*upstream.TaskList, error) {
	return &upstream.TaskList{}, nil
}

func (s *stubMonitorAPI) Connections(context.Context, string, upstream.ListParams) (*upstream.ConnectionList, error) {
	return &upstream.ConnectionList{}, nil
}

func (s *stubMonitorAPI) StreakableItems(context.Context, string) ([]domain.StreakableItem, error) {
	return nil, nil
}

func (s *stubMonitorAPI) CreateStreakableItem(_ context.Context, _ string, req upstream.CreateStreakableItemRequest) (*domain.StreakableItem, error) {
	s.streakCalls++
	return &domain.StreakableItem{Title: req.Title}, nil
}

func (s *stubMonitorAPI) Analytics(context.Context, string, string, string) (*domain.AnalyticsData, error) {
	return &domain.AnalyticsData{}, nil
}

func (s *stubMonitorAPI) Broadcasts(context.Context, string) ([]domain.Broadcast, error) {
	return nil, nil
}

func (s *stubMonitorAPI) SendBroadcast(_ context.Context, _ string, req upstream.SendBroadcastRequest) (*domain.Broadcast, error) {
	s.broadcastCalls++
	return &domain.Broadcast{ID: "bc-1", Title: req.Title, Audience: req.Audience}, nil
}

func TestVerifyRejectsUnknownStatus(t *testing.T) {
	api := &stubMonitorAPI{}
	svc := NewMonitorService(api, nil, nil)

	_, err := svc.Verify(context.Background(), actorSession(), "vr-1", "maybe", "")
	require.Error(t, err)
	assert.Equal(t, "status", util.FieldOf(err))
	assert.Zero(t, api.verifyCalls)
}

func TestVerifyForwardsDecisionAndAudits(t *testing.T) {
	api := &stubMonitorAPI{}
	dispatcher := events.NewInMemoryDispatcher()
	repo := repository.NewInMemoryAuditRepository()
	NewAuditService(repo, dispatcher, nil).RegisterHandlers()
	svc := NewMonitorService(api, dispatcher, nil)

	request, err := svc.Verify(context.Background(), actorSession(), "vr-1", "approved", "looks genuine")
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationApproved, request.VerificationStatus)
	assert.Equal(t, 1, api.verifyCalls)

	entries, err := repo.List(context.Background(), repository.AuditFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, string(events.EventUserVerified), entries[0].Action)
	assert.Equal(t, "admin@example.com", entries[0].ActorEmail)
	assert.Equal(t, "approved", entries[0].Metadata["status"])
}

func TestSendBroadcastValidation(t *testing.T) {
	tests := []struct {
		name  string
		req   upstream.SendBroadcastRequest
		field string
	}{
		{"blank title", upstream.SendBroadcastRequest{Content: "body", Audience: "all"}, "title"},
		{"blank content", upstream.SendBroadcastRequest{Title: "heads up", Audience: "all"}, "content"},
		{"unknown audience", upstream.SendBroadcastRequest{Title: "heads up", Content: "body", Audience: "everyone"}, "audience"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &stubMonitorAPI{}
			svc := NewMonitorService(api, nil, nil)

			_, err := svc.SendBroadcast(context.Background(), actorSession(), tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.field, util.FieldOf(err))
			assert.Zero(t, api.broadcastCalls)
		})
	}
}

func TestSendBroadcastForwardsValidRequest(t *testing.T) {
	api := &stubMonitorAPI{}
	svc := NewMonitorService(api, nil, nil)

	broadcast, err := svc.SendBroadcast(context.Background(), actorSession(), upstream.SendBroadcastRequest{
		Title:    "clinic day",
		Content:  "free checkups on friday",
		Audience: "warriors",
	})
	require.NoError(t, err)
	assert.Equal(t, "bc-1", broadcast.ID)
	assert.Equal(t, 1, api.broadcastCalls)
}

func TestCreateStreakableItemRequiresTitle(t *testing.T) {
	api := &stubMonitorAPI{}
	svc := NewMonitorService(api, nil, nil)

	_, err := svc.CreateStreakableItem(context.Background(), actorSession(), upstream.CreateStreakableItemRequest{})
	require.Error(t, err)
	assert.Equal(t, "title", util.FieldOf(err))
	assert.Zero(t, api.streakCalls)
}
