package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/warrior-admin-console/internal/auth"
	"github.com/spec-kit/warrior-admin-console/internal/domain"
	"github.com/spec-kit/warrior-admin-console/pkg/util"
)

// ErrSessionCorrupt marks persisted state that exists but cannot be
// interpreted. It never escapes Restore; corrupt state degrades to logged out
// with the store cleared.
var ErrSessionCorrupt = errors.New("session state corrupt")

// Authenticator exchanges credentials for an upstream session.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*domain.Session, error)
}

// Manager establishes, restores and tears down one admin session. It is the
// only writer of its Store. Mutating operations are not serialized here;
// callers hold at most one in flight (the UI disables resubmission).
type Manager struct {
	store         Store
	authenticator Authenticator
	logger        *zap.Logger
	current       *domain.Session
}

// NewManager builds a manager over the given store.
func NewManager(store Store, authenticator Authenticator, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{store: store, authenticator: authenticator, logger: logger}
}

// Current returns the session as of the last operation. Before any operation
// it is inactive.
func (m *Manager) Current() *domain.Session {
	if m.current == nil {
		return &domain.Session{}
	}
	return m.current
}

// Login authenticates against the upstream platform. A non-admin identity is
// rejected with ErrAccessDenied and nothing is persisted, even though the
// remote call succeeded. On success tokens and identity are written as one
// unit and the session becomes active.
func (m *Manager) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	established, err := m.authenticator.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if !auth.IsAuthorizedRole(established.User) {
		m.logger.Warn("login rejected for non-admin role",
			zap.String("email", email),
			zap.String("role", string(established.User.Role)))
		return nil, util.NewRoleDenied(string(established.User.Role))
	}

	userJSON, err := json.Marshal(established.User)
	if err != nil {
		return nil, util.NewInternalError(err)
	}
	if err := m.store.Save(ctx, Snapshot{
		AccessToken:  established.AccessToken,
		RefreshToken: established.RefreshToken,
		UserJSON:     userJSON,
	}); err != nil {
		return nil, util.NewInternalError(err)
	}

	m.current = established
	m.logger.Info("session established", zap.String("admin_id", established.User.ID))
	return established, nil
}

// Restore activates the session from persisted state without a network call.
// It never fails outward: missing pieces, unparsable identity JSON or a
// non-admin role all clear the store and yield an inactive session. Calling
// it again with unchanged storage yields the same result.
func (m *Manager) Restore(ctx context.Context) *domain.Session {
	snap, err := m.store.Load(ctx)
	if err != nil {
		return m.discard(ctx, fmt.Errorf("%w: %v", ErrSessionCorrupt, err))
	}
	if snap.Empty() {
		m.current = &domain.Session{}
		return m.current
	}
	if snap.AccessToken == "" || len(snap.UserJSON) == 0 {
		return m.discard(ctx, fmt.Errorf("%w: partial state", ErrSessionCorrupt))
	}

	var identity domain.Identity
	if err := json.Unmarshal(snap.UserJSON, &identity); err != nil {
		return m.discard(ctx, fmt.Errorf("%w: %v", ErrSessionCorrupt, err))
	}
	if !auth.IsAuthorizedRole(&identity) {
		return m.discard(ctx, fmt.Errorf("%w: non-admin role %q", ErrSessionCorrupt, identity.Role))
	}

	m.current = &domain.Session{
		User:         &identity,
		AccessToken:  snap.AccessToken,
		RefreshToken: snap.RefreshToken,
	}
	return m.current
}

// Logout clears all persisted session state and deactivates the session.
// Callable when no session is active.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Clear(ctx); err != nil {
		return util.NewInternalError(err)
	}
	m.current = &domain.Session{}
	return nil
}

// UpdateIdentity replaces the identity snapshot after a profile edit, leaving
// tokens untouched. A no-op when no session is active.
func (m *Manager) UpdateIdentity(ctx context.Context, identity *domain.Identity) error {
	if !m.Current().Active() || identity == nil {
		return nil
	}

	userJSON, err := json.Marshal(identity)
	if err != nil {
		return util.NewInternalError(err)
	}
	if err := m.store.Save(ctx, Snapshot{
		AccessToken:  m.current.AccessToken,
		RefreshToken: m.current.RefreshToken,
		UserJSON:     userJSON,
	}); err != nil {
		return util.NewInternalError(err)
	}
	m.current.User = identity
	return nil
}

func (m *Manager) discard(ctx context.Context, cause error) *domain.Session {
	m.logger.Warn("discarding unusable session state", zap.Error(cause))
	if err := m.store.Clear(ctx); err != nil {
		m.logger.Error("failed to clear session store", zap.Error(err))
	}
	m.current = &domain.Session{}
	return m.current
}
