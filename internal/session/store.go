package session

import "context"

// Snapshot is the persisted session state, raw and uninterpreted. The three
// fields mirror the browser console's storage schema: accessToken,
// refreshToken and the JSON-serialized identity under "user". Missing values
// read back as zero values, never as errors.
type Snapshot struct {
	AccessToken  string
	RefreshToken string
	UserJSON     []byte
}

// Empty reports whether no session state is persisted at all.
func (s Snapshot) Empty() bool {
	return s.AccessToken == "" && s.RefreshToken == "" && len(s.UserJSON) == 0
}

// Store is the durable key-value home of one console session. Save writes the
// whole snapshot as a single logical unit: a reader never observes a token
// without its identity or the reverse. Clear is idempotent.
type Store interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, snap Snapshot) error
	Clear(ctx context.Context) error
}

// Factory scopes a Store to one console session id. Backends that hold many
// sessions (redis, postgres) namespace by id; single-admin backends (file)
// may ignore it.
type Factory func(sessionID string) Store
