package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres persists one session as a single row in console_sessions. The
// upsert replaces all columns in one statement, so partial state is never
// visible.
type Postgres struct {
	pool      *pgxpool.Pool
	sessionID string
}

// NewPostgres builds a postgres store for the session id.
func NewPostgres(pool *pgxpool.Pool, sessionID string) *Postgres {
	return &Postgres{pool: pool, sessionID: sessionID}
}

// Load reads the session row; a missing row is an empty snapshot.
func (p *Postgres) Load(ctx context.Context) (Snapshot, error) {
	const query = `
        SELECT access_token, refresh_token, user_json
        FROM console_sessions WHERE sid=$1`

	var snap Snapshot
	if err := p.pool.QueryRow(ctx, query, p.sessionID).Scan(
		&snap.AccessToken,
		&snap.RefreshToken,
		&snap.UserJSON,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Snapshot{}, nil
		}
		return Snapshot{}, fmt.Errorf("load session row: %w", err)
	}
	return snap, nil
}

// Save upserts the row.
func (p *Postgres) Save(ctx context.Context, snap Snapshot) error {
	const query = `
        INSERT INTO console_sessions (sid, access_token, refresh_token, user_json, updated_at)
        VALUES ($1, $2, $3, $4, NOW())
        ON CONFLICT (sid) DO UPDATE
        SET access_token=EXCLUDED.access_token,
            refresh_token=EXCLUDED.refresh_token,
            user_json=EXCLUDED.user_json,
            updated_at=NOW()`

	if _, err := p.pool.Exec(ctx, query, p.sessionID, snap.AccessToken, snap.RefreshToken, snap.UserJSON); err != nil {
		return fmt.Errorf("save session row: %w", err)
	}
	return nil
}

// Clear deletes the row; zero rows affected is fine.
func (p *Postgres) Clear(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, `DELETE FROM console_sessions WHERE sid=$1`, p.sessionID); err != nil {
		return fmt.Errorf("clear session row: %w", err)
	}
	return nil
}

// NewPostgresFactory scopes postgres stores per session id.
func NewPostgresFactory(pool *pgxpool.Pool) Factory {
	return func(sessionID string) Store {
		return NewPostgres(pool, sessionID)
	}
}
