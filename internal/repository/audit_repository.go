package repository

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/warrior-admin-console/internal/domain"
)

// AuditRepository defines persistence access for the console audit log.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
	List(ctx context.Context, filter AuditFilter) ([]domain.AuditEntry, error)
}

// AuditFilter narrows audit-log queries.
type AuditFilter struct {
	Action string
	Limit  int
	Offset int
}

type auditRepository struct {
	pool *pgxpool.Pool
}

// NewAuditRepository returns a Postgres-backed implementation.
func NewAuditRepository(pool *pgxpool.Pool) AuditRepository {
	return &auditRepository{pool: pool}
}

func (r *auditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	const query = `
        INSERT INTO audit_log (id, session_id, actor_id, actor_email, action, metadata, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`

	var metadata []byte
	if entry.Metadata != nil {
		raw, err := json.Marshal(entry.Metadata)
		if err != nil {
			return err
		}
		metadata = raw
	}

	_, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.SessionID,
		entry.ActorID,
		entry.ActorEmail,
		entry.Action,
		metadata,
		entry.CreatedAt,
	)
	return err
}

func (r *auditRepository) List(ctx context.Context, filter AuditFilter) ([]domain.AuditEntry, error) {
	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	const query = `
        SELECT id, session_id, actor_id, actor_email, action, metadata, created_at
        FROM audit_log
        WHERE ($1 = '' OR action = $1)
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, filter.Action, limit, filter.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.AuditEntry, 0, limit)
	for rows.Next() {
		var entry domain.AuditEntry
		var metadata []byte
		if err := rows.Scan(
			&entry.ID,
			&entry.SessionID,
			&entry.ActorID,
			&entry.ActorEmail,
			&entry.Action,
			&metadata,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		if len(metadata) > 0 {
			_ = json.Unmarshal(metadata, &entry.Metadata)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// InMemoryAuditRepository keeps entries in memory when Postgres is not
// configured, so the activity page still works in development.
type InMemoryAuditRepository struct {
	mu      sync.RWMutex
	entries []domain.AuditEntry
}

// NewInMemoryAuditRepository builds an empty in-memory log.
func NewInMemoryAuditRepository() *InMemoryAuditRepository {
	return &InMemoryAuditRepository{}
}

// Insert appends the entry.
func (r *InMemoryAuditRepository) Insert(_ context.Context, entry *domain.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

// List returns entries newest first.
func (r *InMemoryAuditRepository) List(_ context.Context, filter AuditFilter) ([]domain.AuditEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	out := make([]domain.AuditEntry, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		entry := r.entries[i]
		if filter.Action != "" && entry.Action != filter.Action {
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}
