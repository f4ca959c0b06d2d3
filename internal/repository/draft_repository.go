package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DraftRepository persists autosaved draft snapshots. The live editing state
// lives in Redis; this table is the durable copy the flush worker maintains.
type DraftRepository struct {
	pool *pgxpool.Pool
}

// NewDraftRepository creates a new DraftRepository.
func NewDraftRepository(pool *pgxpool.Pool) *DraftRepository {
	return &DraftRepository{pool: pool}
}

// Upsert writes a draft snapshot, creating or replacing it.
func (r *DraftRepository) Upsert(ctx context.Context, draftID string, authorID int, payload []byte) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO drafts (id, author_id, payload)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE
		 SET payload = EXCLUDED.payload, updated_at = NOW()`,
		draftID, authorID, payload,
	)
	return err
}

// Delete removes a draft snapshot, typically after commit or cancel.
func (r *DraftRepository) Delete(ctx context.Context, draftID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM drafts WHERE id = $1`, draftID)
	return err
}
