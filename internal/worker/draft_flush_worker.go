package worker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/quizforge/quizforge-backend/internal/config"
	"github.com/quizforge/quizforge-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// DraftFlushWorker consumes the draft flush queue and writes draft snapshots
// to PostgreSQL. The live editing state stays in Redis; this worker keeps the
// durable copy current so an expired or evicted Redis key is not a total
// loss.
type DraftFlushWorker struct {
	draftRepo *repository.DraftRepository
	rdb       *redis.Client
	log       zerolog.Logger
}

// NewDraftFlushWorker creates a new DraftFlushWorker.
func NewDraftFlushWorker(draftRepo *repository.DraftRepository, rdb *redis.Client, log zerolog.Logger) *DraftFlushWorker {
	return &DraftFlushWorker{
		draftRepo: draftRepo,
		rdb:       rdb,
		log:       log.With().Str("component", "draft_flush_worker").Logger(),
	}
}

type flushPayload struct {
	AuthorID int    `json:"author_id"`
	DraftID  string `json:"draft_id"`
}

// Start begins the infinite worker loop. Call in a goroutine.
func (w *DraftFlushWorker) Start(ctx context.Context) {
	w.log.Info().Msg("Worker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopping...")
			// Drain remaining items before exit.
			w.drain(context.Background())
			w.log.Info().Msg("Worker stopped")
			return
		default:
			w.processNext(ctx)
		}
	}
}

func (w *DraftFlushWorker) processNext(ctx context.Context) {
	// BLPop blocks until an item is available or timeout (1 second).
	result, err := w.rdb.BLPop(ctx, time.Second, config.CacheKey.DraftFlushQueue()).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) && ctx.Err() == nil {
			w.log.Error().Err(err).Msg("BLPop error")
		}
		return
	}

	if len(result) < 2 {
		return
	}

	var payload flushPayload
	if err := json.Unmarshal([]byte(result[1]), &payload); err != nil {
		w.log.Error().Err(err).Msg("Unmarshal error")
		return
	}

	if err := w.flushDraft(ctx, &payload); err != nil {
		w.log.Error().Err(err).
			Int("author_id", payload.AuthorID).
			Str("draft_id", payload.DraftID).
			Msg("Flush error, retrying in 5s")
		// Push back to queue for retry.
		w.rdb.RPush(ctx, config.CacheKey.DraftFlushQueue(), result[1])
		time.Sleep(5 * time.Second)
	}
}

// flushDraft copies the current Redis draft snapshot into the drafts table.
// A draft that no longer exists in Redis (committed or discarded since the
// queue entry was written) is deleted from the durable copy instead.
func (w *DraftFlushWorker) flushDraft(ctx context.Context, p *flushPayload) error {
	raw, err := w.rdb.Get(ctx, config.CacheKey.DraftKey(p.AuthorID, p.DraftID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return w.draftRepo.Delete(ctx, p.DraftID)
		}
		return err
	}

	return w.draftRepo.Upsert(ctx, p.DraftID, p.AuthorID, raw)
}

// drain processes all remaining items in the queue before shutdown.
func (w *DraftFlushWorker) drain(ctx context.Context) {
	drained := 0
	for {
		result, err := w.rdb.LPop(ctx, config.CacheKey.DraftFlushQueue()).Result()
		if err != nil {
			break
		}

		var payload flushPayload
		if err := json.Unmarshal([]byte(result), &payload); err != nil {
			continue
		}
		if err := w.flushDraft(ctx, &payload); err != nil {
			w.log.Error().Err(err).Str("draft_id", payload.DraftID).Msg("Drain flush error")
			continue
		}
		drained++
	}

	if drained > 0 {
		w.log.Info().Int("count", drained).Msg("Drained flush queue")
	}
}
