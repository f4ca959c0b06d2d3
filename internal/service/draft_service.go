package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/quizforge/quizforge-backend/internal/config"
	"github.com/quizforge/quizforge-backend/internal/editor"
	"github.com/quizforge/quizforge-backend/internal/model"
	"github.com/quizforge/quizforge-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ErrDraftNotFound is returned when no editor session exists for a draft ID.
var ErrDraftNotFound = errors.New("draft not found")

// ErrDraftInvalid wraps pre-commit validation failures.
type ErrDraftInvalid struct {
	Fields map[string]string
}

func (e *ErrDraftInvalid) Error() string {
	return fmt.Sprintf("draft validation failed: %d field(s)", len(e.Fields))
}

// DraftEvent is published on the draft's Redis channel after every mutation.
type DraftEvent struct {
	DraftID   string    `json:"draft_id"`
	AuthorID  int       `json:"author_id"`
	Kind      string    `json:"kind"` // "updated", "committed", "discarded"
	Timestamp time.Time `json:"timestamp"`
}

// DraftService manages server-side editor sessions. The live draft lives in
// Redis under a TTL; every mutation loads it, applies one editor operation,
// stores it back and queues the draft for durable autosave. Commit validates
// and promotes the draft into the saved question list.
type DraftService struct {
	cfg          *config.Config
	rdb          *redis.Client
	questionRepo *repository.QuestionRepository
	log          zerolog.Logger
}

// NewDraftService creates a new DraftService.
func NewDraftService(cfg *config.Config, rdb *redis.Client, questionRepo *repository.QuestionRepository, log zerolog.Logger) *DraftService {
	return &DraftService{
		cfg:          cfg,
		rdb:          rdb,
		questionRepo: questionRepo,
		log:          log.With().Str("component", "draft_service").Logger(),
	}
}

// Open starts an editor session. With a nil question a blank coding draft is
// created; otherwise the given question is opened for editing as-is.
func (s *DraftService) Open(ctx context.Context, authorID int, q *model.Question) (*editor.Draft, error) {
	var draft *editor.Draft
	if q == nil {
		draft = editor.NewBlankDraft()
	} else {
		draft = editor.NewDraft(*q)
	}
	if err := s.store(ctx, authorID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Get loads the current state of an editor session.
func (s *DraftService) Get(ctx context.Context, authorID int, draftID string) (*editor.Draft, error) {
	return s.load(ctx, authorID, draftID)
}

// Apply loads the draft, runs one mutation against it and persists the
// result. The mutation only runs when the draft exists; a failed mutation
// leaves the stored draft untouched.
func (s *DraftService) Apply(ctx context.Context, authorID int, draftID string, mutate func(*editor.Draft) error) (*editor.Draft, error) {
	draft, err := s.load(ctx, authorID, draftID)
	if err != nil {
		return nil, err
	}
	if err := mutate(draft); err != nil {
		return nil, err
	}
	if err := s.store(ctx, authorID, draft); err != nil {
		return nil, err
	}
	s.publish(ctx, authorID, draftID, "updated")
	s.queueFlush(ctx, authorID, draftID)
	return draft, nil
}

// Commit validates the draft and, on success, upserts its question into the
// saved list and ends the session. Validation failures are returned as
// *ErrDraftInvalid with the per-field messages; the session stays open.
func (s *DraftService) Commit(ctx context.Context, authorID int, draftID string) (*model.Question, error) {
	draft, err := s.load(ctx, authorID, draftID)
	if err != nil {
		return nil, err
	}

	if fields := draft.Validate(); len(fields) > 0 {
		return nil, &ErrDraftInvalid{Fields: fields}
	}

	if err := s.questionRepo.Upsert(ctx, &draft.Question); err != nil {
		return nil, fmt.Errorf("commit draft: %w", err)
	}

	if err := s.rdb.Del(ctx, config.CacheKey.DraftKey(authorID, draftID)).Err(); err != nil {
		s.log.Warn().Err(err).Str("draft_id", draftID).Msg("Failed to clear committed draft")
	}
	s.publish(ctx, authorID, draftID, "committed")

	return &draft.Question, nil
}

// Discard ends an editor session without committing.
func (s *DraftService) Discard(ctx context.Context, authorID int, draftID string) error {
	key := config.CacheKey.DraftKey(authorID, draftID)
	n, err := s.rdb.Del(ctx, key).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrDraftNotFound
	}
	s.publish(ctx, authorID, draftID, "discarded")
	return nil
}

func (s *DraftService) load(ctx context.Context, authorID int, draftID string) (*editor.Draft, error) {
	raw, err := s.rdb.Get(ctx, config.CacheKey.DraftKey(authorID, draftID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("load draft: %w", err)
	}
	var draft editor.Draft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	return &draft, nil
}

func (s *DraftService) store(ctx context.Context, authorID int, draft *editor.Draft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	key := config.CacheKey.DraftKey(authorID, draft.Question.ID)
	if err := s.rdb.Set(ctx, key, raw, s.cfg.DraftTTL).Err(); err != nil {
		return fmt.Errorf("store draft: %w", err)
	}
	return nil
}

// publish emits a draft event. A failed publish is logged and swallowed,
// subscribers just miss one notification.
func (s *DraftService) publish(ctx context.Context, authorID int, draftID, kind string) {
	event := DraftEvent{
		DraftID:   draftID,
		AuthorID:  authorID,
		Kind:      kind,
		Timestamp: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	channel := config.CacheKey.DraftEventChannel(draftID)
	if err := s.rdb.Publish(ctx, channel, payload).Err(); err != nil {
		s.log.Warn().Err(err).Str("draft_id", draftID).Msg("Failed to publish draft event")
	}
}

// flushEntry is what the flush worker pops off the queue.
type flushEntry struct {
	AuthorID int    `json:"author_id"`
	DraftID  string `json:"draft_id"`
}

// queueFlush enqueues the draft for the durable autosave worker.
func (s *DraftService) queueFlush(ctx context.Context, authorID int, draftID string) {
	payload, err := json.Marshal(flushEntry{AuthorID: authorID, DraftID: draftID})
	if err != nil {
		return
	}
	if err := s.rdb.RPush(ctx, config.CacheKey.DraftFlushQueue(), payload).Err(); err != nil {
		s.log.Warn().Err(err).Str("draft_id", draftID).Msg("Failed to queue draft flush")
	}
}
