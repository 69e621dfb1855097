package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/certsprint/ppt-lms-backend/internal/config"
	"github.com/certsprint/ppt-lms-backend/internal/model"
	"github.com/certsprint/ppt-lms-backend/internal/repository"
)

// QuestionService handles the mock exam question pool: the loader used by
// the composer plus the admin management surface. The pool is cached in
// Redis with a short TTL, invalidated whenever an admin mutates questions.
type QuestionService struct {
	cfg          *config.Config
	questionRepo *repository.QuestionRepository
	rdb          *redis.Client
	log          zerolog.Logger
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(
	cfg *config.Config,
	questionRepo *repository.QuestionRepository,
	rdb *redis.Client,
	log zerolog.Logger,
) *QuestionService {
	return &QuestionService{
		cfg:          cfg,
		questionRepo: questionRepo,
		rdb:          rdb,
		log:          log.With().Str("component", "question_service").Logger(),
	}
}

// LoadPool returns every active question for an exam type. A cached copy is
// served when present; otherwise the database is queried and the result
// cached. An empty pool is a valid result, not an error; the composer
// degrades to the static fallback on its own terms.
func (s *QuestionService) LoadPool(ctx context.Context, examType string) ([]model.Question, error) {
	cacheKey := config.CacheKey.QuestionPoolKey(examType)

	cached, err := s.rdb.Get(ctx, cacheKey).Bytes()
	if err == nil {
		var pool []model.Question
		if err := json.Unmarshal(cached, &pool); err == nil {
			return pool, nil
		}
		// Corrupt cache entry: fall through to the database.
		s.rdb.Del(ctx, cacheKey)
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Str("exam_type", examType).Msg("Pool cache read failed")
	}

	pool, err := s.questionRepo.ListActiveByExamType(ctx, examType)
	if err != nil {
		return nil, fmt.Errorf("list active questions: %w", err)
	}

	if raw, err := json.Marshal(pool); err == nil {
		if err := s.rdb.Set(ctx, cacheKey, raw, s.cfg.PoolCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Str("exam_type", examType).Msg("Pool cache write failed")
		}
	}

	return pool, nil
}

// List returns the admin view of the pool with pagination.
func (s *QuestionService) List(ctx context.Context, examType string, page, perPage int) ([]model.Question, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}
	questions, total, err := s.questionRepo.ListByExamType(ctx, examType, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, err
	}
	if questions == nil {
		questions = []model.Question{}
	}
	return questions, total, nil
}

// Create inserts a new pool question and invalidates the pool cache.
func (s *QuestionService) Create(ctx context.Context, q *model.Question) error {
	if err := s.questionRepo.Create(ctx, q); err != nil {
		return fmt.Errorf("create question: %w", err)
	}
	s.invalidatePool(ctx, q.ExamType)
	return nil
}

// Update replaces a pool question's content and invalidates the pool cache.
func (s *QuestionService) Update(ctx context.Context, q *model.Question) error {
	if err := s.questionRepo.Update(ctx, q); err != nil {
		return fmt.Errorf("update question: %w", err)
	}
	s.invalidatePool(ctx, q.ExamType)
	return nil
}

// Deactivate soft-removes a question and invalidates the pool cache.
func (s *QuestionService) Deactivate(ctx context.Context, id int64, examType string) error {
	if err := s.questionRepo.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("deactivate question: %w", err)
	}
	s.invalidatePool(ctx, examType)
	return nil
}

func (s *QuestionService) invalidatePool(ctx context.Context, examType string) {
	if err := s.rdb.Del(ctx, config.CacheKey.QuestionPoolKey(examType)).Err(); err != nil {
		s.log.Warn().Err(err).Str("exam_type", examType).Msg("Pool cache invalidation failed")
	}
}
