package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/certsprint/ppt-lms-backend/internal/config"
	"github.com/certsprint/ppt-lms-backend/internal/model"
	"github.com/certsprint/ppt-lms-backend/internal/repository"
)

// DefaultExamType identifies the PowerPoint specialist mock exam.
const DefaultExamType = "ppt_specialist"

// Domain errors.
var (
	ErrAttemptNotStarted = errors.New("attempt not started")
)

// ClientMeta carries request network metadata into activity log entries.
type ClientMeta struct {
	IP        string
	UserAgent string
}

// AttemptService owns the mock exam attempt lifecycle. The attempt state
// and the composed exam live in Redis for the duration of the session;
// every transition loads state at entry and saves it at exit. Completed
// attempts are scored in memory and persisted to PostgreSQL, with activity
// entries queued for the background worker.
type AttemptService struct {
	cfg        *config.Config
	questions  *QuestionService
	resultRepo *repository.ResultRepository
	activity   *ActivityLogger
	rdb        *redis.Client
	log        zerolog.Logger
}

// NewAttemptService creates a new AttemptService.
func NewAttemptService(
	cfg *config.Config,
	questions *QuestionService,
	resultRepo *repository.ResultRepository,
	activity *ActivityLogger,
	rdb *redis.Client,
	log zerolog.Logger,
) *AttemptService {
	return &AttemptService{
		cfg:        cfg,
		questions:  questions,
		resultRepo: resultRepo,
		activity:   activity,
		rdb:        rdb,
		log:        log.With().Str("component", "attempt_service").Logger(),
	}
}

// QuestionView is a composed question as shown to the test-taker. The
// correct answer never leaves the server before submission.
type QuestionView struct {
	Sequence     int               `json:"sequence"`
	Domain       string            `json:"domain"`
	Text         string            `json:"text"`
	Kind         model.QuestionKind `json:"kind"`
	Options      map[string]string `json:"options"`
	Points       int               `json:"points"`
	Instructions string            `json:"instructions,omitempty"`
}

// AttemptView is the full state payload returned to the client.
type AttemptView struct {
	Started         bool           `json:"started"`
	TimeRemaining   int            `json:"time_remaining"`
	CurrentQuestion int            `json:"current_question"`
	Answers         map[int]string `json:"answers"`
	Flagged         []int          `json:"flagged"`
	Completed       bool           `json:"completed"`
	Submitted       bool           `json:"submitted"`
	Score           int            `json:"score"`
	TotalQuestions  int            `json:"total_questions"`
	Questions       []QuestionView `json:"questions,omitempty"`
}

// SubmitOutcome summarizes a scored submission.
type SubmitOutcome struct {
	Score          int  `json:"score"`
	Passed         bool `json:"passed"`
	Correct        int  `json:"correct"`
	Answered       int  `json:"answered"`
	TotalQuestions int  `json:"total_questions"`
}

// ─── Session store ─────────────────────────────────────────────────────────

func (s *AttemptService) loadAttempt(ctx context.Context, userID int, examType string) (*model.AttemptState, error) {
	raw, err := s.rdb.Get(ctx, config.CacheKey.AttemptStateKey(userID, examType)).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.NewAttemptState(s.cfg.ExamDuration), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load attempt state: %w", err)
	}

	st := &model.AttemptState{}
	if err := json.Unmarshal(raw, st); err != nil {
		return nil, fmt.Errorf("decode attempt state: %w", err)
	}
	if st.Answers == nil {
		st.Answers = make(map[int]string)
	}
	if st.Flagged == nil {
		st.Flagged = make(map[int]bool)
	}
	return st, nil
}

func (s *AttemptService) saveAttempt(ctx context.Context, userID int, examType string, st *model.AttemptState) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode attempt state: %w", err)
	}
	key := config.CacheKey.AttemptStateKey(userID, examType)
	if err := s.rdb.Set(ctx, key, raw, s.cfg.JWTExpiry).Err(); err != nil {
		return fmt.Errorf("save attempt state: %w", err)
	}
	return nil
}

func (s *AttemptService) loadExam(ctx context.Context, userID int, examType string) (*model.ComposedExam, error) {
	raw, err := s.rdb.Get(ctx, config.CacheKey.ComposedExamKey(userID, examType)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load composed exam: %w", err)
	}

	exam := &model.ComposedExam{}
	if err := json.Unmarshal(raw, exam); err != nil {
		return nil, fmt.Errorf("decode composed exam: %w", err)
	}
	return exam, nil
}

func (s *AttemptService) saveExam(ctx context.Context, userID int, examType string, exam *model.ComposedExam) error {
	raw, err := json.Marshal(exam)
	if err != nil {
		return fmt.Errorf("encode composed exam: %w", err)
	}
	key := config.CacheKey.ComposedExamKey(userID, examType)
	if err := s.rdb.Set(ctx, key, raw, s.cfg.JWTExpiry).Err(); err != nil {
		return fmt.Errorf("save composed exam: %w", err)
	}
	return nil
}

// ─── Transitions ───────────────────────────────────────────────────────────

// GetState returns the attempt view for the current session, creating an
// empty attempt on first touch. The lazy tick happens here: when the clock
// has run out on an in-progress attempt, the read itself forces a submit.
// A resumed session keeps its stored exam. Only start and reset recompose.
func (s *AttemptService) GetState(ctx context.Context, userID int, classID *int, examType string, meta ClientMeta) (*AttemptView, error) {
	st, err := s.loadAttempt(ctx, userID, examType)
	if err != nil {
		return nil, err
	}

	if !st.Started {
		return s.buildView(st, nil), nil
	}

	exam, err := s.loadExam(ctx, userID, examType)
	if err != nil {
		return nil, err
	}

	if _, expired := Tick(st, s.cfg.ExamDuration, time.Now()); expired && exam != nil {
		s.finalize(ctx, userID, classID, examType, st, exam, meta, true)
	}

	if err := s.saveAttempt(ctx, userID, examType, st); err != nil {
		return nil, err
	}
	return s.buildView(st, exam), nil
}

// Start composes a fresh exam and opens the attempt. Idempotent: if the
// attempt is already started the stored composition is returned untouched,
// so a double click never reshuffles mid-attempt.
func (s *AttemptService) Start(ctx context.Context, userID int, classID *int, examType string, meta ClientMeta) (*AttemptView, error) {
	st, err := s.loadAttempt(ctx, userID, examType)
	if err != nil {
		return nil, err
	}

	if st.Started {
		exam, err := s.loadExam(ctx, userID, examType)
		if err != nil {
			return nil, err
		}
		Tick(st, s.cfg.ExamDuration, time.Now())
		return s.buildView(st, exam), nil
	}

	pool, err := s.questions.LoadPool(ctx, examType)
	if err != nil {
		// Storage trouble degrades to the static fallback via an empty pool.
		s.log.Warn().Err(err).Str("exam_type", examType).Msg("Pool load failed, composing from fallback")
		pool = nil
	}

	exam := Compose(examType, pool, ComposeOptions{
		TotalTarget:      s.cfg.ExamQuestionTarget,
		PerformanceQuota: s.cfg.ExamPerformanceQuota,
		MinimumViable:    s.cfg.ExamMinimumViable,
	})

	if err := s.saveExam(ctx, userID, examType, exam); err != nil {
		return nil, err
	}

	StartAttempt(st, len(exam.Questions), s.cfg.ExamDuration, time.Now())
	if err := s.saveAttempt(ctx, userID, examType, st); err != nil {
		return nil, err
	}

	s.activity.Log(ctx, &model.ActivityEntry{
		UserID:    userID,
		ClassID:   classID,
		ExamType:  examType,
		Action:    model.ActivityExamStarted,
		Payload:   mustJSON(map[string]any{"questions": len(exam.Questions), "fallback": exam.Fallback}),
		ClientIP:  meta.IP,
		UserAgent: meta.UserAgent,
	})

	s.log.Info().
		Int("user_id", userID).
		Int("questions", len(exam.Questions)).
		Bool("fallback", exam.Fallback).
		Msg("Mock exam started")

	return s.buildView(st, exam), nil
}

// Navigate moves the question pointer. Out-of-range targets are ignored.
func (s *AttemptService) Navigate(ctx context.Context, userID int, classID *int, examType string, target int, meta ClientMeta) (*AttemptView, error) {
	st, exam, err := s.loadInProgress(ctx, userID, classID, examType, meta)
	if err != nil {
		return nil, err
	}

	Navigate(st, target)

	if err := s.saveAttempt(ctx, userID, examType, st); err != nil {
		return nil, err
	}
	return s.buildView(st, exam), nil
}

// Answer upserts the chosen letter for a question and logs the save.
func (s *AttemptService) Answer(ctx context.Context, userID int, classID *int, examType string, sequence int, letter string, meta ClientMeta) error {
	st, _, err := s.loadInProgress(ctx, userID, classID, examType, meta)
	if err != nil {
		return err
	}

	if RecordAnswer(st, sequence, letter) {
		s.activity.Log(ctx, &model.ActivityEntry{
			UserID:    userID,
			ClassID:   classID,
			ExamType:  examType,
			Action:    model.ActivityAnswerSaved,
			Payload:   mustJSON(map[string]any{"question": sequence, "answer": letter}),
			ClientIP:  meta.IP,
			UserAgent: meta.UserAgent,
		})
	}

	return s.saveAttempt(ctx, userID, examType, st)
}

// Flag toggles the review flag on a question and reports the new status.
func (s *AttemptService) Flag(ctx context.Context, userID int, classID *int, examType string, sequence int, meta ClientMeta) (bool, error) {
	st, _, err := s.loadInProgress(ctx, userID, classID, examType, meta)
	if err != nil {
		return false, err
	}

	flagged := ToggleFlag(st, sequence)

	if err := s.saveAttempt(ctx, userID, examType, st); err != nil {
		return false, err
	}
	return flagged, nil
}

// SyncTime handles the client's out-of-band timer sync. The server clock
// stays authoritative; the reported value is only recorded for drift
// diagnostics. Returns the authoritative remaining seconds.
func (s *AttemptService) SyncTime(ctx context.Context, userID int, classID *int, examType string, reported int, meta ClientMeta) (int, error) {
	st, err := s.loadAttempt(ctx, userID, examType)
	if err != nil {
		return 0, err
	}
	if !st.Started || st.Completed {
		return st.TimeRemaining, nil
	}

	remaining, expired := Tick(st, s.cfg.ExamDuration, time.Now())
	if drift := remaining - reported; drift > 5 || drift < -5 {
		s.log.Debug().Int("user_id", userID).Int("drift_seconds", drift).Msg("Client timer drift")
	}

	if expired {
		exam, err := s.loadExam(ctx, userID, examType)
		if err != nil {
			return 0, err
		}
		if exam != nil {
			s.finalize(ctx, userID, classID, examType, st, exam, meta, true)
		}
	}

	if err := s.saveAttempt(ctx, userID, examType, st); err != nil {
		return 0, err
	}
	return st.TimeRemaining, nil
}

// Submit scores and finalizes the attempt. Guarded by the submitted latch:
// a second call returns the stored outcome without re-scoring or writing
// any further rows.
func (s *AttemptService) Submit(ctx context.Context, userID int, classID *int, examType string, meta ClientMeta) (*SubmitOutcome, error) {
	st, err := s.loadAttempt(ctx, userID, examType)
	if err != nil {
		return nil, err
	}
	if !st.Started {
		return nil, ErrAttemptNotStarted
	}

	exam, err := s.loadExam(ctx, userID, examType)
	if err != nil {
		return nil, err
	}
	if exam == nil {
		return nil, ErrAttemptNotStarted
	}

	if st.Submitted {
		return s.outcome(st, exam), nil
	}

	s.finalize(ctx, userID, classID, examType, st, exam, meta, false)

	if err := s.saveAttempt(ctx, userID, examType, st); err != nil {
		return nil, err
	}
	return s.outcome(st, exam), nil
}

// Reset discards the attempt and its composed exam entirely. The next
// start composes a fresh exam.
func (s *AttemptService) Reset(ctx context.Context, userID int, classID *int, examType string, meta ClientMeta) error {
	keys := []string{
		config.CacheKey.AttemptStateKey(userID, examType),
		config.CacheKey.ComposedExamKey(userID, examType),
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("clear attempt session: %w", err)
	}

	s.activity.Log(ctx, &model.ActivityEntry{
		UserID:    userID,
		ClassID:   classID,
		ExamType:  examType,
		Action:    model.ActivityExamReset,
		ClientIP:  meta.IP,
		UserAgent: meta.UserAgent,
	})

	s.log.Info().Int("user_id", userID).Msg("Mock exam reset")
	return nil
}

// Results returns the user's persisted result history.
func (s *AttemptService) Results(ctx context.Context, userID int, examType string) ([]model.Result, error) {
	results, err := s.resultRepo.ListByUser(ctx, userID, examType)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	if results == nil {
		results = []model.Result{}
	}
	return results, nil
}

// ─── Internals ─────────────────────────────────────────────────────────────

// loadInProgress loads the attempt and exam for a mutating transition,
// running the lazy tick first. An expired clock finalizes the attempt
// before the caller's transition is applied (which then no-ops on the
// completed state).
func (s *AttemptService) loadInProgress(ctx context.Context, userID int, classID *int, examType string, meta ClientMeta) (*model.AttemptState, *model.ComposedExam, error) {
	st, err := s.loadAttempt(ctx, userID, examType)
	if err != nil {
		return nil, nil, err
	}
	if !st.Started {
		return nil, nil, ErrAttemptNotStarted
	}

	exam, err := s.loadExam(ctx, userID, examType)
	if err != nil {
		return nil, nil, err
	}
	if exam == nil {
		return nil, nil, ErrAttemptNotStarted
	}

	if _, expired := Tick(st, s.cfg.ExamDuration, time.Now()); expired {
		s.finalize(ctx, userID, classID, examType, st, exam, meta, true)
		if err := s.saveAttempt(ctx, userID, examType, st); err != nil {
			return nil, nil, err
		}
	}

	return st, exam, nil
}

// finalize scores the attempt, latches it completed, persists the result
// rows and queues the submission activity entry. Persistence failures are
// logged and swallowed: the in-session score stands either way.
func (s *AttemptService) finalize(ctx context.Context, userID int, classID *int, examType string, st *model.AttemptState, exam *model.ComposedExam, meta ClientMeta, auto bool) {
	score := Score(exam, st.Answers, s.cfg.ExamMaxScore)
	if !FinalizeSubmit(st, score, s.cfg.ExamDuration, time.Now()) {
		return
	}

	s.persistResult(ctx, userID, classID, examType, st, exam)

	s.activity.Log(ctx, &model.ActivityEntry{
		UserID:    userID,
		ClassID:   classID,
		ExamType:  examType,
		Action:    model.ActivityExamSubmitted,
		Payload:   mustJSON(map[string]any{"score": score, "auto": auto}),
		ClientIP:  meta.IP,
		UserAgent: meta.UserAgent,
	})

	s.log.Info().
		Int("user_id", userID).
		Int("score", score).
		Bool("auto_submit", auto).
		Msg("Mock exam submitted")
}

// persistResult writes the summary row and one answer detail row per
// answered question. Detail rows are independent: a failed row is logged
// and skipped, never aborting rows already written.
func (s *AttemptService) persistResult(ctx context.Context, userID int, classID *int, examType string, st *model.AttemptState, exam *model.ComposedExam) {
	res := &model.Result{
		UserID:         userID,
		ClassID:        classID,
		ExamType:       examType,
		TotalQuestions: len(exam.Questions),
		Answered:       len(st.Answers),
		Flagged:        len(st.Flagged),
		Score:          st.Score,
		Passed:         st.Score >= s.cfg.ExamPassingScore,
		TimeSpent:      TimeSpent(st, s.cfg.ExamDuration),
		SubmittedAt:    time.Now(),
	}

	if err := s.resultRepo.InsertResult(ctx, res); err != nil {
		s.log.Error().Err(err).Int("user_id", userID).Msg("Result persistence failed, keeping in-session score")
		return
	}

	sequences := make([]int, 0, len(st.Answers))
	for seq := range st.Answers {
		sequences = append(sequences, seq)
	}
	sort.Ints(sequences)

	for _, seq := range sequences {
		chosen := st.Answers[seq]
		q := exam.BySequence(seq)
		if q == nil {
			s.log.Warn().Int("sequence", seq).Msg("Answer references unknown question, skipping detail row")
			continue
		}

		awarded := 0
		correct := chosen == q.CorrectAnswer
		if correct {
			awarded = q.Points
		}

		detail := &model.AnswerDetail{
			ResultID:       res.ID,
			QuestionID:     q.ID,
			QuestionText:   q.Text,
			Options:        q.Options,
			Domain:         q.Domain,
			Kind:           q.Kind,
			ChosenAnswer:   chosen,
			CorrectAnswer:  q.CorrectAnswer,
			CorrectText:    q.Options[q.CorrectAnswer],
			Correct:        correct,
			PointsPossible: q.Points,
			PointsAwarded:  awarded,
		}

		if err := s.resultRepo.InsertAnswerDetail(ctx, detail); err != nil {
			s.log.Error().Err(err).Int64("result_id", res.ID).Int("sequence", seq).Msg("Answer detail insert failed, skipping row")
		}
	}
}

func (s *AttemptService) outcome(st *model.AttemptState, exam *model.ComposedExam) *SubmitOutcome {
	return &SubmitOutcome{
		Score:          st.Score,
		Passed:         st.Score >= s.cfg.ExamPassingScore,
		Correct:        CorrectCount(exam, st.Answers),
		Answered:       len(st.Answers),
		TotalQuestions: len(exam.Questions),
	}
}

func (s *AttemptService) buildView(st *model.AttemptState, exam *model.ComposedExam) *AttemptView {
	view := &AttemptView{
		Started:         st.Started,
		TimeRemaining:   st.TimeRemaining,
		CurrentQuestion: st.CurrentQuestion,
		Answers:         st.Answers,
		Flagged:         sortedFlags(st.Flagged),
		Completed:       st.Completed,
		Submitted:       st.Submitted,
		Score:           st.Score,
	}

	if exam != nil {
		view.TotalQuestions = len(exam.Questions)
		view.Questions = make([]QuestionView, len(exam.Questions))
		for i := range exam.Questions {
			q := &exam.Questions[i]
			view.Questions[i] = QuestionView{
				Sequence:     q.Sequence,
				Domain:       q.Domain,
				Text:         q.Text,
				Kind:         q.Kind,
				Options:      q.Options,
				Points:       q.Points,
				Instructions: q.Instructions,
			}
		}
	}

	return view
}

func sortedFlags(flagged map[int]bool) []int {
	flags := make([]int, 0, len(flagged))
	for seq := range flagged {
		flags = append(flags, seq)
	}
	sort.Ints(flags)
	return flags
}

func mustJSON(v any) []byte {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return raw
}
