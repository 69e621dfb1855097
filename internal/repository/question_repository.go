package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/certsprint/ppt-lms-backend/internal/model"
)

// QuestionRepository handles mock exam question pool data access.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

// ListActiveByExamType retrieves every active question for an exam type in
// storage-native order. Callers treat an empty result as a usable (empty)
// pool, not as an error.
func (r *QuestionRepository) ListActiveByExamType(ctx context.Context, examType string) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, exam_type, domain, question_text, kind, options, correct_answer, points, instructions, active
		 FROM mock_exam_questions
		 WHERE exam_type = $1 AND active = TRUE`, examType,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []model.Question
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.ExamType, &q.Domain, &q.Text, &q.Kind, &q.Options, &q.CorrectAnswer, &q.Points, &q.Instructions, &q.Active); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// ListByExamType retrieves all questions (active or not) with pagination,
// for the admin question manager.
func (r *QuestionRepository) ListByExamType(ctx context.Context, examType string, limit, offset int) ([]model.Question, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM mock_exam_questions WHERE exam_type = $1`, examType,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, exam_type, domain, question_text, kind, options, correct_answer, points, instructions, active
		 FROM mock_exam_questions
		 WHERE exam_type = $1
		 ORDER BY id
		 LIMIT $2 OFFSET $3`, examType, limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var questions []model.Question
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.ExamType, &q.Domain, &q.Text, &q.Kind, &q.Options, &q.CorrectAnswer, &q.Points, &q.Instructions, &q.Active); err != nil {
			return nil, 0, err
		}
		questions = append(questions, q)
	}
	return questions, total, rows.Err()
}

// Create inserts a new pool question.
func (r *QuestionRepository) Create(ctx context.Context, q *model.Question) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO mock_exam_questions (exam_type, domain, question_text, kind, options, correct_answer, points, instructions, active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, TRUE)
		 RETURNING id`,
		q.ExamType, q.Domain, q.Text, q.Kind, q.Options, q.CorrectAnswer, q.Points, q.Instructions,
	).Scan(&q.ID)
}

// Update replaces an existing pool question's content. Returns
// pgx.ErrNoRows when the id does not exist.
func (r *QuestionRepository) Update(ctx context.Context, q *model.Question) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE mock_exam_questions
		 SET domain = $1, question_text = $2, kind = $3, options = $4,
		     correct_answer = $5, points = $6, instructions = $7, active = $8
		 WHERE id = $9`,
		q.Domain, q.Text, q.Kind, q.Options, q.CorrectAnswer, q.Points, q.Instructions, q.Active, q.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Deactivate soft-removes a question from the pool. Historical answer
// detail rows keep their snapshots, so no hard delete is needed.
func (r *QuestionRepository) Deactivate(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE mock_exam_questions SET active = FALSE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
