package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/certsprint/ppt-lms-backend/internal/model"
)

// ResultRepository handles mock exam result and answer detail persistence.
type ResultRepository struct {
	pool *pgxpool.Pool
}

// NewResultRepository creates a new ResultRepository.
func NewResultRepository(pool *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{pool: pool}
}

// InsertResult writes one result summary row and returns its generated ID.
func (r *ResultRepository) InsertResult(ctx context.Context, res *model.Result) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO mock_exam_results
		     (user_id, class_id, exam_type, total_questions, answered, flagged, score, passed, time_spent, submitted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		res.UserID, res.ClassID, res.ExamType, res.TotalQuestions, res.Answered,
		res.Flagged, res.Score, res.Passed, res.TimeSpent, res.SubmittedAt,
	).Scan(&res.ID)
}

// InsertAnswerDetail writes one denormalized answer snapshot row. Each call
// is an independent insert: a failure here must not roll back rows already
// written for the same result.
func (r *ResultRepository) InsertAnswerDetail(ctx context.Context, d *model.AnswerDetail) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO mock_exam_answers
		     (result_id, question_id, question_text, options, domain, kind,
		      chosen_answer, correct_answer, correct_text, correct, points_possible, points_awarded)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id`,
		d.ResultID, d.QuestionID, d.QuestionText, d.Options, d.Domain, d.Kind,
		d.ChosenAnswer, d.CorrectAnswer, d.CorrectText, d.Correct, d.PointsPossible, d.PointsAwarded,
	).Scan(&d.ID)
}

// ListByUser retrieves a user's result summaries, most recent first.
func (r *ResultRepository) ListByUser(ctx context.Context, userID int, examType string) ([]model.Result, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, class_id, exam_type, total_questions, answered, flagged, score, passed, time_spent, submitted_at
		 FROM mock_exam_results
		 WHERE user_id = $1 AND exam_type = $2
		 ORDER BY submitted_at DESC`, userID, examType,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.Result
	for rows.Next() {
		var res model.Result
		if err := rows.Scan(&res.ID, &res.UserID, &res.ClassID, &res.ExamType, &res.TotalQuestions,
			&res.Answered, &res.Flagged, &res.Score, &res.Passed, &res.TimeSpent, &res.SubmittedAt); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, rows.Err()
}
