package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnrollmentRepository answers course access questions. Enrollments link a
// user to a class batch, which links to a course by name.
type EnrollmentRepository struct {
	pool *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository.
func NewEnrollmentRepository(pool *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{pool: pool}
}

// HasActiveEnrollment reports whether the user has an active enrollment in
// a class batch whose course name matches the given pattern (SQL ILIKE).
func (r *EnrollmentRepository) HasActiveEnrollment(ctx context.Context, userID int, coursePattern string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (
		     SELECT 1
		     FROM enrollments e
		     JOIN class_batches cb ON e.class_id = cb.id
		     JOIN courses c ON cb.course_id = c.id
		     WHERE e.user_id = $1
		       AND e.status = 'active'
		       AND c.name ILIKE $2
		 )`, userID, coursePattern,
	).Scan(&exists)
	return exists, err
}

// HasClassEnrollment reports whether the user is actively enrolled in the
// given class batch.
func (r *EnrollmentRepository) HasClassEnrollment(ctx context.Context, userID, classID int) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (
		     SELECT 1 FROM enrollments
		     WHERE user_id = $1 AND class_id = $2 AND status = 'active'
		 )`, userID, classID,
	).Scan(&exists)
	return exists, err
}
