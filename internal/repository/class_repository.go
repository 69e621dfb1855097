package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/certsprint/ppt-lms-backend/internal/model"
)

// ClassRepository handles class batch and instructor lookups.
type ClassRepository struct {
	pool *pgxpool.Pool
}

// NewClassRepository creates a new ClassRepository.
func NewClassRepository(pool *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{pool: pool}
}

// GetByID retrieves a class batch by primary key.
func (r *ClassRepository) GetByID(ctx context.Context, id int) (*model.ClassBatch, error) {
	cb := &model.ClassBatch{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, course_id, name, instructor_id, starts_at, ends_at
		 FROM class_batches WHERE id = $1`, id,
	).Scan(&cb.ID, &cb.CourseID, &cb.Name, &cb.InstructorID, &cb.StartsAt, &cb.EndsAt)
	if err != nil {
		return nil, err
	}
	return cb, nil
}

// GetInstructor retrieves the instructor assigned to a class batch.
func (r *ClassRepository) GetInstructor(ctx context.Context, classID int) (*model.Instructor, error) {
	in := &model.Instructor{}
	err := r.pool.QueryRow(ctx,
		`SELECT u.id, u.full_name, u.email, COALESCE(ip.bio, '')
		 FROM class_batches cb
		 JOIN users u ON cb.instructor_id = u.id
		 LEFT JOIN instructor_profiles ip ON ip.user_id = u.id
		 WHERE cb.id = $1`, classID,
	).Scan(&in.ID, &in.FullName, &in.Email, &in.Bio)
	if err != nil {
		return nil, err
	}
	return in, nil
}
