package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/certsprint/ppt-lms-backend/internal/model"
)

// ActivityRepository handles append-only activity log persistence.
type ActivityRepository struct {
	pool *pgxpool.Pool
}

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

// Insert writes a single activity log row.
func (r *ActivityRepository) Insert(ctx context.Context, e *model.ActivityEntry) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO exam_activity_log
		     (user_id, class_id, exam_type, action, payload, client_ip, user_agent, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.UserID, e.ClassID, e.ExamType, e.Action, e.Payload, e.ClientIP, e.UserAgent, e.CreatedAt,
	)
	return err
}

// BulkInsert writes a batch of activity log rows in one round trip using
// UNNEST. Entries with a zero CreatedAt get the batch timestamp.
func (r *ActivityRepository) BulkInsert(ctx context.Context, entries []*model.ActivityEntry) error {
	n := len(entries)
	if n == 0 {
		return nil
	}

	userIDs := make([]int, 0, n)
	classIDs := make([]*int, 0, n)
	examTypes := make([]string, 0, n)
	actions := make([]string, 0, n)
	payloads := make([][]byte, 0, n)
	clientIPs := make([]string, 0, n)
	userAgents := make([]string, 0, n)
	createdAts := make([]time.Time, 0, n)

	now := time.Now()
	for _, e := range entries {
		createdAt := e.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}
		userIDs = append(userIDs, e.UserID)
		classIDs = append(classIDs, e.ClassID)
		examTypes = append(examTypes, e.ExamType)
		actions = append(actions, string(e.Action))
		payloads = append(payloads, e.Payload)
		clientIPs = append(clientIPs, e.ClientIP)
		userAgents = append(userAgents, e.UserAgent)
		createdAts = append(createdAts, createdAt)
	}

	query := `
		INSERT INTO exam_activity_log
		    (user_id, class_id, exam_type, action, payload, client_ip, user_agent, created_at)
		SELECT u.user_id, u.class_id, u.exam_type, u.action, u.payload, u.client_ip, u.user_agent, u.created_at
		FROM UNNEST(
			$1::int[],
			$2::int[],
			$3::text[],
			$4::text[],
			$5::jsonb[],
			$6::text[],
			$7::text[],
			$8::timestamptz[]
		) AS u (user_id, class_id, exam_type, action, payload, client_ip, user_agent, created_at)
	`

	_, err := r.pool.Exec(ctx, query, userIDs, classIDs, examTypes, actions, payloads, clientIPs, userAgents, createdAts)
	return err
}
