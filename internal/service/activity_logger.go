package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/certsprint/ppt-lms-backend/internal/config"
	"github.com/certsprint/ppt-lms-backend/internal/model"
)

// ActivityLogger queues audit trail entries to Redis for asynchronous
// persistence by the activity worker. Failures are swallowed after logging:
// a broken queue must never block a user-facing exam transition.
type ActivityLogger struct {
	rdb *redis.Client
	log zerolog.Logger
}

// NewActivityLogger creates a new ActivityLogger.
func NewActivityLogger(rdb *redis.Client, log zerolog.Logger) *ActivityLogger {
	return &ActivityLogger{
		rdb: rdb,
		log: log.With().Str("component", "activity_logger").Logger(),
	}
}

// Log enqueues one activity entry. Best-effort: errors are logged and dropped.
func (l *ActivityLogger) Log(ctx context.Context, entry *model.ActivityEntry) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		l.log.Error().Err(err).Str("action", string(entry.Action)).Msg("Marshal activity entry failed")
		return
	}

	if err := l.rdb.RPush(ctx, config.WorkerKey.PersistActivityQueue, raw).Err(); err != nil {
		l.log.Warn().Err(err).Str("action", string(entry.Action)).Msg("Queue activity entry failed, dropping")
	}
}
