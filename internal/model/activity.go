package model

import (
	"encoding/json"
	"time"
)

// ActivityAction tags an activity log entry.
type ActivityAction string

const (
	ActivityExamStarted   ActivityAction = "exam_started"
	ActivityExamReset     ActivityAction = "exam_reset"
	ActivityExamSubmitted ActivityAction = "exam_submitted"
	ActivityAnswerSaved   ActivityAction = "answer_saved"
)

// ActivityEntry is one append-only audit trail row. Entries are queued to
// Redis by the request path and drained to PostgreSQL by a worker, so a
// slow or failing database never blocks an exam transition.
type ActivityEntry struct {
	ID        int64           `json:"id"`
	UserID    int             `json:"user_id"`
	ClassID   *int            `json:"class_id,omitempty"`
	ExamType  string          `json:"exam_type"`
	Action    ActivityAction  `json:"action"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	ClientIP  string          `json:"client_ip"`
	UserAgent string          `json:"user_agent"`
	CreatedAt time.Time       `json:"created_at"`
}
