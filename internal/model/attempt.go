package model

import "time"

// AttemptState is the mutable per-session record of one user's pass through
// a composed exam. It is an explicit value carried through every transition:
// handlers load it from the session store at entry and save it back at exit.
type AttemptState struct {
	Started         bool           `json:"started"`
	StartedAt       *time.Time     `json:"start_time"`
	TimeRemaining   int            `json:"time_remaining"` // seconds, clamped >= 0
	CurrentQuestion int            `json:"current_question"`
	Answers         map[int]string `json:"answers"` // sequence -> chosen letter
	Flagged         map[int]bool   `json:"flagged"` // set of sequence numbers
	Completed       bool           `json:"completed"`
	Submitted       bool           `json:"submitted"`
	Score           int            `json:"score"`
	QuestionsLoaded int            `json:"questions_loaded"`
}

// NewAttemptState returns an empty attempt with the full duration on the
// clock. This is the state a session holds before start and after reset.
func NewAttemptState(duration time.Duration) *AttemptState {
	return &AttemptState{
		TimeRemaining:   int(duration.Seconds()),
		CurrentQuestion: 1,
		Answers:         make(map[int]string),
		Flagged:         make(map[int]bool),
	}
}

// NavigateRequest moves the current question pointer.
type NavigateRequest struct {
	Question int `json:"question" binding:"required"`
}

// AnswerRequest records a choice for one question.
type AnswerRequest struct {
	QuestionID int    `json:"question_id" binding:"required,min=1"`
	Answer     string `json:"answer" binding:"required,max=5"`
}

// FlagRequest toggles the review flag on one question.
type FlagRequest struct {
	QuestionID int `json:"question_id" binding:"required,min=1"`
}

// SyncTimeRequest is the out-of-band timer sync from the client. The server
// clock stays authoritative; the payload is logged for drift diagnostics.
type SyncTimeRequest struct {
	Remaining int `json:"remaining" binding:"min=0"`
}
