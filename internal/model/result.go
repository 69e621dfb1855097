package model

import "time"

// Result is the durable summary of one completed attempt.
type Result struct {
	ID             int64     `json:"id"`
	UserID         int       `json:"user_id"`
	ClassID        *int      `json:"class_id,omitempty"`
	ExamType       string    `json:"exam_type"`
	TotalQuestions int       `json:"total_questions"`
	Answered       int       `json:"answered"`
	Flagged        int       `json:"flagged"`
	Score          int       `json:"score"`
	Passed         bool      `json:"passed"`
	TimeSpent      int       `json:"time_spent"` // seconds
	SubmittedAt    time.Time `json:"submitted_at"`
}

// AnswerDetail is one row per answered question in a submitted attempt.
// Question content is denormalized at submission time so later pool edits
// do not alter historical records.
type AnswerDetail struct {
	ID             int64             `json:"id"`
	ResultID       int64             `json:"result_id"`
	QuestionID     int64             `json:"question_id"` // original storage id
	QuestionText   string            `json:"question_text"`
	Options        map[string]string `json:"options"`
	Domain         string            `json:"domain"`
	Kind           QuestionKind      `json:"kind"`
	ChosenAnswer   string            `json:"chosen_answer"`
	CorrectAnswer  string            `json:"correct_answer"`
	CorrectText    string            `json:"correct_text"`
	Correct        bool              `json:"correct"`
	PointsPossible int               `json:"points_possible"`
	PointsAwarded  int               `json:"points_awarded"`
}
