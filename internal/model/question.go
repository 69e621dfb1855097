package model

// QuestionKind enumerates exam item types.
type QuestionKind string

const (
	QuestionKindMultipleChoice QuestionKind = "multiple_choice"
	QuestionKindPerformance    QuestionKind = "performance"
)

// Question represents a single mock exam item from the pool.
type Question struct {
	ID            int64             `json:"id"`
	ExamType      string            `json:"exam_type"`
	Domain        string            `json:"domain"`
	Text          string            `json:"text"`
	Kind          QuestionKind      `json:"kind"`
	Options       map[string]string `json:"options"` // choice letter -> text, empty letters omitted
	CorrectAnswer string            `json:"correct_answer"`
	Points        int               `json:"points"`
	Instructions  string            `json:"instructions,omitempty"` // performance questions only
	Active        bool              `json:"active"`
}

// ComposedQuestion is a pool question after composition, carrying the
// display sequence number assigned for one attempt. The embedded Question
// keeps its storage ID so results can reference the original row.
type ComposedQuestion struct {
	Question
	Sequence int `json:"sequence"`
}

// ComposedExam is the ordered set of questions selected for one attempt.
// Questions is ordered by Sequence, which runs contiguously from 1.
type ComposedExam struct {
	ExamType    string             `json:"exam_type"`
	Questions   []ComposedQuestion `json:"questions"`
	OriginalIDs map[int]int64      `json:"original_ids"` // sequence -> storage id
	Fallback    bool               `json:"fallback"`
}

// BySequence returns the question with the given display sequence number,
// or nil if the sequence is not part of this exam.
func (e *ComposedExam) BySequence(seq int) *ComposedQuestion {
	if seq < 1 || seq > len(e.Questions) {
		return nil
	}
	q := &e.Questions[seq-1]
	if q.Sequence != seq {
		// Defensively scan if ordering was disturbed by a bad session blob.
		for i := range e.Questions {
			if e.Questions[i].Sequence == seq {
				return &e.Questions[i]
			}
		}
		return nil
	}
	return q
}

// CreateQuestionRequest is the admin payload for adding a pool question.
type CreateQuestionRequest struct {
	ExamType      string            `json:"exam_type" binding:"required,max=50"`
	Domain        string            `json:"domain" binding:"required,max=100"`
	Text          string            `json:"text" binding:"required,min=1,max=4000"`
	Kind          string            `json:"kind" binding:"required,oneof=multiple_choice performance"`
	Options       map[string]string `json:"options" binding:"required"`
	CorrectAnswer string            `json:"correct_answer" binding:"required,max=5"`
	Points        int               `json:"points" binding:"min=0"`
	Instructions  string            `json:"instructions" binding:"max=8000"`
}

// UpdateQuestionRequest is the admin payload for editing a pool question.
type UpdateQuestionRequest struct {
	Domain        string            `json:"domain" binding:"required,max=100"`
	Text          string            `json:"text" binding:"required,min=1,max=4000"`
	Kind          string            `json:"kind" binding:"required,oneof=multiple_choice performance"`
	Options       map[string]string `json:"options" binding:"required"`
	CorrectAnswer string            `json:"correct_answer" binding:"required,max=5"`
	Points        int               `json:"points" binding:"min=0"`
	Instructions  string            `json:"instructions" binding:"max=8000"`
	Active        *bool             `json:"active" binding:"required"`
}
