package service

import (
	"testing"

	"github.com/certsprint/ppt-lms-backend/internal/model"
)

func TestStaticFallbackQuestions(t *testing.T) {
	questions := StaticFallbackQuestions()

	if got := len(questions); got != 15 {
		t.Fatalf("fallback set has %d questions, want 15", got)
	}

	var choice, performance int
	seen := make(map[int64]bool, len(questions))
	for _, q := range questions {
		if seen[q.ID] {
			t.Errorf("duplicate question id %d", q.ID)
		}
		seen[q.ID] = true

		switch q.Kind {
		case model.QuestionKindMultipleChoice:
			choice++
			if len(q.Options) == 0 {
				t.Errorf("question %d has no options", q.ID)
			}
			if _, ok := q.Options[q.CorrectAnswer]; !ok {
				t.Errorf("question %d correct answer %q not among options", q.ID, q.CorrectAnswer)
			}
			if q.Points != 10 {
				t.Errorf("question %d points = %d, want 10", q.ID, q.Points)
			}
		case model.QuestionKindPerformance:
			performance++
			if q.Instructions == "" {
				t.Errorf("performance question %d has no instructions", q.ID)
			}
			if q.Points != 20 {
				t.Errorf("question %d points = %d, want 20", q.ID, q.Points)
			}
		default:
			t.Errorf("question %d has unknown kind %q", q.ID, q.Kind)
		}

		if q.Text == "" {
			t.Errorf("question %d has empty text", q.ID)
		}
		if q.Domain == "" {
			t.Errorf("question %d has empty domain", q.ID)
		}
	}

	if choice != 10 {
		t.Errorf("multiple choice count = %d, want 10", choice)
	}
	if performance != 5 {
		t.Errorf("performance count = %d, want 5", performance)
	}

	// The full set is worth 200 raw points.
	total := 0
	for _, q := range questions {
		total += q.Points
	}
	if total != 200 {
		t.Errorf("total points = %d, want 200", total)
	}
}

func TestStaticFallbackIsFreshCopy(t *testing.T) {
	a := StaticFallbackQuestions()
	b := StaticFallbackQuestions()

	a[0].Text = "mutated"
	if b[0].Text == "mutated" {
		t.Error("fallback questions share backing storage across calls")
	}
}
