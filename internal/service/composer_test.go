package service

import (
	"fmt"
	"testing"

	"github.com/certsprint/ppt-lms-backend/internal/model"
)

func makePool(performance, other int) []model.Question {
	pool := make([]model.Question, 0, performance+other)
	id := int64(1000)
	for i := 0; i < performance; i++ {
		id++
		pool = append(pool, model.Question{
			ID:     id,
			Domain: "Manage Presentations",
			Text:   fmt.Sprintf("performance task %d", i+1),
			Kind:   model.QuestionKindPerformance,
			Points: 20,
		})
	}
	for i := 0; i < other; i++ {
		id++
		pool = append(pool, model.Question{
			ID:            id,
			Domain:        "Insert and Format Text",
			Text:          fmt.Sprintf("choice question %d", i+1),
			Kind:          model.QuestionKindMultipleChoice,
			CorrectAnswer: "a",
			Points:        10,
		})
	}
	return pool
}

func countKinds(exam *model.ComposedExam) (performance, other int) {
	for _, q := range exam.Questions {
		if q.Kind == model.QuestionKindPerformance {
			performance++
		} else {
			other++
		}
	}
	return performance, other
}

var defaultOpts = ComposeOptions{
	TotalTarget:      50,
	PerformanceQuota: 15,
	MinimumViable:    5,
}

func TestComposeCounts(t *testing.T) {
	tests := []struct {
		name        string
		performance int
		other       int
		opts        ComposeOptions
		wantPerf    int
		wantTotal   int
		wantFall    bool
	}{
		{
			name:        "rich pool fills quota and target",
			performance: 20,
			other:       40,
			opts:        defaultOpts,
			wantPerf:    15,
			wantTotal:   50,
		},
		{
			name:        "scarce performance takes all available",
			performance: 4,
			other:       60,
			opts:        defaultOpts,
			wantPerf:    4,
			wantTotal:   50,
		},
		{
			name:        "short pool composes everything",
			performance: 3,
			other:       10,
			opts:        defaultOpts,
			wantPerf:    3,
			wantTotal:   13,
		},
		{
			name:        "quota above target leaves no other slots",
			performance: 30,
			other:       30,
			opts:        ComposeOptions{TotalTarget: 10, PerformanceQuota: 15, MinimumViable: 5},
			wantPerf:    15,
			wantTotal:   15,
		},
		{
			name:        "tiny pool falls back to static set",
			performance: 1,
			other:       3,
			opts:        defaultOpts,
			wantPerf:    5,
			wantTotal:   15,
			wantFall:    true,
		},
		{
			name:      "empty pool falls back to static set",
			opts:      defaultOpts,
			wantPerf:  5,
			wantTotal: 15,
			wantFall:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exam := Compose("ppt_specialist", makePool(tt.performance, tt.other), tt.opts)

			if exam.Fallback != tt.wantFall {
				t.Errorf("Fallback = %v, want %v", exam.Fallback, tt.wantFall)
			}
			if got := len(exam.Questions); got != tt.wantTotal {
				t.Errorf("total questions = %d, want %d", got, tt.wantTotal)
			}
			perf, _ := countKinds(exam)
			if perf != tt.wantPerf {
				t.Errorf("performance questions = %d, want %d", perf, tt.wantPerf)
			}
		})
	}
}

func TestComposeSequenceContiguous(t *testing.T) {
	exam := Compose("ppt_specialist", makePool(20, 40), defaultOpts)

	seen := make(map[int]bool, len(exam.Questions))
	for i, q := range exam.Questions {
		if q.Sequence != i+1 {
			t.Fatalf("question at index %d has sequence %d, want %d", i, q.Sequence, i+1)
		}
		if seen[q.Sequence] {
			t.Fatalf("sequence %d assigned twice", q.Sequence)
		}
		seen[q.Sequence] = true
	}
}

func TestComposeOriginalIDMapping(t *testing.T) {
	pool := makePool(20, 40)
	byID := make(map[int64]model.Question, len(pool))
	for _, q := range pool {
		byID[q.ID] = q
	}

	exam := Compose("ppt_specialist", pool, defaultOpts)

	if len(exam.OriginalIDs) != len(exam.Questions) {
		t.Fatalf("OriginalIDs has %d entries, want %d", len(exam.OriginalIDs), len(exam.Questions))
	}
	for _, q := range exam.Questions {
		id, ok := exam.OriginalIDs[q.Sequence]
		if !ok {
			t.Fatalf("sequence %d missing from OriginalIDs", q.Sequence)
		}
		if id != q.ID {
			t.Errorf("sequence %d maps to id %d, want %d", q.Sequence, id, q.ID)
		}
		if _, ok := byID[id]; !ok {
			t.Errorf("sequence %d maps to id %d not present in pool", q.Sequence, id)
		}
	}
}

func TestComposeDoesNotMutatePoolMembership(t *testing.T) {
	pool := makePool(20, 40)
	poolIDs := make(map[int64]bool, len(pool))
	for _, q := range pool {
		poolIDs[q.ID] = true
	}

	exam := Compose("ppt_specialist", pool, defaultOpts)

	for _, q := range exam.Questions {
		if !poolIDs[q.ID] {
			t.Errorf("composed question id %d not from pool", q.ID)
		}
	}
}

func TestComposeFallbackExemptFromQuota(t *testing.T) {
	// Fallback set is fixed regardless of how aggressive the options are.
	exam := Compose("ppt_specialist", nil, ComposeOptions{TotalTarget: 2, PerformanceQuota: 1, MinimumViable: 5})

	if !exam.Fallback {
		t.Fatal("expected fallback exam")
	}
	if got := len(exam.Questions); got != 15 {
		t.Errorf("fallback question count = %d, want 15", got)
	}
}
