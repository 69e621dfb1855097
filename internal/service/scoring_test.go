package service

import (
	"testing"

	"github.com/certsprint/ppt-lms-backend/internal/model"
)

// buildExam wires raw questions into a composed exam with sequences 1..n.
func buildExam(questions []model.Question) *model.ComposedExam {
	return numberQuestions("ppt_specialist", questions, false)
}

func TestScore(t *testing.T) {
	mixed := buildExam([]model.Question{
		{ID: 1, Kind: model.QuestionKindMultipleChoice, CorrectAnswer: "a", Points: 10},
		{ID: 2, Kind: model.QuestionKindMultipleChoice, CorrectAnswer: "b", Points: 10},
		{ID: 3, Kind: model.QuestionKindPerformance, CorrectAnswer: "c", Points: 20},
	})

	tests := []struct {
		name    string
		exam    *model.ComposedExam
		answers map[int]string
		want    int
	}{
		{
			name:    "all correct scores max",
			exam:    mixed,
			answers: map[int]string{1: "a", 2: "b", 3: "c"},
			want:    1000,
		},
		{
			name:    "no answers scores zero",
			exam:    mixed,
			answers: map[int]string{},
			want:    0,
		},
		{
			name:    "partial credit weighted by points",
			exam:    mixed,
			answers: map[int]string{1: "a", 3: "c"},
			want:    750, // 30 of 40 points
		},
		{
			name:    "wrong answers earn nothing",
			exam:    mixed,
			answers: map[int]string{1: "d", 2: "d", 3: "d"},
			want:    0,
		},
		{
			name:    "letter match is case-sensitive",
			exam:    mixed,
			answers: map[int]string{1: "A", 2: "B", 3: "C"},
			want:    0,
		},
		{
			name:    "unanswered question counts in denominator",
			exam:    mixed,
			answers: map[int]string{1: "a"},
			want:    250, // 10 of 40 points
		},
		{
			name: "single question exam",
			exam: buildExam([]model.Question{
				{ID: 1, Kind: model.QuestionKindMultipleChoice, CorrectAnswer: "a", Points: 10},
			}),
			answers: map[int]string{1: "a"},
			want:    1000,
		},
		{
			name: "rounding to nearest integer",
			exam: buildExam([]model.Question{
				{ID: 1, CorrectAnswer: "a", Points: 10},
				{ID: 2, CorrectAnswer: "a", Points: 10},
				{ID: 3, CorrectAnswer: "a", Points: 10},
			}),
			answers: map[int]string{1: "a"},
			want:    333, // 1/3 of 1000
		},
		{
			name:    "zero-point exam scores zero",
			exam:    buildExam([]model.Question{{ID: 1, CorrectAnswer: "a"}}),
			answers: map[int]string{1: "a"},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.exam, tt.answers, 1000); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCorrectCount(t *testing.T) {
	exam := buildExam([]model.Question{
		{ID: 1, CorrectAnswer: "a", Points: 10},
		{ID: 2, CorrectAnswer: "b", Points: 10},
		{ID: 3, CorrectAnswer: "c", Points: 20},
	})

	tests := []struct {
		name    string
		answers map[int]string
		want    int
	}{
		{"all correct", map[int]string{1: "a", 2: "b", 3: "c"}, 3},
		{"some correct", map[int]string{1: "a", 2: "x", 3: "c"}, 2},
		{"none answered", map[int]string{}, 0},
		{"stray sequence ignored", map[int]string{99: "a"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CorrectCount(exam, tt.answers); got != tt.want {
				t.Errorf("CorrectCount() = %d, want %d", got, tt.want)
			}
		})
	}
}
