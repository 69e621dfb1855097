package service

import (
	"math/rand/v2"

	"github.com/certsprint/ppt-lms-backend/internal/model"
)

// ComposeOptions controls how an exam is assembled from the pool.
type ComposeOptions struct {
	TotalTarget      int // total questions per attempt
	PerformanceQuota int // performance questions guaranteed per attempt
	MinimumViable    int // below this composed count, the static fallback is used
}

// Compose builds a fresh exam for one attempt:
//  1. Partition the pool into performance and other questions.
//  2. Shuffle each group independently.
//  3. Take min(quota, |performance|) performance questions.
//  4. Fill the remaining slots from the other group, capped at the target.
//  5. Reshuffle the combined selection so the two kinds interleave.
//  6. Assign display sequence numbers 1..k, keeping the storage ID mapping.
//
// If the composed count comes out below MinimumViable, the static fallback
// set is substituted in its fixed order, exempt from the quota logic.
// Shuffling is intentionally unseeded: every attempt gets a different exam.
func Compose(examType string, pool []model.Question, opts ComposeOptions) *model.ComposedExam {
	var performance, other []model.Question
	for _, q := range pool {
		if q.Kind == model.QuestionKindPerformance {
			performance = append(performance, q)
		} else {
			other = append(other, q)
		}
	}

	rand.Shuffle(len(performance), func(i, j int) {
		performance[i], performance[j] = performance[j], performance[i]
	})
	rand.Shuffle(len(other), func(i, j int) {
		other[i], other[j] = other[j], other[i]
	})

	perfTake := min(opts.PerformanceQuota, len(performance))
	otherSlots := opts.TotalTarget - perfTake
	if otherSlots < 0 {
		otherSlots = 0
	}
	otherTake := min(otherSlots, len(other))

	selected := make([]model.Question, 0, perfTake+otherTake)
	selected = append(selected, performance[:perfTake]...)
	selected = append(selected, other[:otherTake]...)

	if len(selected) < opts.MinimumViable {
		return fallbackExam(examType)
	}

	rand.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})

	return numberQuestions(examType, selected, false)
}

// fallbackExam wraps the static question set as a composed exam. The
// fallback order is fixed, so no reshuffle happens here.
func fallbackExam(examType string) *model.ComposedExam {
	return numberQuestions(examType, StaticFallbackQuestions(), true)
}

// numberQuestions assigns contiguous display sequence numbers starting at 1
// and records the sequence -> storage ID mapping.
func numberQuestions(examType string, questions []model.Question, fallback bool) *model.ComposedExam {
	exam := &model.ComposedExam{
		ExamType:    examType,
		Questions:   make([]model.ComposedQuestion, len(questions)),
		OriginalIDs: make(map[int]int64, len(questions)),
		Fallback:    fallback,
	}
	for i, q := range questions {
		seq := i + 1
		exam.Questions[i] = model.ComposedQuestion{Question: q, Sequence: seq}
		exam.OriginalIDs[seq] = q.ID
	}
	return exam
}
