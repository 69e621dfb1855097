package service

import (
	"math"

	"github.com/certsprint/ppt-lms-backend/internal/model"
)

// Score computes the normalized score for an attempt. Every question's
// points count toward the denominator; a question earns its points only if
// an answer exists and matches the correct letter exactly (case-sensitive).
// Returns round(earned/total*maxScore), or 0 when the exam carries no points.
func Score(exam *model.ComposedExam, answers map[int]string, maxScore int) int {
	totalPoints := 0
	earnedPoints := 0

	for i := range exam.Questions {
		q := &exam.Questions[i]
		totalPoints += q.Points
		if chosen, ok := answers[q.Sequence]; ok && chosen == q.CorrectAnswer {
			earnedPoints += q.Points
		}
	}

	if totalPoints == 0 {
		return 0
	}
	return int(math.Round(float64(earnedPoints) / float64(totalPoints) * float64(maxScore)))
}

// CorrectCount returns how many answered questions match their correct letter.
func CorrectCount(exam *model.ComposedExam, answers map[int]string) int {
	correct := 0
	for i := range exam.Questions {
		q := &exam.Questions[i]
		if chosen, ok := answers[q.Sequence]; ok && chosen == q.CorrectAnswer {
			correct++
		}
	}
	return correct
}
