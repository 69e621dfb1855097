package service

import (
	"time"

	"github.com/certsprint/ppt-lms-backend/internal/model"
)

// Pure attempt state transitions. Each function takes the explicit
// AttemptState value and mutates it in place; persistence to the session
// store happens at the request boundary, never here. Invalid inputs are
// silently ignored per the state machine contract.

// StartAttempt transitions NotStarted -> InProgress. Returns false without
// touching the state when the attempt is already started, which makes a
// double start call a no-op.
func StartAttempt(st *model.AttemptState, questionCount int, duration time.Duration, now time.Time) bool {
	if st.Started {
		return false
	}
	st.Started = true
	st.StartedAt = &now
	st.TimeRemaining = int(duration.Seconds())
	st.CurrentQuestion = 1
	st.Answers = make(map[int]string)
	st.Flagged = make(map[int]bool)
	st.Completed = false
	st.Submitted = false
	st.Score = 0
	st.QuestionsLoaded = questionCount
	return true
}

// Navigate moves the current question pointer. Targets outside
// [1, questionCount] are ignored, as are calls outside InProgress.
func Navigate(st *model.AttemptState, target int) {
	if !st.Started || st.Completed {
		return
	}
	if target < 1 || target > st.QuestionsLoaded {
		return
	}
	st.CurrentQuestion = target
}

// RecordAnswer upserts the chosen letter for a question sequence. The
// letter is not validated against the question's options; scoring treats
// an unknown letter as incorrect. Returns false when the transition is
// invalid (not in progress, sequence out of range).
func RecordAnswer(st *model.AttemptState, sequence int, letter string) bool {
	if !st.Started || st.Completed {
		return false
	}
	if sequence < 1 || sequence > st.QuestionsLoaded {
		return false
	}
	if st.Answers == nil {
		st.Answers = make(map[int]string)
	}
	st.Answers[sequence] = letter
	return true
}

// ToggleFlag flips a question's membership in the flagged set and reports
// the new flagged status.
func ToggleFlag(st *model.AttemptState, sequence int) bool {
	if !st.Started || st.Completed {
		return false
	}
	if sequence < 1 || sequence > st.QuestionsLoaded {
		return false
	}
	if st.Flagged == nil {
		st.Flagged = make(map[int]bool)
	}
	if st.Flagged[sequence] {
		delete(st.Flagged, sequence)
		return false
	}
	st.Flagged[sequence] = true
	return true
}

// Tick recomputes time remaining from the wall clock and clamps it at zero.
// There is no background timer: elapsed time is derived lazily on every
// read as duration - (now - startedAt). The returned expired flag is true
// when the clock has run out on an in-progress attempt; the caller must
// then force a submit.
func Tick(st *model.AttemptState, duration time.Duration, now time.Time) (remaining int, expired bool) {
	if !st.Started || st.StartedAt == nil {
		return int(duration.Seconds()), false
	}
	elapsed := now.Sub(*st.StartedAt)
	left := duration - elapsed
	if left < 0 {
		left = 0
	}
	st.TimeRemaining = int(left.Seconds())
	return st.TimeRemaining, st.TimeRemaining == 0 && !st.Completed
}

// FinalizeSubmit latches the attempt into Completed with the given score.
// The submitted flag guards against double submission: a second call
// returns false and changes nothing, so results are never written twice.
func FinalizeSubmit(st *model.AttemptState, score int, duration time.Duration, now time.Time) bool {
	if !st.Started || st.Submitted {
		return false
	}
	Tick(st, duration, now)
	st.Completed = true
	st.Submitted = true
	st.Score = score
	return true
}

// TimeSpent returns how many seconds of the allotted duration were used.
func TimeSpent(st *model.AttemptState, duration time.Duration) int {
	spent := int(duration.Seconds()) - st.TimeRemaining
	if spent < 0 {
		spent = 0
	}
	return spent
}
