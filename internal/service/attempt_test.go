package service

import (
	"testing"
	"time"

	"github.com/certsprint/ppt-lms-backend/internal/model"
)

const testDuration = 3000 * time.Second

func startedState(t *testing.T, now time.Time) *model.AttemptState {
	t.Helper()
	st := model.NewAttemptState(testDuration)
	if !StartAttempt(st, 50, testDuration, now) {
		t.Fatal("StartAttempt on fresh state returned false")
	}
	return st
}

func TestStartAttempt(t *testing.T) {
	now := time.Now()
	st := model.NewAttemptState(testDuration)

	if !StartAttempt(st, 50, testDuration, now) {
		t.Fatal("first StartAttempt returned false")
	}
	if !st.Started || st.StartedAt == nil {
		t.Error("attempt not marked started")
	}
	if st.CurrentQuestion != 1 {
		t.Errorf("CurrentQuestion = %d, want 1", st.CurrentQuestion)
	}
	if st.TimeRemaining != 3000 {
		t.Errorf("TimeRemaining = %d, want 3000", st.TimeRemaining)
	}
	if st.QuestionsLoaded != 50 {
		t.Errorf("QuestionsLoaded = %d, want 50", st.QuestionsLoaded)
	}

	// Second start is a no-op and must not reset progress.
	RecordAnswer(st, 3, "b")
	Navigate(st, 3)
	if StartAttempt(st, 50, testDuration, now.Add(time.Minute)) {
		t.Error("second StartAttempt returned true")
	}
	if st.CurrentQuestion != 3 || st.Answers[3] != "b" {
		t.Error("second StartAttempt clobbered progress")
	}
}

func TestNavigate(t *testing.T) {
	tests := []struct {
		name   string
		target int
		want   int
	}{
		{"forward within range", 10, 10},
		{"back to first", 1, 1},
		{"last question", 50, 50},
		{"below range ignored", 0, 5},
		{"negative ignored", -2, 5},
		{"above range ignored", 51, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := startedState(t, time.Now())
			Navigate(st, 5)

			Navigate(st, tt.target)
			if st.CurrentQuestion != tt.want {
				t.Errorf("CurrentQuestion = %d, want %d", st.CurrentQuestion, tt.want)
			}
		})
	}

	t.Run("ignored before start", func(t *testing.T) {
		st := model.NewAttemptState(testDuration)
		Navigate(st, 10)
		if st.CurrentQuestion != 1 {
			t.Errorf("CurrentQuestion = %d, want 1", st.CurrentQuestion)
		}
	})
}

func TestRecordAnswer(t *testing.T) {
	now := time.Now()
	st := startedState(t, now)

	if !RecordAnswer(st, 7, "a") {
		t.Fatal("RecordAnswer in range returned false")
	}
	if st.Answers[7] != "a" {
		t.Errorf("Answers[7] = %q, want %q", st.Answers[7], "a")
	}

	// Overwrite is an upsert, not an append.
	if !RecordAnswer(st, 7, "c") {
		t.Fatal("RecordAnswer overwrite returned false")
	}
	if st.Answers[7] != "c" {
		t.Errorf("Answers[7] = %q after overwrite, want %q", st.Answers[7], "c")
	}
	if len(st.Answers) != 1 {
		t.Errorf("len(Answers) = %d, want 1", len(st.Answers))
	}

	if RecordAnswer(st, 0, "a") {
		t.Error("RecordAnswer below range returned true")
	}
	if RecordAnswer(st, 51, "a") {
		t.Error("RecordAnswer above range returned true")
	}

	FinalizeSubmit(st, 500, testDuration, now)
	if RecordAnswer(st, 3, "a") {
		t.Error("RecordAnswer after submit returned true")
	}
}

func TestToggleFlag(t *testing.T) {
	st := startedState(t, time.Now())

	if !ToggleFlag(st, 12) {
		t.Fatal("first toggle returned false, want flagged")
	}
	if !st.Flagged[12] {
		t.Error("question 12 not in flagged set")
	}

	if ToggleFlag(st, 12) {
		t.Fatal("second toggle returned true, want unflagged")
	}
	if _, ok := st.Flagged[12]; ok {
		t.Error("question 12 still in flagged set after unflag")
	}

	// Round trip back to flagged.
	if !ToggleFlag(st, 12) {
		t.Error("third toggle returned false, want flagged")
	}

	if ToggleFlag(st, 0) {
		t.Error("out-of-range toggle returned true")
	}
}

func TestTick(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name          string
		elapsed       time.Duration
		wantRemaining int
		wantExpired   bool
	}{
		{"fresh attempt", 0, 3000, false},
		{"mid attempt", 1000 * time.Second, 2000, false},
		{"exact expiry", 3000 * time.Second, 0, true},
		{"past expiry clamps to zero", 5000 * time.Second, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := startedState(t, now)

			remaining, expired := Tick(st, testDuration, now.Add(tt.elapsed))
			if remaining != tt.wantRemaining {
				t.Errorf("remaining = %d, want %d", remaining, tt.wantRemaining)
			}
			if expired != tt.wantExpired {
				t.Errorf("expired = %v, want %v", expired, tt.wantExpired)
			}
			if st.TimeRemaining != tt.wantRemaining {
				t.Errorf("TimeRemaining = %d, want %d", st.TimeRemaining, tt.wantRemaining)
			}
		})
	}

	t.Run("not started returns full duration", func(t *testing.T) {
		st := model.NewAttemptState(testDuration)
		remaining, expired := Tick(st, testDuration, now)
		if remaining != 3000 || expired {
			t.Errorf("Tick() = (%d, %v), want (3000, false)", remaining, expired)
		}
	})

	t.Run("completed attempt never reports expired", func(t *testing.T) {
		st := startedState(t, now)
		FinalizeSubmit(st, 800, testDuration, now.Add(time.Minute))
		_, expired := Tick(st, testDuration, now.Add(5000*time.Second))
		if expired {
			t.Error("expired = true on completed attempt")
		}
	})
}

func TestFinalizeSubmit(t *testing.T) {
	now := time.Now()
	st := startedState(t, now)

	if !FinalizeSubmit(st, 750, testDuration, now.Add(600*time.Second)) {
		t.Fatal("first FinalizeSubmit returned false")
	}
	if !st.Completed || !st.Submitted {
		t.Error("attempt not latched completed and submitted")
	}
	if st.Score != 750 {
		t.Errorf("Score = %d, want 750", st.Score)
	}
	if st.TimeRemaining != 2400 {
		t.Errorf("TimeRemaining = %d, want 2400", st.TimeRemaining)
	}

	// Double submit must change nothing.
	if FinalizeSubmit(st, 100, testDuration, now.Add(700*time.Second)) {
		t.Error("second FinalizeSubmit returned true")
	}
	if st.Score != 750 {
		t.Errorf("Score = %d after double submit, want 750", st.Score)
	}

	t.Run("not started", func(t *testing.T) {
		fresh := model.NewAttemptState(testDuration)
		if FinalizeSubmit(fresh, 500, testDuration, now) {
			t.Error("FinalizeSubmit on unstarted attempt returned true")
		}
	})
}

func TestTimeSpent(t *testing.T) {
	now := time.Now()
	st := startedState(t, now)

	Tick(st, testDuration, now.Add(1200*time.Second))
	if got := TimeSpent(st, testDuration); got != 1200 {
		t.Errorf("TimeSpent() = %d, want 1200", got)
	}

	// Clamped at zero when remaining somehow exceeds duration.
	st.TimeRemaining = 4000
	if got := TimeSpent(st, testDuration); got != 0 {
		t.Errorf("TimeSpent() = %d, want 0", got)
	}
}
