package quiz_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/aigp-hub/quizd/internal/quiz"
)

func activeSession(t *testing.T, count int) (*quiz.Engine, *quiz.Session) {
	t.Helper()
	e := quiz.NewEngine(testCatalog())
	s, err := e.Build(quiz.BuildParams{Mode: quiz.ModeQuickPractice, NumQuestions: count})
	if err != nil {
		t.Fatal(err)
	}
	return e, s
}

func TestSubmitAnswer_RecordsAndOverwrites(t *testing.T) {
	e, s := activeSession(t, 3)

	if err := e.SubmitAnswer(s, 0, 1); err != nil {
		t.Fatal(err)
	}
	if got := s.Answers.Get(0); got != 1 {
		t.Errorf("answer = %d, want 1", got)
	}
	// The user changes their mind; overwrite is allowed.
	if err := e.SubmitAnswer(s, 0, 2); err != nil {
		t.Fatal(err)
	}
	if got := s.Answers.Get(0); got != 2 {
		t.Errorf("answer after overwrite = %d, want 2", got)
	}
	if s.Answers.AnsweredCount() != 1 {
		t.Errorf("answered = %d, want 1", s.Answers.AnsweredCount())
	}
}

func TestSubmitAnswer_IndexOutOfRange(t *testing.T) {
	e, s := activeSession(t, 3)
	var cfgErr *quiz.ConfigError
	if err := e.SubmitAnswer(s, 3, 0); !errors.As(err, &cfgErr) {
		t.Errorf("err = %v, want ConfigError", err)
	}
	if err := e.SubmitAnswer(s, -1, 0); !errors.As(err, &cfgErr) {
		t.Errorf("err = %v, want ConfigError", err)
	}
}

func TestSubmitAnswer_RejectedAfterCompletion(t *testing.T) {
	e, s := activeSession(t, 3)
	if _, err := e.Score(s); err != nil {
		t.Fatal(err)
	}
	var stateErr *quiz.StateError
	if err := e.SubmitAnswer(s, 0, 1); !errors.As(err, &stateErr) {
		t.Fatalf("err = %v, want StateError", err)
	}
	if s.Answers.AnsweredCount() != 0 {
		t.Error("rejected submit must not mutate the ledger")
	}
}

func TestBulkSubmit(t *testing.T) {
	e, s := activeSession(t, 3)
	if err := e.BulkSubmit(s, map[int]int{0: 1, 2: 0}); err != nil {
		t.Fatal(err)
	}
	if s.Answers.AnsweredCount() != 2 {
		t.Errorf("answered = %d, want 2", s.Answers.AnsweredCount())
	}
}

func TestBulkSubmit_AtomicOnBadIndex(t *testing.T) {
	e, s := activeSession(t, 3)
	if err := e.BulkSubmit(s, map[int]int{0: 1, 7: 0}); err == nil {
		t.Fatal("expected error for out-of-range index")
	}
	if s.Answers.AnsweredCount() != 0 {
		t.Error("failed bulk submit must not apply partial writes")
	}
}

func TestProgress(t *testing.T) {
	e, s := activeSession(t, 4)
	_ = e.SubmitAnswer(s, 0, 0)
	_ = e.SubmitAnswer(s, 1, 0)

	p := e.Progress(s)
	if p.AnsweredCount != 2 || p.TotalCount != 4 {
		t.Errorf("progress = %d/%d, want 2/4", p.AnsweredCount, p.TotalCount)
	}
	if p.Percent != 50 {
		t.Errorf("percent = %v, want 50", p.Percent)
	}
	if p.TimeRemainingMinutes == nil {
		t.Fatal("time remaining expected for a limited session")
	}
}

func TestProgress_TimeRemaining(t *testing.T) {
	e, s := activeSession(t, 2)
	s.TimeLimitMinutes = 10
	s.CreatedAt = time.Now().Add(-4 * time.Minute)

	p := e.Progress(s)
	if p.TimeRemainingMinutes == nil {
		t.Fatal("expected time remaining")
	}
	if math.Abs(*p.TimeRemainingMinutes-6) > 0.1 {
		t.Errorf("time remaining = %v, want ~6", *p.TimeRemainingMinutes)
	}

	// Expired limits clamp at zero; expiry is advisory, not enforced.
	s.CreatedAt = time.Now().Add(-30 * time.Minute)
	p = e.Progress(s)
	if *p.TimeRemainingMinutes != 0 {
		t.Errorf("time remaining = %v, want 0", *p.TimeRemainingMinutes)
	}
	if err := e.SubmitAnswer(s, 0, 1); err != nil {
		t.Errorf("submission after expiry must still be accepted: %v", err)
	}
}

func TestProgress_UnlimitedSession(t *testing.T) {
	e, s := activeSession(t, 2)
	s.TimeLimitMinutes = 0
	if p := e.Progress(s); p.TimeRemainingMinutes != nil {
		t.Error("unlimited session must not report time remaining")
	}
}
