package results_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/aigp-hub/quizd/internal/results"
)

func record(sessionID, userID, userType string, score float64, passed bool) results.Record {
	return results.Record{
		SessionID:        sessionID,
		UserID:           userID,
		UserType:         userType,
		Mode:             "quick_practice",
		TotalQuestions:   10,
		CorrectAnswers:   int(score / 10),
		Score:            score,
		Passed:           passed,
		TimeTakenMinutes: 10,
	}
}

func TestMemoryStore_ScopesByUser(t *testing.T) {
	ctx := context.Background()
	store := results.NewMemoryStore()

	_ = store.Save(ctx, record("s1", "alice", results.UserTypeAuthenticated, 80, true))
	_ = store.Save(ctx, record("s2", "alice", results.UserTypeAuthenticated, 60, false))
	_ = store.Save(ctx, record("s3", "bob", results.UserTypeAuthenticated, 100, true))
	_ = store.Save(ctx, record("s4", "", results.UserTypeAnonymous, 40, false))

	st, err := store.StatsFor(ctx, results.Scope{UserID: "alice", Authenticated: true})
	if err != nil {
		t.Fatal(err)
	}
	if st.TotalQuizzes != 2 {
		t.Errorf("alice total = %d, want 2", st.TotalQuizzes)
	}
	if st.AverageScore != 70 {
		t.Errorf("alice average = %v, want 70", st.AverageScore)
	}
	if st.LatestScore != 60 {
		t.Errorf("alice latest = %v, want 60 (most recent save)", st.LatestScore)
	}
	if st.PassRate != 50 {
		t.Errorf("alice pass rate = %v, want 50", st.PassRate)
	}
}

func TestMemoryStore_AnonymousWindow(t *testing.T) {
	ctx := context.Background()
	store := results.NewMemoryStore()

	// More anonymous history than the window admits.
	for i := 0; i < 60; i++ {
		_ = store.Save(ctx, record(fmt.Sprintf("s%d", i), "", results.UserTypeAnonymous, 50, false))
	}

	st, err := store.StatsFor(ctx, results.Scope{})
	if err != nil {
		t.Fatal(err)
	}
	if st.TotalQuizzes != 50 {
		t.Errorf("anonymous total = %d, want bounded window of 50", st.TotalQuizzes)
	}
}

func TestMemoryStore_EmptyScope(t *testing.T) {
	store := results.NewMemoryStore()
	st, err := store.StatsFor(context.Background(), results.Scope{UserID: "nobody", Authenticated: true})
	if err != nil {
		t.Fatal(err)
	}
	if st.TotalQuizzes != 0 {
		t.Errorf("total = %d, want 0", st.TotalQuizzes)
	}
}
