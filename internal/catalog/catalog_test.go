package catalog_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/aigp-hub/quizd/internal/catalog"
)

func TestLoad_MissingFileFallsBack(t *testing.T) {
	cat := catalog.Load(filepath.Join(t.TempDir(), "nope.json"))
	if cat.Len() == 0 {
		t.Fatal("fallback bank must not be empty")
	}
	if cat.Settings().StandardExam.PassingScore != 70 {
		t.Errorf("fallback passing score = %v, want 70", cat.Settings().StandardExam.PassingScore)
	}
}

func TestLoad_CorruptFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	cat := catalog.Load(path)
	if cat.Len() == 0 {
		t.Fatal("corrupt file should degrade to fallback bank")
	}
}

func TestLoad_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.json")
	data := `{
		"metadata": {"title": "Test Bank", "version": "1.0"},
		"questions": [
			{"id": 1, "domain": "Risk Management", "difficulty": "Easy",
			 "question": "Q1?", "options": ["a", "b"], "correct": 0, "explanation": "e"},
			{"id": 2, "domain": "Data Governance", "difficulty": "Hard",
			 "question": "Q2?", "options": ["a", "b", "c"], "correct": 2, "explanation": "e"}
		],
		"exam_settings": {
			"standard_exam": {"total_questions": 90, "time_limit_minutes": 120, "passing_score": 65}
		}
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cat := catalog.Load(path)
	if cat.Len() != 2 {
		t.Fatalf("Len = %d, want 2", cat.Len())
	}
	if cat.Meta().Title != "Test Bank" {
		t.Errorf("title = %q", cat.Meta().Title)
	}
	if got := cat.Settings().StandardExam.TotalQuestions; got != 90 {
		t.Errorf("exam total = %d, want 90", got)
	}
	// practice_modes omitted in the file: defaults must be filled in.
	if _, ok := cat.Settings().PracticeModes["quick_practice"]; !ok {
		t.Error("missing default practice mode settings")
	}
}

func TestNew_SkipsInvalidQuestions(t *testing.T) {
	qs := []catalog.Question{
		{ID: 1, Domain: "A", Difficulty: "Easy", Prompt: "ok", Options: []string{"x", "y"}, CorrectIndex: 1},
		{ID: 2, Domain: "A", Difficulty: "Easy", Prompt: "bad index", Options: []string{"x", "y"}, CorrectIndex: 2},
		{ID: 3, Domain: "A", Difficulty: "Easy", Prompt: "one option", Options: []string{"x"}, CorrectIndex: 0},
		{ID: 4, Domain: "", Difficulty: "Easy", Prompt: "no domain", Options: []string{"x", "y"}, CorrectIndex: 0},
	}
	cat := catalog.New(catalog.Metadata{}, qs, catalog.ExamSettings{})
	if cat.Len() != 1 {
		t.Fatalf("Len = %d, want 1 (invalid records skipped)", cat.Len())
	}
}

func TestFilter(t *testing.T) {
	qs := []catalog.Question{
		{ID: 1, Domain: "A", Difficulty: "Easy", Prompt: "q", Options: []string{"x", "y"}, CorrectIndex: 0},
		{ID: 2, Domain: "A", Difficulty: "Hard", Prompt: "q", Options: []string{"x", "y"}, CorrectIndex: 0},
		{ID: 3, Domain: "B", Difficulty: "Easy", Prompt: "q", Options: []string{"x", "y"}, CorrectIndex: 0},
	}
	cat := catalog.New(catalog.Metadata{}, qs, catalog.ExamSettings{})

	tests := []struct {
		domain, difficulty string
		wantIDs            []int
	}{
		{catalog.Mixed, catalog.Mixed, []int{1, 2, 3}},
		{"A", catalog.Mixed, []int{1, 2}},
		{catalog.Mixed, "Easy", []int{1, 3}},
		{"A", "Hard", []int{2}},
		{"B", "Hard", nil},
	}
	for _, tt := range tests {
		got := cat.Filter(tt.domain, tt.difficulty)
		var ids []int
		for _, q := range got {
			ids = append(ids, q.ID)
		}
		if !reflect.DeepEqual(ids, tt.wantIDs) {
			t.Errorf("Filter(%q, %q) = %v, want %v", tt.domain, tt.difficulty, ids, tt.wantIDs)
		}
	}
}

func TestDomainsAndDifficulties(t *testing.T) {
	qs := []catalog.Question{
		{ID: 1, Domain: "B", Difficulty: "Hard", Prompt: "q", Options: []string{"x", "y"}, CorrectIndex: 0},
		{ID: 2, Domain: "A", Difficulty: "Easy", Prompt: "q", Options: []string{"x", "y"}, CorrectIndex: 0},
		{ID: 3, Domain: "A", Difficulty: "Medium", Prompt: "q", Options: []string{"x", "y"}, CorrectIndex: 0},
	}
	cat := catalog.New(catalog.Metadata{}, qs, catalog.ExamSettings{})

	if got := cat.Domains(); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("Domains = %v", got)
	}
	if got := cat.Difficulties(); !reflect.DeepEqual(got, []string{"Easy", "Medium", "Hard"}) {
		t.Errorf("Difficulties = %v, want ordinal order", got)
	}
}
