package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
)

// Mixed is the sentinel filter value meaning "no restriction".
const Mixed = "Mixed"

type Question struct {
	ID             int      `json:"id"`
	Domain         string   `json:"domain"`
	Difficulty     string   `json:"difficulty"`
	Prompt         string   `json:"question"`
	Options        []string `json:"options"`
	CorrectIndex   int      `json:"correct"`
	Explanation    string   `json:"explanation"`
	LegalReference string   `json:"legal_reference,omitempty"`
}

type Metadata struct {
	Title   string `json:"title"`
	Version string `json:"version"`
}

type ExamDefaults struct {
	TotalQuestions   int     `json:"total_questions"`
	TimeLimitMinutes int     `json:"time_limit_minutes"`
	PassingScore     float64 `json:"passing_score"`
}

type PracticeDefaults struct {
	TimeLimitMinutes int `json:"time_limit_minutes"`
}

type ExamSettings struct {
	StandardExam  ExamDefaults                `json:"standard_exam"`
	PracticeModes map[string]PracticeDefaults `json:"practice_modes"`
}

type bankFile struct {
	Metadata  Metadata     `json:"metadata"`
	Questions []Question   `json:"questions"`
	Settings  ExamSettings `json:"exam_settings"`
}

// Catalog is the immutable question bank loaded once at startup.
type Catalog struct {
	meta      Metadata
	questions []Question
	settings  ExamSettings
}

// Load reads the question bank from path. A missing or corrupt file degrades
// to the built-in fallback bank instead of failing startup.
func Load(path string) *Catalog {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("catalog: %v; using built-in fallback bank", err)
		return Fallback()
	}
	var f bankFile
	if err := json.Unmarshal(raw, &f); err != nil {
		log.Printf("catalog: parse %s: %v; using built-in fallback bank", path, err)
		return Fallback()
	}
	if len(f.Questions) == 0 {
		log.Printf("catalog: %s contains no questions; using built-in fallback bank", path)
		return Fallback()
	}
	return New(f.Metadata, f.Questions, f.Settings)
}

// New validates the given bank and drops malformed records. Settings fields left
// at zero are filled from the fallback defaults.
func New(meta Metadata, questions []Question, settings ExamSettings) *Catalog {
	kept := make([]Question, 0, len(questions))
	for _, q := range questions {
		if err := validate(q); err != nil {
			log.Printf("catalog: skipping question %d: %v", q.ID, err)
			continue
		}
		kept = append(kept, q)
	}
	return &Catalog{meta: meta, questions: kept, settings: withDefaults(settings)}
}

func validate(q Question) error {
	if len(q.Options) < 2 || len(q.Options) > 5 {
		return fmt.Errorf("want 2-5 options, have %d", len(q.Options))
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return fmt.Errorf("correct index %d out of range", q.CorrectIndex)
	}
	if q.Domain == "" || q.Difficulty == "" {
		return fmt.Errorf("missing domain or difficulty tag")
	}
	return nil
}

func withDefaults(s ExamSettings) ExamSettings {
	def := fallbackSettings()
	if s.StandardExam.TotalQuestions <= 0 {
		s.StandardExam.TotalQuestions = def.StandardExam.TotalQuestions
	}
	if s.StandardExam.TimeLimitMinutes <= 0 {
		s.StandardExam.TimeLimitMinutes = def.StandardExam.TimeLimitMinutes
	}
	if s.StandardExam.PassingScore <= 0 {
		s.StandardExam.PassingScore = def.StandardExam.PassingScore
	}
	if s.PracticeModes == nil {
		s.PracticeModes = def.PracticeModes
	}
	return s
}

func (c *Catalog) Meta() Metadata         { return c.meta }
func (c *Catalog) Settings() ExamSettings { return c.settings }
func (c *Catalog) Len() int               { return len(c.questions) }

// Filter returns the questions matching the given domain and difficulty.
// Mixed on either dimension means no restriction. The returned slice is a
// copy; callers may reorder it freely.
func (c *Catalog) Filter(domain, difficulty string) []Question {
	out := make([]Question, 0, len(c.questions))
	for _, q := range c.questions {
		if domain != Mixed && q.Domain != domain {
			continue
		}
		if difficulty != Mixed && q.Difficulty != difficulty {
			continue
		}
		out = append(out, q)
	}
	return out
}

// Domains lists the distinct domain tags present in the bank, sorted.
func (c *Catalog) Domains() []string {
	seen := map[string]bool{}
	for _, q := range c.questions {
		seen[q.Domain] = true
	}
	out := make([]string, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Difficulties lists the distinct difficulty tags, ordered Easy < Medium < Hard,
// unknown tags after them alphabetically.
func (c *Catalog) Difficulties() []string {
	seen := map[string]bool{}
	for _, q := range c.questions {
		seen[q.Difficulty] = true
	}
	out := make([]string, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		ri, rj := DifficultyRank(out[i]), DifficultyRank(out[j])
		if ri != rj {
			return ri < rj
		}
		return out[i] < out[j]
	})
	return out
}

// DifficultyRank maps the ordinal difficulty tags to a sortable rank.
func DifficultyRank(d string) int {
	switch d {
	case "Easy":
		return 0
	case "Medium":
		return 1
	case "Hard":
		return 2
	default:
		return 3
	}
}
