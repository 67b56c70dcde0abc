package quiz

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/aigp-hub/quizd/internal/catalog"
)

// Engine builds, tracks and scores quiz sessions against one catalog.
// The catalog is read-only shared state; sessions themselves are single-owner.
type Engine struct {
	cat *catalog.Catalog
	now func() time.Time
}

func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat, now: time.Now}
}

func (e *Engine) Catalog() *catalog.Catalog { return e.cat }

// BuildParams are the caller-supplied session parameters. TimeLimitMinutes is
// three-valued: nil picks the mode default, 0 means unlimited, >0 is taken
// as-is.
type BuildParams struct {
	Mode             Mode
	NumQuestions     int
	Difficulty       string
	Domain           string
	TimeLimitMinutes *int
	Owner            string
}

// Build filters and samples the catalog into a new active session. The actual
// question count may be lower than requested: availability caps it silently,
// and exam simulation additionally caps it at the official exam length. Only
// an empty filter result is an error.
func (e *Engine) Build(p BuildParams) (*Session, error) {
	if _, err := ParseMode(string(p.Mode)); err != nil {
		return nil, err
	}
	if p.NumQuestions < 1 {
		return nil, &ConfigError{Field: "num_questions", Reason: "must be at least 1"}
	}
	if p.Domain == "" {
		p.Domain = catalog.Mixed
	}
	if p.Difficulty == "" {
		p.Difficulty = catalog.Mixed
	}

	count := p.NumQuestions
	if p.Mode == ModeExamSimulation {
		if examMax := e.cat.Settings().StandardExam.TotalQuestions; count > examMax {
			count = examMax
		}
	}

	pool := e.cat.Filter(p.Domain, p.Difficulty)
	if len(pool) == 0 {
		return nil, ErrNoQuestionsAvailable
	}
	rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if count > len(pool) {
		count = len(pool)
	}

	return &Session{
		ID:               uuid.NewString(),
		Owner:            p.Owner,
		Mode:             p.Mode,
		Questions:        pool[:count],
		TimeLimitMinutes: e.resolveTimeLimit(p.Mode, p.TimeLimitMinutes),
		DomainFilter:     p.Domain,
		DifficultyFilter: p.Difficulty,
		CreatedAt:        e.now(),
		State:            StateActive,
		Answers:          Ledger{},
	}, nil
}

// fallbackTimeLimitMinutes applies when neither the caller nor the catalog
// settings provide a limit for the mode.
const fallbackTimeLimitMinutes = 15

// resolveTimeLimit implements the resolution order: explicit caller value
// first (0 = unlimited, never overridden), then the mode default from the
// catalog settings, then the global fallback.
func (e *Engine) resolveTimeLimit(mode Mode, requested *int) int {
	if requested != nil && *requested >= 0 {
		return *requested
	}
	s := e.cat.Settings()
	if mode == ModeExamSimulation {
		return s.StandardExam.TimeLimitMinutes
	}
	if d, ok := s.PracticeModes[string(mode)]; ok && d.TimeLimitMinutes > 0 {
		return d.TimeLimitMinutes
	}
	return fallbackTimeLimitMinutes
}
