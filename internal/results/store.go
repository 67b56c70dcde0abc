package results

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/aigp-hub/quizd/internal/quiz"
)

// ErrPersistence wraps storage failures. Writes are non-fatal to the
// user-facing flow: the in-memory Result is already computed and the caller
// may still present it.
var ErrPersistence = errors.New("result store failure")

const (
	UserTypeAuthenticated = "authenticated"
	UserTypeAnonymous     = "anonymous"
)

// anonymousWindow bounds how much shared anonymous history feeds the stats.
const anonymousWindow = 50

// Scope selects whose history an aggregate covers.
type Scope struct {
	UserID        string
	Authenticated bool
}

// Record is the denormalized persisted form of one completed session.
type Record struct {
	SessionID         string
	UserID            string
	UserType          string
	Mode              string
	DomainFocus       string
	DifficultyLevel   string
	TotalQuestions    int
	CorrectAnswers    int
	AnsweredQuestions int
	CompletionRate    float64
	Score             float64
	Passed            bool
	TimeTakenMinutes  float64
	Performance       Performance
	Recommendations   []string
	Responses         []Response
	CreatedAt         time.Time
}

// Performance is the breakdown blob stored alongside the header row.
type Performance struct {
	DomainPerformance     map[string]float64              `json:"domain_performance"`
	DifficultyPerformance map[string]quiz.DifficultyTally `json:"difficulty_performance"`
	CompletionRate        float64                         `json:"completion_rate"`
}

// Response is one question-in-session row.
type Response struct {
	QuestionIndex int
	QuestionID    int
	QuestionText  string
	UserAnswer    int
	CorrectAnswer int
	IsCorrect     bool
	Domain        string
	Difficulty    string
}

// Stats is the typed aggregate over a scope's visible history.
type Stats struct {
	TotalQuizzes           int     `json:"total_quizzes"`
	AverageScore           float64 `json:"average_score"`
	BestScore              float64 `json:"best_score"`
	LatestScore            float64 `json:"latest_score"`
	PassRate               float64 `json:"pass_rate"`
	TotalQuestionsAnswered int     `json:"total_questions_answered"`
	AverageTimeMinutes     float64 `json:"average_time_per_quiz"`
}

// Store is the persistence boundary for completed sessions.
type Store interface {
	Save(ctx context.Context, rec Record) error
	StatsFor(ctx context.Context, scope Scope) (Stats, error)
}

// NewRecord flattens a scored Result and its session into the persisted form.
func NewRecord(res quiz.Result, s *quiz.Session, scope Scope) Record {
	userType := UserTypeAnonymous
	userID := ""
	if scope.Authenticated {
		userType = UserTypeAuthenticated
		userID = scope.UserID
	}
	responses := make([]Response, 0, len(res.Details))
	for i, d := range res.Details {
		responses = append(responses, Response{
			QuestionIndex: i,
			QuestionID:    d.QuestionID,
			QuestionText:  d.Prompt,
			UserAnswer:    d.UserChoice,
			CorrectAnswer: d.CorrectChoice,
			IsCorrect:     d.IsCorrect,
			Domain:        d.Domain,
			Difficulty:    d.Difficulty,
		})
	}
	return Record{
		SessionID:         res.SessionID,
		UserID:            userID,
		UserType:          userType,
		Mode:              string(res.Mode),
		DomainFocus:       s.DomainFilter,
		DifficultyLevel:   s.DifficultyFilter,
		TotalQuestions:    res.TotalQuestions,
		CorrectAnswers:    res.CorrectCount,
		AnsweredQuestions: res.AnsweredCount,
		CompletionRate:    res.CompletionRatePercent,
		Score:             res.ScorePercent,
		Passed:            res.Passed,
		TimeTakenMinutes:  res.ElapsedMinutes,
		Performance: Performance{
			DomainPerformance:     res.DomainBreakdown,
			DifficultyPerformance: res.DifficultyBreakdown,
			CompletionRate:        res.CompletionRatePercent,
		},
		Recommendations: res.Recommendations,
		CreatedAt:       time.Now(),
	}
}

func marshalJSON(v interface{}) string {
	buf, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(buf)
}
