package quiz

import (
	"fmt"
	"time"

	"github.com/aigp-hub/quizd/internal/catalog"
)

type Mode string

const (
	ModeQuickPractice  Mode = "quick_practice"
	ModeDomainFocus    Mode = "domain_focus"
	ModeExamSimulation Mode = "exam_simulation"
)

// ParseMode validates a caller-supplied mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeQuickPractice, ModeDomainFocus, ModeExamSimulation:
		return Mode(s), nil
	}
	return "", &ConfigError{Field: "mode", Reason: fmt.Sprintf("unknown mode %q", s)}
}

type State string

const (
	StateActive    State = "active"
	StateCompleted State = "completed"
	StateErrored   State = "error"
)

// Unanswered is the ledger sentinel for a question with no recorded answer.
const Unanswered = -1

// Ledger maps question index to the selected option index for one session.
// Overwriting an entry is allowed; the user may change their answer.
type Ledger map[int]int

func (l Ledger) Get(index int) int {
	if v, ok := l[index]; ok {
		return v
	}
	return Unanswered
}

func (l Ledger) AnsweredCount() int { return len(l) }

// Session is one bounded quiz attempt. Questions are frozen at construction;
// only State and Answers change afterwards, and State transitions
// active -> completed exactly once, in Engine.Score.
type Session struct {
	ID               string             `json:"session_id"`
	Owner            string             `json:"-"`
	Mode             Mode               `json:"mode"`
	Questions        []catalog.Question `json:"-"`
	TimeLimitMinutes int                `json:"time_limit_minutes"` // 0 = unlimited
	DomainFilter     string             `json:"domain"`
	DifficultyFilter string             `json:"difficulty"`
	CreatedAt        time.Time          `json:"created_at"`
	State            State              `json:"state"`
	Answers          Ledger             `json:"-"`
}

// DifficultyTally is a correct/total pair for one difficulty bucket.
type DifficultyTally struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// QuestionDetail is the per-question line of a Result.
type QuestionDetail struct {
	QuestionID     int    `json:"question_id"`
	Prompt         string `json:"question"`
	UserChoice     int    `json:"user_choice"`
	UserAnswer     string `json:"user_answer"`
	CorrectChoice  int    `json:"correct_choice"`
	CorrectAnswer  string `json:"correct_answer"`
	IsCorrect      bool   `json:"is_correct"`
	Explanation    string `json:"explanation"`
	Domain         string `json:"domain"`
	Difficulty     string `json:"difficulty"`
	LegalReference string `json:"legal_reference,omitempty"`
}

// Result is the immutable scored outcome of a completed session.
type Result struct {
	SessionID             string                     `json:"session_id"`
	Mode                  Mode                       `json:"mode"`
	ScorePercent          float64                    `json:"score"`
	CorrectCount          int                        `json:"correct_answers"`
	TotalQuestions        int                        `json:"total_questions"`
	AnsweredCount         int                        `json:"answered_questions"`
	CompletionRatePercent float64                    `json:"completion_rate"`
	ElapsedMinutes        float64                    `json:"time_taken_minutes"`
	Passed                bool                       `json:"passed"`
	PassingScore          float64                    `json:"passing_score"`
	DomainBreakdown       map[string]float64         `json:"domain_performance"`
	DifficultyBreakdown   map[string]DifficultyTally `json:"difficulty_performance"`
	Details               []QuestionDetail           `json:"detailed_results"`
	Recommendations       []string                   `json:"recommendations"`
}

// Progress is a point-in-time read of an active session. Safe to poll.
type Progress struct {
	SessionID            string   `json:"session_id"`
	AnsweredCount        int      `json:"answered_questions"`
	TotalCount           int      `json:"total_questions"`
	Percent              float64  `json:"progress_percentage"`
	TimeRemainingMinutes *float64 `json:"time_remaining_minutes,omitempty"`
}
