package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aigp-hub/quizd/internal/auth"
	"github.com/aigp-hub/quizd/internal/quiz"
	"github.com/aigp-hub/quizd/internal/results"
)

type questionView struct {
	Index      int      `json:"index"`
	Question   string   `json:"question"`
	Options    []string `json:"options"`
	Domain     string   `json:"domain"`
	Difficulty string   `json:"difficulty"`
}

type sessionView struct {
	SessionID        string         `json:"session_id"`
	Mode             string         `json:"mode"`
	TotalQuestions   int            `json:"total_questions"`
	TimeLimitMinutes int            `json:"time_limit_minutes"`
	Domain           string         `json:"domain"`
	Difficulty       string         `json:"difficulty"`
	CreatedAt        time.Time      `json:"created_at"`
	State            string         `json:"state"`
	Questions        []questionView `json:"questions"`
}

// viewOf strips answer keys and explanations before a session reaches the
// client; the scored Result is the only place those come back.
func viewOf(s *quiz.Session) sessionView {
	qs := make([]questionView, 0, len(s.Questions))
	for i, q := range s.Questions {
		qs = append(qs, questionView{
			Index:      i,
			Question:   q.Prompt,
			Options:    q.Options,
			Domain:     q.Domain,
			Difficulty: q.Difficulty,
		})
	}
	return sessionView{
		SessionID:        s.ID,
		Mode:             string(s.Mode),
		TotalQuestions:   len(s.Questions),
		TimeLimitMinutes: s.TimeLimitMinutes,
		Domain:           s.DomainFilter,
		Difficulty:       s.DifficultyFilter,
		CreatedAt:        s.CreatedAt,
		State:            string(s.State),
		Questions:        qs,
	}
}

func CreateSessionHandler(engine *quiz.Engine, reg *quiz.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Mode             string `json:"mode"`
			NumQuestions     int    `json:"num_questions"`
			Difficulty       string `json:"difficulty"`
			Domain           string `json:"domain"`
			TimeLimitMinutes *int   `json:"time_limit_minutes"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		id := auth.IdentityFromContext(r.Context())
		s, err := engine.Build(quiz.BuildParams{
			Mode:             quiz.Mode(req.Mode),
			NumQuestions:     req.NumQuestions,
			Difficulty:       req.Difficulty,
			Domain:           req.Domain,
			TimeLimitMinutes: req.TimeLimitMinutes,
			Owner:            id.UserID,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		reg.Put(s)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(viewOf(s))
	}
}

func SubmitAnswersHandler(engine *quiz.Engine, reg *quiz.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Index   *int           `json:"index"`
			Choice  *int           `json:"choice"`
			Answers map[string]int `json:"answers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		id := auth.IdentityFromContext(r.Context())
		s, err := reg.Get(id.UserID, chi.URLParam(r, "sessionID"))
		if err != nil {
			writeError(w, err)
			return
		}
		switch {
		case req.Index != nil && req.Choice != nil:
			err = engine.SubmitAnswer(s, *req.Index, *req.Choice)
		case req.Answers != nil:
			batch := make(map[int]int, len(req.Answers))
			for k, v := range req.Answers {
				idx, convErr := strconv.Atoi(k)
				if convErr != nil {
					http.Error(w, "answer keys must be question indexes", http.StatusBadRequest)
					return
				}
				batch[idx] = v
			}
			err = engine.BulkSubmit(s, batch)
		default:
			http.Error(w, "index/choice or answers required", http.StatusBadRequest)
			return
		}
		if err != nil {
			writeError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(engine.Progress(s))
	}
}

func ProgressHandler(engine *quiz.Engine, reg *quiz.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := auth.IdentityFromContext(r.Context())
		s, err := reg.Get(id.UserID, chi.URLParam(r, "sessionID"))
		if err != nil {
			writeError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(engine.Progress(s))
	}
}

// SubmitSessionHandler scores the session, persists the result, and drops the
// session from the registry. A persistence failure is logged and reported via
// "stored": false, never by withholding the computed result.
func SubmitSessionHandler(engine *quiz.Engine, reg *quiz.Registry, store results.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := auth.IdentityFromContext(r.Context())
		s, err := reg.Get(id.UserID, chi.URLParam(r, "sessionID"))
		if err != nil {
			writeError(w, err)
			return
		}
		res, err := engine.Score(s)
		if err != nil {
			writeError(w, err)
			return
		}

		scope := results.Scope{UserID: id.UserID, Authenticated: id.Authenticated}
		stored := true
		if err := store.Save(r.Context(), results.NewRecord(res, s, scope)); err != nil {
			log.Printf("save result for session %s: %v", s.ID, err)
			stored = false
		}
		_ = reg.Remove(id.UserID, s.ID)

		_ = json.NewEncoder(w).Encode(struct {
			quiz.Result
			Stored bool `json:"stored"`
		}{Result: res, Stored: stored})
	}
}

func ResetSessionHandler(reg *quiz.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := auth.IdentityFromContext(r.Context())
		if err := reg.Remove(id.UserID, chi.URLParam(r, "sessionID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeError(w http.ResponseWriter, err error) {
	var cfgErr *quiz.ConfigError
	var stateErr *quiz.StateError
	switch {
	case errors.As(err, &cfgErr):
		http.Error(w, cfgErr.Error(), http.StatusBadRequest)
	case errors.Is(err, quiz.ErrNoQuestionsAvailable):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.As(err, &stateErr):
		http.Error(w, stateErr.Error(), http.StatusConflict)
	case errors.Is(err, quiz.ErrSessionNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
