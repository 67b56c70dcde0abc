package results

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SQLStore persists results over database/sql (sqlite or postgres).
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Save writes the result header plus one row per question response in a
// single transaction. Any failure is wrapped as ErrPersistence; the caller's
// in-memory Result is unaffected.
func (s *SQLStore) Save(ctx context.Context, rec Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrPersistence, err)
	}
	defer tx.Rollback()

	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err = tx.ExecContext(ctx, `INSERT INTO quiz_results
		(session_id, user_id, user_type, quiz_mode, domain_focus, difficulty_level,
		 total_questions, correct_answers, answered_questions, completion_rate,
		 score, passed, time_taken_minutes, performance_data, recommendations, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)`,
		rec.SessionID, rec.UserID, rec.UserType, rec.Mode, rec.DomainFocus, rec.DifficultyLevel,
		rec.TotalQuestions, rec.CorrectAnswers, rec.AnsweredQuestions, rec.CompletionRate,
		rec.Score, rec.Passed, rec.TimeTakenMinutes,
		marshalJSON(rec.Performance), marshalJSON(rec.Recommendations), createdAt.Unix())
	if err != nil {
		return fmt.Errorf("%w: session %s: %v", ErrPersistence, rec.SessionID, err)
	}

	for _, r := range rec.Responses {
		_, err = tx.ExecContext(ctx, `INSERT INTO quiz_responses
			(session_id, question_index, question_id, question_text,
			 user_answer, correct_answer, is_correct, domain, difficulty, created_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
			rec.SessionID, r.QuestionIndex, r.QuestionID, r.QuestionText,
			r.UserAnswer, r.CorrectAnswer, r.IsCorrect, r.Domain, r.Difficulty, createdAt.Unix())
		if err != nil {
			return fmt.Errorf("%w: session %s response %d: %v", ErrPersistence, rec.SessionID, r.QuestionIndex, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit session %s: %v", ErrPersistence, rec.SessionID, err)
	}
	return nil
}

// StatsFor aggregates the visible history: a signed-in user's own sessions,
// or a bounded recent window of anonymous ones. The store is shared,
// weakly-typed storage, so every column is read as nullable text and decoded
// parse-or-skip; one malformed row never fails the whole aggregate.
func (s *SQLStore) StatsFor(ctx context.Context, scope Scope) (Stats, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if scope.Authenticated {
		rows, err = s.db.QueryContext(ctx, `SELECT score, total_questions, passed, time_taken_minutes
			FROM quiz_results WHERE user_id=$1 ORDER BY created_at DESC`, scope.UserID)
	} else {
		rows, err = s.db.QueryContext(ctx, `SELECT score, total_questions, passed, time_taken_minutes
			FROM quiz_results WHERE user_type=$1 ORDER BY created_at DESC LIMIT $2`,
			UserTypeAnonymous, anonymousWindow)
	}
	if err != nil {
		return Stats{}, fmt.Errorf("%w: stats query: %v", ErrPersistence, err)
	}
	defer rows.Close()

	var samples []statsRow
	for rows.Next() {
		var score, totalQ, passed, minutes sql.NullString
		if err := rows.Scan(&score, &totalQ, &passed, &minutes); err != nil {
			continue
		}
		row, ok := decodeStatsRow(score, totalQ, passed, minutes)
		if !ok {
			continue
		}
		samples = append(samples, row)
	}
	if err := rows.Err(); err != nil {
		return Stats{}, fmt.Errorf("%w: stats scan: %v", ErrPersistence, err)
	}
	return aggregate(samples), nil
}
