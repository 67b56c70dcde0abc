package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Open opens a DB and ensures schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:quizd.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/quizd?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := ensureSchema(ctx, db, driver); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB, driver Driver) error {
	var schema string
	switch driver {
	case DriverSQLite:
		schema = schemaSQLite
	case DriverPostgres:
		schema = schemaPostgres
	}
	_, err := db.ExecContext(ctx, schema)
	return err
}

const schemaSQLite = `
PRAGMA foreign_keys=ON;

CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  username TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL DEFAULT '',
  created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS quiz_results (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  session_id TEXT NOT NULL UNIQUE,
  user_id TEXT,
  user_type TEXT NOT NULL DEFAULT 'anonymous',
  quiz_mode TEXT NOT NULL,
  domain_focus TEXT,
  difficulty_level TEXT,
  total_questions INTEGER NOT NULL,
  correct_answers INTEGER NOT NULL,
  answered_questions INTEGER NOT NULL DEFAULT 0,
  completion_rate REAL NOT NULL DEFAULT 0,
  score REAL NOT NULL,
  passed BOOLEAN NOT NULL,
  time_taken_minutes REAL,
  performance_data TEXT,
  recommendations TEXT,
  created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS quiz_responses (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  session_id TEXT NOT NULL REFERENCES quiz_results(session_id) ON DELETE CASCADE,
  question_index INTEGER NOT NULL,
  question_id INTEGER NOT NULL,
  question_text TEXT NOT NULL,
  user_answer INTEGER,
  correct_answer INTEGER NOT NULL,
  is_correct BOOLEAN NOT NULL,
  domain TEXT,
  difficulty TEXT,
  created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_quiz_results_user ON quiz_results(user_id, created_at);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  username TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL DEFAULT '',
  created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS quiz_results (
  id BIGSERIAL PRIMARY KEY,
  session_id TEXT NOT NULL UNIQUE,
  user_id TEXT,
  user_type TEXT NOT NULL DEFAULT 'anonymous',
  quiz_mode TEXT NOT NULL,
  domain_focus TEXT,
  difficulty_level TEXT,
  total_questions INTEGER NOT NULL,
  correct_answers INTEGER NOT NULL,
  answered_questions INTEGER NOT NULL DEFAULT 0,
  completion_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
  score DOUBLE PRECISION NOT NULL,
  passed BOOLEAN NOT NULL,
  time_taken_minutes DOUBLE PRECISION,
  performance_data TEXT,
  recommendations TEXT,
  created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS quiz_responses (
  id BIGSERIAL PRIMARY KEY,
  session_id TEXT NOT NULL REFERENCES quiz_results(session_id) ON DELETE CASCADE,
  question_index INTEGER NOT NULL,
  question_id INTEGER NOT NULL,
  question_text TEXT NOT NULL,
  user_answer INTEGER,
  correct_answer INTEGER NOT NULL,
  is_correct BOOLEAN NOT NULL,
  domain TEXT,
  difficulty TEXT,
  created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_quiz_results_user ON quiz_results(user_id, created_at);
`
