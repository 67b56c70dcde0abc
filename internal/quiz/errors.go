package quiz

import (
	"errors"
	"fmt"
)

// ErrNoQuestionsAvailable means the requested filters matched nothing in the
// catalog. Terminal for that build attempt; the caller should broaden filters.
var ErrNoQuestionsAvailable = errors.New("no questions available for the requested criteria")

// ErrSessionNotFound is returned by the registry for unknown or foreign sessions.
var ErrSessionNotFound = errors.New("session not found")

// ConfigError reports invalid session-build parameters. No partial session is
// created when it is returned.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StateError reports an operation attempted on a session outside the state it
// requires, e.g. scoring twice or answering a completed session.
type StateError struct {
	SessionID string
	Op        string
	State     State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("session %s: cannot %s in state %q", e.SessionID, e.Op, e.State)
}
