package quiz

// SubmitAnswer records (or overwrites) the answer for one question. The
// session must be active; completed sessions are terminal and reject writes.
// The choice itself is not range-checked here: an out-of-range choice simply
// scores as wrong.
func (e *Engine) SubmitAnswer(s *Session, index, choice int) error {
	if s.State != StateActive {
		return &StateError{SessionID: s.ID, Op: "submit answer", State: s.State}
	}
	if index < 0 || index >= len(s.Questions) {
		return &ConfigError{Field: "question_index", Reason: "out of range"}
	}
	s.Answers[index] = choice
	return nil
}

// BulkSubmit records a batch of answers at once. All-or-nothing: an invalid
// index rejects the whole batch with no mutation.
func (e *Engine) BulkSubmit(s *Session, answers map[int]int) error {
	if s.State != StateActive {
		return &StateError{SessionID: s.ID, Op: "submit answers", State: s.State}
	}
	for index := range answers {
		if index < 0 || index >= len(s.Questions) {
			return &ConfigError{Field: "question_index", Reason: "out of range"}
		}
	}
	for index, choice := range answers {
		s.Answers[index] = choice
	}
	return nil
}

// Progress is a pure read with no side effects; it can be polled at any time,
// including after completion.
func (e *Engine) Progress(s *Session) Progress {
	total := len(s.Questions)
	answered := s.Answers.AnsweredCount()
	p := Progress{
		SessionID:     s.ID,
		AnsweredCount: answered,
		TotalCount:    total,
	}
	if total > 0 {
		p.Percent = float64(answered) / float64(total) * 100
	}
	if s.TimeLimitMinutes > 0 {
		elapsed := e.now().Sub(s.CreatedAt).Minutes()
		remaining := float64(s.TimeLimitMinutes) - elapsed
		if remaining < 0 {
			remaining = 0
		}
		p.TimeRemainingMinutes = &remaining
	}
	return p
}
