package quiz

// Score computes the Result for a session and performs the single allowed
// lifecycle transition active -> completed. A second call is rejected: once
// completed the session is terminal. Unanswered questions count as wrong,
// never as excluded, so the denominator is always the session's full question
// count.
func (e *Engine) Score(s *Session) (Result, error) {
	if s.State != StateActive {
		return Result{}, &StateError{SessionID: s.ID, Op: "score", State: s.State}
	}

	total := len(s.Questions)
	correct := 0
	domainTally := map[string]*DifficultyTally{}
	diffTally := map[string]*DifficultyTally{}
	details := make([]QuestionDetail, 0, total)

	for i, q := range s.Questions {
		choice := s.Answers.Get(i)
		isCorrect := choice == q.CorrectIndex
		if isCorrect {
			correct++
		}

		dt := domainTally[q.Domain]
		if dt == nil {
			dt = &DifficultyTally{}
			domainTally[q.Domain] = dt
		}
		dt.Total++
		ft := diffTally[q.Difficulty]
		if ft == nil {
			ft = &DifficultyTally{}
			diffTally[q.Difficulty] = ft
		}
		ft.Total++
		if isCorrect {
			dt.Correct++
			ft.Correct++
		}

		details = append(details, QuestionDetail{
			QuestionID:     q.ID,
			Prompt:         q.Prompt,
			UserChoice:     choice,
			UserAnswer:     optionText(q.Options, choice),
			CorrectChoice:  q.CorrectIndex,
			CorrectAnswer:  q.Options[q.CorrectIndex],
			IsCorrect:      isCorrect,
			Explanation:    q.Explanation,
			Domain:         q.Domain,
			Difficulty:     q.Difficulty,
			LegalReference: q.LegalReference,
		})
	}

	// Breakdown maps hold only the domains/difficulties actually present in
	// the session, so percentages never divide by zero.
	domainPct := make(map[string]float64, len(domainTally))
	for d, t := range domainTally {
		domainPct[d] = float64(t.Correct) / float64(t.Total) * 100
	}
	diffBreakdown := make(map[string]DifficultyTally, len(diffTally))
	for d, t := range diffTally {
		diffBreakdown[d] = *t
	}

	var scorePct, completionPct float64
	if total > 0 {
		scorePct = float64(correct) / float64(total) * 100
		completionPct = float64(s.Answers.AnsweredCount()) / float64(total) * 100
	}
	passing := e.cat.Settings().StandardExam.PassingScore

	s.State = StateCompleted

	return Result{
		SessionID:             s.ID,
		Mode:                  s.Mode,
		ScorePercent:          scorePct,
		CorrectCount:          correct,
		TotalQuestions:        total,
		AnsweredCount:         s.Answers.AnsweredCount(),
		CompletionRatePercent: completionPct,
		ElapsedMinutes:        e.now().Sub(s.CreatedAt).Minutes(),
		Passed:                scorePct >= passing,
		PassingScore:          passing,
		DomainBreakdown:       domainPct,
		DifficultyBreakdown:   diffBreakdown,
		Details:               details,
		Recommendations:       Recommend(domainPct, diffBreakdown),
	}, nil
}

func optionText(options []string, choice int) string {
	if choice >= 0 && choice < len(options) {
		return options[choice]
	}
	return "No answer"
}
