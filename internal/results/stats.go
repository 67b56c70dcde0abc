package results

import (
	"database/sql"
	"strconv"
	"strings"
)

// statsRow is one successfully decoded history row.
type statsRow struct {
	Score          float64
	TotalQuestions int
	Passed         bool
	Minutes        float64
	HasMinutes     bool
}

// decodeStatsRow converts one weakly-typed stored row into a typed sample.
// Score and total_questions are required; rows where either fails to parse
// are skipped. Passed tolerates bool-ish text, minutes is optional.
func decodeStatsRow(score, totalQ, passed, minutes sql.NullString) (statsRow, bool) {
	var row statsRow

	if !score.Valid {
		return row, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(score.String), 64)
	if err != nil {
		return row, false
	}
	row.Score = v

	if !totalQ.Valid {
		return row, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(totalQ.String))
	if err != nil {
		return row, false
	}
	row.TotalQuestions = n

	if passed.Valid {
		switch strings.ToLower(strings.TrimSpace(passed.String)) {
		case "1", "true", "yes":
			row.Passed = true
		}
	}

	if minutes.Valid {
		if m, err := strconv.ParseFloat(strings.TrimSpace(minutes.String), 64); err == nil {
			row.Minutes = m
			row.HasMinutes = true
		}
	}

	return row, true
}

func aggregate(samples []statsRow) Stats {
	var st Stats
	st.TotalQuizzes = len(samples)
	if len(samples) == 0 {
		return st
	}

	var scoreSum, timeSum float64
	var timeCount, passedCount int
	for i, row := range samples {
		scoreSum += row.Score
		if row.Score > st.BestScore {
			st.BestScore = row.Score
		}
		if i == 0 {
			// Rows arrive newest-first.
			st.LatestScore = row.Score
		}
		st.TotalQuestionsAnswered += row.TotalQuestions
		if row.Passed {
			passedCount++
		}
		if row.HasMinutes {
			timeSum += row.Minutes
			timeCount++
		}
	}

	st.AverageScore = scoreSum / float64(len(samples))
	st.PassRate = float64(passedCount) / float64(len(samples)) * 100
	if timeCount > 0 {
		st.AverageTimeMinutes = timeSum / float64(timeCount)
	}
	return st
}
