package quiz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aigp-hub/quizd/internal/catalog"
)

const (
	weakDomainThreshold     = 70.0
	weakDifficultyThreshold = 0.6
)

// Recommend derives ranked study suggestions from the per-domain and
// per-difficulty breakdowns. Rules are cumulative, not mutually exclusive;
// exactly one overall-assessment line always closes the list.
func Recommend(domainPct map[string]float64, diffPerf map[string]DifficultyTally) []string {
	var recs []string

	var weak []string
	for domain, pct := range domainPct {
		if pct < weakDomainThreshold {
			weak = append(weak, domain)
		}
	}
	if len(weak) > 0 {
		sort.Strings(weak)
		recs = append(recs, "Focus on these domains: "+strings.Join(weak, ", "))
	}

	diffs := make([]string, 0, len(diffPerf))
	for d := range diffPerf {
		diffs = append(diffs, d)
	}
	sort.Slice(diffs, func(i, j int) bool {
		ri, rj := catalog.DifficultyRank(diffs[i]), catalog.DifficultyRank(diffs[j])
		if ri != rj {
			return ri < rj
		}
		return diffs[i] < diffs[j]
	})
	for _, d := range diffs {
		t := diffPerf[d]
		if t.Total > 0 && float64(t.Correct)/float64(t.Total) < weakDifficultyThreshold {
			recs = append(recs, fmt.Sprintf("Practice more %s questions", strings.ToLower(d)))
		}
	}

	var mean float64
	if len(domainPct) > 0 {
		for _, pct := range domainPct {
			mean += pct
		}
		mean /= float64(len(domainPct))
	}
	switch {
	case mean >= 90:
		recs = append(recs, "Excellent performance! You're ready for the AIGP exam.")
	case mean >= 80:
		recs = append(recs, "Good progress! Review weak areas and take more practice exams.")
	case mean >= 70:
		recs = append(recs, "You're on track! Focus on understanding explanations and key concepts.")
	default:
		recs = append(recs, "More study needed. Review fundamental concepts and retake quizzes.")
	}

	return recs
}
