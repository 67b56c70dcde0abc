package http

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/aigp-hub/quizd/internal/catalog"
)

func ListDomainsHandler(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string][]string{"domains": cat.Domains()})
	}
}

func ListDifficultiesHandler(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string][]string{"difficulties": cat.Difficulties()})
	}
}

func CatalogMetaHandler(cat *catalog.Catalog) http.HandlerFunc {
	type out struct {
		Title          string               `json:"title"`
		Version        string               `json:"version"`
		TotalQuestions int                  `json:"total_questions"`
		StandardExam   catalog.ExamDefaults `json:"standard_exam"`
		PracticeModes  []string             `json:"practice_modes"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		s := cat.Settings()
		modes := make([]string, 0, len(s.PracticeModes))
		for m := range s.PracticeModes {
			modes = append(modes, m)
		}
		sort.Strings(modes)
		_ = json.NewEncoder(w).Encode(out{
			Title:          cat.Meta().Title,
			Version:        cat.Meta().Version,
			TotalQuestions: cat.Len(),
			StandardExam:   s.StandardExam,
			PracticeModes:  modes,
		})
	}
}
