package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/aigp-hub/quizd/internal/auth"
	"github.com/aigp-hub/quizd/internal/results"
)

// StatsHandler returns the aggregate quiz history for the caller's scope:
// signed-in users see their own sessions, guests the shared anonymous window.
func StatsHandler(store results.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := auth.IdentityFromContext(r.Context())
		st, err := store.StatsFor(r.Context(), results.Scope{
			UserID:        id.UserID,
			Authenticated: id.Authenticated,
		})
		if err != nil {
			log.Printf("stats for %q: %v", id.UserID, err)
			http.Error(w, "stats unavailable", http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(st)
	}
}
