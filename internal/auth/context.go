package auth

import (
	"context"
	"net/http"
)

// Identity is the (user, is_authenticated) pair supplied to the engine.
// Guests carry a stable id but count as anonymous for persistence scoping.
type Identity struct {
	UserID        string
	Authenticated bool
}

func Anonymous() Identity { return Identity{} }

type ctxKey string

const ctxKeyIdentity ctxKey = "identity"

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKeyIdentity, id)
}

func IdentityFromContext(ctx context.Context) Identity {
	if v := ctx.Value(ctxKeyIdentity); v != nil {
		if id, ok := v.(Identity); ok {
			return id
		}
	}
	return Anonymous()
}

// RequireIdentity guards routes that need a stable caller id (session
// ownership, stats scoping). Guests qualify; bare unauthenticated requests
// are told to log in or fetch a guest token first.
func RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IdentityFromContext(r.Context()).UserID == "" {
			http.Error(w, "login or guest token required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
