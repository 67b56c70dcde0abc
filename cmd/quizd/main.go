package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/aigp-hub/quizd/internal/api/http"
	"github.com/aigp-hub/quizd/internal/auth"
	"github.com/aigp-hub/quizd/internal/catalog"
	"github.com/aigp-hub/quizd/internal/config"
	"github.com/aigp-hub/quizd/internal/db"
	"github.com/aigp-hub/quizd/internal/quiz"
	"github.com/aigp-hub/quizd/internal/results"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	store := results.NewSQLStore(dbh)

	// --- Catalog + engine ---
	cat := catalog.Load(cfg.CatalogPath)
	log.Printf("catalog %q loaded: %d questions, %d domains",
		cat.Meta().Title, cat.Len(), len(cat.Domains()))
	engine := quiz.NewEngine(cat)
	registry := quiz.NewRegistry()

	// --- Auth ---
	authSvc := auth.NewAuthService(cfg.AuthSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.EnableLocalAuth {
		r.Post("/auth/register", auth.RegisterHandler(authSvc, dbh))
		r.Post("/auth/login", auth.LoginHandler(authSvc, dbh))
	}
	if cfg.EnableGuestAuth {
		r.Post("/auth/guest", auth.GuestLoginHandler(authSvc))
	}

	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		// Catalog metadata is readable without an identity.
		pr.Get("/catalog/domains", api.ListDomainsHandler(cat))
		pr.Get("/catalog/difficulties", api.ListDifficultiesHandler(cat))
		pr.Get("/catalog/meta", api.CatalogMetaHandler(cat))

		// Quiz flow needs a stable caller id (login or guest token).
		pr.Group(func(sr chi.Router) {
			sr.Use(auth.RequireIdentity)

			sr.Post("/sessions", api.CreateSessionHandler(engine, registry))
			sr.Get("/sessions/{sessionID}/progress", api.ProgressHandler(engine, registry))
			sr.Post("/sessions/{sessionID}/answers", api.SubmitAnswersHandler(engine, registry))
			sr.Post("/sessions/{sessionID}/submit", api.SubmitSessionHandler(engine, registry, store))
			sr.Delete("/sessions/{sessionID}", api.ResetSessionHandler(registry))

			sr.Get("/stats", api.StatsHandler(store))
		})
	})

	log.Printf("quizd listening on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatal(err)
	}
}
