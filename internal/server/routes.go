package server

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/bitbingo/stadsbingo/internal/stadsbingo"
)

func addRoutes(r chi.Router, logger *slog.Logger, store Store, catalog []stadsbingo.Question, db *sql.DB, spaDir string) {
	broker := NewBroker()
	ids := &stadsbingo.IDSource{}

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Stadsbingo API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, db))

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", handleRegister(store, ids))

		// Team routes resolve the current team from the store.
		r.Route("/quiz", func(r chi.Router) {
			r.Get("/state", handleQuizState(store, catalog))
			r.Get("/questions", handleListQuestions(catalog))
			r.Get("/questions/{index}", handleGetQuestion(store, catalog))
			r.Post("/submissions", handleSubmit(store, catalog, ids, broker))
		})

		r.Route("/review", func(r chi.Router) {
			r.Get("/submissions", handleListSubmissions(store, catalog))
			r.Get("/submissions/{id}", handleGetSubmission(store, catalog))
			r.Put("/submissions/{id}/rating", handleRate(store, broker))
			r.Get("/scores", handleScores(store, catalog))
			r.Get("/stats", handleStats(store, catalog))
			r.Delete("/data", handleClearData(store))
			r.Get("/events", handleEvents(broker))
		})
	})

	if spaDir != "" {
		if info, err := os.Stat(spaDir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", spaDir)
			r.NotFound(handleSPA(spaDir))
		}
	}
}
