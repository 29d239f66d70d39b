package server

import (
	"net/http"

	"github.com/bitbingo/stadsbingo/internal/stadsbingo"
)

type ScoreboardResponse struct {
	TotalQuestions int                `json:"total_questions"`
	Scores         []stadsbingo.Score `json:"scores"`
}

func handleScores(store Store, catalog []stadsbingo.Question) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := store.Teams(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		subs, err := store.Submissions(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, ScoreboardResponse{
			TotalQuestions: len(catalog),
			Scores:         stadsbingo.ScoreAll(teams, subs),
		})
	}
}
