package server

import (
	"errors"
	"net/http"

	"github.com/bitbingo/stadsbingo/internal/stadsbingo"
)

type QuizStateResponse struct {
	Team                 stadsbingo.Team      `json:"team"`
	TotalQuestions       int                  `json:"total_questions"`
	SubmittedQuestionIDs []int64              `json:"submitted_question_ids"`
	MaxAllowedQuestion   int                  `json:"max_allowed_question"`
	FrontierQuestion     *stadsbingo.Question `json:"frontier_question"`
}

func handleQuizState(store Store, catalog []stadsbingo.Question) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if len(catalog) == 0 {
			writeError(w, http.StatusNotFound, "no questions available")
			return
		}

		team, err := currentTeam(r.Context(), store)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "no registered team")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		subs, err := store.Submissions(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		maxAllowed, err := stadsbingo.MaxAllowedQuestion(catalog, subs, team.ID)
		if errors.Is(err, stadsbingo.ErrUnknownQuestion) {
			writeError(w, http.StatusNotFound, "stored progress no longer matches the catalog")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		// Submitted ids in catalog order.
		submitted := []int64{}
		for _, q := range catalog {
			if stadsbingo.Submitted(subs, team.ID, q.ID) {
				submitted = append(submitted, q.ID)
			}
		}

		writeJSON(w, http.StatusOK, QuizStateResponse{
			Team:                 team,
			TotalQuestions:       len(catalog),
			SubmittedQuestionIDs: submitted,
			MaxAllowedQuestion:   maxAllowed,
			FrontierQuestion:     stadsbingo.Frontier(catalog, subs, team.ID),
		})
	}
}
