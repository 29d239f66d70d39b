package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bitbingo/stadsbingo/internal/stadsbingo"
)

// ReviewSubmission is a submission enriched with team and question context
// for the review panel.
type ReviewSubmission struct {
	stadsbingo.Submission
	TeamName     string `json:"team_name"`
	LocationName string `json:"location_name"`
	QuestionText string `json:"question_text"`
	OrderNumber  int    `json:"order_number"`
	Status       string `json:"status"`
}

func enrichSubmission(sub stadsbingo.Submission, teams []stadsbingo.Team, catalog []stadsbingo.Question) ReviewSubmission {
	out := ReviewSubmission{
		Submission: sub,
		Status:     sub.Rating.State().String(),
	}
	for _, t := range teams {
		if t.ID == sub.TeamID {
			out.TeamName = t.TeamName
			break
		}
	}
	for _, q := range catalog {
		if q.ID == sub.QuestionID {
			out.LocationName = q.LocationName
			out.QuestionText = q.QuestionText
			out.OrderNumber = q.OrderNumber
			break
		}
	}
	return out
}

func handleListSubmissions(store Store, catalog []stadsbingo.Question) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := r.URL.Query().Get("status")
		switch status {
		case "", "all", "pending", "approved", "rejected":
		default:
			writeError(w, http.StatusBadRequest, "unknown status filter")
			return
		}

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

		out := []ReviewSubmission{}
		for _, sub := range subs {
			enriched := enrichSubmission(sub, teams, catalog)
			if status != "" && status != "all" && enriched.Status != status {
				continue
			}
			out = append(out, enriched)
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func handleGetSubmission(store Store, catalog []stadsbingo.Question) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, "submission not found")
			return
		}

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

		for _, sub := range subs {
			if sub.ID == id {
				writeJSON(w, http.StatusOK, enrichSubmission(sub, teams, catalog))
				return
			}
		}
		writeError(w, http.StatusNotFound, "submission not found")
	}
}
