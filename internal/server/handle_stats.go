package server

import (
	"net/http"

	"github.com/bitbingo/stadsbingo/internal/stadsbingo"
)

type StatsResponse struct {
	TotalTeams        int                `json:"total_teams"`
	TotalSubmissions  int                `json:"total_submissions"`
	PendingReview     int                `json:"pending_review"`
	RecentSubmissions []ReviewSubmission `json:"recent_submissions"`
}

// handleStats summarizes activity for the review dashboard. Recent
// submissions are the last five by insertion order, newest first.
func handleStats(store Store, catalog []stadsbingo.Question) http.HandlerFunc {
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

		pending := 0
		for _, sub := range subs {
			if !sub.Rating.Rated() {
				pending++
			}
		}

		recent := []ReviewSubmission{}
		for i := len(subs) - 1; i >= 0 && len(recent) < 5; i-- {
			recent = append(recent, enrichSubmission(subs[i], teams, catalog))
		}

		writeJSON(w, http.StatusOK, StatsResponse{
			TotalTeams:        len(teams),
			TotalSubmissions:  len(subs),
			PendingReview:     pending,
			RecentSubmissions: recent,
		})
	}
}
