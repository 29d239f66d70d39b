package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bitbingo/stadsbingo/internal/stadsbingo"
)

type RateRequest struct {
	Rating *int `json:"rating"`
}

// handleRate sets a submission's rating. Any value may be written from any
// state, so a reviewer can re-evaluate an already rated submission.
func handleRate(store Store, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, "submission not found")
			return
		}

		var req RateRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Rating != nil && *req.Rating < 0 {
			writeError(w, http.StatusBadRequest, "rating must be null or a non-negative integer")
			return
		}

		subs, err := store.Submissions(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		next, updated, err := stadsbingo.Rate(subs, id, stadsbingo.RatingFromPoints(req.Rating))
		if errors.Is(err, stadsbingo.ErrUnknownSubmission) {
			writeError(w, http.StatusNotFound, "submission not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		if err := store.SetSubmissions(r.Context(), next); err != nil {
			writeError(w, http.StatusInternalServerError, "could not save rating")
			return
		}

		event := Event{
			Type:         "rating_changed",
			SubmissionID: updated.ID,
			TeamID:       updated.TeamID,
			QuestionID:   updated.QuestionID,
			Rating:       req.Rating,
		}
		broker.Publish(reviewTopic, event)
		broker.Publish(teamTopic(updated.TeamID), event)

		writeJSON(w, http.StatusOK, updated)
	}
}
