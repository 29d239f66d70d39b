package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/bitbingo/stadsbingo/internal/stadsbingo"
)

type SubmitRequest struct {
	QuestionID int64  `json:"question_id"`
	ImageData  string `json:"image_data"`
}

type SubmitResponse struct {
	Submission         stadsbingo.Submission `json:"submission"`
	Created            bool                  `json:"created"`
	MaxAllowedQuestion int                   `json:"max_allowed_question"`
}

func handleSubmit(store Store, catalog []stadsbingo.Question, ids *stadsbingo.IDSource, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SubmitRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.ImageData == "" {
			writeError(w, http.StatusBadRequest, "image_data is required")
			return
		}

		var question *stadsbingo.Question
		for i := range catalog {
			if catalog[i].ID == req.QuestionID {
				question = &catalog[i]
				break
			}
		}
		if question == nil {
			writeError(w, http.StatusNotFound, "question not found")
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

		result, err := stadsbingo.Submit(subs, team.ID, *question, req.ImageData, time.Now().UTC(), ids.Next())
		if errors.Is(err, stadsbingo.ErrNoImage) {
			writeError(w, http.StatusBadRequest, "image_data is required")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		if err := store.SetSubmissions(r.Context(), result.Submissions); err != nil {
			writeError(w, http.StatusInternalServerError, "could not save submission")
			return
		}

		maxAllowed, err := stadsbingo.MaxAllowedQuestion(catalog, result.Submissions, team.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		event := Event{
			Type:         "submission_received",
			SubmissionID: result.Submission.ID,
			TeamID:       team.ID,
			QuestionID:   question.ID,
		}
		broker.Publish(reviewTopic, event)
		broker.Publish(teamTopic(team.ID), event)

		status := http.StatusCreated
		if !result.Created {
			status = http.StatusOK
		}
		writeJSON(w, status, SubmitResponse{
			Submission:         result.Submission,
			Created:            result.Created,
			MaxAllowedQuestion: maxAllowed,
		})
	}
}
