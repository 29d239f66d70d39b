package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bitbingo/stadsbingo/internal/stadsbingo"
)

func handleListQuestions(catalog []stadsbingo.Question) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, catalog)
	}
}

// handleGetQuestion serves the question at a catalog index, enforcing the
// progression gate: forward navigation past the gate is rejected with no
// state change, backward navigation always works.
func handleGetQuestion(store Store, catalog []stadsbingo.Question) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := strconv.Atoi(chi.URLParam(r, "index"))
		if err != nil || index < 0 || index >= len(catalog) {
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

		ok, err := stadsbingo.Reachable(catalog, subs, team.ID, index)
		if errors.Is(err, stadsbingo.ErrUnknownQuestion) {
			writeError(w, http.StatusNotFound, "stored progress no longer matches the catalog")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if !ok {
			writeError(w, http.StatusConflict, "question not yet unlocked")
			return
		}

		writeJSON(w, http.StatusOK, catalog[index])
	}
}
