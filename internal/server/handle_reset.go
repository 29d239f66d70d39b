package server

import (
	"net/http"
)

// handleClearData wipes teams, submissions and the current team in one
// transaction so a fresh event can start from a clean slate.
func handleClearData(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Clear(r.Context()); err != nil {
			writeError(w, http.StatusInternalServerError, "could not clear data")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
	}
}
