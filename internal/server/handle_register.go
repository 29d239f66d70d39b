package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/bitbingo/stadsbingo/internal/stadsbingo"
)

type RegisterRequest struct {
	TeamName    string `json:"team_name"`
	CaptainName string `json:"captain_name"`
	MemberCount int    `json:"member_count"`
}

func handleRegister(store Store, ids *stadsbingo.IDSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		req.TeamName = strings.TrimSpace(req.TeamName)
		req.CaptainName = strings.TrimSpace(req.CaptainName)
		if req.TeamName == "" || req.CaptainName == "" || req.MemberCount <= 0 {
			writeError(w, http.StatusBadRequest, "team_name, captain_name and member_count are required")
			return
		}

		teams, err := store.Teams(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		team := stadsbingo.Team{
			ID:          ids.Next(),
			TeamName:    req.TeamName,
			CaptainName: req.CaptainName,
			MemberCount: req.MemberCount,
			CreatedAt:   time.Now().UTC(),
		}
		teams = append(teams, team)

		if err := store.SetTeams(r.Context(), teams); err != nil {
			writeError(w, http.StatusInternalServerError, "could not save team")
			return
		}
		if err := store.SetCurrentTeam(r.Context(), team); err != nil {
			writeError(w, http.StatusInternalServerError, "could not save team")
			return
		}

		writeJSON(w, http.StatusCreated, team)
	}
}
