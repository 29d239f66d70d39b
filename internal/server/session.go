package server

import (
	"context"

	"github.com/bitbingo/stadsbingo/internal/stadsbingo"
)

// currentTeam resolves the active team. When the currentTeam key is absent
// but teams exist, the first registered team is adopted and persisted so a
// cleared session still resumes. ErrNotFound means no team is registered at
// all; callers re-route the user to registration.
func currentTeam(ctx context.Context, store Store) (stadsbingo.Team, error) {
	team, err := store.CurrentTeam(ctx)
	if err != nil {
		return stadsbingo.Team{}, err
	}
	if team != nil {
		return *team, nil
	}

	teams, err := store.Teams(ctx)
	if err != nil {
		return stadsbingo.Team{}, err
	}
	if len(teams) == 0 {
		return stadsbingo.Team{}, ErrNotFound
	}
	if err := store.SetCurrentTeam(ctx, teams[0]); err != nil {
		return stadsbingo.Team{}, err
	}
	return teams[0], nil
}
