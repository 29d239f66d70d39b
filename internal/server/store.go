package server

import (
	"context"
	"errors"

	"github.com/bitbingo/stadsbingo/internal/stadsbingo"
)

var ErrNotFound = errors.New("not found")

// Store is the engine's only durable boundary: three JSON collections
// addressed by fixed keys, read whole and replaced whole on write. An
// absent key reads as an empty collection (or no current team), never as
// an error. Every handler takes the Store as an explicit collaborator.
type Store interface {
	Teams(ctx context.Context) ([]stadsbingo.Team, error)
	SetTeams(ctx context.Context, teams []stadsbingo.Team) error

	Submissions(ctx context.Context) ([]stadsbingo.Submission, error)
	SetSubmissions(ctx context.Context, subs []stadsbingo.Submission) error

	// CurrentTeam returns nil without error when no team is active.
	CurrentTeam(ctx context.Context) (*stadsbingo.Team, error)
	SetCurrentTeam(ctx context.Context, team stadsbingo.Team) error

	// Clear removes all three collections in one step; afterwards the
	// engine behaves as freshly initialized.
	Clear(ctx context.Context) error
}
