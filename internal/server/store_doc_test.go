package server

import (
	"context"
	"testing"
	"time"

	"github.com/bitbingo/stadsbingo/internal/database"
	"github.com/bitbingo/stadsbingo/internal/migrations"
	"github.com/bitbingo/stadsbingo/internal/stadsbingo"
)

func setupDocStore(t *testing.T) *DocStore {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("opening db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := migrations.Run(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}
	return NewDocStore(db)
}

func TestDocStoreEmptyReads(t *testing.T) {
	store := setupDocStore(t)
	ctx := context.Background()

	teams, err := store.Teams(ctx)
	if err != nil || len(teams) != 0 {
		t.Errorf("teams = %v, %v; want empty, nil", teams, err)
	}
	subs, err := store.Submissions(ctx)
	if err != nil || len(subs) != 0 {
		t.Errorf("submissions = %v, %v; want empty, nil", subs, err)
	}
	current, err := store.CurrentTeam(ctx)
	if err != nil || current != nil {
		t.Errorf("current team = %v, %v; want nil, nil", current, err)
	}
}

func TestDocStoreTeamsRoundTrip(t *testing.T) {
	store := setupDocStore(t)
	ctx := context.Background()

	teams := []stadsbingo.Team{
		{ID: 1, TeamName: "De Uilen", CaptainName: "Anna", MemberCount: 4, CreatedAt: time.Now().UTC().Truncate(time.Millisecond)},
		{ID: 2, TeamName: "De Valken", CaptainName: "Bram", MemberCount: 3, CreatedAt: time.Now().UTC().Truncate(time.Millisecond)},
	}
	if err := store.SetTeams(ctx, teams); err != nil {
		t.Fatalf("set teams: %v", err)
	}

	got, err := store.Teams(ctx)
	if err != nil {
		t.Fatalf("teams: %v", err)
	}
	if len(got) != 2 || got[0].TeamName != "De Uilen" || got[1].MemberCount != 3 {
		t.Errorf("teams = %+v, want the two stored teams", got)
	}

	// Overwrite replaces the whole document.
	if err := store.SetTeams(ctx, teams[:1]); err != nil {
		t.Fatalf("set teams: %v", err)
	}
	got, _ = store.Teams(ctx)
	if len(got) != 1 {
		t.Errorf("after overwrite: %d teams, want 1", len(got))
	}
}

func TestDocStoreSubmissionsPreserveRating(t *testing.T) {
	store := setupDocStore(t)
	ctx := context.Background()

	subs := []stadsbingo.Submission{
		{ID: 10, TeamID: 1, QuestionID: 1, ImageURL: "data:image/jpeg;base64,YQ==", CreatedAt: time.Now().UTC(), Rating: stadsbingo.Pending()},
		{ID: 11, TeamID: 1, QuestionID: 2, ImageURL: "data:image/jpeg;base64,Yg==", CreatedAt: time.Now().UTC(), Rating: stadsbingo.Rejected()},
		{ID: 12, TeamID: 1, QuestionID: 3, ImageURL: "data:image/jpeg;base64,Yw==", CreatedAt: time.Now().UTC(), Rating: stadsbingo.Approved(3)},
	}
	if err := store.SetSubmissions(ctx, subs); err != nil {
		t.Fatalf("set submissions: %v", err)
	}

	got, err := store.Submissions(ctx)
	if err != nil {
		t.Fatalf("submissions: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d submissions, want 3", len(got))
	}
	if got[0].Rating.Rated() {
		t.Error("submission 10 should be pending")
	}
	if got[1].Rating.State() != stadsbingo.StateRejected {
		t.Errorf("submission 11 state = %v, want rejected", got[1].Rating.State())
	}
	if got[2].Rating.Points() != 3 {
		t.Errorf("submission 12 points = %d, want 3", got[2].Rating.Points())
	}
}

func TestDocStoreCurrentTeam(t *testing.T) {
	store := setupDocStore(t)
	ctx := context.Background()

	team := stadsbingo.Team{ID: 7, TeamName: "De Uilen", CaptainName: "Anna", MemberCount: 4}
	if err := store.SetCurrentTeam(ctx, team); err != nil {
		t.Fatalf("set current team: %v", err)
	}

	got, err := store.CurrentTeam(ctx)
	if err != nil {
		t.Fatalf("current team: %v", err)
	}
	if got == nil || got.ID != 7 {
		t.Errorf("current team = %+v, want id 7", got)
	}
}

func TestDocStoreClear(t *testing.T) {
	store := setupDocStore(t)
	ctx := context.Background()

	team := stadsbingo.Team{ID: 1, TeamName: "De Uilen"}
	store.SetTeams(ctx, []stadsbingo.Team{team})
	store.SetCurrentTeam(ctx, team)
	store.SetSubmissions(ctx, []stadsbingo.Submission{
		{ID: 10, TeamID: 1, QuestionID: 1, ImageURL: "x", Rating: stadsbingo.Pending()},
	})

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	teams, _ := store.Teams(ctx)
	subs, _ := store.Submissions(ctx)
	current, _ := store.CurrentTeam(ctx)
	if len(teams) != 0 || len(subs) != 0 || current != nil {
		t.Error("expected all collections cleared")
	}
}
