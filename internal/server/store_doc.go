package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bitbingo/stadsbingo/internal/stadsbingo"
)

// Collection keys. The names match the original persisted data.
const (
	keyTeams       = "teams"
	keySubmissions = "submissions"
	keyCurrentTeam = "currentTeam"
)

// DocStore implements Store over a single collections table that holds one
// JSON document per key.
type DocStore struct {
	db *sql.DB
}

func NewDocStore(db *sql.DB) *DocStore {
	return &DocStore{db: db}
}

func (s *DocStore) get(ctx context.Context, key string, dest any) error {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT json(data) FROM collections WHERE key = ?`, key,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return fmt.Errorf("decoding %s: %w", key, err)
	}
	return nil
}

func (s *DocStore) put(ctx context.Context, key string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO collections (key, data) VALUES (?, jsonb(?))`,
		key, string(data),
	)
	return err
}

func (s *DocStore) Teams(ctx context.Context) ([]stadsbingo.Team, error) {
	var teams []stadsbingo.Team
	err := s.get(ctx, keyTeams, &teams)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return teams, err
}

func (s *DocStore) SetTeams(ctx context.Context, teams []stadsbingo.Team) error {
	return s.put(ctx, keyTeams, teams)
}

func (s *DocStore) Submissions(ctx context.Context) ([]stadsbingo.Submission, error) {
	var subs []stadsbingo.Submission
	err := s.get(ctx, keySubmissions, &subs)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return subs, err
}

func (s *DocStore) SetSubmissions(ctx context.Context, subs []stadsbingo.Submission) error {
	return s.put(ctx, keySubmissions, subs)
}

func (s *DocStore) CurrentTeam(ctx context.Context) (*stadsbingo.Team, error) {
	var team stadsbingo.Team
	err := s.get(ctx, keyCurrentTeam, &team)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *DocStore) SetCurrentTeam(ctx context.Context, team stadsbingo.Team) error {
	return s.put(ctx, keyCurrentTeam, team)
}

func (s *DocStore) Clear(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, key := range []string{keyTeams, keySubmissions, keyCurrentTeam} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM collections WHERE key = ?`, key); err != nil {
			return err
		}
	}
	return tx.Commit()
}
