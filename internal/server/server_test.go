package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/bitbingo/stadsbingo/internal/stadsbingo"
)

// memStore is an in-memory Store for handler tests.
type memStore struct {
	mu      sync.Mutex
	teams   []stadsbingo.Team
	subs    []stadsbingo.Submission
	current *stadsbingo.Team
}

func (s *memStore) Teams(ctx context.Context) ([]stadsbingo.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]stadsbingo.Team(nil), s.teams...), nil
}

func (s *memStore) SetTeams(ctx context.Context, teams []stadsbingo.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams = append([]stadsbingo.Team(nil), teams...)
	return nil
}

func (s *memStore) Submissions(ctx context.Context) ([]stadsbingo.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]stadsbingo.Submission(nil), s.subs...), nil
}

func (s *memStore) SetSubmissions(ctx context.Context, subs []stadsbingo.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append([]stadsbingo.Submission(nil), subs...)
	return nil
}

func (s *memStore) CurrentTeam(ctx context.Context) (*stadsbingo.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, nil
	}
	team := *s.current
	return &team, nil
}

func (s *memStore) SetCurrentTeam(ctx context.Context, team stadsbingo.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &team
	return nil
}

func (s *memStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams = nil
	s.subs = nil
	s.current = nil
	return nil
}

func testCatalog(n int) []stadsbingo.Question {
	qs := make([]stadsbingo.Question, n)
	for i := range qs {
		qs[i] = stadsbingo.Question{
			ID:           int64(i + 1),
			OrderNumber:  i,
			LocationName: fmt.Sprintf("Location %d", i+1),
			QuestionText: fmt.Sprintf("Find location %d", i+1),
		}
	}
	return qs
}

func testRouter(t *testing.T, catalog []stadsbingo.Question) (*chi.Mux, *memStore) {
	t.Helper()
	store := &memStore{}
	broker := NewBroker()
	ids := &stadsbingo.IDSource{}

	r := chi.NewRouter()
	r.Post("/api/register", handleRegister(store, ids))
	r.Get("/api/quiz/state", handleQuizState(store, catalog))
	r.Get("/api/quiz/questions", handleListQuestions(catalog))
	r.Get("/api/quiz/questions/{index}", handleGetQuestion(store, catalog))
	r.Post("/api/quiz/submissions", handleSubmit(store, catalog, ids, broker))
	r.Get("/api/review/submissions", handleListSubmissions(store, catalog))
	r.Get("/api/review/submissions/{id}", handleGetSubmission(store, catalog))
	r.Put("/api/review/submissions/{id}/rating", handleRate(store, broker))
	r.Get("/api/review/scores", handleScores(store, catalog))
	r.Get("/api/review/stats", handleStats(store, catalog))
	r.Delete("/api/review/data", handleClearData(store))
	return r, store
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerTeam(t *testing.T, r http.Handler, name string) stadsbingo.Team {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/register", RegisterRequest{
		TeamName:    name,
		CaptainName: "Captain " + name,
		MemberCount: 4,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var team stadsbingo.Team
	if err := json.NewDecoder(w.Body).Decode(&team); err != nil {
		t.Fatalf("decode team: %v", err)
	}
	return team
}

func submitPhoto(t *testing.T, r http.Handler, questionID int64) SubmitResponse {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/quiz/submissions", SubmitRequest{
		QuestionID: questionID,
		ImageData:  "data:image/jpeg;base64,aGVsbG8=",
	})
	if w.Code != http.StatusCreated && w.Code != http.StatusOK {
		t.Fatalf("submit: expected 200/201, got %d: %s", w.Code, w.Body.String())
	}
	var resp SubmitResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode submit response: %v", err)
	}
	return resp
}

func rateSubmission(t *testing.T, r http.Handler, id int64, rating *int) *httptest.ResponseRecorder {
	t.Helper()
	path := fmt.Sprintf("/api/review/submissions/%d/rating", id)
	return doJSON(t, r, http.MethodPut, path, RateRequest{Rating: rating})
}

func intPtr(v int) *int { return &v }
