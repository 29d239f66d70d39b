// Package stadsbingo defines the core domain types and the progression,
// submission, and scoring rules of the photo hunt. Everything here is
// pure Go over in-memory snapshots.
package stadsbingo

import (
	"errors"
	"sync"
	"time"
)

var (
	// ErrEmptyCatalog is returned when an operation needs at least one question.
	ErrEmptyCatalog = errors.New("question catalog is empty")
	// ErrNoImage is returned when a submission carries no image payload.
	ErrNoImage = errors.New("image payload is required")
	// ErrUnknownQuestion is returned when a question id is not in the catalog.
	ErrUnknownQuestion = errors.New("question not in catalog")
	// ErrUnknownSubmission is returned when no submission has the given id.
	ErrUnknownSubmission = errors.New("submission not found")
)

type Question struct {
	ID               int64  `json:"id"`
	OrderNumber      int    `json:"order_number"`
	LocationName     string `json:"location_name"`
	QuestionText     string `json:"question_text"`
	LocationImageURL string `json:"location_image_url"`
	MapImageURL      string `json:"map_image_url"`
}

type Team struct {
	ID          int64     `json:"id"`
	TeamName    string    `json:"team_name"`
	CaptainName string    `json:"captain_name"`
	MemberCount int       `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type Submission struct {
	ID         int64     `json:"id"`
	TeamID     int64     `json:"team_id"`
	QuestionID int64     `json:"question_id"`
	ImageURL   string    `json:"image_url"`
	CreatedAt  time.Time `json:"created_at"`
	Rating     Rating    `json:"rating"`
}

// Score is a derived aggregate over one team's submissions. It is never
// persisted; callers recompute it after every mutation.
type Score struct {
	TeamID          int64  `json:"team_id"`
	TeamName        string `json:"team_name"`
	CaptainName     string `json:"captain_name"`
	TotalScore      int    `json:"total_score"`
	SubmissionCount int    `json:"submission_count"`
	RatedCount      int    `json:"rated_count"`
	PendingCount    int    `json:"pending_count"`
}

// IDSource mints timestamp-derived int64 ids (Unix milliseconds), strictly
// increasing even when two ids are requested within the same millisecond.
type IDSource struct {
	mu   sync.Mutex
	last int64
}

func (s *IDSource) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := time.Now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}
