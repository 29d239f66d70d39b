package stadsbingo

import (
	"encoding/json"
	"fmt"
)

// RatingState is the observable review state of a submission.
type RatingState int

const (
	StatePending RatingState = iota
	StateRejected
	StateApproved
)

func (s RatingState) String() string {
	switch s {
	case StateRejected:
		return "rejected"
	case StateApproved:
		return "approved"
	default:
		return "pending"
	}
}

// Rating is the reviewer-assigned outcome of a submission. Internally it is
// a tagged three-state value (pending, rejected, approved with points); on
// the wire it flattens to a nullable integer: null while pending, 0 when
// rejected, n > 0 when approved. Any value is writable from any state; the
// reviewer UI is the only thing that narrows the transitions.
type Rating struct {
	rated  bool
	points int
}

// Pending returns the unrated state. A re-evaluated submission goes back
// here and is indistinguishable from one that was never rated.
func Pending() Rating { return Rating{} }

// Rejected returns the zero-points rated state.
func Rejected() Rating { return Rating{rated: true} }

// Approved returns a rated state worth the given points. Approved(0) is the
// same value as Rejected; the encoding cannot tell them apart.
func Approved(points int) Rating { return Rating{rated: true, points: points} }

// RatingFromPoints builds a Rating from the wire form: nil means pending.
func RatingFromPoints(points *int) Rating {
	if points == nil {
		return Pending()
	}
	return Rating{rated: true, points: *points}
}

func (r Rating) State() RatingState {
	switch {
	case !r.rated:
		return StatePending
	case r.points == 0:
		return StateRejected
	default:
		return StateApproved
	}
}

// Rated reports whether a reviewer has assigned a value.
func (r Rating) Rated() bool { return r.rated }

// Points is the awarded score, 0 while pending or rejected.
func (r Rating) Points() int {
	if !r.rated {
		return 0
	}
	return r.points
}

func (r Rating) MarshalJSON() ([]byte, error) {
	if !r.rated {
		return []byte("null"), nil
	}
	return json.Marshal(r.points)
}

func (r *Rating) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Pending()
		return nil
	}
	var points int
	if err := json.Unmarshal(data, &points); err != nil {
		return fmt.Errorf("decoding rating: %w", err)
	}
	*r = Rating{rated: true, points: points}
	return nil
}
