package stadsbingo

import "fmt"

// MaxAllowedQuestion computes the highest catalog index the team may view:
// the highest order number among its submitted questions, clamped to the
// catalog. A team with no submissions gets index 0. Note the gate tracks
// the highest *completed* order, not completed+1: the frontier question a
// team is working on is not distinguishable from an already-completed one
// by this value alone, and downstream navigation depends on that.
func MaxAllowedQuestion(catalog []Question, subs []Submission, teamID int64) (int, error) {
	if len(catalog) == 0 {
		return 0, ErrEmptyCatalog
	}

	orders := make(map[int64]int, len(catalog))
	for _, q := range catalog {
		orders[q.ID] = q.OrderNumber
	}

	highest := 0
	for _, s := range subs {
		if s.TeamID != teamID {
			continue
		}
		order, ok := orders[s.QuestionID]
		if !ok {
			return 0, fmt.Errorf("submission %d references question %d: %w", s.ID, s.QuestionID, ErrUnknownQuestion)
		}
		if order > highest {
			highest = order
		}
	}

	if last := len(catalog) - 1; highest > last {
		highest = last
	}
	return highest, nil
}

// Reachable reports whether the team may currently view the question at
// index. Index 0 is always open, a submitted question stays open, and
// anything below the gate is open; forward navigation past the gate is
// rejected. Out-of-range indexes are simply unreachable.
func Reachable(catalog []Question, subs []Submission, teamID int64, index int) (bool, error) {
	if index < 0 || index >= len(catalog) {
		return false, nil
	}
	if index == 0 {
		return true, nil
	}
	if Submitted(subs, teamID, catalog[index].ID) {
		return true, nil
	}
	maxAllowed, err := MaxAllowedQuestion(catalog, subs, teamID)
	if err != nil {
		return false, err
	}
	return index < maxAllowed, nil
}

// Submitted reports whether the team already has a submission for the question.
func Submitted(subs []Submission, teamID, questionID int64) bool {
	for _, s := range subs {
		if s.TeamID == teamID && s.QuestionID == questionID {
			return true
		}
	}
	return false
}

// Frontier returns the first catalog question the team has not submitted
// yet, in catalog order, or nil when every question is done.
func Frontier(catalog []Question, subs []Submission, teamID int64) *Question {
	for i := range catalog {
		if !Submitted(subs, teamID, catalog[i].ID) {
			q := catalog[i]
			return &q
		}
	}
	return nil
}
