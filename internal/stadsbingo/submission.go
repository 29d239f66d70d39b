package stadsbingo

import "time"

// SubmitResult is the outcome of applying a photo submission to the
// submission collection.
type SubmitResult struct {
	Submissions []Submission
	Submission  Submission
	Created     bool
}

// Submit creates or replaces the team's submission for question and returns
// the updated collection; the input slice is left untouched. A replacement
// keeps the submission's id but takes the new image and timestamp and
// forces the rating back to pending, so an edited answer never retains a
// stale grade. A new submission is appended with id newID and a pending
// rating. An empty image fails before anything is touched.
func Submit(subs []Submission, teamID int64, question Question, imageURL string, now time.Time, newID int64) (SubmitResult, error) {
	if imageURL == "" {
		return SubmitResult{}, ErrNoImage
	}

	out := make([]Submission, len(subs))
	copy(out, subs)

	for i := range out {
		if out[i].TeamID == teamID && out[i].QuestionID == question.ID {
			out[i].ImageURL = imageURL
			out[i].CreatedAt = now
			out[i].Rating = Pending()
			return SubmitResult{Submissions: out, Submission: out[i]}, nil
		}
	}

	sub := Submission{
		ID:         newID,
		TeamID:     teamID,
		QuestionID: question.ID,
		ImageURL:   imageURL,
		CreatedAt:  now,
		Rating:     Pending(),
	}
	out = append(out, sub)
	return SubmitResult{Submissions: out, Submission: sub, Created: true}, nil
}

// Rate rewrites the rating of the submission with the given id and returns
// the updated collection and submission. The input slice is left untouched.
func Rate(subs []Submission, id int64, rating Rating) ([]Submission, Submission, error) {
	out := make([]Submission, len(subs))
	copy(out, subs)

	for i := range out {
		if out[i].ID == id {
			out[i].Rating = rating
			return out, out[i], nil
		}
	}
	return nil, Submission{}, ErrUnknownSubmission
}

// TeamSubmissions returns the team's submissions in collection order.
func TeamSubmissions(subs []Submission, teamID int64) []Submission {
	var out []Submission
	for _, s := range subs {
		if s.TeamID == teamID {
			out = append(out, s)
		}
	}
	return out
}
