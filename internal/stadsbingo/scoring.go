package stadsbingo

import "sort"

// ScoreAll computes one Score per team, ordered by total score descending.
// Pending submissions contribute zero to the total but are counted
// separately, so a rejected submission (rated zero) and a pending one stay
// distinguishable through rated_count and pending_count. The sort is
// stable: teams with equal totals keep their input order, and unchanged
// inputs always yield an identical sequence.
func ScoreAll(teams []Team, subs []Submission) []Score {
	scores := make([]Score, 0, len(teams))

	for _, t := range teams {
		sc := Score{
			TeamID:      t.ID,
			TeamName:    t.TeamName,
			CaptainName: t.CaptainName,
		}
		for _, s := range subs {
			if s.TeamID != t.ID {
				continue
			}
			sc.SubmissionCount++
			if s.Rating.Rated() {
				sc.RatedCount++
				sc.TotalScore += s.Rating.Points()
			} else {
				sc.PendingCount++
			}
		}
		scores = append(scores, sc)
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].TotalScore > scores[j].TotalScore
	})
	return scores
}
