package stadsbingo

import (
	"errors"
	"testing"
	"time"
)

func testCatalog(n int) []Question {
	catalog := make([]Question, n)
	for i := range catalog {
		catalog[i] = Question{
			ID:           int64(i + 1),
			OrderNumber:  i,
			LocationName: "Locatie",
		}
	}
	return catalog
}

func pendingSub(id, teamID, questionID int64) Submission {
	return Submission{
		ID:         id,
		TeamID:     teamID,
		QuestionID: questionID,
		ImageURL:   "data:image/jpeg;base64,xxxx",
		CreatedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestMaxAllowedQuestion(t *testing.T) {
	catalog := testCatalog(5)

	tests := []struct {
		name string
		subs []Submission
		want int
	}{
		{"no submissions", nil, 0},
		{"first question done", []Submission{pendingSub(1, 10, 1)}, 0},
		{"two in order", []Submission{pendingSub(1, 10, 1), pendingSub(2, 10, 2)}, 1},
		{"all done clamps to last index", []Submission{
			pendingSub(1, 10, 1), pendingSub(2, 10, 2), pendingSub(3, 10, 3),
			pendingSub(4, 10, 4), pendingSub(5, 10, 5),
		}, 4},
		{"other team's progress is ignored", []Submission{pendingSub(1, 99, 4)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MaxAllowedQuestion(catalog, tt.subs, 10)
			if err != nil {
				t.Fatalf("MaxAllowedQuestion: %v", err)
			}
			if got != tt.want {
				t.Errorf("maxAllowed = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMaxAllowedQuestionEmptyCatalog(t *testing.T) {
	_, err := MaxAllowedQuestion(nil, nil, 10)
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("err = %v, want ErrEmptyCatalog", err)
	}
}

func TestMaxAllowedQuestionDanglingReference(t *testing.T) {
	catalog := testCatalog(2)
	subs := []Submission{pendingSub(1, 10, 77)}

	_, err := MaxAllowedQuestion(catalog, subs, 10)
	if !errors.Is(err, ErrUnknownQuestion) {
		t.Fatalf("err = %v, want ErrUnknownQuestion", err)
	}
}

// Gate scenario from the progression rules: submitting question 0 opens
// nothing new, submitting question 1 opens index 1, and index 2 stays
// unreachable until then.
func TestGateAdvancesWithSubmissions(t *testing.T) {
	catalog := testCatalog(3)
	var subs []Submission

	res, err := Submit(subs, 10, catalog[0], "img-0", time.Now(), 100)
	if err != nil {
		t.Fatalf("submit q0: %v", err)
	}
	subs = res.Submissions

	if got, _ := MaxAllowedQuestion(catalog, subs, 10); got != 0 {
		t.Errorf("after q0: maxAllowed = %d, want 0", got)
	}
	if ok, _ := Reachable(catalog, subs, 10, 2); ok {
		t.Error("index 2 reachable before submitting index 1")
	}

	res, err = Submit(subs, 10, catalog[1], "img-1", time.Now(), 101)
	if err != nil {
		t.Fatalf("submit q1: %v", err)
	}
	subs = res.Submissions

	if got, _ := MaxAllowedQuestion(catalog, subs, 10); got != 1 {
		t.Errorf("after q1: maxAllowed = %d, want 1", got)
	}
}

func TestReachable(t *testing.T) {
	catalog := testCatalog(4)
	subs := []Submission{pendingSub(1, 10, 1), pendingSub(2, 10, 2), pendingSub(3, 10, 3)}

	tests := []struct {
		name  string
		index int
		want  bool
	}{
		{"index 0 always open", 0, true},
		{"submitted question stays open", 2, true},
		{"unsubmitted frontier is gated", 3, false},
		{"below the gate", 1, true},
		{"negative index", -1, false},
		{"past the catalog", 4, false},
	}

	// maxAllowed is 2 here: the highest completed order, not order+1, so
	// index 3 (the frontier) is only reachable once submitted.
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Reachable(catalog, subs, 10, tt.index)
			if err != nil {
				t.Fatalf("Reachable: %v", err)
			}
			if got != tt.want {
				t.Errorf("Reachable(%d) = %v, want %v", tt.index, got, tt.want)
			}
		})
	}
}

func TestReachableFreshTeam(t *testing.T) {
	catalog := testCatalog(3)

	for i := 0; i < 3; i++ {
		got, err := Reachable(catalog, nil, 10, i)
		if err != nil {
			t.Fatalf("Reachable(%d): %v", i, err)
		}
		if want := i == 0; got != want {
			t.Errorf("fresh team Reachable(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestFrontier(t *testing.T) {
	catalog := testCatalog(3)

	if q := Frontier(catalog, nil, 10); q == nil || q.ID != 1 {
		t.Errorf("fresh team frontier = %v, want question 1", q)
	}

	subs := []Submission{pendingSub(1, 10, 1)}
	if q := Frontier(catalog, subs, 10); q == nil || q.ID != 2 {
		t.Errorf("frontier after q1 = %v, want question 2", q)
	}

	subs = append(subs, pendingSub(2, 10, 2), pendingSub(3, 10, 3))
	if q := Frontier(catalog, subs, 10); q != nil {
		t.Errorf("frontier after all = %v, want nil", q)
	}
}
