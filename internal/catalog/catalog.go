// Package catalog loads the static question catalog. The catalog is read
// once at startup and never written by the engine.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bitbingo/stadsbingo/internal/stadsbingo"
)

//go:embed questions.json
var defaultCatalog []byte

type catalogFile struct {
	Questions []stadsbingo.Question `json:"questions"`
}

// Load returns the ordered question sequence from path, or the embedded
// default set when path is empty. The result is validated: non-empty,
// unique ids, and order numbers matching catalog position.
func Load(path string) ([]stadsbingo.Question, error) {
	data := defaultCatalog
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading catalog: %w", err)
		}
	}

	var f catalogFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if len(f.Questions) == 0 {
		return nil, stadsbingo.ErrEmptyCatalog
	}
	if err := validate(f.Questions); err != nil {
		return nil, err
	}
	return f.Questions, nil
}

// validate enforces what the progression rules assume: every question's
// order number equals its position, with no duplicates or gaps.
func validate(questions []stadsbingo.Question) error {
	seen := make(map[int64]bool, len(questions))
	for i, q := range questions {
		if q.ID == 0 {
			return fmt.Errorf("question at position %d has no id", i)
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %d", q.ID)
		}
		seen[q.ID] = true
		if q.OrderNumber != i {
			return fmt.Errorf("question %d has order_number %d at position %d", q.ID, q.OrderNumber, i)
		}
	}
	return nil
}
