package bench

import (
	"encoding/json"
	"fmt"
	"os"
)

// Results maps engine -> operation -> "<pattern>_<size>" -> seconds.
type Results map[string]map[string]map[string]float64

func NewResults() Results {
	r := Results{}
	for _, kind := range TreeKinds {
		r[kind] = map[string]map[string]float64{
			"insert": {},
			"search": {},
			"delete": {},
			"mixed":  {},
		}
	}
	return r
}

func (r Results) record(kind, op string, pattern string, size int, seconds float64) {
	r[kind][op][fmt.Sprintf("%s_%d", pattern, size)] = seconds
}

// Save writes the results as indented JSON.
func (r Results) Save(path string) error {
	bz, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, bz, 0o644)
}

// LoadResults reads a results file written by Save.
func LoadResults(path string) (Results, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r Results
	if err := json.Unmarshal(bz, &r); err != nil {
		return nil, fmt.Errorf("error unmarshaling results file: %w", err)
	}
	return r, nil
}
