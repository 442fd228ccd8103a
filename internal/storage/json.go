package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"tfa/internal/domain"
)

// ErrInputNotFound reports that the results file path does not exist.
var ErrInputNotFound = errors.New("input file not found")

// JSONStorage reads harness results from a JSON file.
type JSONStorage struct{}

// NewJSONStorage returns a Storage backed by a results JSON file.
func NewJSONStorage() *JSONStorage {
	return &JSONStorage{}
}

// Load reads and decodes a harness results file. Optional fields absent from
// the JSON decode to their zero values; unknown top-level keys are ignored.
func (s *JSONStorage) Load(path string) (*domain.ResultsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("read results file: %w", err)
	}

	var results domain.ResultsFile
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &results, nil
}
