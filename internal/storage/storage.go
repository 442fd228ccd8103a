package storage

import "tfa/internal/domain"

// Storage loads harness results (shared by the analyze, summary and view
// commands).
type Storage interface {
	Load(path string) (*domain.ResultsFile, error)
}
