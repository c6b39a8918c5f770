package storage

import (
	"semrun/internal/config"
	"semrun/internal/domain"
)

// Storage persists and loads the last run (e.g. for the failures viewer).
type Storage interface {
	Save(report *domain.Report) error
	Load() (*domain.RunOutput, error)
	// SaveOutput writes the full output (e.g. after resolved flags change).
	SaveOutput(output *domain.RunOutput) error
}

// JSONStorage stores results in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
