package storage

import (
	"cute/internal/config"
	"cute/pkg/engine"
)

// Storage persists and loads the run report (e.g. for the report and
// history commands).
type Storage interface {
	Save(report *engine.Report) error
	Load() (*engine.Report, error)
}

// JSONStorage stores the report in a JSON file under the configured
// output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's
// output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
