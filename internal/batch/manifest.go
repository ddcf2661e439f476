package batch

import (
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"
)

// Manifest describes one batch run.
type Manifest struct {
	RunID    string    `json:"run_id"`
	Created  time.Time `json:"created"`
	Strict   bool      `json:"strict"`
	Rendered int       `json:"rendered"`
	Failed   int       `json:"failed"`
	Models   []Result  `json:"models"`
}

// NewManifest summarizes results under a fresh run id.
func NewManifest(results []Result, strict bool) Manifest {
	m := Manifest{
		RunID:   uuid.NewString(),
		Created: time.Now().UTC(),
		Strict:  strict,
		Models:  results,
	}
	for _, r := range results {
		if r.Success {
			m.Rendered++
		} else {
			m.Failed++
		}
	}
	return m
}

// WriteManifest writes manifest.json to the output directory.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
