package emit

import (
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/FocuswithJustin/bibledata/internal/formats"
)

// Report is an optional machine-readable account of one run, written next
// to the output tree when requested. version.json stays minimal; anything
// diagnostic lands here instead.
type Report struct {
	RunID     string         `json:"run_id"`
	Input     string         `json:"input"`
	Shape     string         `json:"shape"`
	SHA256    string         `json:"sha256"`
	BLAKE3    string         `json:"blake3"`
	Books     int            `json:"books"`
	Chapters  int            `json:"chapters"`
	Verses    int            `json:"verses"`
	Files     []string       `json:"files_written"`
	Skips     []formats.Skip `json:"skips,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// NewReport assigns the run id and timestamp.
func NewReport() *Report {
	return &Report{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
}

// WriteReport writes the report as indented JSON. Relative file paths are
// kept as emitted.
func WriteReport(report *Report, path string) error {
	return writeJSON(filepath.Clean(path), report)
}
