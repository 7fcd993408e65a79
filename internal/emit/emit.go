// Package emit writes the normalized output tree: one directory per book,
// one JSON verse list per chapter, and a version.json summary at the root.
package emit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/FocuswithJustin/bibledata/core/bible"
	"github.com/FocuswithJustin/bibledata/core/canon"
	"github.com/FocuswithJustin/bibledata/core/errors"
	"github.com/FocuswithJustin/bibledata/internal/logging"
	"github.com/FocuswithJustin/bibledata/internal/validation"
)

// Summary is the version.json document.
type Summary struct {
	Version       string `json:"version"`
	Name          string `json:"name"`
	Books         int    `json:"books"`
	TotalChapters int    `json:"total_chapters"`
}

// Result describes a completed emission.
type Result struct {
	Summary Summary

	// FilesWritten lists every emitted file, version.json first, then
	// chapter files in canonical book order.
	FilesWritten []string
}

// Write emits the output tree for one translation. The version code is
// uppercased for the summary; book directories use the canonical ids.
func Write(text *bible.Text, outDir, code string) (*Result, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, errors.NewIO("mkdir", outDir, err)
	}

	summary := Summary{
		Version:       code,
		Name:          canon.VersionName(code),
		Books:         text.BookCount(),
		TotalChapters: text.ChapterCount(),
	}

	result := &Result{Summary: summary}

	summaryPath := filepath.Join(outDir, "version.json")
	if err := writeJSON(summaryPath, summary); err != nil {
		return nil, err
	}
	result.FilesWritten = append(result.FilesWritten, summaryPath)

	for _, book := range text.Books() {
		dirName, err := validation.SanitizeFilename(string(book))
		if err != nil {
			return nil, errors.Wrapf(err, "book %q has no usable directory name", book)
		}
		bookDir := filepath.Join(outDir, dirName)

		chapters := text.Chapters(book)
		if len(chapters) == 0 {
			continue
		}
		if err := os.MkdirAll(bookDir, 0755); err != nil {
			return nil, errors.NewIO("mkdir", bookDir, err)
		}

		for _, chapter := range chapters {
			verses := text.Verses(book, chapter)
			path := filepath.Join(bookDir, strconv.Itoa(chapter)+".json")
			if err := writeJSON(path, verses); err != nil {
				return nil, err
			}
			logging.ArtifactWritten(path, len(verses))
			result.FilesWritten = append(result.FilesWritten, path)
		}
	}

	return result, nil
}

// writeJSON marshals v with two-space indentation, matching the other
// artifacts so diffs stay readable.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "marshal %s", path)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.NewIO("write", path, err)
	}
	return nil
}
