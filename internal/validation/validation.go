// Package validation provides filename sanitization for emitted artifacts
// and advisory completeness checks against the Protestant canon.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/FocuswithJustin/bibledata/core/bible"
	"github.com/FocuswithJustin/bibledata/core/canon"
)

// MaxFilenameLength is the maximum allowed filename length.
const MaxFilenameLength = 255

// Common validation errors.
var (
	ErrInvalidFilename = errors.New("invalid filename")
	ErrFilenameTooLong = errors.New("filename too long")
)

// CanonChapterCount is the chapter total of a complete Protestant Bible.
const CanonChapterCount = 1189

// ValidateFilename checks that a filename is safe to create: no path
// separators, null bytes, control characters, or reserved names.
func ValidateFilename(filename string) error {
	if filename == "" {
		return ErrInvalidFilename
	}
	if len(filename) > MaxFilenameLength {
		return ErrFilenameTooLong
	}
	if filename == "." || filename == ".." {
		return fmt.Errorf("%w: reserved name", ErrInvalidFilename)
	}
	if strings.ContainsAny(filename, "/\\") {
		return fmt.Errorf("%w: path separator not allowed", ErrInvalidFilename)
	}
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("%w: null byte not allowed", ErrInvalidFilename)
	}
	for _, r := range filename {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control character not allowed", ErrInvalidFilename)
		}
	}
	if strings.HasPrefix(filename, "-") {
		return fmt.Errorf("%w: filename cannot start with hyphen", ErrInvalidFilename)
	}
	return nil
}

// SanitizeFilename rewrites a name so it is safe as a single path element.
// Book ids are already lowercase identifiers, but aliased inputs can carry
// anything, so separators become underscores and control bytes are dropped.
func SanitizeFilename(filename string) (string, error) {
	if filename == "" {
		return "", ErrInvalidFilename
	}

	filename = strings.TrimSpace(filename)
	filename = strings.ReplaceAll(filename, "/", "_")
	filename = strings.ReplaceAll(filename, "\\", "_")
	filename = strings.ReplaceAll(filename, "\x00", "")

	var cleaned strings.Builder
	for _, r := range filename {
		if !unicode.IsControl(r) {
			cleaned.WriteRune(r)
		}
	}
	filename = strings.TrimLeft(cleaned.String(), "-")

	if err := ValidateFilename(filename); err != nil {
		return "", err
	}
	return filename, nil
}

// CountReport summarizes a normalized text against the expected canon.
// The check is advisory: partial Bibles are normal inputs, so warnings
// never fail a run.
type CountReport struct {
	Books    int      `json:"books"`
	Chapters int      `json:"chapters"`
	Verses   int      `json:"verses"`
	Warnings []string `json:"warnings,omitempty"`
}

// Check compares the text to the 66-book Protestant canon.
func Check(text *bible.Text) *CountReport {
	report := &CountReport{
		Books:    text.BookCount(),
		Chapters: text.ChapterCount(),
		Verses:   text.VerseCount(),
	}

	if report.Books != canon.BookCount {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("expected %d books, found %d", canon.BookCount, report.Books))
	}
	if report.Chapters != CanonChapterCount {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("expected %d chapters, found %d", CanonChapterCount, report.Chapters))
	}

	var unknown []string
	for _, id := range text.Books() {
		if !canon.IsCanonical(id) {
			unknown = append(unknown, string(id))
		}
	}
	if len(unknown) > 0 {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("non-canonical books: %s", strings.Join(unknown, ", ")))
	}

	return report
}

// Complete reports whether the text matches the expected canon exactly.
func (r *CountReport) Complete() bool {
	return len(r.Warnings) == 0
}
