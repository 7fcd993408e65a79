package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/FocuswithJustin/bibledata/core/bible"
)

// TestValidateFilename_Valid tests acceptance of ordinary names.
func TestValidateFilename_Valid(t *testing.T) {
	for _, name := range []string{"genesis", "1.json", "zz_unknown", "song_of_solomon"} {
		if err := ValidateFilename(name); err != nil {
			t.Errorf("ValidateFilename(%q) = %v", name, err)
		}
	}
}

// TestValidateFilename_Invalid tests rejection of unsafe names.
func TestValidateFilename_Invalid(t *testing.T) {
	cases := []string{"", ".", "..", "a/b", "a\\b", "a\x00b", "-flag", "bad\nname"}
	for _, name := range cases {
		if err := ValidateFilename(name); err == nil {
			t.Errorf("ValidateFilename(%q) should fail", name)
		}
	}
	if err := ValidateFilename(strings.Repeat("a", 300)); !errors.Is(err, ErrFilenameTooLong) {
		t.Errorf("long name: %v", err)
	}
}

// TestSanitizeFilename tests separator replacement and control stripping.
func TestSanitizeFilename(t *testing.T) {
	got, err := SanitizeFilename("  gen/esis\x00\t ")
	if err != nil {
		t.Fatal(err)
	}
	if got != "gen_esis" {
		t.Errorf("SanitizeFilename = %q, want gen_esis", got)
	}

	if _, err := SanitizeFilename("---"); err == nil {
		t.Error("all-hyphen name should fail after trimming")
	}
}

// TestCheck_PartialText tests that incomplete inputs warn but pass.
func TestCheck_PartialText(t *testing.T) {
	text := bible.New()
	text.AddBook("genesis")
	text.SetChapter("genesis", 1, []string{"In the beginning"})

	report := Check(text)
	if report.Books != 1 || report.Chapters != 1 || report.Verses != 1 {
		t.Errorf("counts = %+v", report)
	}
	if report.Complete() {
		t.Error("one-book text should not be complete")
	}
	if len(report.Warnings) != 2 {
		t.Errorf("warnings = %v, want book and chapter warnings", report.Warnings)
	}
}

// TestCheck_NonCanonicalBook tests the unknown-book warning.
func TestCheck_NonCanonicalBook(t *testing.T) {
	text := bible.New()
	text.AddBook("gospel_of_thomas")
	text.SetChapter("gospel_of_thomas", 1, []string{"text"})

	report := Check(text)
	found := false
	for _, w := range report.Warnings {
		if strings.Contains(w, "gospel_of_thomas") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected non-canonical warning, got %v", report.Warnings)
	}
}
