package bible

import (
	"reflect"
	"testing"

	"github.com/FocuswithJustin/bibledata/core/canon"
)

// TestCleanVerse_CollapsesWhitespace tests whitespace normalization.
func TestCleanVerse_CollapsesWhitespace(t *testing.T) {
	if got := CleanVerse("In  the\nbeginning\t "); got != "In the beginning" {
		t.Errorf("CleanVerse = %q", got)
	}
}

// TestCleanVerse_Idempotent tests that cleaning clean text is the identity.
func TestCleanVerse_Idempotent(t *testing.T) {
	clean := "And God said, Let there be light"
	if got := CleanVerse(clean); got != clean {
		t.Errorf("CleanVerse changed clean input: %q", got)
	}
	if got := CleanNumberedVerse(CleanNumberedVerse("12  And the earth")); got != "And the earth" {
		t.Errorf("double clean = %q", got)
	}
}

// TestCleanNumberedVerse_StripsLeadingNumber tests verse-number stripping.
func TestCleanNumberedVerse_StripsLeadingNumber(t *testing.T) {
	if got := CleanNumberedVerse("1  In the   beginning\n"); got != "In the beginning" {
		t.Errorf("CleanNumberedVerse = %q, want %q", got, "In the beginning")
	}
	// A bare number with no trailing whitespace is content, not a label.
	if got := CleanNumberedVerse("40"); got != "40" {
		t.Errorf("CleanNumberedVerse(40) = %q, want 40", got)
	}
}

// TestCleanVerse_EmptyResult tests that whitespace-only text cleans to empty.
func TestCleanVerse_EmptyResult(t *testing.T) {
	if got := CleanVerse(" \n\t "); got != "" {
		t.Errorf("CleanVerse(whitespace) = %q, want empty", got)
	}
}

// TestText_SetChapterDropsEmpty tests that empty verse lists are ignored.
func TestText_SetChapterDropsEmpty(t *testing.T) {
	text := New()
	text.AddBook("genesis")
	text.SetChapter("genesis", 1, nil)
	if text.ChapterCount() != 0 {
		t.Errorf("empty chapter should not be stored")
	}
	if text.BookCount() != 1 {
		t.Errorf("book entry should survive even with no chapters")
	}
}

// TestText_AddBookLastWriteWins tests the collision overwrite policy.
func TestText_AddBookLastWriteWins(t *testing.T) {
	text := New()
	text.AddBook("psalms")
	text.SetChapter("psalms", 1, []string{"first"})
	replaced := text.AddBook("psalms")
	if replaced != 1 {
		t.Errorf("AddBook replaced = %d, want 1", replaced)
	}
	text.SetChapter("psalms", 2, []string{"second"})
	if text.Verses("psalms", 1) != nil {
		t.Error("earlier chapters should be discarded on overwrite")
	}
	if got := text.Verses("psalms", 2); len(got) != 1 || got[0] != "second" {
		t.Errorf("Verses(psalms, 2) = %v", got)
	}
}

// TestText_BooksCanonicalOrder tests book ordering for emission.
func TestText_BooksCanonicalOrder(t *testing.T) {
	text := New()
	for _, id := range []canon.BookID{"revelation", "zz_unknown", "genesis"} {
		text.AddBook(id)
		text.SetChapter(id, 1, []string{"v"})
	}
	got := text.Books()
	want := []canon.BookID{"genesis", "revelation", "zz_unknown"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Books() = %v, want %v", got, want)
	}
}

// TestText_ChaptersAscending tests chapter ordering.
func TestText_ChaptersAscending(t *testing.T) {
	text := New()
	text.AddBook("psalms")
	for _, n := range []int{10, 2, 1} {
		text.SetChapter("psalms", n, []string{"v"})
	}
	if got := text.Chapters("psalms"); !reflect.DeepEqual(got, []int{1, 2, 10}) {
		t.Errorf("Chapters = %v, want [1 2 10]", got)
	}
}

// TestText_Filter tests scope pruning.
func TestText_Filter(t *testing.T) {
	text := New()
	text.AddBook("genesis")
	text.SetChapter("genesis", 1, []string{"a"})
	text.SetChapter("genesis", 2, []string{"b"})
	text.AddBook("exodus")
	text.SetChapter("exodus", 1, []string{"c"})

	text.Filter(func(id canon.BookID, chapter int) bool {
		return id == "genesis" && chapter == 2
	})

	if text.BookCount() != 1 || text.ChapterCount() != 1 {
		t.Fatalf("filter left %d books, %d chapters", text.BookCount(), text.ChapterCount())
	}
	if text.Verses("genesis", 2) == nil {
		t.Error("kept chapter missing after filter")
	}
}

// TestText_Counts tests the aggregate counters.
func TestText_Counts(t *testing.T) {
	text := New()
	text.AddBook("genesis")
	text.SetChapter("genesis", 1, []string{"a", "b"})
	text.SetChapter("genesis", 2, []string{"c"})
	if text.BookCount() != 1 || text.ChapterCount() != 2 || text.VerseCount() != 3 {
		t.Errorf("counts = %d/%d/%d", text.BookCount(), text.ChapterCount(), text.VerseCount())
	}
}
