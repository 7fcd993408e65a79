// Package bible holds the normalized in-memory model produced by the
// format readers and consumed by emission: canonical book id to chapter
// number to ordered verse list.
package bible

import (
	"regexp"
	"sort"
	"strings"

	"github.com/FocuswithJustin/bibledata/core/canon"
)

// Text is the normalized content of one translation.
type Text struct {
	books map[canon.BookID]map[int][]string
}

// New returns an empty Text.
func New() *Text {
	return &Text{books: make(map[canon.BookID]map[int][]string)}
}

// AddBook registers a book entry, replacing any existing chapters for the
// same id. Replacement is last-write-wins: when two differently-spelled
// input books canonicalize to the same id, the later one survives. The
// previous chapter count is returned so callers can log the overwrite.
func (t *Text) AddBook(id canon.BookID) (replaced int) {
	if existing, ok := t.books[id]; ok {
		replaced = len(existing)
	}
	t.books[id] = make(map[int][]string)
	return replaced
}

// SetChapter stores the ordered verse list for a chapter. Empty verse
// lists are ignored: a chapter with no verses produces no artifact.
func (t *Text) SetChapter(id canon.BookID, chapter int, verses []string) {
	if len(verses) == 0 {
		return
	}
	if _, ok := t.books[id]; !ok {
		t.books[id] = make(map[int][]string)
	}
	t.books[id][chapter] = verses
}

// HasBook reports whether the book id is present.
func (t *Text) HasBook(id canon.BookID) bool {
	_, ok := t.books[id]
	return ok
}

// Books returns the present book ids in canonical order; ids outside the
// canon come last, alphabetically.
func (t *Text) Books() []canon.BookID {
	ids := make([]canon.BookID, 0, len(t.books))
	for id := range t.books {
		ids = append(ids, id)
	}
	canon.SortBooks(ids)
	return ids
}

// Chapters returns the chapter numbers of a book in ascending order.
func (t *Text) Chapters(id canon.BookID) []int {
	chapters := t.books[id]
	nums := make([]int, 0, len(chapters))
	for n := range chapters {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// Verses returns the ordered verse list of a chapter, or nil.
func (t *Text) Verses(id canon.BookID, chapter int) []string {
	return t.books[id][chapter]
}

// BookCount returns the number of books, including books whose chapters
// were all dropped during cleanup.
func (t *Text) BookCount() int {
	return len(t.books)
}

// ChapterCount returns the total number of non-empty chapters.
func (t *Text) ChapterCount() int {
	total := 0
	for _, chapters := range t.books {
		total += len(chapters)
	}
	return total
}

// VerseCount returns the total number of verses.
func (t *Text) VerseCount() int {
	total := 0
	for _, chapters := range t.books {
		for _, verses := range chapters {
			total += len(verses)
		}
	}
	return total
}

// Filter prunes the text to books and chapters accepted by keep.
// Books left with no chapters are removed entirely.
func (t *Text) Filter(keep func(id canon.BookID, chapter int) bool) {
	for id, chapters := range t.books {
		for n := range chapters {
			if !keep(id, n) {
				delete(chapters, n)
			}
		}
		if len(chapters) == 0 {
			delete(t.books, id)
		}
	}
}

var (
	leadingVerseNumber = regexp.MustCompile(`^[0-9]+\s+`)
)

// CleanVerse normalizes verse text: newlines become spaces, internal
// whitespace runs collapse to one space, surrounding whitespace is
// trimmed. Cleaning already-clean text is the identity.
func CleanVerse(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// CleanNumberedVerse is CleanVerse with one leading verse-number-plus-
// whitespace run stripped first, for inputs that embed verse numbers in
// the text ("1 In the beginning ...").
func CleanNumberedVerse(text string) string {
	return CleanVerse(leadingVerseNumber.ReplaceAllString(strings.TrimSpace(text), ""))
}
