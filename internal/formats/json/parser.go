// Package json reads the loosely-structured JSON Bible inputs. Three
// shapes are accepted; the shape is detected structurally, never declared
// by the caller.
package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/FocuswithJustin/bibledata/core/bible"
	"github.com/FocuswithJustin/bibledata/core/canon"
	"github.com/FocuswithJustin/bibledata/core/errors"
	"github.com/FocuswithJustin/bibledata/internal/formats"
	"github.com/FocuswithJustin/bibledata/internal/logging"
)

// Shape identifies one of the supported input structures.
type Shape int

const (
	// ShapeUnknown means the document did not match any supported shape.
	ShapeUnknown Shape = iota

	// ShapeBookList is a root sequence of book objects (or an object
	// whose values are book objects).
	ShapeBookList

	// ShapeWrapped is a root object with a "books" or "bible" key
	// holding a book sequence.
	ShapeWrapped

	// ShapeNested is a root object keyed by book name, then by
	// chapter-number string, then by verse-number string.
	ShapeNested
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeBookList:
		return "book-list"
	case ShapeWrapped:
		return "wrapped-book-list"
	case ShapeNested:
		return "nested-map"
	default:
		return "unknown"
	}
}

// DetectResult is the outcome of shape detection.
type DetectResult struct {
	Shape  Shape
	Reason string
}

// DetectShape determines the input shape structurally. It is pure: no
// logging, no partial parsing state. Invalid top-level JSON and
// unrecognizable structures are errors (fatal per the error taxonomy).
func DetectShape(data []byte) (*DetectResult, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, errors.NewParse("JSON", "", "empty input")
	}

	switch trimmed[0] {
	case '[':
		var list []json.RawMessage
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, &errors.ParseError{Format: "JSON", Message: "invalid top-level array", Err: err}
		}
		return &DetectResult{Shape: ShapeBookList, Reason: "root is a sequence of book objects"}, nil

	case '{':
		var root map[string]json.RawMessage
		if err := json.Unmarshal(data, &root); err != nil {
			return nil, &errors.ParseError{Format: "JSON", Message: "invalid top-level object", Err: err}
		}
		if _, ok := root["books"]; ok {
			return &DetectResult{Shape: ShapeWrapped, Reason: `root object has a "books" key`}, nil
		}
		if _, ok := root["bible"]; ok {
			return &DetectResult{Shape: ShapeWrapped, Reason: `root object has a "bible" key`}, nil
		}

		var nested map[string]map[string]map[string]string
		if err := json.Unmarshal(data, &nested); err == nil {
			return &DetectResult{Shape: ShapeNested, Reason: "root object maps book names to chapter maps"}, nil
		}

		// Book objects stored as object values rather than a sequence.
		for _, raw := range root {
			var book map[string]json.RawMessage
			if err := json.Unmarshal(raw, &book); err != nil {
				return nil, errors.NewParse("JSON", "", "object values are neither chapter maps nor book objects")
			}
		}
		return &DetectResult{Shape: ShapeBookList, Reason: "root object values are book objects"}, nil

	default:
		return nil, errors.NewParse("JSON", "", "top-level value is neither an array nor an object")
	}
}

// Parse reads the input into the normalized model. Item-level problems
// (unnamed books, unnumbered chapters, chapters that clean to nothing)
// are skipped with diagnostics; only structural failure is an error.
func Parse(data []byte) (*bible.Text, []formats.Skip, error) {
	detected, err := DetectShape(data)
	if err != nil {
		return nil, nil, err
	}

	if detected.Shape == ShapeNested {
		return parseNested(data)
	}
	return parseBookList(data)
}

// parseBookList handles ShapeBookList and ShapeWrapped.
func parseBookList(data []byte) (*bible.Text, []formats.Skip, error) {
	books, err := extractBookList(data)
	if err != nil {
		return nil, nil, err
	}

	text := bible.New()
	var skips []formats.Skip
	skip := func(scope, reason string) {
		logging.SkipEvent(scope, reason)
		skips = append(skips, formats.Skip{Scope: scope, Reason: reason})
	}

	for i, raw := range books {
		var book map[string]json.RawMessage
		if err := json.Unmarshal(raw, &book); err != nil {
			skip(fmt.Sprintf("book %d", i+1), "entry is not an object")
			continue
		}

		name, ok := stringField(book, "book", "name", "bookName")
		if !ok || strings.TrimSpace(name) == "" {
			skip(fmt.Sprintf("book %d", i+1), "no resolvable book name")
			continue
		}

		id := canon.Normalize(name)
		if replaced := text.AddBook(id); replaced > 0 {
			logging.Warn("book collision, keeping later entry",
				"book", string(id), "name", name, "dropped_chapters", replaced)
		}

		for _, rawChapter := range sequenceField(book, "chapters", "chapter") {
			var chapter map[string]json.RawMessage
			if err := json.Unmarshal(rawChapter, &chapter); err != nil {
				skip(string(id), "chapter entry is not an object")
				continue
			}

			number, ok := intField(chapter, "chapter", "number", "chapterNumber", "id")
			if !ok {
				skip(string(id), "chapter has no resolvable number")
				continue
			}

			verses := cleanVerses(sequenceField(chapter, "verses", "verse"), bible.CleanNumberedVerse)
			if len(verses) == 0 {
				skip(fmt.Sprintf("%s %d", id, number), "chapter empty after cleanup")
				continue
			}
			text.SetChapter(id, number, verses)
		}
	}

	return text, skips, nil
}

// parseNested handles ShapeNested. Verse keys are sorted numerically:
// a naive string sort would order "10" before "2".
func parseNested(data []byte) (*bible.Text, []formats.Skip, error) {
	var root map[string]map[string]map[string]string
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, nil, &errors.ParseError{Format: "JSON", Message: "invalid nested book map", Err: err}
	}

	text := bible.New()
	var skips []formats.Skip
	skip := func(scope, reason string) {
		logging.SkipEvent(scope, reason)
		skips = append(skips, formats.Skip{Scope: scope, Reason: reason})
	}

	bookNames := make([]string, 0, len(root))
	for name := range root {
		bookNames = append(bookNames, name)
	}
	sort.Strings(bookNames)

	for _, name := range bookNames {
		id := canon.Normalize(name)
		if replaced := text.AddBook(id); replaced > 0 {
			logging.Warn("book collision, keeping later entry",
				"book", string(id), "name", name, "dropped_chapters", replaced)
		}

		for chapterKey, verseMap := range root[name] {
			number, err := strconv.Atoi(strings.TrimSpace(chapterKey))
			if err != nil {
				skip(string(id), fmt.Sprintf("chapter key %q is not a number", chapterKey))
				continue
			}

			verses := orderedVerses(verseMap, string(id), number, skip)
			if len(verses) == 0 {
				skip(fmt.Sprintf("%s %d", id, number), "chapter empty after cleanup")
				continue
			}
			text.SetChapter(id, number, verses)
		}
	}

	return text, skips, nil
}

// orderedVerses sorts verse-number keys numerically and cleans the texts.
func orderedVerses(verseMap map[string]string, book string, chapter int, skip func(string, string)) []string {
	type entry struct {
		num  int
		text string
	}
	entries := make([]entry, 0, len(verseMap))
	for key, verseText := range verseMap {
		num, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			skip(fmt.Sprintf("%s %d", book, chapter), fmt.Sprintf("verse key %q is not a number", key))
			continue
		}
		entries = append(entries, entry{num: num, text: verseText})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].num < entries[j].num })

	verses := make([]string, 0, len(entries))
	for _, e := range entries {
		if cleaned := bible.CleanVerse(e.text); cleaned != "" {
			verses = append(verses, cleaned)
		}
	}
	return verses
}

// extractBookList locates the book sequence for the list-based shapes.
func extractBookList(data []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []json.RawMessage
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, &errors.ParseError{Format: "JSON", Message: "invalid top-level array", Err: err}
		}
		return list, nil
	}

	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, &errors.ParseError{Format: "JSON", Message: "invalid top-level object", Err: err}
	}

	for _, key := range []string{"books", "bible"} {
		raw, ok := root[key]
		if !ok {
			continue
		}
		var list []json.RawMessage
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, errors.NewParse("JSON", "", fmt.Sprintf("%q key does not hold a sequence", key))
		}
		return list, nil
	}

	// Object-of-books fallback: values are the book objects, in key order.
	keys := make([]string, 0, len(root))
	for key := range root {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	list := make([]json.RawMessage, 0, len(keys))
	for _, key := range keys {
		list = append(list, root[key])
	}
	return list, nil
}

// stringField returns the first present key that holds a string.
func stringField(obj map[string]json.RawMessage, keys ...string) (string, bool) {
	for _, key := range keys {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s, true
		}
	}
	return "", false
}

// intField returns the first present key that holds an integer, accepting
// JSON numbers and numeric strings.
func intField(obj map[string]json.RawMessage, keys ...string) (int, bool) {
	for _, key := range keys {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		var n json.Number
		if err := json.Unmarshal(raw, &n); err == nil {
			if i, err := n.Int64(); err == nil {
				return int(i), true
			}
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
				return i, true
			}
		}
	}
	return 0, false
}

// sequenceField returns the first present key as a sequence, wrapping a
// single object or string value in a one-element sequence.
func sequenceField(obj map[string]json.RawMessage, keys ...string) []json.RawMessage {
	for _, key := range keys {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		var list []json.RawMessage
		if err := json.Unmarshal(raw, &list); err == nil {
			return list
		}
		return []json.RawMessage{raw}
	}
	return nil
}

// cleanVerses cleans raw verse strings and drops the ones that clean to
// empty. Non-string entries are ignored.
func cleanVerses(raw []json.RawMessage, clean func(string) string) []string {
	verses := make([]string, 0, len(raw))
	for _, item := range raw {
		var s string
		if err := json.Unmarshal(item, &s); err != nil {
			continue
		}
		if cleaned := clean(s); cleaned != "" {
			verses = append(verses, cleaned)
		}
	}
	return verses
}
