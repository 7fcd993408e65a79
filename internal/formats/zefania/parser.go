// Package zefania reads Zefania XML Bible modules. Only the structural
// elements are consumed: BIBLEBOOK/@bname, CHAPTER/@cnumber, VERS/@vnumber
// and the verse text.
package zefania

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/FocuswithJustin/bibledata/core/bible"
	"github.com/FocuswithJustin/bibledata/core/canon"
	"github.com/FocuswithJustin/bibledata/core/errors"
	"github.com/FocuswithJustin/bibledata/internal/formats"
	"github.com/FocuswithJustin/bibledata/internal/logging"
)

// Detect reports whether the document looks like a Zefania module.
func Detect(data []byte) bool {
	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return false
	}
	node, err := xmlquery.Query(doc, "/XMLBIBLE")
	return err == nil && node != nil
}

// Parse reads a Zefania document into the normalized model. The per-item
// skip policy matches the JSON readers: unnamed books and unnumbered
// chapters or verses are diagnostics, not errors.
func Parse(data []byte) (*bible.Text, []formats.Skip, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, nil, &errors.ParseError{Format: "Zefania", Message: "invalid XML", Err: err}
	}
	if node, err := xmlquery.Query(doc, "/XMLBIBLE"); err != nil || node == nil {
		return nil, nil, errors.NewParse("Zefania", "", "document has no XMLBIBLE root")
	}

	text := bible.New()
	var skips []formats.Skip
	skip := func(scope, reason string) {
		logging.SkipEvent(scope, reason)
		skips = append(skips, formats.Skip{Scope: scope, Reason: reason})
	}

	books, err := xmlquery.QueryAll(doc, "//BIBLEBOOK")
	if err != nil {
		return nil, nil, &errors.ParseError{Format: "Zefania", Message: "book query failed", Err: err}
	}

	for i, bookNode := range books {
		name := bookNode.SelectAttr("bname")
		if strings.TrimSpace(name) == "" {
			skip(fmt.Sprintf("book %d", i+1), "BIBLEBOOK has no bname attribute")
			continue
		}

		id := canon.Normalize(name)
		if replaced := text.AddBook(id); replaced > 0 {
			logging.Warn("book collision, keeping later entry",
				"book", string(id), "name", name, "dropped_chapters", replaced)
		}

		chapters, err := xmlquery.QueryAll(bookNode, "CHAPTER")
		if err != nil {
			skip(string(id), "chapter query failed")
			continue
		}

		for _, chapterNode := range chapters {
			number, err := strconv.Atoi(strings.TrimSpace(chapterNode.SelectAttr("cnumber")))
			if err != nil {
				skip(string(id), "CHAPTER has no numeric cnumber attribute")
				continue
			}

			verses := orderedVerses(chapterNode, string(id), number, skip)
			if len(verses) == 0 {
				skip(fmt.Sprintf("%s %d", id, number), "chapter empty after cleanup")
				continue
			}
			text.SetChapter(id, number, verses)
		}
	}

	return text, skips, nil
}

// orderedVerses collects VERS children sorted by vnumber. Zefania files
// are usually in order already, but the attribute is authoritative.
func orderedVerses(chapter *xmlquery.Node, book string, number int, skip func(string, string)) []string {
	nodes, err := xmlquery.QueryAll(chapter, "VERS")
	if err != nil {
		return nil
	}

	type entry struct {
		num  int
		text string
	}
	entries := make([]entry, 0, len(nodes))
	for _, node := range nodes {
		num, err := strconv.Atoi(strings.TrimSpace(node.SelectAttr("vnumber")))
		if err != nil {
			skip(fmt.Sprintf("%s %d", book, number), "VERS has no numeric vnumber attribute")
			continue
		}
		entries = append(entries, entry{num: num, text: node.InnerText()})
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
