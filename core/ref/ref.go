// Package ref parses human-entered processing scopes like "Genesis",
// "1 Samuel 3", or "Psalms 1-41" into a book plus optional chapter range.
package ref

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/bibledata/core/canon"
)

// Scope restricts processing to one book and optionally a chapter range.
type Scope struct {
	// Book is the canonical id of the selected book.
	Book canon.BookID

	// ChapterLo and ChapterHi bound the selected chapters (inclusive).
	// Both zero means the whole book.
	ChapterLo int
	ChapterHi int
}

// scopeGrammar is the participle grammar for scope strings.
// Examples: "Genesis", "Genesis 1", "Genesis 1-3", "1 Samuel 3"
//
//nolint:govet // participle grammar tags are not standard struct tags
type scopeGrammar struct {
	Tokens []token `@@+`
	Hi     *int    `( "-" @Int )?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type token struct {
	Word *string `@Word`
	Num  *int    `| @Int`
}

// scopeLexer tokenizes scope strings into words, integers, and dashes.
var scopeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Word", Pattern: `[A-Za-z_]+`},
	{Name: "Dash", Pattern: `-`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var scopeParser = participle.MustBuild[scopeGrammar](
	participle.Lexer(scopeLexer),
	participle.Elide("Whitespace"),
)

// Parse parses a scope string. The trailing integer, when preceded by at
// least one word, selects a chapter; "1 Samuel" alone is a book because
// its final token is a word. A "-N" suffix extends the selection to a
// chapter range.
func Parse(s string) (*Scope, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty scope string")
	}

	parsed, err := scopeParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("invalid scope format: %q: %w", s, err)
	}

	tokens := parsed.Tokens
	scope := &Scope{}

	// Peel a trailing chapter number off the token list. A range suffix
	// requires one; otherwise the last token is a chapter only when a
	// word precedes it ("1 Samuel 3" yes, "1 Samuel" no).
	last := tokens[len(tokens)-1]
	hasWord := false
	for _, tok := range tokens[:len(tokens)-1] {
		if tok.Word != nil {
			hasWord = true
			break
		}
	}
	if last.Num != nil && hasWord {
		scope.ChapterLo = *last.Num
		scope.ChapterHi = *last.Num
		tokens = tokens[:len(tokens)-1]
	}
	if parsed.Hi != nil {
		if scope.ChapterLo == 0 {
			return nil, fmt.Errorf("invalid scope format: %q: chapter range without start chapter", s)
		}
		if *parsed.Hi < scope.ChapterLo {
			return nil, fmt.Errorf("invalid scope format: %q: descending chapter range", s)
		}
		scope.ChapterHi = *parsed.Hi
	}

	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		switch {
		case tok.Word != nil:
			parts = append(parts, *tok.Word)
		case tok.Num != nil:
			parts = append(parts, fmt.Sprintf("%d", *tok.Num))
		}
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("invalid scope format: %q: no book name", s)
	}
	scope.Book = canon.Normalize(strings.Join(parts, " "))

	return scope, nil
}

// Matches reports whether the given book and chapter fall inside the scope.
func (s *Scope) Matches(book canon.BookID, chapter int) bool {
	if book != s.Book {
		return false
	}
	if s.ChapterLo == 0 {
		return true
	}
	return chapter >= s.ChapterLo && chapter <= s.ChapterHi
}

// String renders the scope back to a readable form.
func (s *Scope) String() string {
	var sb strings.Builder
	sb.WriteString(string(s.Book))
	if s.ChapterLo > 0 {
		fmt.Fprintf(&sb, " %d", s.ChapterLo)
		if s.ChapterHi > s.ChapterLo {
			fmt.Fprintf(&sb, "-%d", s.ChapterHi)
		}
	}
	return sb.String()
}
