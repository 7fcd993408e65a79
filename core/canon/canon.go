// Package canon defines the canonical identifiers for the 66 books of the
// Protestant Bible and resolves free-text book names against them.
//
// Canonical ids are stable lowercase strings with underscores (e.g.
// "1_samuel") and double as output directory names. The alias table is
// many-to-one and deliberately permissive: an unrecognized name never
// produces an error, it falls back to a best-effort identifier so that no
// input text is dropped during normalization.
package canon

import (
	"sort"
	"strings"
	"unicode"
)

// BookID is a canonical book identifier.
type BookID string

// canonicalOrder lists all 66 canonical book ids in traditional order.
var canonicalOrder = []BookID{
	"genesis", "exodus", "leviticus", "numbers", "deuteronomy",
	"joshua", "judges", "ruth",
	"1_samuel", "2_samuel", "1_kings", "2_kings",
	"1_chronicles", "2_chronicles",
	"ezra", "nehemiah", "esther", "job",
	"psalms", "proverbs", "ecclesiastes", "song_of_solomon",
	"isaiah", "jeremiah", "lamentations", "ezekiel", "daniel",
	"hosea", "joel", "amos", "obadiah", "jonah", "micah", "nahum",
	"habakkuk", "zephaniah", "haggai", "zechariah", "malachi",
	"matthew", "mark", "luke", "john", "acts", "romans",
	"1_corinthians", "2_corinthians",
	"galatians", "ephesians", "philippians", "colossians",
	"1_thessalonians", "2_thessalonians",
	"1_timothy", "2_timothy", "titus", "philemon",
	"hebrews", "james",
	"1_peter", "2_peter", "1_john", "2_john", "3_john",
	"jude", "revelation",
}

// canonicalIndex maps each canonical id to its position in canonicalOrder.
var canonicalIndex = func() map[BookID]int {
	m := make(map[BookID]int, len(canonicalOrder))
	for i, id := range canonicalOrder {
		m[id] = i
	}
	return m
}()

// aliases maps normalized free-text spellings to canonical ids.
// Keys are lowercase with punctuation stripped and whitespace collapsed.
var aliases = map[string]BookID{
	"genesis": "genesis", "gen": "genesis",
	"exodus": "exodus", "exo": "exodus",
	"leviticus": "leviticus", "lev": "leviticus",
	"numbers": "numbers", "num": "numbers",
	"deuteronomy": "deuteronomy", "deu": "deuteronomy", "deut": "deuteronomy",
	"joshua": "joshua", "jos": "joshua", "josh": "joshua",
	"judges": "judges", "jdg": "judges", "judg": "judges",
	"ruth": "ruth", "rut": "ruth",
	"1 samuel": "1_samuel", "1samuel": "1_samuel", "1sam": "1_samuel", "1 sam": "1_samuel",
	"2 samuel": "2_samuel", "2samuel": "2_samuel", "2sam": "2_samuel", "2 sam": "2_samuel",
	"1 kings": "1_kings", "1kings": "1_kings", "1ki": "1_kings", "1 ki": "1_kings",
	"2 kings": "2_kings", "2kings": "2_kings", "2ki": "2_kings", "2 ki": "2_kings",
	"1 chronicles": "1_chronicles", "1chronicles": "1_chronicles", "1ch": "1_chronicles", "1 ch": "1_chronicles",
	"2 chronicles": "2_chronicles", "2chronicles": "2_chronicles", "2ch": "2_chronicles", "2 ch": "2_chronicles",
	"ezra": "ezra", "ezr": "ezra",
	"nehemiah": "nehemiah", "neh": "nehemiah",
	"esther": "esther", "est": "esther",
	"job":    "job",
	"psalms": "psalms", "psalm": "psalms", "psa": "psalms", "ps": "psalms",
	"proverbs": "proverbs", "pro": "proverbs", "prov": "proverbs",
	"ecclesiastes": "ecclesiastes", "ecc": "ecclesiastes", "eccl": "ecclesiastes",
	"song of solomon": "song_of_solomon", "song of songs": "song_of_solomon",
	"song": "song_of_solomon", "sos": "song_of_solomon",
	"isaiah": "isaiah", "isa": "isaiah",
	"jeremiah": "jeremiah", "jer": "jeremiah",
	"lamentations": "lamentations", "lam": "lamentations",
	"ezekiel": "ezekiel", "eze": "ezekiel", "ezek": "ezekiel",
	"daniel": "daniel", "dan": "daniel",
	"hosea": "hosea", "hos": "hosea",
	"joel": "joel", "joe": "joel",
	"amos": "amos", "amo": "amos",
	"obadiah": "obadiah", "oba": "obadiah",
	"jonah": "jonah", "jon": "jonah",
	"micah": "micah", "mic": "micah",
	"nahum": "nahum", "nah": "nahum",
	"habakkuk": "habakkuk", "hab": "habakkuk",
	"zephaniah": "zephaniah", "zep": "zephaniah", "zeph": "zephaniah",
	"haggai": "haggai", "hag": "haggai",
	"zechariah": "zechariah", "zec": "zechariah", "zech": "zechariah",
	"malachi": "malachi", "mal": "malachi",
	"matthew": "matthew", "mat": "matthew", "matt": "matthew",
	"mark": "mark", "mar": "mark", "mk": "mark",
	"luke": "luke", "luk": "luke", "lk": "luke",
	"john": "john", "joh": "john", "jn": "john",
	"acts": "acts", "act": "acts",
	"romans": "romans", "rom": "romans",
	"1 corinthians": "1_corinthians", "1corinthians": "1_corinthians", "1cor": "1_corinthians", "1 cor": "1_corinthians",
	"2 corinthians": "2_corinthians", "2corinthians": "2_corinthians", "2cor": "2_corinthians", "2 cor": "2_corinthians",
	"galatians": "galatians", "gal": "galatians",
	"ephesians": "ephesians", "eph": "ephesians",
	"philippians": "philippians", "phi": "philippians", "phil": "philippians",
	"colossians": "colossians", "col": "colossians",
	"1 thessalonians": "1_thessalonians", "1thessalonians": "1_thessalonians", "1th": "1_thessalonians", "1 th": "1_thessalonians",
	"2 thessalonians": "2_thessalonians", "2thessalonians": "2_thessalonians", "2th": "2_thessalonians", "2 th": "2_thessalonians",
	"1 timothy": "1_timothy", "1timothy": "1_timothy", "1ti": "1_timothy", "1 ti": "1_timothy",
	"2 timothy": "2_timothy", "2timothy": "2_timothy", "2ti": "2_timothy", "2 ti": "2_timothy",
	"titus": "titus", "tit": "titus",
	"philemon": "philemon", "phm": "philemon", "phlm": "philemon",
	"hebrews": "hebrews", "heb": "hebrews",
	"james": "james", "jas": "james", "jam": "james",
	"1 peter": "1_peter", "1peter": "1_peter", "1pe": "1_peter", "1 pe": "1_peter",
	"2 peter": "2_peter", "2peter": "2_peter", "2pe": "2_peter", "2 pe": "2_peter",
	"1 john": "1_john", "1john": "1_john", "1jo": "1_john", "1 jo": "1_john",
	"2 john": "2_john", "2john": "2_john", "2jo": "2_john", "2 jo": "2_john",
	"3 john": "3_john", "3john": "3_john", "3jo": "3_john", "3 jo": "3_john",
	"jude": "jude", "jud": "jude",
	"revelation": "revelation", "rev": "revelation",
}

// Normalize resolves a free-text book name to a canonical BookID.
//
// The input is lowercased, trimmed, stripped of punctuation (anything that
// is not a letter, digit, underscore, or whitespace), and has whitespace
// runs collapsed before alias lookup. Unknown names are not an error: the
// normalized string with spaces replaced by underscores is returned as a
// best-effort identifier, which may not be one of the 66 canonical ids.
func Normalize(name string) BookID {
	normalized := fold(name)
	if id, ok := aliases[normalized]; ok {
		return id
	}
	return BookID(strings.ReplaceAll(normalized, " ", "_"))
}

// fold lowercases, strips punctuation, and collapses whitespace.
func fold(name string) string {
	lowered := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// IsCanonical reports whether id is one of the 66 canonical book ids.
func IsCanonical(id BookID) bool {
	_, ok := canonicalIndex[id]
	return ok
}

// Books returns all 66 canonical book ids in traditional order.
func Books() []BookID {
	out := make([]BookID, len(canonicalOrder))
	copy(out, canonicalOrder)
	return out
}

// Order returns the canonical position of a book id (0-based).
// Non-canonical ids sort after all canonical ones, alphabetically.
func Order(id BookID) int {
	if i, ok := canonicalIndex[id]; ok {
		return i
	}
	return len(canonicalOrder)
}

// SortBooks sorts book ids into canonical order; ids outside the canon
// come last in alphabetical order.
func SortBooks(ids []BookID) {
	sort.Slice(ids, func(i, j int) bool {
		oi, oj := Order(ids[i]), Order(ids[j])
		if oi != oj {
			return oi < oj
		}
		return ids[i] < ids[j]
	})
}

// BookCount is the number of books in the Protestant canon.
const BookCount = 66

// versionNames maps translation codes to display names.
var versionNames = map[string]string{
	"KJV":  "King James Version",
	"ESV":  "English Standard Version",
	"NIV":  "New International Version",
	"NKJV": "New King James Version",
	"NLT":  "New Living Translation",
	"NASB": "New American Standard Bible",
	"CSB":  "Christian Standard Bible",
	"MSG":  "The Message",
	"AMP":  "Amplified Bible",
	"NRSV": "New Revised Standard Version",
}

// VersionName returns the display name for a translation code.
// Unknown codes fall back to the code itself.
func VersionName(code string) string {
	if name, ok := versionNames[strings.ToUpper(code)]; ok {
		return name
	}
	return code
}

// VersionCodes returns the known translation codes, sorted.
func VersionCodes() []string {
	codes := make([]string, 0, len(versionNames))
	for code := range versionNames {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
