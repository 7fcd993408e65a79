package emit

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	_ "modernc.org/sqlite"

	"github.com/FocuswithJustin/bibledata/core/canon"
	"github.com/FocuswithJustin/bibledata/core/errors"
)

const exportSchema = `
CREATE TABLE IF NOT EXISTS info (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS books (
	id       TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	chapters INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS verses (
	book    TEXT NOT NULL,
	chapter INTEGER NOT NULL,
	verse   INTEGER NOT NULL,
	text    TEXT NOT NULL,
	PRIMARY KEY (book, chapter, verse)
);
`

// ExportSQLite packs a previously emitted output tree into a single
// SQLite database. The tree is read back from disk so the export works
// on any run's output, not only the current process's.
func ExportSQLite(dir, outPath string) error {
	summary, err := readSummary(dir)
	if err != nil {
		return err
	}

	db, err := sql.Open("sqlite", outPath)
	if err != nil {
		return errors.NewIO("open database", outPath, err)
	}
	defer db.Close()

	if _, err := db.Exec(exportSchema); err != nil {
		return errors.Wrap(err, "create schema")
	}

	tx, err := db.Begin()
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	defer tx.Rollback()

	for key, value := range map[string]string{
		"version":        summary.Version,
		"name":           summary.Name,
		"books":          strconv.Itoa(summary.Books),
		"total_chapters": strconv.Itoa(summary.TotalChapters),
	} {
		if _, err := tx.Exec(`INSERT INTO info (key, value) VALUES (?, ?)`, key, value); err != nil {
			return errors.Wrap(err, "insert info")
		}
	}

	books, err := bookDirs(dir)
	if err != nil {
		return err
	}

	for position, book := range books {
		chapters, err := chapterFiles(filepath.Join(dir, book))
		if err != nil {
			return err
		}

		if _, err := tx.Exec(`INSERT INTO books (id, position, chapters) VALUES (?, ?, ?)`,
			book, position+1, len(chapters)); err != nil {
			return errors.Wrap(err, "insert book")
		}

		for _, chapter := range chapters {
			verses, err := readChapter(filepath.Join(dir, book, strconv.Itoa(chapter)+".json"))
			if err != nil {
				return err
			}
			for i, verseText := range verses {
				if _, err := tx.Exec(`INSERT INTO verses (book, chapter, verse, text) VALUES (?, ?, ?, ?)`,
					book, chapter, i+1, verseText); err != nil {
					return errors.Wrap(err, "insert verse")
				}
			}
		}
	}

	return tx.Commit()
}

// readSummary loads version.json from an output tree.
func readSummary(dir string) (*Summary, error) {
	raw, err := os.ReadFile(filepath.Join(dir, "version.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &errors.NotFoundError{Resource: "output tree", ID: dir, Err: err}
		}
		return nil, errors.NewIO("read", dir, err)
	}
	var summary Summary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, &errors.ParseError{Format: "JSON", Path: dir, Message: "invalid version.json", Err: err}
	}
	return &summary, nil
}

// bookDirs lists book directories in canonical order.
func bookDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewIO("read dir", dir, err)
	}
	ids := make([]canon.BookID, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			ids = append(ids, canon.BookID(entry.Name()))
		}
	}
	canon.SortBooks(ids)

	books := make([]string, len(ids))
	for i, id := range ids {
		books[i] = string(id)
	}
	return books, nil
}

// chapterFiles lists chapter numbers present in a book directory.
func chapterFiles(dir string) ([]int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewIO("read dir", dir, err)
	}
	var chapters []int
	for _, entry := range entries {
		name := entry.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		number, err := strconv.Atoi(name[:len(name)-len(".json")])
		if err != nil {
			continue
		}
		chapters = append(chapters, number)
	}
	sort.Ints(chapters)
	return chapters, nil
}

// readChapter loads one chapter's verse list.
func readChapter(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}
	var verses []string
	if err := json.Unmarshal(raw, &verses); err != nil {
		return nil, &errors.ParseError{Format: "JSON", Path: path, Message: "invalid chapter file", Err: err}
	}
	return verses, nil
}
