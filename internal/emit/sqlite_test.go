package emit

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/FocuswithJustin/bibledata/core/bible"
)

// TestExportSQLite tests packing an emitted tree into a database.
func TestExportSQLite(t *testing.T) {
	text := bible.New()
	text.AddBook("genesis")
	text.SetChapter("genesis", 1, []string{"In the beginning.", "And the earth."})
	text.AddBook("exodus")
	text.SetChapter("exodus", 1, []string{"These are the names."})

	outDir := t.TempDir()
	if _, err := Write(text, outDir, "KJV"); err != nil {
		t.Fatal(err)
	}

	dbPath := filepath.Join(t.TempDir(), "bible.db")
	if err := ExportSQLite(outDir, dbPath); err != nil {
		t.Fatal(err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var name string
	if err := db.QueryRow(`SELECT value FROM info WHERE key = 'name'`).Scan(&name); err != nil {
		t.Fatal(err)
	}
	if name != "King James Version" {
		t.Errorf("info name = %q", name)
	}

	var position int
	if err := db.QueryRow(`SELECT position FROM books WHERE id = 'exodus'`).Scan(&position); err != nil {
		t.Fatal(err)
	}
	if position != 2 {
		t.Errorf("exodus position = %d, want 2", position)
	}

	var verseText string
	err = db.QueryRow(`SELECT text FROM verses WHERE book = 'genesis' AND chapter = 1 AND verse = 2`).Scan(&verseText)
	if err != nil {
		t.Fatal(err)
	}
	if verseText != "And the earth." {
		t.Errorf("verse text = %q", verseText)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM verses`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Errorf("verse count = %d, want 3", count)
	}
}

// TestExportSQLite_MissingTree tests the not-found path.
func TestExportSQLite_MissingTree(t *testing.T) {
	err := ExportSQLite(filepath.Join(t.TempDir(), "nope"), filepath.Join(t.TempDir(), "out.db"))
	if err == nil {
		t.Fatal("expected error for missing output tree")
	}
}
