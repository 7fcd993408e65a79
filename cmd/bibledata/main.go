// Command bibledata normalizes loosely-structured Bible texts into a
// per-book, per-chapter JSON tree with a version.json summary.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/bibledata/core/bible"
	"github.com/FocuswithJustin/bibledata/core/canon"
	"github.com/FocuswithJustin/bibledata/core/ref"
	"github.com/FocuswithJustin/bibledata/internal/emit"
	"github.com/FocuswithJustin/bibledata/internal/formats"
	jsonformat "github.com/FocuswithJustin/bibledata/internal/formats/json"
	"github.com/FocuswithJustin/bibledata/internal/formats/zefania"
	"github.com/FocuswithJustin/bibledata/internal/logging"
	"github.com/FocuswithJustin/bibledata/internal/source"
	"github.com/FocuswithJustin/bibledata/internal/validation"
)

const version = "0.1.0"

// CLI defines the command-line interface for bibledata.
var CLI struct {
	LogLevel  string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log format"`

	Process  ProcessCmd  `cmd:"" help:"Normalize an input file into an output tree"`
	Detect   DetectCmd   `cmd:"" help:"Detect the structural shape of an input file"`
	Export   ExportGroup `cmd:"" help:"Export a normalized output tree"`
	Versions VersionsCmd `cmd:"" help:"List known translation codes"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// ProcessCmd normalizes one translation.
type ProcessCmd struct {
	Input       string `arg:"" help:"Input file (.json, .xml; .gz/.xz accepted)" type:"existingfile"`
	Out         string `arg:"" help:"Output directory" type:"path"`
	Translation string `required:"" short:"t" help:"Translation code (e.g. KJV, ESV)"`
	Validate    bool   `help:"Warn when the output is not a complete 66-book Bible"`
	Only        string `help:"Restrict output to a book or chapter range (e.g. 'Genesis 1-3')"`
	Report      string `help:"Write a machine-readable run report to this path" type:"path"`
}

func (c *ProcessCmd) Run() error {
	in, err := source.Read(c.Input)
	if err != nil {
		return err
	}

	var (
		text  *bible.Text
		skips []formats.Skip
		shape string
	)
	if in.Ext() == ".xml" {
		text, skips, err = zefania.Parse(in.Data)
		shape = "zefania"
	} else {
		var detected *jsonformat.DetectResult
		detected, err = jsonformat.DetectShape(in.Data)
		if err != nil {
			return err
		}
		shape = detected.Shape.String()
		text, skips, err = jsonformat.Parse(in.Data)
	}
	if err != nil {
		return err
	}

	if c.Only != "" {
		scope, err := ref.Parse(c.Only)
		if err != nil {
			return fmt.Errorf("invalid --only scope: %w", err)
		}
		text.Filter(func(book canon.BookID, chapter int) bool {
			return scope.Matches(book, chapter)
		})
	}

	if c.Validate {
		report := validation.Check(text)
		for _, warning := range report.Warnings {
			logging.ValidationWarning(warning)
		}
		if report.Complete() {
			logging.Info("complete canon", "books", report.Books, "chapters", report.Chapters)
		}
	}

	result, err := emit.Write(text, c.Out, c.Translation)
	if err != nil {
		return err
	}

	logging.Info("done",
		"input", c.Input,
		"shape", shape,
		"books", text.BookCount(),
		"chapters", text.ChapterCount(),
		"verses", text.VerseCount(),
		"files", len(result.FilesWritten),
		"skips", len(skips))

	if c.Report != "" {
		report := emit.NewReport()
		report.Input = c.Input
		report.Shape = shape
		report.SHA256 = in.SHA256
		report.BLAKE3 = in.BLAKE3
		report.Books = text.BookCount()
		report.Chapters = text.ChapterCount()
		report.Verses = text.VerseCount()
		report.Files = result.FilesWritten
		report.Skips = skips
		if err := emit.WriteReport(report, c.Report); err != nil {
			return err
		}
	}

	return nil
}

// DetectCmd prints the detected shape without writing anything.
type DetectCmd struct {
	Input string `arg:"" help:"Input file to inspect" type:"existingfile"`
}

func (c *DetectCmd) Run() error {
	in, err := source.Read(c.Input)
	if err != nil {
		return err
	}

	if in.Ext() == ".xml" {
		if zefania.Detect(in.Data) {
			fmt.Println("zefania: XMLBIBLE root element")
			return nil
		}
		return fmt.Errorf("unrecognized XML document: %s", c.Input)
	}

	detected, err := jsonformat.DetectShape(in.Data)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %s\n", detected.Shape, detected.Reason)
	return nil
}

// ExportGroup contains output-tree export operations.
type ExportGroup struct {
	Sqlite ExportSqliteCmd `cmd:"" help:"Pack an output tree into a SQLite database"`
}

// ExportSqliteCmd packs a normalized tree into one database file.
type ExportSqliteCmd struct {
	Dir string `arg:"" help:"Normalized output tree" type:"existingdir"`
	Out string `arg:"" help:"Database file to create" type:"path"`
}

func (c *ExportSqliteCmd) Run() error {
	if err := emit.ExportSQLite(c.Dir, c.Out); err != nil {
		return err
	}
	logging.Info("exported", "dir", c.Dir, "database", c.Out)
	return nil
}

// VersionsCmd lists the translation codes with known display names.
type VersionsCmd struct{}

func (c *VersionsCmd) Run() error {
	for _, code := range canon.VersionCodes() {
		fmt.Printf("%-5s %s\n", code, canon.VersionName(code))
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("bibledata %s\n", version)
	return nil
}

func main() {
	// No panic crosses the entry point: unexpected failures become a
	// reported error and a nonzero exit.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "bibledata: internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	ctx := kong.Parse(&CLI,
		kong.Name("bibledata"),
		kong.Description("Bible text normalizer - one input file in, one JSON tree out"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	logging.InitLogger(logging.ParseLevel(strings.ToLower(CLI.LogLevel)), logging.ParseFormat(strings.ToLower(CLI.LogFormat)))
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
