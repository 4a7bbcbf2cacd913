package cli

import (
	"flag"
	"fmt"
	"os"

	"versekeeper/internal/config"
	"versekeeper/internal/database"
	"versekeeper/internal/database/notes"
	"versekeeper/internal/exporters"
)

type ExportMarkdownCommand struct {
	OutputDir    string
	DatabasePath string
}

func NewExportMarkdownCommand() *ExportMarkdownCommand {
	return &ExportMarkdownCommand{}
}

func (cmd *ExportMarkdownCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export-markdown", flag.ExitOnError)

	fs.StringVar(&cmd.OutputDir, "out", "./markdown", "Directory to write per-book markdown files")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the annotations database")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export-markdown [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export all verse notes to per-book markdown files.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s export-markdown -out ./vault/bible-notes\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s export-markdown -out ./notes -db ./versekeeper.db\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *ExportMarkdownCommand) Run() error {
	if _, err := os.Stat(cmd.DatabasePath); os.IsNotExist(err) {
		return fmt.Errorf("database %s does not exist", cmd.DatabasePath)
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	exporter := exporters.NewMarkdownExporter(cmd.OutputDir)
	result, err := exporter.ExportNotes(notes.NewRepository(db))
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d notes into %d files under %s\n", result.NotesProcessed, result.FilesWritten, cmd.OutputDir)
	return nil
}
