package cli

import (
	"flag"
	"fmt"
	"os"

	"versekeeper/internal/config"
	"versekeeper/internal/database"
	"versekeeper/internal/importers"
)

type ImportBackupCommand struct {
	BackupPath   string
	DatabasePath string
}

func NewImportBackupCommand() *ImportBackupCommand {
	return &ImportBackupCommand{}
}

func (cmd *ImportBackupCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import-backup", flag.ExitOnError)

	fs.StringVar(&cmd.BackupPath, "file", "", "Path to the backup JSON file (required)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the annotations database")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import-backup [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Restore annotation collections from a backup file.\n")
		fmt.Fprintf(os.Stderr, "Existing collections are replaced.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s import-backup -file ./backup.json\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s import-backup -file ./backup.json -db ./versekeeper.db\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *ImportBackupCommand) Run() error {
	if cmd.BackupPath == "" {
		return fmt.Errorf("the -file option is required")
	}

	backup, err := importers.ReadBackupFile(cmd.BackupPath)
	if err != nil {
		return err
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	result, err := importers.NewBackupImporter(db).Restore(backup)
	if err != nil {
		return err
	}

	fmt.Printf("Restored %d notes, %d bookmarks, %d highlights, %d palette colors\n",
		result.Notes, result.Bookmarks, result.Highlights, result.Colors)
	return nil
}
