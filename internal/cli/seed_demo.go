package cli

import (
	"flag"
	"fmt"
	"os"

	"versekeeper/internal/config"
	"versekeeper/internal/database"
	"versekeeper/internal/demo"
)

type SeedDemoCommand struct {
	DatabasePath string
}

func NewSeedDemoCommand() *SeedDemoCommand {
	return &SeedDemoCommand{}
}

func (cmd *SeedDemoCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed-demo", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the annotations database")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed-demo [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Fill the database with sample notes, bookmarks and highlights.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *SeedDemoCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	result, err := demo.Seed(db)
	if err != nil {
		return err
	}

	fmt.Printf("Seeded %d notes, %d bookmarks, %d highlights into %s\n",
		result.Notes, result.Bookmarks, result.Highlights, cmd.DatabasePath)
	return nil
}
