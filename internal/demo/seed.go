// Package demo seeds a database with sample annotations for trying the
// application without any prior data.
package demo

import (
	"fmt"

	"versekeeper/internal/database"
	"versekeeper/internal/database/bookmarks"
	"versekeeper/internal/database/highlights"
	"versekeeper/internal/database/notes"
	"versekeeper/internal/entities"
)

// SeedResult reports what was created.
type SeedResult struct {
	Notes      int
	Bookmarks  int
	Highlights int
}

var sampleNotes = []entities.Note{
	{
		Title:    "Creation",
		Content:  "Everything begins with God's creative word.",
		BookName: "Genesis",
		Chapter:  1,
		Verse:    1,
		Tags:     []string{"creation", "beginnings"},
	},
	{
		Title:    "The shepherd psalm",
		Content:  "Trust and provision even through the darkest valley.",
		BookName: "Psalms",
		Chapter:  23,
		Verse:    1,
		Tags:     []string{"comfort"},
	},
	{
		Title:    "Chapter overview",
		Content:  "The whole chapter contrasts rest with restlessness.",
		BookName: "Psalms",
		Chapter:  23,
	},
	{
		Title:    "God so loved",
		Content:  "The gospel in a single verse.",
		BookName: "John",
		Chapter:  3,
		Verse:    16,
		Tags:     []string{"gospel", "love"},
	},
}

var sampleBookmarks = []entities.Bookmark{
	{BookName: "Genesis", Chapter: 1, Verse: 1, Title: "The very first verse"},
	{BookName: "John", Chapter: 3, Verse: 16},
}

var sampleHighlights = []struct {
	book    string
	chapter int
	verse   int
	colorID string
}{
	{"Psalms", 23, 1, "yellow"},
	{"John", 3, 16, "green"},
}

// Seed fills the database with the sample annotations. The palette is
// seeded first so the sample highlights resolve their colors.
func Seed(db *database.Database) (SeedResult, error) {
	var result SeedResult

	highlightRepo := highlights.NewRepository(db)
	if err := highlightRepo.EnsureDefaultColors(); err != nil {
		return result, fmt.Errorf("seed palette: %w", err)
	}

	noteRepo := notes.NewRepository(db)
	for _, note := range sampleNotes {
		if _, err := noteRepo.CreateNote(note); err != nil {
			return result, fmt.Errorf("seed note %q: %w", note.Title, err)
		}
		result.Notes++
	}

	bookmarkRepo := bookmarks.NewRepository(db)
	for _, bookmark := range sampleBookmarks {
		if _, err := bookmarkRepo.AddBookmark(bookmark); err != nil {
			return result, fmt.Errorf("seed bookmark %s %d:%d: %w", bookmark.BookName, bookmark.Chapter, bookmark.Verse, err)
		}
		result.Bookmarks++
	}

	for _, h := range sampleHighlights {
		if _, err := highlightRepo.SetHighlight(h.book, h.chapter, h.verse, h.colorID); err != nil {
			return result, fmt.Errorf("seed highlight %s %d:%d: %w", h.book, h.chapter, h.verse, err)
		}
		result.Highlights++
	}

	return result, nil
}
