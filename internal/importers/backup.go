// Package importers restores annotation collections from backup files.
//
// A backup is a single JSON document carrying every collection under its
// store key. Restoring replaces the persisted collections wholesale after
// normalizing the entries, so a backup taken on one device can be moved to
// another.
package importers

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"versekeeper/internal/database"
	"versekeeper/internal/database/highlights"
	"versekeeper/internal/entities"
)

// Backup mirrors the persisted collection layout.
type Backup struct {
	Notes           []entities.Note           `json:"notes"`
	Bookmarks       []entities.Bookmark       `json:"bookmarks"`
	Highlights      []entities.Highlight      `json:"highlights"`
	HighlightColors []entities.HighlightColor `json:"highlight_colors"`
}

// RestoreResult summarizes a restore run.
type RestoreResult struct {
	Notes      int
	Bookmarks  int
	Highlights int
	Colors     int
}

// BackupImporter restores a backup into the annotation store.
type BackupImporter struct {
	db *database.Database
}

func NewBackupImporter(db *database.Database) *BackupImporter {
	return &BackupImporter{db: db}
}

// ReadBackupFile parses a backup document from disk.
func ReadBackupFile(path string) (*Backup, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read backup: %w", err)
	}

	var backup Backup
	if err := json.Unmarshal(raw, &backup); err != nil {
		return nil, fmt.Errorf("parse backup: %w", err)
	}
	return &backup, nil
}

// Restore replaces every annotation collection with the backup's contents.
// Entries are normalized first: missing ids are assigned, duplicate
// bookmarks are dropped and a verse keeps only its last highlight. An empty
// palette falls back to the default one.
func (im *BackupImporter) Restore(backup *Backup) (RestoreResult, error) {
	var result RestoreResult

	notes := backup.Notes
	if notes == nil {
		notes = []entities.Note{}
	}
	for i := range notes {
		if notes[i].ID == "" {
			notes[i].ID = uuid.NewString()
		}
	}

	bookmarks := dedupeBookmarks(backup.Bookmarks)
	verseHighlights := dedupeHighlights(backup.Highlights)

	colors := backup.HighlightColors
	if len(colors) == 0 {
		colors = highlights.DefaultColors
	}

	collections := []struct {
		key   string
		value any
	}{
		{entities.CollectionNotes, notes},
		{entities.CollectionBookmarks, bookmarks},
		{entities.CollectionHighlights, verseHighlights},
		{entities.CollectionHighlightColors, colors},
	}

	for _, collection := range collections {
		blob, err := json.Marshal(collection.value)
		if err != nil {
			return result, fmt.Errorf("encode %s: %w", collection.key, err)
		}
		if err := im.db.WriteCollection(collection.key, blob); err != nil {
			return result, fmt.Errorf("write %s: %w", collection.key, err)
		}
	}

	result.Notes = len(notes)
	result.Bookmarks = len(bookmarks)
	result.Highlights = len(verseHighlights)
	result.Colors = len(colors)
	return result, nil
}

func dedupeBookmarks(in []entities.Bookmark) []entities.Bookmark {
	out := []entities.Bookmark{}
	seen := make(map[string]bool)
	for _, b := range in {
		key := fmt.Sprintf("%s|%d|%d", b.BookName, b.Chapter, b.Verse)
		if seen[key] {
			continue
		}
		seen[key] = true
		if b.ID == "" {
			b.ID = uuid.NewString()
		}
		out = append(out, b)
	}
	return out
}

func dedupeHighlights(in []entities.Highlight) []entities.Highlight {
	// Later entries win, matching replace-on-set semantics.
	out := []entities.Highlight{}
	for _, h := range in {
		filtered := out[:0:0]
		for _, existing := range out {
			if !(existing.BookName == h.BookName && existing.Chapter == h.Chapter && existing.Verse == h.Verse) {
				filtered = append(filtered, existing)
			}
		}
		if h.ID == "" {
			h.ID = uuid.NewString()
		}
		out = append(filtered, h)
	}
	return out
}
