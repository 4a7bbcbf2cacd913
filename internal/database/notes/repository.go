// Package notes provides database operations for verse note management.
//
// This package implements the NotesStore interface defined in internal/http/notes.go.
//
// # Usage
//
//	repo := notes.NewRepository(db)
//	note, err := repo.CreateNote(entities.Note{Title: "T", Content: "C", BookName: "John", Chapter: 3, Verse: 16})
package notes

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"versekeeper/internal/database"
	"versekeeper/internal/entities"
)

// Repository handles all note operations against the notes collection.
type Repository struct {
	db *database.Database
}

// NewRepository creates a new notes repository.
func NewRepository(db *database.Database) *Repository {
	return &Repository{db: db}
}

// NoteUpdate is a partial note. Nil fields are left untouched; a pointer to
// the zero value clears the field (e.g. Verse pointing at 0 widens a verse
// note to the whole chapter).
type NoteUpdate struct {
	Title    *string
	Content  *string
	BookName *string
	Chapter  *int
	Verse    *int
	Tags     *[]string
}

// CreateNote assigns a fresh id and timestamps, appends the note to the
// collection and persists it.
func (r *Repository) CreateNote(note entities.Note) (*entities.Note, error) {
	all, err := r.load()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	note.ID = uuid.NewString()
	note.CreatedAt = now
	note.UpdatedAt = now

	all = append(all, note)
	if err := r.save(all); err != nil {
		return nil, err
	}
	return &note, nil
}

// UpdateNote merges the partial update into the stored note and refreshes
// UpdatedAt. Returns nil (no error) if the id is unknown.
func (r *Repository) UpdateNote(id string, update NoteUpdate) (*entities.Note, error) {
	all, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range all {
		if all[i].ID != id {
			continue
		}
		if update.Title != nil {
			all[i].Title = *update.Title
		}
		if update.Content != nil {
			all[i].Content = *update.Content
		}
		if update.BookName != nil {
			all[i].BookName = *update.BookName
		}
		if update.Chapter != nil {
			all[i].Chapter = *update.Chapter
		}
		if update.Verse != nil {
			all[i].Verse = *update.Verse
		}
		if update.Tags != nil {
			all[i].Tags = *update.Tags
		}
		all[i].UpdatedAt = time.Now()

		if err := r.save(all); err != nil {
			return nil, err
		}
		note := all[i]
		return &note, nil
	}
	return nil, nil
}

// DeleteNote removes a note by id and persists the collection. Returns false
// when the id was absent; a repeated delete is a no-op, not an error.
func (r *Repository) DeleteNote(id string) (bool, error) {
	all, err := r.load()
	if err != nil {
		return false, err
	}

	filtered := all[:0:0]
	for _, n := range all {
		if n.ID != id {
			filtered = append(filtered, n)
		}
	}
	if len(filtered) == len(all) {
		return false, nil
	}
	if err := r.save(filtered); err != nil {
		return false, err
	}
	return true, nil
}

// GetAllNotes returns every stored note in insertion order.
func (r *Repository) GetAllNotes() ([]entities.Note, error) {
	return r.load()
}

// NotesForVerse returns notes matching the book and chapter. When verse is
// non-zero only notes for that exact verse are returned; otherwise every note
// of the chapter matches, including chapter-level notes.
func (r *Repository) NotesForVerse(book string, chapter, verse int) ([]entities.Note, error) {
	all, err := r.load()
	if err != nil {
		return nil, err
	}

	matched := make([]entities.Note, 0)
	for _, n := range all {
		if n.BookName != book || n.Chapter != chapter {
			continue
		}
		if verse != 0 && n.Verse != verse {
			continue
		}
		matched = append(matched, n)
	}
	return matched, nil
}

// SearchNotes returns notes whose title, content or any tag contains the
// query, case-insensitively.
func (r *Repository) SearchNotes(query string) ([]entities.Note, error) {
	all, err := r.load()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	matched := make([]entities.Note, 0)
	for _, n := range all {
		if noteMatches(n, q) {
			matched = append(matched, n)
		}
	}
	return matched, nil
}

func noteMatches(n entities.Note, q string) bool {
	if strings.Contains(strings.ToLower(n.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(n.Content), q) {
		return true
	}
	for _, tag := range n.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func (r *Repository) load() ([]entities.Note, error) {
	blob, err := r.db.ReadCollection(entities.CollectionNotes)
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return []entities.Note{}, nil
	}

	var all []entities.Note
	if err := json.Unmarshal(blob, &all); err != nil {
		return nil, fmt.Errorf("decode notes collection: %w", err)
	}
	return all, nil
}

func (r *Repository) save(all []entities.Note) error {
	blob, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("encode notes collection: %w", err)
	}
	return r.db.WriteCollection(entities.CollectionNotes, blob)
}
