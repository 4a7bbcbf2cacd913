// Package bookmarks provides database operations for verse bookmark management.
//
// This package implements the BookmarksStore interface defined in internal/http/bookmarks.go.
package bookmarks

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"versekeeper/internal/database"
	"versekeeper/internal/entities"
)

// ErrDuplicate is returned when a bookmark already exists for the exact
// (book, chapter, verse). Bookmarks reject duplicates instead of replacing;
// highlights do the opposite.
var ErrDuplicate = errors.New("bookmark already exists for this verse")

// Repository handles all bookmark operations against the bookmarks collection.
type Repository struct {
	db *database.Database
}

// NewRepository creates a new bookmarks repository.
func NewRepository(db *database.Database) *Repository {
	return &Repository{db: db}
}

// AddBookmark creates a bookmark for the verse. Fails with ErrDuplicate when
// the verse is already bookmarked; the collection is left unchanged in that
// case.
func (r *Repository) AddBookmark(bookmark entities.Bookmark) (*entities.Bookmark, error) {
	all, err := r.load()
	if err != nil {
		return nil, err
	}

	for _, b := range all {
		if b.BookName == bookmark.BookName && b.Chapter == bookmark.Chapter && b.Verse == bookmark.Verse {
			return nil, ErrDuplicate
		}
	}

	bookmark.ID = uuid.NewString()
	bookmark.CreatedAt = time.Now()

	all = append(all, bookmark)
	if err := r.save(all); err != nil {
		return nil, err
	}
	return &bookmark, nil
}

// RemoveBookmark removes a bookmark by id. Returns false when the id was
// absent; a repeated removal is a no-op, not an error.
func (r *Repository) RemoveBookmark(id string) (bool, error) {
	all, err := r.load()
	if err != nil {
		return false, err
	}

	filtered := all[:0:0]
	for _, b := range all {
		if b.ID != id {
			filtered = append(filtered, b)
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

// GetAllBookmarks returns every stored bookmark in insertion order.
func (r *Repository) GetAllBookmarks() ([]entities.Bookmark, error) {
	return r.load()
}

// IsBookmarked reports whether the exact verse has a bookmark.
func (r *Repository) IsBookmarked(book string, chapter, verse int) (bool, error) {
	all, err := r.load()
	if err != nil {
		return false, err
	}
	for _, b := range all {
		if b.BookName == book && b.Chapter == chapter && b.Verse == verse {
			return true, nil
		}
	}
	return false, nil
}

func (r *Repository) load() ([]entities.Bookmark, error) {
	blob, err := r.db.ReadCollection(entities.CollectionBookmarks)
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return []entities.Bookmark{}, nil
	}

	var all []entities.Bookmark
	if err := json.Unmarshal(blob, &all); err != nil {
		return nil, fmt.Errorf("decode bookmarks collection: %w", err)
	}
	return all, nil
}

func (r *Repository) save(all []entities.Bookmark) error {
	blob, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("encode bookmarks collection: %w", err)
	}
	return r.db.WriteCollection(entities.CollectionBookmarks, blob)
}
