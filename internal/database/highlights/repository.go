// Package highlights provides database operations for verse highlight
// management and the highlight color palette.
//
// This package implements the HighlightsStore interface defined in
// internal/http/highlights.go.
package highlights

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"versekeeper/internal/database"
	"versekeeper/internal/entities"
)

// ErrUnknownColor is returned when a highlight references a color id that is
// not part of the persisted palette.
var ErrUnknownColor = errors.New("unknown highlight color")

// DefaultColors is the palette seeded on first start.
var DefaultColors = []entities.HighlightColor{
	{ID: "yellow", Name: "Yellow", Color: "#FEF3C7"},
	{ID: "green", Name: "Green", Color: "#D1FAE5"},
	{ID: "blue", Name: "Blue", Color: "#DBEAFE"},
	{ID: "pink", Name: "Pink", Color: "#FCE7F3"},
	{ID: "purple", Name: "Purple", Color: "#E9D5FF"},
}

// Repository handles all highlight operations against the highlights and
// highlight_colors collections.
type Repository struct {
	db *database.Database
}

// NewRepository creates a new highlights repository.
func NewRepository(db *database.Database) *Repository {
	return &Repository{db: db}
}

// SetHighlight highlights the verse with the given palette color. Any
// existing highlight for the exact verse is replaced; a verse never carries
// two highlights.
func (r *Repository) SetHighlight(book string, chapter, verse int, colorID string) (*entities.Highlight, error) {
	colors, err := r.GetHighlightColors()
	if err != nil {
		return nil, err
	}
	if !colorExists(colors, colorID) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColor, colorID)
	}

	all, err := r.load()
	if err != nil {
		return nil, err
	}

	filtered := all[:0:0]
	for _, h := range all {
		if !(h.BookName == book && h.Chapter == chapter && h.Verse == verse) {
			filtered = append(filtered, h)
		}
	}

	highlight := entities.Highlight{
		ID:        uuid.NewString(),
		BookName:  book,
		Chapter:   chapter,
		Verse:     verse,
		ColorID:   colorID,
		CreatedAt: time.Now(),
	}
	filtered = append(filtered, highlight)

	if err := r.save(filtered); err != nil {
		return nil, err
	}
	return &highlight, nil
}

// RemoveHighlight removes the highlight of the exact verse. Returns false
// when no highlight existed.
func (r *Repository) RemoveHighlight(book string, chapter, verse int) (bool, error) {
	all, err := r.load()
	if err != nil {
		return false, err
	}

	filtered := all[:0:0]
	for _, h := range all {
		if !(h.BookName == book && h.Chapter == chapter && h.Verse == verse) {
			filtered = append(filtered, h)
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

// HighlightForVerse returns the highlight of the exact verse, or nil when
// the verse is not highlighted.
func (r *Repository) HighlightForVerse(book string, chapter, verse int) (*entities.Highlight, error) {
	all, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, h := range all {
		if h.BookName == book && h.Chapter == chapter && h.Verse == verse {
			highlight := h
			return &highlight, nil
		}
	}
	return nil, nil
}

// GetAllHighlights returns every stored highlight in insertion order.
func (r *Repository) GetAllHighlights() ([]entities.Highlight, error) {
	return r.load()
}

// GetHighlightColors returns the persisted palette, or the default palette
// when none has ever been persisted.
func (r *Repository) GetHighlightColors() ([]entities.HighlightColor, error) {
	blob, err := r.db.ReadCollection(entities.CollectionHighlightColors)
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return DefaultColors, nil
	}

	var colors []entities.HighlightColor
	if err := json.Unmarshal(blob, &colors); err != nil {
		return nil, fmt.Errorf("decode highlight colors: %w", err)
	}
	return colors, nil
}

// EnsureDefaultColors persists the default palette if no palette has ever
// been stored. Runs once at startup; an already-seeded palette is left alone.
func (r *Repository) EnsureDefaultColors() error {
	seeded, err := r.db.HasCollection(entities.CollectionHighlightColors)
	if err != nil {
		return err
	}
	if seeded {
		return nil
	}

	blob, err := json.Marshal(DefaultColors)
	if err != nil {
		return fmt.Errorf("encode highlight colors: %w", err)
	}
	if err := r.db.WriteCollection(entities.CollectionHighlightColors, blob); err != nil {
		return err
	}
	log.Printf("Seeded default highlight palette (%d colors)", len(DefaultColors))
	return nil
}

func colorExists(colors []entities.HighlightColor, id string) bool {
	for _, c := range colors {
		if c.ID == id {
			return true
		}
	}
	return false
}

func (r *Repository) load() ([]entities.Highlight, error) {
	blob, err := r.db.ReadCollection(entities.CollectionHighlights)
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return []entities.Highlight{}, nil
	}

	var all []entities.Highlight
	if err := json.Unmarshal(blob, &all); err != nil {
		return nil, fmt.Errorf("decode highlights collection: %w", err)
	}
	return all, nil
}

func (r *Repository) save(all []entities.Highlight) error {
	blob, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("encode highlights collection: %w", err)
	}
	return r.db.WriteCollection(entities.CollectionHighlights, blob)
}
