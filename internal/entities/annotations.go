package entities

import (
	"time"
)

// JSON field names follow the persisted layout of the collections: camelCase,
// one serialized array per collection. Changing a tag is a storage format
// change, not a cosmetic one.

// Note is a user note attached to a verse, or to a whole chapter when Verse
// is zero.
type Note struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	BookName string   `json:"bookName"`
	Chapter  int      `json:"chapter"`
	Verse    int      `json:"verse,omitempty"` // 0 = whole chapter
	Tags     []string `json:"tags,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Bookmark marks a single verse. At most one bookmark may exist per
// (bookName, chapter, verse); immutable once created.
type Bookmark struct {
	ID       string `json:"id"`
	BookName string `json:"bookName"`
	Chapter  int    `json:"chapter"`
	Verse    int    `json:"verse"`
	Title    string `json:"title,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// Highlight colors a single verse with a palette entry. At most one highlight
// may exist per verse; setting a new one replaces the old.
type Highlight struct {
	ID       string `json:"id"`
	BookName string `json:"bookName"`
	Chapter  int    `json:"chapter"`
	Verse    int    `json:"verse"`
	ColorID  string `json:"colorId"`

	CreatedAt time.Time `json:"createdAt"`
}

// HighlightColor is one entry of the highlight palette.
type HighlightColor struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"` // hex value, e.g. "#FEF3C7"
}

// Collection is the database row each annotation collection serializes into:
// one JSON blob per collection under a fixed key. Mutations are
// whole-collection read-modify-write, which keeps every collection an
// independent unit on disk.
type Collection struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Collection) TableName() string {
	return "collections"
}

// Persisted collection keys.
const (
	CollectionNotes           = "notes"
	CollectionBookmarks       = "bookmarks"
	CollectionHighlights      = "highlights"
	CollectionHighlightColors = "highlight_colors"
)
