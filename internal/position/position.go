// Package position tracks the single most-recently-read verse for "continue
// reading" affordances. One Tracker instance is owned by the application
// composition and handed to whoever needs it; it is a single mutable slot,
// not a log.
package position

import (
	"sync"
	"time"

	"versekeeper/internal/corpus"
)

// Position is the most-recently-read verse with its resolved text.
type Position struct {
	Book      string    `json:"book"`
	Chapter   int       `json:"chapter"`
	Verse     int       `json:"verse"`
	Text      string    `json:"text"`
	Reference string    `json:"reference"`
	Timestamp time.Time `json:"timestamp"`
}

// Tracker is a mutex-guarded single slot. Every Record overwrites the
// previous position; nothing accumulates.
type Tracker struct {
	mu      sync.RWMutex
	current *Position
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Record overwrites the stored position with the given verse.
func (t *Tracker) Record(book string, chapter, verse int, text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = &Position{
		Book:      book,
		Chapter:   chapter,
		Verse:     verse,
		Text:      text,
		Reference: corpus.FormatReference(book, chapter, verse),
		Timestamp: time.Now(),
	}
}

// Current returns the stored position. The second return value is false
// until the first Record.
func (t *Tracker) Current() (Position, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.current == nil {
		return Position{}, false
	}
	return *t.current, true
}
