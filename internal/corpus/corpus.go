// Package corpus holds the scripture text: an immutable, ordered structure of
// books, chapters and verses loaded once at startup and never mutated.
package corpus

import (
	"fmt"
)

// Verse is a single numbered verse within a chapter.
type Verse struct {
	Number int    `json:"verse"`
	Text   string `json:"text"`
}

// Chapter is a numbered chapter with its verses in ascending order.
type Chapter struct {
	Number int
	Verses []Verse
}

// Book is a named book with its chapters in ascending order.
type Book struct {
	Name     string
	Chapters []Chapter
}

// Corpus is the full scripture text. Books keep the declaration order of the
// source file; chapters and verses are sorted ascending.
type Corpus struct {
	books  []Book
	byName map[string]int
}

// Books returns all book names in corpus order.
func (c *Corpus) Books() []string {
	names := make([]string, len(c.books))
	for i, b := range c.books {
		names[i] = b.Name
	}
	return names
}

// Chapters returns the chapter numbers of a book in ascending order, or an
// empty slice if the book is unknown.
func (c *Corpus) Chapters(book string) []int {
	idx, ok := c.byName[book]
	if !ok {
		return nil
	}
	numbers := make([]int, len(c.books[idx].Chapters))
	for i, ch := range c.books[idx].Chapters {
		numbers[i] = ch.Number
	}
	return numbers
}

// Verses returns the verses of a chapter in ascending order, or an empty
// slice if the book or chapter is unknown.
func (c *Corpus) Verses(book string, chapter int) []Verse {
	ch := c.chapter(book, chapter)
	if ch == nil {
		return nil
	}
	return ch.Verses
}

// VerseText resolves the text of a single verse. The second return value is
// false when the reference does not exist in the corpus.
func (c *Corpus) VerseText(book string, chapter, verse int) (string, bool) {
	ch := c.chapter(book, chapter)
	if ch == nil {
		return "", false
	}
	for _, v := range ch.Verses {
		if v.Number == verse {
			return v.Text, true
		}
	}
	return "", false
}

// HasBook reports whether the corpus contains the named book.
func (c *Corpus) HasBook(book string) bool {
	_, ok := c.byName[book]
	return ok
}

// NextChapter advances one chapter, rolling over to chapter 1 of the next
// book past the last chapter. At the very end of the corpus, or for an
// unknown reference, the input is returned unchanged.
func (c *Corpus) NextChapter(book string, chapter int) (string, int) {
	idx, ok := c.byName[book]
	if !ok {
		return book, chapter
	}
	b := c.books[idx]
	for i, ch := range b.Chapters {
		if ch.Number != chapter {
			continue
		}
		if i+1 < len(b.Chapters) {
			return b.Name, b.Chapters[i+1].Number
		}
		if idx+1 < len(c.books) {
			next := c.books[idx+1]
			return next.Name, next.Chapters[0].Number
		}
		return book, chapter
	}
	return book, chapter
}

// PrevChapter regresses one chapter, rolling over to the last chapter of the
// previous book before chapter 1. At the very start of the corpus, or for an
// unknown reference, the input is returned unchanged.
func (c *Corpus) PrevChapter(book string, chapter int) (string, int) {
	idx, ok := c.byName[book]
	if !ok {
		return book, chapter
	}
	b := c.books[idx]
	for i, ch := range b.Chapters {
		if ch.Number != chapter {
			continue
		}
		if i > 0 {
			return b.Name, b.Chapters[i-1].Number
		}
		if idx > 0 {
			prev := c.books[idx-1]
			return prev.Name, prev.Chapters[len(prev.Chapters)-1].Number
		}
		return book, chapter
	}
	return book, chapter
}

// FormatReference renders the canonical "Book Chapter:Verse" form.
func FormatReference(book string, chapter, verse int) string {
	return fmt.Sprintf("%s %d:%d", book, chapter, verse)
}

func (c *Corpus) chapter(book string, chapter int) *Chapter {
	idx, ok := c.byName[book]
	if !ok {
		return nil
	}
	for i := range c.books[idx].Chapters {
		if c.books[idx].Chapters[i].Number == chapter {
			return &c.books[idx].Chapters[i]
		}
	}
	return nil
}
