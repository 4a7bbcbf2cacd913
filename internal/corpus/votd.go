package corpus

import (
	"math"
	"time"
)

// VersePick is a fully resolved verse selection, shaped like the reading
// position record so clients can jump straight to it.
type VersePick struct {
	Book      string `json:"book"`
	Chapter   int    `json:"chapter"`
	Verse     int    `json:"verse"`
	Text      string `json:"text"`
	Reference string `json:"reference"`
}

// VerseOfTheDay picks a deterministic verse for the given date. The seed is
// the date as YYYYMMDD, so every client sees the same verse on the same day
// and a new one after midnight.
func (c *Corpus) VerseOfTheDay(date time.Time) VersePick {
	seed := date.Year()*10000 + int(date.Month())*100 + date.Day()

	book := c.books[pickIndex(seed, len(c.books))]
	chapter := book.Chapters[pickIndex(seed+1, len(book.Chapters))]
	verse := chapter.Verses[pickIndex(seed+2, len(chapter.Verses))]

	return VersePick{
		Book:      book.Name,
		Chapter:   chapter.Number,
		Verse:     verse.Number,
		Text:      verse.Text,
		Reference: FormatReference(book.Name, chapter.Number, verse.Number),
	}
}

// pickIndex maps a seed to [0, n) via the fractional part of sin(seed)*10000,
// a cheap seeded pseudo-random that needs no rand.Source state.
func pickIndex(seed, n int) int {
	x := math.Sin(float64(seed)) * 10000
	frac := x - math.Floor(x)
	idx := int(frac * float64(n))
	if idx >= n {
		idx = n - 1
	}
	return idx
}
