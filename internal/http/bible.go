package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"versekeeper/internal/corpus"
	"versekeeper/internal/entities"
	"versekeeper/internal/position"
)

// BibleController serves corpus navigation and the merged per-verse view.
type BibleController struct {
	corpus     *corpus.Corpus
	notes      NotesStore
	bookmarks  BookmarksStore
	highlights HighlightsStore
	tracker    *position.Tracker
}

func NewBibleController(c *corpus.Corpus, notes NotesStore, bookmarks BookmarksStore, highlights HighlightsStore, tracker *position.Tracker) *BibleController {
	return &BibleController{
		corpus:     c,
		notes:      notes,
		bookmarks:  bookmarks,
		highlights: highlights,
		tracker:    tracker,
	}
}

// ListBooks returns all book names in corpus order.
// GET /api/books
func (bc *BibleController) ListBooks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"books": bc.corpus.Books()})
}

// ListChapters returns the chapter numbers of a book.
// GET /api/books/:book/chapters
func (bc *BibleController) ListChapters(c *gin.Context) {
	book := c.Param("book")
	if !bc.corpus.HasBook(book) {
		respondNotFound(c, "book")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"book":     book,
		"chapters": bc.corpus.Chapters(book),
	})
}

// ListVerses returns all verses of a chapter.
// GET /api/books/:book/chapters/:chapter/verses
func (bc *BibleController) ListVerses(c *gin.Context) {
	book := c.Param("book")
	chapter, ok := parseIntParam(c, "chapter")
	if !ok {
		return
	}

	verses := bc.corpus.Verses(book, chapter)
	if len(verses) == 0 {
		respondNotFound(c, "chapter")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"book":    book,
		"chapter": chapter,
		"verses":  verses,
	})
}

// VerseView is the merged annotation state of a single verse.
type VerseView struct {
	Book       string              `json:"book"`
	Chapter    int                 `json:"chapter"`
	Verse      int                 `json:"verse"`
	Text       string              `json:"text"`
	Reference  string              `json:"reference"`
	Notes      []entities.Note     `json:"notes"`
	Bookmarked bool                `json:"bookmarked"`
	Highlight  *entities.Highlight `json:"highlight,omitempty"`
}

// ReadVerse resolves a verse, merges its annotation state from the three
// collections and records the reading position.
// GET /api/books/:book/chapters/:chapter/verses/:verse
func (bc *BibleController) ReadVerse(c *gin.Context) {
	book := c.Param("book")
	chapter, ok := parseIntParam(c, "chapter")
	if !ok {
		return
	}
	verse, ok := parseIntParam(c, "verse")
	if !ok {
		return
	}

	text, found := bc.corpus.VerseText(book, chapter, verse)
	if !found {
		respondNotFound(c, "verse")
		return
	}

	verseNotes, err := bc.notes.NotesForVerse(book, chapter, verse)
	if err != nil {
		respondInternalError(c, err, "read verse notes")
		return
	}
	bookmarked, err := bc.bookmarks.IsBookmarked(book, chapter, verse)
	if err != nil {
		respondInternalError(c, err, "read verse bookmark")
		return
	}
	highlight, err := bc.highlights.HighlightForVerse(book, chapter, verse)
	if err != nil {
		respondInternalError(c, err, "read verse highlight")
		return
	}

	bc.tracker.Record(book, chapter, verse, text)

	c.JSON(http.StatusOK, VerseView{
		Book:       book,
		Chapter:    chapter,
		Verse:      verse,
		Text:       text,
		Reference:  corpus.FormatReference(book, chapter, verse),
		Notes:      verseNotes,
		Bookmarked: bookmarked,
		Highlight:  highlight,
	})
}

// NextChapter resolves chapter-forward navigation with book rollover.
// GET /api/navigation/next?book=...&chapter=...
func (bc *BibleController) NextChapter(c *gin.Context) {
	bc.navigate(c, bc.corpus.NextChapter)
}

// PrevChapter resolves chapter-backward navigation with book rollover.
// GET /api/navigation/prev?book=...&chapter=...
func (bc *BibleController) PrevChapter(c *gin.Context) {
	bc.navigate(c, bc.corpus.PrevChapter)
}

func (bc *BibleController) navigate(c *gin.Context, step func(string, int) (string, int)) {
	book := c.Query("book")
	if book == "" {
		respondBadRequest(c, "book is required")
		return
	}
	chapter, ok := parseIntQuery(c, "chapter")
	if !ok {
		return
	}
	if !bc.corpus.HasBook(book) {
		respondNotFound(c, "book")
		return
	}

	nextBook, nextChapter := step(book, chapter)
	c.JSON(http.StatusOK, gin.H{
		"book":    nextBook,
		"chapter": nextChapter,
	})
}
