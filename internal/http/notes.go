package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"versekeeper/internal/database/notes"
	"versekeeper/internal/entities"
)

// NotesStore defines database operations for note management.
type NotesStore interface {
	CreateNote(note entities.Note) (*entities.Note, error)
	UpdateNote(id string, update notes.NoteUpdate) (*entities.Note, error)
	DeleteNote(id string) (bool, error)
	GetAllNotes() ([]entities.Note, error)
	NotesForVerse(book string, chapter, verse int) ([]entities.Note, error)
	SearchNotes(query string) ([]entities.Note, error)
}

type NotesController struct {
	store NotesStore
}

func NewNotesController(store NotesStore) *NotesController {
	return &NotesController{store: store}
}

type createNoteRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	BookName string   `json:"bookName"`
	Chapter  int      `json:"chapter"`
	Verse    int      `json:"verse"`
	Tags     []string `json:"tags"`
}

// CreateNote creates a note for a verse, or for a whole chapter when verse
// is omitted.
// POST /api/notes
func (nc *NotesController) CreateNote(c *gin.Context) {
	var req createNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if req.Title == "" || req.Content == "" {
		respondBadRequest(c, "title and content are required")
		return
	}
	if req.BookName == "" || req.Chapter < 1 {
		respondBadRequest(c, "bookName and chapter are required")
		return
	}

	note, err := nc.store.CreateNote(entities.Note{
		Title:    req.Title,
		Content:  req.Content,
		BookName: req.BookName,
		Chapter:  req.Chapter,
		Verse:    req.Verse,
		Tags:     req.Tags,
	})
	if err != nil {
		respondInternalError(c, err, "create note")
		return
	}
	respondCreated(c, note)
}

type updateNoteRequest struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	BookName *string   `json:"bookName"`
	Chapter  *int      `json:"chapter"`
	Verse    *int      `json:"verse"`
	Tags     *[]string `json:"tags"`
}

// UpdateNote merges a partial update into an existing note.
// PATCH /api/notes/:id
func (nc *NotesController) UpdateNote(c *gin.Context) {
	var req updateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	note, err := nc.store.UpdateNote(c.Param("id"), notes.NoteUpdate{
		Title:    req.Title,
		Content:  req.Content,
		BookName: req.BookName,
		Chapter:  req.Chapter,
		Verse:    req.Verse,
		Tags:     req.Tags,
	})
	if err != nil {
		respondInternalError(c, err, "update note")
		return
	}
	if note == nil {
		respondNotFound(c, "note")
		return
	}
	c.JSON(http.StatusOK, note)
}

// DeleteNote removes a note by id. Deleting an absent id is not an error;
// the response reports whether anything was removed.
// DELETE /api/notes/:id
func (nc *NotesController) DeleteNote(c *gin.Context) {
	deleted, err := nc.store.DeleteNote(c.Param("id"))
	if err != nil {
		respondInternalError(c, err, "delete note")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// ListNotes returns notes. With ?q= it searches title, content and tags;
// with ?book=&chapter=[&verse=] it filters by reference; otherwise it
// returns everything.
// GET /api/notes
func (nc *NotesController) ListNotes(c *gin.Context) {
	if query := c.Query("q"); query != "" {
		found, err := nc.store.SearchNotes(query)
		if err != nil {
			respondInternalError(c, err, "search notes")
			return
		}
		c.JSON(http.StatusOK, gin.H{"notes": found})
		return
	}

	if book := c.Query("book"); book != "" {
		chapter, ok := parseIntQuery(c, "chapter")
		if !ok {
			return
		}
		verse := 0
		if c.Query("verse") != "" {
			verse, ok = parseIntQuery(c, "verse")
			if !ok {
				return
			}
		}
		found, err := nc.store.NotesForVerse(book, chapter, verse)
		if err != nil {
			respondInternalError(c, err, "query notes")
			return
		}
		c.JSON(http.StatusOK, gin.H{"notes": found})
		return
	}

	all, err := nc.store.GetAllNotes()
	if err != nil {
		respondInternalError(c, err, "list notes")
		return
	}
	c.JSON(http.StatusOK, gin.H{"notes": all})
}
