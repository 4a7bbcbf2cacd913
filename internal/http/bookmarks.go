package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"versekeeper/internal/database/bookmarks"
	"versekeeper/internal/entities"
)

// BookmarksStore defines database operations for bookmark management.
type BookmarksStore interface {
	AddBookmark(bookmark entities.Bookmark) (*entities.Bookmark, error)
	RemoveBookmark(id string) (bool, error)
	GetAllBookmarks() ([]entities.Bookmark, error)
	IsBookmarked(book string, chapter, verse int) (bool, error)
}

type BookmarksController struct {
	store BookmarksStore
}

func NewBookmarksController(store BookmarksStore) *BookmarksController {
	return &BookmarksController{store: store}
}

type addBookmarkRequest struct {
	BookName string `json:"bookName"`
	Chapter  int    `json:"chapter"`
	Verse    int    `json:"verse"`
	Title    string `json:"title"`
}

// AddBookmark bookmarks a verse. An already-bookmarked verse is a 409; the
// collection is unchanged in that case.
// POST /api/bookmarks
func (bc *BookmarksController) AddBookmark(c *gin.Context) {
	var req addBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if req.BookName == "" || req.Chapter < 1 || req.Verse < 1 {
		respondBadRequest(c, "bookName, chapter and verse are required")
		return
	}

	bookmark, err := bc.store.AddBookmark(entities.Bookmark{
		BookName: req.BookName,
		Chapter:  req.Chapter,
		Verse:    req.Verse,
		Title:    req.Title,
	})
	if errors.Is(err, bookmarks.ErrDuplicate) {
		respondConflict(c, err.Error())
		return
	}
	if err != nil {
		respondInternalError(c, err, "add bookmark")
		return
	}
	respondCreated(c, bookmark)
}

// RemoveBookmark removes a bookmark by id. Removing an absent id is not an
// error; the response reports whether anything was removed.
// DELETE /api/bookmarks/:id
func (bc *BookmarksController) RemoveBookmark(c *gin.Context) {
	removed, err := bc.store.RemoveBookmark(c.Param("id"))
	if err != nil {
		respondInternalError(c, err, "remove bookmark")
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// ListBookmarks returns every bookmark.
// GET /api/bookmarks
func (bc *BookmarksController) ListBookmarks(c *gin.Context) {
	all, err := bc.store.GetAllBookmarks()
	if err != nil {
		respondInternalError(c, err, "list bookmarks")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarks": all})
}

// CheckBookmark reports whether a verse is bookmarked.
// GET /api/bookmarks/check?book=...&chapter=...&verse=...
func (bc *BookmarksController) CheckBookmark(c *gin.Context) {
	book := c.Query("book")
	if book == "" {
		respondBadRequest(c, "book is required")
		return
	}
	chapter, ok := parseIntQuery(c, "chapter")
	if !ok {
		return
	}
	verse, ok := parseIntQuery(c, "verse")
	if !ok {
		return
	}

	bookmarked, err := bc.store.IsBookmarked(book, chapter, verse)
	if err != nil {
		respondInternalError(c, err, "check bookmark")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarked": bookmarked})
}
