package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"versekeeper/internal/database/highlights"
	"versekeeper/internal/entities"
)

// HighlightsStore defines database operations for highlight management.
type HighlightsStore interface {
	SetHighlight(book string, chapter, verse int, colorID string) (*entities.Highlight, error)
	RemoveHighlight(book string, chapter, verse int) (bool, error)
	HighlightForVerse(book string, chapter, verse int) (*entities.Highlight, error)
	GetAllHighlights() ([]entities.Highlight, error)
	GetHighlightColors() ([]entities.HighlightColor, error)
}

type HighlightsController struct {
	store HighlightsStore
}

func NewHighlightsController(store HighlightsStore) *HighlightsController {
	return &HighlightsController{store: store}
}

type setHighlightRequest struct {
	BookName string `json:"bookName"`
	Chapter  int    `json:"chapter"`
	Verse    int    `json:"verse"`
	ColorID  string `json:"colorId"`
}

// SetHighlight highlights a verse, replacing any existing highlight for it.
// PUT /api/highlights
func (hc *HighlightsController) SetHighlight(c *gin.Context) {
	var req setHighlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if req.BookName == "" || req.Chapter < 1 || req.Verse < 1 || req.ColorID == "" {
		respondBadRequest(c, "bookName, chapter, verse and colorId are required")
		return
	}

	highlight, err := hc.store.SetHighlight(req.BookName, req.Chapter, req.Verse, req.ColorID)
	if errors.Is(err, highlights.ErrUnknownColor) {
		respondBadRequest(c, err.Error())
		return
	}
	if err != nil {
		respondInternalError(c, err, "set highlight")
		return
	}
	c.JSON(http.StatusOK, highlight)
}

// RemoveHighlight removes a verse's highlight. Removing a verse without one
// is not an error; the response reports whether anything was removed.
// DELETE /api/highlights?book=...&chapter=...&verse=...
func (hc *HighlightsController) RemoveHighlight(c *gin.Context) {
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

	removed, err := hc.store.RemoveHighlight(book, chapter, verse)
	if err != nil {
		respondInternalError(c, err, "remove highlight")
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// ListHighlights returns every highlight.
// GET /api/highlights
func (hc *HighlightsController) ListHighlights(c *gin.Context) {
	all, err := hc.store.GetAllHighlights()
	if err != nil {
		respondInternalError(c, err, "list highlights")
		return
	}
	c.JSON(http.StatusOK, gin.H{"highlights": all})
}

// ListColors returns the highlight palette.
// GET /api/highlight-colors
func (hc *HighlightsController) ListColors(c *gin.Context) {
	colors, err := hc.store.GetHighlightColors()
	if err != nil {
		respondInternalError(c, err, "list highlight colors")
		return
	}
	c.JSON(http.StatusOK, gin.H{"colors": colors})
}
