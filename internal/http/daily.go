package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"versekeeper/internal/corpus"
)

// DailyVerseProvider serves the cached verse of the day.
type DailyVerseProvider interface {
	Current() corpus.VersePick
}

type DailyVerseController struct {
	provider DailyVerseProvider
}

func NewDailyVerseController(provider DailyVerseProvider) *DailyVerseController {
	return &DailyVerseController{provider: provider}
}

// Today returns the verse of the day.
// GET /api/daily-verse
func (dc *DailyVerseController) Today(c *gin.Context) {
	c.JSON(http.StatusOK, dc.provider.Current())
}
