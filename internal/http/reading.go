package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"versekeeper/internal/corpus"
	"versekeeper/internal/position"
)

// ReadingController serves the "continue reading" position.
type ReadingController struct {
	corpus  *corpus.Corpus
	tracker *position.Tracker
}

func NewReadingController(c *corpus.Corpus, tracker *position.Tracker) *ReadingController {
	return &ReadingController{corpus: c, tracker: tracker}
}

// CurrentPosition returns the most-recently-read verse, or 404 before the
// first navigation.
// GET /api/reading-position
func (rc *ReadingController) CurrentPosition(c *gin.Context) {
	pos, ok := rc.tracker.Current()
	if !ok {
		respondNotFound(c, "reading position")
		return
	}
	c.JSON(http.StatusOK, pos)
}

type recordPositionRequest struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
}

// RecordPosition explicitly records a verse as the reading position,
// resolving its text from the corpus. Reading a verse through the bible
// endpoints records the position implicitly; this endpoint is for clients
// that navigate without fetching.
// PUT /api/reading-position
func (rc *ReadingController) RecordPosition(c *gin.Context) {
	var req recordPositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	text, found := rc.corpus.VerseText(req.Book, req.Chapter, req.Verse)
	if !found {
		respondNotFound(c, "verse")
		return
	}

	rc.tracker.Record(req.Book, req.Chapter, req.Verse, text)
	pos, _ := rc.tracker.Current()
	c.JSON(http.StatusOK, pos)
}
