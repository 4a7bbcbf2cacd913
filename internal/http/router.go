package http

import (
	"github.com/gin-gonic/gin"

	"versekeeper/internal/chat"
	"versekeeper/internal/corpus"
	"versekeeper/internal/database"
	"versekeeper/internal/position"
)

// RouterConfig contains all dependencies needed to create the HTTP router.
// This replaces a long parameter list in NewRouter for better testability.
type RouterConfig struct {
	Corpus   *corpus.Corpus
	Database *database.Database

	NotesStore      NotesStore
	BookmarksStore  BookmarksStore
	HighlightsStore HighlightsStore

	Tracker      *position.Tracker
	DailyVerse   DailyVerseProvider
	Conversation *chat.Conversation

	Version string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Scripture browsing and navigation
	bible := NewBibleController(cfg.Corpus, cfg.NotesStore, cfg.BookmarksStore, cfg.HighlightsStore, cfg.Tracker)
	router.GET("/api/books", bible.ListBooks)
	router.GET("/api/books/:book/chapters", bible.ListChapters)
	router.GET("/api/books/:book/chapters/:chapter/verses", bible.ListVerses)
	router.GET("/api/books/:book/chapters/:chapter/verses/:verse", bible.ReadVerse)
	router.GET("/api/navigation/next", bible.NextChapter)
	router.GET("/api/navigation/prev", bible.PrevChapter)

	// Notes
	if cfg.NotesStore != nil {
		notesController := NewNotesController(cfg.NotesStore)
		router.GET("/api/notes", notesController.ListNotes)
		router.POST("/api/notes", notesController.CreateNote)
		router.PATCH("/api/notes/:id", notesController.UpdateNote)
		router.DELETE("/api/notes/:id", notesController.DeleteNote)
	}

	// Bookmarks
	if cfg.BookmarksStore != nil {
		bookmarksController := NewBookmarksController(cfg.BookmarksStore)
		router.GET("/api/bookmarks", bookmarksController.ListBookmarks)
		router.GET("/api/bookmarks/check", bookmarksController.CheckBookmark)
		router.POST("/api/bookmarks", bookmarksController.AddBookmark)
		router.DELETE("/api/bookmarks/:id", bookmarksController.RemoveBookmark)
	}

	// Highlights
	if cfg.HighlightsStore != nil {
		highlightsController := NewHighlightsController(cfg.HighlightsStore)
		router.GET("/api/highlights", highlightsController.ListHighlights)
		router.PUT("/api/highlights", highlightsController.SetHighlight)
		router.DELETE("/api/highlights", highlightsController.RemoveHighlight)
		router.GET("/api/highlight-colors", highlightsController.ListColors)
	}

	// Reading position
	readingController := NewReadingController(cfg.Corpus, cfg.Tracker)
	router.GET("/api/reading-position", readingController.CurrentPosition)
	router.PUT("/api/reading-position", readingController.RecordPosition)

	// Verse of the day
	if cfg.DailyVerse != nil {
		dailyController := NewDailyVerseController(cfg.DailyVerse)
		router.GET("/api/daily-verse", dailyController.Today)
	}

	// Assistant chat
	if cfg.Conversation != nil {
		chatController := NewChatController(cfg.Conversation)
		router.POST("/api/chat", chatController.SendPrompt)
		router.GET("/api/chat/messages", chatController.History)
	}

	return router
}
