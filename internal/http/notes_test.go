package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"versekeeper/internal/database"
	"versekeeper/internal/database/notes"
	"versekeeper/internal/entities"
)

func setupNotesTest(t *testing.T) (*gin.Engine, *notes.Repository, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_notes_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	store := notes.NewRepository(db)
	controller := NewNotesController(store)

	router := gin.New()
	router.GET("/api/notes", controller.ListNotes)
	router.POST("/api/notes", controller.CreateNote)
	router.PATCH("/api/notes/:id", controller.UpdateNote)
	router.DELETE("/api/notes/:id", controller.DeleteNote)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return router, store, cleanup
}

func TestNotesController_CreateNote(t *testing.T) {
	t.Run("creates a note for a verse", func(t *testing.T) {
		router, store, cleanup := setupNotesTest(t)
		defer cleanup()

		body := `{"title": "Promise", "content": "For God so loved the world", "bookName": "John", "chapter": 3, "verse": 16, "tags": ["love"]}`
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/notes", strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var created entities.Note
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "Promise", created.Title)
		assert.Equal(t, "John", created.BookName)
		assert.Equal(t, 16, created.Verse)
		assert.Equal(t, []string{"love"}, created.Tags)

		all, err := store.GetAllNotes()
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("creates a chapter-level note when verse is omitted", func(t *testing.T) {
		router, _, cleanup := setupNotesTest(t)
		defer cleanup()

		body := `{"title": "Chapter summary", "content": "Creation", "bookName": "Genesis", "chapter": 1}`
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/notes", strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var created entities.Note
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, 0, created.Verse)
	})

	t.Run("rejects missing title", func(t *testing.T) {
		router, _, cleanup := setupNotesTest(t)
		defer cleanup()

		body := `{"content": "text", "bookName": "Genesis", "chapter": 1}`
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/notes", strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects missing reference", func(t *testing.T) {
		router, _, cleanup := setupNotesTest(t)
		defer cleanup()

		body := `{"title": "Promise", "content": "text"}`
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/notes", strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestNotesController_UpdateNote(t *testing.T) {
	t.Run("merges partial update", func(t *testing.T) {
		router, store, cleanup := setupNotesTest(t)
		defer cleanup()

		created, err := store.CreateNote(entities.Note{
			Title:    "Old title",
			Content:  "Old content",
			BookName: "John",
			Chapter:  3,
			Verse:    16,
		})
		require.NoError(t, err)

		body := `{"title": "New title"}`
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PATCH", "/api/notes/"+created.ID, strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var updated entities.Note
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.Equal(t, "New title", updated.Title)
		assert.Equal(t, "Old content", updated.Content)
	})

	t.Run("returns 404 for unknown id", func(t *testing.T) {
		router, _, cleanup := setupNotesTest(t)
		defer cleanup()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PATCH", "/api/notes/missing", strings.NewReader(`{"title": "x"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestNotesController_DeleteNote(t *testing.T) {
	t.Run("reports whether anything was deleted", func(t *testing.T) {
		router, store, cleanup := setupNotesTest(t)
		defer cleanup()

		created, err := store.CreateNote(entities.Note{
			Title:    "To delete",
			Content:  "text",
			BookName: "John",
			Chapter:  3,
			Verse:    16,
		})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/notes/"+created.ID, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"deleted": true}`, w.Body.String())

		// Deleting again is not an error.
		w = httptest.NewRecorder()
		req, _ = http.NewRequest("DELETE", "/api/notes/"+created.ID, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"deleted": false}`, w.Body.String())
	})
}

func TestNotesController_ListNotes(t *testing.T) {
	seed := func(t *testing.T, store *notes.Repository) {
		t.Helper()
		for _, n := range []entities.Note{
			{Title: "Shepherd psalm", Content: "Comfort in trial", BookName: "Psalms", Chapter: 23, Verse: 1, Tags: []string{"comfort"}},
			{Title: "Creation", Content: "In the beginning", BookName: "Genesis", Chapter: 1, Verse: 1},
			{Title: "Genesis overview", Content: "Whole chapter", BookName: "Genesis", Chapter: 1},
		} {
			_, err := store.CreateNote(n)
			require.NoError(t, err)
		}
	}

	t.Run("returns all notes", func(t *testing.T) {
		router, store, cleanup := setupNotesTest(t)
		defer cleanup()
		seed(t, store)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/notes", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Notes []entities.Note `json:"notes"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response.Notes, 3)
	})

	t.Run("filters by verse reference", func(t *testing.T) {
		router, store, cleanup := setupNotesTest(t)
		defer cleanup()
		seed(t, store)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/notes?book=Genesis&chapter=1&verse=1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Notes []entities.Note `json:"notes"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Notes, 1)
		assert.Equal(t, "Creation", response.Notes[0].Title)
	})

	t.Run("filters by chapter when verse is omitted", func(t *testing.T) {
		router, store, cleanup := setupNotesTest(t)
		defer cleanup()
		seed(t, store)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/notes?book=Genesis&chapter=1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Notes []entities.Note `json:"notes"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response.Notes, 2)
	})

	t.Run("searches by text", func(t *testing.T) {
		router, store, cleanup := setupNotesTest(t)
		defer cleanup()
		seed(t, store)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/notes?q=comfort", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Notes []entities.Note `json:"notes"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Notes, 1)
		assert.Equal(t, "Shepherd psalm", response.Notes[0].Title)
	})
}
