package highlights

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"versekeeper/internal/database"
	"versekeeper/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_highlights_" + t.Name() + ".db"

	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_SetHighlight(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	highlight, err := repo.SetHighlight("John", 3, 16, "yellow")
	require.NoError(t, err)

	assert.NotEmpty(t, highlight.ID)
	assert.Equal(t, "yellow", highlight.ColorID)

	found, err := repo.HighlightForVerse("John", 3, 16)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, highlight.ID, found.ID)
}

func TestRepository_SetHighlight_ReplacesExisting(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.SetHighlight("John", 3, 16, "yellow")
	require.NoError(t, err)
	_, err = repo.SetHighlight("John", 3, 16, "green")
	require.NoError(t, err)

	all, err := repo.GetAllHighlights()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "green", all[0].ColorID)
}

func TestRepository_SetHighlight_UnknownColor(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.SetHighlight("John", 3, 16, "chartreuse")
	assert.ErrorIs(t, err, ErrUnknownColor)

	all, err := repo.GetAllHighlights()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRepository_RemoveHighlight(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.SetHighlight("John", 3, 16, "blue")
	require.NoError(t, err)

	removed, err := repo.RemoveHighlight("John", 3, 16)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.RemoveHighlight("John", 3, 16)
	require.NoError(t, err)
	assert.False(t, removed)

	found, err := repo.HighlightForVerse("John", 3, 16)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestRepository_GetHighlightColors_DefaultPalette(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	colors, err := repo.GetHighlightColors()
	require.NoError(t, err)
	require.Len(t, colors, 5)
	assert.Equal(t, "yellow", colors[0].ID)
	assert.Equal(t, "#FEF3C7", colors[0].Color)
}

func TestRepository_EnsureDefaultColors_SeedsOnce(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.EnsureDefaultColors())
	require.NoError(t, repo.EnsureDefaultColors())

	colors, err := repo.GetHighlightColors()
	require.NoError(t, err)
	assert.Len(t, colors, 5)
}

func TestRepository_EnsureDefaultColors_KeepsExistingPalette(t *testing.T) {
	dbPath := "./test_highlights_keep_palette.db"
	defer os.Remove(dbPath)

	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	// A previously persisted custom palette must survive re-seeding.
	require.NoError(t, db.WriteCollection(entities.CollectionHighlightColors,
		[]byte(`[{"id":"red","name":"Red","color":"#FECACA"}]`)))

	repo := NewRepository(db)
	require.NoError(t, repo.EnsureDefaultColors())

	colors, err := repo.GetHighlightColors()
	require.NoError(t, err)
	require.Len(t, colors, 1)
	assert.Equal(t, "red", colors[0].ID)
}
