package demo

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"versekeeper/internal/database"
	"versekeeper/internal/database/bookmarks"
	"versekeeper/internal/database/notes"
)

func setupSeedTestDB(t *testing.T) (*database.Database, func()) {
	t.Helper()

	dbPath := "./test_seed_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func TestSeed(t *testing.T) {
	db, cleanup := setupSeedTestDB(t)
	defer cleanup()

	result, err := Seed(db)
	require.NoError(t, err)
	assert.Equal(t, len(sampleNotes), result.Notes)
	assert.Equal(t, len(sampleBookmarks), result.Bookmarks)
	assert.Equal(t, len(sampleHighlights), result.Highlights)

	all, err := notes.NewRepository(db).GetAllNotes()
	require.NoError(t, err)
	assert.Len(t, all, len(sampleNotes))

	bookmarked, err := bookmarks.NewRepository(db).IsBookmarked("John", 3, 16)
	require.NoError(t, err)
	assert.True(t, bookmarked)
}

func TestSeed_TwiceFailsOnDuplicateBookmark(t *testing.T) {
	db, cleanup := setupSeedTestDB(t)
	defer cleanup()

	_, err := Seed(db)
	require.NoError(t, err)

	_, err = Seed(db)
	assert.ErrorIs(t, err, bookmarks.ErrDuplicate)
}
