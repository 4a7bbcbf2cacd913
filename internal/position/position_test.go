package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_EmptyUntilFirstRecord(t *testing.T) {
	tracker := NewTracker()

	_, ok := tracker.Current()
	assert.False(t, ok)
}

func TestTracker_RecordAndCurrent(t *testing.T) {
	tracker := NewTracker()

	tracker.Record("Psalms", 23, 1, "The Lord is my shepherd...")

	pos, ok := tracker.Current()
	require.True(t, ok)
	assert.Equal(t, "Psalms", pos.Book)
	assert.Equal(t, 23, pos.Chapter)
	assert.Equal(t, 1, pos.Verse)
	assert.Equal(t, "The Lord is my shepherd...", pos.Text)
	assert.Equal(t, "Psalms 23:1", pos.Reference)
	assert.False(t, pos.Timestamp.IsZero())
}

func TestTracker_RecordOverwrites(t *testing.T) {
	tracker := NewTracker()

	tracker.Record("Psalms", 23, 1, "The Lord is my shepherd...")
	tracker.Record("John", 3, 16, "For God so loved the world...")

	pos, ok := tracker.Current()
	require.True(t, ok)
	assert.Equal(t, "John 3:16", pos.Reference)
	assert.Equal(t, "For God so loved the world...", pos.Text)
}
