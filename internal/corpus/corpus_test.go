package corpus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCorpusJSON = `{
	"Genesis": {
		"1": {"1": "In the beginning God created the heaven and the earth.", "2": "And the earth was without form, and void."},
		"2": {"1": "Thus the heavens and the earth were finished."}
	},
	"Exodus": {
		"1": {"1": "Now these are the names of the children of Israel."}
	},
	"Psalms": {
		"23": {"1": "The LORD is my shepherd; I shall not want."}
	}
}`

func parseTestCorpus(t *testing.T) *Corpus {
	c, err := Parse(strings.NewReader(testCorpusJSON))
	require.NoError(t, err)
	return c
}

func TestParse_BooksKeepDeclarationOrder(t *testing.T) {
	c := parseTestCorpus(t)

	assert.Equal(t, []string{"Genesis", "Exodus", "Psalms"}, c.Books())
}

func TestParse_ChaptersAscending(t *testing.T) {
	c := parseTestCorpus(t)

	assert.Equal(t, []int{1, 2}, c.Chapters("Genesis"))
	assert.Equal(t, []int{23}, c.Chapters("Psalms"))
	assert.Empty(t, c.Chapters("Revelation"))
}

func TestParse_VersesAscending(t *testing.T) {
	c := parseTestCorpus(t)

	verses := c.Verses("Genesis", 1)
	require.Len(t, verses, 2)
	assert.Equal(t, 1, verses[0].Number)
	assert.Equal(t, 2, verses[1].Number)

	assert.Empty(t, c.Verses("Genesis", 99))
	assert.Empty(t, c.Verses("Revelation", 1))
}

func TestVerseText(t *testing.T) {
	c := parseTestCorpus(t)

	text, ok := c.VerseText("Psalms", 23, 1)
	require.True(t, ok)
	assert.Equal(t, "The LORD is my shepherd; I shall not want.", text)

	_, ok = c.VerseText("Psalms", 23, 2)
	assert.False(t, ok)
	_, ok = c.VerseText("Nowhere", 1, 1)
	assert.False(t, ok)
}

func TestNextChapter_RollsOverToNextBook(t *testing.T) {
	c := parseTestCorpus(t)

	book, chapter := c.NextChapter("Genesis", 1)
	assert.Equal(t, "Genesis", book)
	assert.Equal(t, 2, chapter)

	book, chapter = c.NextChapter("Genesis", 2)
	assert.Equal(t, "Exodus", book)
	assert.Equal(t, 1, chapter)
}

func TestNextChapter_NoOpAtCorpusEnd(t *testing.T) {
	c := parseTestCorpus(t)

	book, chapter := c.NextChapter("Psalms", 23)
	assert.Equal(t, "Psalms", book)
	assert.Equal(t, 23, chapter)
}

func TestPrevChapter_RollsOverToPreviousBook(t *testing.T) {
	c := parseTestCorpus(t)

	book, chapter := c.PrevChapter("Exodus", 1)
	assert.Equal(t, "Genesis", book)
	assert.Equal(t, 2, chapter)
}

func TestPrevChapter_NoOpAtCorpusStart(t *testing.T) {
	c := parseTestCorpus(t)

	book, chapter := c.PrevChapter("Genesis", 1)
	assert.Equal(t, "Genesis", book)
	assert.Equal(t, 1, chapter)
}

func TestFormatReference(t *testing.T) {
	assert.Equal(t, "John 3:16", FormatReference("John", 3, 16))
}

func TestParse_RejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty object", `{}`},
		{"root not an object", `[]`},
		{"book without chapters", `{"Genesis": {}}`},
		{"chapter without verses", `{"Genesis": {"1": {}}}`},
		{"non-numeric chapter key", `{"Genesis": {"one": {"1": "text"}}}`},
		{"non-numeric verse key", `{"Genesis": {"1": {"one": "text"}}}`},
		{"zero chapter key", `{"Genesis": {"0": {"1": "text"}}}`},
		{"empty verse text", `{"Genesis": {"1": {"1": ""}}}`},
		{"duplicate book", `{"Genesis": {"1": {"1": "a"}}, "Genesis": {"1": {"1": "b"}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}
