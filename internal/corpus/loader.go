package corpus

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
)

// Load reads and validates a corpus file. The source format is the raw
// translation dump: an object of book name -> chapter number -> verse
// number -> text, with chapter and verse numbers as string keys.
func Load(path string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus file: %w", err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse corpus file %s: %w", path, err)
	}
	return c, nil
}

// Parse builds a Corpus from raw JSON. Book order follows the declaration
// order in the input, which a plain map decode would not preserve, so the
// top-level object is walked token by token. Malformed entries (non-numeric
// chapter or verse keys, empty books, chapters or verse texts) are rejected
// here rather than at lookup time.
func Parse(r io.Reader) (*Corpus, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("corpus root must be a JSON object, got %v", tok)
	}

	c := &Corpus{byName: make(map[string]int)}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("read book name: %w", err)
		}
		name, ok := tok.(string)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid book name %v", tok)
		}
		if _, exists := c.byName[name]; exists {
			return nil, fmt.Errorf("duplicate book %q", name)
		}

		var rawChapters map[string]map[string]string
		if err := dec.Decode(&rawChapters); err != nil {
			return nil, fmt.Errorf("book %q: decode chapters: %w", name, err)
		}

		book, err := buildBook(name, rawChapters)
		if err != nil {
			return nil, err
		}

		c.byName[name] = len(c.books)
		c.books = append(c.books, book)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	if len(c.books) == 0 {
		return nil, fmt.Errorf("corpus contains no books")
	}
	return c, nil
}

func buildBook(name string, rawChapters map[string]map[string]string) (Book, error) {
	if len(rawChapters) == 0 {
		return Book{}, fmt.Errorf("book %q has no chapters", name)
	}

	book := Book{Name: name, Chapters: make([]Chapter, 0, len(rawChapters))}
	for chapterKey, rawVerses := range rawChapters {
		chapterNum, err := parsePositive(chapterKey)
		if err != nil {
			return Book{}, fmt.Errorf("book %q: invalid chapter key %q: %w", name, chapterKey, err)
		}
		if len(rawVerses) == 0 {
			return Book{}, fmt.Errorf("book %q chapter %d has no verses", name, chapterNum)
		}

		chapter := Chapter{Number: chapterNum, Verses: make([]Verse, 0, len(rawVerses))}
		for verseKey, text := range rawVerses {
			verseNum, err := parsePositive(verseKey)
			if err != nil {
				return Book{}, fmt.Errorf("book %q chapter %d: invalid verse key %q: %w", name, chapterNum, verseKey, err)
			}
			if text == "" {
				return Book{}, fmt.Errorf("book %q chapter %d verse %d has empty text", name, chapterNum, verseNum)
			}
			chapter.Verses = append(chapter.Verses, Verse{Number: verseNum, Text: text})
		}
		sort.Slice(chapter.Verses, func(i, j int) bool {
			return chapter.Verses[i].Number < chapter.Verses[j].Number
		})
		book.Chapters = append(book.Chapters, chapter)
	}
	sort.Slice(book.Chapters, func(i, j int) bool {
		return book.Chapters[i].Number < book.Chapters[j].Number
	})
	return book, nil
}

func parsePositive(key string) (int, error) {
	n, err := strconv.Atoi(key)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("must be >= 1, got %d", n)
	}
	return n, nil
}
