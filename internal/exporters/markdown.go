// Package exporters renders annotations to markdown files, one file per
// book, for use in plain-text note vaults.
package exporters

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"versekeeper/internal/entities"
)

// ExportResult summarizes an export run.
type ExportResult struct {
	FilesWritten   int
	NotesProcessed int
}

// NotesReader is the slice of the notes store the exporter needs.
type NotesReader interface {
	GetAllNotes() ([]entities.Note, error)
}

type MarkdownExporter struct {
	OutputDir string
	Result    ExportResult
}

func NewMarkdownExporter(outputDir string) *MarkdownExporter {
	return &MarkdownExporter{OutputDir: outputDir}
}

// ExportNotes writes every note, grouped by book, into per-book markdown
// files under OutputDir.
func (exporter *MarkdownExporter) ExportNotes(reader NotesReader) (ExportResult, error) {
	all, err := reader.GetAllNotes()
	if err != nil {
		return exporter.Result, fmt.Errorf("load notes: %w", err)
	}

	if err := os.MkdirAll(exporter.OutputDir, 0755); err != nil {
		return exporter.Result, fmt.Errorf("failed to create export directory: %w", err)
	}

	byBook := make(map[string][]entities.Note)
	for _, note := range all {
		byBook[note.BookName] = append(byBook[note.BookName], note)
	}

	books := make([]string, 0, len(byBook))
	for book := range byBook {
		books = append(books, book)
	}
	sort.Strings(books)

	for _, book := range books {
		bookNotes := byBook[book]
		sort.Slice(bookNotes, func(i, j int) bool {
			if bookNotes[i].Chapter != bookNotes[j].Chapter {
				return bookNotes[i].Chapter < bookNotes[j].Chapter
			}
			return bookNotes[i].Verse < bookNotes[j].Verse
		})

		outputPath := filepath.Join(exporter.OutputDir, book+".md")
		if err := os.WriteFile(outputPath, []byte(GenerateMarkdown(book, bookNotes)), 0644); err != nil {
			return exporter.Result, fmt.Errorf("write %s: %w", outputPath, err)
		}
		exporter.Result.FilesWritten++
		exporter.Result.NotesProcessed += len(bookNotes)
	}

	return exporter.Result, nil
}

// GenerateMarkdown renders one book's notes with front matter.
func GenerateMarkdown(book string, bookNotes []entities.Note) string {
	var builder strings.Builder

	currentDateTime := time.Now().Format("2006-01-02")
	fmt.Fprintf(&builder, "---\n")
	fmt.Fprintf(&builder, "content_type: verse_notes\n")
	fmt.Fprintf(&builder, "created_at: %s\n", currentDateTime)
	fmt.Fprintf(&builder, "book: \"%s\"\n", strings.ReplaceAll(book, "\"", "\\\""))
	fmt.Fprintf(&builder, "tags: notes, bible\n")
	fmt.Fprintf(&builder, "---\n\n")
	fmt.Fprintf(&builder, "## Notes\n\n")

	for _, note := range bookNotes {
		if note.Verse > 0 {
			fmt.Fprintf(&builder, "### %s %d:%d - %s\n\n", book, note.Chapter, note.Verse, note.Title)
		} else {
			fmt.Fprintf(&builder, "### %s %d - %s\n\n", book, note.Chapter, note.Title)
		}
		fmt.Fprintf(&builder, "%s\n\n", note.Content)
		if len(note.Tags) > 0 {
			fmt.Fprintf(&builder, "Tags: %s\n\n", strings.Join(note.Tags, ", "))
		}
	}

	return builder.String()
}
