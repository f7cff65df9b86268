// Package docvane reconstructs a structured, render-ready document model
// from Word .docx files: ordered headings, paragraphs, lists, tables,
// images, equations and page breaks, with numbering rebuilt from the
// document's own signals.
//
// Basic usage:
//
//	doc, err := docvane.Open("report.docx").Load()
//	if err != nil {
//	    // handle error
//	}
//	for _, item := range docvane.Outline(doc) {
//	    fmt.Println(item.Title)
//	}
//
// With image extraction:
//
//	doc, err := docvane.Open("report.docx").
//	    Images(docvane.ImageOptions{Enabled: true, MaxWidth: 800}).
//	    Load()
package docvane

import (
	"log/slog"

	"github.com/docvane/docvane/model"
)

// Loader configures and performs a document load.
type Loader struct {
	filename string
	images   ImageOptions
	logger   *slog.Logger
}

// Open prepares a loader for the given .docx file. Nothing is read until
// Load is called.
func Open(filename string) *Loader {
	return &Loader{
		filename: filename,
		images:   defaultImageOptions(),
		logger:   slog.Default(),
	}
}

// Images sets the image extraction options for this load.
func (l *Loader) Images(opts ImageOptions) *Loader {
	l.images = opts
	return l
}

// Logger sets the logger used for degraded-path diagnostics.
func (l *Loader) Logger(logger *slog.Logger) *Loader {
	if logger != nil {
		l.logger = logger
	}
	return l
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for scripts and tests
// where error handling would be cumbersome.
//
// Example:
//
//	doc := docvane.Must(docvane.Open("report.docx").Load())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// Search finds all case-insensitive occurrences of query across the
// document's textual content.
func Search(doc *model.Document, query string) []model.SearchResult {
	return model.Search(doc, query)
}

// Outline returns the document's heading hierarchy in reading order.
func Outline(doc *model.Document) []model.OutlineItem {
	return model.Outline(doc)
}
