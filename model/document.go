package model

// Document represents a complete reconstructed document.
// It is built once per load and immutable after construction.
type Document struct {
	Title    string
	Metadata Metadata
	// Elements is the document's reading order. The index of each element
	// strictly follows original paragraph/table order.
	Elements []Element
	// ImageOptions records the options the document was loaded with.
	// Transient: not part of the document content.
	ImageOptions ImageOptions
}

// Metadata contains document-level information
type Metadata struct {
	FilePath  string
	FileSize  int64
	WordCount int
	PageCount int
	Created   string // "" if unknown
	Modified  string
	Author    string
}

// ImageOptions controls whether and how embedded images are extracted.
type ImageOptions struct {
	Enabled   bool
	MaxWidth  int     // pixels, 0 = unconstrained
	MaxHeight int     // pixels, 0 = unconstrained
	Scale     float64 // 0 = no explicit scaling
}

// NewDocument creates a new empty document with the given title.
func NewDocument(title string) *Document {
	return &Document{
		Title:    title,
		Elements: make([]Element, 0),
	}
}

// Headings returns all heading elements in document order.
func (d *Document) Headings() []*Heading {
	var headings []*Heading
	for _, el := range d.Elements {
		if h, ok := el.(*Heading); ok {
			headings = append(headings, h)
		}
	}
	return headings
}

// Tables returns all table elements in document order.
func (d *Document) Tables() []*Table {
	var tables []*Table
	for _, el := range d.Elements {
		if t, ok := el.(*Table); ok {
			tables = append(tables, t)
		}
	}
	return tables
}
