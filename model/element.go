package model

// ElementType represents the type of a document element
type ElementType int

const (
	ElementTypeUnknown ElementType = iota
	ElementTypeParagraph
	ElementTypeHeading
	ElementTypeList
	ElementTypeTable
	ElementTypeImage
	ElementTypeEquation
	ElementTypePageBreak
)

func (et ElementType) String() string {
	switch et {
	case ElementTypeParagraph:
		return "Paragraph"
	case ElementTypeHeading:
		return "Heading"
	case ElementTypeList:
		return "List"
	case ElementTypeTable:
		return "Table"
	case ElementTypeImage:
		return "Image"
	case ElementTypeEquation:
		return "Equation"
	case ElementTypePageBreak:
		return "PageBreak"
	default:
		return "Unknown"
	}
}

// Element is the interface for all document elements
type Element interface {
	Type() ElementType
}

// Heading represents a heading
type Heading struct {
	Level  int // 1-6
	Text   string
	Number string // "" when the heading carries no number
}

func (h *Heading) Type() ElementType { return ElementTypeHeading }

// Paragraph represents a paragraph of formatted text runs
type Paragraph struct {
	Runs []FormattedRun
}

func (p *Paragraph) Type() ElementType { return ElementTypeParagraph }

// Text returns the concatenated text of all runs.
func (p *Paragraph) Text() string {
	var text string
	for _, run := range p.Runs {
		text += run.Text
	}
	return text
}

// List represents a list (ordered or unordered)
type List struct {
	Items   []ListItem
	Ordered bool
}

func (l *List) Type() ElementType { return ElementTypeList }

// ListItem represents a single list item
type ListItem struct {
	Runs  []FormattedRun
	Level int // 0 = top nesting
}

// Text returns the concatenated text of the item's runs.
func (li *ListItem) Text() string {
	var text string
	for _, run := range li.Runs {
		text += run.Text
	}
	return text
}

// Table represents a table
type Table struct {
	Data TableData
}

func (t *Table) Type() ElementType { return ElementTypeTable }

// Image represents an embedded image
type Image struct {
	Description string
	Width       int // pixels, 0 if unknown
	Height      int // pixels, 0 if unknown
	// RelationshipID links the drawing to the package relationship that
	// carries the image bytes.
	RelationshipID string
	// Path is the extracted image file on disk, empty when extraction
	// was disabled or failed.
	Path string
}

func (i *Image) Type() ElementType { return ElementTypeImage }

// Equation represents a display equation
type Equation struct {
	LaTeX    string
	Fallback string // plain-text concatenation of the equation's leaves
}

func (e *Equation) Type() ElementType { return ElementTypeEquation }

// PageBreak represents an explicit page break
type PageBreak struct{}

func (pb *PageBreak) Type() ElementType { return ElementTypePageBreak }
