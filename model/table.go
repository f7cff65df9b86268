package model

import (
	"strconv"
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
)

// Alignment represents horizontal text alignment within a table cell.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// CellDataType classifies the content of a table cell.
type CellDataType int

const (
	CellText CellDataType = iota
	CellNumber
	CellCurrency
	CellPercentage
	CellDate
	CellBoolean
	CellEmpty
)

func (t CellDataType) String() string {
	switch t {
	case CellNumber:
		return "number"
	case CellCurrency:
		return "currency"
	case CellPercentage:
		return "percentage"
	case CellDate:
		return "date"
	case CellBoolean:
		return "boolean"
	case CellEmpty:
		return "empty"
	default:
		return "text"
	}
}

// TableCell represents a single table cell with inferred typing.
type TableCell struct {
	Content    string
	Alignment  Alignment
	Formatting TextFormatting
	DataType   CellDataType
}

// NewTableCell creates a cell, inferring its data type and default alignment
// from the content.
func NewTableCell(content string) TableCell {
	dt := DetectCellDataType(content)
	return TableCell{
		Content:   content,
		Alignment: defaultAlignment(dt),
		DataType:  dt,
	}
}

// WithFormatting returns a copy of the cell with the given formatting.
func (c TableCell) WithFormatting(f TextFormatting) TableCell {
	c.Formatting = f
	return c
}

// DisplayWidth returns the cell content's width in grapheme clusters, not
// bytes or code points.
func (c TableCell) DisplayWidth() int {
	count := 0
	g := graphemes.FromString(c.Content)
	for g.Next() {
		count++
	}
	return count
}

// TableMetadata describes the computed layout of a table.
type TableMetadata struct {
	ColumnCount      int
	RowCount         int
	HasHeaders       bool
	ColumnWidths     []int
	ColumnAlignments []Alignment
	Title            string
}

// TableData represents an extracted table with header and data rows.
type TableData struct {
	Headers  []TableCell
	Rows     [][]TableCell
	Metadata TableMetadata
}

// NewTableData builds a table from header and data cells, computing column
// widths and alignments. ColumnWidths and ColumnAlignments always have equal
// length: the widest of any row and the header row.
func NewTableData(headers []TableCell, rows [][]TableCell) TableData {
	cols := len(headers)
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	md := TableMetadata{
		ColumnCount:      cols,
		RowCount:         len(rows),
		HasHeaders:       len(headers) > 0,
		ColumnWidths:     columnWidths(headers, rows, cols),
		ColumnAlignments: columnAlignments(rows, cols),
	}

	return TableData{Headers: headers, Rows: rows, Metadata: md}
}

// ColumnWidth returns the computed width of a column, defaulting to 10.
func (t *TableData) ColumnWidth(col int) int {
	if col < 0 || col >= len(t.Metadata.ColumnWidths) {
		return 10
	}
	return t.Metadata.ColumnWidths[col]
}

// ColumnAlignment returns the computed alignment of a column.
func (t *TableData) ColumnAlignment(col int) Alignment {
	if col < 0 || col >= len(t.Metadata.ColumnAlignments) {
		return AlignLeft
	}
	return t.Metadata.ColumnAlignments[col]
}

// columnWidths computes per-column display widths: the max of header and cell
// widths, with a floor of 3.
func columnWidths(headers []TableCell, rows [][]TableCell, cols int) []int {
	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = h.DisplayWidth()
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < cols {
				if w := cell.DisplayWidth(); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}
	return widths
}

// columnAlignments right-aligns a column when more than 70% of its cells are
// numeric (number/currency/percentage); mostly-boolean columns center.
func columnAlignments(rows [][]TableCell, cols int) []Alignment {
	alignments := make([]Alignment, cols)
	for col := range alignments {
		numeric, boolean, total := 0, 0, 0
		for _, row := range rows {
			if col >= len(row) {
				continue
			}
			total++
			switch row[col].DataType {
			case CellNumber, CellCurrency, CellPercentage:
				numeric++
			case CellBoolean:
				boolean++
			}
		}
		if total == 0 {
			continue
		}
		if float64(numeric)/float64(total) > 0.7 {
			alignments[col] = AlignRight
		} else if float64(boolean)/float64(total) > 0.7 {
			alignments[col] = AlignCenter
		}
	}
	return alignments
}

// DetectCellDataType infers the type of a cell's content. Checks run in
// order: empty, currency, percentage, boolean, number, date, text.
func DetectCellDataType(content string) CellDataType {
	trimmed := strings.TrimSpace(content)

	if trimmed == "" {
		return CellEmpty
	}

	if strings.HasPrefix(trimmed, "$") || strings.HasPrefix(trimmed, "€") || strings.HasPrefix(trimmed, "£") {
		return CellCurrency
	}

	if strings.HasSuffix(trimmed, "%") {
		return CellPercentage
	}

	switch strings.ToLower(trimmed) {
	case "true", "false", "yes", "no", "y", "n":
		return CellBoolean
	}

	// Thousands separators do not disqualify a number.
	if _, err := strconv.ParseFloat(strings.ReplaceAll(trimmed, ",", ""), 64); err == nil {
		return CellNumber
	}

	if strings.ContainsAny(trimmed, "/-") {
		parts := strings.FieldsFunc(trimmed, func(r rune) bool { return r == '/' || r == '-' })
		if len(parts) == 3 && allNumeric(parts) {
			return CellDate
		}
	}

	return CellText
}

func allNumeric(parts []string) bool {
	for _, p := range parts {
		if _, err := strconv.ParseUint(p, 10, 32); err != nil {
			return false
		}
	}
	return true
}

func defaultAlignment(dt CellDataType) Alignment {
	switch dt {
	case CellNumber, CellCurrency, CellPercentage:
		return AlignRight
	case CellBoolean:
		return AlignCenter
	default:
		return AlignLeft
	}
}
