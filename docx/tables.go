package docx

import (
	"strings"

	"github.com/docvane/docvane/model"
)

// Table is a parsed table: rows of cells with text and the formatting of
// each cell's first formatted run.
type Table struct {
	Rows []Cell2D
}

// Cell2D is one row of parsed cells.
type Cell2D []Cell

// Cell is a single parsed table cell.
type Cell struct {
	Text       string
	Formatting model.TextFormatting
}

// parseTable flattens each cell's paragraphs into a single text string,
// inserting a space between adjacent pieces, and keeps the first run's
// formatting for the cell.
func parseTable(t *tableXML) *Table {
	table := &Table{}

	for _, row := range t.Rows {
		var cells Cell2D
		for _, cell := range row.Cells {
			var sb strings.Builder
			var formatting model.TextFormatting
			haveFormatting := false

			for _, para := range cell.Paragraphs {
				for _, run := range para.Runs {
					if !haveFormatting {
						if f := runFormatting(run.Properties); f.Bold || f.Italic {
							formatting = f
							haveFormatting = true
						}
					}
					for _, txt := range run.Text {
						if sb.Len() > 0 && !strings.HasSuffix(sb.String(), " ") {
							sb.WriteString(" ")
						}
						sb.WriteString(txt.Value)
					}
				}
			}

			cells = append(cells, Cell{
				Text:       strings.TrimSpace(sb.String()),
				Formatting: formatting,
			})
		}
		if len(cells) > 0 {
			table.Rows = append(table.Rows, cells)
		}
	}

	return table
}

// ToTableData converts a parsed table to the model representation. The first
// row becomes the header when it looks like one; when no header is detected
// the first row is promoted anyway so every table renders with a header.
// Returns ok=false for tables with no content at all.
func (t *Table) ToTableData() (model.TableData, bool) {
	if len(t.Rows) == 0 {
		return model.TableData{}, false
	}

	toCells := func(row Cell2D) []model.TableCell {
		cells := make([]model.TableCell, 0, len(row))
		for _, c := range row {
			cells = append(cells, model.NewTableCell(c.Text).WithFormatting(c.Formatting))
		}
		return cells
	}

	headers := toCells(t.Rows[0])
	var rows [][]model.TableCell
	for _, row := range t.Rows[1:] {
		rows = append(rows, toCells(row))
	}

	data := model.NewTableData(headers, rows)
	// The first row renders as the header either way; the metadata flag
	// records whether it actually read as one.
	data.Metadata.HasHeaders = t.HasHeaderRow()
	return data, true
}

// appearsToBeHeader reports whether a row's text looks like column headers:
// short cells, mostly brief phrases or typical header vocabulary.
func appearsToBeHeader(row []string) bool {
	if len(row) == 0 {
		return false
	}

	totalChars := 0
	for _, cell := range row {
		totalChars += len(cell)
	}
	if totalChars/len(row) > 50 {
		return false
	}

	indicators := 0
	for _, cell := range row {
		lower := strings.ToLower(cell)
		words := len(strings.Fields(cell))

		if words >= 1 && words <= 3 && strings.TrimSpace(cell) != "" {
			indicators++
			continue
		}
		for _, keyword := range []string{"name", "date", "amount", "type", "status", "id", "description", "count"} {
			if strings.Contains(lower, keyword) {
				indicators++
				break
			}
		}
	}

	return indicators > len(row)/2
}

// HasHeaderRow reports whether the table's first row reads as a header.
func (t *Table) HasHeaderRow() bool {
	if len(t.Rows) == 0 {
		return false
	}
	texts := make([]string, len(t.Rows[0]))
	for i, cell := range t.Rows[0] {
		texts[i] = cell.Text
	}
	return appearsToBeHeader(texts)
}
