package docx

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/docvane/docvane/model"
)

func cellXML(paragraphs ...string) tableCellXML {
	var cell tableCellXML
	for _, text := range paragraphs {
		cell.Paragraphs = append(cell.Paragraphs, paragraphXML{
			Runs: []runXML{{Text: []textXML{{Value: text}}}},
		})
	}
	return cell
}

func TestParseTable_CellTextJoining(t *testing.T) {
	raw := &tableXML{
		Rows: []tableRowXML{
			{Cells: []tableCellXML{
				cellXML("First line", "second line"),
				cellXML("Single"),
			}},
		},
	}

	table := parseTable(raw)
	if len(table.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(table.Rows))
	}
	if got := table.Rows[0][0].Text; got != "First line second line" {
		t.Errorf("joined cell = %q, want %q", got, "First line second line")
	}
	if got := table.Rows[0][1].Text; got != "Single" {
		t.Errorf("cell = %q, want %q", got, "Single")
	}
}

func TestParseTable_CellFormatting(t *testing.T) {
	bold := runXML{
		Properties: runPropsXML{Bold: boolXML{XMLName: xml.Name{Local: "b"}}},
		Text:       []textXML{{Value: "Total"}},
	}
	raw := &tableXML{
		Rows: []tableRowXML{
			{Cells: []tableCellXML{
				{Paragraphs: []paragraphXML{{Runs: []runXML{bold}}}},
				cellXML("42"),
			}},
		},
	}

	table := parseTable(raw)
	if !table.Rows[0][0].Formatting.Bold {
		t.Error("cell with a bold run should carry bold formatting")
	}
	if table.Rows[0][1].Formatting.Bold {
		t.Error("plain cell should not be bold")
	}
}

func TestParseTable_SkipsEmptyRows(t *testing.T) {
	raw := &tableXML{
		Rows: []tableRowXML{
			{Cells: nil},
			{Cells: []tableCellXML{cellXML("Data")}},
		},
	}

	table := parseTable(raw)
	if len(table.Rows) != 1 {
		t.Errorf("expected empty row to be dropped, got %d rows", len(table.Rows))
	}
}

func TestAppearsToBeHeader(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		want bool
	}{
		{"short labels", []string{"Name", "Date", "Amount"}, true},
		{"header vocabulary", []string{"Employee name and surname", "Hire date information", "x"}, true},
		{"long prose cells", []string{
			"This is a long paragraph of prose that clearly is not a column header at all, far too wordy",
			"Another extended narrative passage that reads like body content rather than a label for anything",
		}, false},
		{"empty row", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := appearsToBeHeader(tt.row); got != tt.want {
				t.Errorf("appearsToBeHeader(%v) = %v, want %v", tt.row, got, tt.want)
			}
		})
	}
}

func TestHasHeaderRow(t *testing.T) {
	table := &Table{Rows: []Cell2D{
		{{Text: "Name"}, {Text: "Status"}},
		{{Text: "Build pipeline"}, {Text: "passing"}},
	}}
	if !table.HasHeaderRow() {
		t.Error("short label row should read as a header")
	}

	empty := &Table{}
	if empty.HasHeaderRow() {
		t.Error("empty table has no header row")
	}
}

func TestToTableData_FirstRowBecomesHeader(t *testing.T) {
	table := &Table{Rows: []Cell2D{
		{{Text: "Item"}, {Text: "Price"}},
		{{Text: "Widget"}, {Text: "$9.99"}},
		{{Text: "Gadget"}, {Text: "$24.50"}},
	}}

	data, ok := table.ToTableData()
	if !ok {
		t.Fatal("expected table data")
	}
	if len(data.Headers) != 2 || data.Headers[0].Content != "Item" {
		t.Errorf("headers = %+v", data.Headers)
	}
	if len(data.Rows) != 2 {
		t.Fatalf("expected 2 data rows, got %d", len(data.Rows))
	}
	if data.Rows[0][1].DataType != model.CellCurrency {
		t.Errorf("price cell type = %v, want currency", data.Rows[0][1].DataType)
	}
	if !data.Metadata.HasHeaders {
		t.Error("header-shaped first row should set HasHeaders")
	}
}

func TestToTableData_PromotedRowClearsHeaderFlag(t *testing.T) {
	long := strings.Repeat("a long narrative sentence that reads nothing like a column header ", 2)
	table := &Table{Rows: []Cell2D{
		{{Text: long}, {Text: long}},
		{{Text: long}, {Text: long}},
	}}

	data, ok := table.ToTableData()
	if !ok {
		t.Fatal("expected table data")
	}
	if len(data.Headers) != 2 {
		t.Fatalf("first row should still be promoted, headers = %d", len(data.Headers))
	}
	if data.Metadata.HasHeaders {
		t.Error("prose first row should not set HasHeaders")
	}
}

func TestToTableData_EmptyTable(t *testing.T) {
	table := &Table{}
	if _, ok := table.ToTableData(); ok {
		t.Error("empty table should yield no data")
	}
}
