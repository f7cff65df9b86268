package docx

import (
	"testing"

	"github.com/docvane/docvane/numbering"
)

func testNumbering() *numberingXML {
	return &numberingXML{
		AbstractNums: []abstractNumXML{
			{
				AbstractNumID: "0",
				Levels: []lvlXML{
					{ILvl: "0", NumFmt: valXML{Val: "decimal"}},
					{ILvl: "1", NumFmt: valXML{Val: "lowerLetter"}},
					{ILvl: "2", NumFmt: valXML{Val: "lowerRoman"}},
				},
			},
			{
				AbstractNumID: "1",
				Levels: []lvlXML{
					{ILvl: "0", NumFmt: valXML{Val: "bullet"}},
				},
			},
		},
		Nums: []numXML{
			{NumID: "10", AbstractNumID: valXML{Val: "0"}},
			{NumID: "11", AbstractNumID: valXML{Val: "1"}},
		},
	}
}

func TestNumberingResolver_Format(t *testing.T) {
	nr := NewNumberingResolver(testNumbering())

	tests := []struct {
		numID, level int
		want         numbering.Format
		wantOK       bool
	}{
		{10, 0, numbering.Decimal, true},
		{10, 1, numbering.LowerLetter, true},
		{10, 2, numbering.LowerRoman, true},
		{10, 3, numbering.Decimal, false}, // level not defined
		{11, 0, numbering.Bullet, true},
		{99, 0, numbering.Decimal, false}, // numId not defined
	}

	for _, tt := range tests {
		got, ok := nr.Format(tt.numID, tt.level)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Format(%d, %d) = (%v, %v), want (%v, %v)",
				tt.numID, tt.level, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestNumberingResolver_NilInput(t *testing.T) {
	nr := NewNumberingResolver(nil)
	if _, ok := nr.Format(1, 0); ok {
		t.Error("nil numbering should resolve nothing")
	}
}

func TestNumberingResolver_UnknownNumFmt(t *testing.T) {
	n := &numberingXML{
		AbstractNums: []abstractNumXML{
			{AbstractNumID: "0", Levels: []lvlXML{{ILvl: "0", NumFmt: valXML{Val: "cardinalText"}}}},
		},
		Nums: []numXML{{NumID: "3", AbstractNumID: valXML{Val: "0"}}},
	}
	nr := NewNumberingResolver(n)
	if _, ok := nr.Format(3, 0); ok {
		t.Error("unmapped numFmt should not resolve")
	}
}

func TestReader_ListFormat(t *testing.T) {
	numberingPart := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:numbering xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:abstractNum w:abstractNumId="0">
    <w:lvl w:ilvl="0"><w:numFmt w:val="upperRoman"/></w:lvl>
  </w:abstractNum>
  <w:num w:numId="7"><w:abstractNumId w:val="0"/></w:num>
</w:numbering>`

	path := createTestDOCX(t, `<w:p><w:r><w:t>Body</w:t></w:r></w:p>`, map[string]string{
		"word/numbering.xml": numberingPart,
	})
	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	format, ok := r.ListFormat(7, 0)
	if !ok || format != numbering.UpperRoman {
		t.Errorf("ListFormat(7, 0) = (%v, %v), want (UpperRoman, true)", format, ok)
	}
	if _, ok := r.ListFormat(8, 0); ok {
		t.Error("undefined numId should not resolve")
	}
}
