package docx

import "encoding/xml"

// documentXML represents the structure of word/document.xml
type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    *bodyXML `xml:"body"`
}

// bodyXML holds the document body in original order. Paragraphs and tables
// interleave freely in OOXML, so the default struct unmarshaling (which
// collects each element name into its own slice) would lose their relative
// order; a custom unmarshaler records them as they appear.
type bodyXML struct {
	Elements []bodyElement
}

// bodyElement is one ordered child of the body: a paragraph or a table.
type bodyElement struct {
	Paragraph *paragraphXML
	Table     *tableXML
}

// UnmarshalXML walks the body's children and keeps paragraph/table order.
func (b *bodyXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		token, err := d.Token()
		if err != nil {
			return err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				var p paragraphXML
				if err := d.DecodeElement(&p, &t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, bodyElement{Paragraph: &p})
			case "tbl":
				var tbl tableXML
				if err := d.DecodeElement(&tbl, &t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, bodyElement{Table: &tbl})
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name == start.Name {
				return nil
			}
		}
	}
}

// paragraphXML represents a paragraph element (<w:p>). Runs interleave
// freely with hyperlinks and tracked insertions, so a custom unmarshaler
// flattens their runs into Runs in document order.
type paragraphXML struct {
	Properties paragraphPropsXML
	Runs       []runXML
}

// UnmarshalXML walks the paragraph's children and keeps run order.
// Hyperlink and insertion wrappers contribute their runs in place;
// tracked deletions fall through to Skip and drop out.
func (p *paragraphXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		token, err := d.Token()
		if err != nil {
			return err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pPr":
				if err := d.DecodeElement(&p.Properties, &t); err != nil {
					return err
				}
			case "r":
				var run runXML
				if err := d.DecodeElement(&run, &t); err != nil {
					return err
				}
				p.Runs = append(p.Runs, run)
			case "hyperlink":
				var link hyperlinkXML
				if err := d.DecodeElement(&link, &t); err != nil {
					return err
				}
				p.Runs = append(p.Runs, link.Runs...)
			case "ins":
				var ins insXML
				if err := d.DecodeElement(&ins, &t); err != nil {
					return err
				}
				p.Runs = append(p.Runs, ins.Runs...)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name == start.Name {
				return nil
			}
		}
	}
}

// paragraphPropsXML represents paragraph properties (<w:pPr>).
type paragraphPropsXML struct {
	Style styleRefXML       `xml:"pStyle"`
	NumPr numberingPropsXML `xml:"numPr"`
}

// styleRefXML represents a style reference.
type styleRefXML struct {
	Val string `xml:"val,attr"`
}

// numberingPropsXML represents numbering properties for lists.
type numberingPropsXML struct {
	ILvl  valXML  `xml:"ilvl"`
	NumID *valXML `xml:"numId"`
}

// valXML represents a simple val-attribute element.
type valXML struct {
	Val string `xml:"val,attr"`
}

// runXML represents a text run (<w:r>).
type runXML struct {
	Properties runPropsXML  `xml:"rPr"`
	Text       []textXML    `xml:"t"`
	Tabs       []tabXML     `xml:"tab"`
	Breaks     []breakXML   `xml:"br"`
	Drawings   []drawingXML `xml:"drawing"`
}

// runPropsXML represents run properties (<w:rPr>).
type runPropsXML struct {
	Bold      boolXML `xml:"b"`
	Italic    boolXML `xml:"i"`
	Underline valXML  `xml:"u"`
	Strike    boolXML `xml:"strike"`
	FontSize  valXML  `xml:"sz"`
	Color     valXML  `xml:"color"`
}

// boolXML represents an on/off property element. Presence with no val (or a
// val other than "false"/"0") means on.
type boolXML struct {
	XMLName xml.Name
	Val     string `xml:"val,attr"`
}

// set reports whether the property element was present and not negated.
func (b boolXML) set() bool {
	return b.XMLName.Local != "" && b.Val != "false" && b.Val != "0"
}

// textXML represents text content (<w:t>).
type textXML struct {
	Space string `xml:"space,attr"` // preserve
	Value string `xml:",chardata"`
}

// tabXML represents a tab character.
type tabXML struct {
	XMLName xml.Name `xml:"tab"`
}

// breakXML represents a break (line or page).
type breakXML struct {
	Type string `xml:"type,attr"` // page, column, textWrapping
}

// drawingXML represents an embedded drawing/image.
type drawingXML struct {
	Inline *pictureXML `xml:"inline"`
	Anchor *pictureXML `xml:"anchor"`
}

// pictureXML represents the shared shape of inline and anchored drawings.
type pictureXML struct {
	Extent extentXML `xml:"extent"`
	DocPr  docPrXML  `xml:"docPr"`
	Blip   *blipXML  `xml:"graphic>graphicData>pic>blipFill>blip"`
}

// extentXML represents image dimensions in EMUs.
type extentXML struct {
	CX string `xml:"cx,attr"`
	CY string `xml:"cy,attr"`
}

// docPrXML represents document properties of an image.
type docPrXML struct {
	ID    string `xml:"id,attr"`
	Name  string `xml:"name,attr"`
	Descr string `xml:"descr,attr"` // alt text
}

// blipXML represents an image reference.
type blipXML struct {
	Embed string `xml:"embed,attr"` // relationship ID
}

// hyperlinkXML represents a hyperlink.
type hyperlinkXML struct {
	ID   string   `xml:"id,attr"`
	Runs []runXML `xml:"r"`
}

// insXML represents a tracked-change insertion (<w:ins>). Inserted runs
// read as regular text.
type insXML struct {
	Runs []runXML `xml:"r"`
}

// tableXML represents a table (<w:tbl>).
type tableXML struct {
	Rows []tableRowXML `xml:"tr"`
}

// tableRowXML represents a table row (<w:tr>).
type tableRowXML struct {
	Cells []tableCellXML `xml:"tc"`
}

// tableCellXML represents a table cell (<w:tc>).
type tableCellXML struct {
	Paragraphs []paragraphXML `xml:"p"`
}
