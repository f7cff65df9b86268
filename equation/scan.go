package equation

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// Namespace URIs of the wordprocessing and math vocabularies. Documents
// written without namespace declarations surface the literal "w"/"m"
// prefixes instead; both spellings are accepted.
const (
	wordNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	mathNS = "http://schemas.openxmlformats.org/officeDocument/2006/math"
)

// Info describes one equation found in the document body.
type Info struct {
	LaTeX    string
	Fallback string
	// Inline is true for equations embedded in running text, false for
	// display equations wrapped in a paragraph-level math container.
	Inline bool
	// ParagraphIndex is the 1-based index of the containing paragraph,
	// counting body-level w:p elements in document order (paragraphs
	// inside tables are not counted).
	ParagraphIndex int
}

// Content is one ordered piece of a paragraph: either plain text or an
// inline equation.
type Content struct {
	Text     string
	Equation bool
	LaTeX    string
	Fallback string
}

// Extract scans the raw document XML and returns every equation with its
// paragraph index and inline/display classification. Paragraph indices count
// body-level w:p elements only; table interiors are skipped so both scan
// passes and the body walk share one counter. The scan is tolerant: XML
// errors end it with whatever was collected.
func Extract(documentXML []byte) []Info {
	var equations []Info

	decoder := xml.NewDecoder(bytes.NewReader(documentXML))
	paragraphIndex := 0
	tableDepth := 0
	inMathPara := false
	inMath := false
	var omml strings.Builder

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch {
			case isWord(t.Name, "tbl"):
				tableDepth++
			case tableDepth > 0:
			case isWord(t.Name, "p"):
				paragraphIndex++
			case isMath(t.Name, "oMathPara"):
				inMathPara = true
			case isMath(t.Name, "oMath"):
				inMath = true
				omml.Reset()
			case inMath:
				writeStartTag(&omml, t)
			}
		case xml.EndElement:
			switch {
			case isWord(t.Name, "tbl"):
				if tableDepth > 0 {
					tableDepth--
				}
			case tableDepth > 0:
			case isMath(t.Name, "oMathPara"):
				inMathPara = false
			case isMath(t.Name, "oMath"):
				if inMath {
					inMath = false
					latex, fallback := FromOMML(omml.String())
					equations = append(equations, Info{
						LaTeX:          latex,
						Fallback:       fallback,
						Inline:         !inMathPara,
						ParagraphIndex: paragraphIndex,
					})
					omml.Reset()
				}
			case inMath:
				writeEndTag(&omml, t)
			}
		case xml.CharData:
			if inMath {
				omml.Write(t)
			}
		}
	}

	return equations
}

// InlinePositions scans the raw document XML and returns, per 1-based
// paragraph index, the ordered interleaving of plain text and inline
// equations. Indices count body-level paragraphs the same way Extract does.
// Display equations and equation-free paragraphs are absent from the map.
func InlinePositions(documentXML []byte) map[int][]Content {
	paragraphs := make(map[int][]Content)

	decoder := xml.NewDecoder(bytes.NewReader(documentXML))
	paragraphIndex := 0
	tableDepth := 0
	inParagraph := false
	inMathPara := false
	inMath := false
	inTextRun := false
	var content []Content
	var text strings.Builder
	var omml strings.Builder

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch {
			case isWord(t.Name, "tbl"):
				tableDepth++
			case tableDepth > 0:
			case isWord(t.Name, "p"):
				inParagraph = true
				paragraphIndex++
				content = nil
			case isMath(t.Name, "oMathPara"):
				inMathPara = true
			case isMath(t.Name, "oMath") && inParagraph && !inMathPara:
				inMath = true
				omml.Reset()
			case isWord(t.Name, "t") && inParagraph && !inMath:
				inTextRun = true
				text.Reset()
			case inMath:
				writeStartTag(&omml, t)
			}
		case xml.EndElement:
			switch {
			case isWord(t.Name, "tbl"):
				if tableDepth > 0 {
					tableDepth--
				}
			case tableDepth > 0:
			case isWord(t.Name, "p"):
				inParagraph = false
				if len(content) > 0 {
					paragraphs[paragraphIndex] = content
				}
			case isMath(t.Name, "oMathPara"):
				inMathPara = false
			case isMath(t.Name, "oMath") && inMath:
				inMath = false
				latex, fallback := FromOMML(omml.String())
				content = append(content, Content{
					Equation: true,
					LaTeX:    latex,
					Fallback: fallback,
				})
				omml.Reset()
			case isWord(t.Name, "t") && inTextRun:
				inTextRun = false
				if text.Len() > 0 {
					content = append(content, Content{Text: text.String()})
				}
			case inMath:
				writeEndTag(&omml, t)
			}
		case xml.CharData:
			switch {
			case inTextRun:
				text.Write(t)
			case inMath:
				omml.Write(t)
			}
		}
	}

	return paragraphs
}

func isWord(name xml.Name, local string) bool {
	return name.Local == local && (name.Space == wordNS || name.Space == "w")
}

func isMath(name xml.Name, local string) bool {
	return name.Local == local && (name.Space == mathNS || name.Space == "m")
}

// prefixedName restores the conventional prefix the decoder stripped, so the
// reconstructed fragment matches the tag names the parser looks for.
func prefixedName(name xml.Name) string {
	switch name.Space {
	case mathNS, "m":
		return "m:" + name.Local
	case wordNS, "w":
		return "w:" + name.Local
	case "":
		return name.Local
	default:
		return name.Local
	}
}

func writeStartTag(sb *strings.Builder, t xml.StartElement) {
	sb.WriteByte('<')
	sb.WriteString(prefixedName(t.Name))
	for _, attr := range t.Attr {
		if attr.Name.Space == "xmlns" || attr.Name.Local == "xmlns" {
			continue
		}
		sb.WriteByte(' ')
		sb.WriteString(prefixedName(attr.Name))
		sb.WriteString(`="`)
		sb.WriteString(attr.Value)
		sb.WriteByte('"')
	}
	sb.WriteByte('>')
}

func writeEndTag(sb *strings.Builder, t xml.EndElement) {
	sb.WriteString("</")
	sb.WriteString(prefixedName(t.Name))
	sb.WriteByte('>')
}
