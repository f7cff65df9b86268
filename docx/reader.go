// Package docx reads the parts of a DOCX (Office Open XML) package that
// document reconstruction needs: the ordered paragraph/table stream, run
// formatting, numbering definitions, relationships, and core metadata.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/docvane/docvane/model"
)

// Reader provides access to DOCX document content.
type Reader struct {
	zipReader    *zip.ReadCloser
	document     *documentXML
	numbering    *numberingXML
	rels         *relationshipsXML
	coreProps    *corePropertiesXML
	documentData []byte
	body         []BodyElement
	listNums     *NumberingResolver
}

// BodyElement is one parsed child of the document body, a paragraph or a
// table, in original document order.
type BodyElement struct {
	Paragraph *Paragraph
	Table     *Table
}

// Paragraph is a parsed paragraph with resolved runs and numbering.
type Paragraph struct {
	StyleID string
	// NumID and NumLevel come from the paragraph's numbering properties.
	// NumID is -1 when the paragraph carries none.
	NumID    int
	NumLevel int
	Runs     []Run
	Images   []ImageRef
	// PageBreak marks a paragraph containing an explicit page break.
	PageBreak bool
}

// Run is a text run with its resolved formatting.
type Run struct {
	Text       string
	Formatting model.TextFormatting
}

// Text returns the concatenated text of the paragraph's runs.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, run := range p.Runs {
		sb.WriteString(run.Text)
	}
	return sb.String()
}

// ImageRef describes an embedded drawing found in a paragraph.
type ImageRef struct {
	RelationshipID string
	Description    string // alt text
	Width          int    // pixels, 0 if unknown
	Height         int    // pixels
}

// CoreProperties is the subset of Dublin Core metadata the engine surfaces.
type CoreProperties struct {
	Title    string
	Author   string
	Created  string
	Modified string
}

// Open opens a DOCX file for reading. Validation distinguishes the common
// mistakes: wrong extension, an Excel workbook renamed or mis-picked, and a
// ZIP with the Word document part missing.
func Open(filename string) (*Reader, error) {
	if ext := strings.ToLower(filepath.Ext(filename)); ext != ".docx" {
		return nil, fmt.Errorf(
			"invalid file format: expected a .docx file, got %q (not .doc, .xlsx, or .zip)", ext)
	}

	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening package: %w", err)
	}

	r := &Reader{zipReader: zr}

	if err := r.validate(); err != nil {
		zr.Close()
		return nil, err
	}

	if err := r.parseDocument(); err != nil {
		zr.Close()
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	// The remaining parts are optional; their absence degrades features but
	// never fails the load.
	r.parseNumbering()
	r.parseRelationships()
	r.parseCoreProperties()

	r.body = r.parseBody()

	return r, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	if r.zipReader != nil {
		err := r.zipReader.Close()
		r.zipReader = nil
		return err
	}
	return nil
}

// validate checks the package actually is a Word document.
func (r *Reader) validate() error {
	fileMap := make(map[string]bool)
	for _, f := range r.zipReader.File {
		fileMap[f.Name] = true
	}

	if !fileMap["word/document.xml"] {
		if fileMap["xl/workbook.xml"] {
			return fmt.Errorf("this appears to be an Excel workbook (.xlsx); only Word documents (.docx) are supported")
		}
		return fmt.Errorf("invalid .docx file: missing word/document.xml (the file may be corrupted or not a Word document)")
	}

	return nil
}

// getFileContent reads the content of a file from the ZIP archive.
func (r *Reader) getFileContent(name string) ([]byte, error) {
	for _, f := range r.zipReader.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

// DocumentXML returns the raw bytes of word/document.xml, for passes that
// read the XML directly rather than through the parsed object model.
func (r *Reader) DocumentXML() []byte {
	return r.documentData
}

// Body returns the parsed body elements in document order.
func (r *Reader) Body() []BodyElement {
	return r.body
}

// Core returns the document's core metadata.
func (r *Reader) Core() CoreProperties {
	if r.coreProps == nil {
		return CoreProperties{}
	}
	return CoreProperties{
		Title:    r.coreProps.Title,
		Author:   r.coreProps.Creator,
		Created:  r.coreProps.Created,
		Modified: r.coreProps.Modified,
	}
}

func (r *Reader) parseDocument() error {
	data, err := r.getFileContent("word/document.xml")
	if err != nil {
		return err
	}
	r.documentData = data

	r.document = &documentXML{}
	if err := xml.Unmarshal(data, r.document); err != nil {
		return fmt.Errorf("unmarshaling document.xml: %w", err)
	}
	return nil
}

func (r *Reader) parseNumbering() {
	data, err := r.getFileContent("word/numbering.xml")
	if err != nil {
		return
	}
	r.numbering = &numberingXML{}
	xml.Unmarshal(data, r.numbering)
}

func (r *Reader) parseRelationships() {
	data, err := r.getFileContent("word/_rels/document.xml.rels")
	if err != nil {
		return
	}
	r.rels = &relationshipsXML{}
	xml.Unmarshal(data, r.rels)
}

func (r *Reader) parseCoreProperties() {
	data, err := r.getFileContent("docProps/core.xml")
	if err != nil {
		return
	}
	r.coreProps = &corePropertiesXML{}
	xml.Unmarshal(data, r.coreProps)
}

// parseBody converts the raw XML body into parsed elements.
func (r *Reader) parseBody() []BodyElement {
	if r.document == nil || r.document.Body == nil {
		return nil
	}

	elements := make([]BodyElement, 0, len(r.document.Body.Elements))
	for _, el := range r.document.Body.Elements {
		switch {
		case el.Paragraph != nil:
			elements = append(elements, BodyElement{Paragraph: parseParagraph(el.Paragraph)})
		case el.Table != nil:
			elements = append(elements, BodyElement{Table: parseTable(el.Table)})
		}
	}
	return elements
}

// parseParagraph resolves a paragraph's runs, numbering, images and breaks.
func parseParagraph(p *paragraphXML) *Paragraph {
	parsed := &Paragraph{
		StyleID: p.Properties.Style.Val,
		NumID:   -1,
	}

	if p.Properties.NumPr.NumID != nil {
		if id, err := strconv.Atoi(p.Properties.NumPr.NumID.Val); err == nil {
			parsed.NumID = id
		}
		if lvl, err := strconv.Atoi(p.Properties.NumPr.ILvl.Val); err == nil {
			parsed.NumLevel = lvl
		}
	}

	appendRun := func(run runXML) {
		text := runText(run)
		if text != "" {
			parsed.Runs = append(parsed.Runs, Run{
				Text:       text,
				Formatting: runFormatting(run.Properties),
			})
		}
		for _, d := range run.Drawings {
			if ref, ok := imageRef(d); ok {
				parsed.Images = append(parsed.Images, ref)
			}
		}
		for _, br := range run.Breaks {
			if br.Type == "page" {
				parsed.PageBreak = true
			}
		}
	}

	for _, run := range p.Runs {
		appendRun(run)
	}

	return parsed
}

// runText joins a run's text content. Tabs and line breaks become their
// plain-text equivalents; page breaks are handled separately.
func runText(run runXML) string {
	var sb strings.Builder
	for _, t := range run.Text {
		sb.WriteString(t.Value)
	}
	for range run.Tabs {
		sb.WriteString("\t")
	}
	for _, br := range run.Breaks {
		if br.Type != "page" {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// runFormatting converts run properties to the model's formatting struct.
func runFormatting(props runPropsXML) model.TextFormatting {
	f := model.TextFormatting{
		Bold:          props.Bold.set(),
		Italic:        props.Italic.set(),
		Underline:     props.Underline.Val != "" && props.Underline.Val != "none",
		Strikethrough: props.Strike.set(),
	}

	// Font size is stored in half-points.
	if props.FontSize.Val != "" {
		if halfPoints, err := strconv.ParseFloat(props.FontSize.Val, 64); err == nil {
			f.FontSize = halfPoints / 2
		}
	}

	if props.Color.Val != "" && props.Color.Val != "auto" {
		f.Color = props.Color.Val
	}

	return f
}

// emusPerPixel converts OOXML EMUs to pixels at 96 DPI.
const emusPerPixel = 9525

func imageRef(d drawingXML) (ImageRef, bool) {
	pic := d.Inline
	if pic == nil {
		pic = d.Anchor
	}
	if pic == nil {
		return ImageRef{}, false
	}

	ref := ImageRef{Description: pic.DocPr.Descr}
	if pic.Blip != nil {
		ref.RelationshipID = pic.Blip.Embed
	}
	if cx, err := strconv.Atoi(pic.Extent.CX); err == nil {
		ref.Width = cx / emusPerPixel
	}
	if cy, err := strconv.Atoi(pic.Extent.CY); err == nil {
		ref.Height = cy / emusPerPixel
	}
	return ref, true
}
