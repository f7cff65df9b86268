package docvane

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/docvane/docvane/classify"
	"github.com/docvane/docvane/docx"
	"github.com/docvane/docvane/equation"
	"github.com/docvane/docvane/images"
	"github.com/docvane/docvane/model"
	"github.com/docvane/docvane/numbering"
)

// Load runs the full reconstruction pipeline: validate and parse the
// package, classify every paragraph and table in order, splice equations
// into their paragraph positions, group text-heuristic lists, and compute
// the document metadata.
func (l *Loader) Load() (*model.Document, error) {
	reader, err := docx.Open(l.filename)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	info, err := os.Stat(l.filename)
	if err != nil {
		return nil, fmt.Errorf("reading file info: %w", err)
	}

	title := strings.TrimSuffix(filepath.Base(l.filename), filepath.Ext(l.filename))
	if title == "" {
		title = "Untitled Document"
	}

	body := reader.Body()

	tracker := numbering.NewHeadingTracker()
	if shouldAutoNumber(body) {
		tracker.Enable()
	}

	var extractor *images.Extractor
	if l.images.Enabled {
		extractor, err = images.NewExtractor()
		if err != nil {
			l.logger.Warn("image extraction unavailable", "error", err)
			extractor = nil
		} else if err := extractor.ExtractFromDocx(l.filename, l.images); err != nil {
			l.logger.Warn("image extraction failed", "file", l.filename, "error", err)
		}
	}

	// Second pass over the raw XML: the object model does not surface math
	// markup, so equation positions come from a direct scan. Both the scan
	// and the walk below count body-level paragraphs with the same 1-based
	// counter, so the positional maps line up with the walk's index.
	documentXML := reader.DocumentXML()
	inline := equation.InlinePositions(documentXML)

	displayByPara := make(map[int][]*model.Equation)
	for _, eq := range equation.Extract(documentXML) {
		if !eq.Inline {
			displayByPara[eq.ParagraphIndex] = append(displayByPara[eq.ParagraphIndex],
				&model.Equation{LaTeX: eq.LaTeX, Fallback: eq.Fallback})
		}
	}

	numberer := numbering.NewListNumberer()
	var elements []model.Element
	consumed := make(map[int]bool)
	wordCount := 0
	paraIndex := 0

	for _, el := range body {
		switch {
		case el.Paragraph != nil:
			p := el.Paragraph
			paraIndex++

			for _, ref := range p.Images {
				elements = append(elements, imageElement(extractor, ref, countImages(elements)))
			}
			if p.PageBreak {
				elements = append(elements, &model.PageBreak{})
			}

			runs := formattedRuns(p)
			totalText := joinRuns(runs)
			if strings.TrimSpace(totalText) == "" {
				// A paragraph without text can still hold display math.
				if eqs, ok := displayByPara[paraIndex]; ok {
					for _, eq := range eqs {
						elements = append(elements, eq)
					}
					consumed[paraIndex] = true
				}
				continue
			}
			wordCount += len(strings.Fields(totalText))

			// Priority: list numbering > heading style > text heuristics.
			if p.NumID >= 0 {
				elements = append(elements, listParagraph(reader, numberer, p, runs))
			} else if level, ok := classify.HeadingStyleLevel(p.StyleID); ok {
				elements = append(elements, headingElement(p, level, totalText, tracker))
			} else if level, ok := classify.HeadingFromText(totalText, firstBold(runs)); ok {
				elements = append(elements, &model.Heading{Level: level, Text: totalText})
			} else if hasInlineEquation(inline[paraIndex]) {
				elements = append(elements, &model.Paragraph{Runs: inlineRuns(inline[paraIndex])})
			} else {
				elements = append(elements, &model.Paragraph{Runs: model.ConsolidateRuns(runs)})
			}

		case el.Table != nil:
			if data, ok := el.Table.ToTableData(); ok {
				elements = append(elements, &model.Table{Data: data})
			}
		}
	}

	elements = classify.GroupListItems(elements)
	elements = classify.CleanListMarkers(elements)
	elements = mergeDisplayEquations(elements, displayByPara, consumed)

	core := reader.Core()
	doc := model.NewDocument(title)
	doc.Elements = elements
	doc.ImageOptions = l.images
	doc.Metadata = model.Metadata{
		FilePath:  l.filename,
		FileSize:  info.Size(),
		WordCount: wordCount,
		PageCount: estimatePageCount(wordCount),
		Created:   core.Created,
		Modified:  core.Modified,
		Author:    core.Author,
	}
	return doc, nil
}

// shouldAutoNumber pre-scans styled headings to decide whether the heading
// tracker should generate numbers for this document.
func shouldAutoNumber(body []docx.BodyElement) bool {
	var levels []int
	hasExplicit := false

	for _, el := range body {
		if el.Paragraph == nil {
			continue
		}
		level, ok := classify.HeadingStyleLevel(el.Paragraph.StyleID)
		if !ok {
			continue
		}
		if _, _, ok := classify.HeadingNumber(el.Paragraph.Text()); ok {
			hasExplicit = true
		}
		levels = append(levels, level)
	}

	return classify.AutoNumber(levels, hasExplicit)
}

func formattedRuns(p *docx.Paragraph) []model.FormattedRun {
	var runs []model.FormattedRun
	for _, r := range p.Runs {
		if r.Text != "" {
			runs = append(runs, model.FormattedRun{Text: r.Text, Formatting: r.Formatting})
		}
	}
	return runs
}

func joinRuns(runs []model.FormattedRun) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

func firstBold(runs []model.FormattedRun) bool {
	return len(runs) > 0 && runs[0].Formatting.Bold
}

// imageElement builds the placeholder for an embedded drawing. The element
// is emitted whether or not extraction ran; Path stays empty when it did not.
func imageElement(extractor *images.Extractor, ref docx.ImageRef, seen int) *model.Image {
	description := ref.Description
	if description == "" {
		description = fmt.Sprintf("Image %d", seen+1)
	}
	img := &model.Image{
		Description:    description,
		Width:          ref.Width,
		Height:         ref.Height,
		RelationshipID: ref.RelationshipID,
	}
	if extractor != nil {
		if path, ok := extractor.Path(ref.RelationshipID); ok {
			img.Path = path
		}
	}
	return img
}

func countImages(elements []model.Element) int {
	count := 0
	for _, el := range elements {
		if _, ok := el.(*model.Image); ok {
			count++
		}
	}
	return count
}

// listParagraph formats an automatic Word list item: a synthetic marker-
// tagged prefix run carrying indentation and the generated number or bullet,
// followed by the item's real runs with their formatting intact.
func listParagraph(reader *docx.Reader, numberer *numbering.ListNumberer, p *docx.Paragraph, runs []model.FormattedRun) model.Element {
	level := p.NumLevel

	format := numbering.FormatFor(p.NumID, level)
	if !numbering.Explicit(p.NumID, level) {
		// The document's own numbering definitions beat the level-cycling
		// fallback when they cover this pair.
		if f, ok := reader.ListFormat(p.NumID, level); ok {
			format = f
		}
	}

	prefix := "* "
	if format != numbering.Bullet && numbering.OrderedFor(p.NumID, level) {
		prefix = numberer.Next(p.NumID, level, format)
	}

	indent := strings.Repeat("  ", level)
	prefixRun := model.FormattedRun{Text: classify.ListMarker + indent + prefix}

	if len(runs) == 0 {
		return &model.Paragraph{Runs: []model.FormattedRun{prefixRun}}
	}
	return &model.Paragraph{Runs: append([]model.FormattedRun{prefixRun}, runs...)}
}

// headingElement builds a heading for a style-detected heading paragraph.
// Number sources in priority order: a number the author literally typed,
// a reconstruction from the paragraph's numbering property, then the
// document-wide auto-number tracker.
func headingElement(p *docx.Paragraph, level int, totalText string, tracker *numbering.HeadingTracker) *model.Heading {
	if number, rest, ok := classify.HeadingNumber(totalText); ok {
		return &model.Heading{Level: level, Text: rest, Number: number}
	}
	if p.NumID >= 0 {
		return &model.Heading{Level: level, Text: totalText, Number: implicitHeadingNumber(level)}
	}
	return &model.Heading{Level: level, Text: totalText, Number: tracker.Next(level)}
}

// implicitHeadingNumber reconstructs a plausible number for a heading whose
// numbering Word generates automatically: "1", "1.1", "1.1.1", "1.1.1.1"
// by heading level. Without the numbering state of the whole definition
// this is a placeholder shape, not a counted value.
func implicitHeadingNumber(level int) string {
	if level < 1 {
		level = 1
	}
	if level > 4 {
		level = 4
	}
	return strings.Repeat("1.", level-1) + "1"
}

func hasInlineEquation(content []equation.Content) bool {
	for _, item := range content {
		if item.Equation {
			return true
		}
	}
	return false
}

// inlineRuns rebuilds a paragraph's runs from the positional scan,
// flushing accumulated text around each "$latex$" equation run.
func inlineRuns(content []equation.Content) []model.FormattedRun {
	var runs []model.FormattedRun
	var text strings.Builder

	flush := func() {
		if text.Len() > 0 {
			runs = append(runs, model.FormattedRun{Text: text.String()})
			text.Reset()
		}
	}

	for _, item := range content {
		if item.Equation {
			flush()
			runs = append(runs, model.FormattedRun{Text: "$" + item.LaTeX + "$"})
		} else {
			text.WriteString(item.Text)
		}
	}
	flush()

	return runs
}

// mergeDisplayEquations inserts any display equations the body walk did not
// place (equations sharing a paragraph with other content, or indices the
// two passes disagreed on) at the nearest paragraph boundary, in ascending
// index order. Indices already consumed during the walk are skipped.
func mergeDisplayEquations(elements []model.Element, display map[int][]*model.Equation, consumed map[int]bool) []model.Element {
	if len(display) == 0 {
		return elements
	}

	var indices []int
	for idx := range display {
		if !consumed[idx] {
			indices = append(indices, idx)
		}
	}
	if len(indices) == 0 {
		return elements
	}
	sort.Ints(indices)

	result := make([]model.Element, 0, len(elements))
	paraIndex := 0

	for _, el := range elements {
		switch el.(type) {
		case *model.Paragraph, *model.Heading, *model.List:
			paraIndex++
			for len(indices) > 0 && indices[0] < paraIndex {
				for _, eq := range display[indices[0]] {
					result = append(result, eq)
				}
				indices = indices[1:]
			}
		}
		result = append(result, el)
	}

	for _, idx := range indices {
		for _, eq := range display[idx] {
			result = append(result, eq)
		}
	}

	return result
}

// estimatePageCount assumes roughly 250 words per page.
func estimatePageCount(wordCount int) int {
	return (wordCount + 249) / 250
}
