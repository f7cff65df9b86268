package model

import (
	"fmt"
	"strings"
)

// SearchResult is a single match from Search.
type SearchResult struct {
	ElementIndex int
	Text         string // the matched element's (or cell's/item's) full text
	StartPos     int    // byte offset of the match within Text
	EndPos       int    // StartPos + len(query)
}

// OutlineItem is a single entry in a document outline.
type OutlineItem struct {
	Title        string
	Level        int
	ElementIndex int
}

// Search performs a case-insensitive substring search over the flattened
// text of every element. An empty or whitespace-only query yields no results.
func Search(doc *Document, query string) []SearchResult {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	queryLower := strings.ToLower(query)

	var results []SearchResult

	match := func(index int, text string) {
		if pos := strings.Index(strings.ToLower(text), queryLower); pos >= 0 {
			results = append(results, SearchResult{
				ElementIndex: index,
				Text:         text,
				StartPos:     pos,
				EndPos:       pos + len(query),
			})
		}
	}

	for i, element := range doc.Elements {
		switch el := element.(type) {
		case *Heading:
			match(i, el.Text)
		case *Paragraph:
			match(i, el.Text())
		case *List:
			for j := range el.Items {
				match(i, el.Items[j].Text())
			}
		case *Table:
			for _, header := range el.Data.Headers {
				match(i, header.Content)
			}
			for _, row := range el.Data.Rows {
				for _, cell := range row {
					match(i, cell.Content)
				}
			}
		case *Image:
			match(i, el.Description)
		case *Equation:
			match(i, el.LaTeX)
		}
	}

	return results
}

// Outline returns one item per heading element, the title prefixed with its
// number when present.
func Outline(doc *Document) []OutlineItem {
	var outline []OutlineItem
	for i, element := range doc.Elements {
		h, ok := element.(*Heading)
		if !ok {
			continue
		}
		title := h.Text
		if h.Number != "" {
			title = fmt.Sprintf("%s %s", h.Number, h.Text)
		}
		outline = append(outline, OutlineItem{
			Title:        title,
			Level:        h.Level,
			ElementIndex: i,
		})
	}
	return outline
}
