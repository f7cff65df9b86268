package classify

import (
	"strings"
	"unicode"

	"github.com/docvane/docvane/model"
)

// ListMarker prefixes paragraphs whose list prefix was already generated
// from the document's numbering definitions, so the text heuristics don't
// process them a second time. Stripped by CleanListMarkers before the
// document is returned.
const ListMarker = "__WORD_LIST__"

// IsLikelyListItem reports whether paragraph text looks like a manually
// typed list item: a bullet character, a letter-dot prefix, or a number-dot
// prefix followed by enough content to rule out a numbered heading.
func IsLikelyListItem(text string) bool {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, ListMarker) {
		return false
	}

	first, ok := firstRune(text)
	if !ok {
		return false
	}

	if unicode.IsNumber(first) {
		if dot := strings.Index(text, "."); dot >= 0 {
			afterDot := strings.TrimSpace(text[dot+1:])
			// Short text after "N." reads as a heading, long text as an item.
			if len(afterDot) > 20 {
				return true
			}
		}
	}

	if strings.HasPrefix(text, "• ") || strings.HasPrefix(text, "- ") ||
		strings.HasPrefix(text, "* ") {
		return true
	}

	// Lettered lists: "a. something", "B. something"
	runes := []rune(text)
	if len(text) > 3 && len(runes) > 1 && runes[1] == '.' {
		if (first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z') {
			return true
		}
	}

	return false
}

// ListLevel derives a nesting level from leading indentation, two spaces per
// level.
func ListLevel(text string) int {
	return (len(text) - len(strings.TrimLeft(text, " \t"))) / 2
}

// GroupListItems walks the element stream and folds consecutive list-like
// paragraphs into List elements. Ordered and unordered runs are kept
// separate; any intervening non-list element closes the current list.
func GroupListItems(elements []model.Element) []model.Element {
	result := make([]model.Element, 0, len(elements))
	var items []model.ListItem
	ordered := false

	flush := func() {
		if len(items) > 0 {
			result = append(result, &model.List{Items: items, Ordered: ordered})
			items = nil
		}
	}

	for _, element := range elements {
		para, isPara := element.(*model.Paragraph)
		if !isPara {
			flush()
			result = append(result, element)
			continue
		}

		text := para.Text()
		if !IsLikelyListItem(text) {
			flush()
			result = append(result, element)
			continue
		}

		first, _ := firstRune(strings.TrimSpace(text))
		isOrdered := unicode.IsNumber(first)

		if len(items) > 0 && isOrdered != ordered {
			flush()
		}
		ordered = isOrdered

		items = append(items, model.ListItem{
			Runs:  cleanListItemRuns(para.Runs),
			Level: ListLevel(text),
		})
	}

	flush()
	return result
}

// cleanListItemRuns strips the bullet or number prefix off an item's runs.
// The prefix can span run boundaries; formatting of the surviving text is
// preserved.
func cleanListItemRuns(runs []model.FormattedRun) []model.FormattedRun {
	if len(runs) == 0 {
		return runs
	}

	var combined strings.Builder
	for _, run := range runs {
		combined.WriteString(run.Text)
	}
	text := strings.TrimSpace(combined.String())

	prefix := listItemPrefix(text)
	if prefix == "" {
		return runs
	}

	result := make([]model.FormattedRun, 0, len(runs))
	remove := len([]rune(prefix))

	for _, run := range runs {
		if remove == 0 {
			result = append(result, run)
			continue
		}
		runRunes := []rune(run.Text)
		if len(runRunes) <= remove {
			remove -= len(runRunes)
			continue
		}
		keep := strings.TrimLeft(string(runRunes[remove:]), " \t")
		if keep != "" {
			result = append(result, model.FormattedRun{Text: keep, Formatting: run.Formatting})
		}
		remove = 0
	}

	return result
}

func listItemPrefix(text string) string {
	for _, bullet := range []string{"• ", "- ", "* "} {
		if strings.HasPrefix(text, bullet) {
			return bullet
		}
	}

	if dot := strings.Index(text, "."); dot >= 0 {
		numeric := dot > 0
		for _, r := range text[:dot] {
			if r < '0' || r > '9' {
				numeric = false
				break
			}
		}
		if numeric {
			end := dot + 1
			if end < len(text) && text[end] == ' ' {
				end++
			}
			return text[:end]
		}
	}

	runes := []rune(text)
	if len(runes) > 2 && runes[1] == '.' {
		first := runes[0]
		if (first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z') {
			if runes[2] == ' ' {
				return string(runes[:3])
			}
			return string(runes[:2])
		}
	}

	return ""
}

// CleanListMarkers strips the internal ListMarker prefix from paragraph runs
// and from the first run of each list item. Last pass before a document is
// handed back to the caller.
func CleanListMarkers(elements []model.Element) []model.Element {
	for _, element := range elements {
		switch el := element.(type) {
		case *model.Paragraph:
			for i := range el.Runs {
				el.Runs[i].Text = strings.TrimPrefix(el.Runs[i].Text, ListMarker)
			}
		case *model.List:
			for i := range el.Items {
				item := &el.Items[i]
				if len(item.Runs) > 0 && strings.HasPrefix(item.Text(), ListMarker) {
					item.Runs[0].Text = strings.TrimPrefix(item.Runs[0].Text, ListMarker)
				}
			}
		}
	}
	return elements
}
