// Package classify contains the text-shape heuristics that decide whether a
// paragraph is a heading or a list item when the document's styles don't say.
//
// Style-based signals always win; these functions are the fallback for
// documents authored with manual formatting (bold lines as headings, typed
// "1." prefixes as lists).
package classify

import (
	"regexp"
	"strings"
	"unicode"
)

// Literal number prefixes accepted at the start of a heading. Single numbers
// require a trailing period so titles like "Heading 1" are not mistaken for
// numbered headings; hierarchical numbers (1.1, 2.1.3) do not.
var headingNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(\d+(?:\.\d+)+\.?|\d+\.)\s+(.+)$`),
	regexp.MustCompile(`^((?:Section|Chapter|Part)\s+\d+(?:\.\d+)*\.?)\s+(.+)$`),
	regexp.MustCompile(`^([A-Z]\.)\s+(.+)$`),
	regexp.MustCompile(`^([IVX]+\.)\s+(.+)$`),
}

// HeadingNumber splits a literal number prefix off heading text:
// "1.2 Overview" yields ("1.2", "Overview", true). Trailing periods are
// dropped from the number. Returns ok=false when the text carries no
// recognizable prefix.
func HeadingNumber(text string) (number, rest string, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", "", false
	}

	for _, pattern := range headingNumberPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		number = strings.TrimRight(m[1], ".")
		rest = strings.TrimSpace(m[2])
		if number != "" && rest != "" {
			return number, rest, true
		}
	}
	return "", "", false
}

// HeadingStyleLevel maps a paragraph style id to a heading level (1-6), or
// ok=false when the style is not a heading style. "Heading3" yields 3;
// heading styles without a digit default to level 1.
func HeadingStyleLevel(styleID string) (int, bool) {
	if !strings.HasPrefix(styleID, "Heading") && !strings.HasPrefix(styleID, "heading") {
		return 0, false
	}

	runes := []rune(styleID)
	last := runes[len(runes)-1]
	if last >= '0' && last <= '9' {
		level := int(last - '0')
		if level > 6 {
			level = 6
		}
		return level, true
	}
	return 1, true
}

// HeadingFromText applies conservative text-shape heuristics to decide
// whether an unstyled paragraph is a heading, returning its level.
// Deliberately biased toward false negatives: a missed heading degrades the
// outline, a false positive breaks reading flow.
func HeadingFromText(text string, bold bool) (int, bool) {
	text = strings.TrimSpace(text)

	if len(text) >= 100 || strings.Contains(text, "\n") {
		return 0, false
	}

	if IsLikelyListItem(text) || IsLikelySentence(text) {
		return 0, false
	}

	// Mid-sentence function words rule out a title.
	if strings.Contains(text, " the ") ||
		strings.Contains(text, " and ") ||
		strings.Contains(text, " with ") ||
		strings.Contains(text, " for ") {
		return 0, false
	}

	if bold && len(text) < 60 && len(text) > 5 {
		if !strings.HasSuffix(text, ".") && !strings.HasSuffix(text, ",") &&
			!strings.HasSuffix(text, ";") && !strings.HasSuffix(text, ":") {
			return levelFromLength(text), true
		}
	}

	// All-caps lines of moderate length read as top-level headings.
	if len(text) > 15 && len(text) < 50 && allUpperShape(text) {
		return 1, true
	}

	if strings.HasPrefix(text, "Chapter ") || strings.HasPrefix(text, "Section ") ||
		strings.HasPrefix(text, "Part ") {
		return levelFromLength(text), true
	}

	// Standalone title-like phrases: short, no sentence punctuation,
	// a few words, at least one meaningful one.
	if len(text) > 10 && len(text) < 40 &&
		!strings.HasSuffix(text, ".") &&
		!strings.Contains(text, ",") &&
		!strings.Contains(text, "(") &&
		!strings.Contains(text, ":") {
		words := strings.Fields(text)
		if len(words) >= 2 && len(words) <= 5 {
			meaningful := false
			for _, word := range words {
				if len(word) > 3 && allAlphabetic(word) {
					meaningful = true
					break
				}
			}
			first, _ := firstRune(text)
			if meaningful && unicode.IsUpper(first) {
				return levelFromLength(text), true
			}
		}
	}

	return 0, false
}

// levelFromLength guesses heading depth from text length: shorter is higher.
func levelFromLength(text string) int {
	switch {
	case len(text) < 20:
		return 1
	case len(text) < 40:
		return 2
	default:
		return 3
	}
}

// IsLikelySentence reports whether text reads as prose rather than a title.
func IsLikelySentence(text string) bool {
	text = strings.TrimSpace(text)

	if strings.Count(text, ". ") > 1 {
		return true
	}

	if len(text) > 80 && (strings.HasSuffix(text, ".") ||
		strings.HasSuffix(text, "!") || strings.HasSuffix(text, "?")) {
		return true
	}

	return strings.Contains(text, " and ") ||
		strings.Contains(text, " but ") ||
		strings.Contains(text, " however ") ||
		strings.Contains(text, " therefore ")
}

// AutoNumber decides whether document-wide heading auto-numbering should be
// enabled, given the style-detected heading levels (1-6) and whether any
// heading carries a literal number in its text. Numbering is only generated
// for documents with a real hierarchy and no author-typed numbers.
func AutoNumber(levels []int, hasExplicitNumbering bool) bool {
	if hasExplicitNumbering || len(levels) < 3 {
		return false
	}

	var levelCounts [6]int
	for _, level := range levels {
		idx := level - 1
		if idx < 0 {
			idx = 0
		}
		if idx > 5 {
			idx = 5
		}
		levelCounts[idx]++
	}

	distinct := 0
	for _, count := range levelCounts {
		if count > 0 {
			distinct++
		}
	}
	return distinct > 1 || levelCounts[0] > 1
}

func allUpperShape(text string) bool {
	for _, r := range text {
		if !unicode.IsUpper(r) && !unicode.IsSpace(r) && !unicode.IsNumber(r) &&
			!isASCIIPunct(r) {
			return false
		}
	}
	return true
}

func allAlphabetic(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// isASCIIPunct matches the ASCII punctuation block, including the characters
// Unicode classifies as symbols rather than punctuation.
func isASCIIPunct(r rune) bool {
	return (r >= '!' && r <= '/') || (r >= ':' && r <= '@') ||
		(r >= '[' && r <= '`') || (r >= '{' && r <= '~')
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}
