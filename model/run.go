package model

// TextFormatting represents the style bits of a text run.
// Absent properties are the zero value ("off").
type TextFormatting struct {
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	FontSize      float64 // points, 0 if unspecified
	Color         string  // hex without '#', "" if unspecified
}

// FormattedRun represents a piece of text with uniform formatting.
type FormattedRun struct {
	Text       string
	Formatting TextFormatting
}

// ConsolidateRuns merges adjacent runs with identical formatting into single
// runs. Concatenating the text of the result equals concatenating the
// originals; runs with different formatting are never merged.
func ConsolidateRuns(runs []FormattedRun) []FormattedRun {
	if len(runs) == 0 {
		return runs
	}

	consolidated := make([]FormattedRun, 0, len(runs))
	current := runs[0]

	for _, run := range runs[1:] {
		if current.Formatting == run.Formatting {
			current.Text += run.Text
		} else {
			consolidated = append(consolidated, current)
			current = run
		}
	}

	return append(consolidated, current)
}
