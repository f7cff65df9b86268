package classify

import "testing"

func TestHeadingNumber(t *testing.T) {
	tests := []struct {
		text       string
		wantNumber string
		wantRest   string
		wantOK     bool
	}{
		{"1. Introduction", "1", "Introduction", true},
		{"1.1 Project Overview", "1.1", "Project Overview", true},
		{"2.1.1 Something Important", "2.1.1", "Something Important", true},
		{"A. First Section", "A", "First Section", true},
		{"I. Roman Numeral", "I", "Roman Numeral", true},
		{"Section 1.2 Overview", "Section 1.2", "Overview", true},
		{"Chapter 5 Summary", "Chapter 5", "Summary", true},
		{"Introduction", "", "", false},
		// single numbers without a period are titles, not numbering
		{"Heading 1", "", "", false},
		{"Version 2", "", "", false},
		{"", "", "", false},
	}
	for _, tt := range tests {
		number, rest, ok := HeadingNumber(tt.text)
		if ok != tt.wantOK || number != tt.wantNumber || rest != tt.wantRest {
			t.Errorf("HeadingNumber(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.text, number, rest, ok, tt.wantNumber, tt.wantRest, tt.wantOK)
		}
	}
}

func TestHeadingStyleLevel(t *testing.T) {
	tests := []struct {
		styleID   string
		wantLevel int
		wantOK    bool
	}{
		{"Heading1", 1, true},
		{"Heading3", 3, true},
		{"heading2", 2, true},
		{"Heading9", 6, true}, // clamped
		{"Heading", 1, true},  // no digit defaults to 1
		{"Title", 0, false},
		{"Normal", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		level, ok := HeadingStyleLevel(tt.styleID)
		if level != tt.wantLevel || ok != tt.wantOK {
			t.Errorf("HeadingStyleLevel(%q) = (%d, %v), want (%d, %v)",
				tt.styleID, level, ok, tt.wantLevel, tt.wantOK)
		}
	}
}

func TestHeadingFromText(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		bold      bool
		wantLevel int
		wantOK    bool
	}{
		{"bold short phrase", "Project Overview", true, 1, true},
		{"bold ending in period", "This is a sentence.", true, 0, false},
		{"bold ending in colon", "Steps to reproduce:", true, 0, false},
		{"all caps line", "EXECUTIVE SUMMARY REPORT", false, 1, true},
		{"chapter prefix", "Chapter One", false, 1, true},
		{"standalone phrase", "Deployment Strategy", false, 1, true},
		{"longer phrase level two", "Considerations When Scaling Systems", false, 2, true},
		{"sentence with connector", "We tried this and it worked", false, 0, false},
		{"function word", "Notes for the reader here", false, 0, false},
		{"list item", "1. This is a long list item with plenty of content", false, 0, false},
		{"bullet", "• bulleted thing", true, 0, false},
		{"too long", string(make([]byte, 120)), true, 0, false},
		{"multiline", "Title\nSubtitle", true, 0, false},
	}
	for _, tt := range tests {
		level, ok := HeadingFromText(tt.text, tt.bold)
		if level != tt.wantLevel || ok != tt.wantOK {
			t.Errorf("%s: HeadingFromText(%q, bold=%v) = (%d, %v), want (%d, %v)",
				tt.name, tt.text, tt.bold, level, ok, tt.wantLevel, tt.wantOK)
		}
	}
}

func TestIsLikelySentence(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"First point. Second point. Third point.", true},
		{"Short title", false},
		{"apples and oranges", true},
		{"It failed but recovered", true},
		{"Overview", false},
	}
	for _, tt := range tests {
		if got := IsLikelySentence(tt.text); got != tt.want {
			t.Errorf("IsLikelySentence(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestAutoNumber(t *testing.T) {
	tests := []struct {
		name        string
		levels      []int
		hasExplicit bool
		want        bool
	}{
		{"multi level hierarchy", []int{1, 2, 2, 1, 2}, false, true},
		{"several top level", []int{1, 1, 1}, false, true},
		{"explicit numbering wins", []int{1, 2, 2, 1}, true, false},
		{"too few headings", []int{1, 2}, false, false},
		{"single lonely level", []int{3, 3, 3}, false, false},
	}
	for _, tt := range tests {
		if got := AutoNumber(tt.levels, tt.hasExplicit); got != tt.want {
			t.Errorf("%s: AutoNumber(%v, %v) = %v, want %v",
				tt.name, tt.levels, tt.hasExplicit, got, tt.want)
		}
	}
}
