package numbering

import "testing"

func TestListNumbererSequence(t *testing.T) {
	n := NewListNumberer()

	for i, want := range []string{"1. ", "2. ", "3. "} {
		got := n.Next(7, 0, Decimal)
		if got != want {
			t.Errorf("item %d: got %q, want %q", i, got, want)
		}
	}
}

func TestListNumbererDeeperLevelReset(t *testing.T) {
	n := NewListNumberer()

	n.Next(7, 0, Decimal) // 1.
	if got := n.Next(7, 1, LowerLetter); got != "a. " {
		t.Errorf("first child: got %q, want %q", got, "a. ")
	}
	if got := n.Next(7, 1, LowerLetter); got != "b. " {
		t.Errorf("second child: got %q, want %q", got, "b. ")
	}

	// A new parent item resets the children.
	if got := n.Next(7, 0, Decimal); got != "2. " {
		t.Errorf("second parent: got %q, want %q", got, "2. ")
	}
	if got := n.Next(7, 1, LowerLetter); got != "a. " {
		t.Errorf("child after reset: got %q, want %q", got, "a. ")
	}
}

func TestListNumbererIndependentIDs(t *testing.T) {
	n := NewListNumberer()

	n.Next(7, 0, Decimal)
	n.Next(7, 0, Decimal)
	if got := n.Next(8, 0, Decimal); got != "1. " {
		t.Errorf("separate numbering id should start fresh: got %q", got)
	}
	// Resetting levels of id 8 must not touch id 7.
	if got := n.Next(7, 0, Decimal); got != "3. " {
		t.Errorf("id 7 should continue: got %q", got)
	}
}

func TestListNumbererHierarchical(t *testing.T) {
	n := NewListNumberer()

	n.Next(4, 0, FormatFor(4, 0)) // 1.
	if got := n.Next(4, 1, FormatFor(4, 1)); got != "1.1. " {
		t.Errorf("got %q, want %q", got, "1.1. ")
	}
	if got := n.Next(4, 1, FormatFor(4, 1)); got != "1.2. " {
		t.Errorf("got %q, want %q", got, "1.2. ")
	}
	n.Next(4, 0, FormatFor(4, 0)) // 2.
	if got := n.Next(4, 1, FormatFor(4, 1)); got != "2.1. " {
		t.Errorf("after parent increment: got %q, want %q", got, "2.1. ")
	}
}

func TestFormatCounterStyles(t *testing.T) {
	tests := []struct {
		counter int
		format  Format
		want    string
	}{
		{1, Decimal, "1. "},
		{12, Decimal, "12. "},
		{1, LowerLetter, "a. "},
		{26, LowerLetter, "z. "},
		{27, LowerLetter, "27. "},
		{2, UpperLetter, "B. "},
		{27, UpperLetter, "27. "},
		{4, LowerRoman, "iv. "},
		{9, UpperRoman, "IX. "},
		{3, ParenLowerLetter, "(c)"},
		{27, ParenLowerLetter, "(27)"},
		{2, ParenLowerRoman, "(ii)"},
		{99, Bullet, "* "},
	}
	for _, tt := range tests {
		if got := formatCounter(tt.counter, tt.format); got != tt.want {
			t.Errorf("formatCounter(%d, %v) = %q, want %q", tt.counter, tt.format, got, tt.want)
		}
	}
}

func TestToRoman(t *testing.T) {
	tests := []struct {
		num  int
		want string
	}{
		{1, "I"},
		{4, "IV"},
		{9, "IX"},
		{14, "XIV"},
		{40, "XL"},
		{90, "XC"},
		{400, "CD"},
		{900, "CM"},
		{1994, "MCMXCIV"},
		{3999, "MMMCMXCIX"},
	}
	for _, tt := range tests {
		if got := ToRoman(tt.num); got != tt.want {
			t.Errorf("ToRoman(%d) = %q, want %q", tt.num, got, tt.want)
		}
	}
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		numID, level int
		want         Format
	}{
		{4, 0, Decimal},
		{4, 2, LowerRoman},
		{5, 2, ParenLowerLetter},
		{2, 3, ParenLowerRoman},
		{1, 1, LowerLetter},
		{1, 4, ParenLowerRoman},
		// unknown id cycles by level
		{99, 0, Decimal},
		{99, 1, LowerLetter},
		{99, 2, LowerRoman},
		{99, 3, UpperLetter},
		{99, 4, UpperRoman},
		{99, 7, Decimal},
	}
	for _, tt := range tests {
		if got := FormatFor(tt.numID, tt.level); got != tt.want {
			t.Errorf("FormatFor(%d, %d) = %v, want %v", tt.numID, tt.level, got, tt.want)
		}
	}
}

func TestOrderedFor(t *testing.T) {
	for _, level := range []int{0, 1, 2} {
		if !OrderedFor(1, level) {
			t.Errorf("numId 1 level %d should be ordered", level)
		}
	}
	if OrderedFor(1, 4) {
		t.Error("numId 1 level 4 should be unordered")
	}
	if !OrderedFor(1, 3) {
		t.Error("numId 1 level 3 should be ordered")
	}
	if !OrderedFor(42, 0) {
		t.Error("unknown numbering ids default to ordered")
	}
}

func TestExplicit(t *testing.T) {
	tests := []struct {
		numID, level int
		want         bool
	}{
		{1, 0, true},
		{1, 4, true},
		{1, 5, false},
		{4, 2, true},
		{4, 3, false},
		{5, 2, true},
		{5, 0, false},
		{2, 0, true},
		{2, 3, true},
		{2, 1, false},
		{99, 0, false},
	}
	for _, tt := range tests {
		if got := Explicit(tt.numID, tt.level); got != tt.want {
			t.Errorf("Explicit(%d, %d) = %v, want %v", tt.numID, tt.level, got, tt.want)
		}
	}
}

func TestHeadingTrackerDisabled(t *testing.T) {
	tr := NewHeadingTracker()
	if got := tr.Next(1); got != "" {
		t.Errorf("disabled tracker returned %q, want empty", got)
	}
}

func TestHeadingTrackerHierarchy(t *testing.T) {
	tr := NewHeadingTracker()
	tr.Enable()

	steps := []struct {
		level int
		want  string
	}{
		{1, "1"},
		{2, "1.1"},
		{2, "1.2"},
		{3, "1.2.1"},
		{1, "2"},
		{2, "2.1"},
	}
	for i, s := range steps {
		if got := tr.Next(s.level); got != s.want {
			t.Errorf("step %d: Next(%d) = %q, want %q", i, s.level, got, s.want)
		}
	}
}

func TestHeadingTrackerClampsLevel(t *testing.T) {
	tr := NewHeadingTracker()
	tr.Enable()

	if got := tr.Next(0); got != "1" {
		t.Errorf("Next(0) = %q, want %q", got, "1")
	}
	tr2 := NewHeadingTracker()
	tr2.Enable()
	if got := tr2.Next(9); got != "1" {
		t.Errorf("Next(9) = %q, want %q", got, "1")
	}
}
