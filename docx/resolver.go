package docx

import (
	"strconv"

	"github.com/docvane/docvane/numbering"
)

// NumberingResolver maps a paragraph's numbering reference (numId plus
// indentation level) to the format declared in word/numbering.xml, going
// through the num -> abstractNum indirection.
type NumberingResolver struct {
	abstractNums map[string]*abstractNumXML // abstractNumId -> definition
	numMappings  map[string]string          // numId -> abstractNumId
}

// NewNumberingResolver creates a resolver from parsed numbering.xml.
// A nil input yields a resolver that resolves nothing.
func NewNumberingResolver(n *numberingXML) *NumberingResolver {
	nr := &NumberingResolver{
		abstractNums: make(map[string]*abstractNumXML),
		numMappings:  make(map[string]string),
	}

	if n == nil {
		return nr
	}

	for i := range n.AbstractNums {
		an := &n.AbstractNums[i]
		nr.abstractNums[an.AbstractNumID] = an
	}
	for _, num := range n.Nums {
		nr.numMappings[num.NumID] = num.AbstractNumID.Val
	}

	return nr
}

// Format returns the numbering format declared for the given numId and level.
// The second return is false when numbering.xml does not define the pair or
// uses a numFmt the renderer has no representation for.
func (nr *NumberingResolver) Format(numID, level int) (numbering.Format, bool) {
	abstractID, ok := nr.numMappings[strconv.Itoa(numID)]
	if !ok {
		return numbering.Decimal, false
	}
	an, ok := nr.abstractNums[abstractID]
	if !ok {
		return numbering.Decimal, false
	}

	ilvl := strconv.Itoa(level)
	for _, lvl := range an.Levels {
		if lvl.ILvl == ilvl {
			return formatFromNumFmt(lvl.NumFmt.Val)
		}
	}
	return numbering.Decimal, false
}

// formatFromNumFmt maps OOXML numFmt values to renderer formats.
func formatFromNumFmt(numFmt string) (numbering.Format, bool) {
	switch numFmt {
	case "decimal":
		return numbering.Decimal, true
	case "lowerLetter":
		return numbering.LowerLetter, true
	case "upperLetter":
		return numbering.UpperLetter, true
	case "lowerRoman":
		return numbering.LowerRoman, true
	case "upperRoman":
		return numbering.UpperRoman, true
	case "bullet":
		return numbering.Bullet, true
	}
	return numbering.Decimal, false
}

// ListFormat resolves a numbering reference against the document's own
// numbering definitions.
func (r *Reader) ListFormat(numID, level int) (numbering.Format, bool) {
	if r.listNums == nil {
		r.listNums = NewNumberingResolver(r.numbering)
	}
	return r.listNums.Format(numID, level)
}
