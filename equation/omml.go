// Package equation converts OMML (Office Math Markup Language) fragments
// into renderable math notation.
//
// OMML fragments arrive as raw XML strings reconstructed from the package's
// word/document.xml (see scan.go). Parse builds a small typed tree from a
// fragment; RenderLaTeX and RenderUnicode walk the same tree. A malformed
// fragment never fails: unterminated tags yield whatever was accumulated.
package equation

import "strings"

// Node is a parsed OMML expression.
type Node interface {
	isNode()
}

// Text is a terminal run of equation text.
type Text string

// Sequence is an ordered series of sibling expressions.
type Sequence []Node

// Superscript is base^sup.
type Superscript struct {
	Base Node
	Sup  Node
}

// Subscript is base_sub.
type Subscript struct {
	Base Node
	Sub  Node
}

// SubSup carries both a subscript and a superscript on one base.
type SubSup struct {
	Base Node
	Sub  Node
	Sup  Node
}

// Fraction is num over den. NoBar marks the binomial-coefficient variant.
type Fraction struct {
	Num   Node
	Den   Node
	NoBar bool
}

// Nary is an n-ary operator (sum, integral, product) with optional limits.
type Nary struct {
	Op   string // operator glyph, "∑" by default
	Sub  Node   // nil when absent
	Sup  Node   // nil when absent
	Base Node
}

// Delimiter wraps content in fences.
type Delimiter struct {
	Content Node
}

// Function is a named function application (sin, cos, log).
type Function struct {
	Name Node
	Arg  Node
}

// Radical is a root. Deg is nil for plain square roots.
type Radical struct {
	Deg  Node
	Base Node
}

func (Text) isNode()        {}
func (Sequence) isNode()    {}
func (Superscript) isNode() {}
func (Subscript) isNode()   {}
func (SubSup) isNode()      {}
func (Fraction) isNode()    {}
func (Nary) isNode()        {}
func (Delimiter) isNode()   {}
func (Function) isNode()    {}
func (Radical) isNode()     {}

// Parse builds an expression tree from an OMML fragment. Unknown tags are
// transparent: their inner content is still scanned, so text inside
// unrecognized wrappers survives in document order.
func Parse(omml string) Node {
	var nodes []Node
	i := 0

	for i < len(omml) {
		rest := omml[i:]
		switch {
		case strings.HasPrefix(rest, "<m:sSubSup>"):
			inner, consumed := capture(rest, "m:sSubSup")
			nodes = append(nodes, SubSup{
				Base: parseArg(innerOf(inner, "m:e")),
				Sub:  parseArg(innerOf(inner, "m:sub")),
				Sup:  parseArg(innerOf(inner, "m:sup")),
			})
			i += consumed
		case strings.HasPrefix(rest, "<m:sSup>"):
			inner, consumed := capture(rest, "m:sSup")
			nodes = append(nodes, Superscript{
				Base: parseArg(innerOf(inner, "m:e")),
				Sup:  parseArg(innerOf(inner, "m:sup")),
			})
			i += consumed
		case strings.HasPrefix(rest, "<m:sSub>"):
			inner, consumed := capture(rest, "m:sSub")
			nodes = append(nodes, Subscript{
				Base: parseArg(innerOf(inner, "m:e")),
				Sub:  parseArg(innerOf(inner, "m:sub")),
			})
			i += consumed
		case strings.HasPrefix(rest, "<m:f>"):
			inner, consumed := capture(rest, "m:f")
			nodes = append(nodes, Fraction{
				Num:   parseArg(innerOf(inner, "m:num")),
				Den:   parseArg(innerOf(inner, "m:den")),
				NoBar: strings.Contains(inner, `m:val="noBar"`),
			})
			i += consumed
		case strings.HasPrefix(rest, "<m:func>"):
			inner, consumed := capture(rest, "m:func")
			nodes = append(nodes, Function{
				Name: parseArg(innerOf(inner, "m:fName")),
				Arg:  parseArg(innerOf(inner, "m:e")),
			})
			i += consumed
		case strings.HasPrefix(rest, "<m:rad>"):
			inner, consumed := capture(rest, "m:rad")
			node := Radical{Base: parseArg(innerOf(inner, "m:e"))}
			if deg := innerOf(inner, "m:deg"); deg != "" {
				node.Deg = parseArg(deg)
			}
			nodes = append(nodes, node)
			i += consumed
		case strings.HasPrefix(rest, "<m:nary"):
			inner, consumed := capture(rest, "m:nary")
			node := Nary{Op: naryOperator(inner), Base: parseArg(innerOf(inner, "m:e"))}
			if sub := innerOf(inner, "m:sub"); sub != "" {
				node.Sub = parseArg(sub)
			}
			if sup := innerOf(inner, "m:sup"); sup != "" {
				node.Sup = parseArg(sup)
			}
			nodes = append(nodes, node)
			i += consumed
		case strings.HasPrefix(rest, "<m:d>"):
			inner, consumed := capture(rest, "m:d")
			nodes = append(nodes, Delimiter{Content: parseArg(innerOf(inner, "m:e"))})
			i += consumed
		case strings.HasPrefix(rest, "<m:r>"):
			inner, consumed := capture(rest, "m:r")
			if text := joinTexts(inner); text != "" {
				nodes = append(nodes, Text(text))
			}
			i += consumed
		case strings.HasPrefix(rest, "<m:t>"):
			inner, consumed := capture(rest, "m:t")
			nodes = append(nodes, Text(inner))
			i += consumed
		default:
			i++
		}
	}

	if len(nodes) == 1 {
		return nodes[0]
	}
	return Sequence(nodes)
}

// parseArg turns a captured sub-fragment into a node: re-parsed when it
// contains further math tags, terminal text otherwise.
func parseArg(inner string) Node {
	if strings.Contains(inner, "<m:") {
		return Parse(inner)
	}
	return Text(inner)
}

// capture returns the inner content of the tag opening at the start of s,
// plus the byte count consumed including both tags. Nested occurrences of
// the same tag are depth-matched so an inner fraction does not terminate the
// outer one. An unterminated tag returns everything after the opening tag.
func capture(s, tag string) (inner string, consumed int) {
	openEnd := strings.Index(s, ">")
	if openEnd < 0 {
		return "", len(s)
	}
	body := s[openEnd+1:]

	open := "<" + tag
	closing := "</" + tag + ">"
	depth := 1
	pos := 0

	for pos < len(body) {
		next := body[pos:]
		if strings.HasPrefix(next, closing) {
			depth--
			if depth == 0 {
				return body[:pos], openEnd + 1 + pos + len(closing)
			}
			pos += len(closing)
			continue
		}
		if strings.HasPrefix(next, open) && isTagBoundary(next, len(open)) {
			depth++
		}
		pos++
	}

	// Unterminated: hand back what accumulated.
	return body, len(s)
}

// isTagBoundary reports whether the character after an open-tag prefix ends
// the tag name, so "<m:sSub" is not mistaken for "<m:sSubSup".
func isTagBoundary(s string, nameLen int) bool {
	if nameLen >= len(s) {
		return true
	}
	c := s[nameLen]
	return c == '>' || c == ' ' || c == '/'
}

// innerOf returns the inner content of the first top-level occurrence of
// tag inside omml, or "" when absent. Nested elements are skipped whole, so
// an inner fraction's <m:den> never answers for the outer one.
func innerOf(omml, tag string) string {
	open := "<" + tag
	i := 0
	for i < len(omml) {
		if omml[i] != '<' {
			i++
			continue
		}
		rest := omml[i:]
		if strings.HasPrefix(rest, open) && isTagBoundary(rest, len(open)) {
			if end := strings.Index(rest, ">"); end > 0 && rest[end-1] == '/' {
				return ""
			}
			inner, _ := capture(rest, tag)
			return inner
		}
		i += skipElement(rest)
	}
	return ""
}

// skipElement returns the byte count of the complete element starting at s
// (which begins with '<'), including self-closing and attribute-bearing
// tags. Unterminated input consumes to the end.
func skipElement(s string) int {
	end := strings.Index(s, ">")
	if end < 0 {
		return len(s)
	}
	// Self-closing tags and stray closers have no body to match.
	if s[end-1] == '/' || strings.HasPrefix(s, "</") {
		return end + 1
	}
	name := s[1:end]
	if cut := strings.IndexAny(name, " \t\r\n"); cut >= 0 {
		name = name[:cut]
	}
	_, consumed := capture(s, name)
	return consumed
}

// naryOperator pulls the operator glyph from the m:chr property of an
// n-ary fragment. Word omits m:chr for the default summation, and other
// properties (m:limLoc, m:subHide) carry m:val attributes of their own, so
// only the m:chr tag is consulted.
func naryOperator(inner string) string {
	start := strings.Index(inner, "<m:chr")
	if start < 0 {
		return "∑"
	}
	tag := inner[start:]
	if end := strings.Index(tag, ">"); end >= 0 {
		tag = tag[:end]
	}
	const marker = `m:val="`
	vs := strings.Index(tag, marker)
	if vs < 0 {
		return "∑"
	}
	rest := tag[vs+len(marker):]
	ve := strings.Index(rest, `"`)
	if ve < 0 {
		return "∑"
	}
	return rest[:ve]
}

// joinTexts concatenates the content of every m:t tag in a fragment.
func joinTexts(omml string) string {
	var sb strings.Builder
	for _, part := range strings.Split(omml, "<m:t>")[1:] {
		if end := strings.Index(part, "</m:t>"); end >= 0 {
			sb.WriteString(part[:end])
		}
	}
	return sb.String()
}

// PlainText returns the concatenated leaf text of a fragment, ignoring all
// markup. Used as the always-available fallback rendering.
func PlainText(omml string) string {
	return joinTexts(omml)
}

// FromOMML parses a fragment and renders both forms. When the LaTeX
// rendering comes out empty, the plain-text fallback stands in for it.
func FromOMML(omml string) (latex, fallback string) {
	fallback = PlainText(omml)
	latex = RenderLaTeX(Parse(omml))
	if latex == "" {
		latex = fallback
	}
	return latex, fallback
}
