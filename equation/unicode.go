package equation

import "strings"

// RenderUnicode renders an expression tree as plain Unicode text, using
// superscript/subscript code points and pre-composed fraction glyphs where
// they exist.
func RenderUnicode(node Node) string {
	switch n := node.(type) {
	case Text:
		return string(n)
	case Sequence:
		var sb strings.Builder
		for _, child := range n {
			sb.WriteString(RenderUnicode(child))
		}
		return sb.String()
	case Superscript:
		return RenderUnicode(n.Base) + toSuperscript(RenderUnicode(n.Sup))
	case Subscript:
		return RenderUnicode(n.Base) + toSubscript(RenderUnicode(n.Sub))
	case SubSup:
		return RenderUnicode(n.Base) + toSubscript(RenderUnicode(n.Sub)) +
			toSuperscript(RenderUnicode(n.Sup))
	case Fraction:
		num := RenderUnicode(n.Num)
		den := RenderUnicode(n.Den)
		if glyph, ok := vulgarFractions[num+"/"+den]; ok {
			return glyph
		}
		return "(" + num + "⁄" + den + ")"
	case Nary:
		var sb strings.Builder
		sb.WriteString(n.Op)
		if n.Sub != nil {
			sb.WriteString(toSubscript(RenderUnicode(n.Sub)))
		}
		if n.Sup != nil {
			sb.WriteString(toSuperscript(RenderUnicode(n.Sup)))
		}
		sb.WriteString(RenderUnicode(n.Base))
		return sb.String()
	case Delimiter:
		return "(" + RenderUnicode(n.Content) + ")"
	case Function:
		return RenderUnicode(n.Name) + " " + RenderUnicode(n.Arg)
	case Radical:
		result := "√(" + RenderUnicode(n.Base) + ")"
		if n.Deg != nil {
			return toSuperscript(RenderUnicode(n.Deg)) + result
		}
		return result
	default:
		return ""
	}
}

var vulgarFractions = map[string]string{
	"1/2": "½",
	"1/4": "¼",
	"3/4": "¾",
	"1/3": "⅓",
	"2/3": "⅔",
	"1/5": "⅕",
	"1/8": "⅛",
}

var superscriptRunes = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'+': '⁺', '-': '⁻', '=': '⁼', '(': '⁽', ')': '⁾',
	'n': 'ⁿ', 'i': 'ⁱ',
}

var subscriptRunes = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
	'+': '₊', '-': '₋', '=': '₌', '(': '₍', ')': '₎',
	'a': 'ₐ', 'e': 'ₑ', 'h': 'ₕ', 'i': 'ᵢ', 'j': 'ⱼ',
	'k': 'ₖ', 'l': 'ₗ', 'm': 'ₘ', 'n': 'ₙ', 'o': 'ₒ',
	'p': 'ₚ', 'r': 'ᵣ', 's': 'ₛ', 't': 'ₜ', 'u': 'ᵤ',
	'v': 'ᵥ', 'x': 'ₓ',
}

// toSuperscript substitutes superscript code points for digits, signs and
// the few letters that have them; everything else passes through unchanged.
func toSuperscript(text string) string {
	return strings.Map(func(r rune) rune {
		if sup, ok := superscriptRunes[r]; ok {
			return sup
		}
		return r
	}, text)
}

func toSubscript(text string) string {
	return strings.Map(func(r rune) rune {
		if sub, ok := subscriptRunes[r]; ok {
			return sub
		}
		return r
	}, text)
}
