package equation

import "strings"

// RenderLaTeX renders an expression tree as LaTeX source.
func RenderLaTeX(node Node) string {
	switch n := node.(type) {
	case Text:
		return latexEscapeSymbols(string(n))
	case Sequence:
		var sb strings.Builder
		for _, child := range n {
			sb.WriteString(RenderLaTeX(child))
		}
		return sb.String()
	case Superscript:
		return RenderLaTeX(n.Base) + "^{" + RenderLaTeX(n.Sup) + "}"
	case Subscript:
		return RenderLaTeX(n.Base) + "_{" + RenderLaTeX(n.Sub) + "}"
	case SubSup:
		return RenderLaTeX(n.Base) + "_{" + RenderLaTeX(n.Sub) + "}^{" + RenderLaTeX(n.Sup) + "}"
	case Fraction:
		cmd := "\\frac{"
		if n.NoBar {
			cmd = "\\binom{"
		}
		return cmd + RenderLaTeX(n.Num) + "}{" + RenderLaTeX(n.Den) + "}"
	case Nary:
		var sb strings.Builder
		sb.WriteString(naryCommand(n.Op))
		if n.Sub != nil {
			sb.WriteString("_{" + RenderLaTeX(n.Sub) + "}")
		}
		if n.Sup != nil {
			sb.WriteString("^{" + RenderLaTeX(n.Sup) + "}")
		}
		if base := RenderLaTeX(n.Base); base != "" {
			sb.WriteString(" " + base)
		}
		return sb.String()
	case Delimiter:
		return "\\left(" + RenderLaTeX(n.Content) + "\\right)"
	case Function:
		var sb strings.Builder
		if name := RenderLaTeX(n.Name); name != "" {
			sb.WriteString("\\" + name)
		}
		if arg := RenderLaTeX(n.Arg); arg != "" {
			sb.WriteString(" " + arg)
		}
		return sb.String()
	case Radical:
		var sb strings.Builder
		sb.WriteString("\\sqrt")
		if n.Deg != nil {
			// \sqrt[2]{} is just \sqrt{}
			if deg := RenderLaTeX(n.Deg); deg != "" && deg != "2" {
				sb.WriteString("[" + deg + "]")
			}
		}
		sb.WriteString("{" + RenderLaTeX(n.Base) + "}")
		return sb.String()
	default:
		return ""
	}
}

// naryCommand maps an n-ary operator glyph to its LaTeX command.
// Unknown glyphs fall back to summation.
func naryCommand(op string) string {
	switch op {
	case "∑":
		return "\\sum"
	case "∫":
		return "\\int"
	case "∬":
		return "\\iint"
	case "∭":
		return "\\iiint"
	case "∮":
		return "\\oint"
	case "∏":
		return "\\prod"
	case "⋃":
		return "\\bigcup"
	case "⋂":
		return "\\bigcap"
	default:
		return "\\sum"
	}
}

// latexSymbols maps Greek letters and math operators that appear verbatim in
// OMML text runs to their LaTeX commands. Trailing spaces keep the command
// from swallowing the following character.
var latexSymbols = map[rune]string{
	'π': "\\pi ",
	'α': "\\alpha ",
	'β': "\\beta ",
	'γ': "\\gamma ",
	'Γ': "\\Gamma ",
	'δ': "\\delta ",
	'Δ': "\\Delta ",
	'θ': "\\theta ",
	'λ': "\\lambda ",
	'μ': "\\mu ",
	'σ': "\\sigma ",
	'Σ': "\\Sigma ",
	'φ': "\\phi ",
	'ω': "\\omega ",
	'Ω': "\\Omega ",
	'∞': "\\infty ",
	'±': "\\pm ",
	'×': "\\times ",
	'÷': "\\div ",
	'≤': "\\leq ",
	'≥': "\\geq ",
	'≠': "\\neq ",
	'≈': "\\approx ",
	'∈': "\\in ",
	'∉': "\\notin ",
	'⊂': "\\subset ",
	'⊃': "\\supset ",
	'∪': "\\cup ",
	'∩': "\\cap ",
	'∅': "\\emptyset ",
	'√': "\\sqrt",
}

func latexEscapeSymbols(text string) string {
	var sb strings.Builder
	for _, r := range text {
		if cmd, ok := latexSymbols[r]; ok {
			sb.WriteString(cmd)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
