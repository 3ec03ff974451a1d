package richdoc

import (
	"strings"

	"pkt.systems/richdoc/syntax"
)

// buildSpans converts a run of inline nodes into spans owned by the
// paragraph owner. Adjacent text, whitespace and line-break tokens merge
// into one leaf, and consecutive whitespace tokens give one space.
func buildSpans(nodes []*syntax.Node, src string, owner ParagraphID, table StyleTable) []Span {
	var (
		out   []Span
		run   strings.Builder
		inRun bool
		space bool
	)
	flush := func() {
		if !inRun {
			return
		}
		out = append(out, Span{Text: run.String(), Paragraph: owner})
		run.Reset()
		inRun = false
	}
	for _, n := range nodes {
		if n.Kind == syntax.KindWhitespace {
			if !space {
				run.WriteByte(' ')
				inRun = true
			}
			space = true
			continue
		}
		space = false
		switch n.Kind {
		case syntax.KindText:
			run.WriteString(n.Text(src))
			inRun = true
		case syntax.KindEOL, syntax.KindHardBreak:
			run.WriteByte('\n')
			inRun = true
		case syntax.KindCodeSpan:
			flush()
			out = append(out, Span{
				Text:      stripDelimiters(n.Text(src)),
				Style:     table.lookup(syntax.KindCodeSpan),
				Paragraph: owner,
			})
		case syntax.KindInlineLink:
			flush()
			out = append(out, inlineLink(n, src, owner))
		case syntax.KindAutoLink:
			flush()
			out = append(out, autoLink(n, src, owner))
		case syntax.KindImage, syntax.KindCheckBox, syntax.KindHTML:
		default:
			flush()
			children := buildSpans(n.Children, src, owner, table)
			if s, ok := wrap(children, table.lookup(n.Kind), owner); ok {
				out = append(out, s)
			}
		}
	}
	flush()
	return out
}

func inlineLink(n *syntax.Node, src string, owner ParagraphID) Span {
	s := Span{Paragraph: owner}
	if text := n.FindChild(syntax.KindLinkText); text != nil {
		s.Text = stripDelimiters(text.Text(src))
	}
	if dest := n.FindChild(syntax.KindLinkDestination); dest != nil {
		if url := dest.Text(src); url != "" {
			s.Style = LinkStyle(url)
		}
	}
	return s
}

func autoLink(n *syntax.Node, src string, owner ParagraphID) Span {
	s := Span{Paragraph: owner}
	dest := n.FindChild(syntax.KindLinkDestination)
	if dest != nil {
		s.Text = dest.Text(src)
		s.Style = LinkStyle(s.Text)
	}
	if text := n.FindChild(syntax.KindLinkText); text != nil {
		s.Text = text.Text(src)
	}
	return s
}

// wrap groups children under one span of the given style. An unstyled
// wrapper is never empty and never holds a single child; that child is
// returned instead.
func wrap(children []Span, style SpanStyle, owner ParagraphID) (Span, bool) {
	if style.IsNone() {
		switch len(children) {
		case 0:
			return Span{}, false
		case 1:
			return children[0], true
		}
	}
	return Span{Children: children, Style: style, Paragraph: owner}, true
}
