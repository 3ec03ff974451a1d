package richdoc

import "pkt.systems/richdoc/syntax"

// dispatch converts one block-level node into document content. It
// reports false for kinds it does not handle; the caller decides whether
// to look at the children.
func dispatch(st *state, n *syntax.Node) bool {
	switch n.Kind {
	case syntax.KindText:
		p := st.current()
		p.Append(Span{Text: n.Text(st.src), Paragraph: p.ID})
	case syntax.KindWhitespace:
		p := st.current()
		if k := len(p.Children); k > 0 && isSpaceLeaf(p.Children[k-1]) {
			return true
		}
		p.Append(Span{Text: " ", Paragraph: p.ID})
	case syntax.KindEOL:
		if last := st.doc.Last(); st.cfg.closeLists && last != nil && !last.AcceptsBlocks() {
			return true
		}
		p := st.current()
		p.Append(Span{Text: "\n", Paragraph: p.ID})
	case syntax.KindHeading1, syntax.KindHeading2, syntax.KindHeading3,
		syntax.KindHeading4, syntax.KindHeading5, syntax.KindHeading6:
		level, _ := n.Kind.HeadingLevel()
		p := st.current()
		p.Append(Span{
			Children:  buildSpans(n.Children, st.src, p.ID, st.cfg.styles),
			Style:     HeadingStyle(level),
			Paragraph: p.ID,
		})
	case syntax.KindParagraph:
		id := st.currentID()
		if s, ok := wrap(buildSpans(n.Children, st.src, id, st.cfg.styles), NoStyle, id); ok {
			st.current().Append(s)
		}
	case syntax.KindOrderedList, syntax.KindUnorderedList:
		assembleList(st, n, 0)
	case syntax.KindLinkDefinition:
		label := n.FindChild(syntax.KindLinkLabel)
		dest := n.FindChild(syntax.KindLinkDestination)
		if label == nil || dest == nil {
			st.cfg.logger.Debug().Int("start", n.Start).Msg("link definition without label or destination")
			return true
		}
		url := dest.Text(st.src)
		if url == "" {
			return true
		}
		p := st.current()
		p.Append(Span{Text: stripDelimiters(label.Text(st.src)), Style: LinkStyle(url), Paragraph: p.ID})
	case syntax.KindCodeFence, syntax.KindImage:
		// Recognized, not converted.
	default:
		st.cfg.logger.Debug().Stringer("kind", n.Kind).Int("start", n.Start).Int("end", n.End).Msg("skipping node")
		return false
	}
	return true
}

func isSpaceLeaf(s Span) bool {
	return s.IsLeaf() && s.Style.IsNone() && s.Text == " "
}

// stripDelimiters removes the first and last byte of s, the brackets or
// backticks around link text and code spans.
func stripDelimiters(s string) string {
	if len(s) < 2 {
		return ""
	}
	return s[1 : len(s)-1]
}
