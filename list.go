package richdoc

import (
	"strconv"

	"pkt.systems/richdoc/syntax"
)

// assembleList turns a list node into one list paragraph with one child
// span per item and appends it to the document. Lists nested in an item
// become sibling paragraphs at level+1; they are appended before their
// parent, which is appended once all its items are walked. A list
// without items yields nil.
func assembleList(st *state, list *syntax.Node, level int) *Paragraph {
	var p *Paragraph
	for _, item := range list.Children {
		if item.Kind != syntax.KindListItem {
			continue
		}
		if p == nil {
			p = st.doc.Create(listType(list, item, st.src))
			p.Level = level
		}
		var content, nested []*syntax.Node
		for _, c := range item.Children {
			switch c.Kind {
			case syntax.KindEOL, syntax.KindListNumber, syntax.KindListBullet:
			case syntax.KindOrderedList, syntax.KindUnorderedList:
				nested = append(nested, c)
			default:
				content = append(content, c)
			}
		}
		s, ok := wrap(buildSpans(content, st.src, p.ID, st.cfg.styles), NoStyle, p.ID)
		if !ok {
			s = Span{Paragraph: p.ID}
		}
		p.Append(s)
		for _, child := range nested {
			assembleList(st, child, level+1)
		}
	}
	if p != nil {
		st.doc.Add(p)
	}
	return p
}

func listType(list, first *syntax.Node, src string) BlockType {
	if list.Kind != syntax.KindOrderedList {
		return UnorderedList()
	}
	start := 1
	if marker := first.FindChild(syntax.KindListNumber); marker != nil {
		if n, ok := leadingNumber(marker.Text(src)); ok {
			start = n
		}
	}
	return OrderedList(start)
}

// leadingNumber parses the digits at the start of s, as in "5." or "12)".
func leadingNumber(s string) (int, bool) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
