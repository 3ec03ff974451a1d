package syntax

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// kinds returns the kinds of the direct children of n.
func kinds(n *Node) []Kind {
	out := make([]Kind, 0, len(n.Children))
	for _, c := range n.Children {
		out = append(out, c.Kind)
	}
	return out
}

func TestParseTopLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  string
		want []Kind
	}{
		{name: "empty", src: "", want: []Kind{}},
		{name: "heading and paragraph", src: "# A\n\nB", want: []Kind{KindHeading1, KindEOL, KindEOL, KindParagraph}},
		{name: "adjacent blocks", src: "# A\nB\n", want: []Kind{KindHeading1, KindEOL, KindParagraph}},
		{name: "two blank lines", src: "a\n\n\nb", want: []Kind{KindParagraph, KindEOL, KindEOL, KindEOL, KindParagraph}},
		{name: "setext heading", src: "Title\n-----\n", want: []Kind{KindHeading2}},
		{name: "lists", src: "- a\n\n1. b\n", want: []Kind{KindUnorderedList, KindEOL, KindEOL, KindOrderedList}},
		{name: "fence", src: "```go\nx\n```\n", want: []Kind{KindCodeFence}},
		{name: "indented code", src: "    x\n", want: []Kind{KindCodeBlock}},
		{name: "quote", src: "> a\n", want: []Kind{KindBlockQuote}},
		{name: "rule", src: "***\n", want: []Kind{KindHorizontalRule}},
		{name: "definition", src: "[a]: http://x\n", want: []Kind{KindLinkDefinition}},
		{name: "definition after paragraph", src: "a\n\n[b]: http://x\n", want: []Kind{KindParagraph, KindEOL, KindEOL, KindLinkDefinition}},
		{name: "table", src: "| a |\n| - |\n| b |\n", want: []Kind{KindTable}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tc.want, kinds(Parse(tc.src))); diff != "" {
				t.Fatalf("Parse(%q) kinds mismatch (-want +got):\n%s", tc.src, diff)
			}
		})
	}
}

func TestParseTableWithoutGFM(t *testing.T) {
	t.Parallel()
	root := Parse("| a |\n| - |\n", WithGFM(false))
	if diff := cmp.Diff([]Kind{KindParagraph}, kinds(root)); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTextTokens(t *testing.T) {
	t.Parallel()
	src := "a  b\nc"
	para := Parse(src).Children[0]
	type tok struct {
		Kind Kind
		Text string
	}
	var got []tok
	for _, c := range para.Children {
		got = append(got, tok{c.Kind, c.Text(src)})
	}
	want := []tok{
		{KindText, "a"},
		{KindWhitespace, "  "},
		{KindText, "b"},
		{KindEOL, "\n"},
		{KindText, "c"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFoldsWhitespaceRuns(t *testing.T) {
	t.Parallel()
	for _, src := range []string{"hello   world", "tabs\tand   spaces"} {
		para := Parse(src).Children[0]
		var runs int
		for i, c := range para.Children {
			if c.Kind != KindWhitespace {
				continue
			}
			runs++
			if i > 0 && para.Children[i-1].Kind == KindWhitespace {
				t.Fatalf("%q: adjacent whitespace tokens in %v", src, kinds(para))
			}
		}
		if want := len(strings.Fields(src)) - 1; runs != want {
			t.Fatalf("%q: %d whitespace tokens, want %d", src, runs, want)
		}
	}
}

func TestAppendInline(t *testing.T) {
	t.Parallel()
	out := appendInline([]*Node{Token(KindText, 0, 1), Token(KindWhitespace, 1, 2)},
		[]*Node{Token(KindWhitespace, 2, 4), Token(KindText, 4, 5)})
	if diff := cmp.Diff([]Kind{KindText, KindWhitespace, KindText}, kinds(&Node{Children: out})); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
	if ws := out[1]; ws.Start != 1 || ws.End != 4 {
		t.Fatalf("whitespace range = [%d,%d), want [1,4)", ws.Start, ws.End)
	}
}

func TestParseListMarkers(t *testing.T) {
	t.Parallel()
	src := "5. a\n6. b\n"
	list := Parse(src).Children[0]
	if list.Kind != KindOrderedList {
		t.Fatalf("expected ordered list, got %s", list.Kind)
	}
	var markers []string
	for _, item := range list.Children {
		if item.Kind != KindListItem {
			t.Fatalf("unexpected list child %s", item.Kind)
		}
		m := item.FindChild(KindListNumber)
		if m == nil {
			t.Fatalf("item without number token")
		}
		markers = append(markers, m.Text(src))
	}
	if diff := cmp.Diff([]string{"5.", "6."}, markers); diff != "" {
		t.Fatalf("markers mismatch (-want +got):\n%s", diff)
	}

	src = "* x\n"
	item := Parse(src).Children[0].Children[0]
	if m := item.FindChild(KindListBullet); m == nil || m.Text(src) != "*" {
		t.Fatalf("expected bullet token, got %+v", m)
	}
}

func TestParseNestedList(t *testing.T) {
	t.Parallel()
	src := "- a\n  - b\n"
	item := Parse(src).Children[0].Children[0]
	if nested := item.FindChild(KindUnorderedList); nested == nil {
		t.Fatalf("nested list missing from item children %v", kinds(item))
	}
}

func TestParseInlines(t *testing.T) {
	t.Parallel()
	src := "x `c` [t](http://d) *e* **s** ~~k~~ <http://a.b>"
	para := Parse(src).Children[0]

	code := para.FindChild(KindCodeSpan)
	if code == nil || code.Text(src) != "`c`" {
		t.Fatalf("code span = %+v", code)
	}
	link := para.FindChild(KindInlineLink)
	if link == nil {
		t.Fatalf("missing inline link in %v", kinds(para))
	}
	if lt := link.FindChild(KindLinkText); lt == nil || lt.Text(src) != "[t]" {
		t.Fatalf("link text = %+v", lt)
	}
	if ld := link.FindChild(KindLinkDestination); ld == nil || ld.Text(src) != "http://d" {
		t.Fatalf("link destination = %+v", ld)
	}
	for _, k := range []Kind{KindEmphasis, KindStrong, KindStrikethrough, KindAutoLink} {
		if para.FindChild(k) == nil {
			t.Fatalf("missing %s in %v", k, kinds(para))
		}
	}
	auto := para.FindChild(KindAutoLink)
	if d := auto.FindChild(KindLinkDestination); d == nil || d.Text(src) != "http://a.b" {
		t.Fatalf("autolink destination = %+v", d)
	}
}

func TestParseDefinitions(t *testing.T) {
	t.Parallel()
	src := "intro\n\n[b]: http://b\n[a]: http://a\n\nouter\n"
	root := Parse(src)
	var defs []string
	for _, c := range root.Children {
		if c.Kind != KindLinkDefinition {
			continue
		}
		label := c.FindChild(KindLinkLabel)
		dest := c.FindChild(KindLinkDestination)
		if label == nil || dest == nil {
			t.Fatalf("definition without label or destination: %+v", c)
		}
		defs = append(defs, label.Text(src)+"="+dest.Text(src))
	}
	if diff := cmp.Diff([]string{"[b]=http://b", "[a]=http://a"}, defs); diff != "" {
		t.Fatalf("definitions mismatch (-want +got):\n%s", diff)
	}
	last := root.Children[len(root.Children)-1]
	if last.Kind != KindParagraph || !strings.Contains(last.Text(src), "outer") {
		t.Fatalf("definitions not ordered before trailing paragraph: %v", kinds(root))
	}
}

func TestParseDefinitionLabelAtLineStart(t *testing.T) {
	t.Parallel()
	src := "see [a]: here\n\n[a]: http://a\n"
	root := Parse(src)
	def := root.FindChild(KindLinkDefinition)
	if def == nil {
		t.Fatalf("missing definition in %v", kinds(root))
	}
	label := def.FindChild(KindLinkLabel)
	if want := strings.LastIndex(src, "[a]:"); label == nil || label.Start != want {
		t.Fatalf("label = %+v, want start %d", label, want)
	}
}

func TestParseRangesStayInSource(t *testing.T) {
	t.Parallel()
	src := "# T\n\n- a *b*\n  - c\n\n> q `d`\n\n| x | y |\n| - | - |\n| 1 | 2 |\n\n[r]: http://r\n"
	Parse(src).Walk(func(n *Node, _ int) bool {
		if !n.Synthetic() && (n.Start > n.End || n.End > len(src)) {
			t.Fatalf("%s range [%d,%d) outside source", n.Kind, n.Start, n.End)
		}
		return true
	})
}

func TestNodeTextPanicsOutsideSource(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	Token(KindText, 2, 9).Text("abc")
}

func TestHeadingKind(t *testing.T) {
	t.Parallel()
	for level := 1; level <= 6; level++ {
		k, ok := HeadingKind(level)
		if !ok {
			t.Fatalf("HeadingKind(%d) not ok", level)
		}
		if got, ok := k.HeadingLevel(); !ok || got != level {
			t.Fatalf("%s.HeadingLevel() = %d, %v", k, got, ok)
		}
	}
	if _, ok := HeadingKind(7); ok {
		t.Fatalf("HeadingKind(7) ok")
	}
	if _, ok := KindParagraph.HeadingLevel(); ok {
		t.Fatalf("paragraph reported a heading level")
	}
}
