package richdoc

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"pkt.systems/richdoc/syntax"
)

func TestImportEmptyInput(t *testing.T) {
	t.Parallel()
	for _, src := range []string{"", "\n\n"} {
		if doc := ImportString(src); doc.Len() != 0 {
			t.Fatalf("ImportString(%q) gave %d paragraphs, want 0", src, doc.Len())
		}
	}
}

func TestImportString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  string
		opts []Option
		want []*Paragraph
	}{
		{
			name: "plain text",
			src:  "hello   world",
			want: []*Paragraph{{Children: []Span{{Text: "hello world"}}}},
		},
		{
			name: "soft break",
			src:  "a\nb",
			want: []*Paragraph{{Children: []Span{{Text: "a\nb"}}}},
		},
		{
			name: "inline styles",
			src:  "a *b* `c` [d](http://e)",
			want: []*Paragraph{{Children: []Span{{Children: []Span{
				{Text: "a "},
				{Children: []Span{{Text: "b"}}, Style: EmphasisStyle},
				{Text: " "},
				{Text: "c"},
				{Text: " "},
				{Text: "d", Style: LinkStyle("http://e")},
			}}}}},
		},
		{
			name: "strong",
			src:  "**bold**",
			want: []*Paragraph{{Children: []Span{{Children: []Span{{Text: "bold"}}, Style: StrongStyle}}}},
		},
		{
			name: "autolink",
			src:  "<http://x.y>",
			want: []*Paragraph{{Children: []Span{{Text: "http://x.y", Style: LinkStyle("http://x.y")}}}},
		},
		{
			name: "code style table",
			src:  "*b* `c`",
			opts: []Option{WithStyleTable(StyleTable{syntax.KindCodeSpan: CodeStyle})},
			want: []*Paragraph{{Children: []Span{{Children: []Span{
				{Text: "b"},
				{Text: " "},
				{Text: "c", Style: CodeStyle},
			}}}}},
		},
		{
			name: "heading then paragraph",
			src:  "# A\n\nB",
			want: []*Paragraph{{Children: []Span{
				{Children: []Span{{Text: "A"}}, Style: HeadingStyle(1)},
				{Text: "\n"},
				{Text: "\n"},
				{Text: "B"},
			}}},
		},
		{
			name: "link definition",
			src:  "[foo]: http://x",
			want: []*Paragraph{{Children: []Span{{Text: "foo", Style: LinkStyle("http://x")}}}},
		},
		{
			name: "unordered list",
			src:  "- a\n- b\n- c",
			want: []*Paragraph{{Type: UnorderedList(), Children: []Span{{Text: "a"}, {Text: "b"}, {Text: "c"}}}},
		},
		{
			name: "ordered list",
			src:  "1. a\n2. b\n3. c",
			want: []*Paragraph{{Type: OrderedList(1), Children: []Span{{Text: "a"}, {Text: "b"}, {Text: "c"}}}},
		},
		{
			name: "ordered list start",
			src:  "5. a\n6. b",
			want: []*Paragraph{{Type: OrderedList(5), Children: []Span{{Text: "a"}, {Text: "b"}}}},
		},
		{
			name: "nested list comes before its parent",
			src:  "- a\n  - b\n- c",
			want: []*Paragraph{
				{ID: 1, Type: UnorderedList(), Level: 1, Children: []Span{{Text: "b", Paragraph: 1}}},
				{ID: 0, Type: UnorderedList(), Children: []Span{{Text: "a"}, {Text: "c"}}},
			},
		},
		{
			name: "nested ordered lists",
			src:  "1. a\n   1. x\n2. b",
			want: []*Paragraph{
				{ID: 1, Type: OrderedList(1), Level: 1, Children: []Span{{Text: "x", Paragraph: 1}}},
				{ID: 0, Type: OrderedList(1), Children: []Span{{Text: "a"}, {Text: "b"}}},
			},
		},
		{
			name: "paragraph after list joins the list",
			src:  "- a\n- b\n\ntext after",
			want: []*Paragraph{{Type: UnorderedList(), Children: []Span{
				{Text: "a"}, {Text: "b"}, {Text: "\n"}, {Text: "\n"}, {Text: "text after"},
			}}},
		},
		{
			name: "paragraph after closed list",
			src:  "- a\n- b\n\ntext after",
			opts: []Option{WithCloseLists(true)},
			want: []*Paragraph{
				{ID: 0, Type: UnorderedList(), Children: []Span{{Text: "a"}, {Text: "b"}}},
				{ID: 1, Children: []Span{{Text: "text after", Paragraph: 1}}},
			},
		},
		{
			name: "definition between paragraphs",
			src:  "a\n\n[foo]: http://x\n\nb",
			want: []*Paragraph{{Children: []Span{
				{Text: "a"}, {Text: "\n"}, {Text: "\n"},
				{Text: "foo", Style: LinkStyle("http://x")},
				{Text: "\n"}, {Text: "\n"}, {Text: "b"},
			}}},
		},
		{
			name: "code fence ignored",
			src:  "```\ncode\n```",
			want: nil,
		},
		{
			name: "block quote skipped",
			src:  "> quote",
			want: nil,
		},
		{
			name: "block quote descended",
			src:  "> quote",
			opts: []Option{WithDescendUnknown(true)},
			want: []*Paragraph{{Children: []Span{{Text: "quote"}}}},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			doc := ImportString(tc.src, tc.opts...)
			if diff := cmp.Diff(tc.want, doc.Paragraphs); diff != "" {
				t.Fatalf("ImportString(%q) mismatch (-want +got):\n%s", tc.src, diff)
			}
		})
	}
}

func TestImportHeadingLevels(t *testing.T) {
	t.Parallel()
	for n := 1; n <= 6; n++ {
		src := strings.Repeat("#", n) + " text"
		doc := ImportString(src)
		if doc.Len() != 1 || len(doc.Paragraphs[0].Children) != 1 {
			t.Fatalf("%q: expected one paragraph with one span, got %+v", src, doc.Paragraphs)
		}
		span := doc.Paragraphs[0].Children[0]
		if span.Style != HeadingStyle(n) {
			t.Fatalf("%q: style = %v, want %v", src, span.Style, HeadingStyle(n))
		}
		if got := span.PlainText(); got != "text" {
			t.Fatalf("%q: text = %q", src, got)
		}
	}
}

func TestImportUnorderedListItemCount(t *testing.T) {
	t.Parallel()
	for k := 1; k <= 5; k++ {
		var b strings.Builder
		for i := 0; i < k; i++ {
			b.WriteString("- item\n")
		}
		doc := ImportString(b.String())
		if doc.Len() != 1 {
			t.Fatalf("k=%d: expected 1 paragraph, got %d", k, doc.Len())
		}
		p := doc.Paragraphs[0]
		if p.Type != UnorderedList() || len(p.Children) != k {
			t.Fatalf("k=%d: got type %v with %d children", k, p.Type, len(p.Children))
		}
	}
}

func TestImportFlattensPlainText(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"one two three",
		"tabs\tand   spaces",
		"unicode ünïcödé   text",
		"hello   world",
		"trailing  \t  run x",
	}
	for _, src := range inputs {
		want := strings.Join(strings.Fields(src), " ")
		if got := ImportString(src).PlainText(); got != want {
			t.Fatalf("PlainText(%q) = %q, want %q", src, got, want)
		}
	}
}

func TestImportIsDeterministic(t *testing.T) {
	t.Parallel()
	src, err := os.ReadFile("testdata/sample.md")
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	first := ImportString(string(src))
	second := ImportString(string(src))
	if diff := cmp.Diff(first.Paragraphs, second.Paragraphs); diff != "" {
		t.Fatalf("imports differ (-first +second):\n%s", diff)
	}
	if first.Len() == 0 {
		t.Fatalf("sample imported to an empty document")
	}
	if strings.Contains(first.PlainText(), "title: Sample") {
		t.Fatalf("front matter leaked into document")
	}
}

func TestImportSampleStructure(t *testing.T) {
	t.Parallel()
	src, err := os.ReadFile("testdata/sample.md")
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	tests := []struct {
		name   string
		opts   []Option
		kinds  []BlockType
		levels []int
	}{
		{
			name:   "last paragraph",
			kinds:  []BlockType{DefaultBlock(), UnorderedList(), OrderedList(1), UnorderedList()},
			levels: []int{0, 1, 0, 0},
		},
		{
			name:   "closed lists",
			opts:   []Option{WithCloseLists(true)},
			kinds:  []BlockType{DefaultBlock(), UnorderedList(), OrderedList(1), UnorderedList(), DefaultBlock()},
			levels: []int{0, 1, 0, 0, 0},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			doc := ImportString(string(src), tc.opts...)
			var kinds []BlockType
			var levels []int
			for _, p := range doc.Paragraphs {
				kinds = append(kinds, p.Type)
				levels = append(levels, p.Level)
				for _, s := range p.Children {
					checkSpanOwner(t, s, p.ID)
				}
			}
			if diff := cmp.Diff(tc.kinds, kinds); diff != "" {
				t.Fatalf("paragraph types mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.levels, levels); diff != "" {
				t.Fatalf("paragraph levels mismatch (-want +got):\n%s", diff)
			}
			items := 0
			for _, s := range doc.Paragraphs[2].Children {
				if s.PlainText() != "\n" {
					items++
				}
			}
			if items != 3 {
				t.Fatalf("ordered list has %d items, want 3", items)
			}
			text := doc.PlainText()
			for _, bad := range []string{"Quoted text", "fenced code"} {
				if strings.Contains(text, bad) {
					t.Fatalf("unexpected %q in %q", bad, text)
				}
			}
		})
	}
}

func checkSpanOwner(t *testing.T, s Span, id ParagraphID) {
	t.Helper()
	if s.Paragraph != id {
		t.Fatalf("span %q owned by %d, want %d", s.PlainText(), s.Paragraph, id)
	}
	for _, c := range s.Children {
		checkSpanOwner(t, c, id)
	}
}

func TestImportReader(t *testing.T) {
	t.Parallel()
	doc, err := Import(ImportRequest{Reader: strings.NewReader("# Hi\x1b\n")})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if got := doc.PlainText(); got != "Hi" {
		t.Fatalf("PlainText = %q, want %q", got, "Hi")
	}
	if _, err := Import(ImportRequest{}); err == nil || err.Error() != "import: reader is nil" {
		t.Fatalf("expected nil reader error, got %v", err)
	}
}

func TestImportNormalization(t *testing.T) {
	t.Parallel()
	decomposed := "cafe\u0301"
	if got := ImportString(decomposed).PlainText(); got != decomposed {
		t.Fatalf("text normalized without option: %q", got)
	}
	if got := ImportString(decomposed, WithNormalization(true)).PlainText(); got != "caf\u00e9" {
		t.Fatalf("expected NFC text, got %q", got)
	}
}

func TestImportLogsSkippedNodes(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	ImportString("> quote\n\n---\n", WithLogger(newTestLogger(&buf)))
	out := buf.String()
	for _, want := range []string{"BLOCK_QUOTE", "HORIZONTAL_RULE", "skipping node"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in log output %q", want, out)
		}
	}
}

func newTestLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(zerolog.DebugLevel)
}
