package syntax

import (
	"bytes"
	"sort"
	"strconv"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// ParseOption configures Parse.
type ParseOption func(*parseConfig)

type parseConfig struct {
	gfm bool
}

// WithGFM enables or disables the GitHub Flavored Markdown extensions
// (tables, strikethrough, autolinks, task lists). Enabled by default.
func WithGFM(enabled bool) ParseOption {
	return func(cfg *parseConfig) {
		cfg.gfm = enabled
	}
}

var (
	gfmMarkdown        = goldmark.New(goldmark.WithExtensions(extension.GFM))
	commonMarkMarkdown = goldmark.New()
)

// Parse parses Markdown and returns the root of its syntax tree. All
// node ranges index into src.
func Parse(src string, opts ...ParseOption) *Node {
	cfg := parseConfig{gfm: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	md := commonMarkMarkdown
	if cfg.gfm {
		md = gfmMarkdown
	}
	b := &builder{src: []byte(src), str: src}
	pc := parser.NewContext()
	doc := md.Parser().Parse(text.NewReader(b.src), parser.WithContext(pc))

	blocks := mergeByOffset(b.blocks(doc), b.definitions(pc.References()))
	return &Node{
		Kind:     KindDocument,
		Start:    0,
		End:      len(src),
		Children: b.separate(blocks),
	}
}

type builder struct {
	src []byte
	str string
}

func newNode(kind Kind) *Node {
	return &Node{Kind: kind, Start: -1, End: -1}
}

func include(node *Node, start, end int) {
	if start < 0 || end < start {
		return
	}
	if node.Start < 0 || start < node.Start {
		node.Start = start
	}
	if end > node.End {
		node.End = end
	}
}

// fit sets node's range to cover the block lines of n and all located
// children.
func (b *builder) fit(node *Node, n ast.Node) {
	if n.Type() == ast.TypeBlock {
		if lines := n.Lines(); lines != nil {
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				include(node, seg.Start, b.trimBreak(seg.Start, seg.Stop))
			}
		}
	}
	for _, c := range node.Children {
		include(node, c.Start, c.End)
	}
}

func (b *builder) trimBreak(start, stop int) int {
	for stop > start && (b.src[stop-1] == '\n' || b.src[stop-1] == '\r') {
		stop--
	}
	return stop
}

func (b *builder) block(n ast.Node) *Node {
	var node *Node
	switch n := n.(type) {
	case *ast.Heading:
		kind, ok := HeadingKind(n.Level)
		if !ok {
			kind = KindHeading6
		}
		node = newNode(kind)
		node.Children = b.inlines(n)
		b.fit(node, n)
		if !node.Synthetic() {
			node.Start = b.headingStart(node.Start)
		}
	case *ast.Paragraph:
		node = newNode(KindParagraph)
		node.Children = b.inlines(n)
		b.fit(node, n)
	case *ast.TextBlock:
		node = newNode(KindParagraph)
		node.Children = b.inlines(n)
		b.fit(node, n)
	case *ast.List:
		return b.list(n)
	case *ast.FencedCodeBlock:
		node = newNode(KindCodeFence)
		if n.Info != nil {
			include(node, n.Info.Segment.Start, n.Info.Segment.Stop)
		}
		b.fit(node, n)
	case *ast.CodeBlock:
		node = newNode(KindCodeBlock)
		b.fit(node, n)
	case *ast.Blockquote:
		node = newNode(KindBlockQuote)
		node.Children = b.separate(b.blocks(n))
		b.fit(node, n)
	case *ast.ThematicBreak:
		node = newNode(KindHorizontalRule)
		b.fit(node, n)
	case *ast.HTMLBlock:
		node = newNode(KindHTMLBlock)
		b.fit(node, n)
	case *extast.Table:
		node = b.table(n)
	default:
		node = newNode(KindUnknown)
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if c.Type() == ast.TypeInline {
				node.Children = append(node.Children, b.inline(c)...)
			} else {
				node.Children = append(node.Children, b.block(c))
			}
		}
		b.fit(node, n)
	}
	return node
}

// blocks converts the block children of n. A paragraph that held only
// link reference definitions is left empty by goldmark and dropped.
func (b *builder) blocks(n ast.Node) []*Node {
	var out []*Node
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		node := b.block(c)
		if node.Kind == KindParagraph && node.Synthetic() && len(node.Children) == 0 {
			continue
		}
		out = append(out, node)
	}
	return out
}

// headingStart moves start back over an ATX opening sequence.
func (b *builder) headingStart(start int) int {
	i := start
	for i > 0 && (b.src[i-1] == ' ' || b.src[i-1] == '\t') {
		i--
	}
	j := i
	for j > 0 && b.src[j-1] == '#' {
		j--
	}
	if j < i {
		return j
	}
	return start
}

func (b *builder) table(t *extast.Table) *Node {
	node := newNode(KindTable)
	for r := t.FirstChild(); r != nil; r = r.NextSibling() {
		kind := KindTableRow
		if _, ok := r.(*extast.TableHeader); ok {
			kind = KindTableHeader
		}
		row := newNode(kind)
		for c := r.FirstChild(); c != nil; c = c.NextSibling() {
			cell := newNode(KindTableCell)
			cell.Children = b.inlines(c)
			b.fit(cell, c)
			row.Children = append(row.Children, cell)
		}
		b.fit(row, r)
		node.Children = append(node.Children, row)
	}
	b.fit(node, t)
	return node
}

func (b *builder) list(l *ast.List) *Node {
	kind := KindUnorderedList
	if l.IsOrdered() {
		kind = KindOrderedList
	}
	node := newNode(kind)
	number := l.Start
	for c := l.FirstChild(); c != nil; c = c.NextSibling() {
		item, ok := c.(*ast.ListItem)
		if !ok {
			node.Children = append(node.Children, b.block(c))
			continue
		}
		in := newNode(KindListItem)
		in.Children = append([]*Node{b.marker(l, item, number)}, b.separate(b.blocks(item))...)
		b.fit(in, item)
		node.Children = append(node.Children, in)
		number++
	}
	b.fit(node, l)
	return node
}

// marker locates the list marker in front of the item's first line,
// falling back to a token synthesized from the list's numbering.
func (b *builder) marker(l *ast.List, item *ast.ListItem, number int) *Node {
	kind := KindListBullet
	if l.IsOrdered() {
		kind = KindListNumber
	}
	if anchor, ok := b.itemAnchor(item); ok {
		if start, end, ok := b.markerBefore(anchor, l.IsOrdered()); ok {
			return Token(kind, start, end)
		}
	}
	if l.IsOrdered() {
		return LiteralToken(kind, strconv.Itoa(number)+string(l.Marker))
	}
	return LiteralToken(kind, string(l.Marker))
}

func (b *builder) itemAnchor(item ast.Node) (int, bool) {
	c := item.FirstChild()
	if c == nil {
		return 0, false
	}
	if l, ok := c.(*ast.List); ok {
		inner, ok := l.FirstChild().(*ast.ListItem)
		if !ok {
			return 0, false
		}
		anchor, ok := b.itemAnchor(inner)
		if !ok {
			return 0, false
		}
		start, _, ok := b.markerBefore(anchor, l.IsOrdered())
		return start, ok
	}
	if c.Type() != ast.TypeBlock {
		return 0, false
	}
	lines := c.Lines()
	if lines == nil || lines.Len() == 0 {
		return 0, false
	}
	return lines.At(0).Start, true
}

func (b *builder) markerBefore(anchor int, ordered bool) (int, int, bool) {
	i := anchor
	for i > 0 && (b.src[i-1] == ' ' || b.src[i-1] == '\t') {
		i--
	}
	end := i
	for i > 0 && isMarkerByte(b.src[i-1]) {
		i--
	}
	if i > 0 {
		switch b.src[i-1] {
		case ' ', '\t', '\n', '\r', '>':
		default:
			return 0, 0, false
		}
	}
	m := b.src[i:end]
	if ordered {
		if len(m) < 2 || (m[len(m)-1] != '.' && m[len(m)-1] != ')') {
			return 0, 0, false
		}
		for _, c := range m[:len(m)-1] {
			if c < '0' || c > '9' {
				return 0, 0, false
			}
		}
		return i, end, true
	}
	if len(m) != 1 || (m[0] != '-' && m[0] != '+' && m[0] != '*') {
		return 0, 0, false
	}
	return i, end, true
}

func isMarkerByte(c byte) bool {
	switch c {
	case '.', ')', '-', '+', '*':
		return true
	}
	return c >= '0' && c <= '9'
}

func (b *builder) inlines(parent ast.Node) []*Node {
	var out []*Node
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		out = appendInline(out, b.inline(c))
	}
	return out
}

// appendInline appends nodes to out. goldmark may split one run of
// spaces over two text segments; a whitespace token following another
// one is folded into it.
func appendInline(out, nodes []*Node) []*Node {
	if len(out) == 0 || len(nodes) == 0 {
		return append(out, nodes...)
	}
	last, first := out[len(out)-1], nodes[0]
	if last.Kind == KindWhitespace && first.Kind == KindWhitespace {
		if !last.Synthetic() && !first.Synthetic() && last.End == first.Start {
			last.End = first.End
		}
		nodes = nodes[1:]
	}
	return append(out, nodes...)
}

func (b *builder) inline(n ast.Node) []*Node {
	switch n := n.(type) {
	case *ast.Text:
		return b.text(n)
	case *ast.String:
		return []*Node{LiteralToken(KindText, string(n.Value))}
	case *ast.CodeSpan:
		node := newNode(KindCodeSpan)
		node.Children = b.inlines(n)
		b.fit(node, n)
		b.codeDelimiters(node)
		return []*Node{node}
	case *ast.Emphasis:
		kind := KindEmphasis
		if n.Level >= 2 {
			kind = KindStrong
		}
		node := newNode(kind)
		node.Children = b.inlines(n)
		b.fit(node, n)
		return []*Node{node}
	case *ast.Link:
		return []*Node{b.link(KindInlineLink, n, n.Destination)}
	case *ast.Image:
		return []*Node{b.link(KindImage, n, n.Destination)}
	case *ast.AutoLink:
		node := newNode(KindAutoLink)
		node.Children = []*Node{
			LiteralToken(KindLinkText, string(n.Label(b.src))),
			LiteralToken(KindLinkDestination, string(n.URL(b.src))),
		}
		return []*Node{node}
	case *ast.RawHTML:
		node := newNode(KindHTML)
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			include(node, seg.Start, seg.Stop)
		}
		return []*Node{node}
	case *extast.Strikethrough:
		node := newNode(KindStrikethrough)
		node.Children = b.inlines(n)
		b.fit(node, n)
		return []*Node{node}
	case *extast.TaskCheckBox:
		if n.IsChecked {
			return []*Node{LiteralToken(KindCheckBox, "[x]")}
		}
		return []*Node{LiteralToken(KindCheckBox, "[ ]")}
	default:
		node := newNode(KindUnknown)
		node.Children = b.inlines(n)
		b.fit(node, n)
		return []*Node{node}
	}
}

// text splits a goldmark text segment into Text and Whitespace tokens
// and appends the line break that follows it, if any.
func (b *builder) text(t *ast.Text) []*Node {
	var out []*Node
	seg := t.Segment
	start := seg.Start
	for i := seg.Start; i < seg.Stop; i++ {
		space := isSpace(b.src[i])
		if i+1 == seg.Stop || isSpace(b.src[i+1]) != space {
			kind := KindText
			if space {
				kind = KindWhitespace
			}
			out = append(out, Token(kind, start, i+1))
			start = i + 1
		}
	}
	switch {
	case t.HardLineBreak():
		out = append(out, b.lineBreak(KindHardBreak, seg.Stop))
	case t.SoftLineBreak():
		out = append(out, b.lineBreak(KindEOL, seg.Stop))
	}
	return out
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func (b *builder) lineBreak(kind Kind, from int) *Node {
	if from >= 0 && from <= len(b.src) {
		if i := bytes.IndexByte(b.src[from:], '\n'); i >= 0 {
			return Token(kind, from+i, from+i+1)
		}
	}
	return LiteralToken(kind, "\n")
}

// codeDelimiters widens a code span's range from its content to its
// backtick fences.
func (b *builder) codeDelimiters(node *Node) {
	if node.Synthetic() {
		node.Literal = "``"
		return
	}
	i := node.Start
	if i > 1 && b.src[i-1] == ' ' && b.src[i-2] == '`' {
		i--
	}
	for i > 0 && b.src[i-1] == '`' {
		i--
	}
	j := node.End
	if j+1 < len(b.src) && b.src[j] == ' ' && b.src[j+1] == '`' {
		j++
	}
	for j < len(b.src) && b.src[j] == '`' {
		j++
	}
	node.Start, node.End = i, j
}

func (b *builder) link(kind Kind, n ast.Node, dest []byte) *Node {
	node := newNode(kind)
	label := newNode(KindLinkText)
	label.Children = b.inlines(n)
	b.fit(label, n)
	b.brackets(label)
	node.Children = append(node.Children, label)
	after := label.End
	if label.Synthetic() {
		after = -1
	}
	if d := b.destination(dest, after); d != nil {
		node.Children = append(node.Children, d)
	}
	b.fit(node, n)
	return node
}

// brackets widens a link text range to its enclosing brackets. When they
// cannot be found the text becomes a literal rebuilt from the content.
func (b *builder) brackets(label *Node) {
	if !label.Synthetic() {
		i := label.Start
		for i > 0 && b.src[i-1] != '[' && b.src[i-1] != '\n' && b.src[i-1] != ']' {
			i--
		}
		j := label.End
		for j < len(b.src) && b.src[j] != ']' && b.src[j] != '\n' && b.src[j] != '[' {
			j++
		}
		if i > 0 && b.src[i-1] == '[' && j < len(b.src) && b.src[j] == ']' {
			label.Start, label.End = i-1, j+1
			return
		}
	}
	label.Start, label.End = -1, -1
	label.Literal = "[" + b.plain(label.Children) + "]"
}

func (b *builder) plain(nodes []*Node) string {
	var buf bytes.Buffer
	for _, n := range nodes {
		if len(n.Children) == 0 {
			buf.WriteString(n.Text(b.str))
			continue
		}
		buf.WriteString(b.plain(n.Children))
	}
	return buf.String()
}

// destination locates dest in the source after offset, within the rest
// of that line and the next one.
func (b *builder) destination(dest []byte, after int) *Node {
	if len(dest) == 0 {
		return nil
	}
	if after >= 0 && after <= len(b.src) {
		limit := b.lineEnd(after)
		if limit < len(b.src) {
			limit = b.lineEnd(limit + 1)
		}
		if i := bytes.Index(b.src[after:limit], dest); i >= 0 {
			return Token(KindLinkDestination, after+i, after+i+len(dest))
		}
	}
	return LiteralToken(KindLinkDestination, string(dest))
}

func (b *builder) lineEnd(from int) int {
	if i := bytes.IndexByte(b.src[from:], '\n'); i >= 0 {
		return from + i
	}
	return len(b.src)
}

// definitions recovers link reference definitions, which goldmark keeps
// in the parser context instead of the tree, and orders them by offset.
func (b *builder) definitions(refs []parser.Reference) []*Node {
	if len(refs) == 0 {
		return nil
	}
	used := make(map[int]bool, len(refs))
	out := make([]*Node, 0, len(refs))
	for _, ref := range refs {
		out = append(out, b.definition(ref, used))
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, c := out[i], out[j]
		if a.Synthetic() != c.Synthetic() {
			return !a.Synthetic()
		}
		if a.Start != c.Start {
			return a.Start < c.Start
		}
		return a.Children[0].Text(b.str) < c.Children[0].Text(b.str)
	})
	return out
}

func (b *builder) definition(ref parser.Reference, used map[int]bool) *Node {
	label := ref.Label()
	node := newNode(KindLinkDefinition)
	pattern := []byte("[" + string(label) + "]:")
	for from := 0; from < len(b.src); {
		i := bytes.Index(b.src[from:], pattern)
		if i < 0 {
			break
		}
		open := from + i
		from = open + 1
		if used[open] || !b.definitionStart(open) {
			continue
		}
		used[open] = true
		end := open + len(pattern)
		node.Children = append(node.Children, Token(KindLinkLabel, open, end-1))
		include(node, open, end)
		if d := b.destination(ref.Destination(), end); d != nil {
			node.Children = append(node.Children, d)
			include(node, d.Start, d.End)
		}
		return node
	}
	node.Children = append(node.Children, LiteralToken(KindLinkLabel, "["+string(label)+"]"))
	if d := b.destination(ref.Destination(), -1); d != nil {
		node.Children = append(node.Children, d)
	}
	return node
}

// definitionStart reports whether only indentation and block quote
// markers precede offset on its line.
func (b *builder) definitionStart(offset int) bool {
	for i := offset - 1; i >= 0; i-- {
		switch b.src[i] {
		case '\n':
			return true
		case ' ', '\t', '>':
		default:
			return false
		}
	}
	return true
}

// mergeByOffset inserts located definitions in front of the first block
// that starts after them. Unlocated definitions go last.
func mergeByOffset(blocks, defs []*Node) []*Node {
	if len(defs) == 0 {
		return blocks
	}
	out := make([]*Node, 0, len(blocks)+len(defs))
	i := 0
	for _, n := range blocks {
		for !n.Synthetic() && i < len(defs) && !defs[i].Synthetic() && defs[i].Start < n.Start {
			out = append(out, defs[i])
			i++
		}
		out = append(out, n)
	}
	return append(out, defs[i:]...)
}

// separate interleaves EOL tokens between consecutive blocks: one for the
// line break ending the first block and one per blank line in between.
func (b *builder) separate(blocks []*Node) []*Node {
	out := make([]*Node, 0, len(blocks)*2)
	for i, n := range blocks {
		if i > 0 {
			out = append(out, b.breaksBetween(blocks[i-1], n)...)
		}
		out = append(out, n)
	}
	return out
}

func (b *builder) breaksBetween(prev, next *Node) []*Node {
	if prev.Synthetic() || next.Synthetic() || prev.End > next.Start {
		return []*Node{LiteralToken(KindEOL, "\n")}
	}
	gap := b.src[prev.End:next.Start]
	first := bytes.IndexByte(gap, '\n')
	if first < 0 {
		return nil
	}
	out := []*Node{Token(KindEOL, prev.End+first, prev.End+first+1)}
	pos := first + 1
	for {
		nl := bytes.IndexByte(gap[pos:], '\n')
		if nl < 0 {
			break
		}
		if len(bytes.Trim(gap[pos:pos+nl], " \t\r")) == 0 {
			out = append(out, Token(KindEOL, prev.End+pos+nl, prev.End+pos+nl+1))
		}
		pos += nl + 1
	}
	return out
}
