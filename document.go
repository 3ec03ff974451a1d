package richdoc

import "strings"

// ParagraphID identifies a paragraph within the document that created it.
// IDs follow creation order, which is not always document order.
type ParagraphID int

// BlockKind distinguishes prose paragraphs from list containers.
type BlockKind uint8

const (
	BlockDefault BlockKind = iota
	BlockUnorderedList
	BlockOrderedList
)

func (k BlockKind) String() string {
	switch k {
	case BlockUnorderedList:
		return "unordered"
	case BlockOrderedList:
		return "ordered"
	default:
		return "default"
	}
}

// BlockType is the block type of a paragraph. Start is only meaningful
// for ordered lists.
type BlockType struct {
	Kind  BlockKind
	Start int
}

// DefaultBlock returns the block type of prose paragraphs.
func DefaultBlock() BlockType { return BlockType{} }

// UnorderedList returns the block type of a bulleted list.
func UnorderedList() BlockType { return BlockType{Kind: BlockUnorderedList} }

// OrderedList returns the block type of a numbered list starting at start.
func OrderedList(start int) BlockType {
	return BlockType{Kind: BlockOrderedList, Start: start}
}

// IsList reports whether the paragraph type is a list container.
func (t BlockType) IsList() bool {
	return t.Kind == BlockUnorderedList || t.Kind == BlockOrderedList
}

// Span is a node of a paragraph's inline tree. Leaf spans carry text;
// internal spans carry children and usually a style.
type Span struct {
	Text     string
	Children []Span
	Style    SpanStyle
	// Paragraph refers back to the owning paragraph. It is bookkeeping
	// only and says nothing about document order.
	Paragraph ParagraphID
}

// IsLeaf reports whether s has no children.
func (s Span) IsLeaf() bool {
	return len(s.Children) == 0
}

// PlainText concatenates the text of all leaves under s in order.
func (s Span) PlainText() string {
	if s.IsLeaf() {
		return s.Text
	}
	var b strings.Builder
	s.writeText(&b)
	return b.String()
}

func (s Span) writeText(b *strings.Builder) {
	if s.IsLeaf() {
		b.WriteString(s.Text)
		return
	}
	for _, c := range s.Children {
		c.writeText(b)
	}
}

// Paragraph is a top-level block. A list paragraph holds a whole list,
// one child span per item.
type Paragraph struct {
	ID       ParagraphID
	Type     BlockType
	Level    int
	Children []Span
}

// Append adds s as the last child of p.
func (p *Paragraph) Append(s Span) {
	p.Children = append(p.Children, s)
}

// AcceptsBlocks reports whether p is a prose paragraph. With
// WithCloseLists only such paragraphs take block-level content.
func (p *Paragraph) AcceptsBlocks() bool {
	return !p.Type.IsList()
}

// PlainText concatenates the leaf text of all spans in p.
func (p *Paragraph) PlainText() string {
	var b strings.Builder
	for _, s := range p.Children {
		s.writeText(&b)
	}
	return b.String()
}

// Document is an ordered sequence of paragraphs.
type Document struct {
	Paragraphs []*Paragraph

	nextID ParagraphID
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Len returns the number of paragraphs.
func (d *Document) Len() int {
	return len(d.Paragraphs)
}

// NewParagraph creates a paragraph of type t and appends it.
func (d *Document) NewParagraph(t BlockType) *Paragraph {
	p := d.Create(t)
	d.Add(p)
	return p
}

// Create returns a paragraph of type t with the next ID without
// appending it.
func (d *Document) Create(t BlockType) *Paragraph {
	p := &Paragraph{ID: d.nextID, Type: t}
	d.nextID++
	return p
}

// Add appends p.
func (d *Document) Add(p *Paragraph) {
	d.Paragraphs = append(d.Paragraphs, p)
}

// CurrentParagraph returns the last paragraph, whatever its type. An
// empty document gets a new default paragraph.
func (d *Document) CurrentParagraph() *Paragraph {
	if last := d.Last(); last != nil {
		return last
	}
	return d.NewParagraph(DefaultBlock())
}

// Last returns the last paragraph or nil.
func (d *Document) Last() *Paragraph {
	if len(d.Paragraphs) == 0 {
		return nil
	}
	return d.Paragraphs[len(d.Paragraphs)-1]
}

// PlainText joins the paragraphs' leaf text with newlines.
func (d *Document) PlainText() string {
	parts := make([]string, 0, len(d.Paragraphs))
	for _, p := range d.Paragraphs {
		parts = append(parts, p.PlainText())
	}
	return strings.Join(parts, "\n")
}
