package richdoc

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/text/unicode/norm"

	"pkt.systems/richdoc/syntax"
)

// ImportRequest configures Import.
type ImportRequest struct {
	Reader  io.Reader
	Options []Option
}

// state is the traversal state of one import. It is passed explicitly
// through every dispatch, list and span call.
type state struct {
	doc *Document
	src string
	cfg *importConfig
}

// current returns the paragraph block-level content goes to.
func (st *state) current() *Paragraph {
	if last := st.doc.Last(); st.cfg.closeLists && last != nil && !last.AcceptsBlocks() {
		return st.doc.NewParagraph(DefaultBlock())
	}
	return st.doc.CurrentParagraph()
}

// currentID returns the ID of the paragraph current would return,
// without creating it.
func (st *state) currentID() ParagraphID {
	if last := st.doc.Last(); last != nil && (last.AcceptsBlocks() || !st.cfg.closeLists) {
		return last.ID
	}
	return st.doc.nextID
}

// Import reads Markdown from req.Reader, validates it and converts it
// into a Document.
func Import(req ImportRequest) (*Document, error) {
	if req.Reader == nil {
		return nil, fmt.Errorf("import: reader is nil")
	}
	data, err := io.ReadAll(req.Reader)
	if err != nil {
		return nil, fmt.Errorf("import: read: %w", err)
	}
	if err := ValidateInput(data); err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}
	return ImportString(string(sanitize(data)), req.Options...), nil
}

// ImportString converts Markdown into a Document. It does not fail:
// constructs the importer does not handle are skipped. Empty input gives
// an empty Document.
func ImportString(markdown string, opts ...Option) *Document {
	cfg := newImportConfig(opts)
	src := cfg.prepare(markdown)
	root := syntax.Parse(src, syntax.WithGFM(cfg.gfm))
	return importTree(root, src, &cfg)
}

// ImportTree converts an already parsed syntax tree whose ranges index
// into src. Front-matter and normalization options do not apply.
func ImportTree(root *syntax.Node, src string, opts ...Option) *Document {
	cfg := newImportConfig(opts)
	return importTree(root, src, &cfg)
}

func (cfg *importConfig) prepare(markdown string) string {
	if cfg.frontMatter {
		markdown = stripFrontMatter(markdown)
	}
	if cfg.normalize {
		markdown = norm.NFC.String(markdown)
	}
	return markdown
}

func importTree(root *syntax.Node, src string, cfg *importConfig) *Document {
	st := &state{doc: NewDocument(), src: src, cfg: cfg}
	if root == nil {
		return st.doc
	}
	if e := cfg.logger.Trace(); e.Enabled() {
		var buf bytes.Buffer
		if err := syntax.Dump(&buf, root, src); err == nil {
			e.Str("tree", buf.String()).Msg("syntax tree")
		}
	}
	for _, n := range root.Children {
		if dispatch(st, n) {
			continue
		}
		if cfg.descend {
			descend(st, n)
			continue
		}
		// Unrecognized nodes are retried as they are, once per child.
		for range n.Children {
			dispatch(st, n)
		}
	}
	cfg.logger.Debug().Int("paragraphs", st.doc.Len()).Msg("import done")
	return st.doc
}

func descend(st *state, n *syntax.Node) {
	for _, c := range n.Children {
		if !dispatch(st, c) {
			descend(st, c)
		}
	}
}
