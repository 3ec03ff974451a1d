package richdoc

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

const (
	ansiReset   = "\x1b[0m"
	indentWidth = 2
)

// DumpOption configures Dump.
type DumpOption func(*dumpConfig)

type dumpConfig struct {
	osc8 bool
	ids  bool
}

// WithOSC8 enables or disables OSC 8 hyperlinks on link spans.
func WithOSC8(enabled bool) DumpOption {
	return func(cfg *dumpConfig) {
		cfg.osc8 = enabled
	}
}

// WithParagraphIDs prints the owning paragraph ID after every span.
func WithParagraphIDs(enabled bool) DumpOption {
	return func(cfg *dumpConfig) {
		cfg.ids = enabled
	}
}

// DumpRequest configures Dump.
type DumpRequest struct {
	Writer   io.Writer
	Document *Document
	// Width wraps span text to the given number of columns. Zero or
	// less disables wrapping.
	Width   int
	Theme   Theme
	Options []DumpOption
}

// Dump writes a themed, indented tree of the document: one header line
// per paragraph followed by its spans.
func Dump(req DumpRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("dump: writer is nil")
	}
	if req.Document == nil {
		return fmt.Errorf("dump: document is nil")
	}
	th := req.Theme
	if th == nil {
		th = DefaultTheme()
	}
	var cfg dumpConfig
	for _, opt := range req.Options {
		if opt != nil {
			opt(&cfg)
		}
	}
	d := &dumper{
		w:      bufio.NewWriter(req.Writer),
		styles: th.Styles(),
		width:  req.Width,
		cfg:    cfg,
	}
	for _, p := range req.Document.Paragraphs {
		d.paragraph(p)
	}
	if err := d.w.Flush(); err != nil {
		return fmt.Errorf("dump: write: %w", err)
	}
	return nil
}

type dumper struct {
	w      *bufio.Writer
	styles Styles
	width  int
	cfg    dumpConfig
}

func (d *dumper) paragraph(p *Paragraph) {
	header := fmt.Sprintf("¶%d %s", p.ID, p.Type.Kind)
	if p.Type.Kind == BlockOrderedList {
		header += " start=" + strconv.Itoa(p.Type.Start)
	}
	if p.Type.IsList() {
		header += " level=" + strconv.Itoa(p.Level)
	}
	d.line(0, d.styles.Meta, header)
	for i, s := range p.Children {
		if p.Type.IsList() {
			d.line(1, d.styles.ListMarker, listMarker(p.Type, i))
			d.span(s, 2)
			continue
		}
		d.span(s, 1)
	}
}

func listMarker(t BlockType, i int) string {
	if t.Kind == BlockOrderedList {
		return strconv.Itoa(t.Start+i) + "."
	}
	return "•"
}

func (d *dumper) span(s Span, depth int) {
	if !s.IsLeaf() || (s.Text == "" && !s.Style.IsNone() && s.Style.Kind != StyleLink) {
		d.line(depth, d.styles.ForSpan(s.Style), s.Style.String()+d.owner(s))
		for _, c := range s.Children {
			d.span(c, depth+1)
		}
		return
	}
	text := strconv.Quote(s.Text)
	if s.Style.Kind != StyleLink {
		d.text(depth, d.styles.ForSpan(s.Style), text, "", d.owner(s))
		return
	}
	url := s.Style.URL
	if limit := d.available(depth); limit > 0 {
		limit -= ansi.PrintableRuneWidth(text) + len(" -> ")
		if limit < 8 {
			limit = 8
		}
		url = fitURL(url, limit)
	}
	link := ""
	if d.cfg.osc8 {
		link = s.Style.URL
	}
	d.text(depth, d.styles.LinkText, text, link, " -> "+d.paint(d.styles.LinkURL, url)+d.owner(s))
}

func (d *dumper) owner(s Span) string {
	if !d.cfg.ids {
		return ""
	}
	return " " + d.paint(d.styles.Meta, "@"+strconv.Itoa(int(s.Paragraph)))
}

func (d *dumper) available(depth int) int {
	if d.width <= 0 {
		return 0
	}
	avail := d.width - depth*indentWidth
	if avail < 1 {
		avail = 1
	}
	return avail
}

// text writes body wrapped to the available width, each line painted
// with st and, when link is set, turned into an OSC 8 hyperlink. The
// suffix follows the last line unwrapped. The indent is written ahead of
// the OSC 8 sequence since reflow does not parse OSC escapes.
func (d *dumper) text(depth int, st Style, body, link, suffix string) {
	if limit := d.available(depth); limit > 0 {
		body = wordwrap.String(body, limit)
	}
	pad := strings.Repeat(" ", depth*indentWidth)
	lines := strings.Split(body, "\n")
	for i, l := range lines {
		l = d.paint(st, l)
		if link != "" {
			l = osc8Start + link + "\x1b\\" + l + osc8End
		}
		lines[i] = pad + l
	}
	d.write(strings.Join(lines, "\n") + suffix)
}

func (d *dumper) line(depth int, st Style, text string) {
	d.write(indent.String(d.paint(st, text), uint(depth*indentWidth)))
}

func (d *dumper) write(s string) {
	d.w.WriteString(s)
	d.w.WriteByte('\n')
}

func (d *dumper) paint(st Style, text string) string {
	if st.Prefix == "" || text == "" {
		return text
	}
	return st.Prefix + text + ansiReset
}

// fitURL shortens url to limit columns, first by dropping the scheme and
// then by truncating with an ellipsis.
func fitURL(url string, limit int) string {
	if limit <= 0 || runewidth.StringWidth(url) <= limit {
		return url
	}
	if idx := strings.Index(url, "://"); idx != -1 {
		trimmed := url[idx+3:]
		if runewidth.StringWidth(trimmed) <= limit {
			return trimmed
		}
	}
	return runewidth.Truncate(url, limit, "…")
}
