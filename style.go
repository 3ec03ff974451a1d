package richdoc

import (
	"strconv"

	"pkt.systems/richdoc/syntax"
)

// StyleKind tags a span style.
type StyleKind uint8

const (
	StyleNone StyleKind = iota
	StyleHeading
	StyleLink
	StyleEmphasis
	StyleStrong
	StyleStrikethrough
	StyleCode
)

// SpanStyle is the style of a span. Level is set for headings, URL for
// links.
type SpanStyle struct {
	Kind  StyleKind
	Level int
	URL   string
}

var (
	NoStyle            = SpanStyle{}
	EmphasisStyle      = SpanStyle{Kind: StyleEmphasis}
	StrongStyle        = SpanStyle{Kind: StyleStrong}
	StrikethroughStyle = SpanStyle{Kind: StyleStrikethrough}
	CodeStyle          = SpanStyle{Kind: StyleCode}
)

// HeadingStyle returns the style of a level 1-6 heading. Levels outside
// that range are clamped.
func HeadingStyle(level int) SpanStyle {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return SpanStyle{Kind: StyleHeading, Level: level}
}

// LinkStyle returns the style of a hyperlink to url.
func LinkStyle(url string) SpanStyle {
	return SpanStyle{Kind: StyleLink, URL: url}
}

// IsNone reports whether s is the default style.
func (s SpanStyle) IsNone() bool {
	return s.Kind == StyleNone
}

func (s SpanStyle) String() string {
	switch s.Kind {
	case StyleNone:
		return "none"
	case StyleHeading:
		return "heading(" + strconv.Itoa(s.Level) + ")"
	case StyleLink:
		return "link(" + s.URL + ")"
	case StyleEmphasis:
		return "emphasis"
	case StyleStrong:
		return "strong"
	case StyleStrikethrough:
		return "strikethrough"
	case StyleCode:
		return "code"
	default:
		return "style(" + strconv.Itoa(int(s.Kind)) + ")"
	}
}

// StyleTable assigns styles to inline container kinds and code spans.
// Kinds missing from the table get NoStyle.
type StyleTable map[syntax.Kind]SpanStyle

// DefaultStyleTable returns the styles used unless WithStyleTable is
// given. Code spans stay unstyled.
func DefaultStyleTable() StyleTable {
	return StyleTable{
		syntax.KindEmphasis:      EmphasisStyle,
		syntax.KindStrong:        StrongStyle,
		syntax.KindStrikethrough: StrikethroughStyle,
	}
}

func (t StyleTable) lookup(k syntax.Kind) SpanStyle {
	if t == nil {
		return NoStyle
	}
	return t[k]
}
