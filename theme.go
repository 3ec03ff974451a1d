package richdoc

import (
	"sort"
	"strings"

	"pkt.systems/richdoc/internal/palette"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the styles Dump uses, one per span style plus the tree
// decorations.
type Styles struct {
	Text          Style
	Heading       [6]Style
	Emphasis      Style
	Strong        Style
	Strikethrough Style
	Code          Style
	LinkText      Style
	LinkURL       Style
	ListMarker    Style
	Meta          Style
}

// ForSpan returns the style a span of style s is printed with.
func (st Styles) ForSpan(s SpanStyle) Style {
	switch s.Kind {
	case StyleHeading:
		level := s.Level
		if level < 1 || level > 6 {
			level = 1
		}
		return st.Heading[level-1]
	case StyleLink:
		return st.LinkText
	case StyleEmphasis:
		return st.Emphasis
	case StyleStrong:
		return st.Strong
	case StyleStrikethrough:
		return st.Strikethrough
	case StyleCode:
		return st.Code
	default:
		return st.Text
	}
}

// Theme provides named styles for the document dump.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		b.WriteString(p)
	}
	return Style{Prefix: b.String()}
}

func stylesFromPalette(p palette.Palette) Styles {
	return Styles{
		Text: style(p.Text),
		Heading: [6]Style{
			style(palette.Bold, p.H1), style(palette.Bold, p.H2), style(palette.Bold, p.H3),
			style(p.H4), style(p.H5), style(p.H6),
		},
		Emphasis:      style(palette.Italic, p.Emphasis),
		Strong:        style(palette.Bold, p.Strong),
		Strikethrough: style(palette.Strike, p.Strikethrough),
		Code:          style(p.Code),
		LinkText:      style(palette.Underline, p.LinkText),
		LinkURL:       style(p.LinkURL),
		ListMarker:    style(p.ListMarker),
		Meta:          style(palette.Faint, p.Meta),
	}
}

var builtinThemes = map[string]Theme{
	"default":         theme{name: "default", styles: stylesFromPalette(palette.PaletteDefault)},
	"gruvbox":         theme{name: "gruvbox", styles: stylesFromPalette(palette.PaletteGruvbox)},
	"dracula":         theme{name: "dracula", styles: stylesFromPalette(palette.PaletteDracula)},
	"nord":            theme{name: "nord", styles: stylesFromPalette(palette.PaletteNord)},
	"tokyo-night":     theme{name: "tokyo-night", styles: stylesFromPalette(palette.PaletteTokyoNight)},
	"solarized-dark":  theme{name: "solarized-dark", styles: stylesFromPalette(palette.PaletteSolarizedDark)},
	"solarized-light": theme{name: "solarized-light", styles: stylesFromPalette(palette.PaletteSolarizedLight)},
	"github-light":    theme{name: "github-light", styles: stylesFromPalette(palette.PaletteGithubLight)},
	"github-dark":     theme{name: "github-dark", styles: stylesFromPalette(palette.PaletteGithubDark)},
	"mono":            theme{name: "mono", styles: stylesFromPalette(palette.PaletteBoring)},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
