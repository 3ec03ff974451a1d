// Package palette holds the ANSI colour palettes behind the built-in
// themes.
package palette

import (
	"fmt"
	"strconv"
)

// SGR attribute sequences.
const (
	Reset     = "\x1b[0m"
	Bold      = "\x1b[1m"
	Faint     = "\x1b[2m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
	Strike    = "\x1b[9m"
)

// Palette assigns a foreground sequence to each semantic role.
type Palette struct {
	Text          string
	H1            string
	H2            string
	H3            string
	H4            string
	H5            string
	H6            string
	Emphasis      string
	Strong        string
	Strikethrough string
	Code          string
	ListMarker    string
	LinkText      string
	LinkURL       string
	Meta          string
}

// FG returns the 24-bit foreground sequence for a #rrggbb colour. It
// panics on malformed input, palettes are package constants.
func FG(hex string) string {
	if len(hex) != 7 || hex[0] != '#' {
		panic(fmt.Sprintf("palette: bad colour %q", hex))
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		panic(fmt.Sprintf("palette: bad colour %q: %v", hex, err))
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", v>>16&0xff, v>>8&0xff, v&0xff)
}

var (
	PaletteDefault = Palette{
		Text:          "",
		H1:            FG("#ff5f87"),
		H2:            FG("#ffaf5f"),
		H3:            FG("#ffd75f"),
		H4:            FG("#87d75f"),
		H5:            FG("#5fafff"),
		H6:            FG("#af87ff"),
		Emphasis:      FG("#d7d7af"),
		Strong:        FG("#ffffff"),
		Strikethrough: FG("#8a8a8a"),
		Code:          FG("#5fd7d7"),
		ListMarker:    FG("#ff875f"),
		LinkText:      FG("#5fafff"),
		LinkURL:       FG("#6c6c6c"),
		Meta:          FG("#6c6c6c"),
	}

	PaletteGruvbox = Palette{
		Text:          FG("#ebdbb2"),
		H1:            FG("#fb4934"),
		H2:            FG("#fe8019"),
		H3:            FG("#fabd2f"),
		H4:            FG("#b8bb26"),
		H5:            FG("#83a598"),
		H6:            FG("#d3869b"),
		Emphasis:      FG("#d5c4a1"),
		Strong:        FG("#fbf1c7"),
		Strikethrough: FG("#928374"),
		Code:          FG("#8ec07c"),
		ListMarker:    FG("#fe8019"),
		LinkText:      FG("#83a598"),
		LinkURL:       FG("#928374"),
		Meta:          FG("#928374"),
	}

	PaletteDracula = Palette{
		Text:          FG("#f8f8f2"),
		H1:            FG("#ff79c6"),
		H2:            FG("#bd93f9"),
		H3:            FG("#8be9fd"),
		H4:            FG("#50fa7b"),
		H5:            FG("#f1fa8c"),
		H6:            FG("#ffb86c"),
		Emphasis:      FG("#f1fa8c"),
		Strong:        FG("#ffb86c"),
		Strikethrough: FG("#6272a4"),
		Code:          FG("#50fa7b"),
		ListMarker:    FG("#ff79c6"),
		LinkText:      FG("#8be9fd"),
		LinkURL:       FG("#6272a4"),
		Meta:          FG("#6272a4"),
	}

	PaletteNord = Palette{
		Text:          FG("#d8dee9"),
		H1:            FG("#88c0d0"),
		H2:            FG("#81a1c1"),
		H3:            FG("#5e81ac"),
		H4:            FG("#a3be8c"),
		H5:            FG("#ebcb8b"),
		H6:            FG("#b48ead"),
		Emphasis:      FG("#e5e9f0"),
		Strong:        FG("#eceff4"),
		Strikethrough: FG("#4c566a"),
		Code:          FG("#8fbcbb"),
		ListMarker:    FG("#d08770"),
		LinkText:      FG("#88c0d0"),
		LinkURL:       FG("#616e88"),
		Meta:          FG("#616e88"),
	}

	PaletteTokyoNight = Palette{
		Text:          FG("#c0caf5"),
		H1:            FG("#f7768e"),
		H2:            FG("#ff9e64"),
		H3:            FG("#e0af68"),
		H4:            FG("#9ece6a"),
		H5:            FG("#7aa2f7"),
		H6:            FG("#bb9af7"),
		Emphasis:      FG("#a9b1d6"),
		Strong:        FG("#c0caf5"),
		Strikethrough: FG("#565f89"),
		Code:          FG("#73daca"),
		ListMarker:    FG("#ff9e64"),
		LinkText:      FG("#7dcfff"),
		LinkURL:       FG("#565f89"),
		Meta:          FG("#565f89"),
	}

	PaletteSolarizedDark = Palette{
		Text:          FG("#839496"),
		H1:            FG("#dc322f"),
		H2:            FG("#cb4b16"),
		H3:            FG("#b58900"),
		H4:            FG("#859900"),
		H5:            FG("#268bd2"),
		H6:            FG("#6c71c4"),
		Emphasis:      FG("#93a1a1"),
		Strong:        FG("#eee8d5"),
		Strikethrough: FG("#586e75"),
		Code:          FG("#2aa198"),
		ListMarker:    FG("#cb4b16"),
		LinkText:      FG("#268bd2"),
		LinkURL:       FG("#586e75"),
		Meta:          FG("#586e75"),
	}

	PaletteSolarizedLight = Palette{
		Text:          FG("#657b83"),
		H1:            FG("#dc322f"),
		H2:            FG("#cb4b16"),
		H3:            FG("#b58900"),
		H4:            FG("#859900"),
		H5:            FG("#268bd2"),
		H6:            FG("#6c71c4"),
		Emphasis:      FG("#586e75"),
		Strong:        FG("#073642"),
		Strikethrough: FG("#93a1a1"),
		Code:          FG("#2aa198"),
		ListMarker:    FG("#cb4b16"),
		LinkText:      FG("#268bd2"),
		LinkURL:       FG("#93a1a1"),
		Meta:          FG("#93a1a1"),
	}

	PaletteGithubLight = Palette{
		Text:          FG("#24292f"),
		H1:            FG("#0550ae"),
		H2:            FG("#0969da"),
		H3:            FG("#8250df"),
		H4:            FG("#1a7f37"),
		H5:            FG("#9a6700"),
		H6:            FG("#57606a"),
		Emphasis:      FG("#24292f"),
		Strong:        FG("#1f2328"),
		Strikethrough: FG("#6e7781"),
		Code:          FG("#cf222e"),
		ListMarker:    FG("#bc4c00"),
		LinkText:      FG("#0969da"),
		LinkURL:       FG("#6e7781"),
		Meta:          FG("#6e7781"),
	}

	PaletteGithubDark = Palette{
		Text:          FG("#c9d1d9"),
		H1:            FG("#79c0ff"),
		H2:            FG("#58a6ff"),
		H3:            FG("#d2a8ff"),
		H4:            FG("#7ee787"),
		H5:            FG("#e3b341"),
		H6:            FG("#8b949e"),
		Emphasis:      FG("#c9d1d9"),
		Strong:        FG("#f0f6fc"),
		Strikethrough: FG("#8b949e"),
		Code:          FG("#ff7b72"),
		ListMarker:    FG("#ffa657"),
		LinkText:      FG("#58a6ff"),
		LinkURL:       FG("#8b949e"),
		Meta:          FG("#8b949e"),
	}

	// PaletteBoring has no colours. Themes built on it still apply
	// attributes such as bold.
	PaletteBoring = Palette{}
)
