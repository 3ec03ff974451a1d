package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/richdoc"
	"pkt.systems/richdoc/internal/config"
	"pkt.systems/richdoc/syntax"
	"pkt.systems/version"
)

const (
	defaultWidth = 80
	fetchTimeout = 30 * time.Second
)

var errUsage = errors.New("usage")

func init() {
	version.SetDefaultModule("pkt.systems/richdoc")
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "richdoc: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags := config.Flags("richdoc")
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: richdoc [flags] [inputs...]\n")
		fmt.Fprintln(stderr, "\nImports Markdown into a rich-text document and prints its tree.")
		fmt.Fprintln(stderr, "Inputs are files, file:// or http(s):// URLs. If none is given, Markdown is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return errUsage
	}
	configPath, _ := flags.GetString("config")
	cfg, err := config.Load(flags, configPath)
	if err != nil {
		return err
	}
	logger, err := newLogger(stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --log-level %q: %v\n", cfg.LogLevel, err)
		return errUsage
	}

	if listThemes, _ := flags.GetBool("list-themes"); listThemes {
		printThemes(stdout)
		return nil
	}

	theme, ok := richdoc.ThemeByName(cfg.Theme)
	if !ok {
		fmt.Fprintf(stderr, "unknown theme %q\n\n", cfg.Theme)
		printThemes(stderr)
		return errUsage
	}
	osc8, err := resolveOSC8(cfg.OSC8)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --osc8 %q: %v\n", cfg.OSC8, err)
		return errUsage
	}

	writer, closeOut, err := resolveOutput(cfg.Output, stdout)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}
	if cfg.Boring {
		theme = boringTheme()
		osc8 = false
	}

	opts := []richdoc.Option{
		richdoc.WithLogger(logger),
		richdoc.WithDescendUnknown(cfg.DescendUnknown),
		richdoc.WithCloseLists(cfg.CloseLists),
		richdoc.WithGFM(cfg.GFM),
		richdoc.WithFrontMatter(cfg.FrontMatter),
		richdoc.WithNormalization(cfg.NFC),
	}
	dumpReq := richdoc.DumpRequest{
		Writer:  writer,
		Width:   resolveWidth(cfg.Width, writer),
		Theme:   theme,
		Options: []richdoc.DumpOption{richdoc.WithOSC8(osc8), richdoc.WithParagraphIDs(cfg.IDs)},
	}

	inputs := flags.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	for i, raw := range inputs {
		src, err := readInput(raw, stdin)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		if len(inputs) > 1 {
			if i > 0 {
				fmt.Fprintln(writer)
			}
			fmt.Fprintf(writer, "%s\n", raw)
		}
		if cfg.Syntax {
			if err := dumpSyntax(writer, src, cfg.GFM); err != nil {
				return fmt.Errorf("%s: %w", raw, err)
			}
			continue
		}
		doc, err := richdoc.Import(richdoc.ImportRequest{Reader: bytes.NewReader(src), Options: opts})
		if err != nil {
			return fmt.Errorf("%s: %w", raw, err)
		}
		logger.Info().
			Str("input", raw).
			Str("size", humanize.Bytes(uint64(len(src)))).
			Str("paragraphs", humanize.Comma(int64(doc.Len()))).
			Msg("imported")
		dumpReq.Document = doc
		if err := richdoc.Dump(dumpReq); err != nil {
			return fmt.Errorf("%s: %w", raw, err)
		}
	}
	return nil
}

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Nop(), err
	}
	out := zerolog.ConsoleWriter{Out: w, NoColor: !isTerminal(w), TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

func dumpSyntax(w io.Writer, src []byte, gfm bool) error {
	if err := richdoc.ValidateInput(src); err != nil {
		return err
	}
	text := string(src)
	return syntax.Dump(w, syntax.Parse(text, syntax.WithGFM(gfm)), text)
}

func printThemes(w io.Writer) {
	for _, name := range richdoc.AvailableThemes() {
		fmt.Fprintln(w, name)
	}
}

func resolveWidth(width int, w io.Writer) int {
	if width > 0 {
		return width
	}
	return terminalWidth(w, defaultWidth)
}

func terminalWidth(w io.Writer, fallback int) int {
	if f, ok := w.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if cols, _, err := term.GetSize(fd); err == nil && cols > 0 {
				return cols
			}
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if cols, err := strconv.Atoi(value); err == nil && cols > 0 {
			return cols
		}
	}
	return fallback
}

func resolveOSC8(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return richdoc.DetectOSC8Support(), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

func boringTheme() richdoc.Theme {
	return richdoc.NewTheme("boring", richdoc.Styles{})
}

// readInput reads one input argument: "-" for stdin, a file:// or
// http(s):// URL, or a file path.
func readInput(raw string, stdin io.Reader) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty input argument")
	}
	if raw == "-" {
		return io.ReadAll(stdin)
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return fetchURL(raw)
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return os.ReadFile(normalizePath(path))
		}
	}
	return os.ReadFile(normalizePath(raw))
}

func fetchURL(raw string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, raw, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func resolveOutput(path string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
