package richdoc

import "github.com/rs/zerolog"

// Option configures an import.
type Option func(*importConfig)

type importConfig struct {
	logger      zerolog.Logger
	descend     bool
	styles      StyleTable
	gfm         bool
	frontMatter bool
	normalize   bool
	closeLists  bool
}

func newImportConfig(opts []Option) importConfig {
	cfg := importConfig{
		logger:      zerolog.Nop(),
		styles:      DefaultStyleTable(),
		gfm:         true,
		frontMatter: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithLogger sets the logger. Skipped nodes are logged at debug level
// and the syntax tree at trace level.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *importConfig) {
		cfg.logger = logger
	}
}

// WithDescendUnknown makes the importer descend into top-level nodes it
// does not recognize (block quotes, tables, thematic breaks) instead of
// skipping them.
func WithDescendUnknown(enabled bool) Option {
	return func(cfg *importConfig) {
		cfg.descend = enabled
	}
}

// WithStyleTable replaces the inline style table.
func WithStyleTable(table StyleTable) Option {
	return func(cfg *importConfig) {
		cfg.styles = table
	}
}

// WithGFM enables or disables GitHub Flavored Markdown parsing.
func WithGFM(enabled bool) Option {
	return func(cfg *importConfig) {
		cfg.gfm = enabled
	}
}

// WithFrontMatter controls whether a leading YAML, TOML or JSON
// front-matter block is stripped before parsing. Stripping is on by
// default.
func WithFrontMatter(strip bool) Option {
	return func(cfg *importConfig) {
		cfg.frontMatter = strip
	}
}

// WithNormalization enables NFC normalization of the input.
func WithNormalization(enabled bool) Option {
	return func(cfg *importConfig) {
		cfg.normalize = enabled
	}
}

// WithCloseLists makes a list end its paragraph: line breaks after a list
// are dropped and the next block content opens a new default paragraph.
// By default block content goes to the last paragraph whatever its type.
func WithCloseLists(enabled bool) Option {
	return func(cfg *importConfig) {
		cfg.closeLists = enabled
	}
}
