// Package richdoc imports Markdown into an editable rich-text document
// model.
//
// A Document is an ordered list of paragraphs. Each paragraph holds a
// tree of styled spans: headings, emphasis, links and code inside prose
// paragraphs, and one span per item inside list paragraphs. Markdown is
// parsed with goldmark through the syntax package and the resulting tree
// is walked once, depth first, to build the document.
//
// Core properties:
//   - Import never fails on well-formed input; unsupported constructs are
//     skipped and logged at debug level
//   - Lists become one paragraph each; nested lists become sibling
//     paragraphs one level deeper, placed before their parent
//   - Block content goes to the last paragraph, even when it is a list,
//     unless WithCloseLists is set
//   - Spans refer back to their paragraph by ID only
//
// Example:
//
//	doc := richdoc.ImportString("# Hello\n\n- one\n- two\n")
//	err := richdoc.Dump(richdoc.DumpRequest{
//		Writer:   os.Stdout,
//		Document: doc,
//		Width:    80,
//		Theme:    richdoc.DefaultTheme(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Import reads from an io.Reader and validates the input first;
// HTTPImport fetches it over HTTP(S). Options such as WithDescendUnknown
// and WithStyleTable adjust the conversion.
package richdoc
