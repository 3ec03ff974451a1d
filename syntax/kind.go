package syntax

import "strconv"

// Kind tags a syntax tree node.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindDocument

	// Tokens.
	KindText
	KindWhitespace
	KindEOL
	KindHardBreak
	KindListNumber
	KindListBullet
	KindCheckBox

	// Blocks.
	KindHeading1
	KindHeading2
	KindHeading3
	KindHeading4
	KindHeading5
	KindHeading6
	KindParagraph
	KindOrderedList
	KindUnorderedList
	KindListItem
	KindCodeFence
	KindCodeBlock
	KindBlockQuote
	KindHorizontalRule
	KindHTMLBlock
	KindTable
	KindTableHeader
	KindTableRow
	KindTableCell
	KindLinkDefinition

	// Inlines.
	KindCodeSpan
	KindInlineLink
	KindAutoLink
	KindLinkText
	KindLinkLabel
	KindLinkDestination
	KindImage
	KindEmphasis
	KindStrong
	KindStrikethrough
	KindHTML
)

var kindNames = [...]string{
	KindUnknown:         "UNKNOWN",
	KindDocument:        "DOCUMENT",
	KindText:            "TEXT",
	KindWhitespace:      "WHITE_SPACE",
	KindEOL:             "EOL",
	KindHardBreak:       "HARD_LINE_BREAK",
	KindListNumber:      "LIST_NUMBER",
	KindListBullet:      "LIST_BULLET",
	KindCheckBox:        "CHECK_BOX",
	KindHeading1:        "ATX_1",
	KindHeading2:        "ATX_2",
	KindHeading3:        "ATX_3",
	KindHeading4:        "ATX_4",
	KindHeading5:        "ATX_5",
	KindHeading6:        "ATX_6",
	KindParagraph:       "PARAGRAPH",
	KindOrderedList:     "ORDERED_LIST",
	KindUnorderedList:   "UNORDERED_LIST",
	KindListItem:        "LIST_ITEM",
	KindCodeFence:       "CODE_FENCE",
	KindCodeBlock:       "CODE_BLOCK",
	KindBlockQuote:      "BLOCK_QUOTE",
	KindHorizontalRule:  "HORIZONTAL_RULE",
	KindHTMLBlock:       "HTML_BLOCK",
	KindTable:           "TABLE",
	KindTableHeader:     "HEADER",
	KindTableRow:        "ROW",
	KindTableCell:       "CELL",
	KindLinkDefinition:  "LINK_DEFINITION",
	KindCodeSpan:        "CODE_SPAN",
	KindInlineLink:      "INLINE_LINK",
	KindAutoLink:        "AUTOLINK",
	KindLinkText:        "LINK_TEXT",
	KindLinkLabel:       "LINK_LABEL",
	KindLinkDestination: "LINK_DESTINATION",
	KindImage:           "IMAGE",
	KindEmphasis:        "EMPH",
	KindStrong:          "STRONG",
	KindStrikethrough:   "STRIKETHROUGH",
	KindHTML:            "HTML_TAG",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// HeadingKind returns the heading kind for level 1-6.
func HeadingKind(level int) (Kind, bool) {
	if level < 1 || level > 6 {
		return KindUnknown, false
	}
	return KindHeading1 + Kind(level-1), true
}

// HeadingLevel reports the level of a heading kind.
func (k Kind) HeadingLevel() (int, bool) {
	if k < KindHeading1 || k > KindHeading6 {
		return 0, false
	}
	return int(k-KindHeading1) + 1, true
}

// IsToken reports whether k is a leaf token kind.
func (k Kind) IsToken() bool {
	return k >= KindText && k <= KindCheckBox
}

// IsLineBreak reports whether k ends a line.
func (k Kind) IsLineBreak() bool {
	return k == KindEOL || k == KindHardBreak
}
