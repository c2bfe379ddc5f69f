package outlinetext

const (
	// ============================================================================
	// File Format Tokens
	// ============================================================================

	// Header is the optional first line of an outline text file
	Header = "Outline Snapshot 1"

	// CommentPrefix marks a comment line
	CommentPrefix = ";"

	// ============================================================================
	// Item Markers
	// ============================================================================

	// MarkerExpanded prefixes an expanded item
	MarkerExpanded = "+ "

	// MarkerCollapsed prefixes a collapsed item (the default when no marker is given)
	MarkerCollapsed = "- "

	// MarkerGroup prefixes a group item (root level only)
	MarkerGroup = "# "

	// MarkerExpandedGroup prefixes a group item whose own expansion flag is set
	MarkerExpandedGroup = "#+ "

	// ============================================================================
	// Indentation and Line Endings
	// ============================================================================

	// Indent is one indentation level
	Indent = "  "

	// Tab is accepted as one indentation level when parsing
	Tab = '\t'

	// LF is the line ending written by Emit
	LF = "\n"

	// CR is stripped from line ends when parsing
	CR = "\r"

	// ============================================================================
	// Encodings
	// ============================================================================

	// EncodingUTF8 is the default input and output encoding
	EncodingUTF8 = "UTF-8"

	// EncodingUTF16LE selects little-endian UTF-16
	EncodingUTF16LE = "UTF-16LE"

	// EncodingWindows1252 selects the legacy Windows-1252 code page
	EncodingWindows1252 = "WINDOWS-1252"
)

var (
	// UTF8BOM is the UTF-8 byte order mark
	UTF8BOM = []byte{0xEF, 0xBB, 0xBF}

	// UTF16LEBOM is the UTF-16 little-endian byte order mark
	UTF16LEBOM = []byte{0xFF, 0xFE}

	// UTF16BEBOM is the UTF-16 big-endian byte order mark
	UTF16BEBOM = []byte{0xFE, 0xFF}
)
