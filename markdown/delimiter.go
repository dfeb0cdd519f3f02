package markdown

// Delimiter describes the literal markers of a formatting kind.
//
// Delimiters are constructed once and shared read-only by every handler of the same kind.
type Delimiter struct {
	Kind Kind

	// Opening is the marker which starts the construct, e.g. "__" for strong.
	Opening string

	// Middle separates the two parts of a link, "](". Empty for other kinds.
	Middle string

	// Closing is the marker which ends the construct. Empty for headers, since a header
	// runs to the end of its line.
	Closing string
}

// Single-byte symbols the handlers look at.
const (
	SymbolHeader        byte = '#'
	SymbolUnderscore    byte = '_'
	SymbolEscape        byte = '\\'
	SymbolLinkTextStart byte = '['
	SymbolLinkTextEnd   byte = ']'
	SymbolLinkURLStart  byte = '('
	SymbolLinkURLEnd    byte = ')'
	SymbolNewLine       byte = '\n'
	SymbolSpace         byte = ' '
)

// delimiters maps formatting kinds to their markers.
var delimiters = map[Kind]Delimiter{
	KindHeader:  {Kind: KindHeader, Opening: "#"},
	KindItalic:  {Kind: KindItalic, Opening: "_", Closing: "_"},
	KindStrong:  {Kind: KindStrong, Opening: "__", Closing: "__"},
	KindLink:    {Kind: KindLink, Opening: "[", Middle: "](", Closing: ")"},
	KindEscaped: {Kind: KindEscaped, Opening: "\\"},
}
