package markdown

import (
	"fmt"
	"strings"
)

// Kind defines the kind of token, e.g. text, strong, italic, header, etc.
type Kind int

const (
	KindText Kind = iota
	KindStrong
	KindItalic
	KindHeader
	KindLink
	KindEscaped
)

var kindToString = [...]string{
	KindText:    "TEXT",
	KindStrong:  "STRONG",
	KindItalic:  "ITALIC",
	KindHeader:  "HEADER",
	KindLink:    "LINK",
	KindEscaped: "ESCAPED",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindToString) {
		return "UNKNOWN"
	}
	return kindToString[k]
}

// MarshalText makes the kind readable in JSON output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindToString {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown token kind %q", text)
}

// State tells whether a formatting token begins or ends a span.
//
// It is meaningful only for Strong, Italic and Header tokens. Text, Link and Escaped tokens
// are self-contained and always carry StateOpen.
type State int

const (
	StateOpen State = iota
	StateClose
)

func (s State) String() string {
	if s == StateClose {
		return "CLOSE"
	}
	return "OPEN"
}

// MarshalText makes the state readable in JSON output.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	switch string(text) {
	case "OPEN":
		*s = StateOpen
	case "CLOSE":
		*s = StateClose
	default:
		return fmt.Errorf("unknown token state %q", text)
	}
	return nil
}

// MaxHeaderLevel is the deepest supported header, i.e. "######".
const MaxHeaderLevel = 6

// Token represents a single lexical unit produced by the tokenizer.
//
// Tokens are values and are never mutated after construction.
type Token struct {
	Kind Kind `json:"kind"`

	// Literal is the token's text payload:
	//   - for formatting tokens: the original marker ("__", "_", "###"),
	//   - for text tokens: the decoded text,
	//   - for links: the anchor text,
	//   - for escaped tokens: the escaped character without the backslash.
	Literal string `json:"literal"`

	State State `json:"state"`

	// Pos is the starting byte position of the token in the original input.
	//
	// WARNING: Pos is a byte offset, not a rune index. It is used only for tracing and tests,
	// the renderer never looks at it.
	Pos int `json:"pos"`

	// Level is the header depth 1..6. Zero for other kinds.
	Level int `json:"level,omitempty"`

	// URL is set only for links.
	URL string `json:"url,omitempty"`
}

// NewText creates a text token at byte position pos.
func NewText(text string, pos int) Token {
	return Token{Kind: KindText, Literal: text, State: StateOpen, Pos: pos}
}

// NewStrong creates an opening or closing strong token at byte position pos.
func NewStrong(opening bool, pos int) Token {
	return newPaired(KindStrong, opening, pos)
}

// NewItalic creates an opening or closing italic token at byte position pos.
func NewItalic(opening bool, pos int) Token {
	return newPaired(KindItalic, opening, pos)
}

// NewHeader creates an opening header token of the given level at byte position pos.
func NewHeader(level int, pos int) Token {
	return Token{
		Kind:    KindHeader,
		Literal: strings.Repeat(delimiters[KindHeader].Opening, level),
		State:   StateOpen,
		Pos:     pos,
		Level:   level,
	}
}

// NewHeaderClose creates a closing header token. The tokenizer places it at the end of the
// header's line; its literal is empty since no marker closes a header in the source.
func NewHeaderClose(level int, pos int) Token {
	return Token{
		Kind:  KindHeader,
		State: StateClose,
		Pos:   pos,
		Level: level,
	}
}

// NewLink creates a link token with the anchor text and the url.
func NewLink(text, url string, pos int) Token {
	return Token{Kind: KindLink, Literal: text, State: StateOpen, Pos: pos, URL: url}
}

// NewEscaped creates a token for a backslash-escaped character. Pos points to the backslash.
func NewEscaped(char string, pos int) Token {
	return Token{Kind: KindEscaped, Literal: char, State: StateOpen, Pos: pos}
}

func newPaired(kind Kind, opening bool, pos int) Token {
	d := delimiters[kind]

	if opening {
		return Token{Kind: kind, Literal: d.Opening, State: StateOpen, Pos: pos}
	}

	return Token{Kind: kind, Literal: d.Closing, State: StateClose, Pos: pos}
}

// IsOpen reports whether the token opens a span.
func (t Token) IsOpen() bool {
	return t.State == StateOpen
}
