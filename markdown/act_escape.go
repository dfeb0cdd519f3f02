package markdown

import (
	"strconv"
	"unicode/utf8"
)

// actEscape matches the escape symbol followed by any character and returns a [KindEscaped]
// token holding just that character. The backslash itself is consumed.
//
// Behaviour:
//
//  1. If the escape symbol is the last byte of the input, there is nothing to escape: no match,
//     the backslash stays plain text and an [IssueRedundantEscape] Warning is added.
//  2. Escaping a character without markup meaning still works, but adds [IssueRedundantEscape].
//     A line break is such a character: the tokenizer still ends the line at it.
func actEscape(ctx *scanContext) (token Token, stride int, ok bool) {
	input, i := ctx.input, ctx.pos

	if input[i] != SymbolEscape {
		return
	}

	// 1. Checking the last symbol case
	if i+1 == len(input) {
		ctx.warns.addf(IssueRedundantEscape, i,
			"Redundant escape symbol '%c' at the end of the string.", SymbolEscape)
		return
	}

	next := input[i+1]

	// 2. Creating the escape sequence
	width := 1

	// if the next byte is not a simple ASCII, decode the next rune
	if next >= utf8.RuneSelf {
		_, width = utf8.DecodeRuneInString(input[i+1:])
	}

	char := input[i+1 : i+1+width]

	if !isMarkupSymbol(next) {
		ctx.warns.addf(IssueRedundantEscape, i+1,
			"Redundant escape before the character %s at byte index %s.",
			strconv.Quote(char), strconv.Itoa(i+1))
	}

	return NewEscaped(char, i), 1 + width, true
}

// isMarkupSymbol reports whether escaping b changes the meaning of the input.
func isMarkupSymbol(b byte) bool {
	switch b {
	case SymbolEscape, SymbolUnderscore, SymbolHeader,
		SymbolLinkTextStart, SymbolLinkTextEnd, SymbolLinkURLStart, SymbolLinkURLEnd:
		return true
	}
	return false
}
