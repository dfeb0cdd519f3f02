package markdown

import (
	"strings"
	"unicode/utf8"
)

// Tokenize splits the input into the ordered sequence of tokens.
//
// It never fails: markup which can't be matched becomes plain text. An empty input gives
// an empty, non-nil slice.
func Tokenize(input string) []Token {
	return tokenize(input, nil)
}

// tokenize is the main loop of the tokenizer. Warnings are recorded into warns, which may be nil.
func tokenize(input string, warns *Warnings) []Token {
	n := len(input)
	tokens := make([]Token, 0, estimateTokens(input))

	if n == 0 {
		return tokens
	}

	ctx := newScanContext(input, warns)

	var text strings.Builder
	text.Grow(n)
	textStart := 0

	flushText := func() {
		if text.Len() == 0 {
			return
		}
		tokens = append(tokens, NewText(text.String(), textStart))
		text.Reset()
	}

	bufferText := func(s string, pos int) {
		if text.Len() == 0 {
			textStart = pos
		}
		text.WriteString(s)
	}

	// closeLine ends every span still open at a line boundary, since no construct in the dialect
	// spans a line break. Emphasis gets closed before the header it is nested in.
	closeLine := func(pos int) {
		if ctx.openTags.len() == 0 {
			return
		}

		flushText()

		for {
			kind, ok := ctx.openTags.pop()
			if !ok {
				break
			}

			if kind == KindHeader {
				tokens = append(tokens, NewHeaderClose(ctx.headerLevel, pos))
				ctx.headerLevel = 0
				continue
			}

			ctx.warns.addf(IssueUnclosedTag, pos,
				"Tag %s is not closed before byte index %d, closing it at the end of the line.", kind, pos)
			tokens = append(tokens, newSyntheticClose(kind, pos))
		}
	}

	for ctx.pos < n {
		i := ctx.pos

		if input[i] == SymbolNewLine {
			closeLine(i)
		}

		token, stride, ok := ctx.dispatch()

		if !ok {
			width := 1
			if input[i] >= utf8.RuneSelf {
				_, width = utf8.DecodeRuneInString(input[i:])
			}

			bufferText(input[i:i+width], i)
			ctx.pos += width
			continue
		}

		// an escaped line break or a multi-line link still ends the current line
		if strings.IndexByte(input[i:i+stride], SymbolNewLine) != -1 {
			closeLine(i)
		}

		// escaped characters are literal text, they join the text run around them
		if token.Kind == KindEscaped {
			bufferText(token.Literal, i)
		} else {
			flushText()
			tokens = append(tokens, token)
		}

		ctx.pos += stride
		ctx.floor = ctx.pos
	}

	closeLine(n)
	flushText()

	return tokens
}

// newSyntheticClose creates a closing token which has no marker in the source.
func newSyntheticClose(kind Kind, pos int) Token {
	return Token{Kind: kind, State: StateClose, Pos: pos}
}

// estimateTokens guesses the number of tokens from the number of trigger bytes in the input,
// to allocate the result once for most inputs.
func estimateTokens(input string) int {
	count := 1
	for i := 0; i < len(input); i++ {
		if triggers[input[i]] {
			count++
		}
	}
	return count
}
