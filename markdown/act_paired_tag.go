package markdown

import (
	"strings"
	"unicode"
)

var (
	actStrong = newPairedTagAction(delimiters[KindStrong])
	actItalic = newPairedTagAction(delimiters[KindItalic])
)

// newPairedTagAction binds the shared paired-tag logic to the delimiter of one emphasis kind.
func newPairedTagAction(d Delimiter) action {
	return func(ctx *scanContext) (Token, int, bool) {
		return actPairedTag(ctx, d)
	}
}

// actPairedTag decides whether the delimiter at the current position closes the innermost open
// tag, opens a new one, or is plain text.
//
// Behaviour:
//
//  1. Excessive delimiter guard: if the run of delimiter bytes around the position is longer
//     than the marker, e.g. "___" for both "_" and "__", nothing is attempted.
//  2. Closing is tried first. It is allowed only if the innermost open tag is of the same kind,
//     so the nesting is strictly LIFO, and the character after the marker is not a letter or
//     a digit, so "__bold__er" doesn't close inside a word.
//  3. Opening of a single-character marker is rejected if the marker is glued to a word on
//     the left, as in "ра_зных", or is followed by whitespace.
//  4. The opener must have a closer on the same line: the nearest later run of exactly the
//     marker's length, which doesn't follow whitespace.
//
// On a successful opening only the marker is consumed, the content is scanned by the following
// iterations of the main loop, which is how strong and italic nest into each other.
func actPairedTag(ctx *scanContext, d Delimiter) (token Token, stride int, ok bool) {
	input, i := ctx.input, ctx.pos
	width := len(d.Opening)

	if !strings.HasPrefix(input[i:], d.Opening) {
		return
	}

	// 1. Excessive delimiter guard
	if ctx.delimiterRun(i, d.Opening[0]) > width {
		return
	}

	// 2. Closing check
	if top, found := ctx.openTags.peek(); found && top == d.Kind {
		next, hasNext := ctx.runeAt(i + width)

		if !hasNext || !isWordRune(next) {
			ctx.openTags.pop()
			return newPaired(d.Kind, false, i), width, true
		}
	}

	// 3. Opening validity, single-character markers only
	if width == 1 {
		if prev, found := ctx.runeBefore(i); found && isWordRune(prev) {
			return
		}

		if next, found := ctx.runeAt(i + 1); found && unicode.IsSpace(next) {
			return
		}
	}

	// 4. Closing delimiter lookahead
	closer := findCloser(input, i+width, d.Closing)
	if closer == -1 {
		return
	}

	if prev, _ := ctx.runeBefore(closer); unicode.IsSpace(prev) {
		return
	}

	if strings.IndexByte(input[i+width:closer], SymbolNewLine) != -1 {
		return
	}

	ctx.openTags.push(d.Kind)

	return newPaired(d.Kind, true, i), width, true
}

// findCloser returns the index of the nearest run of closing marker bytes, starting from
// index from, whose length equals the marker's length. Escaped bytes are skipped.
// Returns -1 if there is no such run.
func findCloser(input string, from int, marker string) int {
	b := marker[0]
	n := len(input)

	for j := from; j < n; {
		switch input[j] {
		case SymbolEscape:
			// skipping the escape and the escaped byte
			j += 2

		case b:
			run := 1
			for j+run < n && input[j+run] == b {
				run++
			}

			if run == len(marker) {
				return j
			}

			j += run

		default:
			j++
		}
	}

	return -1
}
