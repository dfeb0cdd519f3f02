package markdown

import "strings"

// actLink matches a "[text](url)" sequence starting at the current position.
//
// # Behaviour:
//
//  1. The first "]" after the "[" ends the anchor text; it must be immediately followed by "(".
//     Brackets are not balanced, the first occurrence of each symbol is taken.
//  2. The first ")" after the "(" ends the url.
//  3. Both parts may contain line breaks. The tokenizer closes the spans open on the line
//     before emitting such a link.
//
// On any structural failure the action doesn't match and "[" becomes ordinary text. If the anchor
// text was terminated but the url part is missing, an [IssueMalformedLink] Warning is added.
//
// # Example:
//
// in string "see [docs](https://go.dev) now", the part "[docs](https://go.dev)" becomes
// a single link token with literal "docs" and url "https://go.dev".
func actLink(ctx *scanContext) (token Token, stride int, ok bool) {
	d := delimiters[KindLink]
	input, i := ctx.input, ctx.pos

	if !strings.HasPrefix(input[i:], d.Opening) {
		return
	}

	textStart := i + len(d.Opening)

	// index of the anchor text closing symbol, the first byte of "]("
	textEnd := strings.IndexByte(input[textStart:], d.Middle[0])

	// a lonely "[" is common in prose, no Warning for it
	if textEnd == -1 {
		return
	}

	textEnd += textStart

	if !strings.HasPrefix(input[textEnd:], d.Middle) {
		ctx.warns.addf(IssueMalformedLink, textEnd,
			"Expected %q right after the anchor text at byte index %d.", d.Middle, textEnd)
		return
	}

	urlStart := textEnd + len(d.Middle)

	urlEnd := strings.Index(input[urlStart:], d.Closing)
	if urlEnd == -1 {
		ctx.warns.addf(IssueMalformedLink, urlStart-1,
			"Unterminated link url: expected to find %q after byte index %d.", d.Closing, urlStart-1)
		return
	}

	urlEnd += urlStart

	token = NewLink(input[textStart:textEnd], input[urlStart:urlEnd], i)

	// consuming everything through the closing ")"
	stride = urlEnd + len(d.Closing) - i
	ok = true

	return
}
