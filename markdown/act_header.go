package markdown

// actHeader matches a run of 1..[MaxHeaderLevel] header symbols at the start of a line followed by
// a space. It returns an opening [KindHeader] token carrying the level and consumes the run together
// with the space.
//
// The header runs to the end of its line; the tokenizer emits the matching closing token there.
// "#NoSpace" and "####### seven" are plain text.
func actHeader(ctx *scanContext) (token Token, stride int, ok bool) {
	input, i := ctx.input, ctx.pos
	n := len(input)

	if input[i] != SymbolHeader || !ctx.isStartOfLine() {
		return
	}

	level := 1
	for i+level < n && input[i+level] == SymbolHeader && level < MaxHeaderLevel {
		level++
	}

	if i+level >= n || input[i+level] != SymbolSpace {
		return
	}

	ctx.openTags.push(KindHeader)
	ctx.headerLevel = level

	return NewHeader(level, i), level + 1, true
}
