package markdown

// action asks a single handler whether it can produce a token at the context's current position.
//
// Return values:
//   - token Token - the produced token, meaningful only when ok is true.
//   - stride int - number of bytes consumed, to advance the main loop.
//   - ok bool - true if the handler matched.
//
// An action that doesn't match must leave the context untouched, apart from recording Warnings.
type action func(ctx *scanContext) (token Token, stride int, ok bool)

// actions is the handler chain in priority order. The first action that matches wins, so
// the escape always beats the markup it protects, and strong is tried before italic.
var actions = [...]action{
	actEscape,
	actLink,
	actStrong,
	actItalic,
	actHeader,
}

// triggers marks the bytes at which any action can possibly match. All other bytes go
// straight to the text buffer without asking the chain.
//
// WARNING: every trigger must be a 1-byte ASCII symbol.
var triggers = [256]bool{
	SymbolEscape:        true,
	SymbolLinkTextStart: true,
	SymbolUnderscore:    true,
	SymbolHeader:        true,
}

// dispatch runs the chain at the current position.
func (c *scanContext) dispatch() (token Token, stride int, ok bool) {
	if !triggers[c.input[c.pos]] {
		return
	}

	for _, act := range actions {
		if token, stride, ok = act(c); ok {
			return
		}
	}

	return
}
