package markdown

import (
	"unicode"
	"unicode/utf8"
)

// scanContext is the mutable state threaded through the handlers during one tokenization pass.
//
// It is created by Tokenize and passed explicitly to every action, so concurrent passes never
// share anything.
type scanContext struct {
	input string

	// pos is the byte offset the handlers are asked about.
	pos int

	// floor is the offset right after the last span consumed by a handler. Bytes before it
	// already belong to a token and are not counted as part of a delimiter run.
	floor int

	// openTags is the chain of formatting kinds opened so far, used to decide whether a
	// delimiter occurrence is an opener or a matching closer.
	openTags stack[Kind]

	// headerLevel is the level of the header open on the current line, 0 if none.
	headerLevel int

	warns *Warnings
}

func newScanContext(input string, warns *Warnings) *scanContext {
	return &scanContext{
		input: input,
		warns: warns,
	}
}

// isStartOfLine reports whether pos is at the very beginning of the input or right after "\n".
func (c *scanContext) isStartOfLine() bool {
	return c.pos == 0 || c.input[c.pos-1] == SymbolNewLine
}

// runeAt decodes the rune starting at byte index i. ok is false when i is out of the input.
func (c *scanContext) runeAt(i int) (r rune, ok bool) {
	if i < 0 || i >= len(c.input) {
		return 0, false
	}

	// plain ASCII doesn't need decoding
	if b := c.input[i]; b < utf8.RuneSelf {
		return rune(b), true
	}

	r, _ = utf8.DecodeRuneInString(c.input[i:])
	return r, true
}

// runeBefore decodes the rune which ends right before byte index i.
func (c *scanContext) runeBefore(i int) (r rune, ok bool) {
	if i <= 0 || i > len(c.input) {
		return 0, false
	}

	if b := c.input[i-1]; b < utf8.RuneSelf {
		return rune(b), true
	}

	r, _ = utf8.DecodeLastRuneInString(c.input[:i])
	return r, true
}

// delimiterRun returns the length of the run of byte b which contains index i.
// The run is not extended to the left past the floor.
func (c *scanContext) delimiterRun(i int, b byte) int {
	start := i
	for start > c.floor && c.input[start-1] == b {
		start--
	}

	end := i
	for end < len(c.input) && c.input[end] == b {
		end++
	}

	return end - start
}

// isWordRune reports whether r is a letter or a digit, i.e. it glues a delimiter to a word.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// stack is a minimal LIFO used by both the scan context and the renderer.
type stack[T any] struct {
	v []T
}

func (s *stack[T]) push(t T) {
	s.v = append(s.v, t)
}

func (s *stack[T]) pop() (T, bool) {
	var empty T

	if len(s.v) == 0 {
		return empty, false
	}

	last := s.v[len(s.v)-1]
	s.v = s.v[:len(s.v)-1]

	return last, true
}

func (s *stack[T]) peek() (T, bool) {
	if len(s.v) > 0 {
		return s.v[len(s.v)-1], true
	}

	var empty T

	return empty, false
}

func (s *stack[T]) len() int {
	return len(s.v)
}
