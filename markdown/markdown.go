package markdown

import (
	"fmt"
	"unicode/utf8"
)

// EngineName and EngineVersion identify the dialect the package implements. Rendered HTML is
// cached and stored together with the version, so a change of the rules must bump it.
const (
	EngineName    = "mdhtml"
	EngineVersion = 1
)

// Options tunes a single conversion.
type Options struct {
	// EscapeURL makes the renderer HTML-escape link urls. By default urls are written as is.
	EscapeURL bool

	// WarningPolicy and MaxWarnings configure the Warnings collector.
	WarningPolicy WarningOverflowPolicy
	MaxWarnings   int
}

// Result is the output of [Convert]. It contains:
//
//   - the original input string (RawInput)
//   - the rendered HTML (HTML)
//   - the visible text length (TextLength)
//   - the token sequence the HTML was rendered from (Tokens)
//   - a list of non-critical issues (Warnings)
type Result struct {
	// RawInput is the original input string passed into Convert.
	RawInput string `json:"raw_input"`

	// HTML is always a balanced tag tree, whatever the input.
	HTML string `json:"html"`

	// TextLength is the count of runes considered visible content: text, escaped characters and
	// link anchors. Markup markers and urls are not counted.
	TextLength int `json:"text_length"`

	Tokens []Token `json:"tokens"`

	// Warnings is a list of non-critical issues. The conversion still succeeded.
	Warnings []Warning `json:"warnings"`
}

// Converter defines a markdown engine implementation.
type Converter interface {
	// Name returns the name of the markdown engine implementation.
	Name() string

	// Version returns the version of the markdown engine.
	Version() int32

	// Convert processes a raw markdown string into HTML. The only error is an invalid
	// configuration of the engine, the input itself can't make it fail.
	Convert(input string) (Result, error)
}

// Engine is the Converter backed by this package's tokenizer and renderer.
type Engine struct {
	opts Options
}

// NewEngine creates an Engine with fixed options.
func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts}
}

func (e *Engine) Name() string { return EngineName }

func (e *Engine) Version() int32 { return EngineVersion }

func (e *Engine) Convert(input string) (Result, error) {
	return Convert(input, e.opts)
}

// ToHTML is the shortcut for Render(Tokenize(input)).
func ToHTML(input string) string {
	return Render(Tokenize(input))
}

// Convert tokenizes and renders the input, collecting Warnings from both stages.
func Convert(input string, opts Options) (Result, error) {
	warns, err := NewWarnings(opts.WarningPolicy, opts.MaxWarnings)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create warnings collector: %w", err)
	}

	tokens := tokenize(input, warns)

	return Result{
		RawInput:   input,
		HTML:       render(tokens, opts, warns),
		TextLength: TextLength(tokens),
		Tokens:     tokens,
		Warnings:   warns.List(),
	}, nil
}

// TextLength counts the visible runes of the token sequence.
func TextLength(tokens []Token) int {
	n := 0
	for _, t := range tokens {
		switch t.Kind {
		case KindText, KindEscaped, KindLink:
			n += utf8.RuneCountInString(t.Literal)
		}
	}
	return n
}
