package markdown

import (
	"html"
	"strconv"
	"strings"
)

// Render converts the token sequence into HTML.
//
// It never fails and always produces balanced tags: a closing token which doesn't match the
// innermost open tag is written as literal text, and the tags left open at the end are closed
// in LIFO order.
func Render(tokens []Token) string {
	return render(tokens, Options{}, nil)
}

// openTag is an element of the renderer's own stack. The header level is kept so the closing
// tag always matches the opening one, whatever level the closing token claims.
type openTag struct {
	kind  Kind
	level int
}

func render(tokens []Token, opts Options, warns *Warnings) string {
	var (
		sb   strings.Builder
		tags stack[openTag]
	)

	sb.Grow(estimateHTMLSize(tokens))

	for _, t := range tokens {
		switch t.Kind {
		case KindText, KindEscaped:
			sb.WriteString(html.EscapeString(t.Literal))

		case KindLink:
			href := t.URL
			if opts.EscapeURL {
				href = html.EscapeString(href)
			}

			sb.WriteString(`<a href="`)
			sb.WriteString(href)
			sb.WriteString(`">`)
			sb.WriteString(html.EscapeString(t.Literal))
			sb.WriteString("</a>")

		case KindStrong, KindItalic, KindHeader:
			if t.IsOpen() {
				tag := openTag{kind: t.Kind, level: clampLevel(t.Level)}
				writeOpenTag(&sb, tag)
				tags.push(tag)
				continue
			}

			if top, ok := tags.peek(); ok && top.kind == t.Kind {
				tags.pop()
				writeCloseTag(&sb, top)
				continue
			}

			warns.addf(IssueMismatchedClose, t.Pos,
				"Closing %s at byte index %d doesn't match the innermost open tag, written as text.", t.Kind, t.Pos)
			sb.WriteString(html.EscapeString(t.Literal))

		default:
			// unknown kinds of hand-built tokens degrade to text as well
			sb.WriteString(html.EscapeString(t.Literal))
		}
	}

	end := 0
	if len(tokens) > 0 {
		last := tokens[len(tokens)-1]
		end = last.Pos + len(last.Literal)
	}

	for {
		top, ok := tags.pop()
		if !ok {
			break
		}

		warns.addf(IssueUnclosedTag, end, "Tag %s is not closed, closing it at the end of the output.", top.kind)
		writeCloseTag(&sb, top)
	}

	return sb.String()
}

func writeOpenTag(sb *strings.Builder, tag openTag) {
	sb.WriteByte('<')
	sb.WriteString(tagName(tag))
	sb.WriteByte('>')
}

func writeCloseTag(sb *strings.Builder, tag openTag) {
	sb.WriteString("</")
	sb.WriteString(tagName(tag))
	sb.WriteByte('>')
}

func tagName(tag openTag) string {
	switch tag.kind {
	case KindStrong:
		return "strong"
	case KindItalic:
		return "em"
	default:
		return "h" + strconv.Itoa(tag.level)
	}
}

// clampLevel keeps hand-built header levels inside 1..MaxHeaderLevel.
func clampLevel(level int) int {
	return min(max(level, 1), MaxHeaderLevel)
}

func estimateHTMLSize(tokens []Token) int {
	size := 0
	for _, t := range tokens {
		// literal plus the longest possible markup around it
		size += len(t.Literal) + len(t.URL) + 16
	}
	return size
}
