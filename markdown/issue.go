package markdown

import "fmt"

// Issue describes the kind of problem detected during tokenizing or rendering,
// e.g. unclosed tag, mismatched close, redundant escape, malformed link, etc.
//
// Issues never change the output. Every one of them is resolved by falling back to literal text
// or by auto-closing, the Issue only tells the caller that it happened.
type Issue int

const (
	// IssueRedundantEscape occurs when the escape symbol is the last byte of the input, or when
	// the escaped character has no markup meaning.
	IssueRedundantEscape Issue = iota

	// IssueMalformedLink occurs when "[" is followed by "]" somewhere, but the "](...)" part is
	// missing or unterminated.
	IssueMalformedLink

	// IssueUnclosedTag occurs when the renderer reaches the end of the tokens with open tags
	// left on its stack and closes them automatically.
	IssueUnclosedTag

	// IssueMismatchedClose occurs when a closing token does not match the innermost open tag,
	// or no tag is open at all. The token is demoted to literal text.
	IssueMismatchedClose

	// IssueWarningsTruncated occurs when there are too many Warnings recorded.
	IssueWarningsTruncated
)

var issueToString = [...]string{
	IssueRedundantEscape:   "redundant_escape",
	IssueMalformedLink:     "malformed_link",
	IssueUnclosedTag:       "unclosed_tag",
	IssueMismatchedClose:   "mismatched_close",
	IssueWarningsTruncated: "warnings_truncated",
}

func (i Issue) String() string {
	if i < 0 || int(i) >= len(issueToString) {
		return "unknown"
	}
	return issueToString[i]
}

// MarshalText makes the issue readable in JSON output.
func (i Issue) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText restores an issue stored by MarshalText, e.g. from the render cache.
func (i *Issue) UnmarshalText(text []byte) error {
	for n, name := range issueToString {
		if name == string(text) {
			*i = Issue(n)
			return nil
		}
	}
	return fmt.Errorf("unknown issue %q", text)
}
