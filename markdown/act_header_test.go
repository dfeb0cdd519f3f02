package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActHeader(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		pos   int
		level int
	}{
		{name: "Level1", input: "# Header", level: 1},
		{name: "Level3", input: "### Header", level: 3},
		{name: "Level6", input: "###### Header", level: 6},
		{name: "AfterLineBreak", input: "text\n## Header", pos: 5, level: 2},
		{name: "NoSpace", input: "#Header"},
		{name: "TooDeep", input: "####### Header"},
		{name: "NotStartOfLine", input: "Text# Header", pos: 4},
		{name: "OnlyMarker", input: "#"},
		{name: "TabInsteadOfSpace", input: "#\tHeader"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, _ := ctxAt(t, tc.input, tc.pos)

			tok, stride, ok := actHeader(ctx)

			if tc.level == 0 {
				require.False(t, ok)
				require.Zero(t, ctx.openTags.len())
				require.Zero(t, ctx.headerLevel)
				return
			}

			require.True(t, ok)
			require.Equal(t, KindHeader, tok.Kind)
			require.Equal(t, StateOpen, tok.State)
			require.Equal(t, tc.level, tok.Level)
			require.Equal(t, strings.Repeat("#", tc.level), tok.Literal)
			require.Equal(t, tc.pos, tok.Pos)
			require.Equal(t, tc.level+1, stride)

			require.Equal(t, tc.level, ctx.headerLevel)
			top, _ := ctx.openTags.peek()
			require.Equal(t, KindHeader, top)
		})
	}
}
