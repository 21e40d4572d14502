package css_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/tagicons/pkg/css"
	"github.com/arthur-debert/tagicons/pkg/errors"
	"github.com/arthur-debert/tagicons/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_EmptyList(t *testing.T) {
	out, err := css.Generate(nil)
	require.NoError(t, err)
	assert.Equal(t, "", out)

	out, err = css.Generate([]types.TagIconPair{})
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestGenerate_SinglePair(t *testing.T) {
	out, err := css.Generate([]types.TagIconPair{
		{Tag: "task/inbox", Icon: "📥"},
	})
	require.NoError(t, err)

	expected := `.tag[href="#task/inbox"],
.cm-tag-taskinbox {
  font-size: 0px;
  padding: 0;
}

.tag[href="#task/inbox"]:after,
.cm-tag-taskinbox:after {
  font-size: var(--font-text-size);
}

.cm-active .tag[href="#task/inbox"]:after,
.cm-active .cm-tag-taskinbox:after {
  font-size: var(--font-text-size);
}

.tag[href="#task/inbox"]:after,
.cm-hashtag-begin.cm-tag-taskinbox:after {
  content: "📥";
  background-color: var(--background-secondary-alt);
  border: 1px solid var(--background-modifier-border);
  border-radius: 4px;
}

`
	assert.Equal(t, expected, out)
}

func TestGenerate_SuppressSelectorList(t *testing.T) {
	out, err := css.Generate([]types.TagIconPair{
		{Tag: "a/b", Icon: "X"},
		{Tag: "c/d", Icon: "Y"},
	})
	require.NoError(t, err)

	suppress := `.tag[href="#a/b"],
.cm-tag-ab,
.tag[href="#c/d"],
.cm-tag-cd {
  font-size: 0px;
  padding: 0;
}`
	assert.True(t, strings.HasPrefix(out, suppress), "suppress rule should open the stylesheet:\n%s", out)
}

func TestGenerate_UnderscoreContinuationSelectors(t *testing.T) {
	out, err := css.Generate([]types.TagIconPair{
		{Tag: "status/in_progress", Icon: "🔄"},
	})
	require.NoError(t, err)

	// The live editor splits underscored tags into sibling spans, so
	// every selector-list rule must also match the continuation spans.
	assert.Contains(t, out, ".cm-tag-statusin_progress + span.cm-hashtag,\n")
	assert.Contains(t, out, ".cm-tag-statusin_progress + span.cm-hashtag + span.cm-hashtag {")
	assert.Contains(t, out, ".cm-tag-statusin_progress + span.cm-hashtag:after,\n")
	assert.Contains(t, out, ".cm-tag-statusin_progress + span.cm-hashtag + span.cm-hashtag:after {")
	assert.Contains(t, out, ".cm-active .cm-tag-statusin_progress + span.cm-hashtag:after,\n")

	// The icon rule stays per-pair and never targets the continuation spans.
	iconRule := `.tag[href="#status/in_progress"]:after,
.cm-hashtag-begin.cm-tag-statusin_progress:after {`
	assert.Contains(t, out, iconRule)
}

func TestGenerate_PlainNameHasNoContinuationSelectors(t *testing.T) {
	out, err := css.Generate([]types.TagIconPair{
		{Tag: "task/inbox", Icon: "📥"},
	})
	require.NoError(t, err)
	assert.NotContains(t, out, "span.cm-hashtag")
}

func TestGenerate_Idempotent(t *testing.T) {
	pairs := []types.TagIconPair{
		{Tag: "task/inbox", Icon: "📥"},
		{Tag: "status/in_progress", Icon: "🔄"},
		{Tag: "prio/high", Icon: "🔥"},
	}

	first, err := css.Generate(pairs)
	require.NoError(t, err)
	second, err := css.Generate(pairs)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerate_OrderSensitive(t *testing.T) {
	forward := []types.TagIconPair{
		{Tag: "a/b", Icon: "X"},
		{Tag: "c/d", Icon: "Y"},
	}
	reversed := []types.TagIconPair{
		{Tag: "c/d", Icon: "Y"},
		{Tag: "a/b", Icon: "X"},
	}

	outForward, err := css.Generate(forward)
	require.NoError(t, err)
	outReversed, err := css.Generate(reversed)
	require.NoError(t, err)

	assert.NotEqual(t, outForward, outReversed)

	// Icon rules follow list order.
	first := strings.Index(outForward, `content: "X";`)
	second := strings.Index(outForward, `content: "Y";`)
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
}

func TestGenerate_EscapesIconContent(t *testing.T) {
	out, err := css.Generate([]types.TagIconPair{
		{Tag: "a/b", Icon: `say "hi"`},
	})
	require.NoError(t, err)
	assert.Contains(t, out, `content: "say \"hi\"";`)

	out, err = css.Generate([]types.TagIconPair{
		{Tag: "a/b", Icon: `\2713`},
	})
	require.NoError(t, err)
	assert.Contains(t, out, `content: "\\2713";`)
}

func TestGenerate_RejectsInvalidPairs(t *testing.T) {
	tests := []struct {
		name string
		pair types.TagIconPair
		code errors.ErrorCode
	}{
		{
			name: "tag without category",
			pair: types.TagIconPair{Tag: "inbox", Icon: "X"},
			code: errors.ErrTagInvalid,
		},
		{
			name: "tag with two separators",
			pair: types.TagIconPair{Tag: "a/b/c", Icon: "X"},
			code: errors.ErrTagInvalid,
		},
		{
			name: "tag with empty name",
			pair: types.TagIconPair{Tag: "task/", Icon: "X"},
			code: errors.ErrTagInvalid,
		},
		{
			name: "empty icon",
			pair: types.TagIconPair{Tag: "a/b", Icon: ""},
			code: errors.ErrIconInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := css.Generate([]types.TagIconPair{tt.pair})
			require.Error(t, err)
			assert.Empty(t, out)
			assert.True(t, errors.IsErrorCode(err, tt.code),
				"expected code %s, got %s", tt.code, errors.GetErrorCode(err))
		})
	}
}

func TestGenerate_BlockOrder(t *testing.T) {
	out, err := css.Generate([]types.TagIconPair{
		{Tag: "a/b", Icon: "X"},
	})
	require.NoError(t, err)

	suppress := strings.Index(out, "font-size: 0px;")
	restore := strings.Index(out, "font-size: var(--font-text-size);")
	active := strings.Index(out, ".cm-active ")
	icon := strings.Index(out, `content: "X";`)

	require.NotEqual(t, -1, suppress)
	require.NotEqual(t, -1, restore)
	require.NotEqual(t, -1, active)
	require.NotEqual(t, -1, icon)

	assert.Less(t, suppress, restore)
	assert.Less(t, restore, active)
	assert.Less(t, active, icon)
}

func TestGenerate_RulesEndWithBlankLine(t *testing.T) {
	out, err := css.Generate([]types.TagIconPair{
		{Tag: "a/b", Icon: "X"},
	})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(out, "}\n\n"))
	assert.Equal(t, 4, strings.Count(out, "}\n\n"), "every rule is followed by a blank line")
}

func TestGenerateWithOptions_BadgeOverride(t *testing.T) {
	pairs := []types.TagIconPair{{Tag: "a/b", Icon: "X"}}

	out, err := css.GenerateWithOptions(pairs, css.Options{
		Badge: css.Badge{
			Background: "#202020",
			Border:     "none",
			Radius:     "2px",
		},
	})
	require.NoError(t, err)
	assert.Contains(t, out, "background-color: #202020;")
	assert.Contains(t, out, "border: none;")
	assert.Contains(t, out, "border-radius: 2px;")
	assert.NotContains(t, out, "var(--background-secondary-alt)")
}

func TestGenerateWithOptions_PartialBadgeKeepsDefaults(t *testing.T) {
	pairs := []types.TagIconPair{{Tag: "a/b", Icon: "X"}}

	out, err := css.GenerateWithOptions(pairs, css.Options{
		Badge: css.Badge{Background: "#202020"},
	})
	require.NoError(t, err)
	assert.Contains(t, out, "background-color: #202020;")
	assert.Contains(t, out, "border: 1px solid var(--background-modifier-border);")
	assert.Contains(t, out, "border-radius: 4px;")
}

func TestValidate(t *testing.T) {
	err := css.Validate([]types.TagIconPair{
		{Tag: "a/b", Icon: "X"},
		{Tag: "bad", Icon: "Y"},
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTagInvalid))
	assert.Contains(t, err.Error(), "pair 2")

	assert.NoError(t, css.Validate(nil))
}
