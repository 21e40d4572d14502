package list_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/tagicons/pkg/commands/list"
	"github.com/arthur-debert/tagicons/pkg/testutil"
	"github.com/arthur-debert/tagicons/pkg/types"
)

func TestList(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.SeedPairs(
		types.TagIconPair{Tag: "task/inbox", Icon: "📥"},
		types.TagIconPair{Tag: "prio/high", Icon: "🔥"},
	)

	result, err := list.List(list.ListOptions{
		VaultRoot: env.VaultRoot,
		FS:        env.FS,
	})
	require.NoError(t, err)
	assert.Equal(t, env.VaultRoot, result.VaultRoot)
	assert.Equal(t, env.Paths.SettingsPath(), result.SettingsPath)
	assert.Equal(t, []types.PairEntry{
		{Index: 1, Tag: "task/inbox", Icon: "📥"},
		{Index: 2, Tag: "prio/high", Icon: "🔥"},
	}, result.Pairs)
}

func TestList_NoSettingsFile(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	result, err := list.List(list.ListOptions{
		VaultRoot: env.VaultRoot,
		FS:        env.FS,
	})
	require.NoError(t, err)
	assert.Empty(t, result.Pairs)
}

func TestList_KeepsMalformedPairs(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.SeedPairs(types.TagIconPair{Tag: "not-a-valid-tag", Icon: "X"})

	result, err := list.List(list.ListOptions{
		VaultRoot: env.VaultRoot,
		FS:        env.FS,
	})
	require.NoError(t, err)
	require.Len(t, result.Pairs, 1)
	assert.Equal(t, "not-a-valid-tag", result.Pairs[0].Tag)
}
