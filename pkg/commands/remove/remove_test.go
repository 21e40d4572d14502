package remove_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/tagicons/pkg/commands/remove"
	"github.com/arthur-debert/tagicons/pkg/errors"
	"github.com/arthur-debert/tagicons/pkg/testutil"
	"github.com/arthur-debert/tagicons/pkg/types"
)

func seedThree(env *testutil.TestEnvironment) {
	env.SeedPairs(
		types.TagIconPair{Tag: "task/inbox", Icon: "📥"},
		types.TagIconPair{Tag: "prio/high", Icon: "🔥"},
		types.TagIconPair{Tag: "status/done", Icon: "✅"},
	)
}

func TestRemove(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	seedThree(env)

	result, err := remove.Remove(remove.RemoveOptions{
		VaultRoot: env.VaultRoot,
		FS:        env.FS,
		Index:     2,
	})
	require.NoError(t, err)
	assert.Equal(t, "prio/high", result.Removed.Tag)
	assert.Equal(t, 2, result.Count)

	settings, err := env.Store.Load()
	require.NoError(t, err)
	assert.Equal(t, []types.TagIconPair{
		{Tag: "task/inbox", Icon: "📥"},
		{Tag: "status/done", Icon: "✅"},
	}, settings.TagIconPairs)
}

func TestRemove_IndexOutOfRange(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	seedThree(env)

	for _, index := range []int{0, -1, 4} {
		_, err := remove.Remove(remove.RemoveOptions{
			VaultRoot: env.VaultRoot,
			FS:        env.FS,
			Index:     index,
		})
		require.Error(t, err, "index %d", index)
		assert.True(t, errors.IsErrorCode(err, errors.ErrIndexOutOfRange))
	}

	// List untouched.
	settings, err := env.Store.Load()
	require.NoError(t, err)
	assert.Equal(t, 3, settings.Len())
}

func TestRemove_EmptyList(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	_, err := remove.Remove(remove.RemoveOptions{
		VaultRoot: env.VaultRoot,
		FS:        env.FS,
		Index:     1,
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIndexOutOfRange))
}
