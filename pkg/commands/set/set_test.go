package set_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/tagicons/pkg/commands/set"
	"github.com/arthur-debert/tagicons/pkg/errors"
	"github.com/arthur-debert/tagicons/pkg/testutil"
	"github.com/arthur-debert/tagicons/pkg/types"
)

func newEnv(t *testing.T) *testutil.TestEnvironment {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.SeedPairs(
		types.TagIconPair{Tag: "task/inbox", Icon: "📥"},
		types.TagIconPair{Tag: "prio/high", Icon: "🔥"},
	)
	return env
}

func TestSet_Icon(t *testing.T) {
	env := newEnv(t)

	result, err := set.Set(set.SetOptions{
		VaultRoot: env.VaultRoot,
		FS:        env.FS,
		Index:     1,
		Icon:      "📫",
	})
	require.NoError(t, err)
	assert.Equal(t, types.TagIconPair{Tag: "task/inbox", Icon: "📥"}, result.Before)
	assert.Equal(t, types.TagIconPair{Tag: "task/inbox", Icon: "📫"}, result.After)

	settings, err := env.Store.Load()
	require.NoError(t, err)
	assert.Equal(t, "📫", settings.TagIconPairs[0].Icon)
	assert.Equal(t, "task/inbox", settings.TagIconPairs[0].Tag)
}

func TestSet_Tag(t *testing.T) {
	env := newEnv(t)

	result, err := set.Set(set.SetOptions{
		VaultRoot: env.VaultRoot,
		FS:        env.FS,
		Index:     2,
		Tag:       "prio/urgent",
	})
	require.NoError(t, err)
	assert.Equal(t, "prio/urgent", result.After.Tag)
	assert.Equal(t, "🔥", result.After.Icon)
}

func TestSet_Both(t *testing.T) {
	env := newEnv(t)

	result, err := set.Set(set.SetOptions{
		VaultRoot: env.VaultRoot,
		FS:        env.FS,
		Index:     2,
		Tag:       "prio/low",
		Icon:      "🧊",
	})
	require.NoError(t, err)
	assert.Equal(t, types.TagIconPair{Tag: "prio/low", Icon: "🧊"}, result.After)
}

func TestSet_NothingToChange(t *testing.T) {
	env := newEnv(t)

	_, err := set.Set(set.SetOptions{
		VaultRoot: env.VaultRoot,
		FS:        env.FS,
		Index:     1,
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestSet_InvalidTagLeavesSettingsAlone(t *testing.T) {
	env := newEnv(t)

	_, err := set.Set(set.SetOptions{
		VaultRoot: env.VaultRoot,
		FS:        env.FS,
		Index:     1,
		Tag:       "no-separator",
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTagInvalid))

	settings, err := env.Store.Load()
	require.NoError(t, err)
	assert.Equal(t, "task/inbox", settings.TagIconPairs[0].Tag)
}

func TestSet_IndexOutOfRange(t *testing.T) {
	env := newEnv(t)

	_, err := set.Set(set.SetOptions{
		VaultRoot: env.VaultRoot,
		FS:        env.FS,
		Index:     5,
		Icon:      "X",
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIndexOutOfRange))
}
