package status_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/tagicons/pkg/commands/generate"
	"github.com/arthur-debert/tagicons/pkg/commands/status"
	"github.com/arthur-debert/tagicons/pkg/config"
	"github.com/arthur-debert/tagicons/pkg/testutil"
	"github.com/arthur-debert/tagicons/pkg/types"
)

func runStatus(t *testing.T, env *testutil.TestEnvironment) *types.StatusResult {
	t.Helper()

	result, err := status.Status(status.StatusOptions{
		VaultRoot: env.VaultRoot,
		FS:        env.FS,
		Config:    config.Default(),
	})
	require.NoError(t, err)
	return result
}

func runGenerate(t *testing.T, env *testutil.TestEnvironment) {
	t.Helper()

	_, err := generate.Generate(generate.GenerateOptions{
		VaultRoot: env.VaultRoot,
		FS:        env.FS,
		Config:    config.Default(),
	})
	require.NoError(t, err)
}

func TestStatus_FreshVault(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	result := runStatus(t, env)

	assert.Equal(t, env.VaultRoot, result.VaultRoot)
	assert.False(t, result.UsedFallback)
	assert.Equal(t, env.Paths.SettingsPath(), result.SettingsPath)
	assert.False(t, result.SettingsExists)
	assert.Equal(t, env.SnippetPath(), result.SnippetPath)
	assert.Equal(t, 0, result.PairCount)
	assert.Equal(t, types.SnippetMissing, result.Snippet)
}

func TestStatus_AfterGenerate(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.SeedPairs(
		types.TagIconPair{Tag: "task/inbox", Icon: "📥"},
		types.TagIconPair{Tag: "prio/high", Icon: "🔥"},
	)
	runGenerate(t, env)

	result := runStatus(t, env)

	assert.True(t, result.SettingsExists)
	assert.Equal(t, 2, result.PairCount)
	assert.Equal(t, types.SnippetFresh, result.Snippet)
}

func TestStatus_StaleAfterSettingsChange(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.SeedPairs(types.TagIconPair{Tag: "task/inbox", Icon: "📥"})
	runGenerate(t, env)

	// Mutations persist without regenerating, leaving the snippet behind.
	env.SeedPairs(
		types.TagIconPair{Tag: "task/inbox", Icon: "📥"},
		types.TagIconPair{Tag: "status/done", Icon: "✅"},
	)

	result := runStatus(t, env)
	assert.Equal(t, types.SnippetStale, result.Snippet)
}

func TestStatus_StaleAfterSnippetEdit(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.SeedPairs(types.TagIconPair{Tag: "task/inbox", Icon: "📥"})
	runGenerate(t, env)

	edited := env.ReadSnippet() + "/* hand edit */\n"
	require.NoError(t, env.FS.WriteFile(env.SnippetPath(), []byte(edited), 0644))

	result := runStatus(t, env)
	assert.Equal(t, types.SnippetStale, result.Snippet)
}

func TestStatus_StaleWhenSettingsInvalid(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.SeedPairs(types.TagIconPair{Tag: "task/inbox", Icon: "📥"})
	runGenerate(t, env)

	// The generator rejects these settings, so whatever is on disk
	// cannot match them.
	env.SeedPairs(types.TagIconPair{Tag: "not-a-valid-tag", Icon: "X"})

	result := runStatus(t, env)
	assert.Equal(t, types.SnippetStale, result.Snippet)
}

func TestStatus_EmptySettingsWithEmptySnippetIsFresh(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.SeedPairs()
	runGenerate(t, env)

	result := runStatus(t, env)
	assert.True(t, result.SettingsExists)
	assert.Equal(t, 0, result.PairCount)
	assert.Equal(t, types.SnippetFresh, result.Snippet)
}
