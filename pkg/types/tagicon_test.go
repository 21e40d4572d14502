package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/tagicons/pkg/errors"
	"github.com/arthur-debert/tagicons/pkg/types"
)

func TestValidateTag(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		wantErr bool
	}{
		{"simple tag", "task/inbox", false},
		{"single letter segments", "a/b", false},
		{"underscore in name", "privado/cosas_mias", false},
		{"unicode segments", "área/niño", false},
		{"empty tag", "", true},
		{"missing separator", "inbox", true},
		{"two separators", "task/inbox/old", true},
		{"empty category", "/inbox", true},
		{"empty name", "task/", true},
		{"embedded space", "task/in box", true},
		{"embedded tab", "task/in\tbox", true},
		{"leading hash", "#task/inbox", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := types.ValidateTag(tt.tag)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrTagInvalid))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateIcon(t *testing.T) {
	tests := []struct {
		name    string
		icon    string
		wantErr bool
	}{
		{"emoji", "📥", false},
		{"ascii arrow", "->", false},
		{"quote is allowed", `"`, false},
		{"backslash is allowed", `\`, false},
		{"empty icon", "", true},
		{"newline", "a\nb", true},
		{"tab", "\t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := types.ValidateIcon(tt.icon)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrIconInvalid))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTagIconPair_Validate(t *testing.T) {
	assert.NoError(t, types.TagIconPair{Tag: "task/inbox", Icon: "📥"}.Validate())

	err := types.TagIconPair{Tag: "inbox", Icon: "📥"}.Validate()
	assert.True(t, errors.IsErrorCode(err, errors.ErrTagInvalid))

	err = types.TagIconPair{Tag: "task/inbox", Icon: ""}.Validate()
	assert.True(t, errors.IsErrorCode(err, errors.ErrIconInvalid))

	// The tag is checked first.
	err = types.TagIconPair{Tag: "", Icon: ""}.Validate()
	assert.True(t, errors.IsErrorCode(err, errors.ErrTagInvalid))
}

func TestTagIconPair_Split(t *testing.T) {
	category, name := types.TagIconPair{Tag: "task/inbox", Icon: "X"}.Split()
	assert.Equal(t, "task", category)
	assert.Equal(t, "inbox", name)

	category, name = types.TagIconPair{Tag: "inbox", Icon: "X"}.Split()
	assert.Equal(t, "inbox", category)
	assert.Equal(t, "", name)
}

func TestTagIconPair_CleanTag(t *testing.T) {
	assert.Equal(t, "taskinbox", types.TagIconPair{Tag: "task/inbox"}.CleanTag())
	assert.Equal(t, "privatemy_stuff", types.TagIconPair{Tag: "private/my_stuff"}.CleanTag())
}

func TestSettings_Append(t *testing.T) {
	s := types.DefaultSettings()
	require.NotNil(t, s.TagIconPairs)
	assert.Equal(t, 0, s.Len())

	require.NoError(t, s.Append(types.TagIconPair{Tag: "task/inbox", Icon: "📥"}))
	require.NoError(t, s.Append(types.TagIconPair{Tag: "prio/high", Icon: "🔥"}))
	assert.Equal(t, 2, s.Len())

	err := s.Append(types.TagIconPair{Tag: "bad tag", Icon: "X"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrTagInvalid))
	assert.Equal(t, 2, s.Len())
}

func TestSettings_At(t *testing.T) {
	s := types.DefaultSettings()
	require.NoError(t, s.Append(types.TagIconPair{Tag: "task/inbox", Icon: "📥"}))

	pair, err := s.At(0)
	require.NoError(t, err)
	assert.Equal(t, "task/inbox", pair.Tag)

	_, err = s.At(1)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIndexOutOfRange))
	_, err = s.At(-1)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIndexOutOfRange))
}

func TestSettings_HasTag(t *testing.T) {
	s := types.DefaultSettings()
	require.NoError(t, s.Append(types.TagIconPair{Tag: "task/inbox", Icon: "📥"}))

	assert.True(t, s.HasTag("task/inbox"))
	assert.False(t, s.HasTag("task/done"))
}

func TestSettings_RemoveAt(t *testing.T) {
	s := types.DefaultSettings()
	require.NoError(t, s.Append(types.TagIconPair{Tag: "task/inbox", Icon: "📥"}))
	require.NoError(t, s.Append(types.TagIconPair{Tag: "prio/high", Icon: "🔥"}))
	require.NoError(t, s.Append(types.TagIconPair{Tag: "task/done", Icon: "✅"}))

	removed, err := s.RemoveAt(1)
	require.NoError(t, err)
	assert.Equal(t, "prio/high", removed.Tag)

	// Remaining pairs keep their relative order.
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "task/inbox", s.TagIconPairs[0].Tag)
	assert.Equal(t, "task/done", s.TagIconPairs[1].Tag)

	_, err = s.RemoveAt(5)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIndexOutOfRange))
}

func TestSettings_Move(t *testing.T) {
	newSettings := func() *types.Settings {
		s := types.DefaultSettings()
		require.NoError(t, s.Append(types.TagIconPair{Tag: "task/inbox", Icon: "📥"}))
		require.NoError(t, s.Append(types.TagIconPair{Tag: "prio/high", Icon: "🔥"}))
		return s
	}

	t.Run("move up swaps with predecessor", func(t *testing.T) {
		s := newSettings()
		require.NoError(t, s.MoveUp(1))
		assert.Equal(t, "prio/high", s.TagIconPairs[0].Tag)
		assert.Equal(t, "task/inbox", s.TagIconPairs[1].Tag)
	})

	t.Run("move down swaps with successor", func(t *testing.T) {
		s := newSettings()
		require.NoError(t, s.MoveDown(0))
		assert.Equal(t, "prio/high", s.TagIconPairs[0].Tag)
	})

	t.Run("first pair cannot move up", func(t *testing.T) {
		s := newSettings()
		err := s.MoveUp(0)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("last pair cannot move down", func(t *testing.T) {
		s := newSettings()
		err := s.MoveDown(1)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("out of range index", func(t *testing.T) {
		s := newSettings()
		err := s.MoveUp(7)
		assert.True(t, errors.IsErrorCode(err, errors.ErrIndexOutOfRange))
	})
}

func TestSettings_Replace(t *testing.T) {
	s := types.DefaultSettings()
	require.NoError(t, s.Append(types.TagIconPair{Tag: "task/inbox", Icon: "📥"}))

	require.NoError(t, s.Replace(0, types.TagIconPair{Tag: "task/done", Icon: "✅"}))
	assert.Equal(t, "task/done", s.TagIconPairs[0].Tag)

	err := s.Replace(0, types.TagIconPair{Tag: "nope", Icon: "X"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrTagInvalid))
	assert.Equal(t, "task/done", s.TagIconPairs[0].Tag)

	err = s.Replace(3, types.TagIconPair{Tag: "task/inbox", Icon: "📥"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrIndexOutOfRange))
}

func TestSettings_Validate(t *testing.T) {
	s := &types.Settings{TagIconPairs: []types.TagIconPair{
		{Tag: "task/inbox", Icon: "📥"},
		{Tag: "not a tag", Icon: "X"},
	}}

	err := s.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTagInvalid))
	// The position is reported one-based, as shown to the user.
	assert.Contains(t, err.Error(), "pair 2")

	s.TagIconPairs = s.TagIconPairs[:1]
	assert.NoError(t, s.Validate())
}
