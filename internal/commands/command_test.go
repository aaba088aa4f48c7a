package commands

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/hsh/internal/errors"
	"github.com/reeflective/hsh/internal/flags"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want Name
	}{
		{"ls", List},
		{"cd", ChangeDir},
		{"clear", Clear},
	}
	for _, tt := range tests {
		name, err := Parse(tt.word)
		require.NoError(t, err)
		assert.Equal(t, tt.want, name, "for %v", tt.word)
		assert.Equal(t, tt.word, name.String(), "for %v", tt.word)
	}
}

func TestParse_Unknown(t *testing.T) {
	t.Parallel()

	for _, word := range []string{"foo", "LS", "Cd", " ls", "", "clear "} {
		_, err := Parse(word)
		require.Error(t, err)
		require.True(t, stderrors.Is(err, errors.ErrUnknownCommand))

		var perr *errors.Error
		require.True(t, stderrors.As(err, &perr))
		assert.Equal(t, word, perr.Value)
	}

	_, err := Parse("foo")
	require.EqualError(t, err, "Unknown command 'foo'.")
}

func TestName_ValidFlags(t *testing.T) {
	t.Parallel()

	valid, ok := List.ValidFlags()
	require.True(t, ok)
	require.Equal(t, flags.Flags{'l', 'a'}, valid)

	// The table must not be mutable through the returned copy.
	valid.Push(flags.New('x'))
	again, _ := List.ValidFlags()
	require.False(t, again.Contains(flags.New('x')))

	for _, name := range []Name{ChangeDir, Clear} {
		valid, ok := name.ValidFlags()
		require.False(t, ok)
		require.Nil(t, valid)
	}
}

func TestNames(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"cd", "clear", "ls"}, Names())

	// Each call returns a fresh slice.
	names := Names()
	names[0] = "rm"
	require.Equal(t, []string{"cd", "clear", "ls"}, Names())
}
