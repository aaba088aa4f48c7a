package commands

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reeflective/hsh/internal/errors"
	"github.com/reeflective/hsh/internal/flags"
)

func TestBuild_List(t *testing.T) {
	t.Parallel()

	cmd, err := Build(List, flags.Flags{'l', 'a'})
	require.NoError(t, err)
	require.Equal(t, List, cmd.Name)
	require.NotNil(t, cmd.Flags)
	require.Equal(t, "-la", cmd.Flags.String())
	require.Equal(t, "ls -la", cmd.String())

	cmd, err = Build(List, nil)
	require.NoError(t, err)
	require.NotNil(t, cmd.Flags)
	require.True(t, cmd.Flags.IsEmpty())
	require.Equal(t, "ls", cmd.String())

	// Duplicates are accepted as-is.
	cmd, err = Build(List, flags.Flags{'a', 'a'})
	require.NoError(t, err)
	require.Equal(t, "-aa", cmd.Flags.String())
}

func TestBuild_ListUnknownFlag(t *testing.T) {
	t.Parallel()

	cmd, err := Build(List, flags.Flags{'x'})
	require.Nil(t, cmd)
	require.True(t, stderrors.Is(err, errors.ErrUnknownFlag))

	var perr *errors.Error
	require.True(t, stderrors.As(err, &perr))
	require.Equal(t, "ls", perr.Command)
	require.Equal(t, "x", perr.Value)
	require.EqualError(t, err, "Unknown flag 'x' for `ls`.")

	// The first invalid flag aborts the build.
	cmd, err = Build(List, flags.Flags{'l', 'q', 'z'})
	require.Nil(t, cmd)
	require.True(t, stderrors.As(err, &perr))
	require.Equal(t, "q", perr.Value)
}

func TestBuild_NoFlagCommands(t *testing.T) {
	t.Parallel()

	for _, name := range []Name{ChangeDir, Clear} {
		cmd, err := Build(name, flags.Flags{})
		require.NoError(t, err)
		require.Equal(t, name, cmd.Name)
		require.Nil(t, cmd.Flags)
		require.Equal(t, name.String(), cmd.String())

		cmd, err = Build(name, flags.Flags{'l', 'a'})
		require.Nil(t, cmd)
		require.True(t, stderrors.Is(err, errors.ErrUnknownFlag))

		var perr *errors.Error
		require.True(t, stderrors.As(err, &perr))
		require.Equal(t, name.String(), perr.Command)
		require.Equal(t, "-la", perr.Value)
	}
}
