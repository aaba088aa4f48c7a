package resolve

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/hsh/internal/errors"
	"github.com/reeflective/hsh/internal/flags"
	"github.com/reeflective/hsh/internal/vars"
)

func TestToken(t *testing.T) {
	t.Parallel()

	variables := vars.Map{
		"VAR":   "x",
		"HOME":  "/root",
		"my_v1": "v",
	}

	tests := []struct {
		name    string
		token   string
		want    string
		wantOk  bool
		wantFlg string
	}{
		{"set variable", "$VAR", "x", true, "-"},
		{"unset variable is dropped", "$UNSET", "", false, "-"},
		{"bare dollar", "$", "$", true, "-"},
		{"dollar before separator", "$/tmp", "$/tmp", true, "-"},
		{"variable in path", "$HOME/docs", "/root/docs", true, "-"},
		{"variable with underscore and digits", "a$my_v1.b", "av.b", true, "-"},
		{"unset variable keeps rest", "$UNSET/tmp", "/tmp", true, "-"},
		{"adjacent variables", "$VAR$VAR", "xx", true, "-"},
		{"literal", "file.txt", "file.txt", true, "-"},
		{"flag run", "-la", "", false, "-la"},
		{"lone dash", "-", "", false, "-"},
		{"double dash", "--all", "", false, "--all"},
		{"dash inside token", "foo-bar", "foo", true, "-bar"},
		{"variable inside flag run is not expanded", "-a$VAR", "", false, "-a$VAR"},
		{"variable before dash", "$VAR-l", "x", true, "-l"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var collected flags.Flags

			got, ok := Token(tt.token, variables, &collected)
			require.Equal(t, tt.wantOk, ok)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantFlg, collected.String())
		})
	}
}

func TestToken_FlagsAccumulate(t *testing.T) {
	t.Parallel()

	var collected flags.Flags

	_, ok := Token("-l", nil, &collected)
	require.False(t, ok)
	_, ok = Token("-a", nil, &collected)
	require.False(t, ok)

	require.Equal(t, flags.Flags{flags.New('l'), flags.New('a')}, collected)
}

func TestToken_NilVariables(t *testing.T) {
	t.Parallel()

	var collected flags.Flags

	got, ok := Token("a$HOME", nil, &collected)
	require.True(t, ok)
	require.Equal(t, "a", got)
}

func TestSplit(t *testing.T) {
	t.Parallel()

	variables := vars.Map{"HOME": "/root"}

	tests := []struct {
		line    string
		command string
		args    []string
		flags   string
	}{
		{"ls -la $HOME", "ls", []string{"/root"}, "-la"},
		{"ls", "ls", []string{}, "-"},
		{"  cd   $HOME  ", "cd", []string{"/root"}, "-"},
		{"ls -l dir -a $UNSET other", "ls", []string{"dir", "other"}, "-la"},
		{"$HOME -x", "$HOME", []string{}, "-x"},
		{"foo bar", "foo", []string{"bar"}, "-"},
	}

	for _, tt := range tests {
		line, err := Split(tt.line, variables)
		require.NoError(t, err, "for %q", tt.line)
		require.Equal(t, tt.command, line.Command, "for %q", tt.line)
		require.Equal(t, tt.flags, line.Flags.String(), "for %q", tt.line)

		if diff := cmp.Diff(tt.args, line.Args); diff != "" {
			t.Errorf("args mismatch for %q (-want +got):\n%s", tt.line, diff)
		}
	}
}

func TestSplit_Empty(t *testing.T) {
	t.Parallel()

	for _, line := range []string{"", "   ", "\t\n"} {
		resolved, err := Split(line, nil)
		require.Nil(t, resolved)
		require.True(t, stderrors.Is(err, errors.ErrEmptyLine))
	}
}
