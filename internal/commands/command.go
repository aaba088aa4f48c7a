package commands

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/reeflective/hsh/internal/errors"
	"github.com/reeflective/hsh/internal/flags"
)

// Name is one of the built-in commands of the shell.
type Name uint8

const (
	// List lists a directory (`ls`).
	List Name = iota

	// ChangeDir changes the working directory (`cd`).
	ChangeDir

	// Clear clears the screen (`clear`).
	Clear
)

// words maps each command word to its name. Adding a command
// means adding a constant, one entry here, and one in validFlags
// if it accepts any flags.
var words = map[string]Name{
	"ls":    List,
	"cd":    ChangeDir,
	"clear": Clear,
}

// validFlags holds the allow-list of each command. Commands
// absent from this table accept no flags at all.
var validFlags = map[Name]flags.Flags{
	List: {flags.New('l'), flags.New('a')},
}

// Parse returns the command named by word. The match is exact and
// case-sensitive: any other word fails with an ErrUnknownCommand error.
func Parse(word string) (Name, error) {
	name, found := words[word]
	if !found {
		return 0, errors.UnknownCommand(word)
	}

	return name, nil
}

// String returns the command word, so that Parse(n.String()) == n.
func (n Name) String() string {
	for word, name := range words {
		if name == n {
			return word
		}
	}

	return "unknown"
}

// ValidFlags returns the flags accepted by the command. If the
// command accepts no flags at all, ok is false.
func (n Name) ValidFlags() (valid flags.Flags, ok bool) {
	valid, ok = validFlags[n]
	if !ok {
		return nil, false
	}

	return slices.Clone(valid), true
}

// Names returns all command words, sorted.
func Names() []string {
	names := maps.Keys(words)
	slices.Sort(names)

	return names
}
