package commands

import (
	"github.com/reeflective/hsh/internal/errors"
	"github.com/reeflective/hsh/internal/flags"
)

// Command is a built-in command ready to be executed:
// its flags have been validated against its allow-list.
type Command struct {
	Name Name

	// Flags is nil for commands accepting no flags,
	// and holds the validated flags otherwise (possibly none).
	Flags *flags.Flags
}

// Build validates the flags collected for a command line against the
// command's allow-list, and returns the command ready for dispatch.
// The first rejected flag aborts the build.
func Build(name Name, collected flags.Flags) (*Command, error) {
	valid, ok := name.ValidFlags()

	// Commands without an allow-list reject any flag at all,
	// and report the whole flag run.
	if !ok {
		if !collected.IsEmpty() {
			return nil, errors.UnknownFlag(name.String(), collected.String())
		}

		return &Command{Name: name}, nil
	}

	passed := flags.Flags{}

	for _, flag := range collected {
		if !valid.Contains(flag) {
			return nil, errors.UnknownFlag(name.String(), flag.String())
		}

		passed.Push(flag)
	}

	return &Command{Name: name, Flags: &passed}, nil
}

// String renders the command as it would be typed, e.g. `ls -la`.
func (c *Command) String() string {
	if c.Flags == nil || c.Flags.IsEmpty() {
		return c.Name.String()
	}

	return c.Name.String() + " " + c.Flags.String()
}
