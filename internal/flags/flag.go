package flags

import (
	"github.com/reeflective/hsh/internal/errors"
)

// Flag is a command's single-character option.
// For example, in `ls -l` the `-l` is represented as Flag('l').
type Flag rune

// New creates a new Flag using the given character.
func New(char rune) Flag {
	return Flag(char)
}

// Parse constructs a Flag from its textual form: either a single
// character ("l") or a dash followed by a character ("-l").
// Any other text fails with an ErrInvalidFlag error.
func Parse(text string) (Flag, error) {
	chars := []rune(text)

	switch {
	case len(chars) == 1:
		return Flag(chars[0]), nil
	case len(chars) == 2 && chars[0] == '-':
		return Flag(chars[1]), nil
	default:
		return 0, errors.InvalidFlag(text)
	}
}

// String returns the flag character, without a dash.
func (f Flag) String() string {
	return string(f)
}
