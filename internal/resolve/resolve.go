package resolve

import (
	"strings"
	"unicode"

	"github.com/reeflective/hsh/internal/errors"
	"github.com/reeflective/hsh/internal/flags"
)

// Variables gives read-only access to the variables substituted in tokens.
type Variables interface {
	Lookup(name string) (value string, found bool)
}

// Line is a command line split into its command word,
// its positional arguments and the flags of all its tokens.
type Line struct {
	Command string
	Args    []string
	Flags   flags.Flags
}

// Split splits a line on whitespace, keeps the first word as the command
// word, and resolves every other token with Token. Tokens resolving to
// nothing are dropped from the arguments.
func Split(line string, vars Variables) (*Line, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, errors.ErrEmptyLine
	}

	resolved := &Line{
		Command: fields[0],
		Args:    []string{},
	}

	for _, field := range fields[1:] {
		if arg, ok := Token(field, vars, &resolved.Flags); ok {
			resolved.Args = append(resolved.Args, arg)
		}
	}

	return resolved, nil
}

// Token resolves a single whitespace-delimited token in one scan:
//   - `$name` is replaced with the value of the variable, or with nothing
//     if the variable is not set. A bare `$` is kept as is.
//   - `-` starts a flag run: each following character of the token,
//     including further dashes, is pushed onto the flags.
//   - any other character is kept verbatim.
//
// The token yields an argument only if something remains after this.
func Token(token string, vars Variables, collected *flags.Flags) (string, bool) {
	var result strings.Builder

	chars := []rune(token)

	for i := 0; i < len(chars); i++ {
		switch char := chars[i]; char {
		case '$':
			start := i + 1
			end := start

			for end < len(chars) && isNameChar(chars[end]) {
				end++
			}

			name := string(chars[start:end])
			i = end - 1

			if name == "" {
				result.WriteRune('$')
				continue
			}

			if vars == nil {
				continue
			}

			if value, found := vars.Lookup(name); found {
				result.WriteString(value)
			}

		case '-':
			for _, flag := range chars[i+1:] {
				collected.Push(flags.New(flag))
			}

			i = len(chars)

		default:
			result.WriteRune(char)
		}
	}

	if result.Len() == 0 {
		return "", false
	}

	return result.String(), true
}

func isNameChar(char rune) bool {
	return unicode.IsLetter(char) || unicode.IsNumber(char) || char == '_'
}
