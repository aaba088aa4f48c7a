package errors

import (
	"errors"
	"fmt"
)

// ErrEmptyLine is returned when resolving a line that holds no command word.
var ErrEmptyLine = errors.New("empty line")

// ResolveError represents the type of a resolution error.
type ResolveError uint

// ORDER IN WHICH THE ERROR CONSTANTS APPEAR MATTERS.
const (
	// ErrUnknown indicates a generic error.
	ErrUnknown ResolveError = iota

	// ErrUnknownCommand indicates that the leading word of a line
	// matches no built-in command.
	ErrUnknownCommand

	// ErrUnknownFlag indicates a flag not accepted by the invoked command.
	ErrUnknownFlag

	// ErrInvalidFlag indicates a malformed flag text (empty, too long,
	// or a two-character text not starting with a dash).
	ErrInvalidFlag
)

func (e ResolveError) String() string {
	errs := [...]string{
		"unknown",         // ErrUnknown
		"unknown command", // ErrUnknownCommand
		"unknown flag",    // ErrUnknownFlag
		"invalid flag",    // ErrInvalidFlag
	}
	if int(e) >= len(errs) {
		return "unrecognized error type"
	}

	return errs[e]
}

func (e ResolveError) Error() string {
	return e.String()
}

// Error is a resolution error. It carries enough context to render
// a precise message, but never a partial result.
type Error struct {
	// The type of error
	Type ResolveError

	// Command is the command word the error relates to, if any.
	Command string

	// Value is the offending text: a command word, a flag or a flag run.
	Value string
}

// Error returns the rendered, one-line error message.
func (e *Error) Error() string {
	switch e.Type {
	case ErrUnknownCommand:
		return fmt.Sprintf("Unknown command '%s'.", e.Value)
	case ErrUnknownFlag:
		return fmt.Sprintf("Unknown flag '%s' for `%s`.", e.Value, e.Command)
	case ErrInvalidFlag:
		return fmt.Sprintf("Invalid flag: %s", e.Value)
	default:
		return e.Value
	}
}

// Unwrap returns the error type, so that errors.Is can match on it.
func (e *Error) Unwrap() error {
	return e.Type
}

// UnknownCommand returns an error for an unrecognized command word.
func UnknownCommand(word string) *Error {
	return &Error{Type: ErrUnknownCommand, Value: word}
}

// UnknownFlag returns an error for a flag rejected by a command.
func UnknownFlag(command, flag string) *Error {
	return &Error{Type: ErrUnknownFlag, Command: command, Value: flag}
}

// InvalidFlag returns an error for a malformed flag text.
func InvalidFlag(text string) *Error {
	return &Error{Type: ErrInvalidFlag, Value: text}
}
