// Package hsh resolves the lines typed in the hsh shell into built-in
// commands ready to be executed.
//
// A line is split on whitespace: its first word names the command, and
// every other token goes through variable substitution (`$name`) and flag
// extraction (`-abc`). The collected flags are then validated against the
// allow-list of the command, before a Command is handed back to the caller,
// along with the remaining positional arguments.
//
// Executing commands is up to the caller, which switches on Command.Name.
package hsh

import (
	"github.com/reeflective/hsh/internal/commands"
	"github.com/reeflective/hsh/internal/errors"
	"github.com/reeflective/hsh/internal/flags"
	"github.com/reeflective/hsh/internal/resolve"
)

// === Primary Entry Points ===

// Resolve tokenizes a line, substitutes its variables, resolves its command
// word and validates its flags. It returns the command ready for dispatch,
// and the positional arguments of the line.
//
// On failure, the error is an *Error of type ErrUnknownCommand or
// ErrUnknownFlag, or ErrEmptyLine if the line holds no words.
func Resolve(line string, vars Variables) (*Command, []string, error) {
	resolved, err := resolve.Split(line, vars)
	if err != nil {
		return nil, nil, err
	}

	name, err := commands.Parse(resolved.Command)
	if err != nil {
		return nil, nil, err
	}

	cmd, err := commands.Build(name, resolved.Flags)
	if err != nil {
		return nil, nil, err
	}

	return cmd, resolved.Args, nil
}

// Split only tokenizes a line, without resolving its command word:
// it returns the command word, positional arguments and all flags.
func Split(line string, vars Variables) (*Line, error) {
	return resolve.Split(line, vars)
}

// === Core Types ===

// Variables gives read-only access to the variables substituted in lines.
type Variables = resolve.Variables

// Line is a tokenized line, before its command is resolved.
type Line = resolve.Line

// Flag is a command's single-character option.
type Flag = flags.Flag

// Flags is an ordered collection of flags.
type Flags = flags.Flags

// Name is one of the built-in commands.
type Name = commands.Name

// Command is a built-in command with validated flags.
type Command = commands.Command

// The built-in commands.
const (
	List      = commands.List
	ChangeDir = commands.ChangeDir
	Clear     = commands.Clear
)

// ParseFlag parses a flag from its text, either `l` or `-l`.
func ParseFlag(text string) (Flag, error) {
	return flags.Parse(text)
}

// ParseCommand parses a command word.
func ParseCommand(word string) (Name, error) {
	return commands.Parse(word)
}

// BuildCommand validates flags against the allow-list of a command.
func BuildCommand(name Name, collected Flags) (*Command, error) {
	return commands.Build(name, collected)
}

// === Public Errors ===

// Error is a resolution error, rendered as a one-line message.
type Error = errors.Error

var (
	// ErrEmptyLine is returned when resolving a line without any word.
	ErrEmptyLine = errors.ErrEmptyLine

	// ErrUnknownCommand indicates that no built-in command has this name.
	ErrUnknownCommand = errors.ErrUnknownCommand

	// ErrUnknownFlag indicates a flag not accepted by the command.
	ErrUnknownFlag = errors.ErrUnknownFlag

	// ErrInvalidFlag indicates a malformed flag text.
	ErrInvalidFlag = errors.ErrInvalidFlag
)
