package repl

import (
	"context"
	"fmt"
	"io"

	"github.com/reeflective/hsh"
)

// Executor executes a resolved built-in command.
type Executor interface {
	Execute(ctx context.Context, cmd *hsh.Command, args []string, io IOBindings) error
}

// IOBindings are the streams a command writes to.
type IOBindings struct {
	Stdout io.Writer
	Stderr io.Writer
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, cmd *hsh.Command, args []string, io IOBindings) error

// Execute calls f.
func (f ExecutorFunc) Execute(ctx context.Context, cmd *hsh.Command, args []string, io IOBindings) error {
	return f(ctx, cmd, args, io)
}

// DefaultExecutor does not run anything: it reports
// the command it was asked to execute.
type DefaultExecutor struct{}

// Execute prints the command to the standard output.
func (e *DefaultExecutor) Execute(_ context.Context, cmd *hsh.Command, _ []string, io IOBindings) error {
	switch cmd.Name {
	case hsh.List, hsh.ChangeDir, hsh.Clear:
		fmt.Fprintf(io.Stdout, "Executing: %s\n", cmd)
		return nil
	default:
		return fmt.Errorf("no executor for command %s", cmd.Name)
	}
}
