package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/reeflective/hsh"
	"github.com/reeflective/hsh/internal/log"
)

// Shell reads lines, resolves them into built-in commands and
// dispatches those to its executor, until its input is exhausted.
type Shell struct {
	in  *bufio.Reader
	Out io.Writer
	Err io.Writer

	Prompt string

	vars     hsh.Variables
	executor Executor
	logger   *log.Logger
	errColor *color.Color
}

// Option configures a Shell.
type Option func(s *Shell)

// WithPrompt sets the prompt printed before reading each line.
func WithPrompt(prompt string) Option {
	return func(s *Shell) {
		s.Prompt = prompt
	}
}

// WithVariables sets the variables substituted in lines.
// The shell never modifies them.
func WithVariables(vars hsh.Variables) Option {
	return func(s *Shell) {
		s.vars = vars
	}
}

// WithExecutor sets the executor of resolved commands.
func WithExecutor(executor Executor) Option {
	return func(s *Shell) {
		s.executor = executor
	}
}

// WithLogger sets the logger of the shell.
func WithLogger(logger *log.Logger) Option {
	return func(s *Shell) {
		s.logger = logger
	}
}

// New returns a shell reading lines from reader.
func New(reader io.Reader, out, errw io.Writer, opts ...Option) *Shell {
	s := &Shell{
		in:       bufio.NewReader(reader),
		Out:      out,
		Err:      errw,
		Prompt:   "hsh > ",
		executor: &DefaultExecutor{},
		logger:   log.NewLogger("hsh", log.Info, nil, ""),
		errColor: color.New(color.FgRed),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run runs the read loop. It returns nil once the input is exhausted,
// and only returns an error if reading fails or ctx is done: errors of
// single lines are printed, and the loop goes on.
func (s *Shell) Run(ctx context.Context) error {
	logger := s.logger.Named(uuid.NewString())
	logger.Debug("session started")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.Out, s.Prompt)

		line, readErr := s.in.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return readErr
		}

		if line = strings.TrimSpace(line); line != "" {
			if err := s.eval(ctx, logger, line); err != nil {
				s.printError(err)
			}
		}

		if readErr != nil {
			fmt.Fprintln(s.Out)
			logger.Debug("session ended")

			return nil
		}
	}
}

// Eval resolves and executes a single line.
func (s *Shell) Eval(ctx context.Context, line string) error {
	return s.eval(ctx, s.logger, line)
}

func (s *Shell) eval(ctx context.Context, logger *log.Logger, line string) error {
	resolved, err := hsh.Split(line, s.vars)
	if err != nil {
		return err
	}

	logger.Debug("flags: %s, args: %q", resolved.Flags, resolved.Args)

	name, err := hsh.ParseCommand(resolved.Command)
	if err != nil {
		logger.Info("rejected line %q: %s", line, err)
		return err
	}

	cmd, err := hsh.BuildCommand(name, resolved.Flags)
	if err != nil {
		logger.Info("rejected line %q: %s", line, err)
		return err
	}

	streams := IOBindings{
		Stdout: s.Out,
		Stderr: s.Err,
	}

	if err := s.executor.Execute(ctx, cmd, resolved.Args, streams); err != nil {
		logger.Error("%s: %s", cmd.Name, err)
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}

	return nil
}

func (s *Shell) printError(err error) {
	s.errColor.Fprintln(s.Err, err)

	var rerr *hsh.Error
	if !errors.As(err, &rerr) || !errors.Is(err, hsh.ErrUnknownCommand) {
		return
	}

	if suggestion, found := hsh.Closest(rerr.Value); found {
		fmt.Fprintf(s.Err, "Did you mean '%s'?\n", suggestion)
	}
}
