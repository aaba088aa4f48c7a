package main

import (
	"context"
	"os"
	"strings"

	"github.com/carapace-sh/carapace"
	osactions "github.com/carapace-sh/carapace-bin/pkg/actions/os"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/reeflective/hsh/internal/config"
	"github.com/reeflective/hsh/internal/log"
	"github.com/reeflective/hsh/internal/repl"
	"github.com/reeflective/hsh/internal/vars"
)

// options holds the command-line flags, which
// override the values of the configuration file.
type options struct {
	configFile string
	prompt     string
	vars       map[string]string
	noEnv      bool
	logLevel   string
	logFile    string
	logJSON    bool
}

func bindFlags(flags *pflag.FlagSet, opts *options) {
	flags.StringVarP(&opts.configFile, "config", "c", "", "path to a YAML configuration file")
	flags.StringVarP(&opts.prompt, "prompt", "p", config.DefaultPrompt, "prompt printed before reading each line")
	flags.StringToStringVarP(&opts.vars, "var", "v", nil, "set a variable (NAME=VALUE, can be repeated)")
	flags.BoolVar(&opts.noEnv, "no-env", false, "do not import the process environment as variables")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFile, "log-file", "", "also write logs to this file (rotated)")
	flags.BoolVar(&opts.logJSON, "log-json", false, "write logs as JSON lines")
}

// apply overrides the configuration with all flags explicitly set.
func (o *options) apply(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("prompt") {
		cfg.Prompt = o.prompt
	}

	if flags.Changed("no-env") {
		cfg.ImportEnv = !o.noEnv
	}

	if flags.Changed("log-level") {
		cfg.Log.Level = strings.ToLower(o.logLevel)
	}

	if flags.Changed("log-file") {
		cfg.Log.File = o.logFile
	}

	if flags.Changed("log-json") {
		cfg.Log.JSON = o.logJSON
	}

	for name, value := range o.vars {
		cfg.Vars[name] = value
	}
}

// newVariables returns the shell variables: the environment
// if imported, overridden by the configured variables.
func newVariables(cfg *config.Config, environ []string) *vars.Store {
	store := vars.NewStore()
	if cfg.ImportEnv {
		store = vars.FromEnviron(environ)
	}

	for name, value := range cfg.Vars {
		store.Set(name, value)
	}

	return store
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "hsh",
		Short:        "A small shell resolving its built-in commands (ls, cd, clear)",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}

			opts.apply(cmd.Flags(), cfg)

			if err := cfg.Validate(); err != nil {
				return err
			}

			level, err := log.ParseLevel(cfg.Log.Level)
			if err != nil {
				return err
			}

			logger := log.NewLogger("hsh", level, cmd.ErrOrStderr(), cfg.Log.File)
			logger.JSON = cfg.Log.JSON
			defer logger.Close()

			shell := repl.New(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(),
				repl.WithPrompt(cfg.Prompt),
				repl.WithVariables(newVariables(cfg, os.Environ())),
				repl.WithLogger(logger),
			)

			return shell.Run(cmd.Context())
		},
	}

	bindFlags(rootCmd.Flags(), opts)
	bindCompletions(rootCmd)

	return rootCmd
}

// bindCompletions generates shell completions for the flags.
func bindCompletions(rootCmd *cobra.Command) {
	comps := carapace.Gen(rootCmd)

	comps.FlagCompletion(carapace.ActionMap{
		"config":    carapace.ActionFiles(".yaml", ".yml"),
		"log-file":  carapace.ActionFiles(),
		"log-level": carapace.ActionValues(log.Levels()...),
		"var": carapace.ActionMultiParts("=", func(c carapace.Context) carapace.Action {
			switch len(c.Parts) {
			case 0:
				return osactions.ActionEnvironmentVariables().Invoke(c).Suffix("=").ToA().NoSpace('=')
			default:
				return carapace.ActionValues()
			}
		}),
	})

	comps.Standalone()
}

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
