// Package cli contains all dephub-semver commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/dephub/dephub-semver/internal/config"
	"github.com/dephub/dephub-semver/internal/logging"
	"github.com/dephub/dephub-semver/providers/versioneer"
	"github.com/spf13/cobra"
)

var (
	// Version is the application version (set via -ldflags).
	Version = "dev"
)

// Exit codes
const (
	ExitFailure       = 1 // generic failure, or a negative answer from a predicate command
	ExitInvalidFormat = 2 // an argument is not a valid semantic version
)

// ExitError carries a process exit code through cobra.
type ExitError struct {
	Code int
	Err  error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// app holds state shared by all commands of one invocation.
type app struct {
	cfgFile  string
	logLevel string
	format   string

	cfg    *config.Config
	logger *log.Logger
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:     config.AppName,
		Short:   "Parse, order and check semantic versions",
		Version: Version,
		Long: `dephub-semver parses semantic versions (MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD]),
orders them by precedence and reports available updates for locked dependencies.

Examples:
  dephub-semver parse 1.0.0-rc.1+build.5
  dephub-semver compare 1.0.0-alpha 1.0.0
  dephub-semver sort < versions.txt
  dephub-semver outdated --locked composer --releases manifest:versions.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./.dephub-semver.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", "", "output format: text, json or yaml")

	root.AddCommand(a.parseCmd())
	root.AddCommand(a.compareCmd())
	root.AddCommand(a.precedesCmd())
	root.AddCommand(a.sortCmd())
	root.AddCommand(a.latestCmd())
	root.AddCommand(a.validateCmd())
	root.AddCommand(a.outdatedCmd())

	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.format != "" {
		cfg.Format = a.format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), config.AppName, cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger
	return nil
}

// Execute runs the root command and exits the process on failure.
// This is called by main.main().
func Execute() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command tree and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintln(stderr, "Error:", exitErr.Err)
		}
		return exitErr.Code
	}
	fmt.Fprintln(stderr, "Error:", err)
	if errors.Is(err, versioneer.ErrInvalidFormat) {
		return ExitInvalidFormat
	}
	return ExitFailure
}
