// Package cmd implements the pair command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/pair/internal/config"
	"github.com/pengelbrecht/pair/internal/scenario"
	"github.com/pengelbrecht/pair/internal/styles"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=...".
var Version = "dev"

// app holds state shared by every command of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	noColor    bool
	verbose    bool

	cfg       config.Config
	configDir string
	logger    *slog.Logger
	theme     *styles.Theme
}

// Execute runs the command line against os.Args and returns the exit code.
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes the command line with the given arguments and writers.
func Run(args []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), args, stdout, stderr)
}

// RunContext is like Run but stops long-running commands such as
// check --watch when ctx is cancelled.
func RunContext(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}

	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintf(stderr, "Error: %v\n", exitErr)
		return exitErr.Code
	}

	// Anything else comes from cobra: unknown commands, bad flags, wrong arg counts.
	fmt.Fprintf(stderr, "Error: %v\n", err)
	fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", root.CommandPath())
	return ExitUsage
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pair",
		Short: "Arithmetic on a pair of integers",
		Long: `Arithmetic on a pair of integers.

Run with no arguments to check the built-in scenarios (or the scenario
file named in .pair.json) and exit non-zero if any of them fail.

Examples:
  pair                        # Check scenarios
  pair sum 1 2                # Print 3
  pair product -- -2 3        # Negative inputs go after --
  pair check --file checks.json --watch`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, checkOptions{})
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ./"+config.DefaultFileName+" if present)")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable styled output")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every scenario")

	root.AddCommand(
		a.newCheckCmd(),
		a.newOpCmd("sum", "Print a + b", scenario.OpSum),
		a.newOpCmd("diff", "Print a - b", scenario.OpDifference),
		a.newOpCmd("product", "Print a * b", scenario.OpProduct),
		a.newGetCmd(),
		a.newVersionCmd(),
	)

	return root
}

// setup prepares logging. Config is loaded only by the commands that read it.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	return nil
}

// loadConfig reads --config, or ./.pair.json when present, and picks the
// output theme.
func (a *app) loadConfig() error {
	path := a.configPath
	var err error
	if path != "" {
		a.cfg, err = config.Load(path)
	} else {
		path = config.DefaultFileName
		a.cfg, err = config.LoadOrDefault(path)
	}
	if err != nil {
		return NewExitError(ExitConfig, "failed to load config: %w", err)
	}
	a.configDir = filepath.Dir(path)
	a.logger.Debug("config loaded", "path", path, "version", a.cfg.Version)

	if a.noColor || !a.cfg.ColorEnabled() {
		a.theme = styles.Plain(a.stdout)
	} else {
		a.theme = styles.New(a.stdout)
	}
	return nil
}
