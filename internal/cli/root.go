// Package cli implements the extents command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Version is the CLI version, overridden at build time with -ldflags.
var Version = "0.1.0"

const modulePath = "github.com/mesh-intelligence/extents"

// options holds global flag values shared by every subcommand.
type options struct {
	configDir string
	dataDir   string
	backend   string
	verbose   bool
}

// NewRootCmd creates the top-level "extents" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "extents",
		Short: "Inspect and maintain a persisted social-media object graph",
		Long: "extents keeps every entity of a small social-media domain in per-type\n" +
			"extents, links them through bidirectional associations, and saves or\n" +
			"restores the whole graph through a JSONL or SQLite backend.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configDir, "config-dir", "", "configuration directory (default: $(CWD)/.extents)")
	pf.StringVar(&opts.dataDir, "data-dir", "", "data directory (default: $(CWD)/.extents-db)")
	pf.StringVar(&opts.backend, "backend", "", "storage backend: jsonl or sqlite (default from config.yaml)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		newVersionCmd(),
		newInitCmd(opts),
		newSeedCmd(opts),
		newListCmd(opts),
		newCheckCmd(opts),
		newStatsCmd(opts),
	)
	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	return run(NewRootCmd(), os.Args[1:], os.Stderr)
}

func run(root *cobra.Command, args []string, stderr io.Writer) int {
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintln(stderr, "extents:", err)
	var ce *codedError
	if errors.As(err, &ce) {
		return ce.code
	}
	// Errors not raised by a command body come from flag or argument
	// parsing.
	return exitUserError
}

// codedError carries the exit code a failure should produce.
type codedError struct {
	code int
	err  error
}

func (e *codedError) Error() string { return e.err.Error() }
func (e *codedError) Unwrap() error { return e.err }

func userError(format string, args ...any) error {
	return &codedError{code: exitUserError, err: fmt.Errorf(format, args...)}
}

func sysError(format string, args ...any) error {
	return &codedError{code: exitSysError, err: fmt.Errorf(format, args...)}
}
