// Package dispatch drives a cobra command tree against captured streams and
// maps execution errors to process exit codes.
package dispatch

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/metops/improver/internal/clierr"
)

// Result is the externally observable outcome of one CLI invocation: the
// exit code plus everything written to stdout and stderr.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Executor is a command's non-help behavior. Help rendering short-circuits
// before any executor runs.
type Executor func(cmd *cobra.Command, args []string) error

// Dispatch runs the command tree produced by newRoot against argv. The tree
// is rebuilt per call so concurrent dispatches never share flag state.
func Dispatch(newRoot func() *cobra.Command, argv []string) Result {
	if argv == nil {
		argv = []string{}
	}

	root := newRoot()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(argv)

	err := root.Execute()
	if err != nil {
		fmt.Fprintln(&stderr, err)
	}
	return Result{
		ExitCode: clierr.ExitCodeOf(err),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}
}
