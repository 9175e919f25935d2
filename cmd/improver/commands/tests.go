package commands

import (
	"github.com/spf13/cobra"

	"github.com/metops/improver/internal/clierr"
	"github.com/metops/improver/internal/dispatch"
)

// testsExecutor runs the suites behind `improver tests`. The suite runners
// live outside this binary; the default reports them unavailable.
var testsExecutor dispatch.Executor = func(cmd *cobra.Command, args []string) error {
	return clierr.New(clierr.ExitFailure, "no test suite runner is configured")
}

// SetTestsExecutor replaces the behavior of the tests command and returns
// the previous executor so callers can restore it.
func SetTestsExecutor(exec dispatch.Executor) dispatch.Executor {
	prev := testsExecutor
	testsExecutor = exec
	return prev
}

func newTestsCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "tests",
		Short: "Run pep8, pylint, unit and CLI acceptance tests",
		// Help must win over flag validation: unknown flags alongside
		// -h/--help are tolerated, not rejected.
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return testsExecutor(cmd, args)
		},
	}
	cmd.Flags().BoolVar(&debug, "debug", false, "Run in verbose mode (may take longer for CLI)")
	applyHelp(cmd, "tests")

	return cmd
}
