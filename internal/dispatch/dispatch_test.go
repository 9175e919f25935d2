package dispatch

import (
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metops/improver/internal/clierr"
)

func newTestRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "improver",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	echo := &cobra.Command{
		Use:                "echo",
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "ran")
			return nil
		},
	}
	echo.SetHelpFunc(func(c *cobra.Command, args []string) {
		fmt.Fprint(c.OutOrStdout(), "echo help\n")
	})

	fail := &cobra.Command{
		Use: "fail",
		RunE: func(cmd *cobra.Command, args []string) error {
			return clierr.New(clierr.ExitFailure, "boom")
		},
	}

	root.AddCommand(echo, fail)
	return root
}

func TestDispatchRunsCommand(t *testing.T) {
	res := Dispatch(newTestRoot, []string{"echo"})

	assert.Equal(t, clierr.ExitOK, res.ExitCode)
	assert.Equal(t, "ran\n", res.Stdout)
	assert.Empty(t, res.Stderr)
}

func TestDispatchHelpShortCircuits(t *testing.T) {
	for _, argv := range [][]string{
		{"echo", "-h"},
		{"echo", "--help"},
		{"echo", "something", "--help"},
		{"echo", "--bogus", "-h"},
	} {
		res := Dispatch(newTestRoot, argv)

		assert.Equal(t, clierr.ExitOK, res.ExitCode, "argv %v", argv)
		assert.Equal(t, "echo help\n", res.Stdout, "argv %v", argv)
	}
}

func TestDispatchUnknownCommand(t *testing.T) {
	res := Dispatch(newTestRoot, []string{"bogus"})

	assert.Equal(t, clierr.ExitUsage, res.ExitCode)
	assert.Empty(t, res.Stdout)
	assert.Contains(t, res.Stderr, "unknown command")
}

func TestDispatchExecutorFailure(t *testing.T) {
	res := Dispatch(newTestRoot, []string{"fail"})

	assert.Equal(t, clierr.ExitFailure, res.ExitCode)
	assert.Contains(t, res.Stderr, "boom")
}

func TestDispatchIsolatesInvocations(t *testing.T) {
	first := Dispatch(newTestRoot, []string{"echo"})
	second := Dispatch(newTestRoot, []string{"echo", "-h"})

	require.Equal(t, "ran\n", first.Stdout)
	require.Equal(t, "echo help\n", second.Stdout)
}
