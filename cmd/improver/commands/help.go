package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/metops/improver/internal/helpspec"
)

// applyHelp replaces cobra's templated help with the canonical block for
// the named command. The help option is appended before rendering, so the
// renderer always documents -h/--help. The command tree and the manifest
// must agree on names; a mismatch is fatal at startup.
func applyHelp(cmd *cobra.Command, name string) {
	spec, err := registry.Lookup(name)
	if err != nil {
		panic(err)
	}
	help := helpspec.Render(spec.WithHelp())
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		fmt.Fprint(c.OutOrStdout(), help)
	})
}
