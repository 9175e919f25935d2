// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	_ "embed"
	"os"

	"github.com/spf13/cobra"

	"github.com/metops/improver/internal/helpspec"
)

//go:embed commands.yaml
var helpManifest []byte

// registry holds the help contract of every command. The manifest is part
// of the binary, so a bad manifest fails the process at startup.
var registry = helpspec.MustBuildRegistry(helpManifest)

// NewRootCmd constructs the improver root command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("IMPROVER_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "improver",
		Short:         "IMPROVER post-processing and verification toolchain",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	applyHelp(cmd, "improver")

	cmd.AddCommand(newTestsCmd())
	cmd.AddCommand(newVersionCmd(version))

	return cmd
}
