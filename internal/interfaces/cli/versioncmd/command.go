// Package versioncmd prints build information.
package versioncmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"intake/internal/shared/version"
)

func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get()
			fmt.Fprintf(cmd.OutOrStdout(), "intake %s (commit %s)\n", info.Version, info.Commit)
		},
	}
}
