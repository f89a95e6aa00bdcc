package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version/build metadata",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := o.buildInfo.ForDisplay()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", info.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", info.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", info.BuildCommit())
		},
	}
}
