// Version command for the cap CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/capmind/capmind/pkg/capmind"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the cap version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "cap", capmind.Version)
		},
	}
}
