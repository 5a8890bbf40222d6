package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pptmcp/server/internal/rpc"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pptmcp %s (api %s)\n", version, rpc.APIVersion)
		},
	}
}
