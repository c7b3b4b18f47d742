package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls DIRECTORY",
		Short: "List the executable id and name of every export in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.ListExports(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) newMdIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "md-index PATH",
		Short: "Dump the MD indices of an export, or of every export in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.DumpMdIndices(cmd.Context(), args[0])
		},
	}
}
