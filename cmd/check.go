package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"biokit_go/config"
	"biokit_go/tools/sanity_check"
)

func (a *app) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run known-answer tests against every scanner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return sanity_check.Run(cmd.OutOrStdout())
		},
	}
}

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "biokit - Version Information Menu")
			fmt.Fprintln(out, "Central Executable:")
			fmt.Fprintf(out, "\tbiokit:\t\t\t%s\n", config.Main_version)
			fmt.Fprintf(out, "\nModular tools:\n")
			for _, tv := range config.ToolVersions() {
				fmt.Fprintf(out, "\t%-24s%s\n", tv.Name+":", tv.Version)
			}
			return nil
		},
	}
}
