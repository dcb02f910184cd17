package cmd

import (
	"sort"

	"github.com/spf13/cobra"

	"biokit_go/tools/report"
	"biokit_go/tools/site_locator"
)

func (a *app) newSitesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sites",
		Short: "Map restriction enzyme recognition sites (1-based positions)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list, _ := cmd.Flags().GetBool("list"); list {
				names := make([]string, 0, len(site_locator.DefaultEnzymes))
				for name := range site_locator.DefaultEnzymes {
					names = append(names, name)
				}
				sort.Strings(names)
				t := report.NewTable("Enzyme", "Site")
				for _, name := range names {
					t.Add(name, site_locator.DefaultEnzymes[name])
				}
				return a.emit(cmd, t, "")
			}

			_, seq, err := a.readInput(cmd)
			if err != nil {
				return err
			}
			enzymes, _ := cmd.Flags().GetStringSlice("enzymes")
			hits, err := site_locator.FindSites(seq.String(), site_locator.DefaultEnzymes, enzymes)
			if err != nil {
				return err
			}
			t := report.NewTable("Enzyme", "Site", "Count", "Positions")
			for _, h := range hits {
				t.Add(h.Enzyme, h.Site, h.Count(), joinInts(h.Positions))
			}
			return a.emit(cmd, t, "No restriction sites found.")
		},
	}
	addInputFlags(cmd)
	cmd.Flags().StringSlice("enzymes", nil, "enzymes to search (default all), e.g. EcoRI,BamHI")
	cmd.Flags().Bool("list", false, "list the known enzymes")
	return cmd
}

func (a *app) newSpliceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "splice",
		Short: "List candidate GT donor and AG acceptor dinucleotides (0-based indices)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, seq, err := a.readInput(cmd)
			if err != nil {
				return err
			}
			donors, acceptors := site_locator.FindSpliceSites(seq.String())
			t := report.NewTable("Type", "Index", "Dinucleotide")
			for _, d := range donors {
				t.Add("donor", d, "GT")
			}
			for _, ac := range acceptors {
				t.Add("acceptor", ac, "AG")
			}
			return a.emit(cmd, t, "No splice sites found.")
		},
	}
	addInputFlags(cmd)
	return cmd
}
