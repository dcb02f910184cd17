package cmd

import (
	"github.com/spf13/cobra"

	"biokit_go/tools/microsatellite_finder"
	"biokit_go/tools/report"
)

func (a *app) newRepeatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repeats",
		Short: "Find tandem repeats (microsatellites)",
		Long: `Find tandem repeats scanning left to right. At each position the shortest
unit reaching --min_repeats copies wins and the scan continues after its run,
so repeats starting inside an earlier run are not reported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, seq, err := a.readInput(cmd)
			if err != nil {
				return err
			}
			minUnit := intSetting(cmd, "min_unit", a.cfg.Repeats.MinUnit)
			maxUnit := intSetting(cmd, "max_unit", a.cfg.Repeats.MaxUnit)
			minRepeats := intSetting(cmd, "min_repeats", a.cfg.Repeats.MinRepeats)
			if err := a.cfg.Limits.CheckUnit(maxUnit); err != nil {
				return err
			}

			found, err := microsatellite_finder.FindRepeats(seq.String(), minUnit, maxUnit, minRepeats)
			if err != nil {
				return err
			}
			t := report.NewTable("Motif", "Start", "End", "Repeats", "Strand")
			for _, r := range found {
				t.Add(r.Motif, r.Pos(), r.End, r.Repeats, r.Strand)
			}
			return a.emit(cmd, t, "No microsatellites found.")
		},
	}
	addInputFlags(cmd)
	cmd.Flags().Int("min_unit", 2, "minimum repeat unit length")
	cmd.Flags().Int("max_unit", 6, "maximum repeat unit length")
	cmd.Flags().Int("min_repeats", 5, "minimum number of unit copies")
	return cmd
}
