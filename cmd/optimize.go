package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"biokit_go/tools/primer_design"
	"biokit_go/tools/report"
	"biokit_go/tools/translation"
)

func (a *app) newOptimizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Rewrite a coding sequence with the host's preferred synonymous codons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list, _ := cmd.Flags().GetBool("list"); list {
				t := report.NewTable("Host")
				for _, h := range translation.Hosts(translation.DefaultUsage) {
					t.Add(h)
				}
				return a.emit(cmd, t, "")
			}

			_, seq, err := a.readInput(cmd)
			if err != nil {
				return err
			}
			host := stringSetting(cmd, "host", a.cfg.Host)
			optimized, err := translation.Optimize(seq.String(), host, translation.DefaultUsage)
			if err != nil {
				return err
			}
			if rem := seq.Len() % 3; rem != 0 {
				a.warnf(cmd, "dropped the trailing %d base(s) of an incomplete codon", rem)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Optimized for %s:\n%s\n\n", host, optimized)
			rows := translation.CompareCodons(
				translation.CodonFrequency(seq.String()),
				translation.CodonFrequency(optimized),
			)
			t := report.NewTable("Codon", "Original", "Optimized")
			for _, r := range rows {
				t.Add(r.Codon, r.Original, r.Optimized)
			}
			return a.emit(cmd, t, "No complete codons.")
		},
	}
	addInputFlags(cmd)
	cmd.Flags().String("host", "E_coli", "host organism")
	cmd.Flags().Bool("list", false, "list the known hosts")
	return cmd
}

func (a *app) newPrimersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "primers",
		Short: "Design a forward/reverse primer pair with matched Wallace Tm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, seq, err := a.readInput(cmd)
			if err != nil {
				return err
			}
			if err := a.cfg.Limits.CheckPrimerTemplate(seq.Len()); err != nil {
				return err
			}
			length := intSetting(cmd, "length", a.cfg.Primer.Length)
			tolerance := floatSetting(cmd, "tolerance", a.cfg.Primer.Tolerance)

			pair, ok, err := primer_design.Design(seq.String(), length, tolerance)
			if err != nil {
				return err
			}
			t := report.NewTable("Primer", "Sequence", "Start", "Tm", "GC%")
			if ok {
				t.Add("forward", pair.Forward.Seq, pair.Forward.Start+1, pair.Forward.Tm, pair.Forward.GC)
				t.Add("reverse", pair.Reverse.Seq, pair.Reverse.Start+1, pair.Reverse.Tm, pair.Reverse.GC)
			}
			return a.emit(cmd, t, fmt.Sprintf("No primer pair within %.1f C found.", tolerance))
		},
	}
	addInputFlags(cmd)
	cmd.Flags().Int("length", 20, "primer length")
	cmd.Flags().Float64("tolerance", 2, "maximum Tm difference in C")
	return cmd
}
