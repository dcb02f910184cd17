package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"biokit_go/tools/kmer_analyzer"
	"biokit_go/tools/report"
)

func (a *app) newKmerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kmer",
		Short: "Count k-mers and report k-mer diversity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, seq, err := a.readInput(cmd)
			if err != nil {
				return err
			}
			k := intSetting(cmd, "k", a.cfg.Kmer)
			sortBy, _ := cmd.Flags().GetString("sort")
			ignoreN, _ := cmd.Flags().GetBool("ignore_n")
			top, _ := cmd.Flags().GetInt("top")
			all, _ := cmd.Flags().GetBool("all")
			if err := a.cfg.Limits.CheckK(k); err != nil {
				return err
			}

			freqs, err := kmer_analyzer.Frequencies(seq.String(), k, ignoreN, all, sortBy)
			if err != nil {
				return err
			}
			div, err := kmer_analyzer.Diversity(seq.String(), k)
			if err != nil {
				return err
			}

			t := report.NewTable("Kmer", "Count", "Percent")
			for _, f := range freqs {
				if top > 0 && t.Len() == top {
					break
				}
				t.Add(f.Kmer, f.Count, f.RelPct)
			}
			if err := a.emit(cmd, t, "No k-mers found."); err != nil {
				return err
			}
			if a.csvOut == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%d-mer diversity: %.4f\n", k, div)
			}
			return nil
		},
	}
	addInputFlags(cmd)
	cmd.Flags().Int("k", 3, "k-mer length")
	cmd.Flags().String("sort", "alpha", "sort order: alpha or freq")
	cmd.Flags().Bool("ignore_n", false, "skip k-mers containing N")
	cmd.Flags().Int("top", 0, "show only the first N rows (0 = all)")
	cmd.Flags().Bool("all", false, "include k-mers that do not occur")
	return cmd
}
