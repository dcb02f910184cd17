package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"biokit_go/tools/report"
	"biokit_go/tools/sequence"
	"biokit_go/tools/translation"
	"biokit_go/tools/window_scan"
)

func (a *app) newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Composition statistics: length, base counts, GC%, Tm, molecular weight",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, seq, err := a.readInput(cmd)
			if err != nil {
				return err
			}
			s := seq.String()
			c := sequence.CountNucleotides(s)

			t := report.NewTable("Metric", "Value")
			t.Add("Length", seq.Len())
			t.Add("A", c.A)
			t.Add("T", c.T)
			t.Add("G", c.G)
			t.Add("C", c.C)
			if c.N > 0 {
				t.Add("N", c.N)
			}
			t.Add("GC content (%)", sequence.GCContent(s))
			t.Add("Melting temperature (C)", sequence.MeltingTemp(s))
			t.Add("Molecular weight (Da)", sequence.MolecularWeight(s))
			t.Add("Shannon entropy (bits)", fmt.Sprintf("%.4f", window_scan.ShannonEntropy(s)))
			return a.emit(cmd, t, "")
		},
	}
	addInputFlags(cmd)
	return cmd
}

func (a *app) newTransformCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Complement, reverse complement, transcription and translation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, seq, err := a.readInput(cmd)
			if err != nil {
				return err
			}
			toStop, _ := cmd.Flags().GetBool("to_stop")
			s := seq.String()

			t := report.NewTable("Transformation", "Result")
			t.Add("Complement", sequence.Complement(s))
			t.Add("Reverse complement", sequence.ReverseComplement(s))
			t.Add("mRNA", sequence.Transcribe(s))
			t.Add("Protein", translation.Translate(s, toStop))
			if len(s)%3 != 0 {
				a.warnf(cmd, "length %d is not a multiple of 3; the trailing %d base(s) were not translated", len(s), len(s)%3)
			}
			return a.emit(cmd, t, "")
		},
	}
	addInputFlags(cmd)
	cmd.Flags().Bool("to_stop", true, "end the protein at the first stop codon")
	return cmd
}
